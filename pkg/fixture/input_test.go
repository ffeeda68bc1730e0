package fixture

import (
	"reflect"
	"strings"
	"testing"
)

func TestReadDigests(t *testing.T) {
	for _, table := range []struct {
		desc  string
		input string
		want  []Digest
		err   string
	}{
		{
			desc:  "empty",
			input: "",
			want:  nil,
		},
		{
			desc:  "comments and blank lines",
			input: "# sha512 vectors\n\nabc:AA\n  \n# more\ndef:bb\n",
			want:  []Digest{"AA", "bb"},
		},
		{
			desc:  "extra fields and white space",
			input: "  x:cc:ignored:too  \r\ny:dd\r\n",
			want:  []Digest{"cc", "dd"},
		},
		{
			desc:  "unterminated last line",
			input: "x:ee",
			want:  []Digest{"ee"},
		},
		{
			desc:  "white space inside digest field",
			input: "msg: aa\nmsg2:aa bb\n",
			want:  []Digest{" aa", "aa bb"},
		},
		{
			desc:  "empty digest field",
			input: "x:\n",
			want:  []Digest{""},
		},
		{
			desc:  "line longer than the default scanner buffer",
			input: strings.Repeat("ab", 40000) + ":aa\n",
			want:  []Digest{"aa"},
		},
		{
			desc:  "missing digest field",
			input: "x:aa\n\nno-separator\n",
			err:   "line 3",
		},
	} {
		got, err := ReadDigests(strings.NewReader(table.input))
		if table.err != "" {
			if err == nil {
				t.Errorf("%s: expected error, got %q", table.desc, got)
			} else if !strings.Contains(err.Error(), table.err) {
				t.Errorf("%s: error %q does not mention %q", table.desc, err, table.err)
			}
			continue
		}
		if err != nil {
			t.Errorf("%s: unexpected error: %v", table.desc, err)
			continue
		}
		if !reflect.DeepEqual(got, table.want) {
			t.Errorf("%s: got %q, want %q", table.desc, got, table.want)
		}
	}
}
