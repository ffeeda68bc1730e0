// package hex implements a hex codec that writes lower-case hex and
// accepts either case when parsing, matching how digests appear in test
// vector files.
package hex

import (
	"fmt"
)

const (
	language = "0123456789abcdef"
)

// Serialize serializes a buffer as lower-case hex
func Serialize(buf []byte) string {
	out := make([]byte, len(buf)*2)
	for i, b := range buf {
		offset := i * 2
		out[offset] = language[b>>4]
		out[offset+1] = language[b&0x0f]
	}
	return string(out)
}

// Deserialize tries to deserialize a hex string.  Upper and lower case
// digits may be mixed.  The empty string decodes to an empty buffer.
func Deserialize(str string) ([]byte, error) {
	if len(str)%2 != 0 {
		return nil, fmt.Errorf("hex: string must have even length, got %d", len(str))
	}

	buf := make([]byte, len(str)/2)
	for i := 0; i < len(buf); i++ {
		offset := i * 2
		first, ok := deserializeOne(str[offset])
		if !ok {
			return nil, fmt.Errorf("hex: invalid character at index %d: %q", offset, str[offset])
		}
		second, ok := deserializeOne(str[offset+1])
		if !ok {
			return nil, fmt.Errorf("hex: invalid character at index %d: %q", offset+1, str[offset+1])
		}
		buf[i] = first<<4 | second
	}
	return buf, nil
}

func deserializeOne(b byte) (byte, bool) {
	switch {
	case b >= '0' && b <= '9':
		return b - '0', true
	case b >= 'a' && b <= 'f':
		return b - 'a' + 10, true
	case b >= 'A' && b <= 'F':
		return b - 'A' + 10, true
	}
	return 0, false
}

// DeserializeSpaced is like Deserialize, except that ASCII white space is
// skipped before each byte pair, so "aa bb" and " aa" are accepted.  White
// space within a pair, as in "a a", is an error.
func DeserializeSpaced(str string) ([]byte, error) {
	buf := make([]byte, 0, len(str)/2)
	for i := 0; ; i += 2 {
		for i < len(str) && isSpace(str[i]) {
			i++
		}
		if i == len(str) {
			return buf, nil
		}
		if i+1 == len(str) {
			return nil, fmt.Errorf("hex: odd number of digits at index %d", i)
		}
		first, ok := deserializeOne(str[i])
		if !ok {
			return nil, fmt.Errorf("hex: invalid character at index %d: %q", i, str[i])
		}
		second, ok := deserializeOne(str[i+1])
		if !ok {
			return nil, fmt.Errorf("hex: invalid character at index %d: %q", i+1, str[i+1])
		}
		buf = append(buf, first<<4|second)
	}
}

func isSpace(b byte) bool {
	switch b {
	case ' ', '\t', '\n', '\v', '\f', '\r':
		return true
	}
	return false
}
