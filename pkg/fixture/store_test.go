package fixture

import (
	"bytes"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func writeInput(t *testing.T, dir string, digests []Digest) {
	t.Helper()
	var b strings.Builder
	b.WriteString("# test vectors\n\n")
	for i, d := range digests {
		b.WriteString("msg")
		b.WriteByte(byte('0' + i))
		b.WriteString(":")
		b.WriteString(string(d))
		b.WriteString(":\n")
	}
	if err := os.WriteFile(filepath.Join(dir, InputFile), []byte(b.String()), 0644); err != nil {
		t.Fatal(err)
	}
}

func readFile(t *testing.T, dir, name string) []byte {
	t.Helper()
	b, err := os.ReadFile(filepath.Join(dir, name))
	if err != nil {
		t.Fatal(err)
	}
	return b
}

func TestGenerateDirStore(t *testing.T) {
	dir := t.TempDir()
	digests := testDigests(3)
	writeInput(t, dir, digests)

	// Existing content must be replaced, not appended to.
	if err := os.WriteFile(filepath.Join(dir, NodesFile), []byte("stale\n"), 0644); err != nil {
		t.Fatal(err)
	}

	store := NewDirStore(dir)
	summary, err := Generate(store)
	if err != nil {
		t.Fatalf("Generate failed: %v", err)
	}
	if got, want := summary, (Summary{Digests: 3, Leaves: 3, Nodes: 9}); got != want {
		t.Errorf("unexpected summary, got %+v, want %+v", got, want)
	}

	leaves := readFile(t, dir, LeavesFile)
	nodes := readFile(t, dir, NodesFile)
	if got, want := bytes.Count(leaves, []byte("\n")), 3; got != want {
		t.Errorf("unexpected number of leaf lines, got %d, want %d", got, want)
	}
	if got, want := bytes.Count(nodes, []byte("\n")), 9; got != want {
		t.Errorf("unexpected number of node lines, got %d, want %d", got, want)
	}
	if !bytes.HasPrefix(leaves, []byte(string(digests[0])+":")) {
		t.Errorf("leaves file does not start with first digest")
	}

	if err := Check(store); err != nil {
		t.Errorf("Check failed on generated fixtures: %v", err)
	}

	// Running again gives identical files.
	if _, err := Generate(store); err != nil {
		t.Fatalf("second Generate failed: %v", err)
	}
	if !bytes.Equal(readFile(t, dir, LeavesFile), leaves) {
		t.Errorf("leaves file changed on second run")
	}
	if !bytes.Equal(readFile(t, dir, NodesFile), nodes) {
		t.Errorf("nodes file changed on second run")
	}
}

func TestGenerateMissingInput(t *testing.T) {
	dir := t.TempDir()
	_, err := Generate(NewDirStore(dir))
	if !errors.Is(err, os.ErrNotExist) {
		t.Errorf("expected not-exist error, got: %v", err)
	}
	if _, err := os.Stat(filepath.Join(dir, LeavesFile)); !errors.Is(err, os.ErrNotExist) {
		t.Errorf("leaves file written despite missing input")
	}
}

func TestGenerateMalformedInput(t *testing.T) {
	dir := t.TempDir()
	if err := os.WriteFile(filepath.Join(dir, InputFile), []byte("a:aa\nbb\n"), 0644); err != nil {
		t.Fatal(err)
	}
	_, err := Generate(NewDirStore(dir))
	if err == nil || !strings.Contains(err.Error(), "line 2") {
		t.Errorf("expected error for line 2, got: %v", err)
	}
}

func TestCheckDirStore(t *testing.T) {
	for _, table := range []struct {
		desc   string
		modify func(t *testing.T, dir string)
		check  func(err error) bool
	}{
		{
			desc:   "input gained a digest",
			modify: func(t *testing.T, dir string) { writeInput(t, dir, testDigests(4)) },
			check:  func(err error) bool { return errors.Is(err, ErrStale) },
		},
		{
			desc: "input reordered",
			modify: func(t *testing.T, dir string) {
				d := testDigests(3)
				writeInput(t, dir, []Digest{d[1], d[0], d[2]})
			},
			check: func(err error) bool { return errors.Is(err, ErrStale) },
		},
		{
			desc: "corrupted node hash",
			modify: func(t *testing.T, dir string) {
				nodes := readFile(t, dir, NodesFile)
				i := bytes.IndexByte(nodes, '\n') - 1
				if nodes[i] == '0' {
					nodes[i] = '1'
				} else {
					nodes[i] = '0'
				}
				if err := os.WriteFile(filepath.Join(dir, NodesFile), nodes, 0644); err != nil {
					t.Fatal(err)
				}
			},
			check: func(err error) bool { return errors.Is(err, ErrHashMismatch) },
		},
		{
			desc: "nodes missing",
			modify: func(t *testing.T, dir string) {
				if err := os.Remove(filepath.Join(dir, NodesFile)); err != nil {
					t.Fatal(err)
				}
			},
			check: func(err error) bool { return errors.Is(err, os.ErrNotExist) },
		},
	} {
		dir := t.TempDir()
		writeInput(t, dir, testDigests(3))
		store := NewDirStore(dir)
		if _, err := Generate(store); err != nil {
			t.Fatalf("%s: Generate failed: %v", table.desc, err)
		}
		table.modify(t, dir)
		if err := Check(store); !table.check(err) {
			t.Errorf("%s: unexpected Check result: %v", table.desc, err)
		}
	}
}

func TestGenerateSpacedDigests(t *testing.T) {
	dir := t.TempDir()
	if err := os.WriteFile(filepath.Join(dir, InputFile), []byte("msg: aa\nmsg2:aa bb\n"), 0644); err != nil {
		t.Fatal(err)
	}
	store := NewDirStore(dir)
	if _, err := Generate(store); err != nil {
		t.Fatalf("Generate failed: %v", err)
	}
	h := sum(0, 0xaa)
	leaves := string(readFile(t, dir, LeavesFile))
	if want := " aa:" + h.String() + "\n"; !strings.HasPrefix(leaves, want) {
		t.Errorf("unexpected first leaf line, got %q, want prefix %q", leaves, want)
	}
	if err := Check(store); err != nil {
		t.Errorf("Check failed: %v", err)
	}
}
