package fixture

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/dchest/safefile"
)

//go:generate mockgen -package mocks -destination ../mocks/mock_store.go . Store

// Store gives access to the input file and the two fixture files.
type Store interface {
	ReadDigests() ([]Digest, error)
	ReadLeaves() ([]LeafRecord, error)
	ReadNodes() ([]NodeRecord, error)
	WriteLeaves([]LeafRecord) error
	WriteNodes([]NodeRecord) error
}

// DirStore keeps the files under their fixed names in a directory.
type DirStore struct {
	Dir string
}

func NewDirStore(dir string) *DirStore {
	return &DirStore{Dir: dir}
}

func (s *DirStore) path(name string) string {
	return filepath.Join(s.Dir, name)
}

func (s *DirStore) readFile(name string, parse func(io.Reader) error) error {
	fileName := s.path(name)
	f, err := os.Open(fileName)
	if err != nil {
		return err
	}
	defer f.Close()
	if err := parse(f); err != nil {
		return fmt.Errorf("failed to read file %q: %w", fileName, err)
	}
	return nil
}

// writeFile atomically replaces the named file with the output of write.
func (s *DirStore) writeFile(name string, write func(io.Writer) error) error {
	fileName := s.path(name)
	f, err := safefile.Create(fileName, 0644)
	if err != nil {
		return err
	}
	defer f.Close()

	w := bufio.NewWriter(f)
	if err := write(w); err != nil {
		return fmt.Errorf("failed to write file %q: %w", fileName, err)
	}
	if err := w.Flush(); err != nil {
		return fmt.Errorf("failed to write file %q: %w", fileName, err)
	}
	return f.Commit()
}

func (s *DirStore) ReadDigests() (digests []Digest, err error) {
	err = s.readFile(InputFile, func(r io.Reader) (err error) {
		digests, err = ReadDigests(r)
		return
	})
	return
}

func (s *DirStore) ReadLeaves() (leaves []LeafRecord, err error) {
	err = s.readFile(LeavesFile, func(r io.Reader) (err error) {
		leaves, err = ParseLeaves(r)
		return
	})
	return
}

func (s *DirStore) ReadNodes() (nodes []NodeRecord, err error) {
	err = s.readFile(NodesFile, func(r io.Reader) (err error) {
		nodes, err = ParseNodes(r)
		return
	})
	return
}

func (s *DirStore) WriteLeaves(leaves []LeafRecord) error {
	return s.writeFile(LeavesFile, func(w io.Writer) error {
		return WriteLeaves(w, leaves)
	})
}

func (s *DirStore) WriteNodes(nodes []NodeRecord) error {
	return s.writeFile(NodesFile, func(w io.Writer) error {
		return WriteNodes(w, nodes)
	})
}
