package fixture

import (
	"errors"
	"fmt"
	"io"

	"sigsum.org/merkle-fixtures/pkg/ascii"
	"sigsum.org/merkle-fixtures/pkg/crypto"
	"sigsum.org/merkle-fixtures/pkg/hex"
)

func WriteLeaves(w io.Writer, leaves []LeafRecord) error {
	for _, l := range leaves {
		if err := ascii.WriteRecord(w, string(l.Digest), l.Hash.String()); err != nil {
			return err
		}
	}
	return nil
}

func WriteNodes(w io.Writer, nodes []NodeRecord) error {
	for _, n := range nodes {
		if err := ascii.WriteRecord(w, string(n.Left), string(n.Right), n.Hash.String()); err != nil {
			return err
		}
	}
	return nil
}

// readColumns calls f with the fields of every data line, after checking
// that there are exactly n fields and that each is valid hex.
func readColumns(r io.Reader, n int, f func(fields []string) error) error {
	lr := ascii.NewLineReader(r)
	for {
		line, lineNo, err := lr.GetLine()
		if errors.Is(err, io.EOF) {
			return nil
		}
		if err != nil {
			return err
		}
		fields := ascii.SplitFields(line)
		if len(fields) != n {
			return fmt.Errorf("line %d: expected %d columns, got %d", lineNo, n, len(fields))
		}
		for i, field := range fields {
			if _, err := hex.DeserializeSpaced(field); err != nil {
				return fmt.Errorf("line %d, column %d: %w", lineNo, i+1, err)
			}
		}
		if err := f(fields); err != nil {
			return fmt.Errorf("line %d: %w", lineNo, err)
		}
	}
}

func ParseLeaves(r io.Reader) ([]LeafRecord, error) {
	var leaves []LeafRecord
	err := readColumns(r, 2, func(fields []string) error {
		h, err := crypto.HashFromHex(fields[1])
		if err != nil {
			return err
		}
		leaves = append(leaves, LeafRecord{Digest: Digest(fields[0]), Hash: h})
		return nil
	})
	if err != nil {
		return nil, err
	}
	return leaves, nil
}

func ParseNodes(r io.Reader) ([]NodeRecord, error) {
	var nodes []NodeRecord
	err := readColumns(r, 3, func(fields []string) error {
		h, err := crypto.HashFromHex(fields[2])
		if err != nil {
			return err
		}
		nodes = append(nodes, NodeRecord{Left: Digest(fields[0]), Right: Digest(fields[1]), Hash: h})
		return nil
	})
	if err != nil {
		return nil, err
	}
	return nodes, nil
}
