// Package fixture derives SHA-512 Merkle test vectors from a list of known
// digests.  For every digest it produces a leaf record, and for every
// ordered pair of digests an interior node record.  Records are written as
// colon-separated hex columns, one per line, and can be read back and
// verified.
package fixture

import (
	"fmt"

	"sigsum.org/merkle-fixtures/pkg/crypto"
	"sigsum.org/merkle-fixtures/pkg/merkle"
)

const (
	InputFile  = "sha512.input"
	LeavesFile = "sha512-merkle-leaves.input"
	NodesFile  = "sha512-merkle-nodes.input"
)

// Digest is a hex-encoded SHA-512 output, kept exactly as it appeared in
// the input.
type Digest string

type LeafRecord struct {
	Digest Digest
	Hash   crypto.Hash
}

type NodeRecord struct {
	Left  Digest
	Right Digest
	Hash  crypto.Hash
}

// MakeLeaves returns one leaf record per digest, in input order.
func MakeLeaves(digests []Digest) ([]LeafRecord, error) {
	leaves := make([]LeafRecord, 0, len(digests))
	for i, d := range digests {
		h, err := merkle.HashLeafHex(string(d))
		if err != nil {
			return nil, fmt.Errorf("digest %d: %w", i, err)
		}
		leaves = append(leaves, LeafRecord{Digest: d, Hash: h})
	}
	return leaves, nil
}

// MakeNodes returns one node record for every ordered pair of digests,
// including pairs of a digest with itself.  The right digest varies
// fastest, so the result for [a, b] is (a,a), (a,b), (b,a), (b,b).
func MakeNodes(digests []Digest) ([]NodeRecord, error) {
	nodes := make([]NodeRecord, 0, len(digests)*len(digests))
	for i, left := range digests {
		for j, right := range digests {
			h, err := merkle.HashInteriorNodeHex(string(left), string(right))
			if err != nil {
				return nil, fmt.Errorf("digest pair (%d, %d): %w", i, j, err)
			}
			nodes = append(nodes, NodeRecord{Left: left, Right: right, Hash: h})
		}
	}
	return nodes, nil
}
