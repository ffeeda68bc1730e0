package fixture

import (
	"bytes"
	"errors"
	"fmt"

	"sigsum.org/merkle-fixtures/pkg/crypto"
	"sigsum.org/merkle-fixtures/pkg/hex"
	"sigsum.org/merkle-fixtures/pkg/merkle"
)

var (
	ErrHashMismatch = errors.New("hash mismatch")
	ErrStale        = errors.New("fixture does not match input")
)

// VerifyLeaves recomputes the hash of each leaf record.
func VerifyLeaves(leaves []LeafRecord) error {
	for i, l := range leaves {
		h, err := merkle.HashLeafHex(string(l.Digest))
		if err != nil {
			return fmt.Errorf("leaf %d: %w", i, err)
		}
		if h != l.Hash {
			return fmt.Errorf("leaf %d: %w: got %x, expected %x", i, ErrHashMismatch, l.Hash, h)
		}
	}
	return nil
}

// VerifyNodes recomputes the hash of each node record.  Unlike MakeNodes,
// the two children are decoded separately and joined as bytes.
func VerifyNodes(nodes []NodeRecord) error {
	for i, n := range nodes {
		left, err := hex.DeserializeSpaced(string(n.Left))
		if err != nil {
			return fmt.Errorf("node %d, left: %w", i, err)
		}
		right, err := hex.DeserializeSpaced(string(n.Right))
		if err != nil {
			return fmt.Errorf("node %d, right: %w", i, err)
		}
		var h crypto.Hash
		if len(left) == crypto.HashSize && len(right) == crypto.HashSize {
			var l, r crypto.Hash
			copy(l[:], left)
			copy(r[:], right)
			h = merkle.HashInteriorNode(&l, &r)
		} else {
			h = merkle.HashInteriorNodeBytes(append(left, right...))
		}
		if h != n.Hash {
			return fmt.Errorf("node %d: %w: got %x, expected %x", i, ErrHashMismatch, n.Hash, h)
		}
	}
	return nil
}

// sameDigest compares digests by value, ignoring case and white space.
func sameDigest(a, b Digest) bool {
	x, errX := hex.DeserializeSpaced(string(a))
	y, errY := hex.DeserializeSpaced(string(b))
	if errX != nil || errY != nil {
		return a == b
	}
	return bytes.Equal(x, y)
}

// Check verifies both fixture files in store, and that they are what
// Generate would write for the current input.
func Check(store Store) error {
	leaves, err := store.ReadLeaves()
	if err != nil {
		return err
	}
	if err := VerifyLeaves(leaves); err != nil {
		return fmt.Errorf("%s: %w", LeavesFile, err)
	}
	nodes, err := store.ReadNodes()
	if err != nil {
		return err
	}
	if err := VerifyNodes(nodes); err != nil {
		return fmt.Errorf("%s: %w", NodesFile, err)
	}

	digests, err := store.ReadDigests()
	if err != nil {
		return err
	}
	if got, want := len(leaves), len(digests); got != want {
		return fmt.Errorf("%s: %w: %d leaves for %d digests", LeavesFile, ErrStale, got, want)
	}
	for i, l := range leaves {
		if !sameDigest(l.Digest, digests[i]) {
			return fmt.Errorf("%s: %w: leaf %d is %q, input has %q",
				LeavesFile, ErrStale, i, l.Digest, digests[i])
		}
	}
	if got, want := len(nodes), len(digests)*len(digests); got != want {
		return fmt.Errorf("%s: %w: %d nodes for %d digests", NodesFile, ErrStale, got, len(digests))
	}
	for i, n := range nodes {
		left, right := digests[i/len(digests)], digests[i%len(digests)]
		if !sameDigest(n.Left, left) || !sameDigest(n.Right, right) {
			return fmt.Errorf("%s: %w: node %d is (%q, %q), input has (%q, %q)",
				NodesFile, ErrStale, i, n.Left, n.Right, left, right)
		}
	}
	return nil
}
