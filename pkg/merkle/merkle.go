// package merkle provides the domain-separated hashing used for leaves and
// interior nodes of a SHA-512 Merkle tree.  The prefixing follows RFC 6962:
// leaves are hashed as H(0x00 || data) and interior nodes as
// H(0x01 || left || right).
package merkle

import (
	"bytes"

	"sigsum.org/merkle-fixtures/pkg/crypto"
	"sigsum.org/merkle-fixtures/pkg/hex"
)

type Prefix uint8

const (
	PrefixLeafNode Prefix = iota
	PrefixInteriorNode
)

func formatLeafNode(b []byte) []byte {
	prefixLeafNode := []byte{byte(PrefixLeafNode)}
	return bytes.Join([][]byte{prefixLeafNode, b}, nil)
}

func formatInteriorNode(children []byte) []byte {
	prefixInteriorNode := []byte{byte(PrefixInteriorNode)}
	return bytes.Join([][]byte{prefixInteriorNode, children}, nil)
}

func HashLeafNode(leaf []byte) crypto.Hash {
	return crypto.HashBytes(formatLeafNode(leaf))
}

func HashInteriorNode(left, right *crypto.Hash) crypto.Hash {
	return HashInteriorNodeBytes(bytes.Join([][]byte{(*left)[:], (*right)[:]}, nil))
}

// HashInteriorNodeBytes hashes an interior node given the already
// concatenated child values.  Children need not be HashSize bytes each.
func HashInteriorNodeBytes(children []byte) crypto.Hash {
	return crypto.HashBytes(formatInteriorNode(children))
}

// HashLeafHex hashes a leaf given as hex.
func HashLeafHex(leaf string) (crypto.Hash, error) {
	b, err := hex.DeserializeSpaced(leaf)
	if err != nil {
		return crypto.Hash{}, err
	}
	return HashLeafNode(b), nil
}

// HashInteriorNodeHex hashes an interior node whose children are given as
// hex.  The two strings are concatenated before decoding.
func HashInteriorNodeHex(left, right string) (crypto.Hash, error) {
	b, err := hex.DeserializeSpaced(left + right)
	if err != nil {
		return crypto.Hash{}, err
	}
	return HashInteriorNodeBytes(b), nil
}
