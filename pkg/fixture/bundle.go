package fixture

import (
	"fmt"
	"io"

	"github.com/fxamacker/cbor/v2"

	"sigsum.org/merkle-fixtures/pkg/crypto"
	"sigsum.org/merkle-fixtures/pkg/hex"
)

// Bundle is the binary form of a fixture set, for consumers that would
// rather not parse the text files.  It is encoded as the CBOR map
// {1: [[digest, hash], ...], 2: [[left, right, hash], ...]}.
type Bundle struct {
	Leaves []BundleLeaf `cbor:"1,keyasint"`
	Nodes  []BundleNode `cbor:"2,keyasint"`
}

type BundleLeaf struct {
	_      struct{} `cbor:",toarray"`
	Digest []byte
	Hash   []byte
}

type BundleNode struct {
	_     struct{} `cbor:",toarray"`
	Left  []byte
	Right []byte
	Hash  []byte
}

func NewBundle(leaves []LeafRecord, nodes []NodeRecord) (*Bundle, error) {
	b := Bundle{
		Leaves: make([]BundleLeaf, 0, len(leaves)),
		Nodes:  make([]BundleNode, 0, len(nodes)),
	}
	for i, l := range leaves {
		digest, err := hex.DeserializeSpaced(string(l.Digest))
		if err != nil {
			return nil, fmt.Errorf("leaf %d: %w", i, err)
		}
		b.Leaves = append(b.Leaves, BundleLeaf{Digest: digest, Hash: append([]byte{}, l.Hash[:]...)})
	}
	for i, n := range nodes {
		left, err := hex.DeserializeSpaced(string(n.Left))
		if err != nil {
			return nil, fmt.Errorf("node %d, left: %w", i, err)
		}
		right, err := hex.DeserializeSpaced(string(n.Right))
		if err != nil {
			return nil, fmt.Errorf("node %d, right: %w", i, err)
		}
		b.Nodes = append(b.Nodes, BundleNode{Left: left, Right: right, Hash: append([]byte{}, n.Hash[:]...)})
	}
	return &b, nil
}

func hashFromBytes(b []byte) (h crypto.Hash, err error) {
	if len(b) != crypto.HashSize {
		return h, fmt.Errorf("unexpected hash length, expected %d, got %d", crypto.HashSize, len(b))
	}
	copy(h[:], b)
	return h, nil
}

// Records converts the bundle back to records.  Digests come back as
// lower-case hex.
func (b *Bundle) Records() ([]LeafRecord, []NodeRecord, error) {
	leaves := make([]LeafRecord, 0, len(b.Leaves))
	for i, l := range b.Leaves {
		h, err := hashFromBytes(l.Hash)
		if err != nil {
			return nil, nil, fmt.Errorf("leaf %d: %w", i, err)
		}
		leaves = append(leaves, LeafRecord{Digest: Digest(hex.Serialize(l.Digest)), Hash: h})
	}
	nodes := make([]NodeRecord, 0, len(b.Nodes))
	for i, n := range b.Nodes {
		h, err := hashFromBytes(n.Hash)
		if err != nil {
			return nil, nil, fmt.Errorf("node %d: %w", i, err)
		}
		nodes = append(nodes, NodeRecord{
			Left:  Digest(hex.Serialize(n.Left)),
			Right: Digest(hex.Serialize(n.Right)),
			Hash:  h,
		})
	}
	return leaves, nodes, nil
}

// EncodeBundle writes b using core deterministic encoding, so the same
// fixtures always give the same bytes.
func EncodeBundle(w io.Writer, b *Bundle) error {
	em, err := cbor.CoreDetEncOptions().EncMode()
	if err != nil {
		return err
	}
	return em.NewEncoder(w).Encode(b)
}

func DecodeBundle(r io.Reader) (*Bundle, error) {
	var b Bundle
	if err := cbor.NewDecoder(r).Decode(&b); err != nil {
		return nil, fmt.Errorf("invalid fixture bundle: %w", err)
	}
	return &b, nil
}

// Export writes the fixture files in store as a bundle.
func Export(store Store, w io.Writer) error {
	leaves, err := store.ReadLeaves()
	if err != nil {
		return err
	}
	nodes, err := store.ReadNodes()
	if err != nil {
		return err
	}
	b, err := NewBundle(leaves, nodes)
	if err != nil {
		return err
	}
	return EncodeBundle(w, b)
}
