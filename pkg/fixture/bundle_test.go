package fixture

import (
	"bytes"
	"testing"
)

func TestBundle(t *testing.T) {
	digests := testDigests(2)
	leaves, err := MakeLeaves(digests)
	if err != nil {
		t.Fatal(err)
	}
	nodes, err := MakeNodes(digests)
	if err != nil {
		t.Fatal(err)
	}
	b, err := NewBundle(leaves, nodes)
	if err != nil {
		t.Fatal(err)
	}

	var first, second bytes.Buffer
	if err := EncodeBundle(&first, b); err != nil {
		t.Fatal(err)
	}
	if err := EncodeBundle(&second, b); err != nil {
		t.Fatal(err)
	}
	if !bytes.Equal(first.Bytes(), second.Bytes()) {
		t.Errorf("encoding is not deterministic")
	}
	// Map with two entries.
	if got, want := first.Bytes()[0], byte(0xa2); got != want {
		t.Errorf("unexpected initial byte, got 0x%02x, want 0x%02x", got, want)
	}

	decoded, err := DecodeBundle(&first)
	if err != nil {
		t.Fatal(err)
	}
	gotLeaves, gotNodes, err := decoded.Records()
	if err != nil {
		t.Fatal(err)
	}
	if err := VerifyLeaves(gotLeaves); err != nil {
		t.Errorf("decoded leaves: %v", err)
	}
	if err := VerifyNodes(gotNodes); err != nil {
		t.Errorf("decoded nodes: %v", err)
	}
	if got, want := len(gotNodes), 4; got != want {
		t.Fatalf("unexpected number of nodes, got %d, want %d", got, want)
	}
	for i := range nodes {
		if gotNodes[i] != nodes[i] {
			t.Errorf("node %d differs after decoding", i)
		}
	}
}

func TestBundleInvalid(t *testing.T) {
	if _, err := NewBundle([]LeafRecord{{Digest: "abc"}}, nil); err == nil {
		t.Errorf("NewBundle accepted odd length digest")
	}
	b := Bundle{Leaves: []BundleLeaf{{Digest: []byte{0xaa}, Hash: []byte{1, 2, 3}}}}
	if _, _, err := b.Records(); err == nil {
		t.Errorf("Records accepted short hash")
	}
	if _, err := DecodeBundle(bytes.NewReader([]byte{0xff})); err == nil {
		t.Errorf("DecodeBundle accepted garbage")
	}
}
