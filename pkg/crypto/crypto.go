// package crypto provides the lowest-level hash type and primitives used
// for the merkle fixtures.
package crypto

import (
	"crypto/sha512"
	"fmt"
	"io"

	"sigsum.org/merkle-fixtures/pkg/hex"
)

const (
	HashSize = sha512.Size
)

type Hash [HashSize]byte

func HashBytes(b []byte) Hash {
	return sha512.Sum512(b)
}

func HashFile(r io.Reader) (h Hash, err error) {
	hash := sha512.New()
	if _, err = io.Copy(hash, r); err != nil {
		return
	}
	copy(h[:], hash.Sum(nil))
	return
}

func decodeHex(s string, size int) ([]byte, error) {
	b, err := hex.Deserialize(s)
	if err != nil {
		return nil, err
	}
	if len(b) != size {
		return nil, fmt.Errorf("unexpected length of hex data, expected %d, got %d", size, len(b))
	}
	return b, nil
}

func HashFromHex(s string) (h Hash, err error) {
	var b []byte
	b, err = decodeHex(s, HashSize)
	copy(h[:], b)
	return
}

// String returns the hash in lower-case hex.
func (h *Hash) String() string {
	return hex.Serialize(h[:])
}
