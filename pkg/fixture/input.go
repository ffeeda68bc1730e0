package fixture

import (
	"errors"
	"fmt"
	"io"

	"sigsum.org/merkle-fixtures/pkg/ascii"
)

// ReadDigests reads the digest list.  Each data line has the form
// <anything>:<digest>[:...]; blank lines and # comments are ignored.
func ReadDigests(r io.Reader) ([]Digest, error) {
	var digests []Digest
	lr := ascii.NewLineReader(r)
	for {
		line, lineNo, err := lr.GetLine()
		if errors.Is(err, io.EOF) {
			return digests, nil
		}
		if err != nil {
			return nil, err
		}
		fields := ascii.SplitFields(line)
		if len(fields) < 2 {
			return nil, fmt.Errorf("line %d: missing digest field: %q", lineNo, line)
		}
		digests = append(digests, Digest(fields[1]))
	}
}
