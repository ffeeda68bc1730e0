// Package ascii reads and writes line-oriented text files made of records
// with colon-separated fields, where # starts a comment line.
package ascii

import (
	"bufio"
	"io"
	"math"
	"strings"
)

const (
	FieldSeparator = ":"

	initialBufferSize = 64 * 1024
)

type LineReader struct {
	scanner *bufio.Scanner
	lineNo  int
}

// NewLineReader returns a reader for input.  Lines are split like
// bufio.ScanLines, so a final line without newline is still returned.
// Line length is not limited.
func NewLineReader(input io.Reader) LineReader {
	scanner := bufio.NewScanner(input)
	scanner.Buffer(make([]byte, 0, initialBufferSize), math.MaxInt)
	return LineReader{scanner: scanner}
}

// GetLine returns the next data line with surrounding white space removed,
// together with its 1-based line number in the input.  Blank lines and
// lines starting with # are skipped.  Returns io.EOF at end of input.
func (lr *LineReader) GetLine() (string, int, error) {
	for lr.scanner.Scan() {
		lr.lineNo++
		line := strings.TrimSpace(lr.scanner.Text())
		if len(line) == 0 || strings.HasPrefix(line, "#") {
			continue
		}
		return line, lr.lineNo, nil
	}
	if err := lr.scanner.Err(); err != nil {
		return "", lr.lineNo, err
	}
	return "", lr.lineNo, io.EOF
}

// SplitFields splits a data line into its colon-separated fields.
func SplitFields(line string) []string {
	return strings.Split(line, FieldSeparator)
}
