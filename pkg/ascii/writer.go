package ascii

import (
	"io"
	"strings"
)

// WriteRecord writes one line with the given fields separated by colons.
func WriteRecord(w io.Writer, fields ...string) error {
	_, err := io.WriteString(w, strings.Join(fields, FieldSeparator)+"\n")
	return err
}
