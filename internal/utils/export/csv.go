// Package export serializes report rows into downloadable formats.
package export

import (
	"io"
	"strings"
)

// Field is one named cell of a record.
type Field struct {
	Name  string
	Value string
}

// Record is an ordered list of fields. Records passed together are expected
// to share the first record's field names.
type Record []Field

// WriteCSV writes records as comma separated lines terminated by "\n".
// The header row is taken from the first record. Literal commas are removed
// from names and values, no quoting is applied. No records write nothing.
func WriteCSV(w io.Writer, records []Record) error {
	if len(records) == 0 {
		return nil
	}

	var b strings.Builder
	names := make([]string, len(records[0]))
	for i, f := range records[0] {
		names[i] = sanitize(f.Name)
	}
	writeLine(&b, names)

	for _, rec := range records {
		values := make([]string, len(rec))
		for i, f := range rec {
			values[i] = sanitize(f.Value)
		}
		writeLine(&b, values)
	}

	_, err := io.WriteString(w, b.String())
	return err
}

// ToCSV is WriteCSV into a string.
func ToCSV(records []Record) string {
	var b strings.Builder
	_ = WriteCSV(&b, records)
	return b.String()
}

func writeLine(b *strings.Builder, cells []string) {
	b.WriteString(strings.Join(cells, ","))
	b.WriteByte('\n')
}

func sanitize(s string) string {
	return strings.ReplaceAll(s, ",", "")
}
