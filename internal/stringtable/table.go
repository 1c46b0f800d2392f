package stringtable

import (
	"encoding/csv"
	"io"
)

// Table is an ordered sequence of CSV records. Row 0, when present, is the
// header row.
type Table [][]string

// Parse reads a whole string table from r. Records may have varying lengths;
// the RFC 4180 quoting rules of encoding/csv apply.
func Parse(r io.Reader) (Table, error) {
	reader := csv.NewReader(r)
	reader.FieldsPerRecord = -1

	records, err := reader.ReadAll()
	if err != nil {
		return nil, err
	}

	return Table(records), nil
}

// ParseHeader reads only the first record from r, leaving the rest of the
// input untouched. A completely empty input yields a nil header.
func ParseHeader(r io.Reader) ([]string, error) {
	reader := csv.NewReader(r)
	reader.FieldsPerRecord = -1

	record, err := reader.Read()
	if err == io.EOF {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}

	return record, nil
}

// Header returns the table's header row, or nil for an empty table.
func (t Table) Header() []string {
	if len(t) == 0 {
		return nil
	}
	return t[0]
}
