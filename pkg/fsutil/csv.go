package fsutil

import (
	"bytes"
	"encoding/csv"
	"fmt"
)

// Table holds a parsed CSV file.
type Table struct {
	Header []string   // nil when the file was loaded without a header
	Rows   [][]string // data records, header excluded
}

// Records returns each row keyed by header name. It returns nil for a
// table without a header.
func (t *Table) Records() []map[string]string {
	if t.Header == nil {
		return nil
	}
	out := make([]map[string]string, 0, len(t.Rows))
	for _, row := range t.Rows {
		rec := make(map[string]string, len(t.Header))
		for i, name := range t.Header {
			rec[name] = row[i]
		}
		out = append(out, rec)
	}
	return out
}

// LoadCSV parses the CSV file at path. Compressed files are decompressed
// like ReadText. All records must have the same number of fields.
func LoadCSV(path string, hasHeader bool, opts ...ReadOption) (*Table, error) {
	data, err := readFile("load csv", path, opts)
	if err != nil {
		return nil, err
	}

	records, err := csv.NewReader(bytes.NewReader(data)).ReadAll()
	if err != nil {
		return nil, wrap("load csv", path, fmt.Errorf("parse: %w", err))
	}

	t := &Table{Rows: records}
	if hasHeader && len(records) > 0 {
		t.Header = records[0]
		t.Rows = records[1:]
	}
	return t, nil
}
