// Package sheet reads one worksheet of an xlsx workbook as a header-keyed
// table and coerces cell text with the fail-safe rules the legacy catalogs
// need.
package sheet

import (
	"fmt"
	"strings"

	"github.com/xuri/excelize/v2"
)

// Table is a fully-read worksheet: a header row mapping column names to
// indexes, followed by data rows.
type Table struct {
	cols map[string]int
	rows [][]string
}

// Open reads the named worksheet from an xlsx file. The first row is the
// header; header cells are trimmed before indexing. Duplicate headers keep
// the leftmost column.
func Open(path, sheetName string) (*Table, error) {
	f, err := excelize.OpenFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open workbook %s: %w", path, err)
	}
	defer func() { _ = f.Close() }()

	rows, err := f.GetRows(sheetName)
	if err != nil {
		return nil, fmt.Errorf("failed to read sheet %q: %w", sheetName, err)
	}
	if len(rows) == 0 {
		return &Table{cols: map[string]int{}}, nil
	}

	cols := make(map[string]int, len(rows[0]))
	for i, h := range rows[0] {
		h = strings.TrimSpace(h)
		if h == "" {
			continue
		}
		if _, dup := cols[h]; !dup {
			cols[h] = i
		}
	}

	return &Table{cols: cols, rows: rows[1:]}, nil
}

// Len returns the number of data rows.
func (t *Table) Len() int {
	return len(t.rows)
}

// HasColumn reports whether the header row contains the named column.
func (t *Table) HasColumn(header string) bool {
	_, ok := t.cols[header]
	return ok
}

// Row returns the i-th data row (0-based).
func (t *Table) Row(i int) Row {
	return Row{table: t, cells: t.rows[i]}
}

// Row is one data row with header-keyed cell access.
type Row struct {
	table *Table
	cells []string
}

// Value returns the raw cell text under the named header, or "" when the
// column is unknown or the row is too short. excelize drops trailing empty
// cells, so short rows are normal.
func (r Row) Value(header string) string {
	idx, ok := r.table.cols[header]
	if !ok || idx >= len(r.cells) {
		return ""
	}
	return r.cells[idx]
}
