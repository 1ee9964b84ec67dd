// Package models defines the in-memory tabular data structures for the merge pipeline.
package models

// Table represents a column-ordered in-memory table.
// Cell values are string, int64, float64, time.Time, or nil.
type Table struct {
	// Columns is the ordered list of column names.
	Columns []string `json:"columns"`
	// Rows contains cell values, one slice per row, aligned with Columns.
	Rows [][]any `json:"rows"`
}

// NewTable creates an empty table with the given columns.
func NewTable(columns ...string) *Table {
	return &Table{Columns: columns}
}

// ColumnIndex returns the index of the named column, or -1 if absent.
func (t *Table) ColumnIndex(name string) int {
	for i, c := range t.Columns {
		if c == name {
			return i
		}
	}
	return -1
}

// HasColumn reports whether the named column exists.
func (t *Table) HasColumn(name string) bool {
	return t.ColumnIndex(name) >= 0
}

// NumRows returns the number of data rows.
func (t *Table) NumRows() int {
	return len(t.Rows)
}

// Empty reports whether the table has no data rows.
func (t *Table) Empty() bool {
	return len(t.Rows) == 0
}

// AppendRow adds a row. Rows shorter than Columns are padded with nil
// so every row stays aligned with the column list.
func (t *Table) AppendRow(row []any) {
	for len(row) < len(t.Columns) {
		row = append(row, nil)
	}
	t.Rows = append(t.Rows, row)
}
