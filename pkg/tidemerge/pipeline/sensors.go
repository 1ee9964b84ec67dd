package pipeline

import (
	"fmt"
	"strings"

	"github.com/lmcruz/tidemerge-go/pkg/tidemerge/models"
)

// NormalizeSensorSheet prepares one sensor sheet for merging: it discards
// the provenance column when present, removes exact-duplicate rows,
// composes the reading timestamp, and sorts ascending by it.
//
// A sheet that is empty after cleaning, or that lacks the date or time
// column, is excluded rather than failing the invocation: the returned
// error describes why and the caller continues with remaining sheets.
func NormalizeSensorSheet(name string, t *models.Table, s SensorSchema, r Reporter) (*models.Table, error) {
	if t.HasColumn(s.DropColumn) {
		t = dropColumn(t, s.DropColumn)
	}

	t, removed := dedupRows(t)
	if removed > 0 {
		r.Warnf("removed %d duplicate records from sheet %q", removed, name)
	}

	if t.Empty() || !t.HasColumn(s.DateColumn) || !t.HasColumn(s.TimeColumn) {
		return nil, fmt.Errorf("empty or missing %q or %q columns after duplicate removal", s.DateColumn, s.TimeColumn)
	}

	composed, dropped := ComposeTimestamps(t, s.DateColumn, s.TimeColumn, s.TimestampColumn)
	if dropped > 0 {
		r.Warnf("dropped %d rows with invalid timestamps from sheet %q", dropped, name)
	}
	sortByTimestamp(composed, s.TimestampColumn)
	return composed, nil
}

// dropColumn returns a copy of t without the named column.
func dropColumn(t *models.Table, name string) *models.Table {
	idx := t.ColumnIndex(name)
	if idx < 0 {
		return t
	}
	columns := make([]string, 0, len(t.Columns)-1)
	columns = append(columns, t.Columns[:idx]...)
	columns = append(columns, t.Columns[idx+1:]...)

	out := models.NewTable(columns...)
	for _, row := range t.Rows {
		kept := make([]any, 0, len(columns))
		for i, cell := range row {
			if i == idx {
				continue
			}
			kept = append(kept, cell)
		}
		out.AppendRow(kept)
	}
	return out
}

// dedupRows returns a copy of t with exact-duplicate rows removed (all
// cells equal), keeping the first occurrence, plus the number removed.
func dedupRows(t *models.Table) (*models.Table, int) {
	out := models.NewTable(append([]string{}, t.Columns...)...)
	seen := make(map[string]struct{}, len(t.Rows))
	removed := 0
	for _, row := range t.Rows {
		key := rowKey(row)
		if _, dup := seen[key]; dup {
			removed++
			continue
		}
		seen[key] = struct{}{}
		out.AppendRow(row)
	}
	return out, removed
}

// rowKey fingerprints a row including cell types, so 1 (int64) and "1"
// (string) never collide.
func rowKey(row []any) string {
	var b strings.Builder
	for _, cell := range row {
		fmt.Fprintf(&b, "%T=%v\x00", cell, cell)
	}
	return b.String()
}
