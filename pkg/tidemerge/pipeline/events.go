package pipeline

import (
	"fmt"

	"github.com/lmcruz/tidemerge-go/pkg/tidemerge/models"
)

// NormalizeEvents prepares the raw tide event table for merging: it keeps
// only rows whose type column equals the schema's match literal, composes
// the event timestamp, sorts ascending by it, and renames the value and
// type columns with the schema prefix.
//
// A missing required column is fatal and wraps ErrMissingColumn; the
// caller is expected to abort the invocation.
func NormalizeEvents(t *models.Table, s EventSchema, r Reporter) (*models.Table, error) {
	for _, col := range []string{s.DateColumn, s.TimeColumn, s.TypeColumn, s.ValueColumn} {
		if !t.HasColumn(col) {
			return nil, fmt.Errorf("event table: %w: %q", ErrMissingColumn, col)
		}
	}

	typeIdx := t.ColumnIndex(s.TypeColumn)
	filtered := models.NewTable(append([]string{}, t.Columns...)...)
	for _, row := range t.Rows {
		if v, ok := row[typeIdx].(string); ok && v == s.TypeMatch {
			filtered.AppendRow(row)
		}
	}
	r.Infof("kept %d of %d event rows matching %q", filtered.NumRows(), t.NumRows(), s.TypeMatch)

	composed, dropped := ComposeTimestamps(filtered, s.DateColumn, s.TimeColumn, s.TimestampColumn())
	if dropped > 0 {
		r.Warnf("dropped %d event rows with invalid timestamps", dropped)
	}
	sortByTimestamp(composed, s.TimestampColumn())

	renameColumn(composed, s.ValueColumn, s.Prefix+s.ValueColumn)
	renameColumn(composed, s.TypeColumn, s.Prefix+s.TypeColumn)
	return composed, nil
}

func renameColumn(t *models.Table, from, to string) {
	if idx := t.ColumnIndex(from); idx >= 0 {
		t.Columns[idx] = to
	}
}
