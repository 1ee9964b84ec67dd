package pipeline

import (
	"fmt"
	"sort"
	"time"

	"github.com/lmcruz/tidemerge-go/pkg/tidemerge/models"
)

// MergeNearest performs a left-preserving nearest-in-time join of events
// against sensors, bounded by MatchTolerance. Both tables must already be
// sorted ascending by their timestamp columns. Every event row produces
// exactly one output row; events with no sensor reading within tolerance
// get nil sensor cells. Each output row is tagged with sheetName in the
// SourceSheetColumn.
//
// Equidistant candidates tie-break to the earlier-timestamped sensor row.
// The boundary is inclusive: a reading exactly MatchTolerance away matches.
//
// Event and sensor column names are disjoint by construction (event value
// and type columns are prefixed during normalization), so the output
// schema is a plain concatenation.
func MergeNearest(events, sensors *models.Table, eventTimeCol, sensorTimeCol, sheetName string) (*models.Table, error) {
	eventIdx := events.ColumnIndex(eventTimeCol)
	if eventIdx < 0 {
		return nil, fmt.Errorf("event table: %w: %q", ErrMissingColumn, eventTimeCol)
	}
	sensorIdx := sensors.ColumnIndex(sensorTimeCol)
	if sensorIdx < 0 {
		return nil, fmt.Errorf("sensor table: %w: %q", ErrMissingColumn, sensorTimeCol)
	}

	columns := make([]string, 0, len(events.Columns)+len(sensors.Columns)+1)
	columns = append(columns, events.Columns...)
	columns = append(columns, sensors.Columns...)
	columns = append(columns, SourceSheetColumn)
	out := models.NewTable(columns...)

	times := make([]time.Time, len(sensors.Rows))
	for i, row := range sensors.Rows {
		times[i], _ = row[sensorIdx].(time.Time)
	}

	for _, row := range events.Rows {
		ts, _ := row[eventIdx].(time.Time)

		merged := make([]any, 0, len(columns))
		merged = append(merged, row...)
		if i, ok := nearestIndex(times, ts, MatchTolerance); ok {
			merged = append(merged, sensors.Rows[i]...)
		} else {
			merged = append(merged, make([]any, len(sensors.Columns))...)
		}
		merged = append(merged, sheetName)
		out.AppendRow(merged)
	}
	return out, nil
}

// nearestIndex finds the index in times (sorted ascending) closest to
// target, restricted to |times[i] - target| <= tolerance. Binary search
// narrows the scan to the two neighbors straddling target; on a tie the
// earlier index wins because only a strictly smaller difference replaces
// the earlier candidate.
func nearestIndex(times []time.Time, target time.Time, tolerance time.Duration) (int, bool) {
	if len(times) == 0 {
		return 0, false
	}

	// First index with times[i] >= target.
	hi := sort.Search(len(times), func(i int) bool {
		return !times[i].Before(target)
	})

	best, bestDiff := -1, time.Duration(0)
	if hi > 0 {
		best, bestDiff = hi-1, absDiff(times[hi-1], target)
	}
	if hi < len(times) {
		if diff := absDiff(times[hi], target); best < 0 || diff < bestDiff {
			best, bestDiff = hi, diff
		}
	}
	if best < 0 || bestDiff > tolerance {
		return 0, false
	}
	return best, true
}

func absDiff(a, b time.Time) time.Duration {
	d := a.Sub(b)
	if d < 0 {
		return -d
	}
	return d
}
