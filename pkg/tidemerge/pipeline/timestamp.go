package pipeline

import (
	"fmt"
	"sort"
	"strconv"
	"time"

	"github.com/lmcruz/tidemerge-go/pkg/tidemerge/models"
)

// timestampLayouts are the accepted forms of a composed "date time" string,
// tried in order. Anything else is an invalid row.
var timestampLayouts = []string{
	"2006-01-02 15:04:05",
	"2006-01-02 15:04",
	"02/01/2006 15:04:05",
	"02/01/2006 15:04",
	"2006/01/02 15:04:05",
}

// ComposeTimestamps appends a timestamp column named outCol, built by
// joining the string forms of dateCol and timeCol with a single space
// and parsing the result. Rows whose composed string does not parse are
// dropped. Returns the new table and the number of rows dropped.
// Both dateCol and timeCol must exist; callers validate columns first.
//
// There is no partial-timestamp recovery: a null or malformed date or
// time excludes the whole row.
func ComposeTimestamps(t *models.Table, dateCol, timeCol, outCol string) (*models.Table, int) {
	dateIdx := t.ColumnIndex(dateCol)
	timeIdx := t.ColumnIndex(timeCol)

	out := models.NewTable(append(append([]string{}, t.Columns...), outCol)...)
	dropped := 0
	for _, row := range t.Rows {
		ts, ok := parseTimestamp(cellString(row[dateIdx]) + " " + cellString(row[timeIdx]))
		if !ok {
			dropped++
			continue
		}
		out.AppendRow(append(append([]any{}, row...), ts))
	}
	return out, dropped
}

// sortByTimestamp sorts rows ascending by the time.Time values in col.
// The sort is stable so equal timestamps keep their input order.
func sortByTimestamp(t *models.Table, col string) {
	idx := t.ColumnIndex(col)
	sort.SliceStable(t.Rows, func(i, j int) bool {
		a, _ := t.Rows[i][idx].(time.Time)
		b, _ := t.Rows[j][idx].(time.Time)
		return a.Before(b)
	})
}

func parseTimestamp(s string) (time.Time, bool) {
	for _, layout := range timestampLayouts {
		if ts, err := time.Parse(layout, s); err == nil {
			return ts, true
		}
	}
	return time.Time{}, false
}

// cellString renders a cell value the way the source format would show it.
// Date-only and time-only cells decoded as time.Time keep their partial form
// so composition produces a parseable string.
func cellString(v any) string {
	switch x := v.(type) {
	case nil:
		return ""
	case string:
		return x
	case int64:
		return strconv.FormatInt(x, 10)
	case float64:
		return strconv.FormatFloat(x, 'f', -1, 64)
	case time.Time:
		if x.Hour() == 0 && x.Minute() == 0 && x.Second() == 0 {
			return x.Format("2006-01-02")
		}
		if x.Year() <= 1900 {
			// Time-of-day cells carry a placeholder epoch date.
			return x.Format("15:04:05")
		}
		return x.Format("2006-01-02 15:04:05")
	default:
		return fmt.Sprint(x)
	}
}
