package tidemerge

import (
	"fmt"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/lmcruz/tidemerge-go/pkg/tidemerge/models"
)

type recordingReporter struct {
	infos []string
	warns []string
}

func (r *recordingReporter) Infof(format string, args ...any) {
	r.infos = append(r.infos, fmt.Sprintf(format, args...))
}

func (r *recordingReporter) Warnf(format string, args ...any) {
	r.warns = append(r.warns, fmt.Sprintf(format, args...))
}

func tideTable() *models.Table {
	return &models.Table{
		Columns: []string{"Data", "Hora", "Mare", "Alt"},
		Rows: [][]any{
			{"2024-01-01", "08:00:00", "Preia-Mar", 2.1},
			{"2024-01-01", "14:00:00", "Baixa-Mar", 0.3},
		},
	}
}

func sheetA() models.Sheet {
	return models.Sheet{
		Name: "A",
		Table: &models.Table{
			Columns: []string{"Date", "time", "CaboSines"},
			Rows:    [][]any{{"2024-01-01", "08:05:00", 18.2}},
		},
	}
}

func TestMergeEndToEnd(t *testing.T) {
	results, err := Merge(tideTable(), []models.Sheet{sheetA()}, DefaultOptions(), nil)
	require.NoError(t, err)
	require.Equal(t, 1, results.Len())

	merged, ok := results.Get("A")
	require.True(t, ok)
	require.Equal(t, 1, merged.NumRows(), "the Baixa-Mar row is filtered out before merge")

	assert.Equal(t, []string{
		"Data", "Hora", "Mares_Mare", "Mares_Alt", "Mares_DateTime",
		"Date", "time", "CaboSines", "Temp_DateTime",
		"Source_Temp_Sheet",
	}, merged.Columns)

	row := merged.Rows[0]
	assert.Equal(t, 2.1, row[3])
	assert.Equal(t, time.Date(2024, 1, 1, 8, 0, 0, 0, time.UTC), row[4])
	assert.Equal(t, 18.2, row[7], "08:05 reading is within one hour of the 08:00 event")
	assert.Equal(t, time.Date(2024, 1, 1, 8, 5, 0, 0, time.UTC), row[8])
	assert.Equal(t, "A", row[9])
}

func TestMergeMultiSheetIndependence(t *testing.T) {
	broken := models.Sheet{
		Name: "broken",
		Table: &models.Table{
			Columns: []string{"Date", "CaboSines"}, // no time column
			Rows:    [][]any{{"2024-01-01", 17.0}},
		},
	}

	r := &recordingReporter{}
	results, err := Merge(tideTable(), []models.Sheet{sheetA(), broken}, DefaultOptions(), r)
	require.NoError(t, err)

	assert.Equal(t, []string{"A"}, results.Names())
	_, ok := results.Get("broken")
	assert.False(t, ok)

	var skipped bool
	for _, msg := range r.infos {
		if strings.Contains(msg, `skipping sheet "broken"`) {
			skipped = true
		}
	}
	assert.True(t, skipped, "a diagnostic names the skipped sheet")
}

func TestMergeFilteredToEmptyEvents(t *testing.T) {
	lowTidesOnly := &models.Table{
		Columns: []string{"Data", "Hora", "Mare", "Alt"},
		Rows: [][]any{
			{"2024-01-01", "14:00:00", "Baixa-Mar", 0.3},
		},
	}

	results, err := Merge(lowTidesOnly, []models.Sheet{sheetA()}, DefaultOptions(), nil)
	require.NoError(t, err)

	merged, ok := results.Get("A")
	require.True(t, ok, "sheet still produces a merged table")
	assert.Equal(t, 0, merged.NumRows())
}

func TestMergeMissingEventColumnIsFatal(t *testing.T) {
	noType := &models.Table{
		Columns: []string{"Data", "Hora", "Alt"},
		Rows:    [][]any{{"2024-01-01", "08:00:00", 2.1}},
	}

	_, err := Merge(noType, []models.Sheet{sheetA()}, DefaultOptions(), nil)
	require.Error(t, err)

	var inputErr *InputError
	require.ErrorAs(t, err, &inputErr)
	assert.Equal(t, "events", inputErr.Input)
}

func TestMergeNoSurvivingSheets(t *testing.T) {
	empty := models.Sheet{Name: "empty", Table: models.NewTable("Date", "time", "V")}

	_, err := Merge(tideTable(), []models.Sheet{empty}, DefaultOptions(), nil)
	assert.ErrorIs(t, err, ErrNoData)

	_, err = Merge(tideTable(), nil, DefaultOptions(), nil)
	assert.ErrorIs(t, err, ErrNoData)
}

func TestMergeIsPure(t *testing.T) {
	first, err := Merge(tideTable(), []models.Sheet{sheetA()}, DefaultOptions(), nil)
	require.NoError(t, err)
	second, err := Merge(tideTable(), []models.Sheet{sheetA()}, DefaultOptions(), nil)
	require.NoError(t, err)

	require.Equal(t, first.Names(), second.Names())
	for _, name := range first.Names() {
		a, _ := first.Get(name)
		b, _ := second.Get(name)
		assert.Equal(t, a, b)
	}
}

func TestMergePreservesSheetOrder(t *testing.T) {
	reading := func(ts string, v float64) *models.Table {
		return &models.Table{
			Columns: []string{"Date", "time", "V"},
			Rows:    [][]any{{"2024-01-01", ts, v}},
		}
	}
	sheets := []models.Sheet{
		{Name: "zeta", Table: reading("08:10:00", 1)},
		{Name: "alpha", Table: reading("08:20:00", 2)},
		{Name: "mid", Table: reading("08:30:00", 3)},
	}

	results, err := Merge(tideTable(), sheets, DefaultOptions(), nil)
	require.NoError(t, err)
	assert.Equal(t, []string{"zeta", "alpha", "mid"}, results.Names())
}
