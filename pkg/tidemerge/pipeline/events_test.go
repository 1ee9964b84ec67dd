package pipeline

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/lmcruz/tidemerge-go/pkg/tidemerge/models"
)

func rawEventTable() *models.Table {
	return &models.Table{
		Columns: []string{"Data", "Hora", "Mare", "Alt"},
		Rows: [][]any{
			{"2024-01-01", "14:00:00", "Baixa-Mar", 0.3},
			{"2024-01-02", "08:30:00", "Preia-Mar", 2.3},
			{"2024-01-01", "08:00:00", "Preia-Mar", 2.1},
		},
	}
}

func TestNormalizeEvents(t *testing.T) {
	out, err := NormalizeEvents(rawEventTable(), DefaultEventSchema(), nopReporter{})
	require.NoError(t, err)

	assert.Equal(t, []string{"Data", "Hora", "Mares_Mare", "Mares_Alt", "Mares_DateTime"}, out.Columns)
	require.Equal(t, 2, out.NumRows())

	// Baixa-Mar is filtered out, survivors are sorted ascending.
	assert.Equal(t, time.Date(2024, 1, 1, 8, 0, 0, 0, time.UTC), out.Rows[0][4])
	assert.Equal(t, time.Date(2024, 1, 2, 8, 30, 0, 0, time.UTC), out.Rows[1][4])
	assert.Equal(t, 2.1, out.Rows[0][3])
	assert.Equal(t, "Preia-Mar", out.Rows[0][2])
}

func TestNormalizeEventsExactMatchOnly(t *testing.T) {
	in := &models.Table{
		Columns: []string{"Data", "Hora", "Mare", "Alt"},
		Rows: [][]any{
			{"2024-01-01", "08:00:00", "preia-mar", 2.1},
			{"2024-01-01", "09:00:00", " Preia-Mar", 2.1},
			{"2024-01-01", "10:00:00", "Preia-Mar ", 2.1},
		},
	}

	out, err := NormalizeEvents(in, DefaultEventSchema(), nopReporter{})
	require.NoError(t, err)
	assert.Equal(t, 0, out.NumRows(), "match is case-sensitive with no trimming")
}

func TestNormalizeEventsMissingColumn(t *testing.T) {
	tests := []struct {
		name    string
		columns []string
	}{
		{"no type column", []string{"Data", "Hora", "Alt"}},
		{"no date column", []string{"Hora", "Mare", "Alt"}},
		{"no value column", []string{"Data", "Hora", "Mare"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			in := models.NewTable(tt.columns...)
			_, err := NormalizeEvents(in, DefaultEventSchema(), nopReporter{})
			require.Error(t, err)
			assert.ErrorIs(t, err, ErrMissingColumn)
		})
	}
}

func TestNormalizeEventsDropsInvalidTimestamps(t *testing.T) {
	in := &models.Table{
		Columns: []string{"Data", "Hora", "Mare", "Alt"},
		Rows: [][]any{
			{"2024-01-01", "08:00:00", "Preia-Mar", 2.1},
			{"bogus", "08:00:00", "Preia-Mar", 2.2},
		},
	}

	r := &recordingReporter{}
	out, err := NormalizeEvents(in, DefaultEventSchema(), r)
	require.NoError(t, err)
	assert.Equal(t, 1, out.NumRows())
	assert.Contains(t, r.warns[0], "dropped 1 event rows")
}
