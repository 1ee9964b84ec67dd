package tidemerge

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefaultOptions(t *testing.T) {
	opts := DefaultOptions()

	assert.Equal(t, "Data", opts.EventDateColumn)
	assert.Equal(t, "Hora", opts.EventTimeColumn)
	assert.Equal(t, "Mare", opts.EventTypeColumn)
	assert.Equal(t, "Alt", opts.EventValueColumn)
	assert.Equal(t, "Preia-Mar", opts.EventTypeMatch)
	assert.Equal(t, "Mares_", opts.EventPrefix)
	assert.Equal(t, "Date", opts.SensorDateColumn)
	assert.Equal(t, "time", opts.SensorTimeColumn)
	assert.Equal(t, "ficheiro.origem", opts.SensorDropColumn)
}

func TestLoadOptionsOverridesDefaults(t *testing.T) {
	path := filepath.Join(t.TempDir(), "options.yaml")
	config := "event_type_match: Baixa-Mar\nsensor_time_column: Time\n"
	require.NoError(t, os.WriteFile(path, []byte(config), 0644))

	opts, err := LoadOptions(path)
	require.NoError(t, err)

	assert.Equal(t, "Baixa-Mar", opts.EventTypeMatch)
	assert.Equal(t, "Time", opts.SensorTimeColumn)
	// Untouched keys keep their defaults.
	assert.Equal(t, "Data", opts.EventDateColumn)
	assert.Equal(t, "ficheiro.origem", opts.SensorDropColumn)
}

func TestLoadOptionsErrors(t *testing.T) {
	_, err := LoadOptions(filepath.Join(t.TempDir(), "missing.yaml"))
	assert.Error(t, err)

	path := filepath.Join(t.TempDir(), "bad.yaml")
	require.NoError(t, os.WriteFile(path, []byte(":\n  - ["), 0644))
	_, err = LoadOptions(path)
	assert.Error(t, err)
}
