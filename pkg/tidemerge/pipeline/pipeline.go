// Package pipeline implements the normalization and nearest-match merge
// stages for tide events and sensor readings.
package pipeline

import (
	"errors"
	"time"
)

// MatchTolerance is the maximum time difference for a sensor reading to
// be merged with a tide event. The boundary is inclusive: a reading
// exactly this far from an event still matches.
const MatchTolerance = time.Hour

// SourceSheetColumn is the name of the column tagging each merged row
// with the sensor sheet it came from.
const SourceSheetColumn = "Source_Temp_Sheet"

// ErrMissingColumn indicates a required column is absent from an input table.
var ErrMissingColumn = errors.New("required column missing")

// Reporter receives diagnostic messages emitted while processing.
// Implementations must not block; diagnostics never alter control flow.
type Reporter interface {
	// Infof reports an informational message with optional formatted arguments.
	Infof(format string, args ...any)
	// Warnf reports a warning message with optional formatted arguments.
	Warnf(format string, args ...any)
}

// EventSchema binds the tide event table's column names and the filter literal.
type EventSchema struct {
	// DateColumn holds the event date.
	DateColumn string
	// TimeColumn holds the event time of day.
	TimeColumn string
	// TypeColumn holds the tide type (e.g. "Preia-Mar", "Baixa-Mar").
	TypeColumn string
	// ValueColumn holds the numeric tide height.
	ValueColumn string
	// TypeMatch is the exact tide type kept by the filter. Case-sensitive,
	// no trimming.
	TypeMatch string
	// Prefix namespaces the renamed value, type, and timestamp columns so
	// they cannot collide with sensor columns downstream.
	Prefix string
}

// TimestampColumn returns the name of the composed event timestamp column.
func (s EventSchema) TimestampColumn() string {
	return s.Prefix + "DateTime"
}

// DefaultEventSchema returns the column bindings of the source tide format.
func DefaultEventSchema() EventSchema {
	return EventSchema{
		DateColumn:  "Data",
		TimeColumn:  "Hora",
		TypeColumn:  "Mare",
		ValueColumn: "Alt",
		TypeMatch:   "Preia-Mar",
		Prefix:      "Mares_",
	}
}

// SensorSchema binds a sensor sheet's column names.
type SensorSchema struct {
	// DateColumn holds the reading date.
	DateColumn string
	// TimeColumn holds the reading time of day.
	TimeColumn string
	// DropColumn is a provenance marker discarded when present.
	DropColumn string
	// TimestampColumn names the composed reading timestamp column.
	TimestampColumn string
}

// DefaultSensorSchema returns the column bindings of the source sensor format.
func DefaultSensorSchema() SensorSchema {
	return SensorSchema{
		DateColumn:      "Date",
		TimeColumn:      "time",
		DropColumn:      "ficheiro.origem",
		TimestampColumn: "Temp_DateTime",
	}
}
