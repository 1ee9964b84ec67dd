// Package tidemerge merges tide events with multi-sensor temperature
// readings by pairing each high-tide event with the nearest-in-time
// reading from every sensor sheet, within a fixed one-hour tolerance.
package tidemerge

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/lmcruz/tidemerge-go/pkg/tidemerge/pipeline"
)

// Options binds the input column names and the event filter literal.
// The match tolerance is not an option: it is fixed at
// pipeline.MatchTolerance for compatibility with the source behavior.
type Options struct {
	// EventDateColumn holds the tide event date.
	EventDateColumn string `yaml:"event_date_column"`
	// EventTimeColumn holds the tide event time of day.
	EventTimeColumn string `yaml:"event_time_column"`
	// EventTypeColumn holds the tide type.
	EventTypeColumn string `yaml:"event_type_column"`
	// EventValueColumn holds the numeric tide height.
	EventValueColumn string `yaml:"event_value_column"`
	// EventTypeMatch is the exact tide type kept by the filter.
	EventTypeMatch string `yaml:"event_type_match"`
	// EventPrefix namespaces the renamed event columns.
	EventPrefix string `yaml:"event_prefix"`
	// SensorDateColumn holds the reading date.
	SensorDateColumn string `yaml:"sensor_date_column"`
	// SensorTimeColumn holds the reading time of day.
	SensorTimeColumn string `yaml:"sensor_time_column"`
	// SensorDropColumn is a provenance marker discarded when present.
	SensorDropColumn string `yaml:"sensor_drop_column"`
}

// DefaultOptions returns the column bindings of the source formats.
func DefaultOptions() Options {
	ev := pipeline.DefaultEventSchema()
	sn := pipeline.DefaultSensorSchema()
	return Options{
		EventDateColumn:  ev.DateColumn,
		EventTimeColumn:  ev.TimeColumn,
		EventTypeColumn:  ev.TypeColumn,
		EventValueColumn: ev.ValueColumn,
		EventTypeMatch:   ev.TypeMatch,
		EventPrefix:      ev.Prefix,
		SensorDateColumn: sn.DateColumn,
		SensorTimeColumn: sn.TimeColumn,
		SensorDropColumn: sn.DropColumn,
	}
}

// LoadOptions reads YAML overrides from path on top of DefaultOptions.
// Keys absent from the file keep their default values.
func LoadOptions(path string) (Options, error) {
	opts := DefaultOptions()
	data, err := os.ReadFile(path)
	if err != nil {
		return opts, fmt.Errorf("read options: %w", err)
	}
	if err := yaml.Unmarshal(data, &opts); err != nil {
		return opts, fmt.Errorf("parse options: %w", err)
	}
	return opts, nil
}

func (o Options) eventSchema() pipeline.EventSchema {
	return pipeline.EventSchema{
		DateColumn:  o.EventDateColumn,
		TimeColumn:  o.EventTimeColumn,
		TypeColumn:  o.EventTypeColumn,
		ValueColumn: o.EventValueColumn,
		TypeMatch:   o.EventTypeMatch,
		Prefix:      o.EventPrefix,
	}
}

func (o Options) sensorSchema() pipeline.SensorSchema {
	return pipeline.SensorSchema{
		DateColumn:      o.SensorDateColumn,
		TimeColumn:      o.SensorTimeColumn,
		DropColumn:      o.SensorDropColumn,
		TimestampColumn: pipeline.DefaultSensorSchema().TimestampColumn,
	}
}
