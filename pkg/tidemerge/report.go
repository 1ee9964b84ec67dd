package tidemerge

import (
	"log"

	"github.com/lmcruz/tidemerge-go/pkg/tidemerge/pipeline"
)

// Reporter receives diagnostic messages (row counts, skipped sheets,
// duplicate counts). Diagnostics are one-way: they never alter control
// flow and are not part of the merge result.
type Reporter = pipeline.Reporter

// LogReporter writes diagnostics to a standard library logger.
type LogReporter struct {
	logger *log.Logger
}

// NewLogReporter creates a Reporter backed by the given logger.
func NewLogReporter(l *log.Logger) *LogReporter {
	return &LogReporter{logger: l}
}

// Infof logs an informational message with an INFO prefix.
func (r *LogReporter) Infof(format string, args ...any) {
	r.logger.Printf("INFO: "+format, args...)
}

// Warnf logs a warning message with a WARN prefix.
func (r *LogReporter) Warnf(format string, args ...any) {
	r.logger.Printf("WARN: "+format, args...)
}

// NopReporter discards all diagnostics.
type NopReporter struct{}

// Infof discards the message.
func (NopReporter) Infof(string, ...any) {}

// Warnf discards the message.
func (NopReporter) Warnf(string, ...any) {}
