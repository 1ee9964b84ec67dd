package tidemerge

import (
	"errors"
	"fmt"
)

// ErrNoData indicates the invocation produced an empty result set: no
// sensor sheets survived normalization, or there was nothing to merge.
// It is a terminal outcome, not a processing failure.
var ErrNoData = errors.New("no data to export")

// InputError represents a fatal structural problem with an input
// (missing required columns, unreadable workbook). It aborts the whole
// invocation and produces no output.
type InputError struct {
	Input string // "events" or "sensors"
	Err   error
}

func (e *InputError) Error() string {
	return fmt.Sprintf("input error in %s: %v", e.Input, e.Err)
}

func (e *InputError) Unwrap() error {
	return e.Err
}

// SheetError records why one sensor sheet was excluded from processing.
// It never aborts the invocation: the sheet is skipped and the rest
// continue.
type SheetError struct {
	Sheet string
	Err   error
}

func (e *SheetError) Error() string {
	return fmt.Sprintf("skipping sheet %q: %v", e.Sheet, e.Err)
}

func (e *SheetError) Unwrap() error {
	return e.Err
}
