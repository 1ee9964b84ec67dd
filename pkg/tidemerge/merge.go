package tidemerge

import (
	"github.com/lmcruz/tidemerge-go/pkg/tidemerge/models"
	"github.com/lmcruz/tidemerge-go/pkg/tidemerge/pipeline"
)

// Merge runs the full pipeline: normalize the tide event table, then for
// every sensor sheet normalize it and perform the tolerance-bounded
// nearest-match join, collecting one merged table per surviving sheet.
//
// Merge is a pure function of its inputs. A structural problem with the
// event table is fatal and returns an *InputError. A sheet that cannot be
// processed is excluded with a diagnostic and the rest continue. If
// nothing survives, Merge returns ErrNoData.
func Merge(events *models.Table, sheets []models.Sheet, opts Options, r Reporter) (*models.ResultSet, error) {
	if r == nil {
		r = NopReporter{}
	}

	ev, err := pipeline.NormalizeEvents(events, opts.eventSchema(), r)
	if err != nil {
		return nil, &InputError{Input: "events", Err: err}
	}

	sensorSchema := opts.sensorSchema()
	results := models.NewResultSet()
	for _, sheet := range sheets {
		normalized, err := pipeline.NormalizeSensorSheet(sheet.Name, sheet.Table, sensorSchema, r)
		if err != nil {
			r.Infof("%v", &SheetError{Sheet: sheet.Name, Err: err})
			continue
		}

		merged, err := pipeline.MergeNearest(ev, normalized, opts.eventSchema().TimestampColumn(), sensorSchema.TimestampColumn, sheet.Name)
		if err != nil {
			return nil, &InputError{Input: "sensors", Err: err}
		}
		results.Add(sheet.Name, merged)
		r.Infof("merged data for %q: %d rows", sheet.Name, merged.NumRows())
	}

	if results.Len() == 0 {
		return nil, ErrNoData
	}
	return results, nil
}
