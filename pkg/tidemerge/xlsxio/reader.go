// Package xlsxio decodes and encodes xlsx workbooks at the pipeline
// boundary: raw tables in, the merged result set out.
package xlsxio

import (
	"fmt"
	"strconv"

	"github.com/xuri/excelize/v2"

	"github.com/lmcruz/tidemerge-go/pkg/tidemerge/models"
)

// ReadEventTable reads the tide event workbook. Only the first sheet is
// consumed; any others are ignored.
func ReadEventTable(path string) (*models.Table, error) {
	f, err := excelize.OpenFile(path)
	if err != nil {
		return nil, fmt.Errorf("open event workbook: %w", err)
	}
	defer f.Close()

	sheets := f.GetSheetList()
	if len(sheets) == 0 {
		return nil, fmt.Errorf("event workbook %q has no sheets", path)
	}
	return readSheet(f, sheets[0])
}

// ReadSensorSheets reads every sheet of the sensor workbook, in workbook
// order. Sheets that fail to decode or hold no data still appear, as
// empty tables, so the normalizer can report them as skipped.
func ReadSensorSheets(path string) ([]models.Sheet, error) {
	f, err := excelize.OpenFile(path)
	if err != nil {
		return nil, fmt.Errorf("open sensor workbook: %w", err)
	}
	defer f.Close()

	var sheets []models.Sheet
	for _, name := range f.GetSheetList() {
		t, err := readSheet(f, name)
		if err != nil {
			t = models.NewTable()
		}
		sheets = append(sheets, models.Sheet{Name: name, Table: t})
	}
	return sheets, nil
}

// readSheet decodes one sheet into a table. The first row is the header;
// following rows are data, with cells coerced via parseValue and empty
// cells stored as nil.
func readSheet(f *excelize.File, name string) (*models.Table, error) {
	rows, err := f.GetRows(name)
	if err != nil {
		return nil, err
	}
	if len(rows) == 0 {
		return models.NewTable(), nil
	}

	t := models.NewTable(rows[0]...)
	for _, row := range rows[1:] {
		cells := make([]any, len(row))
		for i, cell := range row {
			if cell == "" {
				continue
			}
			cells[i] = parseValue(cell)
		}
		t.AppendRow(cells)
	}
	return t, nil
}

// parseValue attempts to parse a cell string as a number.
// Returns int64 for integers, float64 for decimals, or the original string.
func parseValue(s string) any {
	if i, err := strconv.ParseInt(s, 10, 64); err == nil {
		return i
	}
	if f, err := strconv.ParseFloat(s, 64); err == nil {
		return f
	}
	return s
}
