package xlsxio

import (
	"fmt"
	"time"

	"github.com/xuri/excelize/v2"

	"github.com/lmcruz/tidemerge-go/pkg/tidemerge/models"
)

// WriteResultSet encodes the result set as a multi-sheet xlsx file, one
// sheet per merged table in result order, header row first. Nil cells
// are left empty; timestamps are written as "YYYY-MM-DD HH:MM:SS" text.
func WriteResultSet(path string, rs *models.ResultSet) error {
	f := excelize.NewFile()
	defer f.Close()

	for i, name := range rs.Names() {
		if i == 0 {
			if err := f.SetSheetName("Sheet1", name); err != nil {
				return fmt.Errorf("create sheet %q: %w", name, err)
			}
		} else if _, err := f.NewSheet(name); err != nil {
			return fmt.Errorf("create sheet %q: %w", name, err)
		}

		t, _ := rs.Get(name)
		if err := writeTable(f, name, t); err != nil {
			return fmt.Errorf("write sheet %q: %w", name, err)
		}
	}

	if err := f.SaveAs(path); err != nil {
		return fmt.Errorf("save workbook: %w", err)
	}
	return nil
}

func writeTable(f *excelize.File, sheet string, t *models.Table) error {
	header := make([]any, len(t.Columns))
	for i, col := range t.Columns {
		header[i] = col
	}
	if err := f.SetSheetRow(sheet, "A1", &header); err != nil {
		return err
	}

	for rowIdx, row := range t.Rows {
		cells := make([]any, len(row))
		for i, v := range row {
			cells[i] = cellValue(v)
		}
		start, err := excelize.CoordinatesToCellName(1, rowIdx+2)
		if err != nil {
			return err
		}
		if err := f.SetSheetRow(sheet, start, &cells); err != nil {
			return err
		}
	}
	return nil
}

func cellValue(v any) any {
	if ts, ok := v.(time.Time); ok {
		return ts.Format("2006-01-02 15:04:05")
	}
	return v
}
