// Package export renders filtered row sets as downloadable XLSX
// workbooks. It is a stateless sink over the same column descriptors the
// list views use.
package export

import (
	"fmt"
	"io"

	"github.com/xuri/excelize/v2"

	"fieldsight-backend/internal/listing"
)

// WriteXLSX writes one sheet: a header row from the column labels, then
// one row per record formatted per column kind.
func WriteXLSX[T any](w io.Writer, sheet string, cols []listing.Column[T], rows []T) error {
	f := excelize.NewFile()
	defer f.Close()

	idx, err := f.NewSheet(sheet)
	if err != nil {
		return err
	}
	f.SetActiveSheet(idx)
	// drop the default sheet when the caller names their own
	if sheet != "Sheet1" {
		_ = f.DeleteSheet("Sheet1")
	}

	for i, col := range cols {
		cell, err := excelize.CoordinatesToCellName(i+1, 1)
		if err != nil {
			return err
		}
		if err := f.SetCellValue(sheet, cell, col.Label); err != nil {
			return err
		}
	}

	for rowNo, row := range rows {
		for i, col := range cols {
			cell, err := excelize.CoordinatesToCellName(i+1, rowNo+2)
			if err != nil {
				return err
			}
			if err := f.SetCellValue(sheet, cell, col.Format(row)); err != nil {
				return err
			}
		}
	}

	if err := f.Write(w); err != nil {
		return fmt.Errorf("export: write workbook: %w", err)
	}
	return nil
}
