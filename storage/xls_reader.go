package storage

import (
	"fmt"
	"os"

	"github.com/extrame/xls"

	"rental-viewer/models"
)

// XLSReader reads the first sheet of a legacy BIFF (.xls) workbook.
type XLSReader struct{}

func (XLSReader) Read(path string) (*models.RawTable, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("xls: open %q: %w", path, err)
	}
	defer f.Close()

	wb, err := xls.OpenReader(f, "utf-8")
	if err != nil {
		return nil, fmt.Errorf("xls: open %q: %w", path, err)
	}
	if wb == nil {
		return nil, fmt.Errorf("%w: %q has no workbook stream", ErrUnsupportedFormat, path)
	}

	sheet := wb.GetSheet(0)
	if sheet == nil {
		return nil, fmt.Errorf("xls: %q has no worksheets", path)
	}

	records := make([][]string, 0, int(sheet.MaxRow)+1)
	width := 0
	for i := 0; i <= int(sheet.MaxRow); i++ {
		row := sheetRow(sheet, i)
		if row == nil {
			records = append(records, nil)
			continue
		}
		// Rows written without a ROW record report no columns.
		first, last := row.FirstCol(), row.LastCol()
		if last <= 0 {
			first, last = 0, width
		}
		width = max(width, last)
		cells := make([]string, last)
		for j := first; j < last; j++ {
			cells[j] = row.Col(j)
		}
		records = append(records, cells)
	}
	return newRawTable(path, records)
}

// sheetRow returns nil for rows absent from the sheet, which Row panics on.
func sheetRow(sheet *xls.WorkSheet, i int) (row *xls.Row) {
	defer func() {
		if recover() != nil {
			row = nil
		}
	}()
	return sheet.Row(i)
}
