package storage

import (
	"fmt"

	"github.com/xuri/excelize/v2"

	"rental-viewer/models"
)

// XLSXReader reads the first worksheet of an Office Open XML workbook.
// Cell values are taken raw so number formats do not leak into parsing.
type XLSXReader struct{}

func (XLSXReader) Read(path string) (*models.RawTable, error) {
	f, err := excelize.OpenFile(path)
	if err != nil {
		return nil, fmt.Errorf("xlsx: open %q: %w", path, err)
	}
	defer f.Close()

	sheets := f.GetSheetList()
	if len(sheets) == 0 {
		return nil, fmt.Errorf("xlsx: %q has no worksheets", path)
	}

	rows, err := f.GetRows(sheets[0], excelize.Options{RawCellValue: true})
	if err != nil {
		return nil, fmt.Errorf("xlsx: read sheet %q: %w", sheets[0], err)
	}
	return newRawTable(path, rows)
}
