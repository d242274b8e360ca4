package storage

import (
	"errors"
	"fmt"
	"path/filepath"
	"strings"

	"rental-viewer/models"
)

// ErrUnsupportedFormat is returned for files that are neither delimited
// text nor a spreadsheet.
var ErrUnsupportedFormat = errors.New("unsupported file format")

// ErrNoHeader is returned when a file holds no non-blank record.
var ErrNoHeader = errors.New("no header row")

// TableReader is the interface any tabular file format must satisfy.
type TableReader interface {
	Read(path string) (*models.RawTable, error)
}

// TableWriter is the interface for exporting a rendered view.
type TableWriter interface {
	WriteTable(t *models.Table) error
	Close() error
}

// ReaderFor picks a reader from the file extension.
func ReaderFor(path string) (TableReader, error) {
	ext := strings.ToLower(filepath.Ext(path))
	switch ext {
	case ".csv", ".txt":
		return &CSVReader{}, nil
	case ".tsv":
		return &CSVReader{Comma: '\t'}, nil
	case ".xlsx", ".xlsm":
		return &XLSXReader{}, nil
	case ".xls":
		return &XLSReader{}, nil
	}
	return nil, fmt.Errorf("%w: %q", ErrUnsupportedFormat, filepath.Base(path))
}

// newRawTable takes the first non-blank record as the header.
func newRawTable(source string, records [][]string) (*models.RawTable, error) {
	for i, rec := range records {
		if isBlank(rec) {
			continue
		}
		return &models.RawTable{
			Source: source,
			Header: rec,
			Rows:   records[i+1:],
		}, nil
	}
	return nil, fmt.Errorf("%w: %s", ErrNoHeader, filepath.Base(source))
}

func isBlank(rec []string) bool {
	for _, c := range rec {
		if strings.TrimSpace(c) != "" {
			return false
		}
	}
	return true
}
