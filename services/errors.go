package services

import (
	"errors"
	"fmt"

	"rental-viewer/models"
	"rental-viewer/storage"
)

var (
	// ErrUnsupportedFormat: the file extension is not delimited text or a spreadsheet.
	ErrUnsupportedFormat = storage.ErrUnsupportedFormat
	// ErrNoHeader: the file holds no non-blank record to use as a header.
	ErrNoHeader = storage.ErrNoHeader
	// ErrMalformedNumber: a currency or area cell is not a number after normalisation.
	ErrMalformedNumber = errors.New("malformed number")
	// ErrSchemaMismatch: the columns fit none of the announcement layouts.
	ErrSchemaMismatch = errors.New("schema mismatch")
	// ErrEmptySelection: the selected regions match no listing.
	ErrEmptySelection = errors.New("empty selection")
)

// NumberError reports the cell that failed numeric parsing.
type NumberError struct {
	Column models.Column
	Row    int // 1-based, header excluded
	Value  string
}

func (e *NumberError) Error() string {
	return fmt.Sprintf("%s: row %d %s: %q is not a valid number", ErrMalformedNumber, e.Row, e.Column, e.Value)
}

func (e *NumberError) Unwrap() error { return ErrMalformedNumber }
