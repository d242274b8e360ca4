package storage

import (
	"encoding/csv"
	"fmt"
	"io"
	"os"
	"path/filepath"

	"rental-viewer/models"
)

// CSVWriter writes rendered tables as UTF-8 CSV with a byte-order mark so
// spreadsheet programs open Hangul correctly. Link columns carry the URL,
// not the display label.
type CSVWriter struct {
	closer io.Closer
	writer *csv.Writer
	out    io.Writer
}

// NewCSVWriter wraps w. Close does not close w.
func NewCSVWriter(w io.Writer) *CSVWriter {
	return &CSVWriter{writer: csv.NewWriter(w), out: w}
}

// NewCSVFileWriter creates (or truncates) the CSV file at the given path.
// Intermediate directories are created automatically.
func NewCSVFileWriter(path string) (*CSVWriter, error) {
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return nil, fmt.Errorf("csv: create output dir: %w", err)
	}

	f, err := os.Create(path)
	if err != nil {
		return nil, fmt.Errorf("csv: create file %q: %w", path, err)
	}

	w := NewCSVWriter(f)
	w.closer = f
	return w, nil
}

// WriteTable writes the header row followed by every table row.
func (c *CSVWriter) WriteTable(t *models.Table) error {
	if _, err := c.out.Write(utf8BOM); err != nil {
		return fmt.Errorf("csv: write bom: %w", err)
	}

	header := make([]string, len(t.Columns))
	for i, col := range t.Columns {
		header[i] = string(col)
	}
	if err := c.writer.Write(header); err != nil {
		return fmt.Errorf("csv: write header: %w", err)
	}

	for _, cells := range t.Rows {
		row := make([]string, len(cells))
		for i, cell := range cells {
			if cell.Link != "" {
				row[i] = cell.Link
			} else {
				row[i] = cell.Text
			}
		}
		if err := c.writer.Write(row); err != nil {
			return fmt.Errorf("csv: write row: %w", err)
		}
	}

	c.writer.Flush()
	return c.writer.Error()
}

// Close flushes and closes the underlying file, if any.
func (c *CSVWriter) Close() error {
	c.writer.Flush()
	if c.closer != nil {
		return c.closer.Close()
	}
	return c.writer.Error()
}
