package storage

import (
	"bufio"
	"bytes"
	"encoding/csv"
	"fmt"
	"os"
	"unicode/utf8"

	"golang.org/x/text/encoding/korean"

	"rental-viewer/models"
)

var utf8BOM = []byte("\xef\xbb\xbf")

// CSVReader reads delimited text. Files that are not valid UTF-8 are
// decoded as EUC-KR/CP949, the usual export encoding of Korean public data
// portals.
type CSVReader struct {
	// Comma is the field delimiter. If 0, it is sniffed from the header line.
	Comma rune
}

func (r *CSVReader) Read(path string) (*models.RawTable, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("csv: read %q: %w", path, err)
	}

	data, err = decodeText(data)
	if err != nil {
		return nil, fmt.Errorf("csv: decode %q: %w", path, err)
	}

	comma := r.Comma
	if comma == 0 {
		comma = sniffDelimiter(data)
	}

	cr := csv.NewReader(bytes.NewReader(data))
	cr.Comma = comma
	cr.FieldsPerRecord = -1
	cr.LazyQuotes = true

	records, err := cr.ReadAll()
	if err != nil {
		return nil, fmt.Errorf("csv: parse %q: %w", path, err)
	}
	return newRawTable(path, records)
}

func decodeText(data []byte) ([]byte, error) {
	data = bytes.TrimPrefix(data, utf8BOM)
	if utf8.Valid(data) {
		return data, nil
	}
	return korean.EUCKR.NewDecoder().Bytes(data)
}

// sniffDelimiter picks the most frequent of ',', ';' and tab on the first
// line, defaulting to comma.
func sniffDelimiter(data []byte) rune {
	sc := bufio.NewScanner(bytes.NewReader(data))
	sc.Buffer(make([]byte, 0, 64*1024), 1024*1024)
	if !sc.Scan() {
		return ','
	}
	line := sc.Text()

	best, bestCount := ',', 0
	for _, d := range []rune{',', ';', '\t'} {
		n := 0
		for _, c := range line {
			if c == d {
				n++
			}
		}
		if n > bestCount {
			best, bestCount = d, n
		}
	}
	return best
}
