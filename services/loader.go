package services

import (
	"fmt"
	"math"
	"path/filepath"
	"sort"
	"strconv"
	"strings"
	"time"

	"rental-viewer/models"
	"rental-viewer/storage"
	"rental-viewer/utils"
)

// currencyReplacer strips thousands separators and stray quotes.
var currencyReplacer = strings.NewReplacer(",", "", `"`, "")

// Loader turns announcement files into typed, sorted datasets.
type Loader struct {
	logger *utils.Logger
	links  MapLinker
}

// NewLoader creates a Loader that derives map links with the given linker.
func NewLoader(logger *utils.Logger, links MapLinker) *Loader {
	return &Loader{logger: logger, links: links}
}

// Load reads the file at path and parses it. Any failure aborts the whole
// load; no partial dataset is returned.
func (l *Loader) Load(path string) (*models.Dataset, error) {
	reader, err := storage.ReaderFor(path)
	if err != nil {
		return nil, fmt.Errorf("loader: %w", err)
	}

	start := time.Now()
	raw, err := reader.Read(path)
	if err != nil {
		return nil, fmt.Errorf("loader: %w", err)
	}

	ds, err := l.Parse(raw)
	if err != nil {
		return nil, err
	}

	l.logger.Info("[loader] %s: %d listings, %s layout (%v)",
		filepath.Base(path), len(ds.Listings), ds.Variant.Kind, time.Since(start).Truncate(time.Millisecond))
	return ds, nil
}

// Parse converts a raw table into a dataset.
func (l *Loader) Parse(raw *models.RawTable) (*models.Dataset, error) {
	name := filepath.Base(raw.Source)

	index := make(map[models.Column]int, len(raw.Header))
	var columns []models.Column
	for i, h := range raw.Header {
		col := models.CanonicalColumn(h)
		if col == "" {
			continue
		}
		if _, dup := index[col]; dup {
			l.logger.Warn("[loader] %s: duplicate column %q ignored", name, col)
			continue
		}
		index[col] = i
		if col != models.ColMapLink {
			columns = append(columns, col)
		}
	}
	columns = append(columns, models.ColMapLink)

	variant, err := ResolveSchema(columns)
	if err != nil {
		return nil, fmt.Errorf("loader: %s: %w", name, err)
	}

	_, hasRent := index[models.ColMonthlyRent]
	listings := make([]models.Listing, 0, len(raw.Rows))

	for i, rec := range raw.Rows {
		if isBlankRecord(rec) {
			l.logger.Debug("[loader] %s: blank row %d skipped", name, i+1)
			continue
		}
		cell := func(col models.Column) string {
			idx, ok := index[col]
			if !ok || idx >= len(rec) {
				return ""
			}
			return rec[idx]
		}

		area, err := ParseArea(cell(models.ColFloorArea))
		if err != nil {
			return nil, fmt.Errorf("loader: %s: %w", name, &NumberError{Column: models.ColFloorArea, Row: i + 1, Value: cell(models.ColFloorArea)})
		}
		deposit, err := ParseCurrency(cell(models.ColDeposit))
		if err != nil {
			return nil, fmt.Errorf("loader: %s: %w", name, &NumberError{Column: models.ColDeposit, Row: i + 1, Value: cell(models.ColDeposit)})
		}

		address := strings.TrimSpace(cell(models.ColAddress))
		listing := models.Listing{
			Region:         cell(models.ColRegion),
			SubRegion:      cell(models.ColSubRegion),
			Address:        address,
			FloorArea:      area,
			Deposit:        deposit,
			HasMonthlyRent: hasRent,
			MapURL:         l.links.URL(address),
			Attrs:          make(map[models.Column]string),
		}
		if hasRent {
			rent, err := ParseCurrency(cell(models.ColMonthlyRent))
			if err != nil {
				return nil, fmt.Errorf("loader: %s: %w", name, &NumberError{Column: models.ColMonthlyRent, Row: i + 1, Value: cell(models.ColMonthlyRent)})
			}
			listing.MonthlyRent = rent
		}
		for col := range index {
			if !isCoreColumn(col) {
				listing.Attrs[col] = cell(col)
			}
		}

		listings = append(listings, listing)
	}

	sort.SliceStable(listings, func(i, j int) bool {
		a, b := &listings[i], &listings[j]
		if a.Region != b.Region {
			return a.Region < b.Region
		}
		if a.SubRegion != b.SubRegion {
			return a.SubRegion < b.SubRegion
		}
		return a.Address < b.Address
	})

	return &models.Dataset{
		Source:   raw.Source,
		Columns:  columns,
		Listings: listings,
		Variant:  variant,
		LoadedAt: time.Now(),
	}, nil
}

// ParseCurrency parses an amount such as `"2,000,000"` into 2000000.
func ParseCurrency(raw string) (int64, error) {
	s := strings.TrimSpace(currencyReplacer.Replace(raw))
	v, err := strconv.ParseInt(s, 10, 64)
	if err != nil {
		return 0, fmt.Errorf("%w: %q", ErrMalformedNumber, raw)
	}
	return v, nil
}

// ParseArea parses a floor area in square metres.
func ParseArea(raw string) (float64, error) {
	v, err := strconv.ParseFloat(strings.TrimSpace(raw), 64)
	if err != nil || math.IsNaN(v) || math.IsInf(v, 0) {
		return 0, fmt.Errorf("%w: %q", ErrMalformedNumber, raw)
	}
	return v, nil
}

func isCoreColumn(col models.Column) bool {
	switch col {
	case models.ColRegion, models.ColSubRegion, models.ColAddress,
		models.ColFloorArea, models.ColDeposit, models.ColMonthlyRent, models.ColMapLink:
		return true
	}
	return false
}

func isBlankRecord(rec []string) bool {
	for _, c := range rec {
		if strings.TrimSpace(c) != "" {
			return false
		}
	}
	return true
}
