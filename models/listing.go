package models

import (
	"strconv"
	"strings"
	"time"
)

// RawTable holds a tabular file exactly as read: one header row and text
// cells. It is the input of the loader and is discarded after parsing.
type RawTable struct {
	Source string
	Header []string
	Rows   [][]string
}

// Listing is one rentable unit with its typed core attributes. Every other
// text column of the source lives in Attrs keyed by canonical column.
type Listing struct {
	Region         string
	SubRegion      string
	Address        string
	FloorArea      float64
	Deposit        int64
	MonthlyRent    int64
	HasMonthlyRent bool
	MapURL         string
	Attrs          map[Column]string
}

// Value returns the display text of col for this listing.
func (l *Listing) Value(col Column) string {
	switch col {
	case ColRegion:
		return l.Region
	case ColSubRegion:
		return l.SubRegion
	case ColAddress:
		return l.Address
	case ColFloorArea:
		return FormatArea(l.FloorArea)
	case ColDeposit:
		return strconv.FormatInt(l.Deposit, 10)
	case ColMonthlyRent:
		if !l.HasMonthlyRent {
			return ""
		}
		return strconv.FormatInt(l.MonthlyRent, 10)
	case ColMapLink:
		return l.MapURL
	}
	return l.Attrs[col]
}

// Number returns the numeric value of a numeric column.
func (l *Listing) Number(col Column) (Number, bool) {
	switch col {
	case ColFloorArea:
		return FloatNumber(l.FloorArea), true
	case ColDeposit:
		return IntNumber(l.Deposit), true
	case ColMonthlyRent:
		return IntNumber(l.MonthlyRent), l.HasMonthlyRent
	}
	return Number{}, false
}

// Dataset is a loaded file: listings sorted by (region, sub-region,
// address) plus the resolved schema. It is never mutated after load.
type Dataset struct {
	Source   string
	Columns  []Column
	Listings []Listing
	Variant  *SchemaVariant
	LoadedAt time.Time
}

// HasColumn reports whether the source file carried col.
func (d *Dataset) HasColumn(col Column) bool {
	for _, c := range d.Columns {
		if c == col {
			return true
		}
	}
	return false
}

// FormatArea renders a floor area the way the announcement tables print
// it: shortest exact form, always with a decimal part ("20.0", "59.94").
func FormatArea(v float64) string {
	s := strconv.FormatFloat(v, 'f', -1, 64)
	if !strings.ContainsAny(s, ".NI") {
		s += ".0"
	}
	return s
}
