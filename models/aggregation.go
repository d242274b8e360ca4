package models

import "strconv"

// GroupedRow is one deduplicated group of listings.
type GroupedRow struct {
	Key       []string
	UnitCount int
	Ranges    map[Column]NumRange
	Address   string
	MapURL    string
}

// Aggregation is the result of collapsing listings by identifying columns.
type Aggregation struct {
	KeyColumns     []Column
	NumericColumns []Column
	Groups         []GroupedRow
}

// Columns returns the output columns: identifying columns, unit count,
// numeric columns, then the map link.
func (a *Aggregation) Columns() []Column {
	cols := make([]Column, 0, len(a.KeyColumns)+len(a.NumericColumns)+2)
	cols = append(cols, a.KeyColumns...)
	cols = append(cols, ColUnitCount)
	cols = append(cols, a.NumericColumns...)
	return append(cols, ColMapLink)
}

// Value returns the display text of col for group g.
func (a *Aggregation) Value(g *GroupedRow, col Column) string {
	for i, k := range a.KeyColumns {
		if k == col {
			return g.Key[i]
		}
	}
	switch col {
	case ColUnitCount:
		return strconv.Itoa(g.UnitCount)
	case ColMapLink:
		return g.MapURL
	}
	if r, ok := g.Ranges[col]; ok {
		return r.String()
	}
	return ""
}

// TotalUnits sums UnitCount over every group.
func (a *Aggregation) TotalUnits() int {
	n := 0
	for _, g := range a.Groups {
		n += g.UnitCount
	}
	return n
}
