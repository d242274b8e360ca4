package services

import (
	"sort"
	"strings"

	"rental-viewer/models"
	"rental-viewer/utils"
)

// Aggregator collapses listings that share identifying columns.
type Aggregator struct {
	logger *utils.Logger
	links  MapLinker
}

func NewAggregator(logger *utils.Logger, links MapLinker) *Aggregator {
	return &Aggregator{logger: logger, links: links}
}

// IdentifyingColumns returns region, sub-region, address, the layout's
// name column and both axes, restricted to the visible columns.
func IdentifyingColumns(variant *models.SchemaVariant, visible []models.Column) []models.Column {
	shown := utils.NewSet()
	for _, c := range visible {
		shown.Add(string(c))
	}
	candidates := []models.Column{
		models.ColRegion, models.ColSubRegion, models.ColAddress,
		variant.NameColumn, variant.Axes[0], variant.Axes[1],
	}
	seen := utils.NewSet()
	var out []models.Column
	for _, c := range candidates {
		if c != "" && shown.Contains(string(c)) && seen.Add(string(c)) {
			out = append(out, c)
		}
	}
	return out
}

// Aggregate groups rows by their identifying-column values. Each group
// reports its unit count and the min/max of every visible numeric column.
// Groups come back sorted ascending by key. With no identifying columns
// all rows form one group. rows is not modified.
func (a *Aggregator) Aggregate(rows []models.Listing, visible []models.Column, variant *models.SchemaVariant) *models.Aggregation {
	agg := &models.Aggregation{KeyColumns: IdentifyingColumns(variant, visible)}
	for _, c := range []models.Column{models.ColFloorArea, models.ColDeposit, models.ColMonthlyRent} {
		for _, v := range visible {
			if v == c {
				agg.NumericColumns = append(agg.NumericColumns, c)
				break
			}
		}
	}

	index := make(map[string]int)
	for i := range rows {
		l := &rows[i]
		key := make([]string, len(agg.KeyColumns))
		for k, col := range agg.KeyColumns {
			key[k] = l.Value(col)
		}
		id := strings.Join(key, "\x1f")

		gi, ok := index[id]
		if !ok {
			gi = len(agg.Groups)
			index[id] = gi
			agg.Groups = append(agg.Groups, models.GroupedRow{
				Key:     key,
				Ranges:  make(map[models.Column]models.NumRange, len(agg.NumericColumns)),
				Address: l.Address,
			})
		}
		g := &agg.Groups[gi]
		g.UnitCount++
		for _, col := range agg.NumericColumns {
			n, ok := l.Number(col)
			if !ok {
				continue
			}
			r, seen := g.Ranges[col]
			if !seen {
				r = models.NumRange{Min: n, Max: n}
			} else {
				r.Extend(n)
			}
			g.Ranges[col] = r
		}
	}

	for i := range agg.Groups {
		agg.Groups[i].MapURL = a.links.URL(agg.Groups[i].Address)
	}
	sort.SliceStable(agg.Groups, func(i, j int) bool {
		return lessKey(agg.Groups[i].Key, agg.Groups[j].Key)
	})

	a.logger.Debug("[aggregate] %d rows -> %d groups by %v", len(rows), len(agg.Groups), agg.KeyColumns)
	return agg
}

func lessKey(a, b []string) bool {
	for i := range a {
		if a[i] != b[i] {
			return a[i] < b[i]
		}
	}
	return false
}
