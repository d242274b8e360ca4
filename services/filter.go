package services

import (
	"math"

	"rental-viewer/models"
	"rental-viewer/utils"
)

// DefaultDepositStep is the slider granularity of deposit bounds.
const DefaultDepositStep int64 = 10_000_000

// FilterEngine computes filter options and applies selections.
type FilterEngine struct {
	depositStep int64
}

// NewFilterEngine creates a FilterEngine that rounds deposit bounds
// outward to multiples of depositStep.
func NewFilterEngine(depositStep int64) *FilterEngine {
	if depositStep <= 0 {
		depositStep = DefaultDepositStep
	}
	return &FilterEngine{depositStep: depositStep}
}

// Options returns the choices a user has for sel. Sub-region options are
// limited to rows in the selected regions.
func (e *FilterEngine) Options(ds *models.Dataset, sel models.Selection) models.FilterOptions {
	regions := utils.NewSet()
	axes := [2]*utils.Set{utils.NewSet(), utils.NewSet()}
	for i := range ds.Listings {
		l := &ds.Listings[i]
		regions.Add(l.Region)
		for a, col := range ds.Variant.Axes {
			axes[a].Add(l.Value(col))
		}
	}

	opts := models.FilterOptions{Regions: regions.Sorted()}

	selected := utils.NewSet(expandAll(sel.Regions, opts.Regions)...)
	subRegions := utils.NewSet()
	for i := range ds.Listings {
		if l := &ds.Listings[i]; selected.Contains(l.Region) {
			subRegions.Add(l.SubRegion)
		}
	}
	opts.SubRegions = subRegions.Sorted()

	for a, col := range ds.Variant.Axes {
		opts.Axes[a] = models.AxisOptions{
			Column:  col,
			Values:  axes[a].Sorted(),
			Exposed: axes[a].Size() > 1,
		}
	}

	opts.Area, opts.Deposit = e.bounds(ds.Listings)
	return opts
}

// Resolve expands "all" choices and fills missing bounds from opts, which
// must come from Options for the same dataset and selection. Sub-region and
// axis choices no longer offered by opts are dropped; if none remain the
// whole option list applies.
func (e *FilterEngine) Resolve(sel models.Selection, opts models.FilterOptions) models.ResolvedSelection {
	rs := models.ResolvedSelection{
		Regions:    expandAll(sel.Regions, opts.Regions),
		SubRegions: restrict(sel.SubRegions, opts.SubRegions),
		Area:       opts.Area,
		Deposit:    opts.Deposit,
	}

	for a, chosen := range [2][]string{sel.Axis1, sel.Axis2} {
		axis := opts.Axes[a]
		if !axis.Exposed {
			rs.Axes[a] = axis.Values
			continue
		}
		rs.Axes[a] = restrict(chosen, axis.Values)
	}

	if sel.AreaMin != nil {
		rs.Area.Min = *sel.AreaMin
	}
	if sel.AreaMax != nil {
		rs.Area.Max = *sel.AreaMax
	}
	if sel.DepositMin != nil {
		rs.Deposit.Min = *sel.DepositMin
	}
	if sel.DepositMax != nil {
		rs.Deposit.Max = *sel.DepositMax
	}
	return rs
}

// Apply returns the listings matching every predicate of rs, in dataset
// order. The dataset is not modified.
func Apply(ds *models.Dataset, rs models.ResolvedSelection) []models.Listing {
	regions := utils.NewSet(rs.Regions...)
	subRegions := utils.NewSet(rs.SubRegions...)
	axes := [2]*utils.Set{utils.NewSet(rs.Axes[0]...), utils.NewSet(rs.Axes[1]...)}

	out := make([]models.Listing, 0, len(ds.Listings))
	for i := range ds.Listings {
		l := &ds.Listings[i]
		if !regions.Contains(l.Region) || !subRegions.Contains(l.SubRegion) {
			continue
		}
		if !axes[0].Contains(l.Value(ds.Variant.Axes[0])) || !axes[1].Contains(l.Value(ds.Variant.Axes[1])) {
			continue
		}
		if !rs.Area.Contains(l.FloorArea) || !rs.Deposit.Contains(l.Deposit) {
			continue
		}
		out = append(out, *l)
	}
	return out
}

// PruneColumns drops every column whose value is the same on all rows,
// so a single row drops them all. An empty row set keeps every column.
func PruneColumns(rows []models.Listing, cols []models.Column) []models.Column {
	out := make([]models.Column, 0, len(cols))
	if len(rows) == 0 {
		return append(out, cols...)
	}
	for _, col := range cols {
		first := rows[0].Value(col)
		for i := 1; i < len(rows); i++ {
			if rows[i].Value(col) != first {
				out = append(out, col)
				break
			}
		}
	}
	return out
}

// bounds returns the default slider ranges: area floored/ceiled to whole
// square metres, deposit rounded outward to the deposit step.
func (e *FilterEngine) bounds(listings []models.Listing) (models.FloatRange, models.IntRange) {
	if len(listings) == 0 {
		return models.FloatRange{}, models.IntRange{}
	}
	area := models.FloatRange{Min: listings[0].FloorArea, Max: listings[0].FloorArea}
	deposit := models.IntRange{Min: listings[0].Deposit, Max: listings[0].Deposit}
	for _, l := range listings[1:] {
		area.Min = math.Min(area.Min, l.FloorArea)
		area.Max = math.Max(area.Max, l.FloorArea)
		deposit.Min = min(deposit.Min, l.Deposit)
		deposit.Max = max(deposit.Max, l.Deposit)
	}
	return models.FloatRange{Min: math.Floor(area.Min), Max: math.Ceil(area.Max)},
		models.IntRange{Min: floorTo(deposit.Min, e.depositStep), Max: ceilTo(deposit.Max, e.depositStep)}
}

// expandAll treats an empty choice or one containing AllOption as every
// value in universe.
func expandAll(chosen, universe []string) []string {
	if len(chosen) == 0 {
		return universe
	}
	for _, c := range chosen {
		if c == models.AllOption {
			return universe
		}
	}
	return utils.NewSet(chosen...).Values()
}

// restrict is expandAll limited to universe. Stale choices fall back to
// the whole universe instead of matching nothing.
func restrict(chosen, universe []string) []string {
	offered := utils.NewSet(universe...)
	var kept []string
	for _, c := range expandAll(chosen, universe) {
		if offered.Contains(c) {
			kept = append(kept, c)
		}
	}
	if len(kept) == 0 {
		return universe
	}
	return kept
}

func floorTo(v, step int64) int64 {
	q := v / step
	if v%step != 0 && v < 0 {
		q--
	}
	return q * step
}

func ceilTo(v, step int64) int64 {
	q := v / step
	if v%step != 0 && v > 0 {
		q++
	}
	return q * step
}
