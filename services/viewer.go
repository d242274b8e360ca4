package services

import (
	"context"
	"path/filepath"

	"rental-viewer/models"
	"rental-viewer/utils"
)

// DatasetSource hands out loaded datasets; cache.DatasetCache satisfies it.
type DatasetSource interface {
	Get(path string) (*models.Dataset, error)
}

// Viewer runs the full pipeline: load, options, filter, prune and the
// optional deduplication.
type Viewer struct {
	source DatasetSource
	filter *FilterEngine
	agg    *Aggregator
	logger *utils.Logger
}

func NewViewer(source DatasetSource, filter *FilterEngine, agg *Aggregator, logger *utils.Logger) *Viewer {
	return &Viewer{source: source, filter: filter, agg: agg, logger: logger}
}

// Query loads the dataset at path and evaluates sel against it.
func (v *Viewer) Query(ctx context.Context, path string, sel models.Selection) (*models.View, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	ds, err := v.source.Get(path)
	if err != nil {
		return nil, err
	}
	return v.Run(ds, sel)
}

// Run evaluates sel against an already loaded dataset. When the selected
// regions match nothing, the view carries the options only and the error
// is ErrEmptySelection.
func (v *Viewer) Run(ds *models.Dataset, sel models.Selection) (*models.View, error) {
	opts := v.filter.Options(ds, sel)
	view := &models.View{
		Source:       filepath.Base(ds.Source),
		Variant:      ds.Variant.Kind.String(),
		Options:      opts,
		Deduplicated: sel.Deduplicate,
		Table:        models.Table{Columns: ds.Variant.Display, Rows: [][]models.Cell{}},
	}
	if len(opts.SubRegions) == 0 {
		v.logger.Debug("[viewer] %s: regions %v match nothing", view.Source, sel.Regions)
		return view, ErrEmptySelection
	}

	rows := Apply(ds, v.filter.Resolve(sel, opts))
	cols := PruneColumns(rows, ds.Variant.Display)
	view.Matched = len(rows)

	if sel.Deduplicate {
		view.Table = AggregationTable(v.agg.Aggregate(rows, cols, ds.Variant))
	} else {
		view.Table = ListingTable(rows, cols)
	}
	view.Total = len(view.Table.Rows)

	v.logger.Debug("[viewer] %s: %d/%d listings, %d rows shown", view.Source, view.Matched, len(ds.Listings), view.Total)
	return view, nil
}
