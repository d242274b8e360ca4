package services

import "rental-viewer/models"

// ListingTable renders filtered listings with the given columns.
func ListingTable(rows []models.Listing, cols []models.Column) models.Table {
	t := models.Table{Columns: cols, Rows: make([][]models.Cell, 0, len(rows))}
	for i := range rows {
		cells := make([]models.Cell, len(cols))
		for c, col := range cols {
			cells[c] = models.NewCell(col, rows[i].Value(col))
		}
		t.Rows = append(t.Rows, cells)
	}
	return t
}

// AggregationTable renders deduplicated groups.
func AggregationTable(agg *models.Aggregation) models.Table {
	cols := agg.Columns()
	t := models.Table{Columns: cols, Rows: make([][]models.Cell, 0, len(agg.Groups))}
	for i := range agg.Groups {
		cells := make([]models.Cell, len(cols))
		for c, col := range cols {
			cells[c] = models.NewCell(col, agg.Value(&agg.Groups[i], col))
		}
		t.Rows = append(t.Rows, cells)
	}
	return t
}
