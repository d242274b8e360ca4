package models

// Cell is one rendered table cell. Link is set for link columns, in which
// case Text is the fixed label.
type Cell struct {
	Text string `json:"text"`
	Link string `json:"link,omitempty"`
}

// Table is the presentation form of a query result.
type Table struct {
	Columns []Column `json:"columns"`
	Rows    [][]Cell `json:"rows"`
}

// NewCell builds the cell for col, turning URLs of link columns into
// labelled links. Empty link values render as empty cells.
func NewCell(col Column, value string) Cell {
	if col.IsLink() {
		if value == "" {
			return Cell{}
		}
		return Cell{Text: col.LinkLabel(), Link: value}
	}
	return Cell{Text: value}
}

// View is the full answer to one query.
type View struct {
	Source       string        `json:"source"`
	Variant      string        `json:"variant"`
	Options      FilterOptions `json:"options"`
	Table        Table         `json:"table"`
	Total        int           `json:"total"`
	Matched      int           `json:"matched"`
	Deduplicated bool          `json:"deduplicated"`
}
