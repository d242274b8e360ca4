package models

// Selection is what the user picked. Empty lists and the AllOption mean
// "every value"; nil bounds fall back to the dataset defaults.
type Selection struct {
	Regions     []string `json:"regions,omitempty"`
	SubRegions  []string `json:"sub_regions,omitempty"`
	Axis1       []string `json:"axis1,omitempty"`
	Axis2       []string `json:"axis2,omitempty"`
	AreaMin     *float64 `json:"area_min,omitempty"`
	AreaMax     *float64 `json:"area_max,omitempty"`
	DepositMin  *int64   `json:"deposit_min,omitempty"`
	DepositMax  *int64   `json:"deposit_max,omitempty"`
	Deduplicate bool     `json:"deduplicate,omitempty"`
}

// FloatRange is an inclusive floating-point interval.
type FloatRange struct {
	Min float64 `json:"min"`
	Max float64 `json:"max"`
}

func (r FloatRange) Contains(v float64) bool { return v >= r.Min && v <= r.Max }

// IntRange is an inclusive integer interval.
type IntRange struct {
	Min int64 `json:"min"`
	Max int64 `json:"max"`
}

func (r IntRange) Contains(v int64) bool { return v >= r.Min && v <= r.Max }

// AxisOptions describes one categorical filter. An axis with a single
// distinct value is not exposed to the user and never filters anything.
type AxisOptions struct {
	Column  Column   `json:"column"`
	Values  []string `json:"values"`
	Exposed bool     `json:"exposed"`
}

// FilterOptions is everything a UI needs to draw the filter widgets.
type FilterOptions struct {
	Regions    []string       `json:"regions"`
	SubRegions []string       `json:"sub_regions"`
	Axes       [2]AxisOptions `json:"axes"`
	Area       FloatRange     `json:"area"`
	Deposit    IntRange       `json:"deposit"`
}

// ResolvedSelection is a Selection with every "all" expanded to concrete
// values and every missing bound defaulted.
type ResolvedSelection struct {
	Regions    []string
	SubRegions []string
	Axes       [2][]string
	Area       FloatRange
	Deposit    IntRange
}
