package models

// VariantKind identifies which announcement layout a dataset follows.
type VariantKind int

const (
	// VariantStructure is the default layout filtered by housing type and
	// room structure.
	VariantStructure VariantKind = iota
	// VariantLease is the lease/purchase layout (has 매입유형).
	VariantLease
	// VariantPurchase is the purchase-type supply layout (has 공급계).
	VariantPurchase
)

func (k VariantKind) String() string {
	switch k {
	case VariantPurchase:
		return "purchase"
	case VariantLease:
		return "lease"
	default:
		return "structure"
	}
}

// SchemaVariant is the resolved display/filter configuration of a dataset.
// Display only lists columns the dataset actually carries, in display order.
type SchemaVariant struct {
	Kind       VariantKind
	Display    []Column
	Axes       [2]Column
	NameColumn Column
}

// Shows reports whether col is part of the display list.
func (v *SchemaVariant) Shows(col Column) bool {
	for _, c := range v.Display {
		if c == col {
			return true
		}
	}
	return false
}
