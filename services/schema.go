package services

import (
	"fmt"
	"strings"

	"rental-viewer/models"
)

type layout struct {
	kind    models.VariantKind
	marker  models.Column
	display []models.Column
	axes    [2]models.Column
	name    models.Column
}

// Checked in order; the first layout whose marker is present wins and the
// marker-less structure layout is the fallback.
var layouts = []layout{
	{
		kind:   models.VariantPurchase,
		marker: models.ColSupplyTotal,
		display: []models.Column{
			models.ColCategory, models.ColRegion, models.ColSubRegion, models.ColAddress,
			models.ColComplexName, models.ColSupplyType, models.ColSupplyDetail,
			models.ColSupplyTotal, models.ColSupplyPriority, models.ColSupplyGeneral, models.ColSupplyReserve,
		},
		axes: [2]models.Column{models.ColSupplyType, models.ColSupplyDetail},
		name: models.ColComplexName,
	},
	{
		kind:   models.VariantLease,
		marker: models.ColPurchaseType,
		display: []models.Column{
			models.ColRegion, models.ColSubRegion, models.ColHouseName, models.ColAddress,
			models.ColHousingType, models.ColPurchaseType, models.ColPortalLink,
		},
		axes: [2]models.Column{models.ColHousingType, models.ColPurchaseType},
		name: models.ColHouseName,
	},
	{
		kind: models.VariantStructure,
		display: []models.Column{
			models.ColRegion, models.ColSubRegion, models.ColHouseName, models.ColHouseGroup,
			models.ColAddress, models.ColHousingType, models.ColStructureType,
		},
		axes: [2]models.Column{models.ColHousingType, models.ColStructureType},
		name: models.ColHouseName,
	},
}

var requiredColumns = []models.Column{
	models.ColRegion, models.ColSubRegion, models.ColAddress, models.ColFloorArea, models.ColDeposit,
}

// ResolveSchema selects the announcement layout for the given columns.
// Optional display columns the data lacks are left out; missing required
// or axis columns fail with ErrSchemaMismatch.
func ResolveSchema(columns []models.Column) (*models.SchemaVariant, error) {
	present := make(map[models.Column]bool, len(columns))
	for _, c := range columns {
		present[c] = true
	}

	l := layouts[len(layouts)-1]
	for _, s := range layouts {
		if s.marker != "" && present[s.marker] {
			l = s
			break
		}
	}

	var missing []string
	for _, c := range append(append([]models.Column(nil), requiredColumns...), l.axes[:]...) {
		if !present[c] {
			missing = append(missing, string(c))
		}
	}
	if len(missing) > 0 {
		return nil, fmt.Errorf("%w: %s layout requires %s", ErrSchemaMismatch, l.kind, strings.Join(missing, ", "))
	}

	display := make([]models.Column, 0, len(l.display)+4)
	for _, c := range l.display {
		if present[c] {
			display = append(display, c)
		}
	}
	display = append(display, models.ColFloorArea, models.ColDeposit)
	if present[models.ColMonthlyRent] {
		display = append(display, models.ColMonthlyRent)
	}
	display = append(display, models.ColMapLink)

	name := l.name
	if !present[name] {
		name = ""
	}

	return &models.SchemaVariant{
		Kind:       l.kind,
		Display:    display,
		Axes:       l.axes,
		NameColumn: name,
	}, nil
}
