package models

import (
	"strings"

	"golang.org/x/text/unicode/norm"
)

// Column is a canonical column name. Canonical names are the Korean headers
// used by the HUG/LH/SH announcement spreadsheets, NFC-normalised.
type Column string

const (
	ColCategory       Column = "구분"
	ColRegion         Column = "시도"
	ColSubRegion      Column = "시군구"
	ColAddress        Column = "주소"
	ColComplexName    Column = "단지명"
	ColSupplyType     Column = "공급유형"
	ColSupplyDetail   Column = "세부유형"
	ColSupplyTotal    Column = "공급계"
	ColSupplyPriority Column = "우선공급"
	ColSupplyGeneral  Column = "일반공급"
	ColSupplyReserve  Column = "예비입주자"
	ColHouseName      Column = "주택명"
	ColHouseGroup     Column = "주택군"
	ColHousingType    Column = "주택유형"
	ColPurchaseType   Column = "매입유형"
	ColStructureType  Column = "주택구조(방수)"
	ColPortalLink     Column = "안심전세포털"
	ColFloorArea      Column = "전용면적"
	ColDeposit        Column = "보증금"
	ColMonthlyRent    Column = "월임대료"
	ColMapLink        Column = "네이버지도"
	ColUnitCount      Column = "주택수"
)

// Link labels shown instead of the raw URL.
const (
	MapLinkLabel    = "지도로 보기"
	PortalLinkLabel = "안심전세포털로 보기"
)

// AllOption is the dropdown sentinel meaning "every value".
const AllOption = "전체"

var columnAliases = map[string]Column{
	"category":       ColCategory,
	"region":         ColRegion,
	"sido":           ColRegion,
	"sub_region":     ColSubRegion,
	"subregion":      ColSubRegion,
	"sigungu":        ColSubRegion,
	"address":        ColAddress,
	"complex_name":   ColComplexName,
	"supply_type":    ColSupplyType,
	"supply_detail":  ColSupplyDetail,
	"supply_total":   ColSupplyTotal,
	"house_name":     ColHouseName,
	"house_group":    ColHouseGroup,
	"housing_type":   ColHousingType,
	"purchase_type":  ColPurchaseType,
	"structure_type": ColStructureType,
	"주택구조":           ColStructureType,
	"portal_link":    ColPortalLink,
	"floor_area":     ColFloorArea,
	"area":           ColFloorArea,
	"deposit":        ColDeposit,
	"monthly_rent":   ColMonthlyRent,
	"rent":           ColMonthlyRent,
	"map_url":        ColMapLink,
}

// CanonicalColumn maps a raw header cell to its canonical column. Headers
// are trimmed and NFC-normalised (spreadsheets saved on macOS often carry
// decomposed Hangul); English aliases match case-insensitively. Unknown
// headers are returned normalised but otherwise unchanged.
func CanonicalColumn(header string) Column {
	h := norm.NFC.String(strings.TrimSpace(strings.TrimPrefix(header, "\ufeff")))
	if col, ok := columnAliases[strings.ToLower(h)]; ok {
		return col
	}
	return Column(h)
}

// IsLink reports whether the column holds a URL rendered as a link.
func (c Column) IsLink() bool {
	return c == ColMapLink || c == ColPortalLink
}

// LinkLabel returns the fixed display text for a link column.
func (c Column) LinkLabel() string {
	switch c {
	case ColMapLink:
		return MapLinkLabel
	case ColPortalLink:
		return PortalLinkLabel
	}
	return ""
}

// IsNumeric reports whether the column is aggregated as a min/max range.
func (c Column) IsNumeric() bool {
	return c == ColFloorArea || c == ColDeposit || c == ColMonthlyRent
}
