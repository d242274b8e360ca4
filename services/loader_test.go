package services

import (
	"errors"
	"net/url"
	"os"
	"path/filepath"
	"reflect"
	"strings"
	"testing"

	"github.com/xuri/excelize/v2"

	"rental-viewer/models"
)

func TestParseCurrency(t *testing.T) {
	tests := []struct {
		raw  string
		want int64
	}{
		{"1,234,567", 1234567},
		{`"2,000,000"`, 2000000},
		{" 300 ", 300},
		{"0", 0},
		{"9,223,372,036,854,775,807", 9223372036854775807},
	}
	for _, tt := range tests {
		got, err := ParseCurrency(tt.raw)
		if err != nil {
			t.Errorf("ParseCurrency(%q): unexpected error %v", tt.raw, err)
			continue
		}
		if got != tt.want {
			t.Errorf("ParseCurrency(%q) = %d; want %d", tt.raw, got, tt.want)
		}
	}
}

func TestParseCurrencyRejects(t *testing.T) {
	for _, raw := range []string{"", "abc", "1.5", "1억", "9,223,372,036,854,775,808"} {
		if _, err := ParseCurrency(raw); !errors.Is(err, ErrMalformedNumber) {
			t.Errorf("ParseCurrency(%q): got %v, want ErrMalformedNumber", raw, err)
		}
	}
}

func TestParseArea(t *testing.T) {
	tests := []struct {
		raw  string
		want float64
	}{
		{"59.94", 59.94},
		{" 20 ", 20},
		{"84.9600", 84.96},
	}
	for _, tt := range tests {
		got, err := ParseArea(tt.raw)
		if err != nil || got != tt.want {
			t.Errorf("ParseArea(%q) = %v, %v; want %v", tt.raw, got, err, tt.want)
		}
	}
	for _, raw := range []string{"", "n/a", "NaN", "Inf", "20㎡"} {
		if _, err := ParseArea(raw); !errors.Is(err, ErrMalformedNumber) {
			t.Errorf("ParseArea(%q): got %v, want ErrMalformedNumber", raw, err)
		}
	}
}

func TestParseNormalisesAndSorts(t *testing.T) {
	ds := structureDataset(t)

	want := []string{
		"경기 수원시 팔달로 9",
		"부산 해운대구 센텀로 3",
		"서울 강남구 역삼로 1",
		"서울 강남구 역삼로 1",
		"서울 마포구 월드컵로 5",
	}
	if got := addresses(ds.Listings); !reflect.DeepEqual(got, want) {
		t.Fatalf("order: got %q, want %q", got, want)
	}

	// Stable sort keeps file order for equal keys.
	if ds.Listings[2].FloorArea != 20.0 || ds.Listings[3].FloorArea != 25.0 {
		t.Errorf("equal keys reordered: %v, %v", ds.Listings[2].FloorArea, ds.Listings[3].FloorArea)
	}
	if ds.Listings[3].Deposit != 120000000 {
		t.Errorf("quoted deposit: got %d", ds.Listings[3].Deposit)
	}
	if ds.Listings[4].MonthlyRent != 50000 || !ds.Listings[4].HasMonthlyRent {
		t.Errorf("monthly rent: got %d (present=%v)", ds.Listings[4].MonthlyRent, ds.Listings[4].HasMonthlyRent)
	}
	if got := ds.Listings[0].Value(models.ColHousingType); got != "오피스텔" {
		t.Errorf("attribute: got %q", got)
	}
}

func TestParseDerivesEncodedMapURL(t *testing.T) {
	ds := structureDataset(t)

	l := ds.Listings[2]
	want := naverBase + url.PathEscape("서울 강남구 역삼로 1")
	if l.MapURL != want {
		t.Errorf("MapURL: got %q, want %q", l.MapURL, want)
	}
	if strings.Contains(l.MapURL, " ") {
		t.Errorf("MapURL should not contain spaces: %q", l.MapURL)
	}
}

func TestParseVerbatimMapURL(t *testing.T) {
	loader := NewLoader(newTestLogger(), MapLinker{BaseURL: naverBase})
	ds, err := loader.Parse(structureTable())
	if err != nil {
		t.Fatalf("Parse: %v", err)
	}
	if got, want := ds.Listings[0].MapURL, naverBase+"경기 수원시 팔달로 9"; got != want {
		t.Errorf("MapURL: got %q, want %q", got, want)
	}
}

func TestParseMalformedDeposit(t *testing.T) {
	raw := structureTable()
	raw.Rows[1][6] = "협의"

	_, err := NewLoader(newTestLogger(), testLinks).Parse(raw)
	if !errors.Is(err, ErrMalformedNumber) {
		t.Fatalf("got %v, want ErrMalformedNumber", err)
	}
	var numErr *NumberError
	if !errors.As(err, &numErr) {
		t.Fatalf("error %v is not a *NumberError", err)
	}
	if numErr.Row != 2 || numErr.Column != models.ColDeposit || numErr.Value != "협의" {
		t.Errorf("NumberError: got %+v", numErr)
	}
}

func TestParseMalformedArea(t *testing.T) {
	raw := structureTable()
	raw.Rows[0][5] = "약 20"

	_, err := NewLoader(newTestLogger(), testLinks).Parse(raw)
	var numErr *NumberError
	if !errors.As(err, &numErr) || numErr.Column != models.ColFloorArea {
		t.Errorf("got %v, want a floor area NumberError", err)
	}
}

func TestParseMalformedRent(t *testing.T) {
	raw := structureTable()
	raw.Rows[4][7] = ""

	_, err := NewLoader(newTestLogger(), testLinks).Parse(raw)
	var numErr *NumberError
	if !errors.As(err, &numErr) || numErr.Column != models.ColMonthlyRent || numErr.Row != 5 {
		t.Errorf("got %v, want a monthly rent NumberError on row 5", err)
	}
}

func TestParseWithoutMonthlyRent(t *testing.T) {
	raw := structureTable()
	raw.Header = raw.Header[:7]
	for i := range raw.Rows {
		raw.Rows[i] = raw.Rows[i][:7]
	}

	ds := mustParse(t, raw)
	if ds.Listings[0].HasMonthlyRent {
		t.Error("HasMonthlyRent should be false when the column is absent")
	}
	if ds.Variant.Shows(models.ColMonthlyRent) {
		t.Error("monthly rent should not be displayed when absent")
	}
}

func TestParseSkipsBlankRows(t *testing.T) {
	raw := structureTable()
	raw.Rows = append(raw.Rows, []string{"", " ", ""}, nil)
	raw.Rows = append(raw.Rows, []string{"제주", "제주시", "제주 연동 1", "", "", "30", "1,000", "0"})

	ds := mustParse(t, raw)
	if len(ds.Listings) != 6 {
		t.Fatalf("listings: got %d, want 6", len(ds.Listings))
	}
	last := ds.Listings[5]
	if last.Region != "제주" || last.Value(models.ColHousingType) != "" {
		t.Errorf("last listing: got %+v", last)
	}
}

func TestParseAcceptsAliasedHeaders(t *testing.T) {
	raw := &models.RawTable{
		Source: "en.csv",
		Header: []string{"Region", " sub_region", "address", "housing_type", "structure_type", "floor_area", "deposit"},
		Rows:   [][]string{{"서울", "종로구", "A", "다가구", "1룸", "30", "1,000"}},
	}
	ds := mustParse(t, raw)
	if ds.Listings[0].SubRegion != "종로구" {
		t.Errorf("alias mapping failed: %+v", ds.Listings[0])
	}
}

func TestParseSchemaMismatch(t *testing.T) {
	raw := structureTable()
	raw.Header[2] = "비고"

	_, err := NewLoader(newTestLogger(), testLinks).Parse(raw)
	if !errors.Is(err, ErrSchemaMismatch) {
		t.Errorf("got %v, want ErrSchemaMismatch", err)
	}
}

func TestLoadUnsupportedFormat(t *testing.T) {
	_, err := NewLoader(newTestLogger(), testLinks).Load(filepath.Join(t.TempDir(), "공고문.pdf"))
	if !errors.Is(err, ErrUnsupportedFormat) {
		t.Errorf("got %v, want ErrUnsupportedFormat", err)
	}
}

func TestLoadCSVFile(t *testing.T) {
	var b strings.Builder
	raw := structureTable()
	b.WriteString(strings.Join(raw.Header, ",") + "\n")
	b.WriteString(`서울,강남구,서울 강남구 역삼로 1,다가구,2룸,20.0,"100,000,000",0` + "\n")
	b.WriteString(`서울,강남구,서울 강남구 역삼로 1,다가구,2룸,25.0,"""120,000,000""",0` + "\n")
	path := filepath.Join(t.TempDir(), "hug.csv")
	if err := os.WriteFile(path, []byte(b.String()), 0644); err != nil {
		t.Fatal(err)
	}

	ds, err := NewLoader(newTestLogger(), testLinks).Load(path)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if len(ds.Listings) != 2 {
		t.Fatalf("listings: got %d, want 2", len(ds.Listings))
	}
	if ds.Listings[0].Deposit != 100000000 || ds.Listings[1].Deposit != 120000000 {
		t.Errorf("deposits: got %d, %d", ds.Listings[0].Deposit, ds.Listings[1].Deposit)
	}
}

func TestLoadXLSXFile(t *testing.T) {
	f := excelize.NewFile()
	defer f.Close()
	rows := [][]any{
		{"시도", "시군구", "주택명", "주소", "주택유형", "매입유형", "전용면적", "보증금", "월임대료"},
		{"서울", "은평구", "은평하우스", "서울 은평구 통일로 1", "다세대", "기존주택", 29.7, 90000000, 150000},
		{"서울", "노원구", "노원하우스", "서울 노원구 동일로 2", "아파트", "신축", 45.1, 130000000, 0},
	}
	for i := range rows {
		cell, _ := excelize.CoordinatesToCellName(1, i+1)
		if err := f.SetSheetRow("Sheet1", cell, &rows[i]); err != nil {
			t.Fatalf("SetSheetRow: %v", err)
		}
	}
	path := filepath.Join(t.TempDir(), "lh.xlsx")
	if err := f.SaveAs(path); err != nil {
		t.Fatalf("SaveAs: %v", err)
	}

	ds, err := NewLoader(newTestLogger(), testLinks).Load(path)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if ds.Variant.Kind != models.VariantLease {
		t.Errorf("variant: got %s, want lease", ds.Variant.Kind)
	}
	if ds.Listings[0].SubRegion != "노원구" || ds.Listings[0].FloorArea != 45.1 {
		t.Errorf("first listing: got %+v", ds.Listings[0])
	}
	if ds.Listings[1].MonthlyRent != 150000 {
		t.Errorf("rent: got %d", ds.Listings[1].MonthlyRent)
	}
}

func TestLoadXLSFile(t *testing.T) {
	ds, err := NewLoader(newTestLogger(), testLinks).Load(filepath.Join("..", "storage", "testdata", "lh.xls"))
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if ds.Variant.Kind != models.VariantStructure {
		t.Errorf("variant: got %s, want structure", ds.Variant.Kind)
	}
	if got := addresses(ds.Listings); !reflect.DeepEqual(got, []string{"부산 해운대구 센텀로 9", "서울 마포구 월드컵로 5"}) {
		t.Fatalf("listings: got %q", got)
	}
	if l := ds.Listings[1]; l.FloorArea != 18.5 || l.Deposit != 85500000 || l.MonthlyRent != 0 {
		t.Errorf("서울 listing: got %+v", l)
	}
}

func TestLoadEmptyFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "empty.csv")
	if err := os.WriteFile(path, nil, 0644); err != nil {
		t.Fatal(err)
	}
	if _, err := NewLoader(newTestLogger(), testLinks).Load(path); !errors.Is(err, ErrNoHeader) {
		t.Errorf("got %v, want ErrNoHeader", err)
	}
}
