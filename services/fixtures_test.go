package services

import (
	"testing"

	"rental-viewer/models"
	"rental-viewer/utils"
)

const naverBase = "https://map.naver.com/p/search/"

var testLinks = MapLinker{BaseURL: naverBase, Encode: true}

func newTestLogger() *utils.Logger { return utils.NewDiscardLogger() }

// structureTable is a small default-layout announcement. Sorted order:
// 경기/수원시, 부산/해운대구, 서울/강남구 (x2), 서울/마포구.
func structureTable() *models.RawTable {
	return &models.RawTable{
		Source: "source/hug.csv",
		Header: []string{"시도", "시군구", "주소", "주택유형", "주택구조(방수)", "전용면적", "보증금", "월임대료"},
		Rows: [][]string{
			{"서울", "강남구", " 서울 강남구 역삼로 1 ", "다가구", "2룸", "20.0", "100,000,000", "0"},
			{"서울", "마포구", "서울 마포구 월드컵로 5", "오피스텔", "1룸", "18.5", "85,500,000", "50,000"},
			{"부산", "해운대구", "부산 해운대구 센텀로 3", "아파트", "3룸", "59.94", "153,000,000", "0"},
			{"서울", "강남구", "서울 강남구 역삼로 1", "다가구", "2룸", "25.0", `"120,000,000"`, "0"},
			{"경기", "수원시", "경기 수원시 팔달로 9", "오피스텔", "1룸", "21.3", "95,000,000", "0"},
		},
	}
}

func mustParse(t *testing.T, raw *models.RawTable) *models.Dataset {
	t.Helper()
	ds, err := NewLoader(newTestLogger(), testLinks).Parse(raw)
	if err != nil {
		t.Fatalf("Parse: %v", err)
	}
	return ds
}

func structureDataset(t *testing.T) *models.Dataset {
	return mustParse(t, structureTable())
}

func addresses(rows []models.Listing) []string {
	out := make([]string, len(rows))
	for i := range rows {
		out[i] = rows[i].Address
	}
	return out
}

func ptrFloat(v float64) *float64 { return &v }
func ptrInt(v int64) *int64       { return &v }
