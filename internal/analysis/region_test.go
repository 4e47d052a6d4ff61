package analysis

import (
	"reflect"
	"strings"
	"testing"

	"github.com/jengzang/accident-dashboard-go/internal/models"
)

func TestFilterByRegionUsesLiteralPrefix(t *testing.T) {
	records := []models.AccidentRecord{
		record("Seoul Jongno", 0, 0),
		record("Seoulmun Gu", 0, 0),
		record("Busan Haeundae", 0, 0),
		record("Seoul Mapo", 0, 0),
	}

	got := FilterByRegion(records, "Seoul")
	if len(got) != 3 {
		t.Fatalf("FilterByRegion returned %d records, want 3", len(got))
	}
	wantOrder := []string{"Seoul Jongno", "Seoulmun Gu", "Seoul Mapo"}
	for i, r := range got {
		if !strings.HasPrefix(r.DistrictName, "Seoul") {
			t.Fatalf("record %q does not start with region", r.DistrictName)
		}
		if r.DistrictName != wantOrder[i] {
			t.Fatalf("record %d = %q, want %q", i, r.DistrictName, wantOrder[i])
		}
	}
}

func TestFilterByRegionUnknownRegionIsEmpty(t *testing.T) {
	got := FilterByRegion(gangnamRecords(), "Jeju")
	if got == nil || len(got) != 0 {
		t.Fatalf("expected empty non-nil slice, got %#v", got)
	}
}

func TestFilterByRegionCoversDatasetForDisjointRegions(t *testing.T) {
	records := gangnamRecords()
	total := 0
	for _, region := range DistinctRegions(records) {
		total += len(FilterByRegion(records, region))
	}
	if total != len(records) {
		t.Fatalf("union of regions covers %d records, want %d", total, len(records))
	}
}

func TestExtractSubregion(t *testing.T) {
	tests := []struct {
		name     string
		district string
		want     string
	}{
		{name: "two tokens", district: "서울특별시 강남구", want: "강남구"},
		{name: "extra tokens", district: "경기도 수원시 장안구", want: "수원시"},
		{name: "single token", district: "세종특별자치시", want: ""},
		{name: "double space", district: "A  B", want: ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := ExtractSubregion(tt.district); got != tt.want {
				t.Fatalf("ExtractSubregion(%q) = %q, want %q", tt.district, got, tt.want)
			}
		})
	}
}

func TestDistinctRegionsFirstAppearanceOrder(t *testing.T) {
	records := []models.AccidentRecord{
		record("Seocho Banpo", 0, 0),
		record("Gangnam Yeoksam", 0, 0),
		record("Seocho Jamwon", 0, 0),
		record("Dobong", 0, 0),
	}

	got := DistinctRegions(records)
	want := []string{"Seocho", "Gangnam", "Dobong"}
	if !reflect.DeepEqual(got, want) {
		t.Fatalf("DistinctRegions = %v, want %v", got, want)
	}
}
