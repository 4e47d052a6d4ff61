package analysis

import (
	"math"
	"testing"

	"github.com/jengzang/accident-dashboard-go/internal/models"
)

func record(district string, lon, lat float64, counts ...int64) models.AccidentRecord {
	r := models.AccidentRecord{DistrictName: district, Longitude: lon, Latitude: lat}
	fields := []*int64{&r.AccidentCount, &r.CasualtyCount, &r.SeriousInjuryCount, &r.MinorInjuryCount, &r.DeathCount}
	for i, c := range counts {
		if i < len(fields) {
			*fields[i] = c
		}
	}
	return r
}

func gangnamRecords() []models.AccidentRecord {
	return []models.AccidentRecord{
		record("Gangnam Yeoksam", 127.03, 37.50, 2, 1, 0, 1, 0),
		record("Gangnam Samsung", 127.06, 37.51, 5, 0, 1, 2, 1),
		record("Seocho Banpo", 126.99, 37.50, 9, 9, 9, 9, 9),
	}
}

func assertClose(t *testing.T, name string, got, want float64) {
	t.Helper()
	if math.Abs(got-want) > 1e-9 {
		t.Fatalf("%s = %v, want %v", name, got, want)
	}
}
