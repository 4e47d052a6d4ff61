package analysis

import (
	"strings"

	"github.com/jengzang/accident-dashboard-go/internal/models"
)

// FilterByRegion keeps every record whose district name starts with region.
// The match is a literal string prefix, not a token comparison, so "Seoul"
// also selects "Seoulmun ..." districts. Input order is preserved.
func FilterByRegion(records []models.AccidentRecord, region string) []models.AccidentRecord {
	filtered := make([]models.AccidentRecord, 0)
	for _, r := range records {
		if strings.HasPrefix(r.DistrictName, region) {
			filtered = append(filtered, r)
		}
	}
	return filtered
}

// ExtractRegion returns the first single-space-delimited token of a district name
func ExtractRegion(districtName string) string {
	region, _, _ := strings.Cut(districtName, " ")
	return region
}

// ExtractSubregion returns the second single-space-delimited token of a
// district name, or "" when the name has only one token.
func ExtractSubregion(districtName string) string {
	tokens := strings.Split(districtName, " ")
	if len(tokens) < 2 {
		return ""
	}
	return tokens[1]
}

// DistinctRegions lists the regions of records in first-appearance order
func DistinctRegions(records []models.AccidentRecord) []string {
	seen := make(map[string]bool)
	regions := make([]string, 0)
	for _, r := range records {
		region := ExtractRegion(r.DistrictName)
		if seen[region] {
			continue
		}
		seen[region] = true
		regions = append(regions, region)
	}
	return regions
}
