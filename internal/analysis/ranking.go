package analysis

import (
	"sort"

	"github.com/jengzang/accident-dashboard-go/internal/models"
)

// DefaultTopN is the ranking size shown under the chart
const DefaultTopN = 3

// TopN ranks aggregated rows by the metric's summed value, or by the total of
// all five sums in composite mode, and returns at most n entries.
// Equal values are ordered by subregion ascending.
func TopN(rows []models.AggregatedRow, metric models.Metric, n int) []models.TopEntry {
	if n <= 0 {
		return []models.TopEntry{}
	}

	entries := make([]models.TopEntry, 0, len(rows))
	for _, row := range rows {
		entries = append(entries, models.TopEntry{
			Subregion: row.Subregion,
			Value:     row.Value(metric),
		})
	}

	sort.SliceStable(entries, func(i, j int) bool {
		if entries[i].Value != entries[j].Value {
			return entries[i].Value > entries[j].Value
		}
		return entries[i].Subregion < entries[j].Subregion
	})

	if len(entries) > n {
		entries = entries[:n]
	}
	for i := range entries {
		entries[i].Rank = i + 1
	}

	return entries
}
