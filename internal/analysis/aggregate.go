package analysis

import (
	"sort"

	"github.com/jengzang/accident-dashboard-go/internal/models"
	"github.com/jengzang/accident-dashboard-go/internal/stats"
)

type subregionGroup struct {
	longitudes []float64
	latitudes  []float64
	values     map[models.Metric][]int64
}

// Aggregate groups records by subregion and sums the selected metric, or all
// five metrics in composite mode. Each row is anchored at the mean longitude
// and latitude of its records. Rows are ordered by subregion ascending.
func Aggregate(records []models.AccidentRecord, metric models.Metric) []models.AggregatedRow {
	metrics := []models.Metric{metric}
	if metric.IsComposite() {
		metrics = models.SingleMetrics
	}

	groups := make(map[string]*subregionGroup)
	for _, r := range records {
		key := ExtractSubregion(r.DistrictName)
		g, ok := groups[key]
		if !ok {
			g = &subregionGroup{values: make(map[models.Metric][]int64)}
			groups[key] = g
		}
		g.longitudes = append(g.longitudes, r.Longitude)
		g.latitudes = append(g.latitudes, r.Latitude)
		for _, m := range metrics {
			g.values[m] = append(g.values[m], r.Value(m))
		}
	}

	keys := make([]string, 0, len(groups))
	for k := range groups {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	rows := make([]models.AggregatedRow, 0, len(keys))
	for _, k := range keys {
		g := groups[k]
		row := models.AggregatedRow{
			Subregion:     k,
			MeanLongitude: stats.Mean(g.longitudes),
			MeanLatitude:  stats.Mean(g.latitudes),
			RecordCount:   len(g.longitudes),
		}
		for _, m := range metrics {
			setSum(&row, m, stats.Sum(g.values[m]))
		}
		rows = append(rows, row)
	}

	return rows
}

func setSum(row *models.AggregatedRow, m models.Metric, sum int64) {
	switch m {
	case models.MetricAccident:
		row.AccidentCount = sum
	case models.MetricCasualty:
		row.CasualtyCount = sum
	case models.MetricSerious:
		row.SeriousInjuryCount = sum
	case models.MetricMinor:
		row.MinorInjuryCount = sum
	case models.MetricDeath:
		row.DeathCount = sum
	}
}
