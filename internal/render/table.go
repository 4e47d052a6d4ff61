package render

import (
	"fmt"

	"github.com/jengzang/accident-dashboard-go/internal/models"
)

// Table headings of the ranked view
const (
	HeadingRegion = "지역"
	HeadingTotal  = "총합"
)

// Subtitle renders the chart heading, e.g. "서울특별시 지역별 사고건수"
func Subtitle(region string, metric models.Metric) string {
	return fmt.Sprintf("%s 지역별 %s", region, metric.Label())
}

// ChartMetrics returns the series shown for metric: all five in composite
// mode, otherwise just the selected one.
func ChartMetrics(metric models.Metric) []models.Metric {
	if metric.IsComposite() {
		return models.SingleMetrics
	}
	return []models.Metric{metric}
}

// BuildChartTable indexes the aggregated rows by subregion with one labelled
// series per shown metric. The rows themselves are left untouched.
func BuildChartTable(rows []models.AggregatedRow, metric models.Metric) models.ChartTable {
	table := models.ChartTable{
		Index:  make([]string, 0, len(rows)),
		Series: make([]models.ChartSeries, 0, 5),
	}
	for _, row := range rows {
		table.Index = append(table.Index, row.Subregion)
	}

	for _, m := range ChartMetrics(metric) {
		series := models.ChartSeries{
			Metric: m,
			Label:  m.Label(),
			Values: make([]int64, 0, len(rows)),
		}
		for _, row := range rows {
			series.Values = append(series.Values, row.Value(m))
		}
		table.Series = append(table.Series, series)
	}

	return table
}

// BuildTopTable attaches display headings to the ranked entries
func BuildTopTable(entries []models.TopEntry, metric models.Metric) models.TopTable {
	valueHeading := metric.Label()
	if metric.IsComposite() {
		valueHeading = HeadingTotal
	}
	return models.TopTable{
		Columns: []string{HeadingRegion, valueHeading},
		Entries: entries,
	}
}
