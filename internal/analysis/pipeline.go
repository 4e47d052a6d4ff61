package analysis

import (
	"github.com/jengzang/accident-dashboard-go/internal/models"
)

// Options tunes a pipeline run
type Options struct {
	TopN          int  // ranking size, DefaultTopN when <= 0
	IncludePoints bool // build the per-facility scatter layer
}

// Result holds every derived view of one region/metric selection
type Result struct {
	Region   string
	Metric   models.Metric
	Filtered []models.AccidentRecord
	Rows     []models.AggregatedRow
	Top      []models.TopEntry
	Layers   []models.Layer
	Scatter  *models.Layer
	View     models.ViewState
}

// Run filters records to region and derives the aggregated table, ranking,
// map layers and view state for metric. It never mutates records.
func Run(records []models.AccidentRecord, region string, metric models.Metric, opts Options) Result {
	n := opts.TopN
	if n <= 0 {
		n = DefaultTopN
	}

	filtered := FilterByRegion(records, region)
	rows := Aggregate(filtered, metric)

	result := Result{
		Region:   region,
		Metric:   metric,
		Filtered: filtered,
		Rows:     rows,
		Top:      TopN(rows, metric, n),
		Layers:   BuildMapLayers(rows, metric),
		View:     BuildViewState(filtered),
	}
	if opts.IncludePoints {
		scatter := BuildScatterLayer(filtered)
		result.Scatter = &scatter
	}

	return result
}
