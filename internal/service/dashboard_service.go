package service

import (
	"strings"

	"go.uber.org/zap"

	"github.com/jengzang/accident-dashboard-go/internal/analysis"
	"github.com/jengzang/accident-dashboard-go/internal/dataset"
	"github.com/jengzang/accident-dashboard-go/internal/models"
	"github.com/jengzang/accident-dashboard-go/internal/observability"
	"github.com/jengzang/accident-dashboard-go/internal/render"
)

// DashboardService handles business logic for the accident dashboard
type DashboardService struct {
	data    *dataset.Dataset
	metrics *observability.Collector
	logger  *zap.Logger
	topN    int
}

// NewDashboardService creates a new dashboard service over a loaded dataset
func NewDashboardService(data *dataset.Dataset, metrics *observability.Collector, logger *zap.Logger, topN int) *DashboardService {
	if topN <= 0 {
		topN = analysis.DefaultTopN
	}
	metrics.SetDatasetSize(data.Len(), len(data.Regions()))
	return &DashboardService{
		data:    data,
		metrics: metrics,
		logger:  logger,
		topN:    topN,
	}
}

// Regions lists the selectable regions in dataset order
func (s *DashboardService) Regions() []string {
	return s.data.Regions()
}

// Metrics lists the selectable metrics with their display labels
func (s *DashboardService) Metrics() []models.MetricOption {
	return models.MetricOptions()
}

// RecordCount returns the size of the loaded dataset
func (s *DashboardService) RecordCount() int {
	return s.data.Len()
}

// Dashboard runs the pipeline for one selection. A blank region selects the
// first region and a blank metric selects the accident count.
func (s *DashboardService) Dashboard(filter models.DashboardFilter) (models.Dashboard, error) {
	metric := models.MetricAccident
	if strings.TrimSpace(filter.Metric) != "" {
		m, err := models.ParseMetric(filter.Metric)
		if err != nil {
			return models.Dashboard{}, err
		}
		metric = m
	}

	region := filter.Region
	if region == "" {
		if regions := s.data.Regions(); len(regions) > 0 {
			region = regions[0]
		}
	}

	n := filter.Top
	if n <= 0 {
		n = s.topN
	}

	res := s.data.Run(region, metric, analysis.Options{TopN: n, IncludePoints: filter.Points})
	s.metrics.ObserveRun(string(metric))
	s.logger.Debug("dashboard computed",
		zap.String("region", region),
		zap.String("metric", string(metric)),
		zap.Int("records", len(res.Filtered)),
		zap.Int("subregions", len(res.Rows)),
	)

	return models.Dashboard{
		Region:   region,
		Metric:   metric,
		Label:    metric.Label(),
		Subtitle: render.Subtitle(region, metric),
		Records:  len(res.Filtered),
		Rows:     res.Rows,
		Chart:    render.BuildChartTable(res.Rows, metric),
		Top:      render.BuildTopTable(res.Top, metric),
		Layers:   res.Layers,
		Scatter:  res.Scatter,
		View:     res.View,
	}, nil
}
