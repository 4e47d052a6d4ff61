package models

import (
	"errors"
	"fmt"
	"strings"
)

// Metric selects which accident count a dashboard shows
type Metric string

// Metric constants
const (
	MetricAccident  Metric = "accident"
	MetricCasualty  Metric = "casualty"
	MetricSerious   Metric = "serious"
	MetricMinor     Metric = "minor"
	MetricDeath     Metric = "death"
	MetricComposite Metric = "composite"
)

// ErrUnknownMetric is returned by ParseMetric for values outside the six choices
var ErrUnknownMetric = errors.New("unknown metric")

// SingleMetrics is the fixed order of the five underlying metrics. Composite
// layers, chart series and export columns all follow it.
var SingleMetrics = []Metric{
	MetricAccident,
	MetricCasualty,
	MetricSerious,
	MetricMinor,
	MetricDeath,
}

// AllMetrics is the selector order: the five metrics followed by composite
var AllMetrics = append(append([]Metric{}, SingleMetrics...), MetricComposite)

var metricLabels = map[Metric]string{
	MetricAccident:  "사고건수",
	MetricCasualty:  "사상자수",
	MetricSerious:   "중상자수",
	MetricMinor:     "경상자수",
	MetricDeath:     "사망자수",
	MetricComposite: "종합",
}

var metricColumns = map[Metric]string{
	MetricAccident: ColumnAccidentCount,
	MetricCasualty: ColumnCasualtyCount,
	MetricSerious:  ColumnSeriousCount,
	MetricMinor:    ColumnMinorCount,
	MetricDeath:    ColumnDeathCount,
}

// Label returns the display label shown in charts and tables
func (m Metric) Label() string {
	return metricLabels[m]
}

// Column returns the CSV column backing a single metric, "" for composite
func (m Metric) Column() string {
	return metricColumns[m]
}

// IsComposite reports whether m is the all-metrics sentinel
func (m Metric) IsComposite() bool {
	return m == MetricComposite
}

// Valid reports whether m is one of the six known choices
func (m Metric) Valid() bool {
	_, ok := metricLabels[m]
	return ok
}

// ParseMetric accepts either a metric key ("death") or its display label
// ("사망자수"). Surrounding whitespace and key case are ignored.
func ParseMetric(s string) (Metric, error) {
	s = strings.TrimSpace(s)
	if m := Metric(strings.ToLower(s)); m.Valid() {
		return m, nil
	}
	for m, label := range metricLabels {
		if label == s {
			return m, nil
		}
	}
	return "", fmt.Errorf("%w: %q", ErrUnknownMetric, s)
}

// MetricOption describes one selector choice
type MetricOption struct {
	Key   Metric `json:"key"`
	Label string `json:"label"`
}

// MetricOptions returns the selector choices in display order
func MetricOptions() []MetricOption {
	options := make([]MetricOption, 0, len(AllMetrics))
	for _, m := range AllMetrics {
		options = append(options, MetricOption{Key: m, Label: m.Label()})
	}
	return options
}
