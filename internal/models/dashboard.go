package models

// AggregatedRow holds the per-subregion sums for one region.
// In single-metric mode only the selected count is populated.
type AggregatedRow struct {
	Subregion string `json:"subregion"`

	AccidentCount      int64 `json:"accident_count"`
	CasualtyCount      int64 `json:"casualty_count"`
	SeriousInjuryCount int64 `json:"serious_injury_count"`
	MinorInjuryCount   int64 `json:"minor_injury_count"`
	DeathCount         int64 `json:"death_count"`

	// Map anchor: mean of the contributing facility coordinates
	MeanLongitude float64 `json:"mean_longitude"`
	MeanLatitude  float64 `json:"mean_latitude"`

	RecordCount int `json:"record_count"`
}

// Value returns the summed value for m; composite is the total of all five sums
func (r AggregatedRow) Value(m Metric) int64 {
	switch m {
	case MetricAccident:
		return r.AccidentCount
	case MetricCasualty:
		return r.CasualtyCount
	case MetricSerious:
		return r.SeriousInjuryCount
	case MetricMinor:
		return r.MinorInjuryCount
	case MetricDeath:
		return r.DeathCount
	case MetricComposite:
		return r.AccidentCount + r.CasualtyCount + r.SeriousInjuryCount + r.MinorInjuryCount + r.DeathCount
	}
	return 0
}

// TopEntry is one ranked subregion
type TopEntry struct {
	Rank      int    `json:"rank"`
	Subregion string `json:"subregion"`
	Value     int64  `json:"value"`
}

// Color is an RGBA fill color as used by deck.gl layers
type Color [4]uint8

// Fixed layer colors
var (
	ColorRed     = Color{255, 0, 0, 255}
	ColorGreen   = Color{0, 255, 0, 255}
	ColorBlue    = Color{0, 0, 255, 255}
	ColorYellow  = Color{255, 255, 0, 255}
	ColorMagenta = Color{255, 0, 255, 255}
	ColorOrange  = Color{255, 165, 0, 255}
	ColorScatter = Color{255, 0, 0, 160}
)

// Layer type constants
const (
	LayerTypeColumn  = "ColumnLayer"
	LayerTypeScatter = "ScatterplotLayer"
)

// LayerPoint is a single positioned datum of a map layer
type LayerPoint struct {
	Subregion string  `json:"subregion,omitempty"`
	Longitude float64 `json:"longitude"`
	Latitude  float64 `json:"latitude"`
	Elevation int64   `json:"elevation"`
}

// Layer represents one map overlay
type Layer struct {
	Type           string       `json:"type"`
	Metric         Metric       `json:"metric,omitempty"`
	Label          string       `json:"label,omitempty"`
	FillColor      Color        `json:"fill_color"`
	ElevationScale float64      `json:"elevation_scale,omitempty"`
	Radius         float64      `json:"radius"`
	Pickable       bool         `json:"pickable"`
	Points         []LayerPoint `json:"points"`
}

// Bounds is a lat/lng rectangle
type Bounds struct {
	MinLat float64 `json:"min_lat"`
	MaxLat float64 `json:"max_lat"`
	MinLon float64 `json:"min_lon"`
	MaxLon float64 `json:"max_lon"`
}

// ViewState is the initial map camera
type ViewState struct {
	Latitude  float64 `json:"latitude"`
	Longitude float64 `json:"longitude"`
	Zoom      float64 `json:"zoom"`
	Pitch     float64 `json:"pitch"`

	Bounds     Bounds  `json:"bounds"`
	SpanMeters float64 `json:"span_meters"` // diagonal of Bounds
	Empty      bool    `json:"empty"`       // no points were filtered
}

// ChartSeries is one labelled bar series
type ChartSeries struct {
	Metric Metric  `json:"metric"`
	Label  string  `json:"label"`
	Values []int64 `json:"values"`
}

// ChartTable is the bar chart input indexed by subregion
type ChartTable struct {
	Index  []string      `json:"index"`
	Series []ChartSeries `json:"series"`
}

// TopTable is the ranked table with its display headings
type TopTable struct {
	Columns []string   `json:"columns"` // ["지역", label] or ["지역", "총합"]
	Entries []TopEntry `json:"entries"`
}

// Dashboard is the complete result of one region/metric selection
type Dashboard struct {
	Region   string          `json:"region"`
	Metric   Metric          `json:"metric"`
	Label    string          `json:"label"`
	Subtitle string          `json:"subtitle"`
	Records  int             `json:"records"`
	Rows     []AggregatedRow `json:"rows"`
	Chart    ChartTable      `json:"chart"`
	Top      TopTable        `json:"top"`
	Layers   []Layer         `json:"layers"`
	Scatter  *Layer          `json:"scatter,omitempty"`
	View     ViewState       `json:"view"`
}

// DashboardFilter represents query parameters for dashboard requests
type DashboardFilter struct {
	Region string `form:"region"`
	Metric string `form:"metric"` // key or display label
	Top    int    `form:"top"`    // ranking size, defaults to config
	Points bool   `form:"points"` // include the scatter layer
}
