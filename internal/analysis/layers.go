package analysis

import (
	"github.com/jengzang/accident-dashboard-go/internal/models"
	"github.com/jengzang/accident-dashboard-go/internal/spatial"
)

// Map rendering constants
const (
	ColumnElevationScale = 10
	ColumnRadius         = 200
	ScatterRadius        = 100
	ViewZoom             = 11
	ViewPitch            = 50
)

// compositeColors assigns one fixed color per metric for composite mode
var compositeColors = map[models.Metric]models.Color{
	models.MetricAccident: models.ColorRed,
	models.MetricCasualty: models.ColorGreen,
	models.MetricSerious:  models.ColorBlue,
	models.MetricMinor:    models.ColorYellow,
	models.MetricDeath:    models.ColorMagenta,
}

// LayerColor returns the column color used for metric m in the given mode
func LayerColor(m models.Metric, composite bool) models.Color {
	if !composite {
		return models.ColorOrange
	}
	return compositeColors[m]
}

// BuildMapLayers returns one column layer for a single metric, or five layers
// (in models.SingleMetrics order) for composite mode. Every layer shares the
// per-subregion anchors and uses its own metric's sum as the elevation.
func BuildMapLayers(rows []models.AggregatedRow, metric models.Metric) []models.Layer {
	if !metric.IsComposite() {
		return []models.Layer{columnLayer(rows, metric, false)}
	}

	layers := make([]models.Layer, 0, len(models.SingleMetrics))
	for _, m := range models.SingleMetrics {
		layers = append(layers, columnLayer(rows, m, true))
	}
	return layers
}

func columnLayer(rows []models.AggregatedRow, m models.Metric, composite bool) models.Layer {
	points := make([]models.LayerPoint, 0, len(rows))
	for _, row := range rows {
		points = append(points, models.LayerPoint{
			Subregion: row.Subregion,
			Longitude: row.MeanLongitude,
			Latitude:  row.MeanLatitude,
			Elevation: row.Value(m),
		})
	}

	return models.Layer{
		Type:           models.LayerTypeColumn,
		Metric:         m,
		Label:          m.Label(),
		FillColor:      LayerColor(m, composite),
		ElevationScale: ColumnElevationScale,
		Radius:         ColumnRadius,
		Pickable:       true,
		Points:         points,
	}
}

// BuildScatterLayer plots every filtered facility as a translucent red dot
func BuildScatterLayer(records []models.AccidentRecord) models.Layer {
	points := make([]models.LayerPoint, 0, len(records))
	for _, r := range records {
		points = append(points, models.LayerPoint{
			Longitude: r.Longitude,
			Latitude:  r.Latitude,
		})
	}

	return models.Layer{
		Type:      models.LayerTypeScatter,
		FillColor: models.ColorScatter,
		Radius:    ScatterRadius,
		Pickable:  true,
		Points:    points,
	}
}

// BuildViewState centers the map at the mean coordinate of the filtered records
func BuildViewState(records []models.AccidentRecord) models.ViewState {
	view := models.ViewState{Zoom: ViewZoom, Pitch: ViewPitch}
	if len(records) == 0 {
		view.Empty = true
		return view
	}

	points := make([]spatial.Point, 0, len(records))
	for _, r := range records {
		points = append(points, spatial.Point{Lat: r.Latitude, Lon: r.Longitude})
	}

	center := spatial.Centroid(points)
	view.Latitude = center.Lat
	view.Longitude = center.Lon

	minLat, minLon, maxLat, maxLon := spatial.BoundingBox(points)
	view.Bounds = models.Bounds{MinLat: minLat, MaxLat: maxLat, MinLon: minLon, MaxLon: maxLon}
	view.SpanMeters = spatial.BoundingBoxDiagonal(minLat, minLon, maxLat, maxLon)

	return view
}
