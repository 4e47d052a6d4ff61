package analysis

import (
	"encoding/json"
	"strings"
	"testing"

	"github.com/jengzang/accident-dashboard-go/internal/models"
)

func TestBuildMapLayersSingleMetric(t *testing.T) {
	rows := Aggregate(FilterByRegion(gangnamRecords(), "Gangnam"), models.MetricCasualty)

	layers := BuildMapLayers(rows, models.MetricCasualty)
	if len(layers) != 1 {
		t.Fatalf("expected 1 layer, got %d", len(layers))
	}
	layer := layers[0]
	if layer.Type != models.LayerTypeColumn || layer.FillColor != models.ColorOrange {
		t.Fatalf("unexpected layer %+v", layer)
	}
	if layer.ElevationScale != ColumnElevationScale || layer.Radius != ColumnRadius {
		t.Fatalf("unexpected geometry: scale %v radius %v", layer.ElevationScale, layer.Radius)
	}
	if len(layer.Points) != 2 || layer.Points[0].Subregion != "Samsung" || layer.Points[1].Elevation != 1 {
		t.Fatalf("unexpected points %+v", layer.Points)
	}
	assertClose(t, "Samsung longitude", layer.Points[0].Longitude, 127.06)
}

func TestBuildMapLayersComposite(t *testing.T) {
	rows := Aggregate(FilterByRegion(gangnamRecords(), "Gangnam"), models.MetricComposite)

	layers := BuildMapLayers(rows, models.MetricComposite)
	wantColors := []models.Color{
		models.ColorRed, models.ColorGreen, models.ColorBlue, models.ColorYellow, models.ColorMagenta,
	}
	if len(layers) != len(wantColors) {
		t.Fatalf("expected %d layers, got %d", len(wantColors), len(layers))
	}
	for i, layer := range layers {
		if layer.Metric != models.SingleMetrics[i] {
			t.Fatalf("layer %d metric = %s, want %s", i, layer.Metric, models.SingleMetrics[i])
		}
		if layer.FillColor != wantColors[i] {
			t.Fatalf("layer %d color = %v, want %v", i, layer.FillColor, wantColors[i])
		}
		for j, p := range layer.Points {
			if p.Elevation != rows[j].Value(layer.Metric) {
				t.Fatalf("layer %s point %s elevation = %d, want %d", layer.Metric, p.Subregion, p.Elevation, rows[j].Value(layer.Metric))
			}
		}
	}
}

func TestBuildMapLayersEmptyRows(t *testing.T) {
	if got := BuildMapLayers(nil, models.MetricDeath); len(got) != 1 || len(got[0].Points) != 0 {
		t.Fatalf("single metric empty layers = %+v", got)
	}
	if got := BuildMapLayers(nil, models.MetricComposite); len(got) != 5 {
		t.Fatalf("composite empty layers = %d, want 5", len(got))
	}
}

func TestBuildScatterLayer(t *testing.T) {
	layer := BuildScatterLayer(gangnamRecords())
	if layer.Type != models.LayerTypeScatter || layer.FillColor != models.ColorScatter || layer.Radius != ScatterRadius {
		t.Fatalf("unexpected scatter layer %+v", layer)
	}
	if len(layer.Points) != 3 {
		t.Fatalf("expected 3 points, got %d", len(layer.Points))
	}
}

func TestBuildViewState(t *testing.T) {
	view := BuildViewState(FilterByRegion(gangnamRecords(), "Gangnam"))
	if view.Empty || view.Zoom != ViewZoom || view.Pitch != ViewPitch {
		t.Fatalf("unexpected view %+v", view)
	}
	assertClose(t, "center longitude", view.Longitude, 127.045)
	assertClose(t, "center latitude", view.Latitude, 37.505)
	if view.Bounds.MinLon > 127.03+1e-9 || view.Bounds.MaxLon < 127.06-1e-9 {
		t.Fatalf("bounds %+v do not cover points", view.Bounds)
	}
	if view.SpanMeters <= 0 {
		t.Fatalf("span = %v, want > 0", view.SpanMeters)
	}

	empty := BuildViewState(nil)
	if !empty.Empty || empty.Latitude != 0 || empty.Longitude != 0 {
		t.Fatalf("unexpected empty view %+v", empty)
	}
}

func TestColumnLayerKeepsZeroElevation(t *testing.T) {
	rows := Aggregate(FilterByRegion(gangnamRecords(), "Gangnam"), models.MetricDeath)
	layers := BuildMapLayers(rows, models.MetricDeath)

	raw, err := json.Marshal(layers[0].Points)
	if err != nil {
		t.Fatalf("Marshal: %v", err)
	}
	var points []map[string]interface{}
	if err := json.Unmarshal(raw, &points); err != nil {
		t.Fatalf("Unmarshal: %v", err)
	}
	if len(points) != 2 {
		t.Fatalf("expected 2 points, got %s", raw)
	}
	for _, p := range points {
		if _, ok := p["elevation"]; !ok {
			t.Fatalf("point %v has no elevation key", p["subregion"])
		}
	}
	if !strings.Contains(string(raw), `"subregion":"Yeoksam","longitude":127.03,"latitude":37.5,"elevation":0`) {
		t.Fatalf("Yeoksam should carry a zero elevation: %s", raw)
	}
}
