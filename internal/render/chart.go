package render

import (
	"fmt"
	"image/color"
	"io"

	"gonum.org/v1/plot"
	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/vg"

	"github.com/jengzang/accident-dashboard-go/internal/models"
)

// Chart image geometry
const (
	ChartWidth  = 10 * vg.Inch
	ChartHeight = 6 * vg.Inch
)

var barWidth = vg.Points(12)

// seriesColors follows the map layer colors so chart and map read alike
var seriesColors = map[models.Metric]color.RGBA{
	models.MetricAccident: {R: 255, A: 255},
	models.MetricCasualty: {G: 255, A: 255},
	models.MetricSerious:  {B: 255, A: 255},
	models.MetricMinor:    {R: 255, G: 255, A: 255},
	models.MetricDeath:    {R: 255, B: 255, A: 255},
}

// WriteBarChart draws the chart table as grouped bars and writes it to w in
// the given image format ("png", "svg", ...). An empty table yields an empty
// plot carrying only the title.
func WriteBarChart(w io.Writer, table models.ChartTable, title, format string) error {
	p := plot.New()
	p.Title.Text = title
	p.Y.Label.Text = "count"
	p.Legend.Top = true

	if len(table.Index) > 0 {
		n := len(table.Series)
		for i, series := range table.Series {
			values := make(plotter.Values, len(series.Values))
			for j, v := range series.Values {
				values[j] = float64(v)
			}

			bars, err := plotter.NewBarChart(values, barWidth)
			if err != nil {
				return fmt.Errorf("failed to build %s bars: %w", series.Metric, err)
			}
			bars.LineStyle.Width = vg.Length(0)
			bars.Color = barColor(series.Metric, n)
			bars.Offset = vg.Length(float64(i)-float64(n-1)/2) * barWidth

			p.Add(bars)
			p.Legend.Add(series.Label, bars)
		}
		p.NominalX(table.Index...)
	}

	wt, err := p.WriterTo(ChartWidth, ChartHeight, format)
	if err != nil {
		return fmt.Errorf("failed to render chart: %w", err)
	}
	if _, err := wt.WriteTo(w); err != nil {
		return fmt.Errorf("failed to write chart: %w", err)
	}
	return nil
}

func barColor(m models.Metric, series int) color.Color {
	if series == 1 {
		c := models.ColorOrange
		return color.RGBA{R: c[0], G: c[1], B: c[2], A: c[3]}
	}
	return seriesColors[m]
}
