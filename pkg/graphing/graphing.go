// Package graphing renders per-metric and comparative charts for sync
// monitoring logs.
package graphing

import (
	"fmt"
	"image/color"
	"math"

	"gonum.org/v1/plot"
	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/vg"
	"gonum.org/v1/plot/vg/draw"

	"SyncProfiler/pkg/summarizing"
)

const (
	defaultWidth  = 10 * vg.Inch
	defaultHeight = 5 * vg.Inch

	// Sync progress is a 0-1 fraction; its axis is fixed to this range.
	progressMin = 0
	progressMax = 1.05
)

var (
	seriesColor  = color.RGBA{70, 130, 180, 255} // steelblue
	rollingColor = color.RGBA{255, 165, 0, 255}  // orange
	meanColor    = color.RGBA{255, 0, 0, 255}

	dashed = []vg.Length{vg.Points(6), vg.Points(3)}
	dotted = []vg.Length{vg.Points(1), vg.Points(3)}
)

// RenderMetric writes a line chart of one metric: raw values, the trailing
// rolling mean, and a horizontal line at the overall mean.
func RenderMetric(path string, m summarizing.Metric, profile string, cycles, values []float64) error {
	p := newPlot(
		fmt.Sprintf("%s (%s)", m.Title, profile),
		fmt.Sprintf("%s (%s)", m.Title, m.Unit),
	)

	if err := addSeries(p, "Valor original", cycles, values, seriesColor, nil, true); err != nil {
		return err
	}
	rolling := summarizing.RollingMean(values, summarizing.RollingWindow)
	if err := addSeries(p, "Media móvil", cycles, rolling, rollingColor, dashed, false); err != nil {
		return err
	}
	addMeanLine(p, summarizing.Mean(values), "")

	if m.Column == summarizing.ColumnProgress {
		p.Y.Min = progressMin
		p.Y.Max = progressMax
	}

	return p.Save(defaultWidth, defaultHeight, path)
}

// RenderTraffic writes a chart of per-interval traffic derived from a
// cumulative counter, converted to unit.
func RenderTraffic(path string, m summarizing.Metric, profile string, cycles, values []float64, unit string) error {
	deltas := summarizing.ConvertTraffic(summarizing.Deltas(values), unit)

	p := newPlot(fmt.Sprintf("%s (%s)", m.Title, profile), fmt.Sprintf("Tráfico (%s)", unit))
	if err := addSeries(p, "Tráfico por intervalo", cycles, deltas, seriesColor, nil, true); err != nil {
		return err
	}
	addMeanLine(p, summarizing.Mean(deltas), " "+unit)

	return p.Save(defaultWidth, defaultHeight, path)
}

func newPlot(title, yLabel string) *plot.Plot {
	p := plot.New()
	p.Title.Text = title
	p.X.Label.Text = "Tiempo (ciclo)"
	p.Y.Label.Text = yLabel
	p.Legend.Top = true
	p.Add(plotter.NewGrid())
	return p
}

// addSeries draws a series as contiguous segments; missing values break
// the line. The legend entry is added once.
func addSeries(p *plot.Plot, name string, xs, ys []float64, c color.Color, dashes []vg.Length, points bool) error {
	legend := false
	for _, seg := range segments(xs, ys) {
		line, err := plotter.NewLine(seg)
		if err != nil {
			return fmt.Errorf("failed to build %s series: %w", name, err)
		}
		line.Color = c
		line.Width = vg.Points(1.5)
		line.Dashes = dashes
		p.Add(line)

		thumbs := []plot.Thumbnailer{line}
		if points {
			scatter, err := plotter.NewScatter(seg)
			if err != nil {
				return fmt.Errorf("failed to build %s markers: %w", name, err)
			}
			scatter.GlyphStyle = draw.GlyphStyle{Color: c, Radius: vg.Points(2.5), Shape: draw.CircleGlyph{}}
			p.Add(scatter)
			thumbs = append(thumbs, scatter)
		}

		if !legend {
			p.Legend.Add(name, thumbs...)
			legend = true
		}
	}
	return nil
}

func addMeanLine(p *plot.Plot, mean float64, suffix string) {
	if math.IsNaN(mean) {
		return
	}
	fn := plotter.NewFunction(func(float64) float64 { return mean })
	fn.Color = meanColor
	fn.Width = vg.Points(1.5)
	fn.Dashes = dotted
	p.Add(fn)
	p.Legend.Add(fmt.Sprintf("Media: %.2f%s", mean, suffix), fn)
}

// segments splits paired x/y values into runs without NaN.
func segments(xs, ys []float64) []plotter.XYs {
	var out []plotter.XYs
	var cur plotter.XYs
	for i := 0; i < len(xs) && i < len(ys); i++ {
		if math.IsNaN(ys[i]) || math.IsInf(ys[i], 0) || math.IsNaN(xs[i]) {
			if len(cur) > 0 {
				out = append(out, cur)
				cur = nil
			}
			continue
		}
		cur = append(cur, plotter.XY{X: xs[i], Y: ys[i]})
	}
	if len(cur) > 0 {
		out = append(out, cur)
	}
	return out
}
