package graphing

import (
	"fmt"
	"image/color"
	"math"
	"os"
	"path/filepath"

	"github.com/go-echarts/go-echarts/v2/charts"
	"github.com/go-echarts/go-echarts/v2/components"
	"github.com/go-echarts/go-echarts/v2/opts"
	"gonum.org/v1/plot"
	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/vg"

	"SyncProfiler/pkg/summarizing"
)

const barWidth = 40

// palette is the tab10 qualitative palette, indexed by profile position.
var palette = []color.RGBA{
	{31, 119, 180, 255},
	{255, 127, 14, 255},
	{44, 160, 44, 255},
	{214, 39, 40, 255},
	{148, 103, 189, 255},
	{140, 86, 75, 255},
	{227, 119, 194, 255},
	{127, 127, 127, 255},
	{188, 189, 34, 255},
	{23, 190, 207, 255},
}

// PaletteColor returns the palette color for a profile position.
func PaletteColor(i int) color.RGBA {
	return palette[i%len(palette)]
}

func hexColor(c color.RGBA) string {
	return fmt.Sprintf("#%02x%02x%02x", c.R, c.G, c.B)
}

// ComparisonFile returns the file name of a comparison chart.
func ComparisonFile(logType summarizing.LogType, metric string) string {
	return fmt.Sprintf("comparativa_%s_%s.png", logType, metric)
}

// RenderComparison writes a bar chart comparing one (type, metric) pair
// across profiles into dir. It returns the written path, or "" when no
// summary matches.
func RenderComparison(dir string, summaries []summarizing.Summary, logType summarizing.LogType, metric string) (string, error) {
	rows := summarizing.Filter(summaries, logType, metric)
	if len(rows) == 0 {
		return "", nil
	}
	profiles, values := summarizing.ProfileMeans(rows)

	p := plot.New()
	p.Title.Text = fmt.Sprintf("Comparativa de %s (%s)", metric, logType)
	p.Y.Label.Text = metric
	p.Legend.Top = true

	for i, profile := range profiles {
		bar, err := plotter.NewBarChart(plotter.Values{drawable(values[i])}, vg.Points(barWidth))
		if err != nil {
			return "", fmt.Errorf("failed to build bar for %s: %w", profile, err)
		}
		bar.XMin = float64(i)
		bar.Color = PaletteColor(i)
		bar.LineStyle.Width = 0
		p.Add(bar)
		p.Legend.Add(profile, bar)
	}
	p.NominalX(profiles...)
	p.X.Min = -0.5
	p.X.Max = float64(len(profiles)) - 0.5
	if p.Y.Min > 0 {
		p.Y.Min = 0
	}

	path := filepath.Join(dir, ComparisonFile(logType, metric))
	if err := p.Save(defaultWidth, defaultHeight, path); err != nil {
		return "", err
	}
	return path, nil
}

// RenderComparisonPage writes an interactive HTML page with one bar chart
// per (type, metric) pair that has data. It returns the number of charts.
func RenderComparisonPage(path string, summaries []summarizing.Summary) (int, error) {
	page := components.NewPage()
	page.PageTitle = "Comparativas"

	count := 0
	for _, logType := range summarizing.LogTypes {
		for _, metric := range summarizing.Metrics(summaries) {
			rows := summarizing.Filter(summaries, logType, metric)
			if len(rows) == 0 {
				continue
			}
			page.AddCharts(createBarChart(logType, metric, rows))
			count++
		}
	}

	f, err := os.Create(path)
	if err != nil {
		return 0, fmt.Errorf("failed to create comparison page: %w", err)
	}
	defer f.Close()

	if err := page.Render(f); err != nil {
		return 0, fmt.Errorf("failed to render comparison page: %w", err)
	}
	return count, nil
}

func createBarChart(logType summarizing.LogType, metric string, rows []summarizing.Summary) *charts.Bar {
	profiles, values := summarizing.ProfileMeans(rows)

	bar := charts.NewBar()
	bar.SetGlobalOptions(
		charts.WithTitleOpts(opts.Title{Title: fmt.Sprintf("Comparativa de %s (%s)", metric, logType)}),
		charts.WithTooltipOpts(opts.Tooltip{Show: opts.Bool(true), Trigger: "axis"}),
		charts.WithLegendOpts(opts.Legend{Show: opts.Bool(false)}),
		charts.WithXAxisOpts(opts.XAxis{Type: "category"}),
		charts.WithYAxisOpts(opts.YAxis{Type: "value", Name: metric}),
		charts.WithInitializationOpts(opts.Initialization{Width: "100%", Height: "400px"}),
	)

	data := make([]opts.BarData, len(values))
	for i, v := range values {
		data[i] = opts.BarData{
			Name:      profiles[i],
			Value:     drawable(v),
			ItemStyle: &opts.ItemStyle{Color: hexColor(PaletteColor(i))},
		}
	}

	bar.SetXAxis(profiles).AddSeries(metric, data)
	return bar
}

// drawable maps missing values to an empty bar.
func drawable(v float64) float64 {
	if math.IsNaN(v) || math.IsInf(v, 0) {
		return 0
	}
	return v
}
