package viz

import (
	"fmt"
	"io"

	"github.com/go-echarts/go-echarts/v2/charts"
	"github.com/go-echarts/go-echarts/v2/opts"
)

// WriteHistogramHTML renders bin counts as a bar chart page. Bars are
// labeled by their bin centers.
func WriteHistogramHTML(w io.Writer, counts, edges []float64, title string) error {
	if len(counts) == 0 || len(edges) != len(counts)+1 {
		return ErrNoData
	}

	x := make([]string, len(counts))
	y := make([]opts.BarData, len(counts))
	for i, c := range counts {
		x[i] = fmt.Sprintf("%.4g", (edges[i]+edges[i+1])/2)
		y[i] = opts.BarData{Value: c}
	}

	bar := charts.NewBar()
	bar.SetGlobalOptions(
		charts.WithInitializationOpts(opts.Initialization{PageTitle: title, Width: "900px", Height: "500px"}),
		charts.WithTitleOpts(opts.Title{Title: title, Subtitle: fmt.Sprintf("%d bins", len(counts))}),
		charts.WithTooltipOpts(opts.Tooltip{Show: opts.Bool(true)}),
	)
	bar.SetXAxis(x).AddSeries("count", y)
	return bar.Render(w)
}

// WriteCurveHTML renders ys against xs as a line chart page.
func WriteCurveHTML(w io.Writer, xs, ys []float64, title, series string) error {
	if len(ys) == 0 || len(xs) != len(ys) {
		return ErrNoData
	}

	x := make([]string, len(xs))
	y := make([]opts.LineData, len(ys))
	for i := range xs {
		x[i] = fmt.Sprintf("%.4g", xs[i])
		y[i] = opts.LineData{Value: ys[i]}
	}

	line := charts.NewLine()
	line.SetGlobalOptions(
		charts.WithInitializationOpts(opts.Initialization{PageTitle: title, Width: "900px", Height: "500px"}),
		charts.WithTitleOpts(opts.Title{Title: title}),
		charts.WithTooltipOpts(opts.Tooltip{Show: opts.Bool(true)}),
	)
	line.SetXAxis(x).AddSeries(series, y)
	return line.Render(w)
}
