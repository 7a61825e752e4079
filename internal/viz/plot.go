package viz

import (
	"errors"
	"fmt"

	"github.com/guptarohit/asciigraph"
	"gonum.org/v1/plot"
	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/vg"
)

var ErrNoData = errors.New("viz: no data to plot")

// HistogramChart plots bin counts as an ASCII curve.
func HistogramChart(counts, edges []float64, caption string) (string, error) {
	if len(counts) == 0 {
		return "", ErrNoData
	}
	if len(edges) == len(counts)+1 {
		caption = fmt.Sprintf("%s [%.4g, %.4g]", caption, edges[0], edges[len(edges)-1])
	}
	return asciigraph.Plot(counts,
		asciigraph.Height(10),
		asciigraph.Width(80),
		asciigraph.Caption(caption),
	), nil
}

// CurveChart plots ys in order; xs only label the caption.
func CurveChart(xs, ys []float64, caption string) (string, error) {
	if len(ys) == 0 {
		return "", ErrNoData
	}
	if len(xs) == len(ys) {
		caption = fmt.Sprintf("%s [%.4g .. %.4g]", caption, xs[0], xs[len(xs)-1])
	}
	return asciigraph.Plot(ys,
		asciigraph.Height(10),
		asciigraph.Width(80),
		asciigraph.Caption(caption),
	), nil
}

// SaveHistogramPNG writes a histogram of values with the given number of
// bins to file.
func SaveHistogramPNG(values []float64, bins int, title, xlabel, file string) error {
	if len(values) == 0 {
		return ErrNoData
	}
	p := plot.New()
	p.Title.Text = title
	p.X.Label.Text = xlabel
	p.Y.Label.Text = "count"

	h, err := plotter.NewHist(plotter.Values(values), bins)
	if err != nil {
		return err
	}
	p.Add(h)

	return p.Save(8*vg.Inch, 5*vg.Inch, file)
}

// SaveCurvePNG writes ys against xs as a line to file.
func SaveCurvePNG(xs, ys []float64, title, xlabel, ylabel, file string) error {
	if len(ys) == 0 || len(xs) != len(ys) {
		return ErrNoData
	}
	p := plot.New()
	p.Title.Text = title
	p.X.Label.Text = xlabel
	p.Y.Label.Text = ylabel

	pts := make(plotter.XYs, len(xs))
	for i := range xs {
		pts[i] = plotter.XY{X: xs[i], Y: ys[i]}
	}
	line, err := plotter.NewLine(pts)
	if err != nil {
		return err
	}
	line.Width = vg.Points(1)
	p.Add(line, plotter.NewGrid())

	return p.Save(8*vg.Inch, 5*vg.Inch, file)
}
