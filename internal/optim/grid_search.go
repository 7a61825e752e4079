package optim

import (
	"context"
	"errors"
	"fmt"
	"math"

	"github.com/san-kum/flavorsim/internal/observable"
	"github.com/san-kum/flavorsim/internal/parallel"
	"github.com/san-kum/flavorsim/internal/params"
	"github.com/san-kum/flavorsim/internal/telemetry"
)

// Axis is one scanned parameter and the values it takes.
type Axis struct {
	Name   string    `json:"name"`
	Values []float64 `json:"values"`
}

// LinearAxis spaces steps values evenly over [min, max].
func LinearAxis(name string, min, max float64, steps int) Axis {
	values := make([]float64, steps)
	for i := range values {
		switch {
		case i == 0:
			values[i] = min
		case i == steps-1:
			values[i] = max
		default:
			values[i] = min + (max-min)*float64(i)/float64(steps-1)
		}
	}
	return Axis{Name: name, Values: values}
}

// RangeAxis spaces steps values over the parameter's own [min, max].
func RangeAxis(p params.Parameter, steps int) Axis {
	return LinearAxis(p.Name(), p.Min(), p.Max(), steps)
}

type Point struct {
	Coords []float64 `json:"coords"`
	Value  float64   `json:"value"`
}

type GridResult struct {
	Axes   []Axis  `json:"axes"`
	Points []Point `json:"points"`
	Min    Point   `json:"min"`
	Max    Point   `json:"max"`
}

type GridSearch struct {
	axes    []Axis
	workers int
}

func NewGridSearch(axes []Axis, workers int) *GridSearch {
	if workers < 1 {
		workers = 1
	}
	return &GridSearch{axes: axes, workers: workers}
}

// Size is the number of grid points.
func (g *GridSearch) Size() int {
	if len(g.axes) == 0 {
		return 0
	}
	n := 1
	for _, a := range g.axes {
		n *= len(a.Values)
	}
	return n
}

// coords decodes a flat point index, last axis fastest.
func (g *GridSearch) coords(idx int) []float64 {
	c := make([]float64, len(g.axes))
	for i := len(g.axes) - 1; i >= 0; i-- {
		n := len(g.axes[i].Values)
		c[i] = g.axes[i].Values[idx%n]
		idx /= n
	}
	return c
}

// Search evaluates the observable at every grid point. Each worker clones
// base and rebuilds the observable on its clone, so base is never written.
func (g *GridSearch) Search(ctx context.Context, base params.Parameters, build observable.Builder) (*GridResult, error) {
	n := g.Size()
	if n == 0 {
		return nil, errors.New("optim: empty grid")
	}

	for _, a := range g.axes {
		if !base.Has(a.Name) {
			return nil, &params.UnknownParameterError{Name: a.Name}
		}
	}

	points := make([]Point, n)
	err := parallel.For(n, g.workers, func(_, start, end int) error {
		return g.searchRange(ctx, base, build, points, start, end)
	})
	if err != nil {
		return nil, err
	}

	res := &GridResult{Axes: g.axes, Points: points}
	res.Min, res.Max = extremes(points)
	return res, nil
}

func (g *GridSearch) searchRange(ctx context.Context, base params.Parameters, build observable.Builder, points []Point, start, end int) error {
	view := base.Clone()
	telemetry.Clones.Inc()

	o, err := build(view)
	if err != nil {
		return err
	}

	handles := make([]params.Parameter, len(g.axes))
	for i, a := range g.axes {
		if handles[i], err = view.ByName(a.Name); err != nil {
			return err
		}
	}

	for idx := start; idx < end; idx++ {
		if err := ctx.Err(); err != nil {
			return err
		}
		c := g.coords(idx)
		for i, h := range handles {
			h.Set(c[i])
		}
		points[idx] = Point{Coords: c, Value: telemetry.Evaluate(o)}
	}
	return nil
}

func extremes(points []Point) (lo, hi Point) {
	best, worst := math.Inf(1), math.Inf(-1)
	for _, p := range points {
		if math.IsNaN(p.Value) {
			continue
		}
		if p.Value < best {
			best, lo = p.Value, p
		}
		if p.Value > worst {
			worst, hi = p.Value, p
		}
	}
	return lo, hi
}

func (r *GridResult) String() string {
	return fmt.Sprintf("%d points, min %g at %v, max %g at %v", len(r.Points), r.Min.Value, r.Min.Coords, r.Max.Value, r.Max.Coords)
}
