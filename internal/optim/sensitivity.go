package optim

import (
	"context"
	"errors"
	"math"
	"slices"

	"github.com/san-kum/flavorsim/internal/observable"
	"github.com/san-kum/flavorsim/internal/params"
	"github.com/san-kum/flavorsim/internal/telemetry"
)

// ErrNoDependencies is returned for observables that track no parameters.
var ErrNoDependencies = errors.New("optim: observable has no parameter dependencies")

// Sensitivity is the response of an observable to one input moved to the
// ends of its range.
type Sensitivity struct {
	ID      params.ID `json:"id"`
	Name    string    `json:"name"`
	Central float64   `json:"central"`
	Low     float64   `json:"low"`
	High    float64   `json:"high"`
	// Delta is |High - Low| relative to the central prediction.
	Delta float64 `json:"delta"`
}

// Sensitivities moves every tracked input of the observable to its min and
// max in turn, holding the others fixed. Results are sorted by Delta,
// largest first. base is not modified.
func Sensitivities(ctx context.Context, base params.Parameters, build observable.Builder) ([]Sensitivity, error) {
	probe, err := build(base)
	if err != nil {
		return nil, err
	}
	if probe.User().Len() == 0 {
		return nil, ErrNoDependencies
	}

	// ids from the probe are resolved against a clone; positions match.
	view := base.Clone()
	telemetry.Clones.Inc()
	o, err := build(view)
	if err != nil {
		return nil, err
	}
	central := telemetry.Evaluate(o)

	var out []Sensitivity
	for id := range probe.User().IDs() {
		if err := ctx.Err(); err != nil {
			return nil, err
		}
		p, err := view.ByID(id)
		if err != nil {
			return nil, err
		}

		orig := p.Value()
		p.Set(p.Min())
		low := telemetry.Evaluate(o)
		p.Set(p.Max())
		high := telemetry.Evaluate(o)
		p.Set(orig)

		delta := math.Abs(high - low)
		if central != 0 {
			delta /= math.Abs(central)
		}
		out = append(out, Sensitivity{ID: id, Name: p.Name(), Central: central, Low: low, High: high, Delta: delta})
	}

	slices.SortStableFunc(out, func(a, b Sensitivity) int {
		switch {
		case a.Delta > b.Delta:
			return -1
		case a.Delta < b.Delta:
			return 1
		}
		return 0
	})
	return out, nil
}
