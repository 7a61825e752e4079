package experiment

import (
	"context"
	"fmt"

	"github.com/san-kum/flavorsim/internal/monitoring"
	"github.com/san-kum/flavorsim/internal/observable"
	"github.com/san-kum/flavorsim/internal/params"
	"github.com/san-kum/flavorsim/internal/telemetry"
)

// Spec names one observable and its options.
type Spec struct {
	Name    string
	Options observable.Options
}

type Config struct {
	Observables []Spec
	Overrides   map[string]float64
}

// Experiment evaluates a set of observables on a private clone of a
// parameter view.
type Experiment struct {
	cfg         Config
	registry    *Registry
	params      params.Parameters
	observables []observable.Observable
}

func New(cfg Config, registry *Registry) *Experiment {
	return &Experiment{cfg: cfg, registry: registry}
}

// Setup clones p, applies the configured overrides and builds every
// observable on the clone. p is not modified.
func (e *Experiment) Setup(p params.Parameters) error {
	if len(e.cfg.Observables) == 0 {
		return fmt.Errorf("experiment has no observables")
	}

	view := p.Clone()
	if err := view.Apply(e.cfg.Overrides); err != nil {
		return fmt.Errorf("apply overrides: %w", err)
	}

	built := make([]observable.Observable, 0, len(e.cfg.Observables))
	for _, spec := range e.cfg.Observables {
		o, err := e.registry.Make(spec.Name, view, spec.Options)
		if err != nil {
			return err
		}
		built = append(built, o)
	}

	e.params = view
	e.observables = built
	return nil
}

func (e *Experiment) Run(ctx context.Context) ([]observable.Result, error) {
	if e.observables == nil {
		return nil, fmt.Errorf("experiment not setup")
	}

	results := make([]observable.Result, 0, len(e.observables))
	for _, o := range e.observables {
		if err := ctx.Err(); err != nil {
			return nil, err
		}
		res := observable.NewResult(o, telemetry.Evaluate(o))
		monitoring.Logf("evaluated %s [%s] = %g (%d inputs)", res.Name, res.Options, res.Value, len(res.Uses))
		results = append(results, res)
	}
	return results, nil
}

// Parameters returns the view the observables were built on. Setting values
// on it changes the next Run.
func (e *Experiment) Parameters() params.Parameters {
	return e.params
}

func (e *Experiment) Observables() []observable.Observable {
	return e.observables
}

// Dependencies returns the union of the observables' dependency sets.
func (e *Experiment) Dependencies() *params.User {
	var all params.User
	for _, o := range e.observables {
		all.UsesAll(o.User())
	}
	return &all
}
