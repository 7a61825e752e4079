// Package sampling propagates parameter ranges through an observable by
// uniform Monte Carlo sampling.
package sampling

import (
	"context"
	"errors"
	"math/rand/v2"

	"gonum.org/v1/gonum/stat/distuv"

	"github.com/san-kum/flavorsim/internal/observable"
	"github.com/san-kum/flavorsim/internal/parallel"
	"github.com/san-kum/flavorsim/internal/params"
	"github.com/san-kum/flavorsim/internal/telemetry"
)

var ErrNoSamples = errors.New("sampling: no samples requested")

type Config struct {
	Samples int
	Workers int
	Seed    uint64
	// Vary names the parameters to draw. Empty means every parameter the
	// observable depends on.
	Vary []string
}

type Result struct {
	Observable string      `json:"observable"`
	Vary       []string    `json:"vary"`
	Values     []float64   `json:"-"`
	Inputs     [][]float64 `json:"-"`
	Summary    Summary     `json:"summary"`
}

type Sampler struct {
	cfg Config
}

func New(cfg Config) *Sampler {
	if cfg.Workers < 1 {
		cfg.Workers = 1
	}
	return &Sampler{cfg: cfg}
}

// Run draws every varied parameter uniformly in [min, max] and evaluates
// the observable once per draw. Each worker owns a clone of base and a
// source seeded from Seed and its index, so a fixed Seed and Workers give
// identical results.
func (s *Sampler) Run(ctx context.Context, base params.Parameters, build observable.Builder) (*Result, error) {
	n := s.cfg.Samples
	if n <= 0 {
		return nil, ErrNoSamples
	}

	probe, err := build(base)
	if err != nil {
		return nil, err
	}
	vary, err := s.varied(base, probe)
	if err != nil {
		return nil, err
	}

	values := make([]float64, n)
	inputs := make([][]float64, n)
	err = parallel.For(n, s.cfg.Workers, func(w, start, end int) error {
		src := rand.NewPCG(s.cfg.Seed, uint64(w))
		return s.sampleRange(ctx, base, build, vary, src, values[start:end], inputs[start:end])
	})
	if err != nil {
		return nil, err
	}

	return &Result{
		Observable: probe.Name(),
		Vary:       vary,
		Values:     values,
		Inputs:     inputs,
		Summary:    Summarize(values),
	}, nil
}

func (s *Sampler) varied(base params.Parameters, probe observable.Observable) ([]string, error) {
	if len(s.cfg.Vary) > 0 {
		for _, name := range s.cfg.Vary {
			if !base.Has(name) {
				return nil, &params.UnknownParameterError{Name: name}
			}
		}
		return s.cfg.Vary, nil
	}
	var names []string
	for id := range probe.User().IDs() {
		p, err := base.ByID(id)
		if err != nil {
			return nil, err
		}
		if p.Min() != p.Max() {
			names = append(names, p.Name())
		}
	}
	return names, nil
}

func (s *Sampler) sampleRange(ctx context.Context, base params.Parameters, build observable.Builder, vary []string, src rand.Source, values []float64, inputs [][]float64) error {
	view := base.Clone()
	telemetry.Clones.Inc()

	o, err := build(view)
	if err != nil {
		return err
	}

	handles := make([]params.Parameter, len(vary))
	dists := make([]distuv.Uniform, len(vary))
	for i, name := range vary {
		if handles[i], err = view.ByName(name); err != nil {
			return err
		}
		lo, hi := handles[i].Min(), handles[i].Max()
		if lo > hi {
			lo, hi = hi, lo
		}
		dists[i] = distuv.Uniform{Min: lo, Max: hi, Src: src}
	}

	for i := range values {
		if err := ctx.Err(); err != nil {
			return err
		}
		draw := make([]float64, len(vary))
		for j, h := range handles {
			draw[j] = dists[j].Rand()
			h.Set(draw[j])
		}
		values[i] = telemetry.Evaluate(o)
		inputs[i] = draw
	}
	return nil
}
