package experiment

import (
	"errors"
	"fmt"
	"maps"
	"slices"

	"github.com/san-kum/flavorsim/internal/decays"
	"github.com/san-kum/flavorsim/internal/observable"
	"github.com/san-kum/flavorsim/internal/params"
)

// ErrUnknownObservable is returned by Make for unregistered names.
var ErrUnknownObservable = errors.New("experiment: unknown observable")

// Registry maps observable names to factories.
type Registry struct {
	factories map[string]observable.Factory
	defaults  observable.Options
}

// NewRegistry returns a registry holding every observable in package decays.
func NewRegistry() *Registry {
	r := NewEmptyRegistry()

	r.Register("B_q::Gamma", decays.NewDecayWidth)
	r.Register("CKM::|V_us|", decays.CKMFactory("V_us"))
	r.Register("CKM::|V_cb|", decays.CKMFactory("V_cb"))
	r.Register("CKM::|V_ub|", decays.CKMFactory("V_ub"))
	r.Register("B_u->lnu::BR", decays.NewLeptonicBranchingRatio)

	return r
}

// NewEmptyRegistry returns a registry with no observables and the default
// options every factory receives.
func NewEmptyRegistry() *Registry {
	return &Registry{
		factories: make(map[string]observable.Factory),
		defaults:  observable.Options{"form-factors": "BZ2004"},
	}
}

// Register adds or replaces a factory.
func (r *Registry) Register(name string, f observable.Factory) {
	r.factories[name] = f
}

// Make builds the named observable on p. Default options are filled in
// where opts does not set them; opts itself is not modified.
func (r *Registry) Make(name string, p params.Parameters, opts observable.Options) (observable.Observable, error) {
	fn, ok := r.factories[name]
	if !ok {
		return nil, fmt.Errorf("%w: %s", ErrUnknownObservable, name)
	}

	merged := opts.Clone()
	for k, v := range r.defaults {
		if !merged.Has(k) {
			merged.Set(k, v)
		}
	}

	o, err := fn(p, merged)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", name, err)
	}
	return o, nil
}

// Builder binds name and opts so the observable can be rebuilt on other
// views.
func (r *Registry) Builder(name string, opts observable.Options) (observable.Builder, error) {
	if !r.Has(name) {
		return nil, fmt.Errorf("%w: %s", ErrUnknownObservable, name)
	}
	opts = opts.Clone()
	return func(p params.Parameters) (observable.Observable, error) {
		return r.Make(name, p, opts)
	}, nil
}

func (r *Registry) Has(name string) bool {
	_, ok := r.factories[name]
	return ok
}

// List returns registered names in sorted order.
func (r *Registry) List() []string {
	return slices.Sorted(maps.Keys(r.factories))
}
