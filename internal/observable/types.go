// Package observable defines the boundary between the parameter store and
// the calculations that consume it.
package observable

import "github.com/san-kum/flavorsim/internal/params"

// Observable is a calculation bound to one parameter view. Evaluate reads
// the current values of the parameters it acquired.
type Observable interface {
	Name() string
	Evaluate() float64
	Parameters() params.Parameters
	Options() Options
	params.Tracker
}

// Factory builds an observable on the given view.
type Factory func(p params.Parameters, opts Options) (Observable, error)

// Builder builds one fixed observable on whatever view it is given. Workers
// use it to rebuild an observable on their own clone.
type Builder func(p params.Parameters) (Observable, error)

// Result is the outcome of evaluating one observable.
type Result struct {
	Name    string             `json:"name"`
	Options Options            `json:"options,omitempty"`
	Value   float64            `json:"value"`
	Uses    []string           `json:"uses"`
	Inputs  map[string]float64 `json:"inputs,omitempty"`
}

// Evaluate runs o and records the names and values of its dependencies.
func Evaluate(o Observable) Result {
	return NewResult(o, o.Evaluate())
}

// NewResult describes an evaluation of o that produced value.
func NewResult(o Observable, value float64) Result {
	p := o.Parameters()
	names := make([]string, 0, o.User().Len())
	inputs := make(map[string]float64, o.User().Len())
	for id := range o.User().IDs() {
		par, err := p.ByID(id)
		if err != nil {
			continue
		}
		names = append(names, par.Name())
		inputs[par.Name()] = par.Value()
	}
	return Result{
		Name:    o.Name(),
		Options: o.Options(),
		Value:   value,
		Uses:    names,
		Inputs:  inputs,
	}
}
