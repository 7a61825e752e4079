// Package decays holds the concrete observables known to flavorsim. Every
// input is taken through params.User.Acquire, so an observable's dependency
// set is exactly the set of parameters it can read.
package decays

import (
	"github.com/san-kum/flavorsim/internal/observable"
	"github.com/san-kum/flavorsim/internal/params"
)

type base struct {
	name string
	p    params.Parameters
	opts observable.Options
	user params.User
}

func newBase(name string, p params.Parameters, opts observable.Options) base {
	return base{name: name, p: p, opts: opts.Clone()}
}

func (b *base) Name() string                  { return b.name }
func (b *base) Parameters() params.Parameters { return b.p }
func (b *base) Options() observable.Options   { return b.opts }
func (b *base) User() *params.User            { return &b.user }

// acquire resolves names in order. It stops at the first unknown name.
func (b *base) acquire(names ...string) ([]params.UsedParameter, error) {
	used := make([]params.UsedParameter, len(names))
	for i, name := range names {
		p, err := b.user.Acquire(b.p, name)
		if err != nil {
			return nil, err
		}
		used[i] = p
	}
	return used, nil
}
