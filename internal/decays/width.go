package decays

import (
	"fmt"

	"github.com/san-kum/flavorsim/internal/observable"
	"github.com/san-kum/flavorsim/internal/params"
)

// DecayWidth is the total width of a B_q meson, hbar / tau(B_q), in GeV.
type DecayWidth struct {
	base
	hbar     params.UsedParameter
	lifetime params.UsedParameter
}

// NewDecayWidth reads option q (d, u or s; default d).
func NewDecayWidth(p params.Parameters, opts observable.Options) (observable.Observable, error) {
	q := opts.Get("q", "d")
	switch q {
	case "d", "u", "s":
	default:
		return nil, fmt.Errorf("%w: q=%q (expected d, u or s)", observable.ErrInvalidOption, q)
	}

	w := &DecayWidth{base: newBase("B_q::Gamma", p, opts)}
	used, err := w.acquire("hbar", "life_time::B_"+q)
	if err != nil {
		return nil, err
	}
	w.hbar, w.lifetime = used[0], used[1]
	return w, nil
}

func (w *DecayWidth) Evaluate() float64 {
	return w.hbar.Value() / w.lifetime.Value()
}
