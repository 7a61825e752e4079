package decays

import (
	"fmt"
	"math"

	"github.com/san-kum/flavorsim/internal/observable"
	"github.com/san-kum/flavorsim/internal/params"
)

// LeptonicBranchingRatio is the tree-level branching ratio of B_u -> l nu.
// |V_ub| comes from a CKMElement built on the same view, whose dependencies
// are merged into this observable's.
type LeptonicBranchingRatio struct {
	base
	vub      *CKMElement
	hbar     params.UsedParameter
	gFermi   params.UsedParameter
	mB       params.UsedParameter
	fB       params.UsedParameter
	lifetime params.UsedParameter
	mLepton  params.UsedParameter
}

// NewLeptonicBranchingRatio reads option l (e, mu or tau; default mu).
func NewLeptonicBranchingRatio(p params.Parameters, opts observable.Options) (observable.Observable, error) {
	l := opts.Get("l", "mu")
	switch l {
	case "e", "mu", "tau":
	default:
		return nil, fmt.Errorf("%w: l=%q (expected e, mu or tau)", observable.ErrInvalidOption, l)
	}

	vub, err := NewCKMElement("V_ub", p, opts)
	if err != nil {
		return nil, err
	}

	br := &LeptonicBranchingRatio{base: newBase("B_u->lnu::BR", p, opts), vub: vub}
	br.user.UsesAll(vub.User())

	used, err := br.acquire("hbar", "G_Fermi", "mass::B_u", "decay-constant::B_u", "life_time::B_u", "mass::"+l)
	if err != nil {
		return nil, err
	}
	br.hbar, br.gFermi, br.mB, br.fB, br.lifetime, br.mLepton = used[0], used[1], used[2], used[3], used[4], used[5]
	return br, nil
}

func (br *LeptonicBranchingRatio) Evaluate() float64 {
	gf, mB, fB, ml := br.gFermi.Value(), br.mB.Value(), br.fB.Value(), br.mLepton.Value()
	vub := br.vub.Evaluate()

	helicity := 1.0 - ml*ml/(mB*mB)
	width := gf * gf * mB * ml * ml * fB * fB * vub * vub * helicity * helicity / (8.0 * math.Pi)

	return width * br.lifetime.Value() / br.hbar.Value()
}
