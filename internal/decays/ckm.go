package decays

import (
	"fmt"
	"math"

	"github.com/san-kum/flavorsim/internal/observable"
	"github.com/san-kum/flavorsim/internal/params"
)

// CKMElement is the magnitude of one CKM matrix element in the Wolfenstein
// parametrisation, to leading order in lambda.
type CKMElement struct {
	base
	element string
	a       params.UsedParameter
	lambda  params.UsedParameter
	rhobar  params.UsedParameter
	etabar  params.UsedParameter
}

// CKMFactory returns a factory for element, one of V_us, V_cb or V_ub.
func CKMFactory(element string) observable.Factory {
	return func(p params.Parameters, opts observable.Options) (observable.Observable, error) {
		e, err := NewCKMElement(element, p, opts)
		if err != nil {
			return nil, err
		}
		return e, nil
	}
}

func NewCKMElement(element string, p params.Parameters, opts observable.Options) (*CKMElement, error) {
	e := &CKMElement{base: newBase("CKM::|"+element+"|", p, opts), element: element}

	var err error
	switch element {
	case "V_us":
		e.lambda, err = e.user.Acquire(p, "CKM::lambda")
	case "V_cb":
		var used []params.UsedParameter
		if used, err = e.acquire("CKM::A", "CKM::lambda"); err == nil {
			e.a, e.lambda = used[0], used[1]
		}
	case "V_ub":
		var used []params.UsedParameter
		if used, err = e.acquire("CKM::A", "CKM::lambda", "CKM::rhobar", "CKM::etabar"); err == nil {
			e.a, e.lambda, e.rhobar, e.etabar = used[0], used[1], used[2], used[3]
		}
	default:
		return nil, fmt.Errorf("%w: unknown CKM element %q", observable.ErrInvalidOption, element)
	}
	if err != nil {
		return nil, err
	}
	return e, nil
}

func (e *CKMElement) Evaluate() float64 {
	lambda := e.lambda.Value()
	switch e.element {
	case "V_us":
		return lambda
	case "V_cb":
		return e.a.Value() * lambda * lambda
	default:
		rho, eta := e.rhobar.Value(), e.etabar.Value()
		return e.a.Value() * lambda * lambda * lambda * math.Hypot(rho, eta)
	}
}
