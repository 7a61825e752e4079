package decays

import (
	"errors"
	"math"
	"slices"
	"testing"

	"github.com/san-kum/flavorsim/internal/observable"
	"github.com/san-kum/flavorsim/internal/params"
)

func usedNames(t *testing.T, o observable.Observable) []string {
	t.Helper()
	var names []string
	for id := range o.User().IDs() {
		p, err := o.Parameters().ByID(id)
		if err != nil {
			t.Fatalf("tracked id %d not in view: %v", id, err)
		}
		names = append(names, p.Name())
	}
	slices.Sort(names)
	return names
}

func TestDecayWidth(t *testing.T) {
	p := params.Defaults()

	for _, q := range []string{"d", "u", "s"} {
		t.Run(q, func(t *testing.T) {
			w, err := NewDecayWidth(p, observable.Options{"q": q})
			if err != nil {
				t.Fatalf("build failed: %v", err)
			}
			hbar, _ := p.ByName("hbar")
			tau, _ := p.ByName("life_time::B_" + q)
			expected := hbar.Value() / tau.Value()
			if math.Abs(w.Evaluate()-expected) > 1e-20 {
				t.Errorf("expected %g, got %g", expected, w.Evaluate())
			}
			want := []string{"hbar", "life_time::B_" + q}
			if got := usedNames(t, w); !slices.Equal(got, want) {
				t.Errorf("expected dependencies %v, got %v", want, got)
			}
		})
	}
}

func TestDecayWidthInvalidOption(t *testing.T) {
	_, err := NewDecayWidth(params.Defaults(), observable.Options{"q": "c"})
	if !errors.Is(err, observable.ErrInvalidOption) {
		t.Errorf("expected ErrInvalidOption, got %v", err)
	}
}

func TestDecayWidthFollowsSet(t *testing.T) {
	p := params.Defaults()
	w, err := NewDecayWidth(p, observable.Options{})
	if err != nil {
		t.Fatalf("build failed: %v", err)
	}
	before := w.Evaluate()
	if err := p.Set("life_time::B_d", 2*1.519e-12); err != nil {
		t.Fatal(err)
	}
	if math.Abs(w.Evaluate()-before/2) > 1e-20 {
		t.Errorf("expected width to halve, got %g from %g", w.Evaluate(), before)
	}
}

func TestCKMElements(t *testing.T) {
	p := params.Defaults()
	const (
		a      = 0.827
		lambda = 0.22535
		rho    = 0.132
		eta    = 0.350
	)

	tests := []struct {
		element  string
		expected float64
		deps     int
	}{
		{"V_us", lambda, 1},
		{"V_cb", a * lambda * lambda, 2},
		{"V_ub", a * lambda * lambda * lambda * math.Sqrt(rho*rho+eta*eta), 4},
	}

	for _, tt := range tests {
		t.Run(tt.element, func(t *testing.T) {
			o, err := CKMFactory(tt.element)(p, observable.Options{})
			if err != nil {
				t.Fatalf("build failed: %v", err)
			}
			if math.Abs(o.Evaluate()-tt.expected) > 1e-12 {
				t.Errorf("expected %g, got %g", tt.expected, o.Evaluate())
			}
			if o.User().Len() != tt.deps {
				t.Errorf("expected %d dependencies, got %d", tt.deps, o.User().Len())
			}
			if o.Name() != "CKM::|"+tt.element+"|" {
				t.Errorf("unexpected name %s", o.Name())
			}
		})
	}

	if _, err := CKMFactory("V_tb")(p, observable.Options{}); !errors.Is(err, observable.ErrInvalidOption) {
		t.Errorf("expected ErrInvalidOption for V_tb, got %v", err)
	}
}

func TestLeptonicBranchingRatio(t *testing.T) {
	p := params.Defaults()

	br, err := NewLeptonicBranchingRatio(p, observable.Options{"l": "tau"})
	if err != nil {
		t.Fatalf("build failed: %v", err)
	}
	v := br.Evaluate()
	if v < 1e-5 || v > 1e-3 {
		t.Errorf("B_u -> tau nu branching ratio out of expected range: %g", v)
	}

	// the V_ub inputs come in through the merged sub-calculation
	want := []string{
		"CKM::A", "CKM::etabar", "CKM::lambda", "CKM::rhobar",
		"G_Fermi", "decay-constant::B_u", "hbar", "life_time::B_u",
		"mass::B_u", "mass::tau",
	}
	if got := usedNames(t, br); !slices.Equal(got, want) {
		t.Errorf("expected dependencies %v, got %v", want, got)
	}
}

func TestLeptonicHelicitySuppression(t *testing.T) {
	p := params.Defaults()
	e, _ := NewLeptonicBranchingRatio(p, observable.Options{"l": "e"})
	mu, _ := NewLeptonicBranchingRatio(p, observable.Options{"l": "mu"})
	tau, _ := NewLeptonicBranchingRatio(p, observable.Options{"l": "tau"})
	if !(e.Evaluate() < mu.Evaluate() && mu.Evaluate() < tau.Evaluate()) {
		t.Errorf("expected e < mu < tau, got %g %g %g", e.Evaluate(), mu.Evaluate(), tau.Evaluate())
	}

	if _, err := NewLeptonicBranchingRatio(p, observable.Options{"l": "nu"}); !errors.Is(err, observable.ErrInvalidOption) {
		t.Errorf("expected ErrInvalidOption, got %v", err)
	}
}

func TestObservablesOnClonesAreIndependent(t *testing.T) {
	p := params.Defaults()
	orig, _ := CKMFactory("V_cb")(p, observable.Options{})
	clone, _ := CKMFactory("V_cb")(p.Clone(), observable.Options{})

	if err := p.Set("CKM::A", 1.0); err != nil {
		t.Fatal(err)
	}
	if orig.Evaluate() == clone.Evaluate() {
		t.Error("expected clone to keep its own CKM::A")
	}
	if !slices.Equal(slices.Collect(orig.User().IDs()), slices.Collect(clone.User().IDs())) {
		t.Error("expected identical dependency ids on a clone")
	}
}

func TestMissingParameter(t *testing.T) {
	p := params.MustNew(params.Template{Name: "hbar", Central: 1})
	_, err := NewDecayWidth(p, observable.Options{})
	if !errors.Is(err, params.ErrUnknownParameter) {
		t.Errorf("expected ErrUnknownParameter, got %v", err)
	}
}
