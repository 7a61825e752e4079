package observable

import (
	"slices"
	"testing"

	"github.com/san-kum/flavorsim/internal/params"
)

type testObservable struct {
	p    params.Parameters
	user params.User
	x    params.UsedParameter
	y    params.UsedParameter
}

func (o *testObservable) Name() string                  { return "test::sum" }
func (o *testObservable) Evaluate() float64             { return o.x.Value() + o.y.Value() }
func (o *testObservable) Parameters() params.Parameters { return o.p }
func (o *testObservable) Options() Options              { return Options{"k": "v"} }
func (o *testObservable) User() *params.User            { return &o.user }

func newTestObservable(t *testing.T, p params.Parameters) *testObservable {
	t.Helper()
	o := &testObservable{p: p}
	var err error
	if o.x, err = o.user.Acquire(p, "x"); err != nil {
		t.Fatal(err)
	}
	if o.y, err = o.user.Acquire(p, "y"); err != nil {
		t.Fatal(err)
	}
	return o
}

func TestEvaluate(t *testing.T) {
	p := params.MustNew(
		params.Template{Name: "x", Central: 1},
		params.Template{Name: "unused", Central: 100},
		params.Template{Name: "y", Central: 2},
	)
	o := newTestObservable(t, p)

	res := Evaluate(o)
	if res.Value != 3 {
		t.Errorf("expected 3, got %f", res.Value)
	}
	if !slices.Equal(res.Uses, []string{"x", "y"}) {
		t.Errorf("expected uses [x y], got %v", res.Uses)
	}
	if res.Inputs["y"] != 2 {
		t.Errorf("expected input y=2, got %f", res.Inputs["y"])
	}
	if _, ok := res.Inputs["unused"]; ok {
		t.Error("unused parameter reported as input")
	}
	if res.Name != "test::sum" || res.Options["k"] != "v" {
		t.Errorf("unexpected result metadata: %+v", res)
	}
}
