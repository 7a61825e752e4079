package telemetry

import (
	"math"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/prometheus/client_golang/prometheus/testutil"

	"github.com/san-kum/flavorsim/internal/observable"
	"github.com/san-kum/flavorsim/internal/params"
)

type constObservable struct {
	name string
	v    float64
	user params.User
}

func (c *constObservable) Name() string                  { return c.name }
func (c *constObservable) Evaluate() float64             { return c.v }
func (c *constObservable) Parameters() params.Parameters { return params.Parameters{} }
func (c *constObservable) Options() observable.Options   { return nil }
func (c *constObservable) User() *params.User            { return &c.user }

func TestEvaluateCounts(t *testing.T) {
	o := &constObservable{name: "test::const", v: 2.5}

	if v := Evaluate(o); v != 2.5 {
		t.Errorf("expected 2.5, got %f", v)
	}
	Evaluate(o)

	if got := testutil.ToFloat64(Evaluations.WithLabelValues("test::const")); got != 2 {
		t.Errorf("expected 2 evaluations, got %f", got)
	}
	if got := testutil.ToFloat64(NonFinite.WithLabelValues("test::const")); got != 0 {
		t.Errorf("expected no non-finite results, got %f", got)
	}

	bad := &constObservable{name: "test::nan", v: math.NaN()}
	Evaluate(bad)
	if got := testutil.ToFloat64(NonFinite.WithLabelValues("test::nan")); got != 1 {
		t.Errorf("expected 1 non-finite result, got %f", got)
	}
}

func TestHandler(t *testing.T) {
	Evaluate(&constObservable{name: "test::handler", v: 1})

	rec := httptest.NewRecorder()
	Handler().ServeHTTP(rec, httptest.NewRequest("GET", "/metrics", nil))

	body := rec.Body.String()
	if !strings.Contains(body, "flavorsim_observable_evaluations_total") {
		t.Error("expected evaluations counter in metrics output")
	}
	if !strings.Contains(body, `observable="test::handler"`) {
		t.Error("expected observable label in metrics output")
	}
}
