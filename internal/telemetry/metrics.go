// Package telemetry exposes Prometheus collectors for observable
// evaluations.
package telemetry

import (
	"context"
	"errors"
	"math"
	"net/http"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/san-kum/flavorsim/internal/monitoring"
	"github.com/san-kum/flavorsim/internal/observable"
)

var (
	// Registry holds every flavorsim collector. It is separate from the
	// default registry so tests see only these series.
	Registry = prometheus.NewRegistry()

	Evaluations = prometheus.NewCounterVec(prometheus.CounterOpts{
		Namespace: "flavorsim",
		Name:      "observable_evaluations_total",
		Help:      "Number of observable evaluations.",
	}, []string{"observable"})

	NonFinite = prometheus.NewCounterVec(prometheus.CounterOpts{
		Namespace: "flavorsim",
		Name:      "observable_nonfinite_total",
		Help:      "Evaluations that returned NaN or Inf.",
	}, []string{"observable"})

	EvaluationSeconds = prometheus.NewHistogramVec(prometheus.HistogramOpts{
		Namespace: "flavorsim",
		Name:      "observable_evaluation_seconds",
		Help:      "Wall time of a single observable evaluation.",
		Buckets:   prometheus.ExponentialBuckets(1e-7, 10, 8),
	}, []string{"observable"})

	Clones = prometheus.NewCounter(prometheus.CounterOpts{
		Namespace: "flavorsim",
		Name:      "parameter_clones_total",
		Help:      "Parameter views cloned for workers.",
	})
)

func init() {
	Registry.MustRegister(Evaluations, NonFinite, EvaluationSeconds, Clones)
}

// Evaluate runs o.Evaluate and records it.
func Evaluate(o observable.Observable) float64 {
	start := time.Now()
	v := o.Evaluate()
	name := o.Name()
	EvaluationSeconds.WithLabelValues(name).Observe(time.Since(start).Seconds())
	Evaluations.WithLabelValues(name).Inc()
	if math.IsNaN(v) || math.IsInf(v, 0) {
		NonFinite.WithLabelValues(name).Inc()
	}
	return v
}

func Handler() http.Handler {
	return promhttp.HandlerFor(Registry, promhttp.HandlerOpts{})
}

// Serve exposes /metrics on addr until ctx is done.
func Serve(ctx context.Context, addr string) *http.Server {
	mux := http.NewServeMux()
	mux.Handle("/metrics", Handler())
	srv := &http.Server{Addr: addr, Handler: mux}

	go func() {
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			monitoring.Logf("metrics server: %v", err)
		}
	}()
	go func() {
		<-ctx.Done()
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
		defer cancel()
		_ = srv.Shutdown(shutdownCtx)
	}()
	return srv
}
