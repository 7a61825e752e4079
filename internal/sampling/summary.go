package sampling

import (
	"math"
	"slices"

	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/stat"
)

// Summary describes a sampled distribution. The 16% and 84% quantiles bound
// the central 68% interval.
type Summary struct {
	N      int     `json:"n"`
	Mean   float64 `json:"mean"`
	StdDev float64 `json:"stddev"`
	Min    float64 `json:"min"`
	Q16    float64 `json:"q16"`
	Median float64 `json:"median"`
	Q84    float64 `json:"q84"`
	Max    float64 `json:"max"`
}

// Summarize ignores non-finite values.
func Summarize(values []float64) Summary {
	finite := make([]float64, 0, len(values))
	for _, v := range values {
		if !math.IsNaN(v) && !math.IsInf(v, 0) {
			finite = append(finite, v)
		}
	}
	if len(finite) == 0 {
		return Summary{}
	}
	slices.Sort(finite)

	mean, std := stat.MeanStdDev(finite, nil)
	return Summary{
		N:      len(finite),
		Mean:   mean,
		StdDev: std,
		Min:    finite[0],
		Q16:    stat.Quantile(0.16, stat.Empirical, finite, nil),
		Median: stat.Quantile(0.5, stat.Empirical, finite, nil),
		Q84:    stat.Quantile(0.84, stat.Empirical, finite, nil),
		Max:    finite[len(finite)-1],
	}
}

// Histogram counts values into bins equal-width bins over [min, max]. It
// returns the counts and the bin edges.
func Histogram(values []float64, bins int) ([]float64, []float64) {
	s := Summarize(values)
	if s.N == 0 || bins < 1 {
		return nil, nil
	}
	hi := s.Max
	if hi == s.Min {
		hi = s.Min + 1
	}
	// widen the top edge so the maximum lands in the last bin
	edges := make([]float64, bins+1)
	floats.Span(edges, s.Min, math.Nextafter(hi, math.Inf(1)))

	var finite []float64
	for _, v := range values {
		if !math.IsNaN(v) && !math.IsInf(v, 0) {
			finite = append(finite, v)
		}
	}
	slices.Sort(finite)
	return stat.Histogram(nil, edges, finite, nil), edges
}
