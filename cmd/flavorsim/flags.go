package main

import (
	"fmt"
	"maps"
	"math"
	"strconv"
	"strings"

	"github.com/san-kum/flavorsim/internal/config"
	"github.com/san-kum/flavorsim/internal/observable"
	"github.com/san-kum/flavorsim/internal/optim"
	"github.com/san-kum/flavorsim/internal/params"
	"github.com/san-kum/flavorsim/internal/sampling"
)

// parseAssignments reads repeated name=value flags.
func parseAssignments(pairs []string) (map[string]float64, error) {
	values := make(map[string]float64, len(pairs))
	for _, pair := range pairs {
		name, raw, ok := strings.Cut(pair, "=")
		name = strings.TrimSpace(name)
		if !ok || name == "" {
			return nil, fmt.Errorf("invalid assignment %q: expected name=value", pair)
		}
		v, err := strconv.ParseFloat(strings.TrimSpace(raw), 64)
		if err != nil {
			return nil, fmt.Errorf("invalid value for %s: %w", name, err)
		}
		values[name] = v
	}
	return values, nil
}

// parseOptionFlags merges repeated --opt flags, each k=v or k=v,k2=v2.
func parseOptionFlags(flags []string) (observable.Options, error) {
	opts := observable.Options{}
	for _, f := range flags {
		o, err := observable.ParseOptions(f)
		if err != nil {
			return nil, err
		}
		maps.Copy(opts, o)
	}
	return opts, nil
}

// trailingNumbers parses the last n fields.
func trailingNumbers(fields []string, n int) ([]float64, bool) {
	if len(fields) <= n {
		return nil, false
	}
	out := make([]float64, n)
	for i, f := range fields[len(fields)-n:] {
		v, err := strconv.ParseFloat(f, 64)
		if err != nil {
			return nil, false
		}
		out[i] = v
	}
	return out, true
}

// parseScanParam reads name:steps or name:min:max:steps.
func parseScanParam(s string) (config.ScanParameter, error) {
	// names contain "::", so numbers are taken from the right
	fields := strings.Split(s, ":")
	var sp config.ScanParameter
	if tail, ok := trailingNumbers(fields, 3); ok {
		sp = config.ScanParameter{Name: strings.Join(fields[:len(fields)-3], ":"), Min: tail[0], Max: tail[1], Steps: int(tail[2])}
	} else if tail, ok := trailingNumbers(fields, 1); ok {
		sp = config.ScanParameter{Name: strings.Join(fields[:len(fields)-1], ":"), Steps: int(tail[0])}
	}
	if sp.Name == "" || sp.Steps < 2 {
		return sp, fmt.Errorf("invalid scan parameter %q: expected name:steps or name:min:max:steps with at least 2 steps", s)
	}
	return sp, nil
}

// scanAxes resolves scan parameters against p. Zero bounds mean the
// parameter's own range.
func scanAxes(p params.Parameters, sps []config.ScanParameter) ([]optim.Axis, error) {
	axes := make([]optim.Axis, 0, len(sps))
	for _, sp := range sps {
		par, err := p.ByName(sp.Name)
		if err != nil {
			return nil, err
		}
		if sp.Min == 0 && sp.Max == 0 {
			axes = append(axes, optim.RangeAxis(par, sp.Steps))
			continue
		}
		axes = append(axes, optim.LinearAxis(sp.Name, sp.Min, sp.Max, sp.Steps))
	}
	return axes, nil
}

func summaryMap(s sampling.Summary) map[string]float64 {
	return map[string]float64{
		"n":      float64(s.N),
		"mean":   s.Mean,
		"stddev": s.StdDev,
		"min":    s.Min,
		"q16":    s.Q16,
		"median": s.Median,
		"q84":    s.Q84,
		"max":    s.Max,
	}
}

func finiteValues(values []float64) []float64 {
	out := make([]float64, 0, len(values))
	for _, v := range values {
		if !math.IsNaN(v) && !math.IsInf(v, 0) {
			out = append(out, v)
		}
	}
	return out
}
