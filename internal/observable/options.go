package observable

import (
	"fmt"
	"maps"
	"slices"
	"strings"
)

// Options are free-form string settings passed to a factory, such as
// "form-factors=KMPW2010" or "l=mu".
type Options map[string]string

// ParseOptions reads a comma separated list of key=value pairs.
func ParseOptions(s string) (Options, error) {
	opts := Options{}
	s = strings.TrimSpace(s)
	if s == "" {
		return opts, nil
	}
	for _, pair := range strings.Split(s, ",") {
		key, value, ok := strings.Cut(pair, "=")
		key = strings.TrimSpace(key)
		if !ok || key == "" {
			return nil, fmt.Errorf("invalid option %q: expected key=value", pair)
		}
		opts[key] = strings.TrimSpace(value)
	}
	return opts, nil
}

func (o Options) Has(key string) bool {
	_, ok := o[key]
	return ok
}

// Get returns the value for key, or fallback when it is not set.
func (o Options) Get(key, fallback string) string {
	if v, ok := o[key]; ok {
		return v
	}
	return fallback
}

// Set stores value under key. o must not be nil.
func (o Options) Set(key, value string) {
	o[key] = value
}

// Clone returns a copy that is never nil.
func (o Options) Clone() Options {
	c := make(Options, len(o))
	maps.Copy(c, o)
	return c
}

// String formats the options as sorted key=value pairs.
func (o Options) String() string {
	keys := slices.Sorted(maps.Keys(o))
	pairs := make([]string, len(keys))
	for i, k := range keys {
		pairs[i] = k + "=" + o[k]
	}
	return strings.Join(pairs, ",")
}
