package config

import (
	"math"
	"slices"
)

// Preset is a named set of parameter values.
type Preset struct {
	Description string
	Values      map[string]float64
}

var Presets = map[string]*Preset{
	"sm": {
		Description: "standard model central values",
		Values:      map[string]float64{},
	},
	"c9-shift": {
		Description: "new physics shift in C9 by -1",
		Values: map[string]float64{
			"Re{c9}":  4.27342842 - 1.0,
			"Abs{c9}": 4.27342842 - 1.0,
		},
	},
	"flipped-c7": {
		Description: "sign-flipped C7",
		Values: map[string]float64{
			"Re{c7}":  0.33726473,
			"Arg{c7}": 0,
		},
	},
	"heavy-b": {
		Description: "B meson masses at the upper end of their ranges",
		Values: map[string]float64{
			"mass::B_d": 5.27975,
			"mass::B_u": 5.27942,
			"mass::B_s": 5.36701,
		},
	},
	"ckm-max": {
		Description: "Wolfenstein parameters at their maxima",
		Values: map[string]float64{
			"CKM::A":      0.840,
			"CKM::lambda": 0.22600,
			"CKM::rhobar": 0.153,
			"CKM::etabar": 0.364,
		},
	},
	"right-handed": {
		Description: "non-zero right-handed C9' and C10'",
		Values: map[string]float64{
			"Re{c9'}":   1.0,
			"Abs{c9'}":  1.0,
			"Re{c10'}":  -1.0,
			"Abs{c10'}": 1.0,
			"Arg{c10'}": math.Pi,
		},
	},
}

func GetPreset(name string) *Preset {
	return Presets[name]
}

func ListPresets() []string {
	names := make([]string, 0, len(Presets))
	for name := range Presets {
		names = append(names, name)
	}
	slices.Sort(names)
	return names
}
