// Package viz renders parameters and observables in the terminal and to
// image files.
//
// The package provides:
//
//   - [Browser]: a Bubble Tea parameter browser that re-evaluates an
//     observable as its inputs are edited
//   - [HistogramChart] and [CurveChart]: asciigraph plots of stored runs
//   - [SaveHistogramPNG] and [SaveCurvePNG]: the same plots as PNG files
//
// # Key Bindings
//
//	j/k   - Move selection
//	enter - Choose observable / edit value
//	h/l   - Nudge value by 5% of its range
//	r     - Reset selected parameter to central
//	R     - Reset all parameters
//	t     - Cycle color themes
//	esc   - Back
//	q     - Quit
//
// Edits apply to a clone of the view the browser was opened on.
package viz
