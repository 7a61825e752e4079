package viz

import (
	"math"
	"strings"
)

var sparkChars = []rune{'▁', '▂', '▃', '▄', '▅', '▆', '▇', '█'}

// RangeBar draws where value sits inside [min, max]. Values outside the
// range are pinned to an end and drawn in the low color.
func (p palette) RangeBar(value, min, max float64, width int) string {
	if width < 1 {
		return ""
	}
	if min > max {
		min, max = max, min
	}
	frac := 0.5
	if max > min {
		frac = (value - min) / (max - min)
	}
	out := frac < 0 || frac > 1 || math.IsNaN(frac)
	frac = math.Max(0, math.Min(1, frac))
	if math.IsNaN(frac) {
		frac = 0
	}

	pos := int(math.Round(frac * float64(width-1)))
	bar := strings.Repeat("─", pos) + "●" + strings.Repeat("─", width-pos-1)
	if out {
		return p.low.Render(bar)
	}
	return p.value.Render(bar)
}

// Sparkline renders the last width values of history.
func (p palette) Sparkline(history []float64, width int) string {
	if len(history) == 0 {
		return p.faint.Render(strings.Repeat("─", width))
	}
	if len(history) > width {
		history = history[len(history)-width:]
	}

	lo, hi := math.Inf(1), math.Inf(-1)
	for _, v := range history {
		if math.IsNaN(v) || math.IsInf(v, 0) {
			continue
		}
		lo, hi = math.Min(lo, v), math.Max(hi, v)
	}
	rng := hi - lo
	if rng <= 0 || math.IsInf(rng, 0) {
		rng = 1
	}

	var b strings.Builder
	for _, v := range history {
		if math.IsNaN(v) || math.IsInf(v, 0) {
			b.WriteString(p.low.Render("·"))
			continue
		}
		norm := (v - lo) / rng
		idx := min(max(int(norm*float64(len(sparkChars)-1)), 0), len(sparkChars)-1)
		c := string(sparkChars[idx])
		switch {
		case norm > 0.7:
			b.WriteString(p.high.Render(c))
		case norm > 0.3:
			b.WriteString(p.mid.Render(c))
		default:
			b.WriteString(p.low.Render(c))
		}
	}
	return b.String()
}

// KeyHints renders alternating key / description pairs.
func (p palette) KeyHints(pairs ...string) string {
	var b strings.Builder
	for i := 0; i+1 < len(pairs); i += 2 {
		if i > 0 {
			b.WriteString("  ")
		}
		b.WriteString(p.key.Render(pairs[i]))
		b.WriteString(p.subtle.Render(" " + pairs[i+1]))
	}
	return b.String()
}

func (p palette) Separator(width int) string {
	return p.subtle.Render(strings.Repeat("─", width))
}
