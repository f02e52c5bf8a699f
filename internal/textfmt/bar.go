package textfmt

import (
	"strconv"
	"strings"
)

// barChrome is the width taken by the brackets and the "nnnn%" suffix.
const barChrome = 7

// Glyphs are the characters used to draw gauges, rules and column gaps.
type Glyphs struct {
	BarFull   rune
	BarEmpty  rune
	BarLeft   string
	BarRight  string
	Rule      rune
	Separator rune
}

// DefaultGlyphs returns the stock glyph set.
func DefaultGlyphs() Glyphs {
	return Glyphs{
		BarFull:   '■',
		BarEmpty:  '·',
		BarLeft:   "[",
		BarRight:  "]",
		Rule:      '─',
		Separator: ' ',
	}
}

// PercentBar renders "[■■■···]  nn%" exactly width characters wide (with
// single-character brackets). The interior is width-7 cells; filled cells and
// the percentage are both rounded half up. A non-positive max renders as 0%.
func PercentBar(current, max float64, width int, g Glyphs) string {
	interior := width - barChrome
	if interior < 0 {
		interior = 0
	}

	ratio := 0.0
	if max > 0 {
		ratio = current / max
	}

	filled := RoundHalfUp(ratio * float64(interior))
	if filled < 0 {
		filled = 0
	} else if filled > interior {
		filled = interior
	}

	var sb strings.Builder
	sb.Grow(width + 8)
	sb.WriteString(g.BarLeft)
	sb.WriteString(Repeat(g.BarFull, filled))
	sb.WriteString(Repeat(g.BarEmpty, interior-filled))
	sb.WriteString(g.BarRight)
	sb.WriteString(AlignRight(strconv.Itoa(RoundHalfUp(ratio*100)), 4))
	sb.WriteString("%")
	return sb.String()
}
