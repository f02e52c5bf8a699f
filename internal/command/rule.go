package command

import (
	"fmt"
	"math"

	"github.com/rileyhilliard/panels/internal/directive"
	"github.com/rileyhilliard/panels/internal/textfmt"
)

// DefaultRuleRatio is the fraction of the column a rule spans when no width is given.
const DefaultRuleRatio = 0.5

// Rule renders a centered horizontal line.
//
// Arguments: width (fraction of the column width, default 0.5).
type Rule struct {
	args  directive.Args
	ratio float64
	glyph rune
	text  string
}

// NewRule creates a rule. A width that is not a number is rejected here so
// the error surfaces while the configuration is parsed.
func NewRule(args directive.Args, glyph rune) (*Rule, error) {
	ratio, err := args.Float("width", DefaultRuleRatio)
	if err != nil {
		return nil, err
	}
	return &Rule{args: args.Clone(), ratio: ratio, glyph: glyph}, nil
}

// Configure draws round(width*ratio) glyphs centered in width. The glyph
// count is clamped to [0, width]; a NaN ratio draws nothing.
func (r *Rule) Configure(width int) {
	n := ruleLength(width, r.ratio)
	r.text = textfmt.Truncate(textfmt.AlignCenter(textfmt.Repeat(r.glyph, n), width), width)
}

func ruleLength(width int, ratio float64) int {
	if width <= 0 {
		return 0
	}
	f := float64(width) * ratio
	switch {
	case math.IsNaN(f) || f <= 0:
		return 0
	case f >= float64(width):
		return width
	}
	return min(textfmt.RoundHalfUp(f), width)
}

// Run emits the configured line.
func (r *Rule) Run(out *Buffer) {
	out.AppendLine(r.text)
}

func (r *Rule) String() string {
	return fmt.Sprintf("line %.2f", r.ratio)
}
