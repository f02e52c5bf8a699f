package command

import (
	"fmt"

	"github.com/rileyhilliard/panels/internal/directive"
	"github.com/rileyhilliard/panels/internal/textfmt"
)

// Label renders a single line of static text.
//
// Arguments: name (text, default empty), align (left|center|right, default left).
type Label struct {
	args directive.Args
	text string
}

// NewLabel creates a label from its directive arguments.
func NewLabel(args directive.Args) *Label {
	return &Label{args: args.Clone()}
}

// Configure aligns the name to width and truncates it to width.
func (l *Label) Configure(width int) {
	name := l.args.Get("name", "")
	align := textfmt.ParseAlignment(l.args.Get("align", ""))
	l.text = textfmt.Truncate(textfmt.Align(name, width, align), width)
}

// Run emits the configured line.
func (l *Label) Run(out *Buffer) {
	out.AppendLine(l.text)
}

func (l *Label) String() string {
	return fmt.Sprintf("label %q (%s)", l.args.Get("name", ""), textfmt.ParseAlignment(l.args.Get("align", "")))
}
