// Package command implements the renderable units placed in panel columns.
//
// A Command is configured for a character width once per width change and
// then run on every refresh, appending its lines to the column's Buffer.
// The set is closed: Label, Rule and Capacity.
package command

import (
	"fmt"
	"strings"

	"github.com/rileyhilliard/panels/internal/directive"
	"github.com/rileyhilliard/panels/internal/host"
	"github.com/rileyhilliard/panels/internal/textfmt"
)

// Command is one renderable unit.
type Command interface {
	// Configure precomputes the width-dependent rendering. Calling it again
	// with the same width yields the same output.
	Configure(width int)
	// Run appends this command's lines to out.
	Run(out *Buffer)
}

// Buffer collects the lines emitted during one refresh of a column.
type Buffer struct {
	lines []string
}

// AppendLine adds one line.
func (b *Buffer) AppendLine(line string) {
	b.lines = append(b.lines, line)
}

// Reset empties the buffer, keeping its storage.
func (b *Buffer) Reset() {
	b.lines = b.lines[:0]
}

// LineCount returns how many lines were appended since the last Reset.
func (b *Buffer) LineCount() int {
	return len(b.lines)
}

// Line returns line i, or false when fewer lines were emitted.
func (b *Buffer) Line(i int) (string, bool) {
	if i < 0 || i >= len(b.lines) {
		return "", false
	}
	return b.lines[i], true
}

// Lines returns a copy of the emitted lines.
func (b *Buffer) Lines() []string {
	return append([]string(nil), b.lines...)
}

// String joins the lines, each terminated by "\n".
func (b *Buffer) String() string {
	var sb strings.Builder
	for _, l := range b.lines {
		sb.WriteString(l)
		sb.WriteByte('\n')
	}
	return sb.String()
}

// Factory builds commands from directives.
type Factory struct {
	Glyphs    textfmt.Glyphs
	Inventory host.InventorySource
}

// NewFactory returns a factory with the given glyphs and inventory source.
func NewFactory(glyphs textfmt.Glyphs, inventory host.InventorySource) Factory {
	return Factory{Glyphs: glyphs, Inventory: inventory}
}

// New instantiates the command for a label, line or inventory directive.
func (f Factory) New(d directive.Directive) (Command, error) {
	switch d.Tag {
	case directive.TagLabel:
		return NewLabel(d.Args), nil
	case directive.TagLine:
		return NewRule(d.Args, f.Glyphs.Rule)
	case directive.TagInventory:
		return NewCapacity(d.Args, f.Inventory, f.Glyphs)
	default:
		return nil, fmt.Errorf("directive %q does not create a command", d.Name)
	}
}
