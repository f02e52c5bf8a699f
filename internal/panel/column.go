package panel

import (
	"github.com/rileyhilliard/panels/internal/command"
)

// Column is a vertical strip of a Surface rendering its commands top to bottom.
type Column struct {
	commands []command.Command
	width    int
	out      command.Buffer
}

// NewColumn creates an empty column of the given width.
func NewColumn(width int) *Column {
	return &Column{width: width}
}

// Width returns the column width in characters.
func (c *Column) Width() int {
	return c.width
}

// Len returns the number of commands in the column.
func (c *Column) Len() int {
	return len(c.commands)
}

// Commands returns the column's commands in insertion order.
func (c *Column) Commands() []command.Command {
	return append([]command.Command(nil), c.commands...)
}

// AddCommand configures cmd for the current width and appends it.
func (c *Column) AddCommand(cmd command.Command) {
	cmd.Configure(c.width)
	c.commands = append(c.commands, cmd)
}

// ChangeWidth stores the new width and re-configures every command in order.
func (c *Column) ChangeWidth(width int) {
	c.width = width
	for _, cmd := range c.commands {
		cmd.Configure(width)
	}
}

// Update runs every command into the column's buffer and returns it with the
// number of lines emitted. The buffer is reused by the next Update.
func (c *Column) Update() (*command.Buffer, int) {
	c.out.Reset()
	for _, cmd := range c.commands {
		cmd.Run(&c.out)
	}
	return &c.out, c.out.LineCount()
}
