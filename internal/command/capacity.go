package command

import (
	"fmt"
	"strings"

	"github.com/rileyhilliard/panels/internal/directive"
	"github.com/rileyhilliard/panels/internal/host"
	"github.com/rileyhilliard/panels/internal/textfmt"
)

// rawPerKilolitre converts raw inventory volume to kilolitres.
const rawPerKilolitre = 1e6

// VolumeUnit is the unit printed after capacity figures.
const VolumeUnit = "kL"

// CapacityView selects the figure printed on a capacity gauge's first line.
type CapacityView int

const (
	// ViewRemaining prints the free volume: "62.5 kL".
	ViewRemaining CapacityView = iota
	// ViewRatio prints fill against capacity: "37.5 / 100.0 kL".
	ViewRatio
)

// Capacity renders aggregate fill of every inventory whose name contains one
// of the block filters: a "name ... 62.5 kL" line and a percent bar.
//
// Arguments: name (label), blocks (name substrings, default none),
// show (remaining|ratio, default remaining).
type Capacity struct {
	args        directive.Args
	name        string
	view        CapacityView
	glyphs      textfmt.Glyphs
	inventories []host.Inventory
	maxVolume   float64
	current     float64
	width       int
}

// NewCapacity selects the matching inventories and sums their maximum volume
// once. The selection and maximum never change afterwards.
func NewCapacity(args directive.Args, source host.InventorySource, glyphs textfmt.Glyphs) (*Capacity, error) {
	c := &Capacity{
		args:   args.Clone(),
		name:   args.Get("name", ""),
		glyphs: glyphs,
		width:  1,
	}

	switch show := args.Get("show", "remaining"); show {
	case "remaining":
		c.view = ViewRemaining
	case "ratio":
		c.view = ViewRatio
	default:
		return nil, fmt.Errorf("%w: show %q (want remaining or ratio)", directive.ErrMalformedArgument, show)
	}

	filters := args.Values("blocks")
	if source != nil && len(filters) > 0 {
		for _, inv := range source.Inventories() {
			if matchesAny(inv.Name(), filters) {
				c.inventories = append(c.inventories, inv)
			}
		}
	}

	var raw int64
	for _, inv := range c.inventories {
		raw += inv.MaxVolume()
	}
	c.maxVolume = float64(raw) / rawPerKilolitre
	return c, nil
}

func matchesAny(name string, filters []string) bool {
	for _, f := range filters {
		if strings.Contains(name, f) {
			return true
		}
	}
	return false
}

// Configure stores the width; the lines depend on live readings.
func (c *Capacity) Configure(width int) {
	c.width = width
}

// Run reads the current volume and emits the figure line and the bar.
func (c *Capacity) Run(out *Buffer) {
	var raw int64
	for _, inv := range c.inventories {
		raw += inv.CurrentVolume()
	}
	c.current = float64(raw) / rawPerKilolitre

	figure := textfmt.Remaining(c.maxVolume, c.current, VolumeUnit)
	if c.view == ViewRatio {
		figure = textfmt.Ratio(c.current, c.maxVolume, VolumeUnit)
	}

	head := c.name + textfmt.AlignRight(figure, c.width-textfmt.Len(c.name))
	out.AppendLine(textfmt.Truncate(head, c.width))
	out.AppendLine(textfmt.Truncate(textfmt.PercentBar(c.current, c.maxVolume, c.width, c.glyphs), c.width))
}

// MaxVolume is the summed capacity in kilolitres, fixed at construction.
func (c *Capacity) MaxVolume() float64 {
	return c.maxVolume
}

// CurrentVolume is the reading taken by the most recent Run, in kilolitres.
func (c *Capacity) CurrentVolume() float64 {
	return c.current
}

// Sources returns how many inventories the gauge aggregates.
func (c *Capacity) Sources() int {
	return len(c.inventories)
}

func (c *Capacity) String() string {
	return fmt.Sprintf("inventory %q (%d blocks, %s %s)", c.name, len(c.inventories), textfmt.Fixed(c.maxVolume, 1), VolumeUnit)
}
