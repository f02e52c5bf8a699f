// Package host declares the collaborators the panel renderer consumes from
// its embedding environment: text surfaces with their geometry, the
// multi-surface entities that carry configuration text, capacity-bearing
// inventories, and the refresh scheduler.
package host

// TextSurface is one physical character display.
type TextSurface interface {
	// TextureSize is the surface's pixel geometry.
	TextureSize() (width, height float64)
	// FontSize is the font scale applied to the surface.
	FontSize() float64
	// WriteText replaces (appendMode=false) or extends the displayed text and
	// reports whether the surface accepted it.
	WriteText(text string, appendMode bool) bool
}

// SurfaceEntity is a block exposing one or more text surfaces and a free-text
// configuration field.
type SurfaceEntity interface {
	Name() string
	CustomData() string
	SurfaceCount() int
	Surface(i int) TextSurface
}

// Inventory is a capacity-bearing entity. Volumes are raw fixed-point values
// (1e6 raw units per kilolitre).
type Inventory interface {
	Name() string
	MaxVolume() int64
	CurrentVolume() int64
}

// InventorySource enumerates every capacity-bearing entity.
type InventorySource interface {
	Inventories() []Inventory
}

// Scheduler controls how often the host invokes a refresh.
type Scheduler interface {
	SetRate(r Rate)
}
