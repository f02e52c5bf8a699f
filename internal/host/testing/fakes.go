// Package testing provides test doubles for the host interfaces.
package testing

import (
	"sync"

	"github.com/rileyhilliard/panels/internal/host"
)

// FakeSurface is a host.TextSurface that records every write.
type FakeSurface struct {
	W, H, Font float64

	mu      sync.Mutex
	Writes  []string // text of each WriteText call
	Appends []bool   // appendMode of each WriteText call
}

// NewFakeSurface creates a surface with the given texture size and font size.
func NewFakeSurface(w, h, font float64) *FakeSurface {
	return &FakeSurface{W: w, H: h, Font: font}
}

func (s *FakeSurface) TextureSize() (float64, float64) { return s.W, s.H }
func (s *FakeSurface) FontSize() float64               { return s.Font }

func (s *FakeSurface) WriteText(text string, appendMode bool) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.Writes = append(s.Writes, text)
	s.Appends = append(s.Appends, appendMode)
	return true
}

// Text returns what the surface shows: the last overwrite plus any appends after it.
func (s *FakeSurface) Text() string {
	s.mu.Lock()
	defer s.mu.Unlock()
	text := ""
	for i, w := range s.Writes {
		if s.Appends[i] {
			text += w
		} else {
			text = w
		}
	}
	return text
}

// WriteCount returns the number of WriteText calls.
func (s *FakeSurface) WriteCount() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.Writes)
}

// FakeEntity is a host.SurfaceEntity backed by fake surfaces.
type FakeEntity struct {
	Label   string
	Data    string
	Screens []*FakeSurface
}

func (e *FakeEntity) Name() string       { return e.Label }
func (e *FakeEntity) CustomData() string { return e.Data }
func (e *FakeEntity) SurfaceCount() int  { return len(e.Screens) }

func (e *FakeEntity) Surface(i int) host.TextSurface {
	return e.Screens[i]
}

// FakeInventory is a mutable host.Inventory. Volumes are raw units.
type FakeInventory struct {
	Label   string
	Max     int64
	Current int64
}

func (i *FakeInventory) Name() string         { return i.Label }
func (i *FakeInventory) MaxVolume() int64     { return i.Max }
func (i *FakeInventory) CurrentVolume() int64 { return i.Current }

// Inventories is a host.InventorySource over fake inventories.
type Inventories []*FakeInventory

func (s Inventories) Inventories() []host.Inventory {
	out := make([]host.Inventory, len(s))
	for i, inv := range s {
		out[i] = inv
	}
	return out
}

// Entities converts fake entities for dashboard.New.
func Entities(es ...*FakeEntity) []host.SurfaceEntity {
	out := make([]host.SurfaceEntity, len(es))
	for i, e := range es {
		out[i] = e
	}
	return out
}
