package world

import (
	"math"
	"sync"
	"sync/atomic"

	"github.com/rileyhilliard/panels/internal/host"
)

// RawPerKilolitre converts world-file kilolitres into the host's raw volume units.
const RawPerKilolitre = 1_000_000

// Default geometry for surfaces that omit it.
const (
	DefaultTexture  = 512.0
	DefaultFontSize = 1.0
)

// Surface is an in-memory text surface that keeps the last text written to it.
type Surface struct {
	width, height, fontSize float64

	mu     sync.Mutex
	text   string
	writes int
}

// NewSurface returns a surface with the given geometry.
func NewSurface(width, height, fontSize float64) *Surface {
	return &Surface{width: width, height: height, fontSize: fontSize}
}

func (s *Surface) TextureSize() (float64, float64) { return s.width, s.height }
func (s *Surface) FontSize() float64               { return s.fontSize }

// WriteText replaces (or appends to) the surface text.
func (s *Surface) WriteText(text string, appendMode bool) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	if appendMode {
		s.text += text
	} else {
		s.text = text
	}
	s.writes++
	return true
}

// Text returns the current surface text.
func (s *Surface) Text() string {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.text
}

// Writes returns how many times WriteText was called.
func (s *Surface) Writes() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.writes
}

// Entity is a surface-owning block.
type Entity struct {
	name       string
	customData string
	surfaces   []*Surface
}

func (e *Entity) Name() string       { return e.name }
func (e *Entity) CustomData() string { return e.customData }
func (e *Entity) SurfaceCount() int  { return len(e.surfaces) }

// Surface returns screen i.
func (e *Entity) Surface(i int) host.TextSurface {
	return e.surfaces[i]
}

// Screens returns the concrete surfaces for inspection.
func (e *Entity) Screens() []*Surface {
	return append([]*Surface(nil), e.surfaces...)
}

// Inventory is a storage block whose current volume may change between ticks.
type Inventory struct {
	name    string
	max     int64
	current atomic.Int64
}

func (i *Inventory) Name() string         { return i.name }
func (i *Inventory) MaxVolume() int64     { return i.max }
func (i *Inventory) CurrentVolume() int64 { return i.current.Load() }

// SetCurrentVolume stores a new raw volume.
func (i *Inventory) SetCurrentVolume(raw int64) {
	i.current.Store(raw)
}

// World is a loaded world file. It implements host.InventorySource.
type World struct {
	entities    []*Entity
	inventories []*Inventory
}

// New builds a world from decoded file contents.
func New(f File) *World {
	w := &World{}
	for _, es := range f.Entities {
		e := &Entity{name: es.Name, customData: es.CustomData}
		for _, ss := range es.Surfaces {
			width, height := DefaultTexture, DefaultTexture
			if len(ss.Texture) == 2 {
				width, height = ss.Texture[0], ss.Texture[1]
			}
			font := ss.FontSize
			if font == 0 {
				font = DefaultFontSize
			}
			e.surfaces = append(e.surfaces, NewSurface(width, height, font))
		}
		w.entities = append(w.entities, e)
	}
	for _, is := range f.Inventories {
		inv := &Inventory{name: is.Name, max: toRaw(is.MaxVolume)}
		inv.current.Store(toRaw(is.CurrentVolume))
		w.inventories = append(w.inventories, inv)
	}
	return w
}

// Load reads a world file.
func Load(path string) (*World, error) {
	f, err := ReadFile(path)
	if err != nil {
		return nil, err
	}
	return New(f), nil
}

func toRaw(kl float64) int64 {
	return int64(math.Round(kl * RawPerKilolitre))
}

// Entities returns every entity in file order.
func (w *World) Entities() []host.SurfaceEntity {
	out := make([]host.SurfaceEntity, len(w.entities))
	for i, e := range w.entities {
		out[i] = e
	}
	return out
}

// Entity returns the entity with the given name, or nil.
func (w *World) Entity(name string) *Entity {
	for _, e := range w.entities {
		if e.name == name {
			return e
		}
	}
	return nil
}

// Inventories implements host.InventorySource.
func (w *World) Inventories() []host.Inventory {
	out := make([]host.Inventory, len(w.inventories))
	for i, inv := range w.inventories {
		out[i] = inv
	}
	return out
}

// Inventory returns the inventory with the given name, or nil.
func (w *World) Inventory(name string) *Inventory {
	for _, inv := range w.inventories {
		if inv.name == name {
			return inv
		}
	}
	return nil
}

// ApplyVolumes copies current volumes from next into w, matching inventories
// by name. Maximum volumes and membership are left alone because commands
// fix them at construction. It returns the number of inventories changed.
func (w *World) ApplyVolumes(next *World) int {
	changed := 0
	for _, src := range next.inventories {
		dst := w.Inventory(src.name)
		if dst == nil {
			continue
		}
		if v := src.CurrentVolume(); v != dst.CurrentVolume() {
			dst.SetCurrentVolume(v)
			changed++
		}
	}
	return changed
}
