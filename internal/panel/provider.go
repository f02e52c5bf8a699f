package panel

import (
	"github.com/rileyhilliard/panels/internal/command"
	"github.com/rileyhilliard/panels/internal/host"
)

// Provider holds the surfaces of one multi-screen entity, one per screen.
type Provider struct {
	name     string
	surfaces []*Surface
}

// NewProvider creates a Surface for each of entity's screens, sized from
// each screen's geometry.
func NewProvider(entity host.SurfaceEntity, separator rune) *Provider {
	p := &Provider{name: entity.Name()}
	for i := 0; i < entity.SurfaceCount(); i++ {
		ts := entity.Surface(i)
		w, h := ts.TextureSize()
		p.surfaces = append(p.surfaces, NewSurface(SurfaceWidth(w, h, ts.FontSize()), ts, separator))
	}
	return p
}

// Name returns the entity name.
func (p *Provider) Name() string {
	return p.name
}

// SurfaceCount returns the number of surfaces.
func (p *Provider) SurfaceCount() int {
	return len(p.surfaces)
}

// Surface returns surface i.
func (p *Provider) Surface(i int) *Surface {
	return p.surfaces[i]
}

// Surfaces returns every surface in screen order.
func (p *Provider) Surfaces() []*Surface {
	return append([]*Surface(nil), p.surfaces...)
}

// SelectSurface resolves a display directive's id modulo the surface count.
func (p *Provider) SelectSurface(id int) int {
	return wrap(id, len(p.surfaces))
}

// SelectColumn resolves a column id on the given surface.
func (p *Provider) SelectColumn(surface, id int) int {
	return p.surfaces[surface].SelectColumn(id)
}

// AddCommand places cmd in the given surface and column.
func (p *Provider) AddCommand(surface, column int, cmd command.Command) {
	p.surfaces[surface].AddCommand(column, cmd)
}

// Update refreshes every surface, including ones that received no commands.
func (p *Provider) Update() {
	for _, s := range p.surfaces {
		s.Update()
	}
}
