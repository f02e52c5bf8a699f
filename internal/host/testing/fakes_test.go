package testing

import (
	"testing"

	"github.com/rileyhilliard/panels/internal/host"
	"github.com/stretchr/testify/assert"
)

var (
	_ host.TextSurface     = (*FakeSurface)(nil)
	_ host.SurfaceEntity   = (*FakeEntity)(nil)
	_ host.Inventory       = (*FakeInventory)(nil)
	_ host.InventorySource = Inventories(nil)
)

func TestFakeSurface_Text(t *testing.T) {
	s := NewFakeSurface(512, 256, 1.5)

	w, h := s.TextureSize()
	assert.Equal(t, 512.0, w)
	assert.Equal(t, 256.0, h)
	assert.Equal(t, 1.5, s.FontSize())
	assert.Equal(t, "", s.Text())

	s.WriteText("a", false)
	s.WriteText("b", true)
	assert.Equal(t, "ab", s.Text())

	s.WriteText("c", false)
	assert.Equal(t, "c", s.Text())
	assert.Equal(t, 3, s.WriteCount())
	assert.Equal(t, []bool{false, true, false}, s.Appends)
}

func TestFakeEntity(t *testing.T) {
	e := &FakeEntity{Label: "LCD", Data: "display", Screens: []*FakeSurface{NewFakeSurface(1, 1, 1)}}

	assert.Equal(t, "LCD", e.Name())
	assert.Equal(t, "display", e.CustomData())
	assert.Equal(t, 1, e.SurfaceCount())
	assert.Same(t, e.Screens[0], e.Surface(0))
	assert.Len(t, Entities(e, e), 2)
}

func TestInventories(t *testing.T) {
	src := Inventories{{Label: "Cargo", Max: 10, Current: 4}}

	got := src.Inventories()
	assert.Len(t, got, 1)
	assert.Equal(t, "Cargo", got[0].Name())
	assert.Equal(t, int64(10), got[0].MaxVolume())
	assert.Equal(t, int64(4), got[0].CurrentVolume())
}
