package cli

import (
	"bytes"
	"testing"

	"github.com/rileyhilliard/panels/internal/errors"
	"github.com/rileyhilliard/panels/internal/world"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestValidate_Clean(t *testing.T) {
	setupProject(t, map[string]string{"world.yaml": panelWorld})

	var buf bytes.Buffer
	require.NoError(t, Validate(WorldFlags{}, &buf))

	output := buf.String()
	assert.Contains(t, output, "PROVIDER")
	assert.Contains(t, output, "Panel")
	assert.Contains(t, output, "1 x 10")
	assert.Contains(t, output, "Cargo 1")
	assert.Contains(t, output, "100.0 kL")
	assert.Contains(t, output, "25.0 kL")
	assert.Contains(t, output, "25%")
	assert.Contains(t, output, "✓ 1 panel, 1 surface, 1 command")
}

func TestValidate_ListsEveryProblem(t *testing.T) {
	setupProject(t, map[string]string{"world.yaml": brokenWorld})

	var buf bytes.Buffer
	err := Validate(WorldFlags{}, &buf)
	require.Error(t, err)
	assert.True(t, errors.IsCode(err, errors.ErrParse))

	output := buf.String()
	assert.Contains(t, output, "✗ 1 problem")
	assert.Contains(t, output, "Broken")
	assert.Contains(t, output, "line 2")
	// The healthy panel is still laid out.
	assert.Contains(t, output, "Panel")
}

func TestValidate_MissingWorld(t *testing.T) {
	setupProject(t, nil)

	err := Validate(WorldFlags{World: "nope.toml"}, &bytes.Buffer{})
	require.Error(t, err)
	assert.True(t, errors.IsCode(err, errors.ErrWorld))
}

func TestInventoryTable(t *testing.T) {
	w := world.New(world.File{
		Inventories: []world.InventorySpec{
			{Name: "Tank", MaxVolume: 0, CurrentVolume: 0},
			{Name: "Cargo", MaxVolume: 8, CurrentVolume: 3},
		},
	})

	table := inventoryTable(w)
	assert.Contains(t, table, "Tank")
	assert.Contains(t, table, "0%")
	assert.Contains(t, table, "8.0 kL")
	assert.Contains(t, table, "38%")

	assert.Empty(t, inventoryTable(world.New(world.File{})))
}

func TestKilolitres(t *testing.T) {
	assert.Equal(t, "62.5 kL", kilolitres(62_500_000))
	assert.Equal(t, "0.0 kL", kilolitres(0))
}

func TestValidate_NamesSkippedEntities(t *testing.T) {
	setupProject(t, map[string]string{"world.yaml": `entities:
  - name: Panel
    custom_data: |-
      display -id 0
      label -name Hi
    surfaces:
      - texture: [512, 512]
  - name: Antenna
    custom_data: display -id 0
    surfaces: []
`})

	var buf bytes.Buffer
	require.NoError(t, Validate(WorldFlags{}, &buf))

	output := buf.String()
	assert.Contains(t, output, "⊘ 1 entity skipped: Antenna")
	assert.Contains(t, output, "✓ 1 panel, 1 surface, 1 command")
}
