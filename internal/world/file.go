// Package world is a file-backed stand-in for the host game: it exposes the
// text surfaces, surface-owning entities and inventories described in a YAML
// or TOML world file through the host interfaces.
package world

import (
	"bytes"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/BurntSushi/toml"
	"github.com/rileyhilliard/panels/internal/errors"
	"gopkg.in/yaml.v3"
)

// Format is a world file encoding.
type Format string

const (
	FormatYAML Format = "yaml"
	FormatTOML Format = "toml"
)

// FormatFor picks the encoding from a file extension; anything but .toml is YAML.
func FormatFor(path string) Format {
	if strings.EqualFold(filepath.Ext(path), ".toml") {
		return FormatTOML
	}
	return FormatYAML
}

// File is the on-disk shape of a world.
type File struct {
	Entities    []EntitySpec    `yaml:"entities" toml:"entities"`
	Inventories []InventorySpec `yaml:"inventories,omitempty" toml:"inventories,omitempty"`
}

// EntitySpec describes one surface-owning block.
type EntitySpec struct {
	Name       string        `yaml:"name" toml:"name"`
	CustomData string        `yaml:"custom_data" toml:"custom_data"`
	Surfaces   []SurfaceSpec `yaml:"surfaces" toml:"surfaces"`
}

// SurfaceSpec is one screen's geometry. Texture is [width, height].
type SurfaceSpec struct {
	Texture  []float64 `yaml:"texture,flow,omitempty" toml:"texture,omitempty"`
	FontSize float64   `yaml:"font_size,omitempty" toml:"font_size,omitempty"`
}

// InventorySpec is one storage block; volumes are in kilolitres.
type InventorySpec struct {
	Name          string  `yaml:"name" toml:"name"`
	MaxVolume     float64 `yaml:"max_volume" toml:"max_volume"`
	CurrentVolume float64 `yaml:"current_volume" toml:"current_volume"`
}

// Decode parses world file contents in the given format and validates them.
func Decode(data []byte, format Format) (File, error) {
	var f File
	var err error
	switch format {
	case FormatTOML:
		err = toml.Unmarshal(data, &f)
	default:
		err = yaml.Unmarshal(data, &f)
	}
	if err != nil {
		return File{}, errors.WrapWithCode(err, errors.ErrWorld,
			fmt.Sprintf("Can't parse the world file as %s", format),
			"Check the file for syntax errors.")
	}
	if err := f.Validate(); err != nil {
		return File{}, err
	}
	return f, nil
}

// Encode renders f in the given format.
func Encode(f File, format Format) ([]byte, error) {
	if format == FormatTOML {
		var buf bytes.Buffer
		if err := toml.NewEncoder(&buf).Encode(f); err != nil {
			return nil, err
		}
		return buf.Bytes(), nil
	}

	var buf bytes.Buffer
	enc := yaml.NewEncoder(&buf)
	enc.SetIndent(2)
	if err := enc.Encode(f); err != nil {
		return nil, err
	}
	if err := enc.Close(); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

// ReadFile reads and decodes a world file, choosing the format by extension.
func ReadFile(path string) (File, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return File{}, errors.WrapWithCode(err, errors.ErrWorld,
			fmt.Sprintf("Can't read world file %s", path),
			"Check the path, or run 'panels init' to create one.")
	}
	return Decode(data, FormatFor(path))
}

// Validate checks names and volumes.
func (f File) Validate() error {
	seen := make(map[string]bool)
	for i, e := range f.Entities {
		if strings.TrimSpace(e.Name) == "" {
			return errors.New(errors.ErrWorld,
				fmt.Sprintf("Entity #%d has no name", i+1),
				"Give every entity a name.")
		}
		if seen[e.Name] {
			return errors.New(errors.ErrWorld,
				fmt.Sprintf("Entity '%s' is defined twice", e.Name),
				"Entity names must be unique.")
		}
		seen[e.Name] = true

		for j, s := range e.Surfaces {
			if len(s.Texture) != 0 && len(s.Texture) != 2 {
				return errors.New(errors.ErrWorld,
					fmt.Sprintf("Surface %d of '%s' has a malformed texture size", j, e.Name),
					"Write the texture as [width, height].")
			}
		}
	}

	for _, inv := range f.Inventories {
		if inv.MaxVolume < 0 || inv.CurrentVolume < 0 {
			return errors.New(errors.ErrWorld,
				fmt.Sprintf("Inventory '%s' has a negative volume", inv.Name),
				"Volumes are kilolitres and must be zero or more.")
		}
	}
	return nil
}

// Example is the starter world written by 'panels init'.
func Example() File {
	return File{
		Entities: []EntitySpec{
			{
				Name: "Bridge LCD",
				CustomData: strings.Join([]string{
					"config -update 10",
					"display -id 0",
					"label -name Cargo -align center",
					"line",
					"inventory -name Ore -blocks Cargo",
					"inventory -name Ice -blocks Tank -show ratio",
				}, "\n"),
				Surfaces: []SurfaceSpec{{Texture: []float64{1024, 512}, FontSize: 1}},
			},
			{
				Name: "Cockpit",
				CustomData: strings.Join([]string{
					"display -id 0",
					"label -name Left",
					"column -id 1",
					"label -name Right -align right",
					"display -id 1",
					"label -name Status -align center",
					"line -width 0.8",
				}, "\n"),
				Surfaces: []SurfaceSpec{
					{Texture: []float64{512, 512}, FontSize: 1},
					{Texture: []float64{512, 512}, FontSize: 1.5},
				},
			},
		},
		Inventories: []InventorySpec{
			{Name: "Large Cargo Container 1", MaxVolume: 421.875, CurrentVolume: 120.5},
			{Name: "Large Cargo Container 2", MaxVolume: 421.875, CurrentVolume: 12},
			{Name: "Hydrogen Tank", MaxVolume: 15000, CurrentVolume: 9000},
		},
	}
}
