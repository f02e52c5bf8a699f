package config

import (
	"time"

	"github.com/rileyhilliard/panels/internal/host"
	"github.com/rileyhilliard/panels/internal/textfmt"
)

// CurrentConfigVersion is the schema version for the config file.
// Increment when making breaking changes to the config structure.
const CurrentConfigVersion = 1

// Config represents the complete .panels.yaml configuration file.
type Config struct {
	Version int `yaml:"version" mapstructure:"version"`

	// World is the world file to render (YAML or TOML). Relative paths are
	// resolved against the config file's directory.
	World string `yaml:"world" mapstructure:"world"`

	// Prefixes mark entity configuration text meant for panels.
	Prefixes []string `yaml:"prefixes" mapstructure:"prefixes"`

	Refresh RefreshConfig `yaml:"refresh" mapstructure:"refresh"`
	Glyphs  GlyphConfig   `yaml:"glyphs" mapstructure:"glyphs"`
	Output  OutputConfig  `yaml:"output" mapstructure:"output"`
}

// RefreshConfig maps the three host tick rates onto wall-clock intervals
// for the local driver loop.
type RefreshConfig struct {
	Fine   time.Duration `yaml:"fine" mapstructure:"fine"`
	Medium time.Duration `yaml:"medium" mapstructure:"medium"`
	Coarse time.Duration `yaml:"coarse" mapstructure:"coarse"`
}

// Interval returns the wall-clock interval for rate.
func (r RefreshConfig) Interval(rate host.Rate) time.Duration {
	switch rate {
	case host.RateFine:
		return r.Fine
	case host.RateMedium:
		return r.Medium
	default:
		return r.Coarse
	}
}

// GlyphConfig holds the characters used for bars, rules and column separators.
// Every field except the bar brackets must be exactly one character.
type GlyphConfig struct {
	BarFull   string `yaml:"bar_full" mapstructure:"bar_full"`
	BarEmpty  string `yaml:"bar_empty" mapstructure:"bar_empty"`
	BarLeft   string `yaml:"bar_left" mapstructure:"bar_left"`
	BarRight  string `yaml:"bar_right" mapstructure:"bar_right"`
	Rule      string `yaml:"rule" mapstructure:"rule"`
	Separator string `yaml:"separator" mapstructure:"separator"`
}

// Glyphs converts the configured characters into a textfmt.Glyphs.
// Call Validate first; malformed single-character fields fall back to defaults.
func (g GlyphConfig) Glyphs() textfmt.Glyphs {
	def := textfmt.DefaultGlyphs()
	return textfmt.Glyphs{
		BarFull:   firstRune(g.BarFull, def.BarFull),
		BarEmpty:  firstRune(g.BarEmpty, def.BarEmpty),
		BarLeft:   g.BarLeft,
		BarRight:  g.BarRight,
		Rule:      firstRune(g.Rule, def.Rule),
		Separator: firstRune(g.Separator, def.Separator),
	}
}

func firstRune(s string, def rune) rune {
	for _, r := range s {
		return r
	}
	return def
}

// OutputConfig controls terminal output formatting.
type OutputConfig struct {
	// Color mode: "auto", "always", or "never".
	// "auto" disables color when output is piped.
	Color string `yaml:"color" mapstructure:"color"`

	// Frames draws a border around each rendered surface.
	Frames bool `yaml:"frames" mapstructure:"frames"`
}

// DefaultConfig returns a Config with sensible defaults.
func DefaultConfig() *Config {
	g := textfmt.DefaultGlyphs()
	return &Config{
		Version:  CurrentConfigVersion,
		World:    DefaultWorldFile,
		Prefixes: []string{"display", "config", "panel"},
		Refresh: RefreshConfig{
			Fine:   16 * time.Millisecond,
			Medium: 166 * time.Millisecond,
			Coarse: 1666 * time.Millisecond,
		},
		Glyphs: GlyphConfig{
			BarFull:   string(g.BarFull),
			BarEmpty:  string(g.BarEmpty),
			BarLeft:   g.BarLeft,
			BarRight:  g.BarRight,
			Rule:      string(g.Rule),
			Separator: string(g.Separator),
		},
		Output: OutputConfig{
			Color:  "auto",
			Frames: true,
		},
	}
}
