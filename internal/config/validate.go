package config

import (
	"fmt"
	"strings"
	"unicode/utf8"

	"github.com/rileyhilliard/panels/internal/errors"
)

// Validate checks the config for errors and returns structured error messages.
func Validate(cfg *Config) error {
	if cfg.Version > CurrentConfigVersion {
		return errors.New(errors.ErrConfig,
			fmt.Sprintf("This config is from the future (version %d, but panels only knows up to %d)", cfg.Version, CurrentConfigVersion),
			"Grab the latest panels release.")
	}

	if err := validatePrefixes(cfg.Prefixes); err != nil {
		return errors.WrapWithCode(err, errors.ErrConfig, err.Error(), "Check the 'prefixes' list in your .panels.yaml.")
	}

	if err := validateRefresh(cfg.Refresh); err != nil {
		return errors.WrapWithCode(err, errors.ErrConfig, err.Error(), "Check the 'refresh' section in your .panels.yaml.")
	}

	if err := validateGlyphs(cfg.Glyphs); err != nil {
		return errors.WrapWithCode(err, errors.ErrConfig, err.Error(), "Check the 'glyphs' section in your .panels.yaml.")
	}

	if err := validateOutput(cfg.Output); err != nil {
		return errors.WrapWithCode(err, errors.ErrConfig, err.Error(), "Check the 'output' section in your .panels.yaml.")
	}

	return nil
}

func validatePrefixes(prefixes []string) error {
	if len(prefixes) == 0 {
		return fmt.Errorf("prefixes is empty - no entity would ever be rendered")
	}
	for i, p := range prefixes {
		if strings.TrimSpace(p) == "" {
			return fmt.Errorf("prefixes[%d] is blank", i)
		}
	}
	return nil
}

func validateRefresh(r RefreshConfig) error {
	for _, f := range []struct {
		name string
		ok   bool
	}{
		{"fine", r.Fine > 0},
		{"medium", r.Medium > 0},
		{"coarse", r.Coarse > 0},
	} {
		if !f.ok {
			return fmt.Errorf("refresh.%s must be a positive duration like '16ms' or '2s'", f.name)
		}
	}
	return nil
}

func validateGlyphs(g GlyphConfig) error {
	for _, f := range []struct {
		name  string
		value string
	}{
		{"bar_full", g.BarFull},
		{"bar_empty", g.BarEmpty},
		{"rule", g.Rule},
		{"separator", g.Separator},
	} {
		if n := utf8.RuneCountInString(f.value); n != 1 {
			return fmt.Errorf("glyphs.%s must be exactly one character, got %q", f.name, f.value)
		}
	}
	return nil
}

// validateOutput checks output configuration.
func validateOutput(out OutputConfig) error {
	validColors := map[string]bool{"auto": true, "always": true, "never": true, "": true}
	if !validColors[out.Color] {
		return fmt.Errorf("output.color '%s' isn't valid - use 'auto', 'always', or 'never'", out.Color)
	}
	return nil
}
