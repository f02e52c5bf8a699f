package config

import (
	"os"
	"path/filepath"

	"github.com/rileyhilliard/panels/internal/errors"
	"github.com/spf13/viper"
)

const (
	// ConfigFileName is the default config file name.
	ConfigFileName = ".panels.yaml"
	// GlobalConfigDir is the directory for global config.
	GlobalConfigDir = ".config/panels"
	// GlobalConfigFile is the global config file name.
	GlobalConfigFile = "config.yaml"
	// DefaultWorldFile is the world file used when none is configured.
	DefaultWorldFile = "world.yaml"
)

// Load reads config from the specified path.
func Load(path string) (*Config, error) {
	v := viper.New()
	v.SetConfigFile(path)

	if err := v.ReadInConfig(); err != nil {
		if os.IsNotExist(err) {
			return nil, errors.WrapWithCode(err, errors.ErrConfig,
				"Config file not found",
				"Run 'panels init' to create a config file, or specify one with --config")
		}
		return nil, errors.WrapWithCode(err, errors.ErrConfig,
			"Failed to read config file",
			"Check the file exists and is valid YAML")
	}

	return parseConfig(v, path)
}

// Find locates the config file using the search order:
// 1. Explicit path (from --config flag)
// 2. .panels.yaml in current directory
// 3. .panels.yaml in parent directories (stops at git root or home)
// 4. ~/.config/panels/config.yaml (global defaults)
//
// Returns the path to the config file, or empty string if not found.
func Find(explicit string) (string, error) {
	if explicit != "" {
		if _, err := os.Stat(explicit); err != nil {
			if os.IsNotExist(err) {
				return "", errors.WrapWithCode(err, errors.ErrConfig,
					"Specified config file not found: "+explicit,
					"Check the path is correct")
			}
			return "", errors.WrapWithCode(err, errors.ErrConfig,
				"Cannot access config file: "+explicit,
				"Check file permissions")
		}
		return explicit, nil
	}

	cwd, err := os.Getwd()
	if err != nil {
		return "", errors.WrapWithCode(err, errors.ErrConfig,
			"Cannot determine current directory",
			"Check directory permissions")
	}

	if found := findUpward(cwd); found != "" {
		return found, nil
	}

	home, _ := os.UserHomeDir()
	if home != "" {
		globalConfig := filepath.Join(home, GlobalConfigDir, GlobalConfigFile)
		if _, err := os.Stat(globalConfig); err == nil {
			return globalConfig, nil
		}
	}

	return "", nil
}

// findUpward looks for ConfigFileName in dir and its parents, stopping at
// the filesystem root, the home directory or a git root.
func findUpward(dir string) string {
	home, _ := os.UserHomeDir()
	for {
		candidate := filepath.Join(dir, ConfigFileName)
		if _, err := os.Stat(candidate); err == nil {
			return candidate
		}
		if isGitRoot(dir) {
			return ""
		}

		parent := filepath.Dir(dir)
		if parent == dir || (home != "" && parent == home) {
			return ""
		}
		dir = parent
	}
}

// LoadOrDefault loads config from the found path, or returns defaults if not found.
// The second return value is the path that was loaded ("" for defaults).
func LoadOrDefault(explicit string) (*Config, string, error) {
	path, err := Find(explicit)
	if err != nil {
		return nil, "", err
	}

	if path == "" {
		cfg := DefaultConfig()
		cfg.World = ResolveWorld(cfg.World, "")
		return cfg, "", nil
	}

	cfg, err := Load(path)
	if err != nil {
		return nil, "", err
	}
	return cfg, path, nil
}

// parseConfig converts viper config to our Config struct with defaults merged in.
func parseConfig(v *viper.Viper, path string) (*Config, error) {
	setDefaults(v, DefaultConfig())

	// Decode into a zero value so configured lists replace the defaults
	// instead of being merged element-wise.
	cfg := &Config{}
	if err := v.Unmarshal(cfg); err != nil {
		return nil, errors.WrapWithCode(err, errors.ErrConfig,
			"Invalid config format",
			"Check the YAML syntax in "+path)
	}

	cfg.World = ResolveWorld(cfg.World, path)
	return cfg, nil
}

// setDefaults registers every default with viper so partial sections merge.
func setDefaults(v *viper.Viper, def *Config) {
	v.SetDefault("version", def.Version)
	v.SetDefault("world", def.World)
	v.SetDefault("prefixes", def.Prefixes)
	v.SetDefault("refresh.fine", def.Refresh.Fine)
	v.SetDefault("refresh.medium", def.Refresh.Medium)
	v.SetDefault("refresh.coarse", def.Refresh.Coarse)
	v.SetDefault("glyphs.bar_full", def.Glyphs.BarFull)
	v.SetDefault("glyphs.bar_empty", def.Glyphs.BarEmpty)
	v.SetDefault("glyphs.bar_left", def.Glyphs.BarLeft)
	v.SetDefault("glyphs.bar_right", def.Glyphs.BarRight)
	v.SetDefault("glyphs.rule", def.Glyphs.Rule)
	v.SetDefault("glyphs.separator", def.Glyphs.Separator)
	v.SetDefault("output.color", def.Output.Color)
	v.SetDefault("output.frames", def.Output.Frames)
}

// ResolveWorld expands variables in world and makes it absolute relative to
// the directory holding configPath (or the working directory).
func ResolveWorld(world, configPath string) string {
	world = ExpandTilde(Expand(world))
	if world == "" || filepath.IsAbs(world) {
		return world
	}
	return filepath.Join(configDir(configPath), world)
}

// configDir returns the directory containing the config file.
func configDir(configPath string) string {
	if configPath == "" {
		cwd, _ := os.Getwd()
		return cwd
	}
	return filepath.Dir(configPath)
}

// isGitRoot checks if a directory is a git repository root.
func isGitRoot(dir string) bool {
	info, err := os.Stat(filepath.Join(dir, ".git"))
	if err != nil {
		return false
	}
	return info.IsDir()
}
