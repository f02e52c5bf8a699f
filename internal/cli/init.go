package cli

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/charmbracelet/huh"
	"github.com/rileyhilliard/panels/internal/config"
	"github.com/rileyhilliard/panels/internal/errors"
	"github.com/rileyhilliard/panels/internal/ui"
	"github.com/rileyhilliard/panels/internal/world"
	"github.com/spf13/cobra"
	"golang.org/x/term"
)

// InitOptions holds options for the init command.
type InitOptions struct {
	World          string // World file name to create and reference
	TOML           bool   // Write the starter world as TOML
	Overwrite      bool   // Overwrite existing files without asking
	NonInteractive bool   // Never prompt
}

var initOpts InitOptions

// initCmd scaffolds a config and a starter world
var initCmd = &cobra.Command{
	Use:   "init",
	Short: "Create .panels.yaml and a starter world",
	Long: `Initialize a panels project in the current directory.

Creates .panels.yaml with the default refresh rates and glyphs, plus a
starter world file with two display entities and three inventories.

Examples:
  panels init
  panels init --toml
  panels init --world station.yaml --force`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		opts := initOpts
		if !term.IsTerminal(int(os.Stdin.Fd())) {
			opts.NonInteractive = true
		}
		return Init(opts, cmd.OutOrStdout())
	},
}

func init() {
	initCmd.Flags().StringVar(&initOpts.World, "world", "", "world file name (default world.yaml, or world.toml with --toml)")
	initCmd.Flags().BoolVar(&initOpts.TOML, "toml", false, "write the starter world as TOML")
	initCmd.Flags().BoolVar(&initOpts.Overwrite, "force", false, "overwrite existing files")
	rootCmd.AddCommand(initCmd)
}

// initDefaults holds values picked up from the environment.
type initDefaults struct {
	World          string
	NonInteractive bool
}

// getInitDefaults reads PANELS_WORLD and the non-interactive switches
// (PANELS_NON_INTERACTIVE, CI).
func getInitDefaults() initDefaults {
	return initDefaults{
		World:          os.Getenv("PANELS_WORLD"),
		NonInteractive: isTruthy(os.Getenv("PANELS_NON_INTERACTIVE")) || isTruthy(os.Getenv("CI")),
	}
}

func isTruthy(v string) bool {
	switch strings.ToLower(strings.TrimSpace(v)) {
	case "1", "true", "yes", "on":
		return true
	}
	return false
}

// mergeInitOptions fills unset options from the environment. Flags win.
func mergeInitOptions(opts InitOptions) InitOptions {
	defaults := getInitDefaults()
	if opts.World == "" {
		opts.World = defaults.World
	}
	if defaults.NonInteractive {
		opts.NonInteractive = true
	}
	return opts
}

// worldName returns the world file to create.
func (o InitOptions) worldName() string {
	if o.World != "" {
		return o.World
	}
	if o.TOML {
		return "world.toml"
	}
	return config.DefaultWorldFile
}

// Init writes .panels.yaml and a starter world into the current directory.
func Init(opts InitOptions, out io.Writer) error {
	opts = mergeInitOptions(opts)
	configPath := filepath.Join(".", config.ConfigFileName)
	worldName := opts.worldName()

	writeConfig := true
	if _, err := os.Stat(configPath); err == nil && !opts.Overwrite {
		if opts.NonInteractive {
			return errors.New(errors.ErrConfig,
				fmt.Sprintf("Config file already exists: %s", configPath),
				"Use --force to overwrite")
		}

		var overwrite bool
		form := huh.NewForm(
			huh.NewGroup(
				huh.NewConfirm().
					Title(fmt.Sprintf("Config file '%s' already exists. Overwrite?", config.ConfigFileName)).
					Value(&overwrite),
			),
		)
		if err := form.Run(); err != nil {
			return errors.WrapWithCode(err, errors.ErrConfig,
				"Failed to get user input",
				"Try running with --force to overwrite")
		}

		if !overwrite {
			if opts.World == "" {
				fmt.Fprintln(out, "Cancelled.")
				return nil
			}
			// Keep the config but point it at the requested world.
			if err := config.SetScalar(configPath, "world", worldName); err != nil {
				return err
			}
			fmt.Fprintf(out, "%s Updated world in %s\n", ui.SymbolSuccess, configPath)
			writeConfig = false
		}
	}

	if writeConfig {
		cfg := config.DefaultConfig()
		cfg.World = worldName
		data, err := config.Render(cfg)
		if err != nil {
			return err
		}
		if err := os.WriteFile(configPath, data, 0644); err != nil {
			return errors.WrapWithCode(err, errors.ErrConfig,
				fmt.Sprintf("Failed to write config file: %s", configPath),
				"Check directory permissions")
		}
		fmt.Fprintf(out, "%s Created %s\n", ui.SymbolSuccess, configPath)
	}

	if err := writeStarterWorld(worldName, opts.Overwrite, out); err != nil {
		return err
	}

	fmt.Fprintln(out)
	fmt.Fprintln(out, "Next steps:")
	fmt.Fprintln(out, "  panels validate  - Check every panel configuration")
	fmt.Fprintln(out, "  panels render    - Print every surface once")
	fmt.Fprintln(out, "  panels watch     - Live preview with reload on save")
	return nil
}

// writeStarterWorld writes the example world unless a file is already there.
func writeStarterWorld(path string, overwrite bool, out io.Writer) error {
	if _, err := os.Stat(path); err == nil && !overwrite {
		fmt.Fprintf(out, "%s Kept existing %s\n", ui.SymbolSkipped, path)
		return nil
	}

	data, err := world.Encode(world.Example(), world.FormatFor(path))
	if err != nil {
		return err
	}
	if err := os.WriteFile(path, data, 0644); err != nil {
		return errors.WrapWithCode(err, errors.ErrWorld,
			fmt.Sprintf("Failed to write world file: %s", path),
			"Check directory permissions")
	}
	fmt.Fprintf(out, "%s Created %s\n", ui.SymbolSuccess, path)
	return nil
}
