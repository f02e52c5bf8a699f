// Package cli implements the panels command-line interface.
//
// Each Cobra command is a thin wrapper around an exported function that
// takes its options and an io.Writer, so commands can be exercised from
// tests without a terminal.
//
// # Command Structure
//
//	panels render       - Refresh every panel and print its surfaces
//	panels validate     - Parse every panel and print the layout
//	panels watch        - Live preview, reloading volumes on save
//	panels init         - Create .panels.yaml and a starter world
//	panels version      - Print version information
//	panels completion   - Generate shell completion scripts
//
// # Sessions
//
// render and watch share openSession: find and validate the config, apply
// its color mode, load the world file (or the --world override) and build
// the dashboard over it. A broken panel configuration aborts the session;
// validate instead builds each entity on its own so every problem is
// reported.
//
// # Flag Handling
//
// Global flags (--config, --verbose, --no-color) are defined on the root
// command. WorldFlags and AddWorldFlags add --world to the commands that
// load a world.
package cli
