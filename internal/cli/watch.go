package cli

import (
	"context"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/rileyhilliard/panels/internal/errors"
	"github.com/rileyhilliard/panels/internal/monitor"
	"github.com/rileyhilliard/panels/internal/world"
	"github.com/spf13/cobra"
)

var watchFlags WorldFlags

// watchCmd starts the live preview
var watchCmd = &cobra.Command{
	Use:   "watch",
	Short: "Live preview of every surface, refreshed at the configured rate",
	Long: `Start an interactive preview that refreshes the dashboard at the rate
requested by the panel configuration (config -update fine|medium|coarse).

Inventory volumes are reloaded whenever the world file changes, so you can
edit current_volume and watch the capacity bars move.

Keyboard shortcuts:
  q / Ctrl+C  Quit
  space / p   Pause or resume
  n           Single refresh while paused
  tab / l     Select next surface
  shift+tab   Select previous surface
  Enter / f   Show only the selected surface
  b           Toggle frames
  ?           Show help

Examples:
  panels watch
  panels watch --world station.yaml`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		return watchCommand(cmd.Context(), watchFlags)
	},
}

func init() {
	AddWorldFlags(watchCmd, &watchFlags)
	rootCmd.AddCommand(watchCmd)
}

// newWatchModel wires a session into the preview model.
func newWatchModel(s *session) monitor.Model {
	return monitor.NewModel(s.dash, s.screens(), monitor.Options{
		Scheduler: s.scheduler,
		Refresh:   s.cfg.Refresh,
		Frames:    s.cfg.Output.Frames,
		World:     s.worldPath,
		Apply:     s.world.ApplyVolumes,
	})
}

func watchCommand(ctx context.Context, flags WorldFlags) error {
	if ctx == nil {
		ctx = context.Background()
	}

	s, err := openSession(flags)
	if err != nil {
		return err
	}

	ctx, cancel := context.WithCancel(ctx)
	defer cancel()

	p := tea.NewProgram(newWatchModel(s), tea.WithAltScreen(), tea.WithContext(ctx))

	go func() {
		err := world.Watch(ctx, s.worldPath, func(w *world.World, err error) {
			p.Send(monitor.ReloadMsg(w, err))
		})
		if err != nil {
			p.Send(monitor.ReloadMsg(nil, err))
		}
	}()

	if _, err := p.Run(); err != nil && ctx.Err() == nil {
		return errors.WrapWithCode(err, errors.ErrRender,
			"Live preview stopped unexpectedly",
			"Try 'panels render' to print the surfaces without a terminal UI")
	}
	return nil
}
