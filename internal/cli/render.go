package cli

import (
	"fmt"
	"io"
	"os"

	"github.com/rileyhilliard/panels/internal/ui"
	"github.com/spf13/cobra"
	"golang.org/x/term"
)

// RenderOptions holds options for the render command.
type RenderOptions struct {
	WorldFlags
	Ticks int  // refreshes to run before printing
	Raw   bool // print the surface text exactly as written
}

var renderOpts = RenderOptions{Ticks: 1}

// renderCmd refreshes every panel and prints the surfaces
var renderCmd = &cobra.Command{
	Use:   "render",
	Short: "Refresh every panel once and print its surfaces",
	Long: `Build the dashboard from the world file, refresh it, and print the text
each display surface received.

Examples:
  panels render
  panels render --world station.toml
  panels render --raw > surfaces.txt`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		return Render(renderOpts, cmd.OutOrStdout())
	},
}

func init() {
	AddWorldFlags(renderCmd, &renderOpts.WorldFlags)
	renderCmd.Flags().IntVar(&renderOpts.Ticks, "ticks", 1, "number of refreshes before printing")
	renderCmd.Flags().BoolVar(&renderOpts.Raw, "raw", false, "print plain surface text without frames")
	rootCmd.AddCommand(renderCmd)
}

// Render builds the dashboard, ticks it and writes every surface to out.
func Render(opts RenderOptions, out io.Writer) error {
	if err := ValidateTicks(opts.Ticks); err != nil {
		return err
	}

	s, err := openSession(opts.WorldFlags)
	if err != nil {
		return err
	}

	for i := 0; i < opts.Ticks; i++ {
		s.dash.Tick()
	}

	screens := s.screens()
	if opts.Raw {
		for _, screen := range screens {
			fmt.Fprintf(out, "# %s\n%s", screen.Title, screen.Source.Text())
		}
		return nil
	}

	fmt.Fprintln(out, ui.RenderHeader(ui.HeaderInfo{
		Version: formatVersion(version),
		World:   s.worldPath,
		Rate:    s.scheduler.Rate().String(),
	}))

	if len(screens) == 0 {
		fmt.Fprintf(out, "%s No panels found in %s\n", ui.SymbolPending, s.worldPath)
		return nil
	}

	frames := make([]ui.SurfaceFrame, len(screens))
	for i, screen := range screens {
		frames[i] = ui.SurfaceFrame{
			Title:  screen.Title,
			Grid:   screen.Source.Text(),
			Framed: s.cfg.Output.Frames,
		}
	}
	fmt.Fprintln(out, ui.RenderFrames(frames, terminalWidth()))
	return nil
}

// terminalWidth returns the stdout width, or 0 when it isn't a terminal.
func terminalWidth() int {
	w, _, err := term.GetSize(int(os.Stdout.Fd()))
	if err != nil {
		return 0
	}
	return w
}
