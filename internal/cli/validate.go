package cli

import (
	stderrors "errors"
	"fmt"
	"io"

	"github.com/rileyhilliard/panels/internal/dashboard"
	"github.com/rileyhilliard/panels/internal/directive"
	"github.com/rileyhilliard/panels/internal/errors"
	"github.com/rileyhilliard/panels/internal/host"
	"github.com/rileyhilliard/panels/internal/textfmt"
	"github.com/rileyhilliard/panels/internal/ui"
	"github.com/rileyhilliard/panels/internal/util"
	"github.com/rileyhilliard/panels/internal/world"
	"github.com/spf13/cobra"
)

var validateFlags WorldFlags

// validateCmd checks every panel configuration in the world
var validateCmd = &cobra.Command{
	Use:   "validate",
	Short: "Check every panel configuration and print the layout",
	Long: `Parse the configuration of every eligible entity in the world file and
report the surfaces, columns and commands each one builds.

Unlike render, a broken configuration doesn't stop the check: every
entity is parsed and every problem is listed.

Examples:
  panels validate
  panels validate --world station.toml`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		return Validate(validateFlags, cmd.OutOrStdout())
	},
}

func init() {
	AddWorldFlags(validateCmd, &validateFlags)
	rootCmd.AddCommand(validateCmd)
}

// Validate parses every eligible entity and writes a layout report to out.
// It returns an error when any configuration is broken.
func Validate(flags WorldFlags, out io.Writer) error {
	cfg, _, err := loadConfig()
	if err != nil {
		return err
	}

	worldPath := worldPathFor(cfg, flags.World)
	w, err := world.Load(worldPath)
	if err != nil {
		return err
	}

	sched := &host.ManualScheduler{}
	opts := dashboardOptions(cfg, w, sched)

	var good []host.SurfaceEntity
	var problems []ui.Problem
	for _, e := range w.Entities() {
		if _, err := dashboard.New([]host.SurfaceEntity{e}, opts); err != nil {
			problems = append(problems, ui.Problem{Entity: e.Name(), Message: problemMessage(err)})
			continue
		}
		good = append(good, e)
	}

	dash, err := dashboard.New(good, opts)
	if err != nil {
		return err
	}

	summary := ui.ValidationSummary{
		Providers: dash.Len(),
		Skipped:   dash.Skipped(),
		Problems:  problems,
	}
	var rows []ui.LayoutRow
	for _, p := range dash.Summary() {
		for _, s := range p.Surfaces {
			rows = append(rows, ui.LayoutRow{
				Provider: p.Name,
				Surface:  s.Index,
				Width:    s.Width,
				Columns:  s.Columns,
				ColWidth: s.ColumnWidth,
				Commands: s.Commands,
			})
			summary.Surfaces++
			summary.Commands += s.Commands
		}
	}

	fmt.Fprintln(out, ui.RenderLayoutTable(rows))
	if inv := inventoryTable(w); inv != "" {
		fmt.Fprintln(out, inv)
	}
	fmt.Fprint(out, ui.RenderSummary(summary))

	if len(problems) > 0 {
		return errors.New(errors.ErrParse,
			fmt.Sprintf("%s in %s", util.Count(len(problems), "broken panel configuration", "broken panel configurations"), worldPath),
			"Write each line as: directive -key value[,value...] with every key at most once.")
	}
	return nil
}

// problemMessage reduces a dashboard error to the line that failed.
func problemMessage(err error) string {
	var lineErr *directive.LineError
	if stderrors.As(err, &lineErr) {
		return lineErr.Error()
	}
	return err.Error()
}

// inventoryTable lists the inventories capacity commands can report on.
func inventoryTable(w *world.World) string {
	inventories := w.Inventories()
	if len(inventories) == 0 {
		return ""
	}

	columns := []ui.TableColumn{
		{Title: "INVENTORY", Width: 24},
		{Title: "MAX", Width: 12},
		{Title: "CURRENT", Width: 12},
		{Title: "FILL", Width: 6},
	}
	rows := make([][]string, len(inventories))
	for i, inv := range inventories {
		fill := "0%"
		if inv.MaxVolume() > 0 {
			fill = fmt.Sprintf("%d%%", textfmt.RoundHalfUp(float64(inv.CurrentVolume())/float64(inv.MaxVolume())*100))
		}
		rows[i] = []string{
			inv.Name(),
			kilolitres(inv.MaxVolume()),
			kilolitres(inv.CurrentVolume()),
			fill,
		}
	}
	return ui.RenderSimpleTable(columns, rows)
}

func kilolitres(raw int64) string {
	return textfmt.Fixed(float64(raw)/world.RawPerKilolitre, 1) + " kL"
}
