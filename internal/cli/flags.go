package cli

import (
	"fmt"

	"github.com/rileyhilliard/panels/internal/errors"
	"github.com/spf13/cobra"
)

// WorldFlags holds the flags shared by commands that load a world.
type WorldFlags struct {
	World string
}

// AddWorldFlags registers --world on a command.
func AddWorldFlags(cmd *cobra.Command, flags *WorldFlags) {
	cmd.Flags().StringVar(&flags.World, "world", "", "world file to load (overrides the config)")
}

// ValidateTicks checks the --ticks flag of render.
func ValidateTicks(ticks int) error {
	if ticks < 1 {
		return errors.New(errors.ErrConfig,
			fmt.Sprintf("'%d' isn't a usable tick count", ticks),
			"Pass --ticks 1 or more. Each tick redraws every surface once.")
	}
	return nil
}
