package cli

import (
	"github.com/spf13/cobra"

	"todoster/internal/tui"
)

// newTUICommand creates the tui command.
func (a *App) newTUICommand() *cobra.Command {
	return &cobra.Command{
		Use:   "tui",
		Short: "Browse and toggle tasks interactively",
		Args:  cobra.NoArgs,
		RunE: func(_ *cobra.Command, _ []string) error {
			return tui.Run(a.container.Tasks, a.container.Clock)
		},
	}
}
