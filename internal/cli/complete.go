package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"todoster/internal/usecase"
)

// newCompleteCommand creates the complete command.
func (a *App) newCompleteCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "complete <spec>",
		Short: "Mark task(s) complete by index (supports ranges, e.g. \"0,2-4\")",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			uc := a.container.CompleteTasksUseCase()
			out, err := uc.Execute(cmd.Context(), usecase.CompleteTasksInput{Spec: args[0]})
			if err != nil {
				return err
			}

			for _, entry := range out.Completed {
				_, _ = fmt.Fprintf(cmd.OutOrStdout(), "Marked complete [%d] %s\n", entry.Index, entry.Task.Text)
			}
			return nil
		},
	}
}
