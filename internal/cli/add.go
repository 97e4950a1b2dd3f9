package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"todoster/internal/usecase"
)

// newAddCommand creates the add command.
func (a *App) newAddCommand() *cobra.Command {
	var repeat int64

	cmd := &cobra.Command{
		Use:   "add <text>",
		Short: "Add a new task",
		Long: `Add a new task to the list.

Examples:
  # Add a one-off task
  todo add "Buy milk"

  # Add a task that repeats every 2 days
  todo add "Water plants" --repeat 2`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			input := usecase.AddTaskInput{Text: args[0]}
			if cmd.Flags().Changed("repeat") {
				input.RepeatDays = &repeat
			}

			uc := a.container.AddTaskUseCase()
			out, err := uc.Execute(cmd.Context(), input)
			if err != nil {
				return err
			}

			_, _ = fmt.Fprintf(cmd.OutOrStdout(), "Added task [%d] %s\n", out.Index, out.Task.Text)
			return nil
		},
	}

	cmd.Flags().Int64VarP(&repeat, "repeat", "r", 0, "Repeat interval in days")

	return cmd
}
