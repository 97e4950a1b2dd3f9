package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"todoster/internal/usecase"
)

// newEditCommand creates the edit command.
func (a *App) newEditCommand() *cobra.Command {
	var opts struct {
		Text        string
		Repeat      int64
		ClearRepeat bool
	}

	cmd := &cobra.Command{
		Use:   "edit <index>",
		Short: "Edit an existing task",
		Long: `Edit the text or repeat interval of an existing task.
Fields without a flag are left untouched. --clear-repeat wins over a
co-supplied --repeat.

Examples:
  todo edit 3 --text "Water the ficus"
  todo edit 3 --repeat 7
  todo edit 3 --clear-repeat`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			index, err := parseIndexArg(args[0])
			if err != nil {
				return err
			}

			input := usecase.EditTaskInput{
				Index:       index,
				ClearRepeat: opts.ClearRepeat,
			}
			if cmd.Flags().Changed("text") {
				input.Text = &opts.Text
			}
			if cmd.Flags().Changed("repeat") {
				input.RepeatDays = &opts.Repeat
			}

			uc := a.container.EditTaskUseCase()
			out, err := uc.Execute(cmd.Context(), input)
			if err != nil {
				return err
			}

			_, _ = fmt.Fprintf(cmd.OutOrStdout(), "Task %d updated.\n", out.Index)
			return nil
		},
	}

	cmd.Flags().StringVar(&opts.Text, "text", "", "New text for the task")
	cmd.Flags().Int64Var(&opts.Repeat, "repeat", 0, "New repeat interval in days")
	cmd.Flags().BoolVar(&opts.ClearRepeat, "clear-repeat", false, "Remove the repeat interval")

	return cmd
}
