package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"todoster/internal/usecase"
)

// newDeleteCommand creates the delete command.
func (a *App) newDeleteCommand() *cobra.Command {
	var confirm bool

	cmd := &cobra.Command{
		Use:   "delete <spec>",
		Short: "Delete one or more tasks (comma-separated indexes and ranges)",
		Long: `Delete tasks by index. Without --confirm this is a dry run: the
tasks that would be deleted are printed and nothing changes.

Examples:
  # Preview what would be deleted
  todo delete 0,2-3,7

  # Actually delete
  todo delete 0,2-3,7 --confirm`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			uc := a.container.DeleteTasksUseCase()
			out, err := uc.Execute(cmd.Context(), usecase.DeleteTasksInput{
				Spec:    args[0],
				Confirm: confirm,
			})
			if err != nil {
				return err
			}

			w := cmd.OutOrStdout()
			if out.DryRun {
				_, _ = fmt.Fprintln(w, "The following tasks would be deleted (run again with --confirm to proceed):")
				_, _ = fmt.Fprintln(w)
				for _, entry := range out.Tasks {
					_, _ = fmt.Fprintf(w, "[%d] %s\n", entry.Index, entry.Task.Text)
				}
				_, _ = fmt.Fprintln(w)
				_, _ = fmt.Fprintln(w, "Nothing deleted. Add --confirm to actually delete.")
				return nil
			}

			for _, entry := range out.Tasks {
				_, _ = fmt.Fprintf(w, "Deleted [%d] %s\n", entry.Index, entry.Task.Text)
			}
			return nil
		},
	}

	cmd.Flags().BoolVar(&confirm, "confirm", false, "Actually perform deletion (otherwise just show what would be deleted)")

	return cmd
}
