package cli

import (
	"fmt"
	"text/tabwriter"

	"github.com/spf13/cobra"
)

// newCommandsCommand creates the commands overview command.
func (a *App) newCommandsCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "commands",
		Short: "Show a table of available commands",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			w := cmd.OutOrStdout()
			_, _ = fmt.Fprintln(w, "=== Todoster Commands ===")
			_, _ = fmt.Fprintln(w)

			tw := tabwriter.NewWriter(w, 0, 4, 2, ' ', 0)
			rows := [][2]string{
				{"todo", "List tasks (default)"},
				{"todo list", "List tasks"},
				{"todo add \"<text>\"", "Add a new task"},
				{"todo add \"<text>\" --repeat <days>", "Add repeating task"},
				{"todo complete <i1,i2,1-4>", "Mark task(s) complete (supports ranges)"},
				{"todo undo <index>", "Mark a task incomplete again"},
				{"todo edit <index> --text \"<new>\"", "Edit task text"},
				{"todo edit <index> --repeat <days>", "Change repeat interval"},
				{"todo edit <index> --clear-repeat", "Remove repeat interval"},
				{"todo delete 1-4,7", "Dry-run delete (supports ranges, inclusive)"},
				{"todo delete 0,2-3,7 --confirm", "Actually perform deletion"},
				{"todo export --format yaml|json", "Dump the list to stdout"},
				{"todo tui", "Interactive list view"},
				{"todo --file <path> <command>", "Use a custom todo file"},
			}
			for _, row := range rows {
				_, _ = fmt.Fprintf(tw, "%s\t%s\n", row[0], row[1])
			}
			if err := tw.Flush(); err != nil {
				return err
			}

			_, _ = fmt.Fprintln(w)
			_, _ = fmt.Fprintln(w, "Indexes are 0-based (first item = 0) and shift after deletions.")
			return nil
		},
	}
}
