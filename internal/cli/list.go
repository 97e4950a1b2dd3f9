package cli

import (
	"fmt"
	"io"
	"time"

	"github.com/spf13/cobra"

	"todoster/internal/domain"
	"todoster/internal/usecase"
)

// newListCommand creates the list command.
func (a *App) newListCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "list",
		Short: "List all tasks (incomplete first, then complete)",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return a.runList(cmd)
		},
	}
}

func (a *App) runList(cmd *cobra.Command) error {
	uc := a.container.ListTasksUseCase()
	out, err := uc.Execute(cmd.Context(), usecase.ListTasksInput{})
	if err != nil {
		return err
	}

	renderList(cmd.OutOrStdout(), out)
	return nil
}

func renderList(w io.Writer, out *usecase.ListTasksOutput) {
	fmt.Fprintln(w, "=== Incomplete tasks ===")
	if len(out.Incomplete) == 0 {
		fmt.Fprintln(w, "(none)")
	}
	for _, entry := range out.Incomplete {
		if entry.Task.IsRepeating() {
			fmt.Fprintf(w, "[%d] %s (repeat: %dd)\n", entry.Index, entry.Task.Text, *entry.Task.RepeatDays)
		} else {
			fmt.Fprintf(w, "[%d] %s\n", entry.Index, entry.Task.Text)
		}
	}

	fmt.Fprintln(w)
	fmt.Fprintln(w, "=== Complete tasks ===")
	if len(out.Complete) == 0 {
		fmt.Fprintln(w, "(none)")
	}
	for _, entry := range out.Complete {
		fmt.Fprintf(w, "[%d] %s %s\n", entry.Index, entry.Task.Text, repeatAnnotation(entry.Task, out.Now))
	}
}

// repeatAnnotation describes when a completed task will repeat. The
// due moment is midnight at the start of the due day, so anything due
// within the current day reads as "due today".
func repeatAnnotation(task domain.Task, now time.Time) string {
	diff, ok := task.TimeUntilNextRepeat(now)
	if !ok {
		if task.IsRepeating() {
			return "(repeat: no completion date yet)"
		}
		return "(no repeat)"
	}

	if diff <= 0 {
		overdueDays := int((-diff).Hours() / 24)
		if overdueDays <= 0 {
			return "(repeat: due today)"
		}
		return fmt.Sprintf("(repeat: overdue by %dd)", overdueDays)
	}

	days := int(diff.Hours() / 24)
	if days < 1 {
		return "(repeat: due today)"
	}
	hours := int((diff - time.Duration(days)*24*time.Hour).Hours())
	return fmt.Sprintf("(repeat in %dd, %dhrs)", days, hours)
}
