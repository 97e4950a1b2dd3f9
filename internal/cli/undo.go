package cli

import (
	"fmt"
	"strconv"

	"github.com/spf13/cobra"

	"todoster/internal/domain"
	"todoster/internal/usecase"
)

// newUndoCommand creates the undo command.
func (a *App) newUndoCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "undo <index>",
		Short: "Mark a task incomplete again",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			index, err := parseIndexArg(args[0])
			if err != nil {
				return err
			}

			uc := a.container.UndoTaskUseCase()
			out, err := uc.Execute(cmd.Context(), usecase.UndoTaskInput{Index: index})
			if err != nil {
				return err
			}

			_, _ = fmt.Fprintf(cmd.OutOrStdout(), "Task %d marked incomplete.\n", out.Index)
			return nil
		},
	}
}

// parseIndexArg parses a single positional index argument.
func parseIndexArg(arg string) (int, error) {
	index, err := strconv.Atoi(arg)
	if err != nil || index < 0 {
		return 0, fmt.Errorf("%q: %w", arg, domain.ErrInvalidIndexSpec)
	}
	return index, nil
}
