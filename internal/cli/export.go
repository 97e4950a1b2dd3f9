package cli

import (
	"github.com/spf13/cobra"

	"todoster/internal/usecase"
)

// newExportCommand creates the export command.
func (a *App) newExportCommand() *cobra.Command {
	var format string

	cmd := &cobra.Command{
		Use:   "export",
		Short: "Write the task list to stdout as YAML or JSON",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			uc := a.container.ExportTasksUseCase()
			out, err := uc.Execute(cmd.Context(), usecase.ExportTasksInput{
				Format: usecase.ExportFormat(format),
			})
			if err != nil {
				return err
			}

			_, err = cmd.OutOrStdout().Write(out.Data)
			return err
		},
	}

	cmd.Flags().StringVar(&format, "format", "yaml", "Export format: yaml or json")

	return cmd
}
