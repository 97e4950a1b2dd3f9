// Package cli provides the command-line interface for todoster.
package cli

import (
	"github.com/spf13/cobra"

	"todoster/internal/app"
)

// App wires the container into the cobra command tree. The container
// is built after flag parsing in PersistentPreRunE, because the global
// --file flag decides where the store lives; tests inject a container
// directly instead.
type App struct {
	container *app.Container
	filePath  string
}

// NewApp creates an App with an injected container, for tests.
func NewApp(c *app.Container) *App {
	return &App{container: c}
}

// NewRootCommand creates the root command for todoster.
func NewRootCommand(version string) *cobra.Command {
	a := &App{}

	root := &cobra.Command{
		Use:   "todo",
		Short: "File-backed to-do list manager",
		Long: `todoster is a to-do list manager backed by a single hand-editable
TOML file. Tasks are addressed by their position in the list, shown by
'todo list'; indices shift when earlier tasks are deleted, so they are
only valid within one invocation.

Tasks with a repeat interval flip back to incomplete automatically once
the interval has elapsed after their completion date.`,
		Version: version,
		// SilenceUsage prevents usage from being printed on errors
		SilenceUsage: true,
		// SilenceErrors prevents Cobra from printing errors (we handle it in main)
		SilenceErrors: true,
		PersistentPreRunE: func(_ *cobra.Command, _ []string) error {
			if a.container != nil {
				return nil
			}
			c, err := app.New(a.filePath)
			if err != nil {
				return err
			}
			a.container = c
			return nil
		},
		// No subcommand means list
		RunE: func(cmd *cobra.Command, _ []string) error {
			return a.runList(cmd)
		},
	}

	root.PersistentFlags().StringVarP(&a.filePath, "file", "f", "",
		"Path to the todo file (default: ~/.config/todoster/todos.toml)")

	root.AddCommand(
		a.newListCommand(),
		a.newAddCommand(),
		a.newCompleteCommand(),
		a.newUndoCommand(),
		a.newEditCommand(),
		a.newDeleteCommand(),
		a.newExportCommand(),
		a.newCommandsCommand(),
		a.newTUICommand(),
	)

	return root
}
