// Package app provides the dependency injection container for the application.
package app

import (
	"todoster/internal/domain"
	"todoster/internal/infra/config"
	"todoster/internal/infra/tomlstore"
	"todoster/internal/usecase"
)

// Config holds the resolved application paths.
type Config struct {
	ConfigDir string // Per-user config directory
	StorePath string // Path to the todo file
}

// Container provides dependency injection for the application.
// It holds the port implementations and factory methods for use cases.
type Container struct {
	Tasks domain.TaskRepository
	Clock domain.Clock

	Config Config
}

// New creates a Container with the production wiring. filePath is the
// value of the global --file flag; when empty the store path is
// resolved from the environment, config file and default location.
func New(filePath string) (*Container, error) {
	configDir := config.DefaultConfigDir()

	storePath, err := config.NewLoader(configDir).StorePath(filePath)
	if err != nil {
		return nil, err
	}

	return &Container{
		Tasks: tomlstore.New(storePath),
		Clock: domain.RealClock{},
		Config: Config{
			ConfigDir: configDir,
			StorePath: storePath,
		},
	}, nil
}

// NewWithDeps creates a Container with custom dependencies for testing.
func NewWithDeps(cfg Config, tasks domain.TaskRepository, clock domain.Clock) *Container {
	return &Container{
		Tasks:  tasks,
		Clock:  clock,
		Config: cfg,
	}
}

// UseCase factory methods

// AddTaskUseCase returns a new AddTask use case.
func (c *Container) AddTaskUseCase() *usecase.AddTask {
	return usecase.NewAddTask(c.Tasks, c.Clock)
}

// ListTasksUseCase returns a new ListTasks use case.
func (c *Container) ListTasksUseCase() *usecase.ListTasks {
	return usecase.NewListTasks(c.Tasks, c.Clock)
}

// CompleteTasksUseCase returns a new CompleteTasks use case.
func (c *Container) CompleteTasksUseCase() *usecase.CompleteTasks {
	return usecase.NewCompleteTasks(c.Tasks, c.Clock)
}

// UndoTaskUseCase returns a new UndoTask use case.
func (c *Container) UndoTaskUseCase() *usecase.UndoTask {
	return usecase.NewUndoTask(c.Tasks, c.Clock)
}

// EditTaskUseCase returns a new EditTask use case.
func (c *Container) EditTaskUseCase() *usecase.EditTask {
	return usecase.NewEditTask(c.Tasks, c.Clock)
}

// DeleteTasksUseCase returns a new DeleteTasks use case.
func (c *Container) DeleteTasksUseCase() *usecase.DeleteTasks {
	return usecase.NewDeleteTasks(c.Tasks, c.Clock)
}

// ExportTasksUseCase returns a new ExportTasks use case.
func (c *Container) ExportTasksUseCase() *usecase.ExportTasks {
	return usecase.NewExportTasks(c.Tasks, c.Clock)
}
