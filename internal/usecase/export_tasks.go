package usecase

import (
	"context"
	"encoding/json"
	"fmt"

	"gopkg.in/yaml.v3"

	"todoster/internal/domain"
)

// ExportFormat selects the export serialization.
type ExportFormat string

// Supported export formats.
const (
	FormatYAML ExportFormat = "yaml"
	FormatJSON ExportFormat = "json"
)

// ExportTasksInput contains the parameters for exporting the list.
type ExportTasksInput struct {
	Format ExportFormat
}

// ExportTasksOutput contains the serialized list.
type ExportTasksOutput struct {
	Data []byte
}

// ExportTasks is the read-only use case for dumping the task list in
// an interchange format. Like listing, it never saves.
type ExportTasks struct {
	tasks domain.TaskRepository
	clock domain.Clock
}

// NewExportTasks creates a new ExportTasks use case.
func NewExportTasks(tasks domain.TaskRepository, clock domain.Clock) *ExportTasks {
	return &ExportTasks{tasks: tasks, clock: clock}
}

// Execute serializes the loaded list in the requested format.
func (uc *ExportTasks) Execute(_ context.Context, in ExportTasksInput) (*ExportTasksOutput, error) {
	list, _, err := loadList(uc.tasks, uc.clock)
	if err != nil {
		return nil, err
	}

	var data []byte
	switch in.Format {
	case FormatYAML:
		data, err = yaml.Marshal(list)
	case FormatJSON:
		data, err = json.MarshalIndent(list, "", "  ")
	default:
		return nil, fmt.Errorf("unknown export format %q (want yaml or json)", in.Format)
	}
	if err != nil {
		return nil, fmt.Errorf("marshal task list: %w", err)
	}

	return &ExportTasksOutput{Data: data}, nil
}
