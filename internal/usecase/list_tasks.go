package usecase

import (
	"context"
	"time"

	"todoster/internal/domain"
)

// ListTasksInput contains the parameters for listing tasks.
type ListTasksInput struct {
	// Empty; listing takes no parameters.
}

// ListTasksOutput contains the tasks split into display sections.
// Indices are positions in the underlying list, so they stay valid as
// command arguments regardless of the section split.
type ListTasksOutput struct {
	Now        time.Time     // Time the list was observed, for repeat annotations
	Incomplete []IndexedTask // Incomplete tasks, in list order
	Complete   []IndexedTask // Complete tasks, in list order
}

// ListTasks is the read-only use case for displaying the task list.
// It never saves, so running it on a missing file creates nothing.
type ListTasks struct {
	tasks domain.TaskRepository
	clock domain.Clock
}

// NewListTasks creates a new ListTasks use case.
func NewListTasks(tasks domain.TaskRepository, clock domain.Clock) *ListTasks {
	return &ListTasks{tasks: tasks, clock: clock}
}

// Execute loads the list and partitions it for display.
func (uc *ListTasks) Execute(_ context.Context, _ ListTasksInput) (*ListTasksOutput, error) {
	list, now, err := loadList(uc.tasks, uc.clock)
	if err != nil {
		return nil, err
	}

	out := &ListTasksOutput{Now: now}
	for i, task := range list.Items {
		entry := IndexedTask{Index: i, Task: task}
		if task.Complete {
			out.Complete = append(out.Complete, entry)
		} else {
			out.Incomplete = append(out.Incomplete, entry)
		}
	}
	return out, nil
}
