package usecase

import (
	"context"
	"fmt"

	"todoster/internal/domain"
)

// CompleteTasksInput contains the parameters for completing tasks.
type CompleteTasksInput struct {
	Spec string // Index spec, e.g. "3" or "0,2-4"
}

// CompleteTasksOutput contains the tasks that were marked complete.
type CompleteTasksOutput struct {
	Completed []IndexedTask
}

// CompleteTasks is the use case for marking one or more tasks
// complete. The whole index set is validated before anything is
// touched: one bad index fails the command with no partial mutation.
type CompleteTasks struct {
	tasks domain.TaskRepository
	clock domain.Clock
}

// NewCompleteTasks creates a new CompleteTasks use case.
func NewCompleteTasks(tasks domain.TaskRepository, clock domain.Clock) *CompleteTasks {
	return &CompleteTasks{tasks: tasks, clock: clock}
}

// Execute marks every task in the spec complete as of now and saves.
func (uc *CompleteTasks) Execute(_ context.Context, in CompleteTasksInput) (*CompleteTasksOutput, error) {
	indices, err := domain.ParseIndexSpec(in.Spec)
	if err != nil {
		return nil, err
	}

	list, now, err := loadList(uc.tasks, uc.clock)
	if err != nil {
		return nil, err
	}

	if err := domain.ValidateIndexes(indices, list.Len()); err != nil {
		return nil, err
	}

	out := &CompleteTasksOutput{}
	for _, idx := range indices {
		list.Items[idx].MarkComplete(now)
		out.Completed = append(out.Completed, IndexedTask{Index: idx, Task: list.Items[idx]})
	}

	if err := uc.tasks.Save(list); err != nil {
		return nil, fmt.Errorf("save tasks: %w", err)
	}

	return out, nil
}
