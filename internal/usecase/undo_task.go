package usecase

import (
	"context"
	"fmt"

	"todoster/internal/domain"
)

// UndoTaskInput contains the parameters for marking a task incomplete.
type UndoTaskInput struct {
	Index int // Task index to undo
}

// UndoTaskOutput contains the undone task.
type UndoTaskOutput struct {
	Task  domain.Task
	Index int
}

// UndoTask is the use case for flipping a task back to incomplete.
// Undoing an already-incomplete task is a valid no-op.
type UndoTask struct {
	tasks domain.TaskRepository
	clock domain.Clock
}

// NewUndoTask creates a new UndoTask use case.
func NewUndoTask(tasks domain.TaskRepository, clock domain.Clock) *UndoTask {
	return &UndoTask{tasks: tasks, clock: clock}
}

// Execute clears the completion state of the task at the given index
// and saves the list.
func (uc *UndoTask) Execute(_ context.Context, in UndoTaskInput) (*UndoTaskOutput, error) {
	list, _, err := loadList(uc.tasks, uc.clock)
	if err != nil {
		return nil, err
	}

	if err := domain.ValidateIndexes([]int{in.Index}, list.Len()); err != nil {
		return nil, err
	}

	list.Items[in.Index].MarkIncomplete()

	if err := uc.tasks.Save(list); err != nil {
		return nil, fmt.Errorf("save tasks: %w", err)
	}

	return &UndoTaskOutput{Index: in.Index, Task: list.Items[in.Index]}, nil
}
