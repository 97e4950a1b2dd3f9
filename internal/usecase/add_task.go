package usecase

import (
	"context"
	"fmt"

	"todoster/internal/domain"
)

// AddTaskInput contains the parameters for adding a task.
type AddTaskInput struct {
	RepeatDays *int64 // Repeat interval in days (nil = one-off task)
	Text       string // Task text (empty permitted)
}

// AddTaskOutput contains the result of adding a task.
type AddTaskOutput struct {
	Task  domain.Task // The created task
	Index int         // Position the task was appended at
}

// AddTask is the use case for appending a new task.
type AddTask struct {
	tasks domain.TaskRepository
	clock domain.Clock
}

// NewAddTask creates a new AddTask use case.
func NewAddTask(tasks domain.TaskRepository, clock domain.Clock) *AddTask {
	return &AddTask{tasks: tasks, clock: clock}
}

// Execute appends an incomplete task and saves the list.
func (uc *AddTask) Execute(_ context.Context, in AddTaskInput) (*AddTaskOutput, error) {
	if err := validateRepeat(in.RepeatDays); err != nil {
		return nil, err
	}

	list, _, err := loadList(uc.tasks, uc.clock)
	if err != nil {
		return nil, err
	}

	list.Add(in.Text, in.RepeatDays)

	if err := uc.tasks.Save(list); err != nil {
		return nil, fmt.Errorf("save tasks: %w", err)
	}

	idx := list.Len() - 1
	return &AddTaskOutput{Index: idx, Task: list.Items[idx]}, nil
}
