package usecase

import (
	"context"
	"fmt"

	"todoster/internal/domain"
)

// EditTaskInput contains the parameters for editing a task. Nil
// optionals leave the corresponding field untouched.
type EditTaskInput struct {
	Text        *string // New text (nil = no change)
	RepeatDays  *int64  // New repeat interval (nil = no change)
	Index       int     // Task index to edit
	ClearRepeat bool    // Remove the repeat interval
}

// EditTaskOutput contains the updated task.
type EditTaskOutput struct {
	Task  domain.Task
	Index int
}

// EditTask is the use case for editing an existing task. When both a
// new repeat interval and ClearRepeat are supplied, clearing wins:
// explicit removal intent is stronger than a co-supplied value.
type EditTask struct {
	tasks domain.TaskRepository
	clock domain.Clock
}

// NewEditTask creates a new EditTask use case.
func NewEditTask(tasks domain.TaskRepository, clock domain.Clock) *EditTask {
	return &EditTask{tasks: tasks, clock: clock}
}

// Execute applies the supplied fields to the task at the given index
// and saves the list.
func (uc *EditTask) Execute(_ context.Context, in EditTaskInput) (*EditTaskOutput, error) {
	if !in.ClearRepeat {
		if err := validateRepeat(in.RepeatDays); err != nil {
			return nil, err
		}
	}

	list, _, err := loadList(uc.tasks, uc.clock)
	if err != nil {
		return nil, err
	}

	if err := domain.ValidateIndexes([]int{in.Index}, list.Len()); err != nil {
		return nil, err
	}

	task := &list.Items[in.Index]
	if in.Text != nil {
		task.Text = *in.Text
	}
	if in.ClearRepeat {
		task.RepeatDays = nil
	} else if in.RepeatDays != nil {
		days := *in.RepeatDays
		task.RepeatDays = &days
	}

	if err := uc.tasks.Save(list); err != nil {
		return nil, fmt.Errorf("save tasks: %w", err)
	}

	return &EditTaskOutput{Index: in.Index, Task: *task}, nil
}
