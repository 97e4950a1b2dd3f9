package usecase

import (
	"context"
	"fmt"

	"todoster/internal/domain"
)

// DeleteTasksInput contains the parameters for deleting tasks.
type DeleteTasksInput struct {
	Spec    string // Index spec, e.g. "0,2-3,7"
	Confirm bool   // Actually delete; otherwise dry run
}

// DeleteTasksOutput contains the deleted (or would-be-deleted) tasks
// in ascending index order.
type DeleteTasksOutput struct {
	Tasks  []IndexedTask
	DryRun bool
}

// DeleteTasks is the use case for bulk deletion. Without Confirm it is
// a dry run: the would-be victims are reported and nothing is mutated
// or saved. The whole index set is validated up front, so a bad index
// can never cause a partial deletion.
type DeleteTasks struct {
	tasks domain.TaskRepository
	clock domain.Clock
}

// NewDeleteTasks creates a new DeleteTasks use case.
func NewDeleteTasks(tasks domain.TaskRepository, clock domain.Clock) *DeleteTasks {
	return &DeleteTasks{tasks: tasks, clock: clock}
}

// Execute deletes the tasks named by the spec, or previews the
// deletion when Confirm is false.
func (uc *DeleteTasks) Execute(_ context.Context, in DeleteTasksInput) (*DeleteTasksOutput, error) {
	indices, err := domain.ParseIndexSpec(in.Spec)
	if err != nil {
		return nil, err
	}

	list, _, err := loadList(uc.tasks, uc.clock)
	if err != nil {
		return nil, err
	}

	if err := domain.ValidateIndexes(indices, list.Len()); err != nil {
		return nil, err
	}

	out := &DeleteTasksOutput{DryRun: !in.Confirm}
	for _, idx := range indices {
		out.Tasks = append(out.Tasks, IndexedTask{Index: idx, Task: list.Items[idx]})
	}

	if !in.Confirm {
		return out, nil
	}

	list.Delete(indices)

	if err := uc.tasks.Save(list); err != nil {
		return nil, fmt.Errorf("save tasks: %w", err)
	}

	return out, nil
}
