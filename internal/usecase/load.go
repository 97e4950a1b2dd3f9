// Package usecase contains application use cases.
package usecase

import (
	"fmt"
	"time"

	"todoster/internal/domain"
)

// IndexedTask pairs a task with its position in the list, which is the
// identifier users address it by.
type IndexedTask struct {
	Task  domain.Task
	Index int
}

// loadList loads the task list and resets due repeating tasks before
// any command logic runs. The reset is in-memory only; it reaches the
// file when (and only when) the command itself saves.
func loadList(tasks domain.TaskRepository, clock domain.Clock) (*domain.TaskList, time.Time, error) {
	list, err := tasks.Load()
	if err != nil {
		return nil, time.Time{}, fmt.Errorf("load tasks: %w", err)
	}

	now := clock.Now()
	list.AutoResetRepeating(now)
	return list, now, nil
}

func validateRepeat(days *int64) error {
	if days != nil && *days <= 0 {
		return fmt.Errorf("repeat %d: %w", *days, domain.ErrInvalidRepeat)
	}
	return nil
}
