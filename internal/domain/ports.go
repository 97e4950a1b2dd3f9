package domain

import "time"

// TaskRepository loads and persists the task list. The whole list is
// read and written in one piece; there is no per-task access.
type TaskRepository interface {
	// Load reads the task list from the backing file. A missing file
	// is not an error and yields an empty list.
	Load() (*TaskList, error)

	// Save writes the task list back to the backing file, atomically
	// from the reader's perspective.
	Save(list *TaskList) error
}

// Clock provides time operations for testability.
type Clock interface {
	Now() time.Time
}

// RealClock implements Clock using the system clock.
type RealClock struct{}

// Now returns the current time.
func (RealClock) Now() time.Time {
	return time.Now()
}
