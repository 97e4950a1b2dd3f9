package domain

import (
	"sort"
	"time"
)

// TaskList is the ordered sequence of tasks backing one store file.
// Order is insertion order and is significant: user-facing indices are
// positions in Items.
type TaskList struct {
	Items []Task `toml:"items" yaml:"items" json:"items"`
}

// Len returns the number of tasks.
func (l *TaskList) Len() int {
	return len(l.Items)
}

// Add appends a new incomplete task.
func (l *TaskList) Add(text string, repeatDays *int64) {
	l.Items = append(l.Items, NewTask(text, repeatDays))
}

// AutoResetRepeating resets every completed repeating task whose
// interval has elapsed. Runs once per invocation, right after load, so
// every command observes an already-reset list. Idempotent.
func (l *TaskList) AutoResetRepeating(now time.Time) {
	for i := range l.Items {
		l.Items[i].ResetIfDue(now)
	}
}

// Delete removes the tasks at the given indices. Indices must already
// be validated against Len. Removal happens in descending numeric
// order so earlier removals cannot shift a still-pending index.
func (l *TaskList) Delete(indices []int) {
	sorted := make([]int, len(indices))
	copy(sorted, indices)
	sort.Sort(sort.Reverse(sort.IntSlice(sorted)))

	for _, idx := range sorted {
		l.Items = append(l.Items[:idx], l.Items[idx+1:]...)
	}
}
