// Package domain contains core business entities and interfaces.
package domain

import "time"

// Task is a single to-do item.
// Position in the list is its only identity: indices shown to the user
// are valid for one invocation and shift when earlier items are deleted.
type Task struct {
	CompleteDate *time.Time `toml:"complete_date,omitempty" yaml:"complete_date,omitempty" json:"complete_date,omitempty"` // Set when marked complete
	RepeatDays   *int64     `toml:"repeat_days,omitempty" yaml:"repeat_days,omitempty" json:"repeat_days,omitempty"`       // Repeat interval in days (nil = one-off)
	Text         string     `toml:"text" yaml:"text" json:"text"`                                                          // Description (empty permitted)
	Complete     bool       `toml:"complete" yaml:"complete" json:"complete"`                                              // Completion flag
}

// NewTask creates an incomplete task. repeatDays is copied, so the
// caller's pointer is not retained.
func NewTask(text string, repeatDays *int64) Task {
	t := Task{Text: text}
	if repeatDays != nil {
		days := *repeatDays
		t.RepeatDays = &days
	}
	return t
}

// MarkComplete marks the task complete as of now.
func (t *Task) MarkComplete(now time.Time) {
	t.Complete = true
	done := now
	t.CompleteDate = &done
}

// MarkIncomplete clears the completion state. Calling it on an already
// incomplete task is a no-op.
func (t *Task) MarkIncomplete() {
	t.Complete = false
	t.CompleteDate = nil
}

// IsRepeating returns true if the task has a repeat interval.
func (t *Task) IsRepeating() bool {
	return t.RepeatDays != nil
}

// nextDueStart returns the moment the task becomes due again: local
// midnight at the start of completion day + RepeatDays. The due day
// depends on the completion date only, not its time of day.
func (t *Task) nextDueStart() (time.Time, bool) {
	if t.CompleteDate == nil || t.RepeatDays == nil {
		return time.Time{}, false
	}
	day := t.CompleteDate.AddDate(0, 0, int(*t.RepeatDays))
	due := time.Date(day.Year(), day.Month(), day.Day(), 0, 0, 0, 0, time.Local)
	return due, true
}

// ShouldReset reports whether a completed repeating task is due to
// flip back to incomplete. The boundary is inclusive: the task resets
// from midnight of the due day onward.
func (t *Task) ShouldReset(now time.Time) bool {
	if !t.Complete {
		return false
	}
	due, ok := t.nextDueStart()
	if !ok {
		return false
	}
	return !now.Before(due)
}

// ResetIfDue resets the task to incomplete if its repeat interval has
// elapsed. RepeatDays is never touched. Idempotent: resetting an
// already-reset task changes nothing.
func (t *Task) ResetIfDue(now time.Time) {
	if t.ShouldReset(now) {
		t.Complete = false
		t.CompleteDate = nil
	}
}

// TimeUntilNextRepeat returns the duration until the task becomes due
// again. Negative when the due day has already started. Returns false
// for incomplete tasks and tasks without a repeat interval or
// completion date.
func (t *Task) TimeUntilNextRepeat(now time.Time) (time.Duration, bool) {
	if !t.Complete {
		return 0, false
	}
	due, ok := t.nextDueStart()
	if !ok {
		return 0, false
	}
	return due.Sub(now), true
}
