// Package testutil provides shared test utilities and mock implementations.
package testutil

import (
	"time"

	"todoster/internal/domain"
)

// MockClock is a test double for domain.Clock.
type MockClock struct {
	NowTime time.Time
}

// Now returns the configured time.
func (m *MockClock) Now() time.Time {
	return m.NowTime
}

// MockTaskRepository is an in-memory test double for
// domain.TaskRepository. Load hands out a copy so a use case mutating
// the list without saving cannot leak into Items.
type MockTaskRepository struct {
	LoadErr   error
	SaveErr   error
	Items     []domain.Task
	SaveCount int
	Saved     bool
}

// NewMockTaskRepository creates a MockTaskRepository holding the given tasks.
func NewMockTaskRepository(items ...domain.Task) *MockTaskRepository {
	return &MockTaskRepository{Items: items}
}

// Load returns a copy of the stored task list.
func (m *MockTaskRepository) Load() (*domain.TaskList, error) {
	if m.LoadErr != nil {
		return nil, m.LoadErr
	}
	items := make([]domain.Task, len(m.Items))
	copy(items, m.Items)
	return &domain.TaskList{Items: items}, nil
}

// Save stores a copy of the given task list.
func (m *MockTaskRepository) Save(list *domain.TaskList) error {
	if m.SaveErr != nil {
		return m.SaveErr
	}
	m.Items = append([]domain.Task(nil), list.Items...)
	m.Saved = true
	m.SaveCount++
	return nil
}

// Ensure mocks satisfy their ports.
var (
	_ domain.TaskRepository = (*MockTaskRepository)(nil)
	_ domain.Clock          = (*MockClock)(nil)
)
