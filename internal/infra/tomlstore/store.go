// Package tomlstore provides a TOML file-based implementation of TaskRepository.
package tomlstore

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/pelletier/go-toml/v2"

	"todoster/internal/domain"
)

// Ensure Store implements domain.TaskRepository.
var _ domain.TaskRepository = (*Store)(nil)

// Store persists a TaskList as a TOML document with one [[items]]
// table per task. The file is hand-editable and round-trips all task
// fields losslessly.
type Store struct {
	path string
}

// New creates a new Store for the given file path. The file does not
// need to exist; it is created on first save.
func New(path string) *Store {
	return &Store{path: path}
}

// Path returns the backing file path.
func (s *Store) Path() string {
	return s.path
}

// Load reads the task list. A missing file yields an empty list and
// creates nothing. A file that exists but does not parse is reported
// as domain.ErrCorruptStore and left untouched.
func (s *Store) Load() (*domain.TaskList, error) {
	data, err := os.ReadFile(s.path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return &domain.TaskList{}, nil
		}
		return nil, fmt.Errorf("read todo file %s: %w", s.path, err)
	}

	var list domain.TaskList
	if err := toml.Unmarshal(data, &list); err != nil {
		return nil, fmt.Errorf("parse todo file %s: %w", s.path, domain.ErrCorruptStore)
	}

	return &list, nil
}

// Save writes the task list. The content goes to a temp file first and
// is renamed over the target, so a crash mid-write cannot leave a
// half-written store behind.
func (s *Store) Save(list *domain.TaskList) error {
	dir := filepath.Dir(s.path)
	if err := os.MkdirAll(dir, 0o700); err != nil {
		return fmt.Errorf("create directory %s: %w", dir, err)
	}

	data, err := toml.Marshal(list)
	if err != nil {
		return fmt.Errorf("marshal todo list: %w", err)
	}

	tmpPath := s.path + ".tmp"
	if err := os.WriteFile(tmpPath, data, 0o600); err != nil {
		return fmt.Errorf("write temp file: %w", err)
	}

	if err := os.Rename(tmpPath, s.path); err != nil {
		_ = os.Remove(tmpPath) // Clean up
		return fmt.Errorf("rename temp file: %w", err)
	}

	return nil
}
