package tomlstore

import (
	"errors"
	"os"
	"path/filepath"
	"testing"
	"time"

	"todoster/internal/domain"
)

func newTestStore(t *testing.T) *Store {
	t.Helper()
	return New(filepath.Join(t.TempDir(), "todos.toml"))
}

func TestStore_Load_MissingFile(t *testing.T) {
	store := newTestStore(t)

	list, err := store.Load()
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}
	if list.Len() != 0 {
		t.Errorf("Load() on missing file = %d items, want 0", list.Len())
	}

	// Loading must not create the file
	if _, err := os.Stat(store.Path()); !errors.Is(err, os.ErrNotExist) {
		t.Errorf("Load() created the store file")
	}
}

func TestStore_SaveAndLoad_RoundTrip(t *testing.T) {
	store := newTestStore(t)

	done := time.Date(2026, 8, 10, 15, 30, 0, 0, time.Local)
	repeat := int64(2)
	list := &domain.TaskList{Items: []domain.Task{
		{Text: "Buy milk"},
		{Text: "Water plants", Complete: true, CompleteDate: &done, RepeatDays: &repeat},
		{Text: ""}, // empty text survives the round trip
	}}

	if err := store.Save(list); err != nil {
		t.Fatalf("Save() error = %v", err)
	}

	got, err := store.Load()
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}
	if got.Len() != 3 {
		t.Fatalf("Load() = %d items, want 3", got.Len())
	}

	if got.Items[0].Text != "Buy milk" || got.Items[0].Complete {
		t.Errorf("item 0 = %+v, want incomplete 'Buy milk'", got.Items[0])
	}

	second := got.Items[1]
	if !second.Complete {
		t.Errorf("item 1 not complete after round trip")
	}
	if second.CompleteDate == nil || !second.CompleteDate.Equal(done) {
		t.Errorf("item 1 complete_date = %v, want %v", second.CompleteDate, done)
	}
	if second.RepeatDays == nil || *second.RepeatDays != 2 {
		t.Errorf("item 1 repeat_days = %v, want 2", second.RepeatDays)
	}

	if got.Items[2].Text != "" {
		t.Errorf("item 2 text = %q, want empty", got.Items[2].Text)
	}
	if got.Items[0].CompleteDate != nil || got.Items[0].RepeatDays != nil {
		t.Errorf("item 0 optional fields should stay nil, got %+v", got.Items[0])
	}
}

func TestStore_SaveLoadSave_Stable(t *testing.T) {
	store := newTestStore(t)

	done := time.Date(2026, 8, 10, 15, 30, 0, 0, time.Local)
	repeat := int64(7)
	list := &domain.TaskList{Items: []domain.Task{
		{Text: "Water plants", Complete: true, CompleteDate: &done, RepeatDays: &repeat},
	}}

	if err := store.Save(list); err != nil {
		t.Fatalf("Save() error = %v", err)
	}
	first, err := os.ReadFile(store.Path())
	if err != nil {
		t.Fatalf("read store file: %v", err)
	}

	loaded, err := store.Load()
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}
	if err := store.Save(loaded); err != nil {
		t.Fatalf("Save() second call error = %v", err)
	}
	second, err := os.ReadFile(store.Path())
	if err != nil {
		t.Fatalf("read store file: %v", err)
	}

	if string(first) != string(second) {
		t.Errorf("re-saving an unmodified load changed the file:\nfirst:\n%s\nsecond:\n%s", first, second)
	}
}

func TestStore_Load_CorruptFile(t *testing.T) {
	store := newTestStore(t)

	content := []byte("items = [ this is not toml }")
	if err := os.WriteFile(store.Path(), content, 0o600); err != nil {
		t.Fatalf("write corrupt file: %v", err)
	}

	_, err := store.Load()
	if !errors.Is(err, domain.ErrCorruptStore) {
		t.Fatalf("Load() error = %v, want ErrCorruptStore", err)
	}

	// The corrupt file must be left untouched
	after, readErr := os.ReadFile(store.Path())
	if readErr != nil {
		t.Fatalf("read store file: %v", readErr)
	}
	if string(after) != string(content) {
		t.Errorf("corrupt file was modified")
	}
}

func TestStore_Save_CreatesParentDirectory(t *testing.T) {
	dir := t.TempDir()
	store := New(filepath.Join(dir, "nested", "deeper", "todos.toml"))

	if err := store.Save(&domain.TaskList{}); err != nil {
		t.Fatalf("Save() error = %v", err)
	}
	if _, err := os.Stat(store.Path()); err != nil {
		t.Errorf("store file not created: %v", err)
	}
}

func TestStore_Save_LeavesNoTempFile(t *testing.T) {
	store := newTestStore(t)

	list := &domain.TaskList{Items: []domain.Task{{Text: "a"}}}
	if err := store.Save(list); err != nil {
		t.Fatalf("Save() error = %v", err)
	}

	if _, err := os.Stat(store.Path() + ".tmp"); !errors.Is(err, os.ErrNotExist) {
		t.Errorf("temp file left behind after Save()")
	}
}
