package task

import (
	"errors"
	"os"
	"path/filepath"
	"reflect"
	"testing"
)

func newTestStore(t *testing.T) *FileStore {
	t.Helper()
	return NewFileStore(filepath.Join(t.TempDir(), "tasks.csv"))
}

func TestEnsure_CreatesHeaderOnlyFile(t *testing.T) {
	store := newTestStore(t)

	if err := store.Ensure(); err != nil {
		t.Fatalf("failed to ensure store: %v", err)
	}

	data, err := os.ReadFile(store.Path())
	if err != nil {
		t.Fatalf("failed to read data file: %v", err)
	}
	want := "id,title,priority,status,due_date,created_date,person,waiting_on,follow_up_date,notes\n"
	if string(data) != want {
		t.Errorf("unexpected file content: %q", string(data))
	}
}

func TestEnsure_Idempotent(t *testing.T) {
	store := newTestStore(t)

	if err := store.Ensure(); err != nil {
		t.Fatalf("first ensure failed: %v", err)
	}

	// Write a task, ensure again, and confirm the data survives
	tasks := []Task{{ID: "1", Title: "keep me", Priority: PriorityP2, Status: StatusTodo}}
	if err := store.Save(tasks); err != nil {
		t.Fatalf("failed to save: %v", err)
	}
	if err := store.Ensure(); err != nil {
		t.Fatalf("second ensure failed: %v", err)
	}

	loaded, err := store.Load()
	if err != nil {
		t.Fatalf("failed to load: %v", err)
	}
	if len(loaded) != 1 || loaded[0].Title != "keep me" {
		t.Errorf("ensure overwrote existing data: %+v", loaded)
	}
}

func TestEnsure_CreatesParentDirectories(t *testing.T) {
	dir := t.TempDir()
	store := NewFileStore(filepath.Join(dir, "nested", "deeper", "tasks.csv"))

	if err := store.Ensure(); err != nil {
		t.Fatalf("failed to ensure store in nested dir: %v", err)
	}
	if _, err := os.Stat(store.Path()); err != nil {
		t.Fatalf("data file missing: %v", err)
	}
}

func TestLoad_MissingFileIsEmptyStore(t *testing.T) {
	store := newTestStore(t)

	tasks, err := store.Load()
	if err != nil {
		t.Fatalf("load of missing file should create it, got error: %v", err)
	}
	if len(tasks) != 0 {
		t.Errorf("expected empty store, got %d tasks", len(tasks))
	}
}

func TestSaveLoad_RoundTrip(t *testing.T) {
	store := newTestStore(t)

	tasks := []Task{
		{
			ID:           "1",
			Title:        "Ship the report, with commas",
			Priority:     PriorityP1,
			Status:       StatusTodo,
			DueDate:      "2024-04-01",
			CreatedDate:  "2024-03-15",
			Person:       "Dana",
			WaitingOn:    "legal review",
			FollowUpDate: "2024-03-20",
			Notes:        "multi word notes with \"quotes\"",
		},
		{
			ID:          "2",
			Title:       "Second task",
			Priority:    PriorityP3,
			Status:      StatusWaiting,
			CreatedDate: "2024-03-16",
		},
		{
			ID:          "note-x",
			Title:       "Non-numeric id survives",
			Priority:    PriorityP2,
			Status:      StatusDone,
			CreatedDate: "2024-03-17",
		},
	}

	if err := store.Save(tasks); err != nil {
		t.Fatalf("failed to save: %v", err)
	}
	loaded, err := store.Load()
	if err != nil {
		t.Fatalf("failed to load: %v", err)
	}

	if !reflect.DeepEqual(tasks, loaded) {
		t.Errorf("round trip mismatch:\nsaved:  %+v\nloaded: %+v", tasks, loaded)
	}
}

func TestSave_ReplacesSnapshot(t *testing.T) {
	store := newTestStore(t)

	if err := store.Save([]Task{{ID: "1", Title: "old"}, {ID: "2", Title: "older"}}); err != nil {
		t.Fatalf("failed to save: %v", err)
	}
	if err := store.Save([]Task{{ID: "9", Title: "new"}}); err != nil {
		t.Fatalf("failed to save: %v", err)
	}

	loaded, err := store.Load()
	if err != nil {
		t.Fatalf("failed to load: %v", err)
	}
	if len(loaded) != 1 || loaded[0].ID != "9" {
		t.Errorf("expected full replace, got %+v", loaded)
	}
}

func TestLoad_WrongHeaderIsStorageError(t *testing.T) {
	store := newTestStore(t)

	content := "id,name,weight\n1,foo,12\n"
	if err := os.WriteFile(store.Path(), []byte(content), 0644); err != nil {
		t.Fatalf("failed to seed file: %v", err)
	}

	_, err := store.Load()
	var storageErr *StorageError
	if !errors.As(err, &storageErr) {
		t.Fatalf("expected StorageError, got %v", err)
	}
}

func TestLoad_MalformedRowIsStorageError(t *testing.T) {
	store := newTestStore(t)

	content := "id,title,priority,status,due_date,created_date,person,waiting_on,follow_up_date,notes\n" +
		"1,only,three\n"
	if err := os.WriteFile(store.Path(), []byte(content), 0644); err != nil {
		t.Fatalf("failed to seed file: %v", err)
	}

	_, err := store.Load()
	var storageErr *StorageError
	if !errors.As(err, &storageErr) {
		t.Fatalf("expected StorageError, got %v", err)
	}
}

func TestLoad_EmptyFileIsStorageError(t *testing.T) {
	store := newTestStore(t)

	if err := os.WriteFile(store.Path(), nil, 0644); err != nil {
		t.Fatalf("failed to seed file: %v", err)
	}

	_, err := store.Load()
	var storageErr *StorageError
	if !errors.As(err, &storageErr) {
		t.Fatalf("expected StorageError for headerless file, got %v", err)
	}
}

func TestLockUnlock(t *testing.T) {
	store := newTestStore(t)

	if err := store.Lock(); err != nil {
		t.Fatalf("failed to lock: %v", err)
	}
	if err := store.Unlock(); err != nil {
		t.Fatalf("failed to unlock: %v", err)
	}
}
