package task

import (
	"encoding/csv"
	"fmt"
	"os"
	"path/filepath"

	"github.com/gofrs/flock"

	"workflow/internal/logger"
)

// fieldNames is the fixed CSV schema, one column per Task field
var fieldNames = []string{
	"id",
	"title",
	"priority",
	"status",
	"due_date",
	"created_date",
	"person",
	"waiting_on",
	"follow_up_date",
	"notes",
}

// FileStore persists the task collection as a single CSV file with a
// header row. Every Save rewrites the whole file. An advisory file lock
// keeps concurrent CLI and dashboard processes from interleaving a
// load-mutate-save cycle
type FileStore struct {
	path string
	flk  *flock.Flock
}

// NewFileStore creates a FileStore backed by the CSV file at path
func NewFileStore(path string) *FileStore {
	return &FileStore{
		path: path,
		flk:  flock.New(path + ".lock"),
	}
}

// Path returns the location of the backing CSV file
func (s *FileStore) Path() string {
	return s.path
}

// Ensure creates the parent directory and a header-only CSV file if the
// backing file does not exist yet
func (s *FileStore) Ensure() error {
	if err := os.MkdirAll(filepath.Dir(s.path), 0755); err != nil {
		return fmt.Errorf("failed to create data directory: %w", err)
	}

	if _, err := os.Stat(s.path); err == nil {
		return nil
	} else if !os.IsNotExist(err) {
		return fmt.Errorf("failed to stat data file: %w", err)
	}

	logger.Debug("store: creating data file", "path", s.path)
	return s.writeAll(nil)
}

// Load reads every task from the backing file in on-disk order. A missing
// file is created empty first; a file with the wrong header or malformed
// rows yields a StorageError
func (s *FileStore) Load() ([]Task, error) {
	if err := s.Ensure(); err != nil {
		return nil, err
	}

	f, err := os.Open(s.path)
	if err != nil {
		return nil, fmt.Errorf("failed to open data file: %w", err)
	}
	defer f.Close()

	r := csv.NewReader(f)
	r.FieldsPerRecord = len(fieldNames)
	records, err := r.ReadAll()
	if err != nil {
		return nil, &StorageError{Path: s.path, Err: err}
	}

	if len(records) == 0 {
		return nil, &StorageError{Path: s.path, Err: fmt.Errorf("missing header row")}
	}
	if err := checkHeader(records[0]); err != nil {
		return nil, &StorageError{Path: s.path, Err: err}
	}

	tasks := make([]Task, 0, len(records)-1)
	for _, rec := range records[1:] {
		tasks = append(tasks, fromRecord(rec))
	}

	logger.Debug("store: loaded tasks", "path", s.path, "count", len(tasks))
	return tasks, nil
}

// Save overwrites the backing file with a header row followed by exactly
// the given tasks, in the given order
func (s *FileStore) Save(tasks []Task) error {
	if err := os.MkdirAll(filepath.Dir(s.path), 0755); err != nil {
		return fmt.Errorf("failed to create data directory: %w", err)
	}

	logger.Debug("store: saving tasks", "path", s.path, "count", len(tasks))
	return s.writeAll(tasks)
}

// Lock acquires the advisory file lock, blocking until it is available
func (s *FileStore) Lock() error {
	if err := s.flk.Lock(); err != nil {
		return fmt.Errorf("failed to lock data file: %w", err)
	}
	return nil
}

// Unlock releases the advisory file lock
func (s *FileStore) Unlock() error {
	return s.flk.Unlock()
}

func (s *FileStore) writeAll(tasks []Task) error {
	f, err := os.Create(s.path)
	if err != nil {
		return fmt.Errorf("failed to create data file: %w", err)
	}

	w := csv.NewWriter(f)
	if err := w.Write(fieldNames); err != nil {
		f.Close()
		return fmt.Errorf("failed to write header: %w", err)
	}
	for _, t := range tasks {
		if err := w.Write(toRecord(t)); err != nil {
			f.Close()
			return fmt.Errorf("failed to write task %s: %w", t.ID, err)
		}
	}

	w.Flush()
	if err := w.Error(); err != nil {
		f.Close()
		return fmt.Errorf("failed to flush data file: %w", err)
	}

	return f.Close()
}

func checkHeader(header []string) error {
	if len(header) != len(fieldNames) {
		return fmt.Errorf("expected %d columns, got %d", len(fieldNames), len(header))
	}
	for i, name := range fieldNames {
		if header[i] != name {
			return fmt.Errorf("expected column %q at position %d, got %q", name, i, header[i])
		}
	}
	return nil
}

func toRecord(t Task) []string {
	return []string{
		t.ID,
		t.Title,
		string(t.Priority),
		string(t.Status),
		t.DueDate,
		t.CreatedDate,
		t.Person,
		t.WaitingOn,
		t.FollowUpDate,
		t.Notes,
	}
}

// fromRecord assumes the record already passed the reader's column count
// check against fieldNames
func fromRecord(rec []string) Task {
	return Task{
		ID:           rec[0],
		Title:        rec[1],
		Priority:     Priority(rec[2]),
		Status:       Status(rec[3]),
		DueDate:      rec[4],
		CreatedDate:  rec[5],
		Person:       rec[6],
		WaitingOn:    rec[7],
		FollowUpDate: rec[8],
		Notes:        rec[9],
	}
}
