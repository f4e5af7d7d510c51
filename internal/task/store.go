package task

import "sync"

// Store is the persistence boundary for the task collection. The whole
// collection is read and written as one ordered snapshot; there is no
// per-task access path
type Store interface {
	// Ensure guarantees the backing store exists and is ready for Load.
	// It is idempotent
	Ensure() error
	// Load reads the entire collection in stored order
	Load() ([]Task, error)
	// Save replaces the entire collection with the given one
	Save(tasks []Task) error
	// Lock acquires exclusive access for a load-mutate-save cycle
	Lock() error
	// Unlock releases the access acquired by Lock
	Unlock() error
}

// MemoryStore is an in-process Store used in tests and anywhere no file
// should be touched
type MemoryStore struct {
	mu    sync.Mutex
	tasks []Task
}

// NewMemoryStore creates a MemoryStore seeded with the given tasks
func NewMemoryStore(tasks ...Task) *MemoryStore {
	s := &MemoryStore{}
	s.tasks = append(s.tasks, tasks...)
	return s
}

func (s *MemoryStore) Ensure() error {
	return nil
}

func (s *MemoryStore) Load() ([]Task, error) {
	out := make([]Task, len(s.tasks))
	copy(out, s.tasks)
	return out, nil
}

func (s *MemoryStore) Save(tasks []Task) error {
	s.tasks = make([]Task, len(tasks))
	copy(s.tasks, tasks)
	return nil
}

func (s *MemoryStore) Lock() error {
	s.mu.Lock()
	return nil
}

func (s *MemoryStore) Unlock() error {
	s.mu.Unlock()
	return nil
}
