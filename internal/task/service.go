package task

import (
	"fmt"
	"strconv"
	"strings"
	"time"

	"workflow/internal/logger"
)

// Service implements the task operations shared by the CLI and the
// dashboard. Every operation is a full load-compute-save cycle against
// the store; no state survives between calls
type Service struct {
	store Store
	now   func() time.Time
}

// NewService creates a task service on top of the given store
func NewService(store Store) *Service {
	return &Service{
		store: store,
		now:   time.Now,
	}
}

// NewServiceWithClock creates a task service with a fixed clock, for tests
func NewServiceWithClock(store Store, now func() time.Time) *Service {
	return &Service{store: store, now: now}
}

// Init makes sure the backing store exists
func (s *Service) Init() error {
	return s.store.Ensure()
}

// AddInput carries the user-supplied fields for a new task. Zero values
// fall back to the defaults (priority P2, status todo)
type AddInput struct {
	Title     string
	Priority  Priority
	Status    Status
	DueDate   string
	Person    string
	WaitingOn string
	FollowUp  string
	Notes     string
}

// Add validates the input, assigns the next sequential id, stamps the
// creation date and appends the task to the collection
func (s *Service) Add(in AddInput) (*Task, error) {
	title := strings.TrimSpace(in.Title)
	if title == "" {
		return nil, &ValidationError{Field: "title", Msg: "must not be empty"}
	}

	priority := in.Priority
	if priority == "" {
		priority = PriorityP2
	}
	status := in.Status
	if status == "" {
		status = StatusTodo
	}

	if err := s.store.Lock(); err != nil {
		return nil, err
	}
	defer s.store.Unlock()

	tasks, err := s.store.Load()
	if err != nil {
		return nil, err
	}

	t := Task{
		ID:           strconv.Itoa(NextID(tasks)),
		Title:        title,
		Priority:     priority,
		Status:       status,
		DueDate:      in.DueDate,
		CreatedDate:  s.now().Format(DateLayout),
		Person:       in.Person,
		WaitingOn:    in.WaitingOn,
		FollowUpDate: in.FollowUp,
		Notes:        in.Notes,
	}

	tasks = append(tasks, t)
	if err := s.store.Save(tasks); err != nil {
		return nil, fmt.Errorf("failed to save task: %w", err)
	}

	logger.Debug("task: added", "id", t.ID, "title", t.Title)
	return &t, nil
}

// List returns the tasks matching every provided filter, in stored order.
// Empty filter values mean no restriction
func (s *Service) List(status, priority string) ([]Task, error) {
	tasks, err := s.store.Load()
	if err != nil {
		return nil, err
	}

	if status == "" && priority == "" {
		return tasks, nil
	}

	filtered := make([]Task, 0, len(tasks))
	for _, t := range tasks {
		if status != "" && t.Status != Status(status) {
			continue
		}
		if priority != "" && t.Priority != Priority(priority) {
			continue
		}
		filtered = append(filtered, t)
	}

	return filtered, nil
}

// MarkDone sets the status of the task with the given id to done. It
// returns false, without writing, when no task matches
func (s *Service) MarkDone(id string) (bool, error) {
	if err := s.store.Lock(); err != nil {
		return false, err
	}
	defer s.store.Unlock()

	tasks, err := s.store.Load()
	if err != nil {
		return false, err
	}

	for i := range tasks {
		if tasks[i].ID == id {
			tasks[i].Status = StatusDone
			if err := s.store.Save(tasks); err != nil {
				return false, fmt.Errorf("failed to save task: %w", err)
			}
			logger.Debug("task: marked done", "id", id)
			return true, nil
		}
	}

	return false, nil
}

// Delete removes the task with the given id from the collection,
// preserving the order of the rest. It returns whether anything was
// removed; nothing is written on a miss
func (s *Service) Delete(id string) (bool, error) {
	if err := s.store.Lock(); err != nil {
		return false, err
	}
	defer s.store.Unlock()

	tasks, err := s.store.Load()
	if err != nil {
		return false, err
	}

	kept := make([]Task, 0, len(tasks))
	for _, t := range tasks {
		if t.ID != id {
			kept = append(kept, t)
		}
	}

	if len(kept) == len(tasks) {
		return false, nil
	}

	if err := s.store.Save(kept); err != nil {
		return false, fmt.Errorf("failed to save tasks: %w", err)
	}

	logger.Debug("task: deleted", "id", id)
	return true, nil
}

// Summary aggregates the open tasks into the dashboard buckets for the
// given day. Tasks whose relevant date field is empty or unparseable are
// left out of the date buckets
type Summary struct {
	Open         []Task
	P1           []Task
	DueToday     []Task
	Overdue      []Task
	Waiting      []Task
	FollowupsDue []Task
}

// Summary computes the dashboard aggregate over tasks whose status is not
// done, relative to the given day
func (s *Service) Summary(today time.Time) (*Summary, error) {
	tasks, err := s.store.Load()
	if err != nil {
		return nil, err
	}

	// Normalize to a calendar day in UTC so comparisons line up with the
	// UTC midnights ParseDate produces
	day := time.Date(today.Year(), today.Month(), today.Day(), 0, 0, 0, 0, time.UTC)
	sum := &Summary{}

	for _, t := range tasks {
		if !t.IsOpen() {
			continue
		}
		sum.Open = append(sum.Open, t)

		if t.Priority == PriorityP1 {
			sum.P1 = append(sum.P1, t)
		}
		if t.Status == StatusWaiting {
			sum.Waiting = append(sum.Waiting, t)
		}
		if due, ok := ParseDate(t.DueDate); ok {
			if due.Equal(day) {
				sum.DueToday = append(sum.DueToday, t)
			} else if due.Before(day) {
				sum.Overdue = append(sum.Overdue, t)
			}
		}
		if follow, ok := ParseDate(t.FollowUpDate); ok && !follow.After(day) {
			sum.FollowupsDue = append(sum.FollowupsDue, t)
		}
	}

	return sum, nil
}
