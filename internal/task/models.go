package task

import (
	"strconv"
	"time"
)

// Status represents the status of a task
type Status string

const (
	StatusTodo       Status = "todo"
	StatusInProgress Status = "in_progress"
	StatusWaiting    Status = "waiting"
	StatusDone       Status = "done"
)

// Priority represents the priority of a task
type Priority string

const (
	PriorityP1 Priority = "P1"
	PriorityP2 Priority = "P2"
	PriorityP3 Priority = "P3"
)

// DateLayout is the on-disk date format for all task date fields
const DateLayout = "2006-01-02"

// Statuses lists the accepted status values in display order
func Statuses() []Status {
	return []Status{StatusTodo, StatusInProgress, StatusWaiting, StatusDone}
}

// Priorities lists the accepted priority values in display order
func Priorities() []Priority {
	return []Priority{PriorityP1, PriorityP2, PriorityP3}
}

// ValidStatus reports whether s is one of the accepted status values
func ValidStatus(s string) bool {
	switch Status(s) {
	case StatusTodo, StatusInProgress, StatusWaiting, StatusDone:
		return true
	}
	return false
}

// ValidPriority reports whether p is one of the accepted priority values
func ValidPriority(p string) bool {
	switch Priority(p) {
	case PriorityP1, PriorityP2, PriorityP3:
		return true
	}
	return false
}

// Task represents a single tracked task
// Every field is stored as a string in the backing CSV file; date fields
// hold either "" or a YYYY-MM-DD date
type Task struct {
	ID           string
	Title        string
	Priority     Priority
	Status       Status
	DueDate      string
	CreatedDate  string
	Person       string
	WaitingOn    string
	FollowUpDate string
	Notes        string
}

// IsOpen reports whether the task still needs attention
func (t Task) IsOpen() bool {
	return t.Status != StatusDone
}

// ParseDate parses a YYYY-MM-DD date field. It returns ok=false for an
// empty string and for anything that is not a valid calendar date; it
// never returns an error
func ParseDate(value string) (time.Time, bool) {
	if value == "" {
		return time.Time{}, false
	}

	parsed, err := time.Parse(DateLayout, value)
	if err != nil {
		return time.Time{}, false
	}

	return parsed, true
}

// NextID returns the id to assign to the next task: one more than the
// largest numeric id in the collection, or 1 when the collection is empty
// or holds no numeric ids. Non-numeric ids are skipped, not rejected
func NextID(tasks []Task) int {
	max := 0
	for _, t := range tasks {
		if !allDigits(t.ID) {
			continue
		}
		n, err := strconv.Atoi(t.ID)
		if err != nil {
			continue
		}
		if n > max {
			max = n
		}
	}
	return max + 1
}

func allDigits(s string) bool {
	if s == "" {
		return false
	}
	for _, r := range s {
		if r < '0' || r > '9' {
			return false
		}
	}
	return true
}
