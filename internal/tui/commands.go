package tui

import (
	"fmt"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"workflow/internal/logger"
	"workflow/internal/task"
)

// Command builders. Async operations capture every model value they need
// before returning the closure, so later model updates cannot change what
// the closure sees.

type summaryLoadedMsg struct {
	summary *task.Summary
	err     error
}

type taskMutatedMsg struct {
	info string
}

type actionFailedMsg struct {
	err error
}

type fileChangedMsg struct{}

// loadSummary recomputes the dashboard aggregate for today
func (m *Model) loadSummary() tea.Cmd {
	capturedService := m.service

	return func() tea.Msg {
		summary, err := capturedService.Summary(time.Now())
		return summaryLoadedMsg{summary: summary, err: err}
	}
}

// addTask creates a task from submitted form values
func (m *Model) addTask(values map[string]string) tea.Cmd {
	capturedService := m.service
	in := task.AddInput{
		Title:    values["title"],
		Priority: task.Priority(values["priority"]),
		Status:   task.Status(values["status"]),
		DueDate:  values["due_date"],
		Person:   values["person"],
		FollowUp: values["follow_up_date"],
		Notes:    values["notes"],
	}

	return func() tea.Msg {
		t, err := capturedService.Add(in)
		if err != nil {
			return actionFailedMsg{err: err}
		}
		logger.Debug("tui: added task", "id", t.ID)
		return taskMutatedMsg{info: fmt.Sprintf("Added task #%s", t.ID)}
	}
}

// markDone marks the task with the captured id as done
func (m *Model) markDone(id string) tea.Cmd {
	capturedService := m.service
	capturedID := id

	return func() tea.Msg {
		ok, err := capturedService.MarkDone(capturedID)
		if err != nil {
			return actionFailedMsg{err: err}
		}
		if !ok {
			return actionFailedMsg{err: fmt.Errorf("task %s not found", capturedID)}
		}
		return taskMutatedMsg{info: fmt.Sprintf("Marked task #%s done", capturedID)}
	}
}

// deleteTask removes the task with the captured id
func (m *Model) deleteTask(id string) tea.Cmd {
	capturedService := m.service
	capturedID := id

	return func() tea.Msg {
		ok, err := capturedService.Delete(capturedID)
		if err != nil {
			return actionFailedMsg{err: err}
		}
		if !ok {
			return actionFailedMsg{err: fmt.Errorf("task %s not found", capturedID)}
		}
		return taskMutatedMsg{info: fmt.Sprintf("Deleted task #%s", capturedID)}
	}
}

// waitForFileChange blocks on the watcher until another process rewrites
// the data file
func (m *Model) waitForFileChange() tea.Cmd {
	capturedWatcher := m.watcher

	return func() tea.Msg {
		if _, ok := <-capturedWatcher.Changes(); !ok {
			return nil
		}
		return fileChangedMsg{}
	}
}
