package components

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"workflow/internal/task"
)

var (
	tableHeaderStyle = lipgloss.NewStyle().
				Foreground(lipgloss.Color("243")).
				Bold(true)

	tableRowStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("252"))

	tableSelectedStyle = lipgloss.NewStyle().
				Background(lipgloss.Color("240")).
				Foreground(lipgloss.Color("15"))

	tableEmptyStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("244")).
			Italic(true)
)

// TaskTable renders a task list as rows with a movable cursor
type TaskTable struct {
	tasks  []task.Task
	cursor int
}

// NewTaskTable creates an empty task table
func NewTaskTable() *TaskTable {
	return &TaskTable{}
}

// SetTasks replaces the displayed tasks, clamping the cursor
func (tt *TaskTable) SetTasks(tasks []task.Task) {
	tt.tasks = tasks
	if tt.cursor >= len(tasks) {
		tt.cursor = len(tasks) - 1
	}
	if tt.cursor < 0 {
		tt.cursor = 0
	}
}

// Selected returns the task under the cursor, or nil when empty
func (tt *TaskTable) Selected() *task.Task {
	if len(tt.tasks) == 0 {
		return nil
	}
	return &tt.tasks[tt.cursor]
}

// MoveUp moves the cursor one row up
func (tt *TaskTable) MoveUp() {
	if tt.cursor > 0 {
		tt.cursor--
	}
}

// MoveDown moves the cursor one row down
func (tt *TaskTable) MoveDown() {
	if tt.cursor < len(tt.tasks)-1 {
		tt.cursor++
	}
}

// View renders the table
func (tt *TaskTable) View() string {
	var sb strings.Builder

	sb.WriteString(tableHeaderStyle.Render(formatRow("ID", "PRI", "DUE", "TITLE", "PERSON")))
	sb.WriteString("\n")

	if len(tt.tasks) == 0 {
		sb.WriteString(tableEmptyStyle.Render("No tasks in this view."))
		sb.WriteString("\n")
		return sb.String()
	}

	for i, t := range tt.tasks {
		line := formatRow(t.ID, string(t.Priority), orDash(t.DueDate), t.Title, orDash(t.Person))
		if i == tt.cursor {
			line = tableSelectedStyle.Render(line)
		} else {
			line = tableRowStyle.Render(line)
		}
		sb.WriteString(line)
		sb.WriteString("\n")
	}

	return sb.String()
}

func formatRow(id, pri, due, title, person string) string {
	return fmt.Sprintf("%-4s %-4s %-11s %-40s %s", id, pri, due, truncate(title, 40), person)
}

func orDash(s string) string {
	if s == "" {
		return "-"
	}
	return s
}

func truncate(s string, max int) string {
	if len(s) <= max {
		return s
	}
	return s[:max-1] + "…"
}
