package tui

import (
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"workflow/internal/config"
	"workflow/internal/logger"
	"workflow/internal/sync"
	"workflow/internal/task"
	"workflow/internal/tui/components"
)

// View selects which summary bucket the task table shows
type View int

const (
	ViewAllOpen View = iota
	ViewP1
	ViewDueToday
	ViewOverdue
	ViewWaiting
	ViewFollowupsDue
	ViewCount // Keep this last to get the count
)

// viewName returns the display name for a view
func viewName(v View) string {
	switch v {
	case ViewAllOpen:
		return "All open"
	case ViewP1:
		return "P1"
	case ViewDueToday:
		return "Due today"
	case ViewOverdue:
		return "Overdue"
	case ViewWaiting:
		return "Waiting"
	case ViewFollowupsDue:
		return "Follow-ups due"
	default:
		return "Unknown"
	}
}

var (
	titleStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("39")).
			Padding(0, 1)

	viewTabStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("243")).
			Padding(0, 1)

	viewTabActiveStyle = lipgloss.NewStyle().
				Foreground(lipgloss.Color("15")).
				Background(lipgloss.Color("39")).
				Padding(0, 1)
)

// Model represents the dashboard TUI state
type Model struct {
	service *task.Service
	watcher *sync.Watcher

	summary *task.Summary
	view    View
	width   int
	height  int

	// Components
	summaryBar *components.SummaryBar
	taskTable  *components.TaskTable
	addForm    *components.Form
	statusBar  *components.StatusBar
}

// NewModel creates the dashboard model. The file watcher is optional; the
// dashboard still works without live refresh if it cannot be created
func NewModel(service *task.Service) (*Model, error) {
	form := components.NewForm("Add a task").
		AddField(components.FormField{
			Label:       "Title",
			Key:         "title",
			Type:        components.FieldTypeText,
			Required:    true,
			Placeholder: "What is the next action?",
		}).
		AddField(components.FormField{
			Label:         "Priority",
			Key:           "priority",
			Type:          components.FieldTypeSelect,
			Options:       []string{"P1", "P2", "P3"},
			DefaultOption: 1,
		}).
		AddField(components.FormField{
			Label:   "Status",
			Key:     "status",
			Type:    components.FieldTypeSelect,
			Options: []string{"todo", "in_progress", "waiting", "done"},
		}).
		AddField(components.FormField{
			Label:       "Due date",
			Key:         "due_date",
			Type:        components.FieldTypeDate,
			Placeholder: "YYYY-MM-DD",
		}).
		AddField(components.FormField{
			Label: "Person",
			Key:   "person",
			Type:  components.FieldTypeText,
		}).
		AddField(components.FormField{
			Label:       "Follow up",
			Key:         "follow_up_date",
			Type:        components.FieldTypeDate,
			Placeholder: "YYYY-MM-DD",
		}).
		AddField(components.FormField{
			Label: "Notes",
			Key:   "notes",
			Type:  components.FieldTypeText,
		})

	m := &Model{
		service:    service,
		summaryBar: components.NewSummaryBar(),
		taskTable:  components.NewTaskTable(),
		addForm:    form,
		statusBar:  components.NewStatusBar(),
	}

	dataPath, err := config.DataFilePath()
	if err != nil {
		return nil, err
	}

	watcher, err := sync.NewWatcher(dataPath)
	if err != nil {
		logger.Warn("tui: live refresh disabled", "error", err)
	} else {
		m.watcher = watcher
	}

	return m, nil
}

// Init starts the watcher and loads the first summary
func (m *Model) Init() tea.Cmd {
	cmds := []tea.Cmd{m.loadSummary()}

	if m.watcher != nil {
		if err := m.watcher.Start(); err != nil {
			logger.Warn("tui: failed to start watcher", "error", err)
			m.watcher = nil
		} else {
			cmds = append(cmds, m.waitForFileChange())
		}
	}

	return tea.Batch(cmds...)
}

// Update handles Bubble Tea messages
func (m *Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.summaryBar.SetWidth(msg.Width)
		m.statusBar.SetWidth(msg.Width)
		m.addForm.SetWidth(min(msg.Width-4, 70))
		return m, nil

	case tea.KeyMsg:
		if m.addForm.IsVisible() {
			var cmd tea.Cmd
			m.addForm, cmd = m.addForm.Update(msg)
			return m, cmd
		}
		return m.handleKey(msg)

	case components.FormSubmitMsg:
		return m, m.addTask(msg.Result.Values)

	case components.FormCancelMsg:
		m.statusBar.ClearMessage()
		return m, nil

	case summaryLoadedMsg:
		if msg.err != nil {
			m.statusBar.SetError(msg.err.Error())
			return m, nil
		}
		m.summary = msg.summary
		m.summaryBar.SetSummary(msg.summary)
		m.refreshTable()
		return m, nil

	case taskMutatedMsg:
		m.statusBar.SetMessage(msg.info)
		return m, m.loadSummary()

	case actionFailedMsg:
		m.statusBar.SetError(msg.err.Error())
		return m, nil

	case fileChangedMsg:
		logger.Debug("tui: data file changed, reloading")
		return m, tea.Batch(m.loadSummary(), m.waitForFileChange())
	}

	return m, nil
}

// handleKey processes keys while the task table has focus
func (m *Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "q", "ctrl+c":
		if m.watcher != nil {
			m.watcher.Stop()
		}
		return m, tea.Quit

	case "a":
		m.statusBar.ClearMessage()
		return m, m.addForm.Show()

	case "tab", "right":
		m.view = (m.view + 1) % ViewCount
		m.refreshTable()
		return m, nil

	case "shift+tab", "left":
		m.view = (m.view - 1 + ViewCount) % ViewCount
		m.refreshTable()
		return m, nil

	case "j", "down":
		m.taskTable.MoveDown()
		return m, nil

	case "k", "up":
		m.taskTable.MoveUp()
		return m, nil

	case "d":
		if t := m.taskTable.Selected(); t != nil {
			return m, m.markDone(t.ID)
		}
		return m, nil

	case "x":
		if t := m.taskTable.Selected(); t != nil {
			return m, m.deleteTask(t.ID)
		}
		return m, nil

	case "r":
		return m, m.loadSummary()
	}

	return m, nil
}

// refreshTable points the table at the tasks of the current view
func (m *Model) refreshTable() {
	if m.summary == nil {
		m.taskTable.SetTasks(nil)
		return
	}

	switch m.view {
	case ViewP1:
		m.taskTable.SetTasks(m.summary.P1)
	case ViewDueToday:
		m.taskTable.SetTasks(m.summary.DueToday)
	case ViewOverdue:
		m.taskTable.SetTasks(m.summary.Overdue)
	case ViewWaiting:
		m.taskTable.SetTasks(m.summary.Waiting)
	case ViewFollowupsDue:
		m.taskTable.SetTasks(m.summary.FollowupsDue)
	default:
		m.taskTable.SetTasks(m.summary.Open)
	}
}

// View renders the dashboard
func (m *Model) View() string {
	var sb strings.Builder

	sb.WriteString(titleStyle.Render("Workflow Dashboard"))
	sb.WriteString("\n\n")
	sb.WriteString(m.summaryBar.View())
	sb.WriteString("\n\n")
	sb.WriteString(m.renderViewTabs())
	sb.WriteString("\n\n")

	if m.addForm.IsVisible() {
		sb.WriteString(m.addForm.View())
	} else {
		sb.WriteString(m.taskTable.View())
	}

	sb.WriteString("\n")
	sb.WriteString(m.statusBar.View())

	return sb.String()
}

// renderViewTabs renders the view selector row
func (m *Model) renderViewTabs() string {
	tabs := make([]string, 0, int(ViewCount))
	for v := View(0); v < ViewCount; v++ {
		style := viewTabStyle
		if v == m.view {
			style = viewTabActiveStyle
		}
		tabs = append(tabs, style.Render(viewName(v)))
	}
	return strings.Join(tabs, " ")
}
