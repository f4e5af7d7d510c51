package components

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"workflow/internal/task"
)

// FormFieldType represents the type of form field
type FormFieldType int

const (
	FieldTypeText FormFieldType = iota
	FieldTypeSelect
	FieldTypeDate
)

// FormField represents a single field in a form. Text and date fields use
// a text input; select fields cycle through Options with left/right
type FormField struct {
	Label       string
	Key         string
	Type        FormFieldType
	Required    bool
	Placeholder string
	Options     []string
	// DefaultOption is the index of the option a select field resets to
	DefaultOption int
	selected      int
	textInput     textinput.Model
}

// FormResult represents the result of a submitted form
type FormResult struct {
	Values map[string]string
}

// FormSubmitMsg is sent when the form is successfully submitted
type FormSubmitMsg struct {
	Result FormResult
}

// FormCancelMsg is sent when the form is cancelled
type FormCancelMsg struct{}

var (
	formBoxStyle = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(lipgloss.Color("39")).
			Padding(1, 2)

	formTitleStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("39"))

	formLabelStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("245"))

	formLabelFocusedStyle = lipgloss.NewStyle().
				Foreground(lipgloss.Color("39")).
				Bold(true)

	formSelectStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("252"))

	formErrorStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("196")).
			Italic(true)

	formHelpStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("240"))
)

// Form is a reusable multi-field form component
type Form struct {
	title      string
	fields     []FormField
	focusIndex int
	visible    bool
	errors     map[string]string
	width      int
}

// NewForm creates a new form with the given title
func NewForm(title string) *Form {
	return &Form{
		title:  title,
		fields: make([]FormField, 0),
		errors: make(map[string]string),
		width:  60,
	}
}

// AddField adds a field to the form
func (f *Form) AddField(field FormField) *Form {
	ti := textinput.New()
	ti.Placeholder = field.Placeholder
	ti.CharLimit = 500
	ti.Width = 50

	field.textInput = ti
	f.fields = append(f.fields, field)
	return f
}

// Show displays the form, clears previous values and focuses the first field
func (f *Form) Show() tea.Cmd {
	f.visible = true
	f.errors = make(map[string]string)

	for i := range f.fields {
		f.fields[i].textInput.SetValue("")
		f.fields[i].textInput.Blur()
		f.fields[i].selected = f.fields[i].DefaultOption
	}

	f.focusIndex = 0
	if len(f.fields) > 0 && f.fields[0].Type != FieldTypeSelect {
		return f.fields[0].textInput.Focus()
	}
	return nil
}

// Hide hides the form
func (f *Form) Hide() {
	f.visible = false
	for i := range f.fields {
		f.fields[i].textInput.Blur()
	}
}

// IsVisible returns whether the form is visible
func (f *Form) IsVisible() bool {
	return f.visible
}

// SetWidth sets the width of the form
func (f *Form) SetWidth(width int) {
	f.width = width
	fieldWidth := width - 20
	if fieldWidth < 20 {
		fieldWidth = 20
	}
	for i := range f.fields {
		f.fields[i].textInput.Width = fieldWidth
	}
}

// GetValues returns the current form values keyed by field key
func (f *Form) GetValues() map[string]string {
	values := make(map[string]string)
	for _, field := range f.fields {
		if field.Type == FieldTypeSelect {
			if len(field.Options) > 0 {
				values[field.Key] = field.Options[field.selected]
			}
			continue
		}
		values[field.Key] = field.textInput.Value()
	}
	return values
}

// Update handles Bubble Tea messages
func (f *Form) Update(msg tea.Msg) (*Form, tea.Cmd) {
	if !f.visible {
		return f, nil
	}

	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch msg.Type {
		case tea.KeyEsc:
			f.Hide()
			return f, func() tea.Msg {
				return FormCancelMsg{}
			}

		case tea.KeyEnter:
			return f.handleSubmit()

		case tea.KeyTab, tea.KeyShiftTab:
			return f.handleTabNavigation(msg.Type == tea.KeyShiftTab)

		case tea.KeyLeft, tea.KeyRight:
			if f.currentField() != nil && f.currentField().Type == FieldTypeSelect {
				f.cycleOption(msg.Type == tea.KeyLeft)
				return f, nil
			}
		}
	}

	// Update the currently focused field
	if cur := f.currentField(); cur != nil && cur.Type != FieldTypeSelect {
		var cmd tea.Cmd
		f.fields[f.focusIndex].textInput, cmd = f.fields[f.focusIndex].textInput.Update(msg)
		return f, cmd
	}

	return f, nil
}

func (f *Form) currentField() *FormField {
	if f.focusIndex < 0 || f.focusIndex >= len(f.fields) {
		return nil
	}
	return &f.fields[f.focusIndex]
}

// cycleOption moves a select field to its previous or next option
func (f *Form) cycleOption(reverse bool) {
	field := f.currentField()
	if field == nil || len(field.Options) == 0 {
		return
	}

	if reverse {
		field.selected--
		if field.selected < 0 {
			field.selected = len(field.Options) - 1
		}
	} else {
		field.selected++
		if field.selected >= len(field.Options) {
			field.selected = 0
		}
	}
}

// handleTabNavigation handles Tab/Shift+Tab navigation between fields
func (f *Form) handleTabNavigation(reverse bool) (*Form, tea.Cmd) {
	if len(f.fields) == 0 {
		return f, nil
	}

	f.fields[f.focusIndex].textInput.Blur()

	if reverse {
		f.focusIndex--
		if f.focusIndex < 0 {
			f.focusIndex = len(f.fields) - 1
		}
	} else {
		f.focusIndex++
		if f.focusIndex >= len(f.fields) {
			f.focusIndex = 0
		}
	}

	if f.fields[f.focusIndex].Type == FieldTypeSelect {
		return f, nil
	}
	return f, f.fields[f.focusIndex].textInput.Focus()
}

// handleSubmit validates and submits the form
func (f *Form) handleSubmit() (*Form, tea.Cmd) {
	f.errors = make(map[string]string)
	valid := true

	for _, field := range f.fields {
		if field.Type == FieldTypeSelect {
			continue
		}
		value := field.textInput.Value()

		if field.Required && strings.TrimSpace(value) == "" {
			f.errors[field.Key] = fmt.Sprintf("%s is required", field.Label)
			valid = false
			continue
		}

		if strings.TrimSpace(value) == "" {
			continue
		}

		if field.Type == FieldTypeDate {
			if _, ok := task.ParseDate(value); !ok {
				f.errors[field.Key] = fmt.Sprintf("%s must be a YYYY-MM-DD date", field.Label)
				valid = false
			}
		}
	}

	if !valid {
		return f, nil
	}

	result := FormResult{Values: f.GetValues()}
	f.Hide()

	return f, func() tea.Msg {
		return FormSubmitMsg{Result: result}
	}
}

// View renders the form
func (f *Form) View() string {
	if !f.visible {
		return ""
	}

	var sb strings.Builder
	sb.WriteString(formTitleStyle.Render(f.title))
	sb.WriteString("\n\n")

	for i, field := range f.fields {
		label := field.Label
		if field.Required {
			label += " *"
		}

		labelStyle := formLabelStyle
		if i == f.focusIndex {
			labelStyle = formLabelFocusedStyle
		}
		sb.WriteString(labelStyle.Render(label))
		sb.WriteString("\n")

		if field.Type == FieldTypeSelect {
			sb.WriteString(formSelectStyle.Render(renderSelect(field, i == f.focusIndex)))
		} else {
			sb.WriteString(field.textInput.View())
		}
		sb.WriteString("\n")

		if msg, ok := f.errors[field.Key]; ok {
			sb.WriteString(formErrorStyle.Render(msg))
			sb.WriteString("\n")
		}
	}

	sb.WriteString("\n")
	sb.WriteString(formHelpStyle.Render("tab:next field  ←/→:change option  enter:submit  esc:cancel"))

	return formBoxStyle.Width(f.width).Render(sb.String())
}

// renderSelect renders the options of a select field with the chosen one marked
func renderSelect(field FormField, focused bool) string {
	parts := make([]string, 0, len(field.Options))
	for i, opt := range field.Options {
		if i == field.selected {
			if focused {
				parts = append(parts, "‹"+opt+"›")
			} else {
				parts = append(parts, "["+opt+"]")
			}
		} else {
			parts = append(parts, opt)
		}
	}
	return strings.Join(parts, "  ")
}
