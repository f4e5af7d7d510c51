package components

import (
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newAddForm() *Form {
	return NewForm("Add a task").
		AddField(FormField{Label: "Title", Key: "title", Type: FieldTypeText, Required: true}).
		AddField(FormField{
			Label:         "Priority",
			Key:           "priority",
			Type:          FieldTypeSelect,
			Options:       []string{"P1", "P2", "P3"},
			DefaultOption: 1,
		}).
		AddField(FormField{Label: "Due date", Key: "due_date", Type: FieldTypeDate})
}

func typeText(f *Form, text string) *Form {
	for _, r := range text {
		f, _ = f.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{r}})
	}
	return f
}

func TestForm_ShowResetsState(t *testing.T) {
	f := newAddForm()
	f.Show()

	assert.True(t, f.IsVisible())
	assert.Equal(t, 0, f.focusIndex)

	values := f.GetValues()
	assert.Equal(t, "", values["title"])
	assert.Equal(t, "P2", values["priority"], "select resets to its default option")
}

func TestForm_SubmitRequiresTitle(t *testing.T) {
	f := newAddForm()
	f.Show()

	f, cmd := f.Update(tea.KeyMsg{Type: tea.KeyEnter})
	assert.Nil(t, cmd, "submit with empty title must not emit a message")
	assert.Contains(t, f.errors, "title")
	assert.True(t, f.IsVisible(), "form stays open on validation failure")
}

func TestForm_SubmitEmitsValues(t *testing.T) {
	f := newAddForm()
	f.Show()
	f = typeText(f, "Ship the report")

	f, cmd := f.Update(tea.KeyMsg{Type: tea.KeyEnter})
	require.NotNil(t, cmd)

	msg := cmd()
	submit, ok := msg.(FormSubmitMsg)
	require.True(t, ok, "expected FormSubmitMsg, got %T", msg)
	assert.Equal(t, "Ship the report", submit.Result.Values["title"])
	assert.Equal(t, "P2", submit.Result.Values["priority"])
	assert.False(t, f.IsVisible(), "form closes after submit")
}

func TestForm_InvalidDateBlocksSubmit(t *testing.T) {
	f := newAddForm()
	f.Show()
	f = typeText(f, "Has a bad date")

	// Tab past the select to the date field and type an invalid date
	f, _ = f.Update(tea.KeyMsg{Type: tea.KeyTab})
	f, _ = f.Update(tea.KeyMsg{Type: tea.KeyTab})
	f = typeText(f, "2024-02-30")

	f, cmd := f.Update(tea.KeyMsg{Type: tea.KeyEnter})
	assert.Nil(t, cmd)
	assert.Contains(t, f.errors, "due_date")
}

func TestForm_SelectCyclesWithArrows(t *testing.T) {
	f := newAddForm()
	f.Show()

	// Move focus to the priority select
	f, _ = f.Update(tea.KeyMsg{Type: tea.KeyTab})

	f, _ = f.Update(tea.KeyMsg{Type: tea.KeyRight})
	assert.Equal(t, "P3", f.GetValues()["priority"])

	f, _ = f.Update(tea.KeyMsg{Type: tea.KeyRight})
	assert.Equal(t, "P1", f.GetValues()["priority"], "cycling wraps around")

	f, _ = f.Update(tea.KeyMsg{Type: tea.KeyLeft})
	assert.Equal(t, "P3", f.GetValues()["priority"])
}

func TestForm_EscCancels(t *testing.T) {
	f := newAddForm()
	f.Show()

	f, cmd := f.Update(tea.KeyMsg{Type: tea.KeyEsc})
	require.NotNil(t, cmd)

	_, ok := cmd().(FormCancelMsg)
	assert.True(t, ok)
	assert.False(t, f.IsVisible())
}

func TestForm_HiddenFormIgnoresInput(t *testing.T) {
	f := newAddForm()

	f, cmd := f.Update(tea.KeyMsg{Type: tea.KeyEnter})
	assert.Nil(t, cmd)
	assert.False(t, f.IsVisible())
}
