package components

import (
	"github.com/charmbracelet/lipgloss"
)

var (
	statusBarStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("241")).
			Background(lipgloss.Color("236")).
			Padding(0, 1)

	bannerInfoStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("40")).
			Background(lipgloss.Color("236")).
			Padding(0, 1)

	bannerErrorStyle = lipgloss.NewStyle().
				Foreground(lipgloss.Color("196")).
				Background(lipgloss.Color("236")).
				Padding(0, 1)
)

// StatusBar shows key hints and, when set, an inline success/error banner
type StatusBar struct {
	width   int
	message string
	isError bool
}

// NewStatusBar creates a new status bar
func NewStatusBar() *StatusBar {
	return &StatusBar{}
}

// SetWidth sets the width of the status bar
func (sb *StatusBar) SetWidth(width int) {
	sb.width = width
}

// SetMessage shows a success banner in place of the key hints
func (sb *StatusBar) SetMessage(msg string) {
	sb.message = msg
	sb.isError = false
}

// SetError shows an error banner in place of the key hints
func (sb *StatusBar) SetError(msg string) {
	sb.message = msg
	sb.isError = true
}

// ClearMessage restores the key hints
func (sb *StatusBar) ClearMessage() {
	sb.message = ""
	sb.isError = false
}

// View renders the status bar
func (sb *StatusBar) View() string {
	content := "q:quit a:add d:done x:delete j/k:move tab:view r:refresh"
	style := statusBarStyle

	if sb.message != "" {
		content = sb.message
		style = bannerInfoStyle
		if sb.isError {
			style = bannerErrorStyle
		}
	}

	if sb.width > 7 && len(content) > sb.width-2 {
		content = content[:sb.width-5] + "..."
	}

	return style.Width(sb.width).Render(content)
}
