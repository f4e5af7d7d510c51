package components

import (
	"fmt"

	"github.com/charmbracelet/lipgloss"

	"workflow/internal/task"
)

var (
	summaryStyle      = lipgloss.NewStyle().Foreground(lipgloss.Color("241")).Padding(0, 1)
	summaryLabelStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("243"))
	summaryValueStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("39"))
	summaryAlertStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("196")).Bold(true)
)

// SummaryBar renders the dashboard counters in one row
type SummaryBar struct {
	summary *task.Summary
	width   int
}

// NewSummaryBar creates an empty summary bar
func NewSummaryBar() *SummaryBar {
	return &SummaryBar{}
}

// SetSummary replaces the displayed aggregate
func (sb *SummaryBar) SetSummary(summary *task.Summary) {
	sb.summary = summary
}

// SetWidth sets the width of the bar
func (sb *SummaryBar) SetWidth(width int) {
	sb.width = width
}

// View renders the counter row
func (sb *SummaryBar) View() string {
	if sb.summary == nil {
		return summaryStyle.Render("Loading…")
	}

	s := sb.summary
	overdueStyle := summaryValueStyle
	if len(s.Overdue) > 0 {
		overdueStyle = summaryAlertStyle
	}

	content := counter("Open", len(s.Open), summaryValueStyle) + "  " +
		counter("P1", len(s.P1), summaryValueStyle) + "  " +
		counter("Due today", len(s.DueToday), summaryValueStyle) + "  " +
		counter("Overdue", len(s.Overdue), overdueStyle) + "  " +
		counter("Waiting", len(s.Waiting), summaryValueStyle)

	return summaryStyle.Render(content)
}

func counter(label string, n int, style lipgloss.Style) string {
	return summaryLabelStyle.Render(label+": ") + style.Render(fmt.Sprintf("%d", n))
}
