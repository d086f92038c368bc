package cli

import (
	"github.com/charmbracelet/lipgloss"

	"habitly/internal/status"
)

var (
	successStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("#22c55e"))
	failureStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("#ef4444"))
	noDataStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("243"))
	beforeStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("236"))

	headerStyle = lipgloss.NewStyle().Bold(true)
	todayStyle  = lipgloss.NewStyle().Bold(true).Underline(true)
	mutedStyle  = lipgloss.NewStyle().Faint(true)

	barFilled = lipgloss.NewStyle().Foreground(lipgloss.Color("#22c55e")).Render("█")
	barEmpty  = mutedStyle.Render("░")
)

func styleFor(st status.Status) lipgloss.Style {
	switch st {
	case status.Success:
		return successStyle
	case status.Failure:
		return failureStyle
	case status.BeforeCreation:
		return beforeStyle
	default:
		return noDataStyle
	}
}
