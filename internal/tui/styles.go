package tui

import "github.com/charmbracelet/lipgloss"

var (
	appStyle        = lipgloss.NewStyle().Padding(1, 2)
	titleStyle      = lipgloss.NewStyle().Bold(true)
	helpStyle       = lipgloss.NewStyle().Faint(true)
	errorStyle      = lipgloss.NewStyle().Bold(true)
	overlayBoxStyle = lipgloss.NewStyle().Border(lipgloss.RoundedBorder()).Padding(1, 2)

	activeTabStyle   = lipgloss.NewStyle().Bold(true).Reverse(true).Padding(0, 1)
	inactiveTabStyle = lipgloss.NewStyle().Faint(true).Padding(0, 1)
	focusLabelStyle  = lipgloss.NewStyle().Bold(true).Underline(true)

	successStyle     = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("2"))
	clientErrorStyle = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("3"))
	serverErrorStyle = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("1"))
)
