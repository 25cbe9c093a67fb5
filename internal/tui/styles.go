package tui

import "github.com/charmbracelet/lipgloss"

var (
	appStyle      = lipgloss.NewStyle().Padding(1, 2)
	titleStyle    = lipgloss.NewStyle().Bold(true)
	subtitleStyle = lipgloss.NewStyle().Bold(true).MarginTop(1)
	helpStyle     = lipgloss.NewStyle().Faint(true)
	versionStyle  = lipgloss.NewStyle().Faint(true)
	selectedStyle = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("12"))
	statusStyle   = lipgloss.NewStyle().Faint(true).Italic(true)

	noticeStyle = lipgloss.NewStyle().
			Border(lipgloss.NormalBorder()).
			Padding(0, 1).
			MarginTop(1)
	infoStyle  = noticeStyle.BorderForeground(lipgloss.Color("2")).Foreground(lipgloss.Color("2"))
	errorStyle = noticeStyle.BorderForeground(lipgloss.Color("1")).Foreground(lipgloss.Color("1"))

	overlayBoxStyle = lipgloss.NewStyle().Border(lipgloss.RoundedBorder()).Padding(1, 2).MarginTop(1)
)
