package tui

import "github.com/charmbracelet/lipgloss"

var (
	colorZero   = lipgloss.Color("42")
	colorReset  = lipgloss.Color("203")
	colorSubtle = lipgloss.Color("240")
	colorAccent = lipgloss.Color("205")

	titleStyle = lipgloss.NewStyle().
			Foreground(colorAccent).
			Bold(true)

	panelStyle = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(colorSubtle).
			Padding(0, 1)

	mutedStyle = lipgloss.NewStyle().
			Foreground(colorSubtle)

	zeroDayStyle = lipgloss.NewStyle().
			Foreground(colorZero)

	resetDayStyle = lipgloss.NewStyle().
			Foreground(colorReset)

	futureDayStyle = lipgloss.NewStyle().
			Foreground(colorSubtle).
			Faint(true)

	todayStyle = lipgloss.NewStyle().
			Bold(true).
			Underline(true)

	cursorStyle = lipgloss.NewStyle().
			Reverse(true)

	statValueStyle = lipgloss.NewStyle().
			Foreground(colorZero).
			Bold(true)

	statusBarStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("252")).
			Background(lipgloss.Color("236")).
			Padding(0, 1)
)
