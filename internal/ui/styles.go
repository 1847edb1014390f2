package ui

import "github.com/charmbracelet/lipgloss"

// Soft palette, same register as the rest of the terminal output.
var (
	titleStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#fdba74")).
			Bold(true)

	tabStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#71717a")).
			Padding(0, 1)

	tabActiveStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#fdba74")).
			Bold(true).
			Padding(0, 1)

	headerStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#bbf7d0")).
			Bold(true)

	primaryStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#d4d4d8"))

	secondaryStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#71717a"))

	cursorStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#fdba74"))

	checkedStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#52525b")).
			Strikethrough(true)

	urgentStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#fca5a5")).
			Bold(true)

	noticeStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#bae6fd"))

	timerStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#fde68a"))

	hintBarStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#52525b"))

	slotEmptyStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#3f3f46")).
			Italic(true)
)
