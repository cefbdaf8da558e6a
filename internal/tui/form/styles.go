package form

import (
	"github.com/charmbracelet/lipgloss"
)

var (
	primaryColor = lipgloss.Color("99")  // Purple
	errorColor   = lipgloss.Color("196") // Red
	mutedColor   = lipgloss.Color("245") // Gray
	accentColor  = lipgloss.Color("212") // Pink

	titleStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(primaryColor).
			MarginBottom(1)

	labelStyle = lipgloss.NewStyle().
			Foreground(mutedColor).
			Bold(true)

	focusedLabelStyle = lipgloss.NewStyle().
				Foreground(accentColor).
				Bold(true)

	promptStyle = lipgloss.NewStyle().
			Foreground(primaryColor)

	errorStyle = lipgloss.NewStyle().
			Foreground(errorColor)

	hintStyle = lipgloss.NewStyle().
			Foreground(mutedColor).
			Italic(true)

	modeChipStyle = lipgloss.NewStyle().
			Foreground(mutedColor).
			Padding(0, 1)

	modeChipSelectedStyle = lipgloss.NewStyle().
				Foreground(lipgloss.Color("231")).
				Background(primaryColor).
				Bold(true).
				Padding(0, 1)

	footerStyle = lipgloss.NewStyle().
			Foreground(mutedColor).
			MarginTop(1)
)
