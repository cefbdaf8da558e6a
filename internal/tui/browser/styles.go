package browser

import (
	"github.com/charmbracelet/lipgloss"

	"github.com/swatchkit/swatch/internal/palette"
)

var (
	// Colors
	primaryColor    = lipgloss.Color("99")  // Purple
	successColor    = lipgloss.Color("42")  // Green
	errorColor      = lipgloss.Color("196") // Red
	mutedColor      = lipgloss.Color("245") // Gray
	accentColor     = lipgloss.Color("212") // Pink
	backgroundColor = lipgloss.Color("235") // Dark gray

	titleStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(primaryColor).
			PaddingLeft(2).
			PaddingRight(2).
			MarginBottom(1)

	itemStyle = lipgloss.NewStyle().
			PaddingLeft(2).
			PaddingRight(2)

	selectedItemStyle = lipgloss.NewStyle().
				PaddingLeft(2).
				PaddingRight(2).
				Foreground(accentColor).
				Bold(true).
				BorderStyle(lipgloss.NormalBorder()).
				BorderLeft(true).
				BorderForeground(primaryColor)

	modeLightStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("229"))

	modeDarkStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("63"))

	keywordStyle = lipgloss.NewStyle().
			Foreground(mutedColor).
			Italic(true)

	statusLineStyle = lipgloss.NewStyle().
			Foreground(successColor).
			PaddingLeft(2)

	errorLineStyle = lipgloss.NewStyle().
			Foreground(errorColor).
			Bold(true).
			PaddingLeft(2)

	footerStyle = lipgloss.NewStyle().
			Foreground(mutedColor).
			BorderStyle(lipgloss.NormalBorder()).
			BorderTop(true).
			BorderForeground(mutedColor).
			PaddingTop(1).
			MarginTop(1)

	detailLabelStyle = lipgloss.NewStyle().
				Foreground(mutedColor).
				Bold(true).
				Width(14)

	detailValueStyle = lipgloss.NewStyle().
				Foreground(lipgloss.Color("252"))

	detailSectionStyle = lipgloss.NewStyle().
				BorderStyle(lipgloss.NormalBorder()).
				BorderForeground(mutedColor).
				Padding(1, 2).
				MarginTop(1)

	emptyStateStyle = lipgloss.NewStyle().
			Foreground(mutedColor).
			Italic(true).
			PaddingTop(2).
			PaddingBottom(2).
			PaddingLeft(2)

	confirmBoxStyle = lipgloss.NewStyle().
			BorderStyle(lipgloss.ThickBorder()).
			BorderForeground(errorColor).
			Padding(1, 4).
			Background(backgroundColor)

	helpBoxStyle = lipgloss.NewStyle().
			BorderStyle(lipgloss.RoundedBorder()).
			BorderForeground(primaryColor).
			Padding(1, 4)

	helpKeyStyle = lipgloss.NewStyle().
			Foreground(accentColor).
			Bold(true).
			Width(12)

	helpDescStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("252"))
)

// modeStyle returns the style for rendering a palette mode tag.
func modeStyle(m palette.Mode) lipgloss.Style {
	if m == palette.ModeDark {
		return modeDarkStyle
	}
	return modeLightStyle
}
