package form

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/textinput"
	"github.com/charmbracelet/lipgloss"

	"github.com/swatchkit/swatch/internal/palette"
)

// View renders the form.
func (m Model) View() string {
	var b strings.Builder

	b.WriteString(titleStyle.Render(m.title))
	b.WriteString("\n")

	b.WriteString(m.renderInput("Name", palette.FieldName, m.name, m.focus == focusName))
	b.WriteString(m.renderInput("Description", palette.FieldDescription, m.description, m.focus == focusDescription))
	b.WriteString(m.renderModeField())
	b.WriteString(m.renderKeywordField())

	for i, c := range m.colors {
		b.WriteString(m.renderColorSlot(i+1, c))
	}

	b.WriteString(footerStyle.Render(
		"tab/shift+tab move · enter next · ctrl+s save · ctrl+n add color · ctrl+d drop color · esc cancel"))

	return b.String()
}

func (m Model) renderInput(label, field string, input textinput.Model, focused bool) string {
	var b strings.Builder

	b.WriteString(m.renderLabel(label, focused))
	b.WriteString("\n")
	b.WriteString(input.View())
	b.WriteString("\n")
	b.WriteString(m.renderFieldError(field))

	return b.String()
}

func (m Model) renderModeField() string {
	var b strings.Builder

	b.WriteString(m.renderLabel("Mode", m.focus == focusMode))
	b.WriteString("\n")

	chips := make([]string, 0, 2)
	for _, mode := range []palette.Mode{palette.ModeLight, palette.ModeDark} {
		if mode == m.mode {
			chips = append(chips, modeChipSelectedStyle.Render(mode.String()))
		} else {
			chips = append(chips, modeChipStyle.Render(mode.String()))
		}
	}
	b.WriteString(lipgloss.JoinHorizontal(lipgloss.Center, chips...))
	b.WriteString("\n")
	b.WriteString(m.renderFieldError(palette.FieldMode))

	return b.String()
}

func (m Model) renderKeywordField() string {
	var b strings.Builder

	b.WriteString(m.renderLabel("Keywords", m.focus == focusKeywords))
	b.WriteString("\n")
	b.WriteString(m.keywords.View())
	b.WriteString("\n")

	if len(m.knownKeywords) > 0 {
		b.WriteString(hintStyle.Render("known: " + strings.Join(m.knownKeywords, ", ")))
		b.WriteString("\n")
	}
	b.WriteString(hintStyle.Render("comma-separated; prefix with ! to remove from the shared set"))
	b.WriteString("\n\n")

	return b.String()
}

func (m Model) renderColorSlot(slot int, input textinput.Model) string {
	var b strings.Builder

	focused := m.focus == focusColors+slot-1
	b.WriteString(m.renderLabel(fmt.Sprintf("Color %d", slot), focused))

	if hex, ok := palette.HexString(input.Value()); ok {
		b.WriteString("  ")
		b.WriteString(lipgloss.NewStyle().Foreground(lipgloss.Color(hex)).Render("██"))
	}
	b.WriteString("\n")
	b.WriteString(input.View())
	b.WriteString("\n")
	b.WriteString(m.renderFieldError(palette.ColorField(slot)))

	return b.String()
}

func (m Model) renderLabel(label string, focused bool) string {
	if focused {
		return focusedLabelStyle.Render("› " + label)
	}
	return labelStyle.Render("  " + label)
}

func (m Model) renderFieldError(field string) string {
	if msg, ok := m.fieldErrors[field]; ok {
		return errorStyle.Render("  "+msg) + "\n\n"
	}
	return "\n"
}
