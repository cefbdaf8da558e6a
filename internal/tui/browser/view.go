package browser

import (
	"fmt"
	"strings"
	"time"

	"github.com/charmbracelet/lipgloss"

	"github.com/swatchkit/swatch/internal/palette"
)

// View implements tea.Model.
func (m Model) View() string {
	switch m.viewMode {
	case ViewForm:
		return m.form.View()
	case ViewDetail:
		return m.detailView()
	case ViewConfirm:
		return m.confirmView()
	case ViewHelp:
		return m.helpView()
	default:
		return m.listView()
	}
}

func (m Model) listView() string {
	var b strings.Builder

	b.WriteString(titleStyle.Render("Swatch"))
	b.WriteString("\n")

	if m.filtering {
		b.WriteString(itemStyle.Render("Filter: " + m.filter.View()))
		b.WriteString("\n\n")
	} else if m.query != "" {
		b.WriteString(itemStyle.Render(keywordStyle.Render("filter: " + m.query)))
		b.WriteString("\n\n")
	}

	visible := m.visible()
	if len(visible) == 0 {
		if m.query != "" {
			b.WriteString(emptyStateStyle.Render("No palettes match \"" + m.query + "\"."))
		} else {
			b.WriteString(emptyStateStyle.Render("No palettes yet. Press n to create one."))
		}
		b.WriteString("\n")
	} else {
		for i, p := range visible {
			b.WriteString(m.renderRow(p, i == m.cursor))
			b.WriteString("\n")
		}
	}

	b.WriteString(m.renderStatus())
	b.WriteString(footerStyle.Render("↑/↓ navigate • enter details • n new • e edit • d duplicate • x delete • / filter • ? help • q quit"))
	return b.String()
}

func (m Model) renderRow(p palette.Palette, selected bool) string {
	style := itemStyle
	if selected {
		style = selectedItemStyle
	}

	line := fmt.Sprintf("%-24s %s %2d color(s)  %s  %s",
		truncate(p.Name, 24),
		modeStyle(p.Mode).Render(fmt.Sprintf("%-5s", p.Mode)),
		len(p.Colors),
		swatchStrip(p.Colors, false),
		keywordStyle.Render(formatRelative(p.CreatedAt)),
	)
	return style.Render(line)
}

func (m Model) detailView() string {
	p, ok := m.selected()
	if !ok {
		return m.listView()
	}

	var b strings.Builder
	b.WriteString(titleStyle.Render(p.Name))
	b.WriteString("\n")
	b.WriteString(itemStyle.Render(swatchStrip(p.Colors, true)))
	b.WriteString("\n")

	rows := []struct {
		label string
		value string
	}{
		{"Mode", string(p.Mode)},
		{"Description", valueOr(p.Description, "(none)")},
		{"Keywords", valueOr(strings.Join(p.Keywords, ", "), "(none)")},
		{"Created", p.CreatedAt.Format(time.RFC1123)},
		{"ID", p.ID},
	}

	var section strings.Builder
	for _, row := range rows {
		section.WriteString(detailLabelStyle.Render(row.label))
		section.WriteString(detailValueStyle.Render(row.value))
		section.WriteString("\n")
	}
	section.WriteString("\n")
	section.WriteString(detailLabelStyle.Render("Colors"))
	section.WriteString("\n")
	for _, c := range p.Colors {
		section.WriteString("  ")
		section.WriteString(swatchLabel(c))
		section.WriteString("\n")
	}

	b.WriteString(detailSectionStyle.Render(strings.TrimRight(section.String(), "\n")))
	b.WriteString("\n")
	b.WriteString(m.renderStatus())
	b.WriteString(footerStyle.Render("e edit • d duplicate • x delete • esc back • q quit"))
	return b.String()
}

func (m Model) confirmView() string {
	box := confirmBoxStyle.Render(fmt.Sprintf(
		"Remove palette %q?\n\n%s yes   %s no",
		m.confirmName,
		helpKeyStyle.Render("y"),
		helpKeyStyle.Render("n"),
	))
	return lipgloss.Place(m.width, m.height, lipgloss.Center, lipgloss.Center, box)
}

func (m Model) helpView() string {
	bindings := []struct {
		key  string
		desc string
	}{
		{"↑/k, ↓/j", "move selection"},
		{"enter", "show palette details"},
		{"n", "create a new palette"},
		{"e", "edit the selected palette"},
		{"d", "duplicate the selected palette"},
		{"x", "delete the selected palette"},
		{"/", "filter by name or keyword"},
		{"esc", "back / clear filter"},
		{"?", "toggle this help"},
		{"q", "quit"},
	}

	var b strings.Builder
	b.WriteString(titleStyle.Render("Keyboard Shortcuts"))
	b.WriteString("\n\n")
	for _, bind := range bindings {
		b.WriteString(helpKeyStyle.Render(bind.key))
		b.WriteString(helpDescStyle.Render(bind.desc))
		b.WriteString("\n")
	}
	return helpBoxStyle.Render(strings.TrimRight(b.String(), "\n"))
}

func (m Model) renderStatus() string {
	switch {
	case m.errMsg != "":
		return errorLineStyle.Render("✗ "+m.errMsg) + "\n"
	case m.statusMsg != "":
		return statusLineStyle.Render("✓ "+m.statusMsg) + "\n"
	default:
		return ""
	}
}

// swatchStrip renders one colored block per color. Wide strips add a space
// between blocks so individual colors stay distinguishable.
func swatchStrip(colors []string, wide bool) string {
	block := "██"
	if wide {
		block = "████"
	}

	var b strings.Builder
	for i, c := range colors {
		if wide && i > 0 {
			b.WriteString(" ")
		}
		hex, ok := palette.HexString(c)
		if !ok {
			b.WriteString(block)
			continue
		}
		b.WriteString(lipgloss.NewStyle().Foreground(lipgloss.Color(hex)).Render(block))
	}
	return b.String()
}

// swatchLabel renders a color value on top of its own swatch, picking black
// or white text for contrast against the background.
func swatchLabel(value string) string {
	hex, ok := palette.HexString(value)
	if !ok {
		return detailValueStyle.Render(value)
	}

	text := lipgloss.Color("255")
	if c, ok := palette.ParseColor(value); ok {
		if l, _, _ := c.Lab(); l > 0.6 {
			text = lipgloss.Color("16")
		}
	}

	chip := lipgloss.NewStyle().
		Background(lipgloss.Color(hex)).
		Foreground(text).
		Padding(0, 1).
		Render(hex)
	return chip + " " + detailValueStyle.Render(value)
}

func truncate(s string, max int) string {
	if len(s) <= max {
		return s
	}
	if max <= 1 {
		return s[:max]
	}
	return s[:max-1] + "…"
}

func valueOr(s, fallback string) string {
	if strings.TrimSpace(s) == "" {
		return fallback
	}
	return s
}

func formatRelative(t time.Time) string {
	if t.IsZero() {
		return "unknown"
	}

	d := time.Since(t)
	switch {
	case d < time.Minute:
		return "just now"
	case d < time.Hour:
		return fmt.Sprintf("%dm ago", int(d.Minutes()))
	case d < 24*time.Hour:
		return fmt.Sprintf("%dh ago", int(d.Hours()))
	case d < 30*24*time.Hour:
		return fmt.Sprintf("%dd ago", int(d.Hours()/24))
	default:
		return t.Format("2006-01-02")
	}
}
