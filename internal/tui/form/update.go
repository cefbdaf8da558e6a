package form

import (
	tea "github.com/charmbracelet/bubbletea"

	"github.com/swatchkit/swatch/internal/palette"
)

// Update handles incoming messages and updates the model.
func (m Model) Update(msg tea.Msg) (Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		return m, nil

	case tea.KeyMsg:
		return m.handleKey(msg)
	}

	return m.updateFocusedInput(msg)
}

func (m Model) handleKey(msg tea.KeyMsg) (Model, tea.Cmd) {
	switch msg.String() {
	case "esc":
		m.done = true
		return m, m.cancelCmd()

	case "tab", "down":
		m.focus = (m.focus + 1) % m.fieldCount()
		m.applyFocus()
		return m, nil

	case "shift+tab", "up":
		m.focus--
		if m.focus < 0 {
			m.focus = m.fieldCount() - 1
		}
		m.applyFocus()
		return m, nil

	case "enter":
		if m.focus == m.fieldCount()-1 {
			return m.submit()
		}
		m.focus++
		m.applyFocus()
		return m, nil

	case "ctrl+s":
		return m.submit()

	case "ctrl+n":
		if len(m.colors) < maxSlotCount {
			m.colors = append(m.colors, newInput("#rrggbb, rgb(...), or rgba(...)", 40))
			m.focus = focusColors + len(m.colors) - 1
			m.applyFocus()
		}
		return m, nil

	case "ctrl+d":
		// Drop the last color slot; at least one slot always remains.
		if len(m.colors) > 1 {
			delete(m.fieldErrors, palette.ColorField(len(m.colors)))
			m.colors = m.colors[:len(m.colors)-1]
			if m.focus >= focusColors+len(m.colors) {
				m.focus = focusColors + len(m.colors) - 1
			}
			m.applyFocus()
		}
		return m, nil
	}

	if m.focus == focusMode {
		switch msg.String() {
		case "left", "right", " ", "l", "d":
			m.mode = m.toggledMode(msg.String())
			delete(m.fieldErrors, palette.FieldMode)
			return m, nil
		}
		return m, nil
	}

	return m.updateFocusedInput(msg)
}

func (m Model) toggledMode(key string) palette.Mode {
	switch key {
	case "l":
		return palette.ModeLight
	case "d":
		return palette.ModeDark
	}
	if m.mode == palette.ModeLight {
		return palette.ModeDark
	}
	return palette.ModeLight
}

func (m Model) updateFocusedInput(msg tea.Msg) (Model, tea.Cmd) {
	var cmd tea.Cmd

	switch {
	case m.focus == focusName:
		m.name, cmd = m.name.Update(msg)
		delete(m.fieldErrors, palette.FieldName)
	case m.focus == focusDescription:
		m.description, cmd = m.description.Update(msg)
		delete(m.fieldErrors, palette.FieldDescription)
	case m.focus == focusKeywords:
		m.keywords, cmd = m.keywords.Update(msg)
	case m.focus >= focusColors:
		slot := m.focus - focusColors
		m.colors[slot], cmd = m.colors[slot].Update(msg)
		delete(m.fieldErrors, palette.ColorField(slot+1))
	}

	return m, cmd
}

func (m Model) submit() (Model, tea.Cmd) {
	fields := m.Fields()

	if m.validate != nil {
		if msgs := m.validate(fields, m.SlotCount()); len(msgs) > 0 {
			m.fieldErrors = msgs
			m.focusFirstError()
			return m, nil
		}
	}

	m.done = true
	return m, m.submitCmd(fields)
}

func (m *Model) focusFirstError() {
	order := []string{palette.FieldName, palette.FieldDescription, palette.FieldMode}
	for i := range m.colors {
		order = append(order, palette.ColorField(i+1))
	}
	for _, field := range order {
		if _, ok := m.fieldErrors[field]; ok {
			m.focusField(field)
			m.applyFocus()
			return
		}
	}
}

func (m Model) submitCmd(fields map[string]string) tea.Cmd {
	msg := SubmittedMsg{
		Fields:    fields,
		SlotCount: m.SlotCount(),
		ReplaceID: m.replaceID,
		DraftKey:  m.draftKey,
	}
	return func() tea.Msg { return msg }
}

func (m Model) cancelCmd() tea.Cmd {
	msg := CancelledMsg{
		Fields:    m.Fields(),
		SlotCount: m.SlotCount(),
		DraftKey:  m.draftKey,
	}
	return func() tea.Msg { return msg }
}
