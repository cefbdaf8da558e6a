package browser

import (
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/swatchkit/swatch/internal/app/palettes"
	"github.com/swatchkit/swatch/internal/tui/form"
)

// Update handles incoming messages and updates the model.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		if m.viewMode == ViewForm {
			m.form, _ = m.form.Update(msg)
		}
		return m, nil

	case clearStatusMsg:
		m.statusMsg = ""
		return m, nil

	case form.SubmittedMsg:
		return m.handleFormSubmit(msg)

	case form.CancelledMsg:
		return m.handleFormCancel(msg)

	case tea.KeyMsg:
		return m.handleKey(msg)
	}

	if m.viewMode == ViewForm {
		var cmd tea.Cmd
		m.form, cmd = m.form.Update(msg)
		return m, cmd
	}

	return m, nil
}

func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch m.viewMode {
	case ViewForm:
		var cmd tea.Cmd
		m.form, cmd = m.form.Update(msg)
		return m, cmd

	case ViewConfirm:
		return m.handleConfirmKey(msg)

	case ViewHelp:
		switch msg.String() {
		case "esc", "?", "q":
			m.viewMode = ViewList
		}
		return m, nil

	case ViewDetail:
		return m.handleDetailKey(msg)

	default:
		return m.handleListKey(msg)
	}
}

func (m Model) handleListKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if m.filtering {
		switch msg.String() {
		case "enter":
			m.filtering = false
			m.filter.Blur()
			return m, nil
		case "esc":
			m.filtering = false
			m.filter.Blur()
			m.filter.SetValue("")
			m.query = ""
			m.cursor = 0
			return m, nil
		default:
			var cmd tea.Cmd
			m.filter, cmd = m.filter.Update(msg)
			m.query = m.filter.Value()
			m.cursor = 0
			return m, cmd
		}
	}

	switch msg.String() {
	case "q", "ctrl+c":
		return m, tea.Quit

	case "up", "k":
		m.moveCursor(-1)
		return m, nil

	case "down", "j":
		m.moveCursor(1)
		return m, nil

	case "enter":
		if _, ok := m.selected(); ok {
			m.viewMode = ViewDetail
		}
		return m, nil

	case "/":
		m.filtering = true
		m.filter.Focus()
		return m, nil

	case "esc":
		if m.query != "" {
			m.filter.SetValue("")
			m.query = ""
			m.cursor = 0
		}
		m.errMsg = ""
		return m, nil

	case "n":
		m.openCreateForm()
		return m, m.form.Init()

	case "e":
		if p, ok := m.selected(); ok {
			m.openEditForm(p)
			return m, m.form.Init()
		}
		return m, nil

	case "d":
		return m.duplicateSelected()

	case "x", "delete":
		if p, ok := m.selected(); ok {
			m.confirmID = p.ID
			m.confirmName = p.Name
			m.viewMode = ViewConfirm
		}
		return m, nil

	case "?":
		m.viewMode = ViewHelp
		return m, nil
	}

	return m, nil
}

func (m Model) handleDetailKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "esc", "q":
		m.viewMode = ViewList
		return m, nil

	case "e":
		if p, ok := m.selected(); ok {
			m.openEditForm(p)
			return m, m.form.Init()
		}
		return m, nil

	case "d":
		return m.duplicateSelected()

	case "x", "delete":
		if p, ok := m.selected(); ok {
			m.confirmID = p.ID
			m.confirmName = p.Name
			m.viewMode = ViewConfirm
		}
		return m, nil
	}

	return m, nil
}

func (m Model) handleConfirmKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "y", "Y":
		id := m.confirmID
		m.confirmID = ""
		m.viewMode = ViewList

		if err := m.svc.Delete(id); err != nil {
			m.errMsg = err.Error()
			return m, nil
		}

		m.reload()
		m.statusMsg = "Deleted " + m.confirmName
		m.confirmName = ""
		return m, clearStatusAfter()

	case "n", "N", "esc":
		m.confirmID = ""
		m.confirmName = ""
		m.viewMode = ViewList
		return m, nil
	}

	return m, nil
}

func (m Model) duplicateSelected() (tea.Model, tea.Cmd) {
	p, ok := m.selected()
	if !ok {
		return m, nil
	}

	dup, err := m.svc.Duplicate(p.ID, "")
	if err != nil {
		m.errMsg = err.Error()
		return m, nil
	}

	m.reload()
	m.statusMsg = "Duplicated as " + dup.Name
	return m, clearStatusAfter()
}

func (m Model) handleFormSubmit(msg form.SubmittedMsg) (tea.Model, tea.Cmd) {
	result, err := m.svc.Submit(submitRequest(msg))
	if err != nil {
		title := "New Palette"
		if msg.ReplaceID != "" {
			title = "Edit Palette"
		}
		// Keep the typed input so the user can fix and resubmit.
		m.form = form.New(form.Options{
			Title:     title,
			DraftKey:  msg.DraftKey,
			ReplaceID: msg.ReplaceID,
			Fields:    msg.Fields,
			SlotCount: msg.SlotCount,
			Keywords:  m.svc.Keywords(),
			Validate:  m.svc.ValidateFields,
		})
		m.viewMode = ViewForm
		m.errMsg = err.Error()
		return m, m.form.Init()
	}

	m.svc.ClearDraft(msg.DraftKey)
	m.reload()
	m.viewMode = ViewList
	m.errMsg = ""
	m.statusMsg = result.Message
	return m, clearStatusAfter()
}

func (m Model) handleFormCancel(msg form.CancelledMsg) (tea.Model, tea.Cmd) {
	if err := m.svc.SaveDraft(msg.DraftKey, msg.Fields, msg.SlotCount); err != nil {
		m.errMsg = err.Error()
	} else {
		m.statusMsg = "Draft saved"
	}
	m.viewMode = ViewList
	return m, clearStatusAfter()
}

func submitRequest(msg form.SubmittedMsg) palettes.SubmitRequest {
	return palettes.SubmitRequest{
		Fields:    msg.Fields,
		SlotCount: msg.SlotCount,
		ReplaceID: msg.ReplaceID,
	}
}

func clearStatusAfter() tea.Cmd {
	return tea.Tick(4*time.Second, func(time.Time) tea.Msg {
		return clearStatusMsg{}
	})
}
