// Package browser implements the palette browser UI: the list and detail
// screens, delete confirmation, and the embedded palette form.
package browser

import (
	"strings"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/swatchkit/swatch/internal/app/palettes"
	"github.com/swatchkit/swatch/internal/palette"
	"github.com/swatchkit/swatch/internal/store"
	"github.com/swatchkit/swatch/internal/tui/form"
)

// Model is the main browser model.
type Model struct {
	svc *palettes.Service

	palettes []palette.Palette
	cursor   int
	viewMode ViewMode

	form form.Model

	filter    textinput.Model
	filtering bool
	query     string

	statusMsg string
	errMsg    string

	confirmID   string
	confirmName string

	width  int
	height int
}

// NewModel creates a browser model over the palette service.
func NewModel(svc *palettes.Service) Model {
	filter := textinput.New()
	filter.Placeholder = "filter by name or keyword"
	filter.CharLimit = 60
	filter.Width = 40

	return Model{
		svc:      svc,
		palettes: svc.List(),
		viewMode: ViewList,
		filter:   filter,
		width:    80,
		height:   24,
	}
}

// Init implements tea.Model.
func (m Model) Init() tea.Cmd {
	return nil
}

// visible returns the palettes matching the active filter, newest first.
func (m Model) visible() []palette.Palette {
	if m.query == "" {
		return m.palettes
	}

	q := strings.ToLower(m.query)
	out := make([]palette.Palette, 0, len(m.palettes))
	for _, p := range m.palettes {
		if paletteMatches(p, q) {
			out = append(out, p)
		}
	}
	return out
}

func paletteMatches(p palette.Palette, query string) bool {
	if strings.Contains(strings.ToLower(p.Name), query) {
		return true
	}
	for _, kw := range p.Keywords {
		if strings.Contains(strings.ToLower(kw), query) {
			return true
		}
	}
	return false
}

// selected returns the palette under the cursor.
func (m Model) selected() (palette.Palette, bool) {
	visible := m.visible()
	if m.cursor < 0 || m.cursor >= len(visible) {
		return palette.Palette{}, false
	}
	return visible[m.cursor], true
}

func (m *Model) moveCursor(delta int) {
	visible := m.visible()
	if len(visible) == 0 {
		m.cursor = 0
		return
	}
	m.cursor = (m.cursor + delta + len(visible)) % len(visible)
}

func (m *Model) reload() {
	m.palettes = m.svc.List()
	if visible := m.visible(); m.cursor >= len(visible) {
		m.cursor = max(0, len(visible)-1)
	}
}

// openCreateForm opens the palette form, restoring a saved draft when one
// exists. Restored drafts focus the slot the heuristic picks.
func (m *Model) openCreateForm() {
	fields := map[string]string{}
	slotCount := 0
	focusSlot := 0

	if draft, ok := m.svc.Draft(store.DraftKeyCreate); ok {
		fields = draft.Fields
		slotCount = draft.SlotCount
		focusSlot = draftFocusSlot(draft)
	}

	m.form = form.New(form.Options{
		Title:     "New Palette",
		DraftKey:  store.DraftKeyCreate,
		Fields:    fields,
		SlotCount: slotCount,
		FocusSlot: focusSlot,
		Keywords:  m.svc.Keywords(),
		Validate:  m.svc.ValidateFields,
	})
	m.viewMode = ViewForm
}

// openEditForm opens the form prefilled from the stored record, or from a
// newer draft of the same record when one exists.
func (m *Model) openEditForm(p palette.Palette) {
	fields, slotCount := palette.RecordFields(p)
	focusSlot := 0
	draftKey := store.DraftKeyEdit + p.ID

	if draft, ok := m.svc.Draft(draftKey); ok {
		fields = draft.Fields
		slotCount = draft.SlotCount
		focusSlot = draftFocusSlot(draft)
	}

	m.form = form.New(form.Options{
		Title:     "Edit Palette",
		DraftKey:  draftKey,
		ReplaceID: p.ID,
		Fields:    fields,
		SlotCount: slotCount,
		FocusSlot: focusSlot,
		Keywords:  m.svc.Keywords(),
		Validate:  m.svc.ValidateFields,
	})
	m.viewMode = ViewForm
}

// draftFocusSlot applies the focus heuristic to a restored draft.
func draftFocusSlot(draft store.Draft) int {
	colors := make([]string, draft.SlotCount)
	for i := range colors {
		colors[i] = draft.Fields[palette.ColorField(i+1)]
	}
	slot, ok := palette.NextFocusSlot(colors)
	if !ok {
		return 0
	}
	return slot
}
