// Package form implements the palette form UI: a multi-field Bubble Tea
// model for creating and editing palettes. The form validates and emits
// SubmittedMsg/CancelledMsg; persistence belongs to the embedder.
package form

import (
	"strings"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/swatchkit/swatch/internal/palette"
)

// Field focus positions. Color slots follow focusKeywords at
// focusColors + slot - 1.
const (
	focusName = iota
	focusDescription
	focusMode
	focusKeywords
	focusColors
)

const (
	defaultSlotCount = 3
	maxSlotCount     = 12
)

// ValidateFunc runs the field-level validation pass and returns messages
// keyed by field name; an empty map means submittable.
type ValidateFunc func(fields map[string]string, slotCount int) map[string]string

// Options configures a form model.
type Options struct {
	Title     string
	DraftKey  string
	ReplaceID string

	// Initial field values, either an edit prefill or a restored draft.
	Fields    map[string]string
	SlotCount int

	// FocusSlot selects the initially focused color slot (1-based).
	// Zero focuses the name field.
	FocusSlot int

	// Existing global keywords, shown as a hint under the keyword field.
	Keywords []string

	Validate ValidateFunc
}

// Model is the palette form model.
type Model struct {
	title     string
	draftKey  string
	replaceID string

	name        textinput.Model
	description textinput.Model
	keywords    textinput.Model
	colors      []textinput.Model
	mode        palette.Mode

	focus         int
	fieldErrors   map[string]string
	knownKeywords []string
	validate      ValidateFunc
	done          bool
	width         int
	height        int
}

// New creates a form model from Options.
func New(opts Options) Model {
	slotCount := opts.SlotCount
	if slotCount < 1 {
		slotCount = defaultSlotCount
	}
	if slotCount > maxSlotCount {
		slotCount = maxSlotCount
	}

	m := Model{
		title:         opts.Title,
		draftKey:      opts.DraftKey,
		replaceID:     opts.ReplaceID,
		name:          newInput("Palette name", palette.NameMaxLength),
		description:   newInput("Optional description", palette.DescriptionMaxLength),
		keywords:      newInput("keyword, another, !remove-this", 200),
		mode:          palette.Mode(opts.Fields[palette.FieldMode]),
		fieldErrors:   map[string]string{},
		knownKeywords: opts.Keywords,
		validate:      opts.Validate,
		width:         80,
		height:        24,
	}

	m.name.SetValue(opts.Fields[palette.FieldName])
	m.description.SetValue(opts.Fields[palette.FieldDescription])
	m.keywords.SetValue(opts.Fields[palette.FieldKeywords])

	m.colors = make([]textinput.Model, slotCount)
	for i := range m.colors {
		m.colors[i] = newInput("#rrggbb, rgb(...), or rgba(...)", 40)
		m.colors[i].SetValue(opts.Fields[palette.ColorField(i+1)])
	}

	if opts.FocusSlot >= 1 && opts.FocusSlot <= slotCount {
		m.focus = focusColors + opts.FocusSlot - 1
	}
	m.applyFocus()

	return m
}

func newInput(placeholder string, limit int) textinput.Model {
	ti := textinput.New()
	ti.Placeholder = placeholder
	ti.CharLimit = limit
	ti.Width = 44
	ti.PromptStyle = promptStyle
	return ti
}

// Init implements tea.Model.
func (m Model) Init() tea.Cmd {
	return textinput.Blink
}

// Fields snapshots every field value under its boundary field name.
func (m Model) Fields() map[string]string {
	fields := map[string]string{
		palette.FieldName:        strings.TrimSpace(m.name.Value()),
		palette.FieldDescription: strings.TrimSpace(m.description.Value()),
		palette.FieldMode:        m.mode.String(),
		palette.FieldKeywords:    m.keywords.Value(),
	}
	for i, c := range m.colors {
		fields[palette.ColorField(i+1)] = strings.TrimSpace(c.Value())
	}
	return fields
}

// SlotCount returns the number of active color slots.
func (m Model) SlotCount() int {
	return len(m.colors)
}

// Done reports whether the form has emitted its terminal message.
func (m Model) Done() bool {
	return m.done
}

func (m Model) fieldCount() int {
	return focusColors + len(m.colors)
}

func (m *Model) applyFocus() {
	m.name.Blur()
	m.description.Blur()
	m.keywords.Blur()
	for i := range m.colors {
		m.colors[i].Blur()
	}

	switch {
	case m.focus == focusName:
		m.name.Focus()
	case m.focus == focusDescription:
		m.description.Focus()
	case m.focus == focusKeywords:
		m.keywords.Focus()
	case m.focus >= focusColors:
		m.colors[m.focus-focusColors].Focus()
	}
}

func (m *Model) focusField(field string) {
	switch field {
	case palette.FieldName:
		m.focus = focusName
	case palette.FieldDescription:
		m.focus = focusDescription
	case palette.FieldMode:
		m.focus = focusMode
	case palette.FieldKeywords:
		m.focus = focusKeywords
	default:
		for i := range m.colors {
			if field == palette.ColorField(i+1) {
				m.focus = focusColors + i
				return
			}
		}
	}
}
