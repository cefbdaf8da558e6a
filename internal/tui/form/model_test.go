package form

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/swatchkit/swatch/internal/palette"
)

func TestNew_Defaults(t *testing.T) {
	m := New(Options{Title: "New Palette"})

	assert.Equal(t, defaultSlotCount, m.SlotCount())
	assert.Equal(t, focusName, m.focus)
	assert.False(t, m.Done())
}

func TestNew_PrefillsFields(t *testing.T) {
	m := New(Options{
		Title: "Edit Palette",
		Fields: map[string]string{
			palette.FieldName:        "Ocean",
			palette.FieldDescription: "Cool blues",
			palette.FieldMode:        "dark",
			palette.FieldKeywords:    "sea, calm",
			"color1":                 "#0077be",
			"color2":                 "#00b4d8",
		},
		SlotCount: 2,
	})

	fields := m.Fields()
	assert.Equal(t, "Ocean", fields[palette.FieldName])
	assert.Equal(t, "Cool blues", fields[palette.FieldDescription])
	assert.Equal(t, "dark", fields[palette.FieldMode])
	assert.Equal(t, "sea, calm", fields[palette.FieldKeywords])
	assert.Equal(t, "#0077be", fields["color1"])
	assert.Equal(t, "#00b4d8", fields["color2"])
	assert.Equal(t, 2, m.SlotCount())
}

func TestNew_FocusSlot(t *testing.T) {
	m := New(Options{
		Fields:    map[string]string{"color1": "#fff"},
		SlotCount: 3,
		FocusSlot: 2,
	})

	assert.Equal(t, focusColors+1, m.focus)
	assert.True(t, m.colors[1].Focused())
	assert.False(t, m.name.Focused())
}

func TestNew_FocusSlotOutOfRange(t *testing.T) {
	m := New(Options{SlotCount: 2, FocusSlot: 9})

	assert.Equal(t, focusName, m.focus)
	assert.True(t, m.name.Focused())
}

func TestNew_ClampsSlotCount(t *testing.T) {
	m := New(Options{SlotCount: 100})
	assert.Equal(t, maxSlotCount, m.SlotCount())

	m = New(Options{SlotCount: -1})
	assert.Equal(t, defaultSlotCount, m.SlotCount())
}

func TestFields_TrimsValues(t *testing.T) {
	m := New(Options{
		Fields: map[string]string{
			palette.FieldName: "  Ocean  ",
			"color1":          "  #fff  ",
		},
		SlotCount: 1,
	})

	fields := m.Fields()
	assert.Equal(t, "Ocean", fields[palette.FieldName])
	assert.Equal(t, "#fff", fields["color1"])
}

func TestFields_ColorFieldNames(t *testing.T) {
	m := New(Options{SlotCount: 11})

	fields := m.Fields()
	for i := 1; i <= 11; i++ {
		_, ok := fields[palette.ColorField(i)]
		require.True(t, ok, "expected field %s", palette.ColorField(i))
	}
	assert.NotContains(t, fields, "color12")
}
