package palette

import (
	"strconv"
	"strings"
	"time"
)

// Form field names shared between the form UI, draft storage, and record
// assembly. Color slot i (1-based) is addressed as "color" + i, with no
// separator and no leading zeros.
const (
	FieldName        = "name"
	FieldDescription = "description"
	FieldMode        = "mode"
	FieldKeywords    = "keywords"
	ColorFieldPrefix = "color"
)

// ColorField returns the field name for the 1-based color slot.
func ColorField(slot int) string {
	return ColorFieldPrefix + strconv.Itoa(slot)
}

// ExtractColors projects the color slot fields out of a form field map,
// dropping empty or absent slots while preserving slot order. It performs
// no validation; color strings are checked by IsValidColor before the form
// ever submits.
func ExtractColors(fields map[string]string, slotCount int) []string {
	colors := make([]string, 0, slotCount)
	for slot := 1; slot <= slotCount; slot++ {
		if v := strings.TrimSpace(fields[ColorField(slot)]); v != "" {
			colors = append(colors, v)
		}
	}
	return colors
}

// RecordFields projects a palette back into form fields, the inverse of
// BuildRecord. Used to prefill the edit form. The returned slot count is
// the number of stored colors.
func RecordFields(p Palette) (map[string]string, int) {
	fields := map[string]string{
		FieldName:        p.Name,
		FieldDescription: p.Description,
		FieldMode:        p.Mode.String(),
		FieldKeywords:    strings.Join(p.Keywords, ", "),
	}
	for i, c := range p.Colors {
		fields[ColorField(i+1)] = c
	}
	return fields, len(p.Colors)
}

// BuildRecord assembles a persisted palette from validated form fields and
// an already-extracted color sequence. It is a total function: it never
// rejects input, so callers must have validated required fields first.
// idFn and clockFn are each invoked exactly once.
func BuildRecord(fields map[string]string, colors []string, idFn func() string, clockFn func() time.Time) Palette {
	return Palette{
		ID:          idFn(),
		Name:        fields[FieldName],
		Description: fields[FieldDescription],
		Mode:        Mode(fields[FieldMode]),
		Keywords:    []string{},
		Colors:      colors,
		CreatedAt:   clockFn(),
	}
}
