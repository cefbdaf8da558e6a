// Package palette holds the palette domain model and the pure core that
// validates colors, assembles records from form fields, and reconciles the
// shared keyword set. Nothing in this package performs I/O.
package palette

import (
	"fmt"
	"time"
)

// Mode is the display mode a palette is designed for.
type Mode string

const (
	ModeLight Mode = "light"
	ModeDark  Mode = "dark"
)

// String returns the string representation of the mode.
func (m Mode) String() string {
	return string(m)
}

// ParseMode converts user input into a Mode.
func ParseMode(s string) (Mode, error) {
	switch Mode(s) {
	case ModeLight:
		return ModeLight, nil
	case ModeDark:
		return ModeDark, nil
	default:
		return "", fmt.Errorf("invalid mode %q: must be %q or %q", s, ModeLight, ModeDark)
	}
}

// Palette is one saved color palette.
type Palette struct {
	ID          string    `json:"id" yaml:"id" validate:"required"`
	Name        string    `json:"name" yaml:"name" validate:"required,max=100"`
	Description string    `json:"description" yaml:"description,omitempty" validate:"max=500"`
	Mode        Mode      `json:"mode" yaml:"mode" validate:"required,oneof=light dark"`
	Keywords    []string  `json:"keywords" yaml:"keywords,omitempty" validate:"unique"`
	Colors      []string  `json:"colors" yaml:"colors" validate:"min=1,dive,palette_color"`
	CreatedAt   time.Time `json:"created_at" yaml:"created_at"`
}

// Clone returns a deep copy so callers can mutate the result freely.
func (p Palette) Clone() Palette {
	out := p
	out.Keywords = append([]string(nil), p.Keywords...)
	out.Colors = append([]string(nil), p.Colors...)
	return out
}

// Duplicate returns a copy of the palette under a new identity. The name
// gets a " Copy" suffix unless the caller supplies one.
func (p Palette) Duplicate(name string, idFn func() string, clockFn func() time.Time) Palette {
	out := p.Clone()
	if name == "" {
		name = p.Name + " Copy"
	}
	out.ID = idFn()
	out.Name = name
	out.CreatedAt = clockFn()
	return out
}

// SuccessMessage is the notification shown after a palette is created.
func SuccessMessage(name string, mode Mode, colorCount int) string {
	noun := "color"
	if colorCount > 1 {
		noun = "colors"
	}
	return fmt.Sprintf("%s %s color palette created with %d %s", name, mode, colorCount, noun)
}
