package store

import (
	"time"

	"github.com/swatchkit/swatch/internal/palette"
)

const storeVersion = "1.0"

// libraryFile is the JSON envelope for the palette library.
type libraryFile struct {
	Version  string            `json:"version"`
	Palettes []palette.Palette `json:"palettes"`
}

// keywordFile is the JSON envelope for the global keyword set.
type keywordFile struct {
	Version  string   `json:"version"`
	Keywords []string `json:"keywords"`
}

// Draft holds the field values of an interrupted form session.
type Draft struct {
	Fields    map[string]string `json:"fields"`
	SlotCount int               `json:"slot_count"`
	SavedAt   time.Time         `json:"saved_at"`
}

// draftFile is the JSON envelope for saved drafts, keyed by form key
// ("create", or "edit:" + palette ID).
type draftFile struct {
	Version string           `json:"version"`
	Drafts  map[string]Draft `json:"drafts"`
}
