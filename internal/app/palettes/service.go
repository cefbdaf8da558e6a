// Package palettes coordinates palette operations between the pure domain
// core and the stores. Both the CLI commands and the TUIs submit through
// this service so validation, assembly, keyword reconciliation, and
// persistence happen in exactly one place.
package palettes

import (
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/swatchkit/swatch/internal/logger"
	"github.com/swatchkit/swatch/internal/palette"
	"github.com/swatchkit/swatch/internal/store"
	swatcherrors "github.com/swatchkit/swatch/pkg/errors"
)

// Service coordinates high-level palette operations.
type Service struct {
	library  *store.Library
	keywords *store.KeywordStore
	drafts   *store.DraftStore
	log      *logger.Logger

	newID func() string
	now   func() time.Time
}

// NewService constructs a palette service. The logger may be nil.
func NewService(library *store.Library, keywords *store.KeywordStore, drafts *store.DraftStore, log *logger.Logger) *Service {
	return &Service{
		library:  library,
		keywords: keywords,
		drafts:   drafts,
		log:      log,
		newID:    uuid.NewString,
		now:      func() time.Time { return time.Now().UTC() },
	}
}

// SubmitRequest carries one form submission. ReplaceID is empty for
// create; for edit it names the palette being replaced, whose ID and
// CreatedAt are preserved.
type SubmitRequest struct {
	Fields    map[string]string
	SlotCount int
	ReplaceID string
}

// SubmitResult reports a successful submission.
type SubmitResult struct {
	Palette       palette.Palette
	AddedKeywords []string
	Message       string
}

// ValidateFields runs the field-level validation pass the form UI shows
// inline. The result maps field names to user-facing messages; an empty
// map means the fields are submittable.
func (s *Service) ValidateFields(fields map[string]string, slotCount int) map[string]string {
	msgs := make(map[string]string)

	name := strings.TrimSpace(fields[palette.FieldName])
	switch {
	case name == "":
		msgs[palette.FieldName] = "Name is required"
	case len(name) > palette.NameMaxLength:
		msgs[palette.FieldName] = "Name is too long"
	}

	if len(fields[palette.FieldDescription]) > palette.DescriptionMaxLength {
		msgs[palette.FieldDescription] = "Description is too long"
	}

	if _, err := palette.ParseMode(fields[palette.FieldMode]); err != nil {
		msgs[palette.FieldMode] = "Mode is required"
	}

	for slot := 1; slot <= slotCount; slot++ {
		field := palette.ColorField(slot)
		value := strings.TrimSpace(fields[field])

		if value == "" {
			if slot == 1 {
				msgs[field] = palette.MsgColorRequired
			}
			continue
		}
		if !palette.IsValidColor(value) {
			msgs[field] = palette.MsgColorInvalid
		}
	}

	return msgs
}

// Submit assembles a palette from validated fields and persists it. On a
// store failure the error is surfaced once and nothing is retried; the
// caller keeps its form state so the user can resubmit.
func (s *Service) Submit(req SubmitRequest) (*SubmitResult, error) {
	if msgs := s.ValidateFields(req.Fields, req.SlotCount); len(msgs) > 0 {
		field := firstInvalidField(msgs, req.SlotCount)
		return nil, swatcherrors.NewValidationError(field, msgs[field], nil)
	}

	colors := palette.ExtractColors(req.Fields, req.SlotCount)

	idFn, clockFn := s.newID, s.now
	if req.ReplaceID != "" {
		existing, err := s.library.Get(req.ReplaceID)
		if err != nil {
			return nil, err
		}
		idFn = func() string { return existing.ID }
		clockFn = func() time.Time { return existing.CreatedAt }
	}

	record := palette.BuildRecord(req.Fields, colors, idFn, clockFn)

	keywordInput := req.Fields[palette.FieldKeywords]
	added := s.keywords.Apply(keywordInput)
	record.Keywords = dedupe(added)

	if err := palette.Validate(&record); err != nil {
		return nil, err
	}

	if req.ReplaceID != "" {
		if err := s.library.Replace(record); err != nil {
			return nil, err
		}
	} else {
		if err := s.library.Add(record); err != nil {
			return nil, err
		}
	}

	if err := s.library.Save(); err != nil {
		s.log.Error(err, "palette save failed")
		return nil, err
	}
	if err := s.keywords.Save(); err != nil {
		s.log.Error(err, "keyword save failed")
		return nil, err
	}

	s.log.WithFields(map[string]any{"palette_id": record.ID, "colors": len(record.Colors)}).Info("palette saved")

	return &SubmitResult{
		Palette:       record,
		AddedKeywords: added,
		Message:       palette.SuccessMessage(record.Name, record.Mode, len(record.Colors)),
	}, nil
}

// Duplicate copies an existing palette under a new identity and persists
// it. An empty name selects the default " Copy" suffix.
func (s *Service) Duplicate(id, name string) (palette.Palette, error) {
	original, err := s.library.Get(id)
	if err != nil {
		return palette.Palette{}, err
	}

	dup := original.Duplicate(name, s.newID, s.now)
	if err := s.library.Add(dup); err != nil {
		return palette.Palette{}, err
	}
	if err := s.library.Save(); err != nil {
		s.log.Error(err, "palette save failed")
		return palette.Palette{}, err
	}

	return dup, nil
}

// Delete removes a palette. Keywords stay: the set is shared vocabulary.
func (s *Service) Delete(id string) error {
	if err := s.library.Remove(id); err != nil {
		return err
	}
	if err := s.library.Save(); err != nil {
		s.log.Error(err, "palette save failed")
		return err
	}
	return nil
}

// List returns all palettes, newest first.
func (s *Service) List() []palette.Palette {
	return s.library.List()
}

// Get retrieves a palette by ID.
func (s *Service) Get(id string) (palette.Palette, error) {
	return s.library.Get(id)
}

// Keywords returns the global keyword set.
func (s *Service) Keywords() []string {
	return s.keywords.Keywords()
}

// ApplyKeywords runs reconciliation input directly against the global set
// and persists the outcome.
func (s *Service) ApplyKeywords(input string) ([]string, error) {
	added := s.keywords.Apply(input)
	if err := s.keywords.Save(); err != nil {
		s.log.Error(err, "keyword save failed")
		return nil, err
	}
	return added, nil
}

// SaveDraft persists an interrupted form session.
func (s *Service) SaveDraft(key string, fields map[string]string, slotCount int) error {
	s.drafts.Set(key, fields, slotCount)
	return s.drafts.Save()
}

// Draft retrieves a saved form session.
func (s *Service) Draft(key string) (store.Draft, bool) {
	return s.drafts.Get(key)
}

// ClearDraft discards a saved form session. Best effort; a failure to
// persist the cleared state only means the draft shows up once more.
func (s *Service) ClearDraft(key string) {
	s.drafts.Clear(key)
	if err := s.drafts.Save(); err != nil {
		s.log.Error(err, "draft save failed")
	}
}

// firstInvalidField picks a deterministic field to report when submission
// is attempted with invalid fields: visual form order, color slots last.
func firstInvalidField(msgs map[string]string, slotCount int) string {
	ordered := []string{palette.FieldName, palette.FieldDescription, palette.FieldMode}
	for slot := 1; slot <= slotCount; slot++ {
		ordered = append(ordered, palette.ColorField(slot))
	}
	for _, field := range ordered {
		if _, ok := msgs[field]; ok {
			return field
		}
	}
	for field := range msgs {
		return field
	}
	return ""
}

func dedupe(values []string) []string {
	seen := make(map[string]struct{}, len(values))
	out := make([]string, 0, len(values))
	for _, v := range values {
		if _, ok := seen[v]; ok {
			continue
		}
		seen[v] = struct{}{}
		out = append(out, v)
	}
	return out
}
