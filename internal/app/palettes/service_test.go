package palettes

import (
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/swatchkit/swatch/internal/palette"
	"github.com/swatchkit/swatch/internal/store"
	swatcherrors "github.com/swatchkit/swatch/pkg/errors"
)

func newTestService(t *testing.T) *Service {
	t.Helper()
	dir := t.TempDir()

	library, err := store.NewLibrary(filepath.Join(dir, "palettes.json"))
	require.NoError(t, err)
	keywords, err := store.NewKeywordStore(filepath.Join(dir, "keywords.json"))
	require.NoError(t, err)
	drafts, err := store.NewDraftStore(filepath.Join(dir, "drafts.json"))
	require.NoError(t, err)

	svc := NewService(library, keywords, drafts, nil)
	svc.newID = func() string { return "fixed-id" }
	svc.now = func() time.Time { return time.Date(2025, 1, 19, 10, 0, 0, 0, time.UTC) }
	return svc
}

func oceanFields() map[string]string {
	return map[string]string{
		"name":        "Ocean",
		"description": "",
		"mode":        "light",
		"keywords":    "sea, calm",
		"color1":      "#1E90FF",
		"color2":      "",
		"color3":      "#87CEEB",
	}
}

func TestValidateFieldsAccepts(t *testing.T) {
	svc := newTestService(t)
	msgs := svc.ValidateFields(oceanFields(), 3)
	assert.Empty(t, msgs)
}

func TestValidateFieldsMissingName(t *testing.T) {
	svc := newTestService(t)
	fields := oceanFields()
	fields["name"] = "  "

	msgs := svc.ValidateFields(fields, 3)
	assert.Equal(t, "Name is required", msgs["name"])
}

func TestValidateFieldsEmptyFirstSlot(t *testing.T) {
	svc := newTestService(t)
	fields := oceanFields()
	fields["color1"] = ""

	msgs := svc.ValidateFields(fields, 3)
	assert.Equal(t, palette.MsgColorRequired, msgs["color1"])
	// Other slots are still individually checked.
	assert.NotContains(t, msgs, "color3")
}

func TestValidateFieldsInvalidColor(t *testing.T) {
	svc := newTestService(t)
	fields := oceanFields()
	fields["color3"] = "rgb(256, 0, 0)"

	msgs := svc.ValidateFields(fields, 3)
	assert.Equal(t, palette.MsgColorInvalid, msgs["color3"])
}

func TestValidateFieldsMissingMode(t *testing.T) {
	svc := newTestService(t)
	fields := oceanFields()
	fields["mode"] = ""

	msgs := svc.ValidateFields(fields, 3)
	assert.Equal(t, "Mode is required", msgs["mode"])
}

func TestSubmitCreate(t *testing.T) {
	svc := newTestService(t)

	result, err := svc.Submit(SubmitRequest{Fields: oceanFields(), SlotCount: 3})
	require.NoError(t, err)

	assert.Equal(t, "fixed-id", result.Palette.ID)
	assert.Equal(t, "Ocean", result.Palette.Name)
	assert.Equal(t, palette.ModeLight, result.Palette.Mode)
	assert.Equal(t, []string{"#1E90FF", "#87CEEB"}, result.Palette.Colors)
	assert.Equal(t, []string{"sea", "calm"}, result.Palette.Keywords)
	assert.Equal(t, []string{"sea", "calm"}, result.AddedKeywords)
	assert.Equal(t, "Ocean light color palette created with 2 colors", result.Message)

	saved, err := svc.Get("fixed-id")
	require.NoError(t, err)
	assert.Equal(t, "Ocean", saved.Name)

	assert.Equal(t, []string{"sea", "calm"}, svc.Keywords())
}

func TestSubmitReportsIntentButStoresDeduped(t *testing.T) {
	svc := newTestService(t)

	fields := oceanFields()
	fields["keywords"] = "sea, sea"

	result, err := svc.Submit(SubmitRequest{Fields: fields, SlotCount: 3})
	require.NoError(t, err)

	assert.Equal(t, []string{"sea", "sea"}, result.AddedKeywords)
	assert.Equal(t, []string{"sea"}, result.Palette.Keywords)
	assert.Equal(t, []string{"sea"}, svc.Keywords())
}

func TestSubmitRejectsInvalidFields(t *testing.T) {
	svc := newTestService(t)

	fields := oceanFields()
	fields["color1"] = ""
	fields["color3"] = ""

	_, err := svc.Submit(SubmitRequest{Fields: fields, SlotCount: 3})
	require.Error(t, err)

	var verr *swatcherrors.ValidationError
	require.ErrorAs(t, err, &verr)
	assert.Equal(t, "color1", verr.Field)
	assert.Equal(t, palette.MsgColorRequired, verr.Message)
}

func TestSubmitEditKeepsIdentity(t *testing.T) {
	svc := newTestService(t)

	_, err := svc.Submit(SubmitRequest{Fields: oceanFields(), SlotCount: 3})
	require.NoError(t, err)

	svc.newID = func() string { return "other-id" }
	svc.now = func() time.Time { return time.Date(2026, 6, 1, 0, 0, 0, 0, time.UTC) }

	fields := oceanFields()
	fields["name"] = "Deep Ocean"
	fields["mode"] = "dark"

	result, err := svc.Submit(SubmitRequest{Fields: fields, SlotCount: 3, ReplaceID: "fixed-id"})
	require.NoError(t, err)

	assert.Equal(t, "fixed-id", result.Palette.ID)
	assert.Equal(t, time.Date(2025, 1, 19, 10, 0, 0, 0, time.UTC), result.Palette.CreatedAt)
	assert.Equal(t, "Deep Ocean", result.Palette.Name)
	assert.Equal(t, palette.ModeDark, result.Palette.Mode)

	// Edit replaced, not appended.
	assert.Len(t, svc.List(), 1)
}

func TestSubmitEditUnknownID(t *testing.T) {
	svc := newTestService(t)

	_, err := svc.Submit(SubmitRequest{Fields: oceanFields(), SlotCount: 3, ReplaceID: "missing"})
	var nf *swatcherrors.NotFoundError
	require.ErrorAs(t, err, &nf)
}

func TestDuplicate(t *testing.T) {
	svc := newTestService(t)

	_, err := svc.Submit(SubmitRequest{Fields: oceanFields(), SlotCount: 3})
	require.NoError(t, err)

	svc.newID = func() string { return "copy-id" }
	dup, err := svc.Duplicate("fixed-id", "")
	require.NoError(t, err)

	assert.Equal(t, "copy-id", dup.ID)
	assert.Equal(t, "Ocean Copy", dup.Name)
	assert.Len(t, svc.List(), 2)

	// Newest first: the duplicate leads.
	assert.Equal(t, "copy-id", svc.List()[0].ID)
}

func TestDeleteKeepsKeywords(t *testing.T) {
	svc := newTestService(t)

	_, err := svc.Submit(SubmitRequest{Fields: oceanFields(), SlotCount: 3})
	require.NoError(t, err)

	require.NoError(t, svc.Delete("fixed-id"))
	assert.Empty(t, svc.List())
	assert.Equal(t, []string{"sea", "calm"}, svc.Keywords())
}

func TestApplyKeywords(t *testing.T) {
	svc := newTestService(t)

	added, err := svc.ApplyKeywords("warm, cool")
	require.NoError(t, err)
	assert.Equal(t, []string{"warm", "cool"}, added)

	added, err = svc.ApplyKeywords("!warm")
	require.NoError(t, err)
	assert.Empty(t, added)
	assert.Equal(t, []string{"cool"}, svc.Keywords())
}

func TestDraftRoundTrip(t *testing.T) {
	svc := newTestService(t)

	fields := map[string]string{"name": "Ocean", "color1": "#1E90FF", "color2": ""}
	require.NoError(t, svc.SaveDraft(store.DraftKeyCreate, fields, 2))

	d, ok := svc.Draft(store.DraftKeyCreate)
	require.True(t, ok)
	assert.Equal(t, "Ocean", d.Fields["name"])
	assert.Equal(t, 2, d.SlotCount)

	svc.ClearDraft(store.DraftKeyCreate)
	_, ok = svc.Draft(store.DraftKeyCreate)
	assert.False(t, ok)
}
