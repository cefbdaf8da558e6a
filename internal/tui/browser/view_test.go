package browser

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestView_EmptyList(t *testing.T) {
	m := NewModel(newTestService(t))

	out := m.View()
	assert.Contains(t, out, "Swatch")
	assert.Contains(t, out, "No palettes yet")
	assert.Contains(t, out, "n new")
}

func TestView_ListRows(t *testing.T) {
	svc := newTestService(t)
	seedPalette(t, svc, "Ocean", "#0077be", "#00b4d8")
	seedPalette(t, svc, "Sunset", "#ff6b35")

	m := NewModel(svc)
	out := m.View()
	assert.Contains(t, out, "Ocean")
	assert.Contains(t, out, "Sunset")
	assert.Contains(t, out, "light")
}

func TestView_FilterNoMatches(t *testing.T) {
	svc := newTestService(t)
	seedPalette(t, svc, "Ocean", "#0077be")

	m := NewModel(svc)
	m.query = "zzz"

	out := m.View()
	assert.Contains(t, out, `No palettes match "zzz"`)
}

func TestView_Detail(t *testing.T) {
	svc := newTestService(t)
	p := seedPalette(t, svc, "Ocean", "#0077be")

	m := NewModel(svc)
	m.viewMode = ViewDetail

	out := m.View()
	assert.Contains(t, out, "Ocean")
	assert.Contains(t, out, "Mode")
	assert.Contains(t, out, "#0077be")
	assert.Contains(t, out, p.ID)
}

func TestView_Confirm(t *testing.T) {
	m := NewModel(newTestService(t))
	m.viewMode = ViewConfirm
	m.confirmName = "Ocean"

	out := m.View()
	assert.Contains(t, out, `Remove palette "Ocean"?`)
}

func TestView_Help(t *testing.T) {
	m := NewModel(newTestService(t))
	m.viewMode = ViewHelp

	out := m.View()
	assert.Contains(t, out, "Keyboard Shortcuts")
	assert.Contains(t, out, "duplicate")
}

func TestView_StatusAndErrorLines(t *testing.T) {
	m := NewModel(newTestService(t))

	m.statusMsg = "Draft saved"
	assert.Contains(t, m.View(), "Draft saved")

	m.errMsg = "could not save"
	assert.Contains(t, m.View(), "could not save")
}

func TestFormatRelative(t *testing.T) {
	now := time.Now()

	assert.Equal(t, "just now", formatRelative(now.Add(-10*time.Second)))
	assert.Equal(t, "5m ago", formatRelative(now.Add(-5*time.Minute)))
	assert.Equal(t, "3h ago", formatRelative(now.Add(-3*time.Hour)))
	assert.Equal(t, "2d ago", formatRelative(now.Add(-48*time.Hour)))
	assert.Equal(t, "unknown", formatRelative(time.Time{}))

	old := now.Add(-90 * 24 * time.Hour)
	assert.Equal(t, old.Format("2006-01-02"), formatRelative(old))
}

func TestSwatchLabel_InvalidColorFallsBack(t *testing.T) {
	out := swatchLabel("not-a-color")
	require.Contains(t, out, "not-a-color")
}

func TestTruncate(t *testing.T) {
	assert.Equal(t, "short", truncate("short", 10))
	assert.Equal(t, "exactly-ten", truncate("exactly-ten", 11))
	assert.Equal(t, "a-much-lo…", truncate("a-much-longer-name", 10))
}
