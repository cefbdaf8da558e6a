package palette

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestColorField(t *testing.T) {
	assert.Equal(t, "color1", ColorField(1))
	assert.Equal(t, "color10", ColorField(10))
}

func TestExtractColorsDropsEmptySlotsPreservingOrder(t *testing.T) {
	fields := map[string]string{
		"color1": "#fff",
		"color2": "",
		"color3": "#000",
	}

	colors := ExtractColors(fields, 3)
	assert.Equal(t, []string{"#fff", "#000"}, colors)
}

func TestExtractColorsAbsentSlots(t *testing.T) {
	fields := map[string]string{
		"color2": "rgb(1, 2, 3)",
	}

	colors := ExtractColors(fields, 4)
	assert.Equal(t, []string{"rgb(1, 2, 3)"}, colors)
}

func TestExtractColorsZeroSlots(t *testing.T) {
	colors := ExtractColors(map[string]string{"color1": "#fff"}, 0)
	assert.Empty(t, colors)
}

func TestExtractColorsSlotCountBeyondFields(t *testing.T) {
	// The function is total over any slot count; missing fields just
	// contribute nothing.
	fields := map[string]string{"color1": "#abc"}
	colors := ExtractColors(fields, 10)
	assert.Equal(t, []string{"#abc"}, colors)
}

func TestBuildRecord(t *testing.T) {
	fields := map[string]string{
		"name":        "Ocean",
		"description": "",
		"mode":        "light",
		"color1":      "#1E90FF",
		"color2":      "",
		"color3":      "#87CEEB",
	}

	colors := ExtractColors(fields, 3)
	require.Equal(t, []string{"#1E90FF", "#87CEEB"}, colors)

	created := time.Date(2025, 1, 19, 10, 0, 0, 0, time.UTC)
	p := BuildRecord(fields, colors,
		func() string { return "42" },
		func() time.Time { return created },
	)

	assert.Equal(t, "42", p.ID)
	assert.Equal(t, "Ocean", p.Name)
	assert.Equal(t, "", p.Description)
	assert.Equal(t, ModeLight, p.Mode)
	assert.Equal(t, []string{}, p.Keywords)
	assert.Equal(t, []string{"#1E90FF", "#87CEEB"}, p.Colors)
	assert.Equal(t, created, p.CreatedAt)
}

func TestBuildRecordCallsFactoriesOnce(t *testing.T) {
	idCalls, clockCalls := 0, 0

	BuildRecord(map[string]string{}, nil,
		func() string { idCalls++; return "id" },
		func() time.Time { clockCalls++; return time.Now() },
	)

	assert.Equal(t, 1, idCalls)
	assert.Equal(t, 1, clockCalls)
}
