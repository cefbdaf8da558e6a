package palette

import (
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	swatcherrors "github.com/swatchkit/swatch/pkg/errors"
)

func validPalette() Palette {
	return Palette{
		ID:        "test-id",
		Name:      "Ocean",
		Mode:      ModeLight,
		Keywords:  []string{"sea", "calm"},
		Colors:    []string{"#1E90FF", "rgb(135, 206, 235)"},
		CreatedAt: time.Now(),
	}
}

func TestValidateAcceptsValidPalette(t *testing.T) {
	p := validPalette()
	require.NoError(t, Validate(&p))
}

func TestValidateNil(t *testing.T) {
	assert.Error(t, Validate(nil))
}

func TestValidateRejectsEmptyName(t *testing.T) {
	p := validPalette()
	p.Name = ""

	err := Validate(&p)
	require.Error(t, err)

	var verr *swatcherrors.ValidationError
	require.ErrorAs(t, err, &verr)
	assert.Contains(t, verr.Message, "required")
}

func TestValidateRejectsLongName(t *testing.T) {
	p := validPalette()
	p.Name = strings.Repeat("a", NameMaxLength+1)
	assert.Error(t, Validate(&p))
}

func TestValidateRejectsLongDescription(t *testing.T) {
	p := validPalette()
	p.Description = strings.Repeat("a", DescriptionMaxLength+1)
	assert.Error(t, Validate(&p))
}

func TestValidateRejectsInvalidMode(t *testing.T) {
	p := validPalette()
	p.Mode = "dusk"
	assert.Error(t, Validate(&p))
}

func TestValidateRejectsEmptyColors(t *testing.T) {
	p := validPalette()
	p.Colors = []string{}

	err := Validate(&p)
	require.Error(t, err)

	var verr *swatcherrors.ValidationError
	require.ErrorAs(t, err, &verr)
	assert.Equal(t, MsgColorRequired, verr.Message)
}

func TestValidateRejectsInvalidColor(t *testing.T) {
	p := validPalette()
	p.Colors = []string{"#1E90FF", "rgb(256, 0, 0)"}

	err := Validate(&p)
	require.Error(t, err)

	var verr *swatcherrors.ValidationError
	require.ErrorAs(t, err, &verr)
	assert.Equal(t, MsgColorInvalid, verr.Message)
}

func TestValidateRejectsDuplicateKeywords(t *testing.T) {
	p := validPalette()
	p.Keywords = []string{"sea", "sea"}
	assert.Error(t, Validate(&p))
}
