package palette

import (
	"fmt"
	"strings"
	"sync"

	"github.com/go-playground/validator/v10"

	swatcherrors "github.com/swatchkit/swatch/pkg/errors"
)

// User-facing messages shown next to color slots in the form.
const (
	MsgColorRequired = "At least one color is required"
	MsgColorInvalid  = "Please enter a valid color (hex, rgb, or rgba)"
)

const (
	NameMaxLength        = 100
	DescriptionMaxLength = 500
)

var (
	validatorOnce sync.Once
	validateInst  *validator.Validate
)

func validatorInstance() *validator.Validate {
	validatorOnce.Do(func() {
		v := validator.New()

		_ = v.RegisterValidation("palette_color", func(fl validator.FieldLevel) bool {
			return IsValidColor(fl.Field().String())
		})

		validateInst = v
	})

	return validateInst
}

// Validate performs schema validation on a palette record. Persisted
// records must satisfy this; form submission runs it after the field-level
// checks so CLI entry points share one gate.
func Validate(p *Palette) error {
	if p == nil {
		return swatcherrors.NewValidationError("palette", "palette is nil", nil)
	}

	v := validatorInstance()
	if err := v.Struct(p); err != nil {
		return convertValidationError(err)
	}

	return nil
}

func convertValidationError(err error) error {
	if err == nil {
		return nil
	}

	if ves, ok := err.(validator.ValidationErrors); ok {
		ve := ves[0]
		field := lowerFieldName(ve)
		return swatcherrors.NewValidationError(field, messageFor(ve), err)
	}

	return swatcherrors.NewValidationError("palette", err.Error(), err)
}

func messageFor(fe validator.FieldError) string {
	switch {
	case fe.Field() == "Colors" && fe.Tag() == "min":
		return MsgColorRequired
	case fe.Tag() == "palette_color":
		return MsgColorInvalid
	case fe.Tag() == "required":
		return fmt.Sprintf("%s is required", strings.ToLower(fe.Field()))
	case fe.Tag() == "max":
		return fmt.Sprintf("%s must be at most %s characters", strings.ToLower(fe.Field()), fe.Param())
	case fe.Tag() == "oneof":
		return fmt.Sprintf("%s must be one of: %s", strings.ToLower(fe.Field()), fe.Param())
	case fe.Tag() == "unique":
		return "keywords must not contain duplicates"
	default:
		return fmt.Sprintf("%s failed validation for tag '%s'", lowerFieldName(fe), fe.Tag())
	}
}

func lowerFieldName(fe validator.FieldError) string {
	ns := fe.StructNamespace()
	parts := strings.Split(ns, ".")
	lowered := make([]string, 0, len(parts))
	for _, part := range parts {
		lowered = append(lowered, strings.ToLower(part))
	}
	return strings.Join(lowered, ".")
}
