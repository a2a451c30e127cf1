package validators

import (
	"time"

	"github.com/go-playground/validator/v10"
)

// TagTimeLayout validates a Go reference-time layout, e.g. 20060102.
const TagTimeLayout = "timelayout"

// Validate is a type alias for validator.Validate.
type Validate = validator.Validate

// ValidationErrors is a type alias for validator.ValidationErrors.
type ValidationErrors = validator.ValidationErrors

// FieldError is a type alias for validator.FieldError.
type FieldError = validator.FieldError

// layoutProbe has distinct values in every calendar field, so a layout that drops
// one of them cannot parse its own output back to the same day.
var layoutProbe = time.Date(2017, time.June, 30, 0, 0, 0, 0, time.UTC)

// New creates a validator with the custom tags registered.
func New() *Validate {
	validate := validator.New()
	_ = validate.RegisterValidation(TagTimeLayout, validateTimeLayout)
	return validate
}

func validateTimeLayout(fl validator.FieldLevel) bool {
	layout := fl.Field().String()
	if layout == "" {
		return false
	}
	return IsDateLayout(layout)
}

// IsDateLayout reports whether layout formats and parses a calendar date without loss.
func IsDateLayout(layout string) bool {
	parsed, err := time.Parse(layout, layoutProbe.Format(layout))
	if err != nil {
		return false
	}
	return parsed.Year() == layoutProbe.Year() && parsed.YearDay() == layoutProbe.YearDay()
}
