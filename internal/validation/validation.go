// Package validation holds the form-level validators used before a create
// call reaches a service. When a field fails, the service call is skipped
// entirely and the violations render inline per field.
package validation

import (
	"regexp"
	"strings"

	"projectflow/internal/models"
)

type Violations map[string]string

func (v Violations) Empty() bool { return len(v) == 0 }

var emailRe = regexp.MustCompile(`\S+@\S+\.\S+`)

// Basic validators
func Required(field, value string, v Violations) {
	if strings.TrimSpace(value) == "" {
		v[field] = "required"
	}
}

func Email(field, value string, v Violations) {
	if value != "" && !emailRe.MatchString(value) {
		v[field] = "invalid_email"
	}
}

func PositiveFloat(field string, val float64, v Violations) {
	if val <= 0 {
		v[field] = "must_be_positive"
	}
}

func NonNegativeFloat(field string, val float64, v Violations) {
	if val < 0 {
		v[field] = "must_not_be_negative"
	}
}

func PositiveInt(field string, val int, v Violations) {
	if val <= 0 {
		v[field] = "required"
	}
}

func RangeInt(field string, val, minVal, maxVal int, v Violations) {
	if val < minVal || val > maxVal {
		v[field] = "out_of_range"
	}
}

// Date validators compare calendar dates, not timestamps.
func ValidDate(field string, d models.Date, v Violations) {
	if d == "" {
		v[field] = "required"
		return
	}
	if !d.Valid() {
		v[field] = "invalid_date"
	}
}

func DateNotPast(field string, d models.Date, v Violations) {
	if d != "" && d.Valid() && d.BeforeToday() {
		v[field] = "date_in_past"
	}
}
