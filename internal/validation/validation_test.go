package validation

import (
	"testing"

	"projectflow/internal/models"
)

func TestRequired(t *testing.T) {
	v := Violations{}
	Required("name", "", v)
	Required("company", "   ", v)
	Required("email", "a@b.co", v)
	if v["name"] != "required" || v["company"] != "required" {
		t.Errorf("violations = %v", v)
	}
	if _, found := v["email"]; found {
		t.Errorf("non-empty value flagged: %v", v)
	}
}

func TestEmail(t *testing.T) {
	cases := []struct {
		value string
		want  string
	}{
		{"user@example.com", ""},
		{"first.last@sub.example.co", ""},
		{"no-at-sign", "invalid_email"},
		{"user@nodot", "invalid_email"},
		{"", ""},
	}
	for _, c := range cases {
		v := Violations{}
		Email("email", c.value, v)
		if v["email"] != c.want {
			t.Errorf("Email(%q) = %q, want %q", c.value, v["email"], c.want)
		}
	}
}

func TestNumericValidators(t *testing.T) {
	v := Violations{}
	PositiveFloat("amount", 0, v)
	NonNegativeFloat("tax", -1, v)
	PositiveInt("clientId", 0, v)
	RangeInt("progress", 101, 0, 100, v)
	if v["amount"] != "must_be_positive" {
		t.Errorf("amount = %q", v["amount"])
	}
	if v["tax"] != "must_not_be_negative" {
		t.Errorf("tax = %q", v["tax"])
	}
	if v["clientId"] != "required" {
		t.Errorf("clientId = %q", v["clientId"])
	}
	if v["progress"] != "out_of_range" {
		t.Errorf("progress = %q", v["progress"])
	}

	v = Violations{}
	PositiveFloat("amount", 0.01, v)
	NonNegativeFloat("tax", 0, v)
	RangeInt("progress", 100, 0, 100, v)
	if !v.Empty() {
		t.Errorf("valid values flagged: %v", v)
	}
}

func TestDateValidators(t *testing.T) {
	v := Violations{}
	ValidDate("dueDate", "", v)
	if v["dueDate"] != "required" {
		t.Errorf("empty date = %q", v["dueDate"])
	}

	v = Violations{}
	ValidDate("dueDate", "31-12-2026", v)
	if v["dueDate"] != "invalid_date" {
		t.Errorf("malformed date = %q", v["dueDate"])
	}

	v = Violations{}
	ValidDate("dueDate", "2026-12-31", v)
	if !v.Empty() {
		t.Errorf("valid date flagged: %v", v)
	}
}

func TestDateNotPast(t *testing.T) {
	v := Violations{}
	DateNotPast("dueDate", "2000-01-01", v)
	if v["dueDate"] != "date_in_past" {
		t.Errorf("past date = %q", v["dueDate"])
	}

	v = Violations{}
	DateNotPast("dueDate", models.Today(), v)
	DateNotPast("startDate", "", v)
	if !v.Empty() {
		t.Errorf("today or absent flagged: %v", v)
	}
}
