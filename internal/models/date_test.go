package models

import "testing"

func TestDateValid(t *testing.T) {
	cases := []struct {
		d    Date
		want bool
	}{
		{"2026-09-01", true},
		{"2026-13-01", false},
		{"01-09-2026", false},
		{"", false},
		{"not a date", false},
	}
	for _, c := range cases {
		if got := c.d.Valid(); got != c.want {
			t.Errorf("Valid(%q) = %v, want %v", c.d, got, c.want)
		}
	}
}

func TestDateBefore(t *testing.T) {
	if !Date("2026-01-01").Before("2026-01-02") {
		t.Error("earlier date not before later")
	}
	if Date("2026-01-02").Before("2026-01-02") {
		t.Error("equal dates compare before")
	}
	// malformed operands never compare before
	if Date("").Before("2026-01-02") || Date("2026-01-01").Before("") {
		t.Error("absent date compared before")
	}
}

func TestBeforeToday(t *testing.T) {
	if !Date("2000-01-01").BeforeToday() {
		t.Error("past date not before today")
	}
	if Today().BeforeToday() {
		t.Error("today counted as past")
	}
}
