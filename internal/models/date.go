package models

import "time"

// DateLayout is the calendar-date format used by both the UI and the backend.
const DateLayout = "2006-01-02"

// Date is a calendar date in YYYY-MM-DD form. The zero value "" means absent.
type Date string

// Today returns the current calendar date.
func Today() Date { return Date(time.Now().Format(DateLayout)) }

// Time parses the date; ok is false for an absent or malformed value.
func (d Date) Time() (time.Time, bool) {
	t, err := time.Parse(DateLayout, string(d))
	return t, err == nil
}

// Valid reports whether d parses as a calendar date.
func (d Date) Valid() bool {
	_, ok := d.Time()
	return ok
}

// Before compares two dates as calendar days.
func (d Date) Before(other Date) bool {
	a, aok := d.Time()
	b, bok := other.Time()
	return aok && bok && a.Before(b)
}

// BeforeToday reports whether d is in the past, compared as dates.
func (d Date) BeforeToday() bool { return d.Before(Today()) }
