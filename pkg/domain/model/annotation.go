package model

import (
	"fmt"
	"time"

	"github.com/m-mizutani/goerr/v2"
)

// Date represents a calendar date without a time of day
type Date struct {
	Year  int        `json:"year" yaml:"year"`
	Month time.Month `json:"month" yaml:"month"`
	Day   int        `json:"day" yaml:"day"`
}

// NewDate creates a Date from year, month and day
func NewDate(year int, month time.Month, day int) Date {
	return Date{Year: year, Month: month, Day: day}
}

// DateOf creates a Date from a time.Time
func DateOf(t time.Time) Date {
	return Date{Year: t.Year(), Month: t.Month(), Day: t.Day()}
}

// ParseDate parses a date in YYYY-MM-DD form
func ParseDate(s string) (Date, error) {
	t, err := time.Parse("2006-01-02", s)
	if err != nil {
		return Date{}, goerr.Wrap(ErrMalformedInput, "invalid date format",
			goerr.V("date", s))
	}
	return DateOf(t), nil
}

// Validate validates the date
func (d Date) Validate() error {
	if d.Month < time.January || d.Month > time.December {
		return goerr.Wrap(ErrMalformedInput, "month out of range",
			goerr.V("month", int(d.Month)))
	}
	if d.Day < 1 || d.Day > DaysInMonth(d.Year, d.Month) {
		return goerr.Wrap(ErrMalformedInput, "day out of range",
			goerr.V("year", d.Year),
			goerr.V("month", int(d.Month)),
			goerr.V("day", d.Day))
	}
	return nil
}

// Time returns the date at noon UTC. Noon avoids day rollover when the
// value is later shifted across timezones.
func (d Date) Time() time.Time {
	return time.Date(d.Year, d.Month, d.Day, 12, 0, 0, 0, time.UTC)
}

// Weekday returns the weekday of the date
func (d Date) Weekday() time.Weekday {
	return d.Time().Weekday()
}

// String returns the YYYY-MM-DD representation
func (d Date) String() string {
	return fmt.Sprintf("%04d-%02d-%02d", d.Year, int(d.Month), d.Day)
}

// DaysInMonth returns the number of days in the given month
func DaysInMonth(year int, month time.Month) int {
	// Day 0 of the next month is the last day of this month
	return time.Date(year, month+1, 0, 12, 0, 0, 0, time.UTC).Day()
}

// Annotation is an externally supplied (date, label) pair used to
// highlight specific days, such as holidays
type Annotation struct {
	Date  Date   `json:"date" yaml:"date"`
	Label string `json:"label" yaml:"label"`
}

// NewAnnotation creates a validated Annotation
func NewAnnotation(date Date, label string) (Annotation, error) {
	a := Annotation{Date: date, Label: label}
	if err := a.Validate(); err != nil {
		return Annotation{}, err
	}
	return a, nil
}

// Validate validates the annotation
func (a *Annotation) Validate() error {
	if err := a.Date.Validate(); err != nil {
		return err
	}
	if a.Label == "" {
		return goerr.Wrap(ErrMalformedInput, "annotation label is required",
			goerr.V("date", a.Date.String()))
	}
	return nil
}
