package types

import (
	"time"

	"github.com/google/uuid"
	"github.com/m-mizutani/goerr/v2"
)

// Weekday represents a weekday by its three-letter abbreviation
type Weekday string

const (
	Monday    Weekday = "Mon"
	Tuesday   Weekday = "Tue"
	Wednesday Weekday = "Wed"
	Thursday  Weekday = "Thu"
	Friday    Weekday = "Fri"
	Saturday  Weekday = "Sat"
	Sunday    Weekday = "Sun"
)

// weekdays is the canonical Monday-first ordering
var weekdays = []Weekday{Monday, Tuesday, Wednesday, Thursday, Friday, Saturday, Sunday}

// Weekdays returns the seven weekday names in Monday-first order
func Weekdays() []Weekday {
	result := make([]Weekday, len(weekdays))
	copy(result, weekdays)
	return result
}

// ParseWeekday parses a weekday abbreviation
func ParseWeekday(s string) (Weekday, error) {
	for _, w := range weekdays {
		if string(w) == s {
			return w, nil
		}
	}
	return "", goerr.New("unknown weekday name", goerr.V("name", s))
}

// String returns the string representation
func (w Weekday) String() string {
	return string(w)
}

// Index returns the position of the weekday in the Monday-first ordering,
// or -1 if the weekday is not one of the seven recognized names
func (w Weekday) Index() int {
	for i, d := range weekdays {
		if d == w {
			return i
		}
	}
	return -1
}

// Valid reports whether the weekday is one of the seven recognized names
func (w Weekday) Valid() bool {
	return w.Index() >= 0
}

// WeekdayOf converts a time.Weekday (Sunday-first) to the Monday-first Weekday
func WeekdayOf(d time.Weekday) Weekday {
	return weekdays[(int(d)+6)%7]
}

// RequestID represents an HTTP request identifier
type RequestID string

// String returns the string representation
func (id RequestID) String() string {
	return string(id)
}

// NewRequestID creates a new RequestID
func NewRequestID() RequestID {
	return RequestID(uuid.New().String())
}
