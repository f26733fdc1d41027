package repository

import (
	"context"
	"sort"
	"time"

	"github.com/koyomi-lab/koyomi/pkg/domain/interfaces"
	"github.com/koyomi-lab/koyomi/pkg/domain/model"
)

// holidayRule describes one US federal holiday, either as a fixed date
// or as the nth weekday of a month (negative nth counts from the end)
type holidayRule struct {
	label   string
	month   time.Month
	day     int
	weekday time.Weekday
	nth     int
}

func fixed(label string, month time.Month, day int) holidayRule {
	return holidayRule{label: label, month: month, day: day}
}

func float(label string, month time.Month, weekday time.Weekday, nth int) holidayRule {
	return holidayRule{label: label, month: month, weekday: weekday, nth: nth}
}

// usFederalRules lists the federal holidays observed by the US Office of
// Personnel Management
var usFederalRules = []holidayRule{
	fixed("New Year's Day", time.January, 1),
	float("Birthday of Martin Luther King, Jr.", time.January, time.Monday, 3),
	float("Washington's Birthday", time.February, time.Monday, 3),
	float("Memorial Day", time.May, time.Monday, -1),
	fixed("Independence Day", time.July, 4),
	float("Labor Day", time.September, time.Monday, 1),
	float("Columbus Day", time.October, time.Monday, 2),
	fixed("Veterans Day", time.November, 11),
	float("Thanksgiving Day", time.November, time.Thursday, 4),
	fixed("Christmas Day", time.December, 25),
}

// Builtin implements HolidaySource with computed US federal holidays
type Builtin struct{}

// NewBuiltin creates the builtin US federal holiday source
func NewBuiltin() *Builtin {
	return &Builtin{}
}

var _ interfaces.HolidaySource = (*Builtin)(nil)

// Annotations computes the observed US federal holidays of a year,
// sorted by date. A fixed-date holiday falling on Saturday is observed
// the preceding Friday, on Sunday the following Monday; January 1
// observed on December 31 therefore lands in the preceding year.
func (b *Builtin) Annotations(ctx context.Context, year int) ([]model.Annotation, error) {
	var result []model.Annotation
	// The adjacent years' fixed holidays may be observed inside this one
	for _, y := range []int{year - 1, year, year + 1} {
		for _, rule := range usFederalRules {
			observed := rule.observe(y)
			if observed.Year() != year {
				continue
			}
			result = append(result, model.Annotation{
				Date:  model.DateOf(observed),
				Label: rule.label,
			})
		}
	}

	sort.SliceStable(result, func(i, j int) bool {
		return result[i].Date.Time().Before(result[j].Date.Time())
	})
	return result, nil
}

// observe resolves the rule for a year to the observed date
func (r holidayRule) observe(year int) time.Time {
	if r.nth == 0 {
		d := time.Date(year, r.month, r.day, 12, 0, 0, 0, time.UTC)
		switch d.Weekday() {
		case time.Saturday:
			return d.AddDate(0, 0, -1)
		case time.Sunday:
			return d.AddDate(0, 0, 1)
		}
		return d
	}
	return nthWeekday(year, r.month, r.weekday, r.nth)
}

// nthWeekday finds the nth occurrence of a weekday in a month; nth -1
// means the last occurrence
func nthWeekday(year int, month time.Month, weekday time.Weekday, nth int) time.Time {
	if nth < 0 {
		last := time.Date(year, month+1, 0, 12, 0, 0, 0, time.UTC)
		back := (int(last.Weekday()) - int(weekday) + 7) % 7
		return last.AddDate(0, 0, -back)
	}
	first := time.Date(year, month, 1, 12, 0, 0, 0, time.UTC)
	forward := (int(weekday) - int(first.Weekday()) + 7) % 7
	return first.AddDate(0, 0, forward+(nth-1)*7)
}
