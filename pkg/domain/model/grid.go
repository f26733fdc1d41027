package model

import (
	"time"

	"github.com/koyomi-lab/koyomi/pkg/domain/types"
	"github.com/m-mizutani/goerr/v2"
)

// GridConfig describes one month of a calendar grid
type GridConfig struct {
	Year         int
	Month        time.Month
	FirstWeekday types.Weekday

	// Weekend lists the weekday names drawn with the weekend background.
	// Empty means the last two names of the rotated weekday list, i.e. the
	// two days following five workdays.
	Weekend []types.Weekday
}

// Validate validates the grid configuration
func (c *GridConfig) Validate() error {
	if c.Month < time.January || c.Month > time.December {
		return goerr.Wrap(ErrInvalidConfig, "month out of range",
			goerr.V("month", int(c.Month)))
	}
	if !c.FirstWeekday.Valid() {
		return goerr.Wrap(ErrInvalidConfig, "unknown first weekday",
			goerr.V("firstWeekday", string(c.FirstWeekday)))
	}
	for _, w := range c.Weekend {
		if !w.Valid() {
			return goerr.Wrap(ErrInvalidConfig, "unknown weekend weekday",
				goerr.V("weekday", string(w)))
		}
	}
	return nil
}

// DayNames returns the seven weekday names rotated so that FirstWeekday
// is the leftmost column
func (c *GridConfig) DayNames() []types.Weekday {
	all := types.Weekdays()
	first := c.FirstWeekday.Index()
	names := make([]types.Weekday, 7)
	for i := range names {
		names[i] = all[(first+i)%7]
	}
	return names
}

// column returns the 0-based column of a date under the configured rotation
func (c *GridConfig) column(d Date) int {
	return (types.WeekdayOf(d.Weekday()).Index() - c.FirstWeekday.Index() + 7) % 7
}

// weekendSet resolves the weekend policy against the rotated day names
func (c *GridConfig) weekendSet() map[types.Weekday]bool {
	set := make(map[types.Weekday]bool, 2)
	if len(c.Weekend) == 0 {
		names := c.DayNames()
		set[names[5]] = true
		set[names[6]] = true
		return set
	}
	for _, w := range c.Weekend {
		set[w] = true
	}
	return set
}

// DayCell is one cell of a month grid. Day is 0 for the leading and
// trailing padding cells.
type DayCell struct {
	Weekday   types.Weekday `json:"weekday"`
	WeekIndex int           `json:"week"`
	Day       int           `json:"day,omitempty"`
	IsWeekend bool          `json:"weekend"`
}

// HighlightCell marks a grid cell carrying an annotation label
type HighlightCell struct {
	Weekday   types.Weekday `json:"weekday"`
	WeekIndex int           `json:"week"`
	Label     string        `json:"label"`
}

// BuildMonthGrid enumerates all days of the configured month as grid
// cells, padded with blank cells so the result forms complete 7-day
// weeks. The returned length is always a multiple of 7.
func BuildMonthGrid(cfg GridConfig) ([]DayCell, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	names := cfg.DayNames()
	weekend := cfg.weekendSet()

	lead := cfg.column(NewDate(cfg.Year, cfg.Month, 1))
	days := DaysInMonth(cfg.Year, cfg.Month)
	weeks := (lead + days + 6) / 7

	cells := make([]DayCell, 7*weeks)
	for i := range cells {
		name := names[i%7]
		cell := DayCell{
			Weekday:   name,
			WeekIndex: i / 7,
			IsWeekend: weekend[name],
		}
		if day := i - lead + 1; day >= 1 && day <= days {
			cell.Day = day
		}
		cells[i] = cell
	}
	return cells, nil
}

// BuildHighlights filters annotations to the configured month and maps
// each onto the same weekday/week coordinates used by BuildMonthGrid,
// so a highlight always lands on its matching DayCell. Dates outside
// the month are silently excluded; the output preserves input order.
func BuildHighlights(cfg GridConfig, annotations []Annotation) ([]HighlightCell, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	names := cfg.DayNames()
	lead := cfg.column(NewDate(cfg.Year, cfg.Month, 1))

	var cells []HighlightCell
	for _, a := range annotations {
		if a.Date.Year != cfg.Year || a.Date.Month != cfg.Month {
			continue
		}
		cells = append(cells, HighlightCell{
			Weekday:   names[cfg.column(a.Date)],
			WeekIndex: (lead + a.Date.Day - 1) / 7,
			Label:     a.Label,
		})
	}
	return cells, nil
}
