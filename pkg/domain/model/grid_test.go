package model_test

import (
	"testing"
	"time"

	"github.com/koyomi-lab/koyomi/pkg/domain/model"
	"github.com/koyomi-lab/koyomi/pkg/domain/types"
	"github.com/m-mizutani/gt"
)

func TestBuildMonthGridLength(t *testing.T) {
	for year := 2013; year <= 2016; year++ {
		for month := time.January; month <= time.December; month++ {
			cfg := model.GridConfig{Year: year, Month: month, FirstWeekday: types.Monday}
			cells, err := model.BuildMonthGrid(cfg)
			gt.NoError(t, err)
			gt.Equal(t, len(cells)%7, 0)
			gt.B(t, len(cells) >= 28 && len(cells) <= 42).True()
		}
	}
}

func TestBuildMonthGridCoversAllDays(t *testing.T) {
	// Every rotation of the first weekday must yield 1..daysInMonth
	// exactly once, the rest blank
	for _, first := range types.Weekdays() {
		cfg := model.GridConfig{Year: 2014, Month: time.March, FirstWeekday: first}
		cells, err := model.BuildMonthGrid(cfg)
		gt.NoError(t, err)

		seen := map[int]int{}
		for _, c := range cells {
			if c.Day != 0 {
				seen[c.Day]++
			}
		}
		gt.Equal(t, len(seen), 31)
		for day := 1; day <= 31; day++ {
			gt.Equal(t, seen[day], 1)
		}
	}
}

func TestBuildMonthGridExample(t *testing.T) {
	// March 2014, Monday-first: March 1 is a Saturday, so Mon-Fri of the
	// first week are blank
	cfg := model.GridConfig{Year: 2014, Month: time.March, FirstWeekday: types.Monday}
	cells, err := model.BuildMonthGrid(cfg)
	gt.NoError(t, err)

	gt.Equal(t, cells[0].Weekday, types.Monday)
	gt.Equal(t, cells[0].Day, 0)
	gt.Equal(t, cells[0].WeekIndex, 0)

	gt.Equal(t, cells[5].Weekday, types.Saturday)
	gt.Equal(t, cells[5].Day, 1)
	gt.Equal(t, cells[5].WeekIndex, 0)
	gt.B(t, cells[5].IsWeekend).True()
	gt.B(t, cells[4].IsWeekend).False()
}

func TestBuildMonthGridIdempotent(t *testing.T) {
	cfg := model.GridConfig{Year: 2014, Month: time.July, FirstWeekday: types.Sunday}
	a, err := model.BuildMonthGrid(cfg)
	gt.NoError(t, err)
	b, err := model.BuildMonthGrid(cfg)
	gt.NoError(t, err)
	gt.Equal(t, a, b)
}

func TestBuildMonthGridNonLeapFebruary(t *testing.T) {
	cfg := model.GridConfig{Year: 2014, Month: time.February, FirstWeekday: types.Monday}
	cells, err := model.BuildMonthGrid(cfg)
	gt.NoError(t, err)
	for _, c := range cells {
		gt.B(t, c.Day <= 28).True()
	}

	cfg.Year = 2016
	cells, err = model.BuildMonthGrid(cfg)
	gt.NoError(t, err)
	max := 0
	for _, c := range cells {
		if c.Day > max {
			max = c.Day
		}
	}
	gt.Equal(t, max, 29)
}

func TestBuildMonthGridWeekendPolicy(t *testing.T) {
	t.Run("default is last two of the rotation", func(t *testing.T) {
		cfg := model.GridConfig{Year: 2014, Month: time.March, FirstWeekday: types.Wednesday}
		cells, err := model.BuildMonthGrid(cfg)
		gt.NoError(t, err)
		// Rotation Wed..Tue puts Mon and Tue in the weekend columns
		for _, c := range cells {
			want := c.Weekday == types.Monday || c.Weekday == types.Tuesday
			gt.Equal(t, c.IsWeekend, want)
		}
	})

	t.Run("explicit weekend set", func(t *testing.T) {
		cfg := model.GridConfig{
			Year:         2014,
			Month:        time.March,
			FirstWeekday: types.Sunday,
			Weekend:      []types.Weekday{types.Friday, types.Saturday},
		}
		cells, err := model.BuildMonthGrid(cfg)
		gt.NoError(t, err)
		for _, c := range cells {
			want := c.Weekday == types.Friday || c.Weekday == types.Saturday
			gt.Equal(t, c.IsWeekend, want)
		}
	})
}

func TestGridConfigValidate(t *testing.T) {
	t.Run("invalid month", func(t *testing.T) {
		cfg := model.GridConfig{Year: 2014, Month: 13, FirstWeekday: types.Monday}
		_, err := model.BuildMonthGrid(cfg)
		gt.Error(t, err)
		gt.S(t, err.Error()).Contains("month out of range")
	})

	t.Run("invalid first weekday", func(t *testing.T) {
		cfg := model.GridConfig{Year: 2014, Month: 3, FirstWeekday: "Funday"}
		_, err := model.BuildMonthGrid(cfg)
		gt.Error(t, err)
		gt.S(t, err.Error()).Contains("unknown first weekday")
	})

	t.Run("invalid weekend name", func(t *testing.T) {
		cfg := model.GridConfig{
			Year: 2014, Month: 3, FirstWeekday: types.Monday,
			Weekend: []types.Weekday{"Caturday"},
		}
		_, err := model.BuildMonthGrid(cfg)
		gt.Error(t, err)
	})
}

func TestBuildHighlights(t *testing.T) {
	cfg := model.GridConfig{Year: 2014, Month: time.March, FirstWeekday: types.Monday}

	t.Run("example date lands on its cell", func(t *testing.T) {
		hs, err := model.BuildHighlights(cfg, []model.Annotation{
			{Date: model.NewDate(2014, time.March, 17), Label: "Holiday X"},
		})
		gt.NoError(t, err)
		gt.Equal(t, len(hs), 1)
		gt.Equal(t, hs[0].Weekday, types.Monday)
		gt.Equal(t, hs[0].Label, "Holiday X")

		cells, err := model.BuildMonthGrid(cfg)
		gt.NoError(t, err)
		for _, c := range cells {
			if c.Day == 17 {
				gt.Equal(t, hs[0].WeekIndex, c.WeekIndex)
				gt.Equal(t, hs[0].Weekday, c.Weekday)
			}
		}
	})

	t.Run("out-of-month dates are silently excluded", func(t *testing.T) {
		hs, err := model.BuildHighlights(cfg, []model.Annotation{
			{Date: model.NewDate(2014, time.April, 1), Label: "wrong month"},
			{Date: model.NewDate(2013, time.March, 1), Label: "wrong year"},
			{Date: model.NewDate(2014, time.March, 8), Label: "kept"},
		})
		gt.NoError(t, err)
		gt.Equal(t, len(hs), 1)
		gt.Equal(t, hs[0].Label, "kept")
	})

	t.Run("preserves input order", func(t *testing.T) {
		hs, err := model.BuildHighlights(cfg, []model.Annotation{
			{Date: model.NewDate(2014, time.March, 20), Label: "second in month"},
			{Date: model.NewDate(2014, time.March, 3), Label: "first in month"},
		})
		gt.NoError(t, err)
		gt.Equal(t, len(hs), 2)
		gt.Equal(t, hs[0].Label, "second in month")
		gt.Equal(t, hs[1].Label, "first in month")
	})

	t.Run("invalid config is rejected", func(t *testing.T) {
		bad := model.GridConfig{Year: 2014, Month: 0, FirstWeekday: types.Monday}
		_, err := model.BuildHighlights(bad, nil)
		gt.Error(t, err)
	})
}

func TestHighlightConsistency(t *testing.T) {
	// Every day of the month, highlighted under every rotation, must map
	// onto exactly the coordinates of its DayCell. Includes last-column
	// dates, where a week-index formula keyed to day instead of cell
	// offset would drift by one row.
	for _, first := range types.Weekdays() {
		cfg := model.GridConfig{Year: 2014, Month: time.March, FirstWeekday: first}
		cells, err := model.BuildMonthGrid(cfg)
		gt.NoError(t, err)

		byDay := map[int]model.DayCell{}
		for _, c := range cells {
			if c.Day != 0 {
				byDay[c.Day] = c
			}
		}

		for day := 1; day <= 31; day++ {
			hs, err := model.BuildHighlights(cfg, []model.Annotation{
				{Date: model.NewDate(2014, time.March, day), Label: "d"},
			})
			gt.NoError(t, err)
			gt.Equal(t, len(hs), 1)
			gt.Equal(t, hs[0].Weekday, byDay[day].Weekday)
			gt.Equal(t, hs[0].WeekIndex, byDay[day].WeekIndex)
		}
	}
}
