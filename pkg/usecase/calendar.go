package usecase

import (
	"context"
	"time"

	"github.com/koyomi-lab/koyomi/pkg/domain/interfaces"
	"github.com/koyomi-lab/koyomi/pkg/domain/model"
	"github.com/koyomi-lab/koyomi/pkg/domain/types"
	"github.com/m-mizutani/goerr/v2"
)

// Calendar builds month and year grids from a holiday source
type Calendar struct {
	source       interfaces.HolidaySource
	firstWeekday types.Weekday
	weekend      []types.Weekday
}

// NewCalendar creates a Calendar usecase. firstWeekday and weekend are
// the defaults applied when a caller passes no override.
func NewCalendar(source interfaces.HolidaySource, firstWeekday types.Weekday, weekend []types.Weekday) (*Calendar, error) {
	if source == nil {
		return nil, goerr.New("holiday source is required")
	}
	if !firstWeekday.Valid() {
		return nil, goerr.Wrap(model.ErrInvalidConfig, "unknown first weekday",
			goerr.V("firstWeekday", string(firstWeekday)))
	}
	return &Calendar{
		source:       source,
		firstWeekday: firstWeekday,
		weekend:      weekend,
	}, nil
}

var _ interfaces.CalendarBuilder = (*Calendar)(nil)

// config resolves the grid configuration for one month
func (uc *Calendar) config(year int, month time.Month, firstWeekday types.Weekday) model.GridConfig {
	if firstWeekday == "" {
		firstWeekday = uc.firstWeekday
	}
	return model.GridConfig{
		Year:         year,
		Month:        month,
		FirstWeekday: firstWeekday,
		Weekend:      uc.weekend,
	}
}

// BuildMonth builds one month grid with its holiday highlights. An
// empty firstWeekday selects the configured default.
func (uc *Calendar) BuildMonth(ctx context.Context, year int, month time.Month, firstWeekday types.Weekday) (*model.MonthGrid, error) {
	annotations, err := uc.source.Annotations(ctx, year)
	if err != nil {
		return nil, goerr.Wrap(err, "failed to load annotations",
			goerr.V("year", year))
	}
	return uc.buildMonth(year, month, firstWeekday, annotations)
}

func (uc *Calendar) buildMonth(year int, month time.Month, firstWeekday types.Weekday, annotations []model.Annotation) (*model.MonthGrid, error) {
	cfg := uc.config(year, month, firstWeekday)

	cells, err := model.BuildMonthGrid(cfg)
	if err != nil {
		return nil, err
	}
	highlights, err := model.BuildHighlights(cfg, annotations)
	if err != nil {
		return nil, err
	}

	return &model.MonthGrid{
		Config:     cfg,
		Title:      month.String(),
		Year:       year,
		Month:      int(month),
		DayNames:   cfg.DayNames(),
		WeekCount:  len(cells) / 7,
		Cells:      cells,
		Highlights: highlights,
	}, nil
}

// BuildYear builds all twelve month grids of a year. Annotations are
// fetched once and joined into each month.
func (uc *Calendar) BuildYear(ctx context.Context, year int, firstWeekday types.Weekday) (*model.YearCalendar, error) {
	annotations, err := uc.source.Annotations(ctx, year)
	if err != nil {
		return nil, goerr.Wrap(err, "failed to load annotations",
			goerr.V("year", year))
	}

	cal := &model.YearCalendar{
		Year:        year,
		Months:      make([]*model.MonthGrid, 0, 12),
		Annotations: annotations,
	}
	for month := time.January; month <= time.December; month++ {
		grid, err := uc.buildMonth(year, month, firstWeekday, annotations)
		if err != nil {
			return nil, goerr.Wrap(err, "failed to build month",
				goerr.V("year", year),
				goerr.V("month", int(month)))
		}
		cal.Months = append(cal.Months, grid)
	}
	return cal, nil
}
