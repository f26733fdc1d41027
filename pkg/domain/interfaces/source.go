package interfaces

import (
	"context"
	"time"

	"github.com/koyomi-lab/koyomi/pkg/domain/model"
	"github.com/koyomi-lab/koyomi/pkg/domain/types"
)

// HolidaySource supplies annotated dates for a year
type HolidaySource interface {
	Annotations(ctx context.Context, year int) ([]model.Annotation, error)
}

// CalendarBuilder builds month and year calendar grids
type CalendarBuilder interface {
	BuildMonth(ctx context.Context, year int, month time.Month, firstWeekday types.Weekday) (*model.MonthGrid, error)
	BuildYear(ctx context.Context, year int, firstWeekday types.Weekday) (*model.YearCalendar, error)
}
