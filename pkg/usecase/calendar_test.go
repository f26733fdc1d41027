package usecase_test

import (
	"context"
	"testing"
	"time"

	"github.com/koyomi-lab/koyomi/pkg/domain/model"
	"github.com/koyomi-lab/koyomi/pkg/domain/types"
	"github.com/koyomi-lab/koyomi/pkg/repository"
	"github.com/koyomi-lab/koyomi/pkg/usecase"
	"github.com/m-mizutani/gt"
)

func newTestSource(t *testing.T) *repository.Memory {
	t.Helper()
	src := repository.NewMemory()
	gt.NoError(t, src.Add(
		model.Annotation{Date: model.NewDate(2014, time.March, 17), Label: "St. Patrick's Day"},
		model.Annotation{Date: model.NewDate(2014, time.July, 4), Label: "Independence Day"},
	))
	return src
}

func TestNewCalendar(t *testing.T) {
	t.Run("requires a source", func(t *testing.T) {
		_, err := usecase.NewCalendar(nil, types.Monday, nil)
		gt.Error(t, err)
	})

	t.Run("rejects unknown first weekday", func(t *testing.T) {
		_, err := usecase.NewCalendar(repository.NewMemory(), "Someday", nil)
		gt.Error(t, err)
	})
}

func TestBuildMonth(t *testing.T) {
	uc, err := usecase.NewCalendar(newTestSource(t), types.Monday, nil)
	gt.NoError(t, err)

	grid, err := uc.BuildMonth(context.Background(), 2014, time.March, "")
	gt.NoError(t, err)

	gt.Equal(t, grid.Title, "March")
	gt.Equal(t, grid.Year, 2014)
	gt.Equal(t, grid.WeekCount, 6)
	gt.Equal(t, len(grid.Cells), 42)
	gt.Equal(t, grid.DayNames[0], types.Monday)
	gt.Equal(t, len(grid.Highlights), 1)
	gt.Equal(t, grid.Highlights[0].Label, "St. Patrick's Day")
	gt.Equal(t, grid.Highlights[0].Weekday, types.Monday)
}

func TestBuildMonthOverridesFirstWeekday(t *testing.T) {
	uc, err := usecase.NewCalendar(newTestSource(t), types.Monday, nil)
	gt.NoError(t, err)

	grid, err := uc.BuildMonth(context.Background(), 2014, time.March, types.Sunday)
	gt.NoError(t, err)
	gt.Equal(t, grid.DayNames[0], types.Sunday)
}

func TestBuildYear(t *testing.T) {
	uc, err := usecase.NewCalendar(newTestSource(t), types.Monday, nil)
	gt.NoError(t, err)

	cal, err := uc.BuildYear(context.Background(), 2014, "")
	gt.NoError(t, err)

	gt.Equal(t, cal.Year, 2014)
	gt.Equal(t, len(cal.Months), 12)
	gt.Equal(t, cal.Months[0].Title, "January")
	gt.Equal(t, cal.Months[11].Title, "December")
	gt.Equal(t, len(cal.Annotations), 2)

	// Highlights land only in their months
	gt.Equal(t, len(cal.Months[2].Highlights), 1)
	gt.Equal(t, len(cal.Months[6].Highlights), 1)
	gt.Equal(t, len(cal.Months[0].Highlights), 0)

	// Highlight coordinates match the day cells they annotate
	march := cal.Months[2]
	for _, c := range march.Cells {
		if c.Day == 17 {
			gt.Equal(t, march.Highlights[0].WeekIndex, c.WeekIndex)
			gt.Equal(t, march.Highlights[0].Weekday, c.Weekday)
		}
	}
}
