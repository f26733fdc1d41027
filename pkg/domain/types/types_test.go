package types_test

import (
	"testing"
	"time"

	"github.com/koyomi-lab/koyomi/pkg/domain/types"
	"github.com/m-mizutani/gt"
)

func TestParseWeekday(t *testing.T) {
	t.Run("parses all seven names", func(t *testing.T) {
		for _, name := range []string{"Mon", "Tue", "Wed", "Thu", "Fri", "Sat", "Sun"} {
			w, err := types.ParseWeekday(name)
			gt.NoError(t, err)
			gt.Equal(t, w.String(), name)
		}
	})

	t.Run("rejects unknown names", func(t *testing.T) {
		for _, name := range []string{"Monday", "mon", "", "Xyz"} {
			_, err := types.ParseWeekday(name)
			gt.Error(t, err)
		}
	})
}

func TestWeekdayIndex(t *testing.T) {
	gt.Equal(t, types.Monday.Index(), 0)
	gt.Equal(t, types.Sunday.Index(), 6)
	gt.Equal(t, types.Weekday("Nope").Index(), -1)
	gt.B(t, types.Friday.Valid()).True()
	gt.B(t, types.Weekday("Fr").Valid()).False()
}

func TestWeekdayOf(t *testing.T) {
	// time.Weekday is Sunday-first, ours is Monday-first
	gt.Equal(t, types.WeekdayOf(time.Monday), types.Monday)
	gt.Equal(t, types.WeekdayOf(time.Sunday), types.Sunday)
	gt.Equal(t, types.WeekdayOf(time.Saturday), types.Saturday)
}

func TestNewRequestID(t *testing.T) {
	id := types.NewRequestID()
	gt.V(t, id).NotEqual(types.RequestID(""))
	gt.V(t, types.NewRequestID()).NotEqual(id)
}
