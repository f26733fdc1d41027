package render

import (
	"fmt"
	"io"
	"time"

	ics "github.com/arran4/golang-ical"
	"github.com/koyomi-lab/koyomi/pkg/domain/model"
	"github.com/m-mizutani/goerr/v2"
)

// ICS renders the annotated dates of a year calendar as an iCalendar
// feed of all-day events
type ICS struct{}

// NewICS creates the ICS renderer
func NewICS() *ICS {
	return &ICS{}
}

// Render writes the feed
func (r *ICS) Render(w io.Writer, cal *model.YearCalendar) error {
	out := ics.NewCalendar()
	out.SetProductId("-//koyomi//calendar//EN")
	out.SetMethod(ics.MethodPublish)
	out.SetCalscale("GREGORIAN")
	out.SetXWRCalName(fmt.Sprintf("Calendar %d", cal.Year))

	now := time.Now().UTC()
	for i, a := range cal.Annotations {
		uid := fmt.Sprintf("%s-%d@koyomi", a.Date.String(), i)
		event := out.AddEvent(uid)
		event.SetDtStampTime(now)
		event.SetAllDayStartAt(a.Date.Time())
		event.SetAllDayEndAt(a.Date.Time().AddDate(0, 0, 1))
		event.SetSummary(a.Label)
	}

	if err := out.SerializeTo(w); err != nil {
		return goerr.Wrap(err, "failed to serialize iCalendar feed")
	}
	return nil
}
