package repository

import (
	"context"
	"io"
	"net/http"
	"os"
	"strings"

	ics "github.com/arran4/golang-ical"
	"github.com/koyomi-lab/koyomi/pkg/domain/interfaces"
	"github.com/koyomi-lab/koyomi/pkg/domain/model"
	"github.com/m-mizutani/ctxlog"
	"github.com/m-mizutani/goerr/v2"
)

// ICS implements HolidaySource backed by an iCalendar feed, read once
// from a local file or an HTTP URL
type ICS struct {
	annotations []model.Annotation
}

// NewICS loads an iCalendar feed and keeps every event carrying a
// summary and a start date. Events without either are skipped, not
// treated as errors; feeds in the wild are messy.
func NewICS(ctx context.Context, location string) (*ICS, error) {
	if location == "" {
		return nil, goerr.New("iCalendar location is required")
	}

	r, err := openICS(ctx, location)
	if err != nil {
		return nil, err
	}
	defer r.Close()

	cal, err := ics.ParseCalendar(r)
	if err != nil {
		return nil, goerr.Wrap(err, "failed to parse iCalendar feed",
			goerr.V("location", location))
	}

	logger := ctxlog.From(ctx)
	var annotations []model.Annotation
	for _, event := range cal.Events() {
		start, err := event.GetStartAt()
		if err != nil {
			if start, err = event.GetAllDayStartAt(); err != nil {
				logger.Debug("skipping event without start date", "uid", event.Id())
				continue
			}
		}
		summary := event.GetProperty(ics.ComponentPropertySummary)
		if summary == nil || summary.Value == "" {
			logger.Debug("skipping event without summary", "uid", event.Id())
			continue
		}
		annotations = append(annotations, model.Annotation{
			Date:  model.DateOf(start),
			Label: summary.Value,
		})
	}

	return &ICS{annotations: annotations}, nil
}

func openICS(ctx context.Context, location string) (io.ReadCloser, error) {
	if strings.HasPrefix(location, "http://") || strings.HasPrefix(location, "https://") {
		req, err := http.NewRequestWithContext(ctx, http.MethodGet, location, nil)
		if err != nil {
			return nil, goerr.Wrap(err, "invalid iCalendar URL", goerr.V("url", location))
		}
		resp, err := http.DefaultClient.Do(req)
		if err != nil {
			return nil, goerr.Wrap(err, "failed to fetch iCalendar feed", goerr.V("url", location))
		}
		if resp.StatusCode != http.StatusOK {
			_ = resp.Body.Close()
			return nil, goerr.New("unexpected status fetching iCalendar feed",
				goerr.V("url", location),
				goerr.V("status", resp.StatusCode))
		}
		return resp.Body, nil
	}

	f, err := os.Open(location)
	if err != nil {
		return nil, goerr.Wrap(err, "failed to open iCalendar file", goerr.V("path", location))
	}
	return f, nil
}

var _ interfaces.HolidaySource = (*ICS)(nil)

// Annotations returns the feed's annotations for a year in feed order
func (s *ICS) Annotations(ctx context.Context, year int) ([]model.Annotation, error) {
	var result []model.Annotation
	for _, a := range s.annotations {
		if a.Date.Year == year {
			result = append(result, a)
		}
	}
	return result, nil
}
