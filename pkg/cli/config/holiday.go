package config

import (
	"context"
	"log/slog"

	"github.com/koyomi-lab/koyomi/pkg/domain/interfaces"
	"github.com/koyomi-lab/koyomi/pkg/repository"
	"github.com/m-mizutani/goerr/v2"
	"github.com/urfave/cli/v3"
)

// Holiday holds holiday source configuration
type Holiday struct {
	Source   string
	Location string
}

// Flags returns CLI flags for Holiday configuration
func (h *Holiday) Flags() []cli.Flag {
	return []cli.Flag{
		&cli.StringFlag{
			Name:        "holiday-source",
			Usage:       "Holiday source (us, file, ics, none)",
			Category:    "Holidays",
			Value:       "us",
			Sources:     cli.EnvVars("KOYOMI_HOLIDAY_SOURCE"),
			Destination: &h.Source,
		},
		&cli.StringFlag{
			Name:        "holiday-location",
			Usage:       "Holiday file path (source=file) or feed path/URL (source=ics)",
			Category:    "Holidays",
			Sources:     cli.EnvVars("KOYOMI_HOLIDAY_LOCATION"),
			Destination: &h.Location,
		},
	}
}

// Configure creates the holiday source selected by the configuration
func (h *Holiday) Configure(ctx context.Context) (interfaces.HolidaySource, error) {
	switch h.Source {
	case "us", "":
		return repository.NewBuiltin(), nil
	case "file":
		return repository.NewFile(h.Location)
	case "ics":
		return repository.NewICS(ctx, h.Location)
	case "none":
		return repository.NewMemory(), nil
	}
	return nil, goerr.New("unknown holiday source", goerr.V("source", h.Source))
}

// LogValue returns structured log value
func (h Holiday) LogValue() slog.Value {
	return slog.GroupValue(
		slog.String("source", h.Source),
		slog.String("location", h.Location),
	)
}
