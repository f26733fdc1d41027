package config

import (
	"log/slog"
	"strings"
	"time"

	"github.com/koyomi-lab/koyomi/pkg/domain/types"
	"github.com/urfave/cli/v3"
)

// Grid holds calendar grid configuration
type Grid struct {
	Year         int
	FirstWeekday string
	Weekend      []string
}

// Flags returns CLI flags for Grid configuration
func (g *Grid) Flags() []cli.Flag {
	return []cli.Flag{
		&cli.IntFlag{
			Name:        "year",
			Usage:       "Calendar year (0 means the current year)",
			Category:    "Calendar",
			Value:       0,
			Sources:     cli.EnvVars("KOYOMI_YEAR"),
			Destination: &g.Year,
		},
		&cli.StringFlag{
			Name:        "first-weekday",
			Usage:       "Leftmost weekday column (Mon, Tue, ...)",
			Category:    "Calendar",
			Value:       "Mon",
			Sources:     cli.EnvVars("KOYOMI_FIRST_WEEKDAY"),
			Destination: &g.FirstWeekday,
		},
		&cli.StringSliceFlag{
			Name:        "weekend",
			Usage:       "Weekday names drawn as weekend (default: last two of the rotation)",
			Category:    "Calendar",
			Sources:     cli.EnvVars("KOYOMI_WEEKEND"),
			Destination: &g.Weekend,
		},
	}
}

// ResolveYear returns the configured year, defaulting to the current one
func (g *Grid) ResolveYear() int {
	if g.Year == 0 {
		return time.Now().Year()
	}
	return g.Year
}

// ParseFirstWeekday parses the configured first weekday
func (g *Grid) ParseFirstWeekday() (types.Weekday, error) {
	return types.ParseWeekday(g.FirstWeekday)
}

// ParseWeekend parses the configured weekend names
func (g *Grid) ParseWeekend() ([]types.Weekday, error) {
	var result []types.Weekday
	for _, name := range g.Weekend {
		w, err := types.ParseWeekday(name)
		if err != nil {
			return nil, err
		}
		result = append(result, w)
	}
	return result, nil
}

// LogValue returns structured log value
func (g Grid) LogValue() slog.Value {
	return slog.GroupValue(
		slog.Int("year", g.ResolveYear()),
		slog.String("firstWeekday", g.FirstWeekday),
		slog.String("weekend", strings.Join(g.Weekend, ",")),
	)
}
