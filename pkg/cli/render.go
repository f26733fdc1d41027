package cli

import (
	"context"
	"log/slog"
	"os"

	"github.com/koyomi-lab/koyomi/pkg/cli/config"
	"github.com/koyomi-lab/koyomi/pkg/service/render"
	"github.com/koyomi-lab/koyomi/pkg/usecase"
	"github.com/m-mizutani/ctxlog"
	"github.com/m-mizutani/goerr/v2"
	"github.com/pkg/browser"
	"github.com/urfave/cli/v3"
)

func cmdRender() *cli.Command {
	var (
		gridCfg    config.Grid
		holidayCfg config.Holiday

		output     string
		formatName string
		fontPath   string
		open       bool
	)

	flags := joinFlags(
		gridCfg.Flags(),
		holidayCfg.Flags(),
		[]cli.Flag{
			&cli.StringFlag{
				Name:        "output",
				Aliases:     []string{"o"},
				Usage:       "Output file",
				Value:       "calendars.html",
				Sources:     cli.EnvVars("KOYOMI_OUTPUT"),
				Destination: &output,
			},
			&cli.StringFlag{
				Name:        "format",
				Usage:       "Output format (html, png, ics; default inferred from the output extension)",
				Destination: &formatName,
			},
			&cli.StringFlag{
				Name:        "font",
				Usage:       "TTF font file for PNG output",
				Sources:     cli.EnvVars("KOYOMI_FONT"),
				Destination: &fontPath,
			},
			&cli.BoolFlag{
				Name:        "open",
				Usage:       "Open the rendered file in the default browser",
				Destination: &open,
			},
		},
	)

	return &cli.Command{
		Name:  "render",
		Usage: "Render a year calendar to a file",
		Flags: flags,
		Action: func(ctx context.Context, c *cli.Command) error {
			logger := ctxlog.From(ctx)

			format := render.FormatForPath(output)
			if formatName != "" {
				var err error
				if format, err = render.ParseFormat(formatName); err != nil {
					return err
				}
			}

			source, err := holidayCfg.Configure(ctx)
			if err != nil {
				return err
			}
			firstWeekday, err := gridCfg.ParseFirstWeekday()
			if err != nil {
				return err
			}
			weekend, err := gridCfg.ParseWeekend()
			if err != nil {
				return err
			}

			uc, err := usecase.NewCalendar(source, firstWeekday, weekend)
			if err != nil {
				return err
			}

			year := gridCfg.ResolveYear()
			logger.Info("Rendering calendar",
				slog.Int("year", year),
				slog.String("output", output),
				slog.String("format", string(format)),
				slog.Any("grid", gridCfg),
				slog.Any("holidays", holidayCfg),
			)

			cal, err := uc.BuildYear(ctx, year, "")
			if err != nil {
				return err
			}

			renderer, err := render.New(format, render.Options{FontPath: fontPath})
			if err != nil {
				return err
			}

			f, err := os.Create(output)
			if err != nil {
				return goerr.Wrap(err, "failed to create output file",
					goerr.V("path", output))
			}
			if err := renderer.Render(f, cal); err != nil {
				_ = f.Close()
				return err
			}
			if err := f.Close(); err != nil {
				return goerr.Wrap(err, "failed to write output file",
					goerr.V("path", output))
			}

			logger.Info("Wrote calendar", slog.String("path", output))

			if open {
				if err := browser.OpenFile(output); err != nil {
					return goerr.Wrap(err, "failed to open browser",
						goerr.V("path", output))
				}
			}
			return nil
		},
	}
}
