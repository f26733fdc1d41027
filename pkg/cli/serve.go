package cli

import (
	"context"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/koyomi-lab/koyomi/pkg/cli/config"
	controller "github.com/koyomi-lab/koyomi/pkg/controller/http"
	"github.com/koyomi-lab/koyomi/pkg/usecase"
	"github.com/m-mizutani/ctxlog"
	"github.com/m-mizutani/goerr/v2"
	"github.com/urfave/cli/v3"
)

func cmdServe() *cli.Command {
	var (
		serverCfg  config.Server
		gridCfg    config.Grid
		holidayCfg config.Holiday
	)

	flags := joinFlags(
		serverCfg.Flags(),
		gridCfg.Flags(),
		holidayCfg.Flags(),
	)

	return &cli.Command{
		Name:  "serve",
		Usage: "Start HTTP server",
		Flags: flags,
		Action: func(ctx context.Context, c *cli.Command) error {
			logger := ctxlog.From(ctx)

			logger.Info("Starting koyomi server",
				slog.String("addr", serverCfg.Addr),
				slog.Any("grid", gridCfg),
				slog.Any("holidays", holidayCfg),
			)

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

			server, err := controller.NewServer(ctx, serverCfg.Addr, uc)
			if err != nil {
				return goerr.Wrap(err, "failed to create HTTP server")
			}

			go func() {
				logger.Info("HTTP server starting", slog.String("addr", serverCfg.Addr))
				if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
					logger.Error("HTTP server error", slog.Any("error", err))
				}
			}()

			sigChan := make(chan os.Signal, 1)
			signal.Notify(sigChan, os.Interrupt, syscall.SIGTERM)

			select {
			case <-ctx.Done():
				logger.Info("Context cancelled, shutting down...")
			case sig := <-sigChan:
				logger.Info("Signal received, shutting down...", slog.Any("signal", sig))
			}

			shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
			defer cancel()

			if err := server.Shutdown(shutdownCtx); err != nil {
				return goerr.Wrap(err, "failed to shutdown server gracefully")
			}

			logger.Info("Server shutdown complete")
			return nil
		},
	}
}
