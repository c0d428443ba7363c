package main

import (
	"context"
	"log/slog"
	"os"

	"go.uber.org/fx"

	"fantasy-hud-service/internal/config"
	"fantasy-hud-service/internal/logging"
	"fantasy-hud-service/internal/server"
)

const (
	appName    = "fantasy-hud-service"
	appVersion = "dev"
)

func main() {
	if os.Getenv("SKIP_SERVER_RUN") == "1" {
		return
	}
	fx.New(appOptions()).Run()
}

func appOptions() fx.Option {
	return fx.Options(
		fx.NopLogger,
		fx.Provide(
			config.Load,
			newLogger,
			server.New,
		),
		fx.Invoke(runServer),
	)
}

func newLogger(cfg config.Config) *slog.Logger {
	return logging.NewLogger(logging.Config{
		Level:   cfg.Logging.Level,
		Format:  cfg.Logging.Format,
		Service: appName,
		Version: appVersion,
	})
}

// runServer ties the server to the fx lifecycle. A listener failure shuts the app down.
func runServer(lc fx.Lifecycle, shutdowner fx.Shutdowner, srv *server.Server, logger *slog.Logger) {
	srv.OnServeError(func(err error) {
		logging.Error(logger, "server failed, shutting down", err)
		_ = shutdowner.Shutdown(fx.ExitCode(1))
	})

	lc.Append(fx.Hook{
		OnStart: func(ctx context.Context) error {
			return srv.Start(ctx)
		},
		OnStop: func(ctx context.Context) error {
			return srv.Shutdown(ctx)
		},
	})
}
