package main

import (
	"context"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"github.com/emomoto/auto-recruiter/config"
	"github.com/emomoto/auto-recruiter/internal/bootstrap"
)

func main() {
	ctx := context.Background()
	logger := bootstrap.InitLogger()
	if err := run(ctx, logger); err != nil {
		logger.ErrorContext(ctx, "fatal error", "error", err)
		os.Exit(1) //nolint:forbidigo // Main entrypoint should exit with non-zero status on fatal errors.
	}
}

func run(ctx context.Context, logger *slog.Logger) error {
	cfg, err := bootstrap.LoadConfig()
	if err != nil {
		return err
	}

	logStartupInfo(ctx, logger, &cfg)

	ctx, stop := signal.NotifyContext(ctx, os.Interrupt, syscall.SIGTERM)
	defer stop()

	return bootstrap.Run(ctx, &cfg, logger)
}

func logStartupInfo(ctx context.Context, logger *slog.Logger, cfg *config.AppConfig) {
	logger.InfoContext(ctx, "starting recruiter gateway",
		"addr", cfg.HTTP.Addr(),
		"directory_backend", cfg.Auth.DirectoryBackend,
		"session_store", cfg.Auth.SessionStore,
		"session_ttl", cfg.Auth.SessionTTL.String(),
		"realtime_path", cfg.Realtime.Path,
		"realtime_require_auth", cfg.Realtime.RequireAuth,
		"metrics_enabled", cfg.Metrics.Enabled,
		"dev", cfg.IsDev,
	)
}
