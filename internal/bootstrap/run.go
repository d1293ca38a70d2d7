package bootstrap

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net"
	"net/http"
	"time"

	"golang.org/x/sync/errgroup"

	"github.com/emomoto/auto-recruiter/config"
	"github.com/emomoto/auto-recruiter/internal/observability/metrics"
)

const shutdownTimeout = 10 * time.Second

// Run connects infrastructure, builds the gateway and serves until ctx is
// cancelled or a component fails.
func Run(ctx context.Context, cfg *config.AppConfig, logger *slog.Logger) error {
	if cfg == nil {
		return errors.New("config is required")
	}
	if logger == nil {
		logger = slog.Default()
	}

	infra, err := ConnectInfrastructure(ctx, cfg, logger)
	if err != nil {
		return err
	}
	defer func() {
		if cerr := infra.Close(); cerr != nil {
			logger.ErrorContext(ctx, "close infrastructure failed", "error", cerr)
		}
	}()

	directory, err := BuildDirectory(cfg.Auth, infra.Pool, logger)
	if err != nil {
		return err
	}
	sessions, err := BuildSessionStore(cfg.Auth, infra.Redis, cfg.Redis.KeyPrefix)
	if err != nil {
		return err
	}

	gw, err := BuildGateway(GatewayDeps{
		Config:    cfg,
		Directory: directory,
		Sessions:  sessions,
		Settings:  BuildSettingsStore(infra.Redis, cfg.Redis.KeyPrefix),
		Logger:    logger,
	})
	if err != nil {
		return err
	}

	ln, err := net.Listen("tcp", cfg.HTTP.Addr())
	if err != nil {
		return fmt.Errorf("listen on %s: %w", cfg.HTTP.Addr(), err)
	}

	return Serve(ctx, ServeOptions{
		Listener:      ln,
		Gateway:       gw,
		SweepInterval: cfg.Auth.SweepInterval,
		Logger:        logger,
	})
}

// ServeOptions configures Serve.
type ServeOptions struct {
	Listener      net.Listener
	Gateway       *Gateway
	SweepInterval time.Duration // only used when the session store can be swept
	Logger        *slog.Logger
}

// Sweeper is implemented by session stores that expire entries lazily and
// need periodic cleanup.
type Sweeper interface {
	Sweep(now time.Time) int
}

// Serve runs the HTTP server and the session sweeper under one errgroup.
// When ctx is cancelled the realtime connections are closed before the
// HTTP server drains.
func Serve(ctx context.Context, opts ServeOptions) error {
	if opts.Listener == nil || opts.Gateway == nil {
		return errors.New("serve requires a listener and a gateway")
	}
	logger := opts.Logger
	if logger == nil {
		logger = slog.Default()
	}

	server := newServer(opts.Gateway.Handler)
	g, gctx := errgroup.WithContext(ctx)

	g.Go(func() error {
		logger.InfoContext(gctx, "starting HTTP server", "addr", opts.Listener.Addr().String())
		if err := server.Serve(opts.Listener); err != nil && !errors.Is(err, http.ErrServerClosed) {
			return fmt.Errorf("http server: %w", err)
		}
		return nil
	})

	if sweeper, ok := opts.Gateway.Sessions.(Sweeper); ok {
		g.Go(func() error {
			runSweeper(gctx, sweeper, opts.SweepInterval, logger)
			return nil
		})
	}

	g.Go(func() error {
		<-gctx.Done()
		return shutdown(opts.Gateway, server, logger)
	})

	return g.Wait()
}

func newServer(handler http.Handler) *http.Server {
	return &http.Server{
		Handler:           handler,
		ReadHeaderTimeout: 10 * time.Second,
		ReadTimeout:       30 * time.Second,
		WriteTimeout:      30 * time.Second,
		IdleTimeout:       120 * time.Second,
	}
}

func runSweeper(ctx context.Context, sweeper Sweeper, interval time.Duration, logger *slog.Logger) {
	if interval <= 0 {
		interval = time.Minute
	}
	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case now := <-ticker.C:
			if n := sweeper.Sweep(now); n > 0 {
				metrics.SessionsSwept.Add(float64(n))
				logger.DebugContext(ctx, "expired sessions swept", "count", n)
			}
		}
	}
}

// shutdown closes realtime connections first; hijacked sockets are invisible
// to http.Server.Shutdown.
func shutdown(gw *Gateway, server *http.Server, logger *slog.Logger) error {
	ctx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()

	logger.InfoContext(ctx, "shutting down", "realtime_connections", gw.Hub.Count())

	var errs []error
	if err := gw.Hub.Shutdown(ctx); err != nil {
		errs = append(errs, fmt.Errorf("close realtime connections: %w", err))
	}
	if err := server.Shutdown(ctx); err != nil {
		errs = append(errs, fmt.Errorf("shutdown HTTP server: %w", err))
	}
	if len(errs) == 0 {
		logger.InfoContext(ctx, "HTTP server stopped")
	}
	return errors.Join(errs...)
}
