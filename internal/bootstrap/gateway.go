package bootstrap

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/redis/go-redis/v9"

	"github.com/emomoto/auto-recruiter/config"
	"github.com/emomoto/auto-recruiter/internal/adapters/argon2id"
	"github.com/emomoto/auto-recruiter/internal/adapters/jwtcookie"
	"github.com/emomoto/auto-recruiter/internal/adapters/memory"
	"github.com/emomoto/auto-recruiter/internal/adapters/postgres"
	redisadapter "github.com/emomoto/auto-recruiter/internal/adapters/redis"
	httpx "github.com/emomoto/auto-recruiter/internal/http"
	"github.com/emomoto/auto-recruiter/internal/observability/metrics"
	"github.com/emomoto/auto-recruiter/internal/ports"
	"github.com/emomoto/auto-recruiter/internal/realtime"
	"github.com/emomoto/auto-recruiter/internal/service"
)

// Infrastructure holds the external connections the gateway was configured to use.
// Either field may be nil.
type Infrastructure struct {
	Pool  *pgxpool.Pool
	Redis redis.UniversalClient
}

// ConnectInfrastructure opens only what cfg asks for: Postgres for the
// postgres directory backend (migrated on connect) and Redis for the redis session store.
func ConnectInfrastructure(ctx context.Context, cfg *config.AppConfig, logger *slog.Logger) (*Infrastructure, error) {
	infra := &Infrastructure{}
	dbCfg := DatabaseConfig{DBConfig: cfg.Postgres, RedisConfig: cfg.Redis, Logger: logger}

	if cfg.Auth.DirectoryBackend == config.DirectoryBackendPostgres {
		pool, err := ConnectDB(ctx, dbCfg)
		if err != nil {
			return nil, fmt.Errorf("connect db: %w", err)
		}
		infra.Pool = pool
		if err := RunMigrations(ctx, pool, logger); err != nil {
			return nil, errors.Join(err, infra.Close())
		}
	}

	if cfg.Auth.SessionStore == config.SessionStoreRedis {
		client, err := ConnectRedis(ctx, dbCfg)
		if err != nil {
			return nil, errors.Join(fmt.Errorf("connect redis: %w", err), infra.Close())
		}
		infra.Redis = client
	}

	return infra, nil
}

// Close releases every open connection.
func (i *Infrastructure) Close() error {
	if i == nil {
		return nil
	}
	var err error
	if i.Redis != nil {
		if cerr := i.Redis.Close(); cerr != nil {
			err = fmt.Errorf("close redis: %w", cerr)
		}
	}
	if i.Pool != nil {
		i.Pool.Close()
	}
	return err
}

// BuildDirectory returns the credential directory selected by DIRECTORY_BACKEND.
//
//nolint:ireturn // the backend is chosen at runtime.
func BuildDirectory(cfg config.AuthConfig, pool *pgxpool.Pool, logger *slog.Logger) (ports.CredentialDirectory, error) {
	switch cfg.DirectoryBackend {
	case config.DirectoryBackendPostgres:
		if pool == nil {
			return nil, errors.New("postgres directory requires a database pool")
		}
		return postgres.NewDirectory(pool), nil
	default:
		identities, err := argon2id.ParseUserList(cfg.Users)
		if err != nil {
			return nil, fmt.Errorf("parse AUTH_USERS: %w", err)
		}
		if len(identities) == 0 && logger != nil {
			logger.Warn("static directory is empty; no one can sign in", "hint", "set AUTH_USERS")
		}
		dir, err := memory.NewDirectory(identities)
		if err != nil {
			return nil, fmt.Errorf("load static directory: %w", err)
		}
		return dir, nil
	}
}

// BuildSessionStore returns the session store selected by SESSION_STORE.
//
//nolint:ireturn // the store is chosen at runtime.
func BuildSessionStore(cfg config.AuthConfig, client redis.UniversalClient, prefix string) (ports.SessionStore, error) {
	switch cfg.SessionStore {
	case config.SessionStoreRedis:
		if client == nil {
			return nil, errors.New("redis session store requires a redis client")
		}
		return redisadapter.NewSessionStore(client, prefix), nil
	default:
		return memory.NewSessionStore(), nil
	}
}

// BuildSettingsStore keeps settings next to sessions: in Redis when a client
// is available, in memory otherwise.
//
//nolint:ireturn // the store is chosen at runtime.
func BuildSettingsStore(client redis.UniversalClient, prefix string) ports.SettingsStore {
	if client != nil {
		return redisadapter.NewSettingsStore(client, prefix)
	}
	return memory.NewSettingsStore()
}

// GatewayDeps groups what BuildGateway wires together.
type GatewayDeps struct {
	Config    *config.AppConfig
	Directory ports.CredentialDirectory
	Sessions  ports.SessionStore
	Settings  ports.SettingsStore

	// Registry receives the gateway collectors when metrics are enabled;
	// defaults to a fresh registry.
	Registry *prometheus.Registry
	Logger   *slog.Logger
}

// Gateway is the assembled session gateway.
type Gateway struct {
	Handler  http.Handler
	Hub      *realtime.Hub
	Auth     *service.AuthService
	Settings *service.SettingsService
	Sessions ports.SessionStore
}

// BuildGateway wires the authenticator, session gate, notification hub and router.
func BuildGateway(deps GatewayDeps) (*Gateway, error) {
	if deps.Config == nil {
		return nil, errors.New("gateway config is required")
	}
	if deps.Directory == nil || deps.Sessions == nil || deps.Settings == nil {
		return nil, errors.New("gateway requires a directory, a session store and a settings store")
	}
	cfg := deps.Config
	logger := deps.Logger
	if logger == nil {
		logger = slog.Default()
	}

	authenticator, err := service.NewAuthenticator(service.AuthenticatorOptions{
		Directory: deps.Directory,
		Hasher:    argon2id.NewHasher(argon2id.DefaultParams),
	})
	if err != nil {
		return nil, fmt.Errorf("build authenticator: %w", err)
	}

	signer, err := jwtcookie.NewSigner(cfg.Auth.SessionSecret)
	if err != nil {
		return nil, fmt.Errorf("build session signer: %w", err)
	}

	authSvc := service.NewAuthService(service.AuthServiceOptions{
		Authenticator: authenticator,
		Codec:         service.NewIdentityCodec(deps.Directory),
		Sessions:      deps.Sessions,
		Signer:        signer,
		TTL:           cfg.Auth.SessionTTL,
		Logger:        logger,
	})

	hub := realtime.NewHub(realtime.HubOptions{
		WelcomeMessage: cfg.Realtime.WelcomeMessage,
		PingInterval:   cfg.Realtime.PingInterval,
		SendBuffer:     cfg.Realtime.SendBuffer,
		Observer:       realtime.LogObserver{Logger: logger},
		Logger:         logger,
	})

	settingsSvc := service.NewSettingsService(service.SettingsServiceOptions{
		Store:       deps.Settings,
		Broadcaster: hub,
		Logger:      logger,
	})

	var metricsHandler http.Handler
	if cfg.Metrics.Enabled {
		reg := deps.Registry
		if reg == nil {
			reg = prometheus.NewRegistry()
		}
		reg.MustRegister(collectors.NewGoCollector(), collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}))
		metrics.RegisterMetrics(reg)
		metricsHandler = promhttp.HandlerFor(reg, promhttp.HandlerOpts{})
	}

	router := httpx.NewRouter(httpx.RouterServices{
		Auth:                authSvc,
		Settings:            settingsSvc,
		Hub:                 hub,
		CookieDomain:        cfg.HTTP.CookieDomain,
		RealtimePath:        cfg.Realtime.Path,
		RealtimeRequireAuth: cfg.Realtime.RequireAuth,
		AllowedOrigins:      cfg.Realtime.AllowedOrigins,
		Metrics:             metricsHandler,
		MetricsPath:         cfg.Metrics.Path,
		IsDev:               cfg.IsDev,
		Logger:              logger,
	})

	return &Gateway{
		Handler:  router,
		Hub:      hub,
		Auth:     authSvc,
		Settings: settingsSvc,
		Sessions: deps.Sessions,
	}, nil
}
