package bootstrap

import (
	"errors"
	"fmt"
	"log/slog"
	"os"

	"github.com/caarlos0/env/v11"
	"github.com/joho/godotenv"

	"github.com/emomoto/auto-recruiter/config"
)

// InitLogger initializes the structured logger.
func InitLogger() *slog.Logger {
	logger := slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{
		Level: slog.LevelInfo,
	}))
	slog.SetDefault(logger)
	return logger
}

func loadDotEnv() error {
	if err := godotenv.Load(); err != nil {
		var pathErr *os.PathError
		if !errors.As(err, &pathErr) {
			return fmt.Errorf("load .env file: %w", err)
		}
	}
	return nil
}

// LoadConfig loads configuration from environment variables, applying a .env
// file first when one is present. Invalid configuration is returned as an error.
func LoadConfig() (config.AppConfig, error) {
	// Load .env file if it exists (development)
	if err := loadDotEnv(); err != nil {
		return config.AppConfig{}, err
	}

	var cfg config.AppConfig
	if err := env.Parse(&cfg); err != nil {
		return cfg, fmt.Errorf("parse config: %w", err)
	}

	cfg.Sanitize()
	if err := cfg.Validate(); err != nil {
		return cfg, err
	}
	return cfg, nil
}

// LoadDBConfig loads only the DB_* variables, for tools that never serve traffic.
func LoadDBConfig() (config.DBConfig, error) {
	if err := loadDotEnv(); err != nil {
		return config.DBConfig{}, err
	}

	var cfg config.DBConfig
	if err := env.ParseWithOptions(&cfg, env.Options{Prefix: "DB_"}); err != nil {
		return cfg, fmt.Errorf("parse database config: %w", err)
	}
	return cfg, nil
}
