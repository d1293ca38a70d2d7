package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"io"
	"os"
	"os/signal"
	"strings"
	"syscall"
	"time"

	"github.com/emomoto/auto-recruiter/internal/adapters/argon2id"
	"github.com/emomoto/auto-recruiter/internal/adapters/postgres"
	"github.com/emomoto/auto-recruiter/internal/bootstrap"
	domainauth "github.com/emomoto/auto-recruiter/internal/domain/auth"
)

const defaultDBTimeout = time.Minute

type userOptions struct {
	Username string
	Timeout  time.Duration
}

func parseUserFlags(name string, args []string, needUser bool) (userOptions, error) {
	fs := flag.NewFlagSet(name, flag.ContinueOnError)
	fs.SetOutput(io.Discard)

	opts := userOptions{Timeout: defaultDBTimeout}
	fs.StringVar(&opts.Username, "username", "", "identity username")
	fs.DurationVar(&opts.Timeout, "timeout", defaultDBTimeout, "overall database timeout")
	if err := fs.Parse(args); err != nil {
		return opts, fmt.Errorf("parse flags: %w", err)
	}
	opts.Username = strings.TrimSpace(opts.Username)
	if needUser && opts.Username == "" {
		return opts, errors.New("-username is required")
	}
	if opts.Timeout <= 0 {
		opts.Timeout = defaultDBTimeout
	}
	return opts, nil
}

// withDirectory connects to Postgres, applies migrations and hands fn the directory.
func withDirectory(cmdCtx *commandContext, timeout time.Duration, fn func(ctx context.Context, dir *postgres.Directory) error) error {
	dbCfg, err := bootstrap.LoadDBConfig()
	if err != nil {
		return err
	}

	ctx, stop := signal.NotifyContext(cmdCtx.Ctx, os.Interrupt, syscall.SIGTERM)
	defer stop()
	ctx, cancel := context.WithTimeout(ctx, timeout)
	defer cancel()

	pool, err := bootstrap.ConnectDB(ctx, bootstrap.DatabaseConfig{DBConfig: dbCfg, Logger: cmdCtx.Logger})
	if err != nil {
		return fmt.Errorf("connect db: %w", err)
	}
	defer pool.Close()

	if err := bootstrap.RunMigrations(ctx, pool, cmdCtx.Logger); err != nil {
		return err
	}
	if fn == nil {
		return nil
	}
	return fn(ctx, postgres.NewDirectory(pool))
}

func runMigrations(cmdCtx *commandContext, args []string) error {
	opts, err := parseUserFlags("migrate", args, false)
	if err != nil {
		return err
	}
	cmdCtx.Logger.Info("running database migrations")
	if err := withDirectory(cmdCtx, opts.Timeout, nil); err != nil {
		return err
	}
	return writef(cmdCtx.Stdout, "migrations applied\n")
}

func runAddUser(cmdCtx *commandContext, args []string) error {
	opts, err := parseUserFlags("add-user", args, true)
	if err != nil {
		return err
	}
	password, err := readPassword(cmdCtx.Stdin)
	if err != nil {
		return err
	}
	hash, err := argon2id.NewHasher(argon2id.DefaultParams).Hash(password)
	if err != nil {
		return fmt.Errorf("hash password: %w", err)
	}

	return withDirectory(cmdCtx, opts.Timeout, func(ctx context.Context, dir *postgres.Directory) error {
		if err := dir.Upsert(ctx, domainauth.Identity{Username: opts.Username, PasswordHash: hash}); err != nil {
			return fmt.Errorf("save identity: %w", err)
		}
		return writef(cmdCtx.Stdout, "identity %q saved\n", opts.Username)
	})
}

func runRemoveUser(cmdCtx *commandContext, args []string) error {
	opts, err := parseUserFlags("remove-user", args, true)
	if err != nil {
		return err
	}

	return withDirectory(cmdCtx, opts.Timeout, func(ctx context.Context, dir *postgres.Directory) error {
		removed, err := dir.Delete(ctx, opts.Username)
		if err != nil {
			return fmt.Errorf("delete identity: %w", err)
		}
		if !removed {
			return fmt.Errorf("identity %q not found", opts.Username)
		}
		return writef(cmdCtx.Stdout, "identity %q removed\n", opts.Username)
	})
}
