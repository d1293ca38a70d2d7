package main

import (
	"bufio"
	"context"
	"errors"
	"flag"
	"fmt"
	"io"
	"log/slog"
	"math"
	"os"
	"sort"
	"strings"

	"github.com/emomoto/auto-recruiter/internal/adapters/argon2id"
	"github.com/emomoto/auto-recruiter/internal/bootstrap"
)

type commandFn func(ctx *commandContext, args []string) error

type command struct {
	name        string
	description string
	run         commandFn
}

type commandContext struct {
	Ctx    context.Context
	Logger *slog.Logger
	Stdin  io.Reader
	Stdout io.Writer
}

func main() {
	logger := bootstrap.InitLogger()

	if len(os.Args) < 2 {
		if err := printUsage(os.Stdout); err != nil {
			logger.Error("print usage failed", "error", err)
		}
		os.Exit(2) //nolint:forbidigo // CLI must exit with failure status when no command is provided
	}

	cmdName := os.Args[1]
	cmd, ok := commands()[cmdName]
	if !ok {
		if err := writef(os.Stderr, "unknown command %q\n\n", cmdName); err != nil {
			logger.Error("print unknown command message failed", "error", err)
		}
		if err := printUsage(os.Stdout); err != nil {
			logger.Error("print usage failed", "error", err)
		}
		os.Exit(2) //nolint:forbidigo // CLI must exit with failure status when command is unknown
	}

	cmdCtx := &commandContext{
		Ctx:    context.Background(),
		Logger: logger,
		Stdin:  os.Stdin,
		Stdout: os.Stdout,
	}
	if runErr := cmd.run(cmdCtx, os.Args[2:]); runErr != nil {
		logger.ErrorContext(cmdCtx.Ctx, "command failed", "command", cmdName, "error", runErr)
		os.Exit(1) //nolint:forbidigo // CLI must propagate command execution failure to callers
	}
}

func commands() map[string]command {
	return map[string]command{
		"hash-password": {
			name:        "hash-password",
			description: "Read a password from stdin and print its argon2id hash for AUTH_USERS",
			run:         runHashPassword,
		},
		"verify-password": {
			name:        "verify-password",
			description: "Check a password from stdin against an argon2id hash",
			run:         runVerifyPassword,
		},
		"migrate": {
			name:        "migrate",
			description: "Create the identities table in Postgres",
			run:         runMigrations,
		},
		"add-user": {
			name:        "add-user",
			description: "Register or update a Postgres identity (password from stdin)",
			run:         runAddUser,
		},
		"remove-user": {
			name:        "remove-user",
			description: "Delete a Postgres identity",
			run:         runRemoveUser,
		},
	}
}

func printUsage(w io.Writer) error {
	if err := writef(w, "Usage: recruiter-admin <command> [flags]\n\n"); err != nil {
		return err
	}
	if err := writef(w, "Available commands:\n"); err != nil {
		return err
	}
	names := make([]string, 0, len(commands()))
	for name := range commands() {
		names = append(names, name)
	}
	sort.Strings(names)
	for _, name := range names {
		if err := writef(w, "  %-18s %s\n", name, commands()[name].description); err != nil {
			return err
		}
	}
	return nil
}

type hashOptions struct {
	Username string
	Params   argon2id.Params
}

func parseHashFlags(args []string) (hashOptions, error) {
	fs := flag.NewFlagSet("hash-password", flag.ContinueOnError)
	fs.SetOutput(io.Discard)

	opts := hashOptions{Params: argon2id.DefaultParams}
	var memory, timeCost, threads uint
	fs.StringVar(&opts.Username, "user", "", "prefix the output with username: to form an AUTH_USERS entry")
	fs.UintVar(&memory, "memory", uint(argon2id.DefaultParams.Memory), "memory cost in KiB")
	fs.UintVar(&timeCost, "time", uint(argon2id.DefaultParams.Time), "number of passes")
	fs.UintVar(&threads, "threads", uint(argon2id.DefaultParams.Threads), "degree of parallelism")
	if err := fs.Parse(args); err != nil {
		return opts, fmt.Errorf("parse flags: %w", err)
	}
	if memory == 0 || timeCost == 0 || threads == 0 {
		return opts, errors.New("memory, time and threads must be positive")
	}
	if memory > math.MaxUint32 || timeCost > math.MaxUint32 || threads > math.MaxUint8 {
		return opts, errors.New("argon2id cost parameter out of range")
	}
	opts.Params.Memory = uint32(memory)  //nolint:gosec // checked above
	opts.Params.Time = uint32(timeCost)  //nolint:gosec // checked above
	opts.Params.Threads = uint8(threads) //nolint:gosec // checked above
	opts.Username = strings.TrimSpace(opts.Username)
	return opts, nil
}

func runHashPassword(cmdCtx *commandContext, args []string) error {
	opts, err := parseHashFlags(args)
	if err != nil {
		return err
	}
	password, err := readPassword(cmdCtx.Stdin)
	if err != nil {
		return err
	}

	hash, err := argon2id.NewHasher(opts.Params).Hash(password)
	if err != nil {
		return fmt.Errorf("hash password: %w", err)
	}
	if opts.Username != "" {
		return writef(cmdCtx.Stdout, "%s:%s\n", opts.Username, hash)
	}
	return writef(cmdCtx.Stdout, "%s\n", hash)
}

func runVerifyPassword(cmdCtx *commandContext, args []string) error {
	fs := flag.NewFlagSet("verify-password", flag.ContinueOnError)
	fs.SetOutput(io.Discard)
	hash := fs.String("hash", "", "argon2id PHC hash to verify against")
	if err := fs.Parse(args); err != nil {
		return fmt.Errorf("parse flags: %w", err)
	}
	if strings.TrimSpace(*hash) == "" {
		return errors.New("-hash is required")
	}

	password, err := readPassword(cmdCtx.Stdin)
	if err != nil {
		return err
	}
	ok, err := argon2id.NewHasher(argon2id.Params{}).Verify(password, strings.TrimSpace(*hash))
	if err != nil {
		return fmt.Errorf("verify password: %w", err)
	}
	if !ok {
		return errors.New("password does not match")
	}
	return writef(cmdCtx.Stdout, "password matches\n")
}

// readPassword returns the first line of r without its line ending.
func readPassword(r io.Reader) (string, error) {
	line, err := bufio.NewReader(r).ReadString('\n')
	if err != nil && !errors.Is(err, io.EOF) {
		return "", fmt.Errorf("read password: %w", err)
	}
	password := strings.TrimRight(line, "\r\n")
	if password == "" {
		return "", errors.New("empty password on stdin")
	}
	return password, nil
}

func writef(w io.Writer, format string, args ...any) error {
	_, err := fmt.Fprintf(w, format, args...)
	return err
}
