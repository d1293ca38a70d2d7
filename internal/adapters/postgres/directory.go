// Package postgres provides a credential directory stored in the identities table.
package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"

	domainauth "github.com/emomoto/auto-recruiter/internal/domain/auth"
	apperrors "github.com/emomoto/auto-recruiter/internal/errors"
)

// Querier is the subset of *pgxpool.Pool used by Directory.
type Querier interface {
	QueryRow(ctx context.Context, sql string, args ...any) pgx.Row
	Exec(ctx context.Context, sql string, args ...any) (pgconn.CommandTag, error)
}

// Directory implements ports.CredentialDirectory on Postgres.
type Directory struct {
	db Querier
}

// NewDirectory creates a Postgres-backed credential directory.
func NewDirectory(db Querier) *Directory {
	return &Directory{db: db}
}

const findIdentityQuery = `SELECT username, password_hash FROM identities WHERE username = $1`

// Find returns domainauth.ErrIdentityNotFound for unknown usernames.
func (d *Directory) Find(ctx context.Context, username string) (domainauth.Identity, error) {
	var id domainauth.Identity
	err := d.db.QueryRow(ctx, findIdentityQuery, username).Scan(&id.Username, &id.PasswordHash)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return domainauth.Identity{}, domainauth.ErrIdentityNotFound
		}
		return domainauth.Identity{}, fmt.Errorf("find identity: %w", apperrors.MapDBError(err))
	}
	return id, nil
}

const upsertIdentityQuery = `
INSERT INTO identities (username, password_hash)
VALUES ($1, $2)
ON CONFLICT (username) DO UPDATE
SET password_hash = EXCLUDED.password_hash, updated_at = now()`

// Upsert registers identity or replaces its password hash.
// Only the admin CLI writes; the gateway reads.
func (d *Directory) Upsert(ctx context.Context, identity domainauth.Identity) error {
	if identity.Username == "" || identity.PasswordHash == "" {
		return apperrors.Validation("username and password hash are required")
	}
	if _, err := d.db.Exec(ctx, upsertIdentityQuery, identity.Username, identity.PasswordHash); err != nil {
		return fmt.Errorf("upsert identity: %w", apperrors.MapDBError(err))
	}
	return nil
}

const deleteIdentityQuery = `DELETE FROM identities WHERE username = $1`

// Delete removes username and reports whether a row was deleted.
func (d *Directory) Delete(ctx context.Context, username string) (bool, error) {
	tag, err := d.db.Exec(ctx, deleteIdentityQuery, username)
	if err != nil {
		return false, fmt.Errorf("delete identity: %w", apperrors.MapDBError(err))
	}
	return tag.RowsAffected() > 0, nil
}
