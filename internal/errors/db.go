package errors

import (
	"context"
	"database/sql"
	"errors"

	"github.com/jackc/pgerrcode"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
)

// MapDBError maps database errors from read paths to AppError instances:
// - sql.ErrNoRows / pgx.ErrNoRows → NotFound
// - context timeouts/cancellations → Internal
// - connection exceptions, missing tables, everything else from Postgres → Internal
//
// If the error is not a recognized database error, it returns the original error.
func MapDBError(err error) error {
	if err == nil {
		return nil
	}

	if errors.Is(err, sql.ErrNoRows) || errors.Is(err, pgx.ErrNoRows) {
		return &AppError{
			Code:    ErrCodeNotFound,
			Message: "Resource not found",
			Cause:   err,
		}
	}

	if errors.Is(err, context.DeadlineExceeded) || errors.Is(err, context.Canceled) {
		return &AppError{
			Code:    ErrCodeInternal,
			Message: "database request did not complete",
			Cause:   err,
		}
	}

	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		return mapPgError(pgErr)
	}

	return err
}

func mapPgError(pgErr *pgconn.PgError) error {
	message := "A database error occurred. Please try again."
	switch {
	case pgerrcode.IsConnectionException(pgErr.Code),
		pgErr.Code == pgerrcode.AdminShutdown,
		pgErr.Code == pgerrcode.CannotConnectNow:
		message = "database unavailable"
	case pgErr.Code == pgerrcode.UndefinedTable:
		message = "identities table is missing"
	case pgErr.Code == pgerrcode.InsufficientPrivilege:
		message = "database role cannot read identities"
	}
	return &AppError{
		Code:    ErrCodeInternal,
		Message: message,
		Cause:   pgErr,
	}
}
