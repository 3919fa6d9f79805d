package pgsql

import (
	"context"
	"errors"
	"fmt"
	"net"
	"net/http"

	"github.com/SscSPs/expense_tracker/internal/apperrors"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"
)

// PostgreSQL SQLSTATE codes the repositories translate.
const (
	uniqueViolation = "23505"
	checkViolation  = "23514"
)

// rowScanner is satisfied by pgx.Row and pgx.CollectableRow.
type rowScanner interface {
	Scan(dest ...any) error
}

// BaseRepository provides common functionality for all repositories
type BaseRepository struct {
	Pool *pgxpool.Pool
}

// Ping checks that the database is reachable.
func (r *BaseRepository) Ping(ctx context.Context) error {
	if err := r.Pool.Ping(ctx); err != nil {
		return translateError(err, "failed to ping database")
	}
	return nil
}

// translateError maps driver errors onto the application's error taxonomy.
// Errors that do not match a known class are wrapped unchanged.
func translateError(err error, msg string) error {
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		switch pgErr.Code {
		case uniqueViolation:
			return fmt.Errorf("%s: %w: %s", msg, apperrors.ErrConflict, pgErr.ConstraintName)
		case checkViolation:
			return fmt.Errorf("%s: %w: %s", msg, apperrors.ErrValidation, pgErr.ConstraintName)
		}
		return fmt.Errorf("%s: %w", msg, err)
	}
	if isUnavailable(err) {
		return apperrors.NewAppError(http.StatusServiceUnavailable, msg,
			fmt.Errorf("%w: %v", apperrors.ErrStorageUnavailable, err))
	}
	return fmt.Errorf("%s: %w", msg, err)
}

// isUnavailable reports whether err means the server could not be reached,
// as opposed to the server rejecting the statement.
func isUnavailable(err error) bool {
	var connectErr *pgconn.ConnectError
	var netErr net.Error
	switch {
	case errors.As(err, &connectErr):
		return true
	case errors.As(err, &netErr):
		return true
	case errors.Is(err, context.DeadlineExceeded):
		return true
	case pgconn.Timeout(err):
		return true
	}
	return false
}
