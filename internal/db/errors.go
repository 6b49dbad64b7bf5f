package db

import (
	"context"
	"database/sql"
	"database/sql/driver"
	"errors"
	"fmt"
	"strings"

	"github.com/jackc/pgx/v5/pgconn"
)

// Common errors.
var (
	ErrNotFound        = errors.New("not found")
	ErrConstraint      = errors.New("constraint violated")
	ErrInvalidInput    = errors.New("invalid input")
	ErrUnavailable     = errors.New("store unavailable")
	ErrMalformedGenres = errors.New("malformed genres")
)

// classify tags driver errors with one of the sentinels above so callers can
// use errors.Is without knowing about pgx. Unknown errors pass through.
func classify(err error) error {
	if err == nil {
		return nil
	}

	if errors.Is(err, sql.ErrNoRows) {
		return fmt.Errorf("%w: %w", ErrNotFound, err)
	}

	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		switch {
		case strings.HasPrefix(pgErr.Code, "23"): // integrity constraint violation
			return fmt.Errorf("%w: %w", ErrConstraint, err)
		case strings.HasPrefix(pgErr.Code, "22"): // data exception
			return fmt.Errorf("%w: %w", ErrInvalidInput, err)
		case strings.HasPrefix(pgErr.Code, "08"), // connection exception
			strings.HasPrefix(pgErr.Code, "53"),  // insufficient resources
			strings.HasPrefix(pgErr.Code, "57P"): // operator intervention
			return fmt.Errorf("%w: %w", ErrUnavailable, err)
		}
		return err
	}

	var connectErr *pgconn.ConnectError
	if errors.As(err, &connectErr) ||
		errors.Is(err, driver.ErrBadConn) ||
		errors.Is(err, sql.ErrConnDone) ||
		errors.Is(err, context.DeadlineExceeded) ||
		pgconn.Timeout(err) {
		return fmt.Errorf("%w: %w", ErrUnavailable, err)
	}

	return err
}
