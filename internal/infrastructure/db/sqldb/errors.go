package sqldb

import (
	"context"
	"database/sql"
	"errors"
	"strings"

	"github.com/lib/pq"
	"github.com/mattn/go-sqlite3"

	"github.com/space-market/pos-server/internal/core/domain"
)

const pqUniqueViolation = "23505"

// Error pairs a domain sentinel with the driver error that caused it. Its
// message carries only the sentinel and context, never driver text.
type Error struct {
	Sentinel error
	Cause    error
	Message  string
}

func (e *Error) Error() string {
	if e.Message != "" {
		return e.Message + ": " + e.Sentinel.Error()
	}
	return e.Sentinel.Error()
}

func (e *Error) Is(target error) bool { return errors.Is(e.Sentinel, target) }
func (e *Error) Unwrap() error        { return e.Cause }

// IsUniqueViolation reports whether err is a unique constraint violation on
// either supported backend.
func IsUniqueViolation(err error) bool {
	if err == nil {
		return false
	}

	var pqErr *pq.Error
	if errors.As(err, &pqErr) {
		return pqErr.Code == pqUniqueViolation
	}

	var liteErr sqlite3.Error
	if errors.As(err, &liteErr) {
		return liteErr.ExtendedCode == sqlite3.ErrConstraintUnique ||
			liteErr.ExtendedCode == sqlite3.ErrConstraintPrimaryKey
	}

	// Drivers wrapped by proxies lose their concrete types.
	msg := err.Error()
	return strings.Contains(msg, "UNIQUE constraint failed") ||
		strings.Contains(msg, "duplicate key value violates unique constraint")
}

// mapError translates driver errors into domain errors. msg is prepended
// to the message of mapped errors; unknown errors pass through untouched.
func mapError(err error, msg string) error {
	switch {
	case err == nil:
		return nil
	case errors.Is(err, sql.ErrNoRows):
		return &Error{Sentinel: domain.ErrNotFound, Cause: err, Message: msg}
	case errors.Is(err, context.DeadlineExceeded):
		return &Error{Sentinel: domain.ErrTimeout, Cause: err, Message: msg}
	case IsUniqueViolation(err):
		return &Error{Sentinel: domain.ErrConflict, Cause: err, Message: msg}
	}
	return err
}
