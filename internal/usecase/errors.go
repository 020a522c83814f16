package usecase

import (
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
)

// Sentinel errors form the service-level taxonomy. Services wrap them
// with context; handlers map them to HTTP categories with errors.Is.
var (
	// ErrValidation covers missing or malformed input, rejected
	// before any store access.
	ErrValidation = errors.New("validation failed")

	// ErrNotFound covers absent entities.
	ErrNotFound = errors.New("not found")

	// ErrConflict covers uniqueness violations such as a duplicate
	// email address.
	ErrConflict = errors.New("already exists")

	// ErrInvalidCredentials is deliberately generic: it never reveals
	// whether the email or the password was wrong.
	ErrInvalidCredentials = errors.New("invalid credentials")

	// ErrVerificationRequired is returned at login for accounts that
	// have not verified their email yet. Unlike ErrInvalidCredentials
	// it does disclose state, so the client can offer a resend.
	ErrVerificationRequired = errors.New("email verification required")

	// ErrInvalidToken covers wrong, expired and already-consumed
	// verification or reset tokens. The three cases are surfaced
	// identically to avoid a token-guessing oracle.
	ErrInvalidToken = errors.New("invalid or expired token")

	// ErrForbidden covers role mismatches, the single-admin invariant
	// and attempts to delete an admin account.
	ErrForbidden = errors.New("forbidden")

	// ErrUpstream covers notifier and store failures.
	ErrUpstream = errors.New("upstream failure")
)

// storeError maps a write failure to the service taxonomy. A row that
// vanished between read and write is a not-found, and a duplicate key
// that raced past the uniqueness pre-check is a conflict.
func storeError(err error, op string) error {
	switch {
	case errors.Is(err, pgx.ErrNoRows):
		return fmt.Errorf("%w: user not found", ErrNotFound)
	case isUniqueViolation(err):
		return fmt.Errorf("%w: email already exists", ErrConflict)
	default:
		return fmt.Errorf("%w: %s", ErrUpstream, op)
	}
}
