package domain

import (
	"errors"
	"fmt"
)

var (
	// ErrUnauthenticated is returned when an operation requiring a caller
	// identity receives an empty one.
	ErrUnauthenticated = errors.New("caller identity is required")
	// ErrInvalidCredentials indicates a login attempt for an unknown account.
	ErrInvalidCredentials = errors.New("invalid email or password")
	// ErrEmailConflict is returned when registering an email that is already
	// taken (compared case-insensitively).
	ErrEmailConflict = errors.New("account with this email already exists")
	// ErrNotFound indicates no record exists with the given id.
	ErrNotFound = errors.New("record not found")
	// ErrForbidden indicates the record exists but the caller is not its
	// owner. Existence is always checked before ownership.
	ErrForbidden = errors.New("caller does not own this record")
	// ErrInvalidYear indicates a year outside [MinYear, current year].
	ErrInvalidYear = errors.New("year must be between 1900 and the current year")
	// ErrDuplicateID is a store invariant violation: inserting an id that is
	// already present. Callers generate fresh ids, so hitting this is a bug.
	ErrDuplicateID = errors.New("record id already exists")
	// ErrInternal covers store failures after all checks passed. The message
	// is logged, never shown to the caller verbatim.
	ErrInternal = errors.New("internal error")
)

// ValidationError reports malformed or missing input with a message safe to
// present to the caller.
type ValidationError struct {
	Message string
}

func (e *ValidationError) Error() string { return e.Message }

// Validationf builds a ValidationError from a format string.
func Validationf(format string, args ...any) error {
	return &ValidationError{Message: fmt.Sprintf(format, args...)}
}

// IsValidation reports whether err is (or wraps) a ValidationError.
func IsValidation(err error) bool {
	var ve *ValidationError
	return errors.As(err, &ve)
}
