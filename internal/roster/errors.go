package roster

import (
	"errors"
	"fmt"
)

// Sentinel errors for the caller-fixable failure categories. Anything not
// matched by these is a storage failure: the caller should assume the
// roster may have changed and reload before retrying.
var (
	ErrMatchNotFound  = errors.New("match not found")
	ErrSignupNotFound = errors.New("signup not found")
	ErrPlayerNotFound = errors.New("player not found")

	// ErrDuplicateSignup means the player (or guest name) already holds a
	// signup for this match.
	ErrDuplicateSignup = errors.New("already signed up for this match")
)

// ValidationError reports a malformed admission or mutation request. The
// request was rejected before any write happened.
type ValidationError struct {
	Reason string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("invalid request: %s", e.Reason)
}

func invalidf(format string, args ...any) error {
	return &ValidationError{Reason: fmt.Sprintf(format, args...)}
}

// IsNotFound reports whether err is any of the not-found sentinels.
func IsNotFound(err error) bool {
	return errors.Is(err, ErrMatchNotFound) ||
		errors.Is(err, ErrSignupNotFound) ||
		errors.Is(err, ErrPlayerNotFound)
}

// IsInvalid reports whether err is a validation failure.
func IsInvalid(err error) bool {
	var ve *ValidationError
	return errors.As(err, &ve)
}
