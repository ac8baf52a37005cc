package engine

import (
	"errors"
	"fmt"
)

// ErrPersonaNotFound surfaces an unknown persona id. No session is created.
var ErrPersonaNotFound = errors.New("persona not found")

// ValidationError rejects a turn before any state is touched.
type ValidationError struct {
	Reason string
}

func (e *ValidationError) Error() string {
	return "invalid message: " + e.Reason
}

// IsValidation reports whether err is a ValidationError.
func IsValidation(err error) bool {
	var ve *ValidationError
	return errors.As(err, &ve)
}

// StoreError wraps a session store failure. The turn is retryable and no
// score, tier, or offer state has advanced.
type StoreError struct {
	Op  string
	Err error
}

func (e *StoreError) Error() string {
	return fmt.Sprintf("session store %s: %v", e.Op, e.Err)
}

func (e *StoreError) Unwrap() error { return e.Err }

// IsStoreUnavailable reports whether err is a StoreError.
func IsStoreUnavailable(err error) bool {
	var se *StoreError
	return errors.As(err, &se)
}
