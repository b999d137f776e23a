package domain

import (
	"errors"
	"fmt"
)

var (
	ErrNotFound             = errors.New("record not found")
	ErrFeedUnavailable      = errors.New("feed unavailable")
	ErrInvalidSpotData      = errors.New("invalid spot data")
	ErrInvalidConfiguration = errors.New("invalid configuration")
	ErrInvalidCredentials   = errors.New("invalid credentials")
	ErrUnauthorized         = errors.New("unauthorized")
)

// ValidationError rejects a settings save or a malformed engine
// configuration with a field-specific message. It matches
// ErrInvalidConfiguration under errors.Is.
type ValidationError struct {
	Field  string
	Reason string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("%s: %s", e.Field, e.Reason)
}

func (e *ValidationError) Unwrap() error { return ErrInvalidConfiguration }
