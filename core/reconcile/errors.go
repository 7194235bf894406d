package reconcile

import (
	"errors"
	"fmt"
)

var (
	// ErrLoad marks every failure to obtain the mappings of a load.
	ErrLoad = errors.New("load failed")

	// ErrNotReady is returned by operations that need a loaded snapshot.
	ErrNotReady = errors.New("session not ready")

	// ErrUnknownKey is returned when a key has no row.
	ErrUnknownKey = errors.New("unknown key")

	// ErrInvalidLanguage is returned for identifiers that are not language tags.
	ErrInvalidLanguage = errors.New("invalid language identifier")

	// ErrLoadSuperseded is returned by a load whose result was discarded because a newer load started.
	ErrLoadSuperseded = errors.New("load superseded by a newer load")
)

// LoadError describes a failed fetch during Load.
type LoadError struct {
	// Language is the language being loaded.
	Language string

	// Identifier is the locale that could not be fetched (the base or the target).
	Identifier string

	// Err is the provider error.
	Err error
}

func (e *LoadError) Error() string {
	return fmt.Sprintf("load %s: fetch %s: %v", e.Language, e.Identifier, e.Err)
}

// Unwrap exposes both ErrLoad and the provider error to errors.Is / errors.As.
func (e *LoadError) Unwrap() []error {
	return []error{ErrLoad, e.Err}
}
