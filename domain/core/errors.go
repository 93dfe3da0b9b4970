package core

import (
	"errors"
	"fmt"
)

// Domain errors - centralized error definitions
var (
	// Frame access errors
	ErrColumnNotFound = errors.New("column not found")
	ErrLengthMismatch = errors.New("column length mismatch")
	ErrEmptyFrame     = errors.New("frame has no rows")

	// Frequency-completion errors
	ErrObservedMissing = errors.New("observed counts missing")
)

// Error constructors with context
func NewColumnNotFoundError(name string) error {
	return fmt.Errorf("%w: %s", ErrColumnNotFound, name)
}

func NewLengthMismatchError(name string, got, want int) error {
	return fmt.Errorf("%w: column %s has %d values, frame has %d rows", ErrLengthMismatch, name, got, want)
}

func NewObservedMissingError(name string) error {
	return fmt.Errorf("%w: %s", ErrObservedMissing, name)
}

// Error checking helpers
func IsColumnNotFound(err error) bool {
	return errors.Is(err, ErrColumnNotFound)
}

func IsObservedMissing(err error) bool {
	return errors.Is(err, ErrObservedMissing)
}
