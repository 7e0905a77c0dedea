package falsify

import (
	"errors"
	"fmt"
)

// Standard sentinel errors for harness failures.
var (
	// ErrRejectionLimit is returned when a strategy keeps rejecting draws
	// until the configured attempt ceiling is reached.
	ErrRejectionLimit = errors.New("falsify: rejection limit exceeded")

	// ErrInvalidConfig is returned when a configuration file or Config
	// value fails validation.
	ErrInvalidConfig = errors.New("falsify: invalid configuration")
)

// RejectionLimitError reports a draw that never produced an accepted
// value. The counters identify where generation gave up.
type RejectionLimitError struct {
	Attempts  int
	Iteration int
	Depth     int
	Limit     int
}

// Error returns the error string.
func (e *RejectionLimitError) Error() string {
	return fmt.Sprintf("falsify: strategy rejected value after %d attempts (iteration %d, depth %d; limit %d)",
		e.Attempts, e.Iteration, e.Depth, e.Limit)
}

// Is reports whether the target error matches RejectionLimitError.
// This allows errors.Is(err, ErrRejectionLimit) to return true.
func (e *RejectionLimitError) Is(err error) bool {
	return err == ErrRejectionLimit
}

// ConfigError reports an invalid configuration field.
type ConfigError struct {
	Field  string
	Reason string
}

// Error returns the error string.
func (e *ConfigError) Error() string {
	return fmt.Sprintf("falsify: invalid configuration: %s %s", e.Field, e.Reason)
}

// Is reports whether the target error matches ConfigError.
func (e *ConfigError) Is(err error) bool {
	return err == ErrInvalidConfig
}
