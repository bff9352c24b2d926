package awk

import (
	"errors"
	"fmt"
)

// Sentinel errors for stream lifecycle conditions.
var (
	// ErrNotOpen indicates an operation on a reader that is not open.
	ErrNotOpen = errors.New("reader is not open")

	// ErrAlreadyOpen indicates Open was called on an open reader.
	ErrAlreadyOpen = errors.New("reader is already open")

	// ErrMissingHeader indicates a header was requested but the input
	// ended before a header line could be read.
	ErrMissingHeader = errors.New("missing header line")
)

// FieldError indicates access to a field the record does not hold.
type FieldError struct {
	Key string // The key or position that was requested
}

func (e *FieldError) Error() string {
	return fmt.Sprintf("no field %q in record", e.Key)
}

// ConfigError indicates a configuration the engine cannot run with,
// such as an invalid separator pattern or incompatible options.
type ConfigError struct {
	Reason string // Description of the problem
	Err    error  // Underlying error, if any
}

func (e *ConfigError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("invalid config: %s: %v", e.Reason, e.Err)
	}
	return "invalid config: " + e.Reason
}

// Unwrap returns the underlying error.
func (e *ConfigError) Unwrap() error {
	return e.Err
}

// IsFieldError reports whether err is a FieldError and returns the key.
// Returns (key, true) if err is a FieldError, or ("", false) otherwise.
func IsFieldError(err error) (string, bool) {
	var fe *FieldError
	if errors.As(err, &fe) {
		return fe.Key, true
	}
	return "", false
}
