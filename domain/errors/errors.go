// Package errors provides the error types of the SDK.
// All error types support unwrapping via errors.As() and errors.Is().
package errors

import (
	stdErrors "errors"
	"fmt"

	"github.com/autosplit-dev/autosplit-sdk/domain/entities"
)

// ErrFailedRead is the single error kind for memory reads. Every
// *MemoryReadError matches it with errors.Is, whatever the underlying cause
// (unmapped address, exited process, protected page, marshalling failure).
var ErrFailedRead = stdErrors.New("memory read failed")

// ErrNotConstructed is returned by a dispatcher whose splitter has not been
// constructed successfully.
var ErrNotConstructed = stdErrors.New("splitter not constructed")

// MemoryReadError reports a read on an attached process that could not be
// satisfied. The causes are deliberately not distinguished.
type MemoryReadError struct {
	// Reason is a free-form hint for logs. Callers must not branch on it.
	Reason  string
	Address entities.Address
	Size    int
}

func (e *MemoryReadError) Error() string {
	if e.Reason != "" {
		return fmt.Sprintf("failed to read %d bytes at %s: %s", e.Size, e.Address, e.Reason)
	}
	return fmt.Sprintf("failed to read %d bytes at %s", e.Size, e.Address)
}

// Is makes every MemoryReadError match ErrFailedRead.
func (e *MemoryReadError) Is(target error) bool {
	return target == ErrFailedRead
}

// NewMemoryReadError builds a MemoryReadError without a reason.
func NewMemoryReadError(addr entities.Address, size int) *MemoryReadError {
	return &MemoryReadError{Address: addr, Size: size}
}

// IsFailedRead reports whether err is (or wraps) a failed memory read.
func IsFailedRead(err error) bool {
	return stdErrors.Is(err, ErrFailedRead)
}

// PanicError carries a panic recovered while calling into a splitter.
type PanicError struct {
	Value any
	// Phase is "construct" or "update".
	Phase string
	Stack []byte
}

func (e *PanicError) Error() string {
	return fmt.Sprintf("splitter panic during %s: %v", e.Phase, e.Value)
}

// Unwrap exposes the panic value when it was an error.
func (e *PanicError) Unwrap() error {
	if err, ok := e.Value.(error); ok {
		return err
	}
	return nil
}

// ConfigError represents a configuration validation error.
type ConfigError struct {
	Err   error
	Field string
}

func (e *ConfigError) Error() string {
	if e.Field != "" {
		return fmt.Sprintf("config validation failed for field '%s': %v", e.Field, e.Err)
	}
	return fmt.Sprintf("config validation failed: %v", e.Err)
}

func (e *ConfigError) Unwrap() error {
	return e.Err
}
