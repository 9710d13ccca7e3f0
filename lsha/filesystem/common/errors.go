package common

import (
	"errors"
	"fmt"
	"log/slog"
)

// Error taxonomy shared by the listing pipeline. Every failure returned by the filesystem
// packages wraps exactly one of these so callers can branch with errors.Is.
var (
	ErrCapabilityMissing  = errors.New("extended attribute support is not available on this host")
	ErrIdentityResolution = errors.New("cannot resolve numeric id to a name")
	ErrIO                 = errors.New("i/o failure")
	ErrUnknownAlgorithm   = errors.New("unknown checksum algorithm")
	ErrPathEmpty          = errors.New("path cannot be empty")
)

// ErrorUtils provides common error handling utilities
type ErrorUtils struct{}

// NewErrorUtils creates a new ErrorUtils instance
func NewErrorUtils() *ErrorUtils {
	return &ErrorUtils{}
}

// WrapError wraps an error with additional context
func (eu *ErrorUtils) WrapError(err error, message string, args ...any) error {
	if err == nil {
		return nil
	}
	context := fmt.Sprintf(message, args...)
	return fmt.Errorf("%s: %w", context, err)
}

// IOError tags err as an ErrIO failure of operation on path while keeping the underlying
// error reachable through errors.Is / errors.As.
func (eu *ErrorUtils) IOError(err error, operation, path string) error {
	if err == nil {
		return nil
	}
	return fmt.Errorf("failed to %s %s: %w: %w", operation, path, ErrIO, err)
}

// HandleOperationError logs a failed operation and returns it wrapped as an ErrIO failure.
func (eu *ErrorUtils) HandleOperationError(err error, operation, path string, logError bool) error {
	if err == nil {
		return nil
	}

	if logError {
		slog.Debug("Operation failed",
			"operation", operation,
			"path", path,
			"error", err)
	}

	return eu.IOError(err, operation, path)
}
