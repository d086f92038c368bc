package errors

import (
	"errors"
	"fmt"
	"os"

	"habitly/internal/logger"
)

// ErrNotConfigured indicates that remote sync was requested without the
// required credentials (client id plus a token source) being present.
var ErrNotConfigured = errors.New("sync is not configured: set client credentials in config.yaml or HABITLY_* env vars")

// AuthError indicates that token acquisition was refused or errored.
// The requesting sync operation aborts; local state is untouched.
type AuthError struct {
	Reason string
	Err    error
}

func (e *AuthError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("auth: %s: %v", e.Reason, e.Err)
	}
	return fmt.Sprintf("auth: %s", e.Reason)
}

func (e *AuthError) Unwrap() error { return e.Err }

// StorageError indicates a non-success response from a document storage
// operation. Status is the HTTP status code when one was received, else 0.
type StorageError struct {
	Op     string
	Status int
	Err    error
}

func (e *StorageError) Error() string {
	if e.Status != 0 {
		return fmt.Sprintf("storage: %s failed with status %d", e.Op, e.Status)
	}
	return fmt.Sprintf("storage: %s failed: %v", e.Op, e.Err)
}

func (e *StorageError) Unwrap() error { return e.Err }

// DataError indicates that a retrieved document could not be parsed.
// Loads treat it the same as a StorageError: fall back to the default
// empty dataset.
type DataError struct {
	Err error
}

func (e *DataError) Error() string {
	return fmt.Sprintf("data: document is not valid JSON: %v", e.Err)
}

func (e *DataError) Unwrap() error { return e.Err }

// Format formats an error message with a consistent "Error: " prefix
func Format(err error) string {
	if err == nil {
		return ""
	}
	return fmt.Sprintf("Error: %v", err)
}

// Fatal logs an error and exits the program with exit code 1
func Fatal(err error) {
	if err != nil {
		logger.Error("Command execution failed", "error", err)
		fmt.Fprintf(os.Stderr, "%s\n", Format(err))
		os.Exit(1)
	}
}
