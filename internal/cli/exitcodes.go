package cli

import (
	"errors"
	"fmt"
)

// Exit codes for CLI commands.
// These codes follow Unix conventions and provide consistent error reporting
// across all CLI commands.
const (
	// ExitSuccess indicates the command completed successfully.
	ExitSuccess = 0

	// ExitError indicates a general error occurred.
	// Use for: Database errors, unexpected failures,
	// or any error that doesn't fit the specific categories below.
	ExitError = 1

	// ExitUsage indicates incorrect command usage.
	// Use for: Missing required flags, or an update without any field.
	ExitUsage = 2

	// ExitNotFound indicates a requested filière was not found.
	ExitNotFound = 3

	// ExitConflict indicates the filière code is already taken.
	ExitConflict = 4

	// ExitValidation indicates a validation error.
	// Use for: Blank code, title or sector.
	ExitValidation = 5
)

// ExitCodeError carries the process exit code a failed command should end with
type ExitCodeError struct {
	Code int
	Err  error
}

func (e *ExitCodeError) Error() string {
	return e.Err.Error()
}

func (e *ExitCodeError) Unwrap() error {
	return e.Err
}

// Exit wraps err so that the process ends with code
func Exit(code int, err error) error {
	return &ExitCodeError{Code: code, Err: err}
}

// Exitf is Exit with a formatted message
func Exitf(code int, format string, args ...any) error {
	return Exit(code, fmt.Errorf(format, args...))
}

// ExitCode returns the exit code for an error returned by a command
func ExitCode(err error) int {
	if err == nil {
		return ExitSuccess
	}
	var exitErr *ExitCodeError
	if errors.As(err, &exitErr) {
		return exitErr.Code
	}
	return ExitError
}
