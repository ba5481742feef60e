package cli

import (
	"errors"

	"github.com/thenoetrevino/trackview/internal/models"
)

// Exit codes for CLI commands.
// These codes follow Unix conventions and provide consistent error reporting
// across all CLI commands.
const (
	// ExitSuccess indicates the command completed successfully.
	ExitSuccess = 0

	// ExitError indicates a general error occurred.
	// Use for: Database errors, template errors, or unexpected failures.
	ExitError = 1

	// ExitUsage indicates incorrect command usage.
	// Use for: Missing required flags or invalid arguments.
	ExitUsage = 2

	// ExitNotFound indicates a requested resource was not found.
	// Use for: Unknown project alias, issue number, status id or lookup key.
	ExitNotFound = 3

	// ExitDataErr indicates invalid or malformed data.
	// Use for: Unreadable input files.
	ExitDataErr = 4
)

// UsageError marks errors caused by how the command was invoked
type UsageError struct {
	Err error
}

func (e *UsageError) Error() string { return e.Err.Error() }

func (e *UsageError) Unwrap() error { return e.Err }

// DataError marks input that could not be read or parsed
type DataError struct {
	Err error
}

func (e *DataError) Error() string { return e.Err.Error() }

func (e *DataError) Unwrap() error { return e.Err }

// ExitCode maps a command error to its exit code
func ExitCode(err error) int {
	var usage *UsageError
	var data *DataError
	switch {
	case err == nil:
		return ExitSuccess
	case errors.As(err, &usage):
		return ExitUsage
	case errors.As(err, &data):
		return ExitDataErr
	case errors.Is(err, models.ErrNotFound):
		return ExitNotFound
	}
	return ExitError
}
