package cli

import (
	"errors"
	"fmt"

	"github.com/thenoetrevino/huddle/internal/models"
)

// Exit codes for CLI commands.
// These codes follow Unix conventions and provide consistent error reporting
// across all CLI commands.
const (
	// ExitSuccess indicates the command completed successfully.
	ExitSuccess = 0

	// ExitError indicates a general error occurred.
	// Use for: storage errors, unexpected failures,
	// or any error that doesn't fit the specific categories below.
	ExitError = 1

	// ExitUsage indicates incorrect command usage.
	// Use for: Missing required flags, invalid flag combinations.
	ExitUsage = 2

	// ExitNotFound indicates a requested resource was not found.
	// Use for: project or member IDs that don't exist, unknown delete tokens.
	ExitNotFound = 3

	// ExitValidation indicates a validation error.
	// Use for: name or description lengths, bad emails, unknown roles or priorities.
	ExitValidation = 5

	// ExitConflict indicates the request clashes with existing data.
	// Use for: duplicate emails, assigning a member twice.
	ExitConflict = 6
)

// StatusError carries the process exit code of a failed command
type StatusError struct {
	Code int
	Err  error
}

func (e *StatusError) Error() string {
	if e.Err == nil {
		return fmt.Sprintf("exit status %d", e.Code)
	}
	return e.Err.Error()
}

func (e *StatusError) Unwrap() error {
	return e.Err
}

// ExitCode maps an error to the process exit code. Category sentinels
// decide the code unless a StatusError says otherwise.
func ExitCode(err error) int {
	if err == nil {
		return ExitSuccess
	}

	var statusErr *StatusError
	if errors.As(err, &statusErr) {
		return statusErr.Code
	}

	switch {
	case errors.Is(err, models.ErrValidation):
		return ExitValidation
	case errors.Is(err, models.ErrNotFound):
		return ExitNotFound
	case errors.Is(err, models.ErrConflict):
		return ExitConflict
	default:
		return ExitError
	}
}

// ErrorCode is the machine readable code reported in JSON errors
func ErrorCode(err error) string {
	switch ExitCode(err) {
	case ExitValidation:
		return "VALIDATION_ERROR"
	case ExitNotFound:
		return "NOT_FOUND"
	case ExitConflict:
		return "CONFLICT"
	case ExitUsage:
		return "USAGE_ERROR"
	default:
		return "INTERNAL_ERROR"
	}
}
