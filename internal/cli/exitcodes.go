package cli

import (
	"errors"
	"fmt"

	"github.com/spf13/cobra"
	"github.com/wifak939/taskboard/internal/models"
	"github.com/wifak939/taskboard/internal/storage"
)

// Exit codes for CLI commands.
// These codes follow Unix conventions and provide consistent error reporting
// across all CLI commands.
const (
	// ExitSuccess indicates the command completed successfully.
	ExitSuccess = 0

	// ExitError indicates a general error occurred.
	// Use for: storage errors, unexpected failures, or any error that
	// doesn't fit the specific categories below.
	ExitError = 1

	// ExitUsage indicates incorrect command usage.
	// Use for: wrong argument counts, unknown flags, unknown storage backends.
	ExitUsage = 2

	// ExitNotFound indicates a requested resource was not found.
	// Use for: unknown column ids and task ids.
	ExitNotFound = 3

	// ExitDataErr indicates invalid or malformed data.
	ExitDataErr = 4

	// ExitValidation indicates a validation error.
	// Use for: blank task text.
	ExitValidation = 5
)

var (
	// ErrUsage marks errors caused by how the command was invoked
	ErrUsage = errors.New("invalid usage")
	// ErrTaskNotFound is returned when a command names a task that is not in
	// the given column
	ErrTaskNotFound = errors.New("task not found")
	// ErrBlankTask is returned when task text is empty or whitespace
	ErrBlankTask = errors.New("task text is blank")
)

// ExitCode maps an error returned by a command to the process exit code
func ExitCode(err error) int {
	switch {
	case err == nil:
		return ExitSuccess
	case errors.Is(err, ErrUsage), errors.Is(err, storage.ErrUnknownBackend):
		return ExitUsage
	case errors.Is(err, models.ErrColumnNotFound), errors.Is(err, ErrTaskNotFound):
		return ExitNotFound
	case errors.Is(err, ErrBlankTask):
		return ExitValidation
	default:
		return ExitError
	}
}

// Report prints err through the formatter with a machine-readable code and
// returns the exit code for it
func Report(f *OutputFormatter, err error) int {
	code, suggestion := "ERROR", ""
	switch {
	case errors.Is(err, ErrUsage):
		code, suggestion = "USAGE", "Run with --help to see the expected arguments"
	case errors.Is(err, storage.ErrUnknownBackend):
		code, suggestion = "UNKNOWN_BACKEND", "Use --storage sqlite, file or memory"
	case errors.Is(err, models.ErrColumnNotFound):
		code, suggestion = "COLUMN_NOT_FOUND", "Use 'taskboard task list' to see the columns"
	case errors.Is(err, ErrTaskNotFound):
		code, suggestion = "TASK_NOT_FOUND", "Use 'taskboard task list' to see task ids"
	case errors.Is(err, ErrBlankTask):
		code = "BLANK_TASK"
	}

	if fmtErr := f.ErrorWithSuggestion(code, err.Error(), suggestion); fmtErr != nil {
		return ExitError
	}
	return ExitCode(err)
}

// Args wraps a cobra argument validator so its failures count as usage errors
func Args(validate cobra.PositionalArgs) cobra.PositionalArgs {
	return func(cmd *cobra.Command, args []string) error {
		if err := validate(cmd, args); err != nil {
			return fmt.Errorf("%w: %v", ErrUsage, err)
		}
		return nil
	}
}
