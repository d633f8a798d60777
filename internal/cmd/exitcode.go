package cmd

import (
	"context"
	"errors"

	clierrors "github.com/salmonumbrella/cj/internal/errors"
)

const (
	ExitOK       = 0
	ExitFailure  = 1
	ExitUser     = 2
	ExitCanceled = 130
)

// ExitCode maps a command error to a stable process exit code for automation.
// Unreadable input and malformed command lines exit 1; invalid values for
// the extension flags exit 2.
func ExitCode(err error) int {
	if err == nil {
		return ExitOK
	}
	if errors.Is(err, context.Canceled) {
		return ExitCanceled
	}
	if clierrors.IsUsageError(err) || clierrors.IsInputUnavailable(err) {
		return ExitFailure
	}
	if clierrors.IsValidationError(err) || clierrors.IsUserError(err) {
		return ExitUser
	}
	return ExitFailure
}
