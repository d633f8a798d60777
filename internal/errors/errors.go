package errors

import (
	"errors"
	"fmt"
	"strings"
)

// ValidationError represents an invalid flag or config value
type ValidationError struct {
	Field   string
	Message string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("validation error for %s: %s", e.Field, e.Message)
}

// UserError represents an error caused by user input or configuration.
// Suggestion can provide a concrete fix for the user.
type UserError struct {
	Message    string
	Suggestion string
	Err        error
}

func (e *UserError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: %v", e.Message, e.Err)
	}
	return e.Message
}

func (e *UserError) Unwrap() error {
	return e.Err
}

// NewUserError creates a UserError with a message and optional suggestion.
func NewUserError(message, suggestion string) *UserError {
	return &UserError{Message: message, Suggestion: suggestion}
}

// WrapUserError wraps an underlying error with a user-facing message and suggestion.
func WrapUserError(err error, message, suggestion string) *UserError {
	return &UserError{Message: message, Suggestion: suggestion, Err: err}
}

// InputUnavailableError reports a CSV source that could not be opened.
// The message intentionally omits the OS error; it is kept in Err.
type InputUnavailableError struct {
	Path string
	Err  error
}

func (e *InputUnavailableError) Error() string {
	return fmt.Sprintf("Cannot open file '%s'", e.Path)
}

func (e *InputUnavailableError) Unwrap() error {
	return e.Err
}

// UsageError marks a command line of the wrong shape. The CLI answers it
// with the usage text rather than an error message.
type UsageError struct {
	Reason string
	Err    error
}

func (e *UsageError) Error() string {
	switch {
	case e.Err != nil:
		return e.Err.Error()
	case e.Reason != "":
		return e.Reason
	default:
		return "invalid usage"
	}
}

func (e *UsageError) Unwrap() error {
	return e.Err
}

// NewUsageError creates a UsageError with a short reason for debug logs.
func NewUsageError(reason string) *UsageError {
	return &UsageError{Reason: reason}
}

// Type checkers
func IsValidationError(err error) bool {
	var e *ValidationError
	return errors.As(err, &e)
}

func IsUserError(err error) bool {
	var e *UserError
	return errors.As(err, &e)
}

func IsInputUnavailable(err error) bool {
	var e *InputUnavailableError
	return errors.As(err, &e)
}

func IsUsageError(err error) bool {
	var e *UsageError
	return errors.As(err, &e)
}

// UserSuggestion returns a suggestion string if err is a UserError.
func UserSuggestion(err error) string {
	var ue *UserError
	if errors.As(err, &ue) {
		return ue.Suggestion
	}
	return ""
}

// UnknownChoiceError builds a ValidationError for an enum-like value.
func UnknownChoiceError(field, value string, choices ...string) error {
	return &ValidationError{
		Field:   field,
		Message: fmt.Sprintf("%q is not one of %s", value, strings.Join(choices, "|")),
	}
}
