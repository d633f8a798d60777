package errors

import (
	"errors"
	"io/fs"
	"strings"
	"testing"
)

func TestValidationError(t *testing.T) {
	err := &ValidationError{
		Field:   "output",
		Message: "must be json",
	}

	expected := "validation error for output: must be json"
	if err.Error() != expected {
		t.Errorf("Expected %q, got %q", expected, err.Error())
	}

	if !IsValidationError(err) {
		t.Error("IsValidationError should return true for ValidationError")
	}
}

func TestUserError(t *testing.T) {
	err := NewUserError("bad --fields", "Use name or key=name")
	if err.Error() != "bad --fields" {
		t.Errorf("unexpected message %q", err.Error())
	}
	if !IsUserError(err) {
		t.Error("IsUserError should return true for UserError")
	}
	if UserSuggestion(err) != "Use name or key=name" {
		t.Errorf("unexpected suggestion %q", UserSuggestion(err))
	}

	inner := errors.New("unexpected token")
	wrapped := WrapUserError(inner, "invalid --query", "")
	if wrapped.Error() != "invalid --query: unexpected token" {
		t.Errorf("unexpected wrapped message %q", wrapped.Error())
	}
	if !errors.Is(wrapped, inner) {
		t.Error("expected wrapped error to unwrap to inner")
	}
}

func TestInputUnavailableError(t *testing.T) {
	err := &InputUnavailableError{Path: "missing.csv", Err: fs.ErrNotExist}

	if err.Error() != "Cannot open file 'missing.csv'" {
		t.Errorf("unexpected message %q", err.Error())
	}
	if !errors.Is(err, fs.ErrNotExist) {
		t.Error("expected errors.Is to reach fs.ErrNotExist")
	}
	if !IsInputUnavailable(err) {
		t.Error("IsInputUnavailable should return true")
	}
	if UserSuggestion(err) != "" {
		t.Error("input errors carry no suggestion")
	}
}

func TestUsageError(t *testing.T) {
	tests := []struct {
		name string
		err  *UsageError
		want string
	}{
		{"reason", NewUsageError("too many arguments"), "too many arguments"},
		{"wrapped", &UsageError{Err: errors.New("unknown flag: --x")}, "unknown flag: --x"},
		{"empty", &UsageError{}, "invalid usage"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if tt.err.Error() != tt.want {
				t.Errorf("Error() = %q, want %q", tt.err.Error(), tt.want)
			}
			if !IsUsageError(tt.err) {
				t.Error("IsUsageError should return true")
			}
		})
	}
}

func TestTypeCheckers(t *testing.T) {
	tests := []struct {
		name    string
		err     error
		checker func(error) bool
		want    bool
	}{
		{"generic validation", errors.New("generic"), IsValidationError, false},
		{"nil validation", nil, IsValidationError, false},
		{"generic user", errors.New("generic"), IsUserError, false},
		{"generic input", errors.New("generic"), IsInputUnavailable, false},
		{"generic usage", errors.New("generic"), IsUsageError, false},
		{
			name:    "wrapped input",
			err:     errors.Join(errors.New("ctx"), &InputUnavailableError{Path: "x"}),
			checker: IsInputUnavailable,
			want:    true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.checker(tt.err); got != tt.want {
				t.Errorf("checker() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestUnknownChoiceError(t *testing.T) {
	err := UnknownChoiceError("color", "purple", "auto", "always", "never")
	if !IsValidationError(err) {
		t.Fatal("expected ValidationError")
	}
	if !strings.Contains(err.Error(), `"purple" is not one of auto|always|never`) {
		t.Errorf("unexpected message %q", err.Error())
	}
}
