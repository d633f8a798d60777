package cmd

import (
	"context"
	"errors"
	"fmt"
	"testing"

	"github.com/salmonumbrella/cj/internal/csvparse"
	clierrors "github.com/salmonumbrella/cj/internal/errors"
)

func TestExitCode(t *testing.T) {
	tests := []struct {
		name string
		err  error
		want int
	}{
		{"nil", nil, ExitOK},
		{"canceled", context.Canceled, ExitCanceled},
		{"wrapped_canceled", fmt.Errorf("read: %w", context.Canceled), ExitCanceled},
		{"usage", clierrors.NewUsageError("two files"), ExitFailure},
		{"input", &clierrors.InputUnavailableError{Path: "x.csv"}, ExitFailure},
		{"read", &csvparse.ReadError{Line: 3, Rows: 2, Err: errors.New("eio")}, ExitFailure},
		{"user", clierrors.NewUserError("bad", "hint"), ExitUser},
		{"validation", &clierrors.ValidationError{Field: "limit", Message: "bad"}, ExitUser},
		{"other", errors.New("boom"), ExitFailure},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := ExitCode(tt.err); got != tt.want {
				t.Fatalf("ExitCode() = %d, want %d", got, tt.want)
			}
		})
	}
}
