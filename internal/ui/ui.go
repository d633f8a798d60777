// Package ui writes coloured status messages for cj to stderr.
package ui

import (
	"context"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/muesli/termenv"

	clierrors "github.com/salmonumbrella/cj/internal/errors"
)

// ColorMode determines when to use colored output.
type ColorMode int

const (
	// ColorAuto automatically detects whether to use colors based on terminal capabilities.
	ColorAuto ColorMode = iota
	// ColorAlways forces colored output regardless of terminal capabilities.
	ColorAlways
	// ColorNever disables all colored output.
	ColorNever
)

// ParseColorMode converts a --color value. Empty means auto.
func ParseColorMode(s string) (ColorMode, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "", "auto":
		return ColorAuto, nil
	case "always":
		return ColorAlways, nil
	case "never":
		return ColorNever, nil
	default:
		return ColorAuto, clierrors.UnknownChoiceError("color", s, "auto", "always", "never")
	}
}

type contextKey string

const uiContextKey contextKey = "ui"

// UI provides methods for formatted terminal output with color support.
// Messages never go to stdout, which carries the converted document.
type UI struct {
	out   *termenv.Output
	color ColorMode
	quiet bool
}

// New creates a UI writing to w (os.Stderr when nil) in the given color mode.
// It respects the NO_COLOR environment variable (POSIX standard).
func New(w io.Writer, mode ColorMode) *UI {
	if w == nil {
		w = os.Stderr
	}
	if os.Getenv("NO_COLOR") != "" {
		mode = ColorNever
	}

	var profile termenv.Profile
	switch mode {
	case ColorNever:
		profile = termenv.Ascii
	case ColorAlways:
		profile = termenv.ANSI256
	default:
		profile = termenv.NewOutput(w).EnvColorProfile()
	}

	return &UI{
		out:   termenv.NewOutput(w, termenv.WithProfile(profile)),
		color: mode,
	}
}

// SetQuiet suppresses Warning and Info output. Errors are always printed.
func (u *UI) SetQuiet(quiet bool) {
	u.quiet = quiet
}

// WithUI returns a new context with the UI instance attached.
func WithUI(ctx context.Context, ui *UI) context.Context {
	return context.WithValue(ctx, uiContextKey, ui)
}

// FromContext retrieves the UI instance from the context.
// If no UI is found, it returns a stderr UI with ColorAuto mode.
func FromContext(ctx context.Context) *UI {
	if ui, ok := ctx.Value(uiContextKey).(*UI); ok {
		return ui
	}
	return New(os.Stderr, ColorAuto)
}

// Warning prints a warning message in yellow.
func (u *UI) Warning(format string, args ...any) {
	if u.quiet {
		return
	}
	u.print(termenv.ANSIYellow, "⚠ ", format, args...)
}

// Info prints an informational message in blue.
func (u *UI) Info(format string, args ...any) {
	if u.quiet {
		return
	}
	u.print(termenv.ANSIBlue, "ℹ ", format, args...)
}

// Error prints an error message in red.
func (u *UI) Error(format string, args ...any) {
	u.print(termenv.ANSIRed, "✗ ", format, args...)
}

func (u *UI) print(color termenv.ANSIColor, prefix, format string, args ...any) {
	msg := fmt.Sprintf(format, args...)
	_, _ = fmt.Fprintln(u.out, u.out.String(prefix+msg).Foreground(color))
}

// Writer returns the underlying writer for the UI.
func (u *UI) Writer() io.Writer {
	return u.out
}
