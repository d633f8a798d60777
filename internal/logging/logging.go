// Package logging configures the process-wide slog logger for cj.
package logging

import (
	"io"
	"log/slog"
	"os"
	"strings"

	clierrors "github.com/salmonumbrella/cj/internal/errors"
)

// Log formats accepted by --log-format and the log_format config key.
const (
	FormatText = "text"
	FormatJSON = "json"
)

// Options selects the handler, level and destination of the default logger.
type Options struct {
	Debug  bool
	Format string    // text (default) or json
	Writer io.Writer // defaults to os.Stderr
}

// Configure installs a slog default logger built from opts.
// Diagnostics never go to stdout, which carries the converted document.
func Configure(opts Options) error {
	w := opts.Writer
	if w == nil {
		w = os.Stderr
	}

	level := slog.LevelInfo
	if opts.Debug {
		level = slog.LevelDebug
	}
	handlerOpts := &slog.HandlerOptions{Level: level}

	var handler slog.Handler
	switch strings.ToLower(strings.TrimSpace(opts.Format)) {
	case "", FormatText:
		handler = slog.NewTextHandler(w, handlerOpts)
	case FormatJSON:
		handler = slog.NewJSONHandler(w, handlerOpts)
	default:
		return clierrors.UnknownChoiceError("log-format", opts.Format, FormatText, FormatJSON)
	}

	slog.SetDefault(slog.New(handler))
	return nil
}

// Setup configures the global slog logger with text output.
// If debug is true, sets level to Debug; otherwise Info.
func Setup(debug bool, w io.Writer) {
	_ = Configure(Options{Debug: debug, Format: FormatText, Writer: w})
}

// SetupJSON configures the global slog logger with JSON output.
func SetupJSON(debug bool, w io.Writer) {
	_ = Configure(Options{Debug: debug, Format: FormatJSON, Writer: w})
}
