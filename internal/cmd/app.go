package cmd

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"

	"github.com/spf13/cobra"

	clierrors "github.com/salmonumbrella/cj/internal/errors"
	"github.com/salmonumbrella/cj/internal/iocontext"
)

// App owns CLI wiring and execution configuration.
type App struct {
	Stdin     io.Reader
	Stdout    io.Writer
	Stderr    io.Writer
	Version   string
	Commit    string
	BuildTime string
}

// NewApp constructs an App with default settings.
func NewApp() *App {
	return &App{
		Stdin:     os.Stdin,
		Stdout:    os.Stdout,
		Stderr:    os.Stderr,
		Version:   "dev",
		Commit:    "unknown",
		BuildTime: "unknown",
	}
}

// Execute runs the CLI with the provided args. Errors are reported here,
// once: a wrong command line prints the usage text to stdout, anything else
// goes to stderr in the selected error format.
func (a *App) Execute(ctx context.Context, args []string) error {
	root := newRootCmd(a)
	root.SetArgs(args)

	ctx = iocontext.WithStdin(iocontext.WithIO(ctx, a.stdout(), a.stderr()), a.Stdin)
	if err := root.ExecuteContext(ctx); err != nil {
		if clierrors.IsUsageError(err) {
			slog.Debug("usage error", "error", err)
			_, _ = fmt.Fprint(a.stdout(), usageText(root))
			return err
		}
		printCommandError(root.Context(), err)
		return err
	}
	return nil
}

// RootCommand exposes the root Cobra command for embedding/tests.
func (a *App) RootCommand() *cobra.Command {
	return newRootCmd(a)
}

func (a *App) stdout() io.Writer {
	if a.Stdout == nil {
		return os.Stdout
	}
	return a.Stdout
}

func (a *App) stderr() io.Writer {
	if a.Stderr == nil {
		return os.Stderr
	}
	return a.Stderr
}
