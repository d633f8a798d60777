// Package cmdutil holds helpers shared by cj's commands.
package cmdutil

import (
	"context"
	"errors"
	"io"
	"os"

	clierrors "github.com/salmonumbrella/cj/internal/errors"
	"github.com/salmonumbrella/cj/internal/iocontext"
)

// StdinPath is the input path that reads standard input.
const StdinPath = "-"

// OpenInput opens the CSV source named on the command line. "-" selects the
// stdin reader from ctx (os.Stdin when none is injected); the returned
// closer leaves stdin open. Any failure to open a file is reported as an
// *errors.InputUnavailableError naming path.
func OpenInput(ctx context.Context, path string) (io.ReadCloser, error) {
	if path == StdinPath {
		return io.NopCloser(iocontext.StdinOrDefault(ctx, os.Stdin)), nil
	}

	f, err := os.Open(path)
	if err != nil {
		return nil, &clierrors.InputUnavailableError{Path: path, Err: err}
	}

	// Directories open fine on Unix but fail on the first read.
	if info, err := f.Stat(); err == nil && info.IsDir() {
		_ = f.Close()
		return nil, &clierrors.InputUnavailableError{Path: path, Err: &os.PathError{Op: "open", Path: path, Err: errIsDir}}
	}
	return f, nil
}

var errIsDir = errors.New("is a directory")
