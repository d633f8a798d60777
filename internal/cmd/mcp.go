package cmd

import (
	"context"
	"os"

	"github.com/salmonumbrella/cj/internal/iocontext"
	"github.com/salmonumbrella/cj/internal/mcptool"
)

// runMCP serves the csv_to_json tool on stdin/stdout until the client
// disconnects or ctx is canceled.
func runMCP(ctx context.Context, app *App) error {
	return mcptool.Serve(ctx, app.Version, iocontext.StdinOrDefault(ctx, os.Stdin), stdoutFromContext(ctx))
}
