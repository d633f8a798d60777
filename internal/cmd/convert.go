package cmd

import (
	"context"
	"log/slog"

	"github.com/salmonumbrella/cj/internal/cmdutil"
	"github.com/salmonumbrella/cj/internal/csvparse"
	"github.com/salmonumbrella/cj/internal/ui"
)

// runConvert reads path and prints it in the selected format. When the
// input fails part way, the rows read so far are still printed and the read
// error is returned afterwards.
func runConvert(ctx context.Context, path string, opts globalOptions) error {
	in, err := cmdutil.OpenInput(ctx, path)
	if err != nil {
		return err
	}
	defer func() { _ = in.Close() }()

	slog.Debug("converting", "input", path, "format", opts.format, "layout", opts.layout(), "limit", opts.limit)

	t, readErr := csvparse.ReadTable(in, csvparse.WithLimit(opts.limit), csvparse.WithLogger(slog.Default()))
	if err := ctx.Err(); err != nil {
		return err
	}

	if r := t.Ragged(); r.Any() {
		slog.Debug("ragged rows", "short", r.Short, "long", r.Long, "headers", len(t.Headers))
		if opts.warnRagged {
			ui.FromContext(ctx).Warning("%d row(s) shorter and %d row(s) longer than the %d header(s)",
				r.Short, r.Long, len(t.Headers))
		}
	}

	if err := printerForContext(ctx).Print(ctx, t); err != nil {
		return err
	}
	return readErr
}
