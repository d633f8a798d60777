package mcptool

import (
	"bytes"
	"context"
	"io"
	"log/slog"
	"os"
	"strings"

	"github.com/mark3labs/mcp-go/mcp"

	"github.com/salmonumbrella/cj/internal/csvparse"
	clierrors "github.com/salmonumbrella/cj/internal/errors"
	"github.com/salmonumbrella/cj/internal/output"
)

// ToolName is the name clients call.
const ToolName = "csv_to_json"

func convertTool() mcp.Tool {
	return mcp.NewTool(ToolName,
		mcp.WithDescription("Convert CSV text or a CSV file to a JSON array with one object per row. "+
			"Numeric-looking fields become JSON numbers; everything else is a string."),
		mcp.WithString("csv", mcp.Description("Inline CSV document. The first line holds the headers.")),
		mcp.WithString("path", mcp.Description("Path of a CSV file to read instead of inline text.")),
		mcp.WithBoolean("styled", mcp.Description("Indent the JSON output.")),
		mcp.WithString("output", mcp.Description("Output format: json, ndjson or yaml."),
			mcp.Enum("json", "ndjson", "yaml")),
		mcp.WithString("query", mcp.Description("Optional jq expression applied to the rows.")),
		mcp.WithString("fields", mcp.Description("Optional column list, e.g. id,name=full_name.")),
		mcp.WithNumber("limit", mcp.Description("Maximum number of data rows (0 reads all).")),
	)
}

// handleConvert reads the CSV named by the request and returns the rendered
// document as text. Input problems come back as tool errors so the client
// sees them; only context cancellation is a protocol error.
func handleConvert(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	args := req.GetArguments()
	_, hasCSV := args["csv"]
	_, hasPath := args["path"]
	if hasCSV == hasPath {
		return mcp.NewToolResultError("provide exactly one of csv or path"), nil
	}

	format, err := output.ParseFormat(req.GetString("output", ""))
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}
	if format == output.FormatTable {
		return mcp.NewToolResultError("table output is not available over MCP"), nil
	}

	var src io.Reader
	if hasPath {
		path := req.GetString("path", "")
		f, err := os.Open(path)
		if err != nil {
			return mcp.NewToolResultError((&clierrors.InputUnavailableError{Path: path, Err: err}).Error()), nil
		}
		defer func() { _ = f.Close() }()
		src = f
	} else {
		src = strings.NewReader(req.GetString("csv", ""))
	}

	t, err := csvparse.ReadTable(src, csvparse.WithLimit(req.GetInt("limit", 0)))
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}
	if r := t.Ragged(); r.Any() {
		slog.Debug("mcp input has ragged rows", "short", r.Short, "long", r.Long)
	}

	pctx := output.WithStyled(ctx, req.GetBool("styled", false))
	pctx = output.WithQuery(pctx, req.GetString("query", ""))
	pctx = output.WithFields(pctx, req.GetString("fields", ""))

	var buf bytes.Buffer
	if err := output.NewPrinter(&buf, format).Print(pctx, t); err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	return mcp.NewToolResultText(buf.String()), nil
}
