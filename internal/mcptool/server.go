// Package mcptool exposes the CSV converter as a Model Context Protocol tool
// served over stdio.
package mcptool

import (
	"context"
	"fmt"
	"io"
	"log/slog"

	"github.com/mark3labs/mcp-go/server"
)

const serverName = "cj"

// NewServer builds an MCP server advertising the csv_to_json tool.
func NewServer(version string) *server.MCPServer {
	s := server.NewMCPServer(serverName, version,
		server.WithToolCapabilities(false),
		server.WithRecovery(),
	)
	s.AddTool(convertTool(), handleConvert)
	return s
}

// Serve runs an MCP session on in/out until ctx is canceled or in closes.
func Serve(ctx context.Context, version string, in io.Reader, out io.Writer) error {
	slog.Debug("mcp server starting", "version", version)

	stdio := server.NewStdioServer(NewServer(version))
	if err := stdio.Listen(ctx, in, out); err != nil && ctx.Err() == nil {
		return fmt.Errorf("mcp server: %w", err)
	}
	return nil
}
