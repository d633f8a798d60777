package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/salmonumbrella/cj/internal/cmd"
	"github.com/salmonumbrella/cj/internal/update"
)

// Version information set via ldflags during build
var (
	Version   = "dev"
	Commit    = "unknown"
	BuildTime = "unknown"
)

func main() {
	ctx, cancel := signal.NotifyContext(context.Background(), syscall.SIGTERM, os.Interrupt)
	defer cancel()

	app := cmd.NewApp()
	app.Version = Version
	app.Commit = Commit
	app.BuildTime = BuildTime
	err := app.Execute(ctx, os.Args[1:])

	// Only for interactive terminals; piped JSON stays clean.
	if err == nil && update.Enabled(os.Stdout) {
		if msg := update.Check(ctx, Version); msg != "" {
			fmt.Fprintln(os.Stderr, "\n"+msg)
		}
	}

	if err != nil {
		os.Exit(cmd.ExitCode(err))
	}
}
