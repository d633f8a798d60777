package cmd

import (
	"fmt"
	"io"
	"runtime"
)

const repositoryURL = "https://github.com/salmonumbrella/cj"

func platformInfo() string {
	return fmt.Sprintf("Platform: %s, Architecture: %s, Target: %s/%s",
		runtime.GOOS, runtime.GOARCH, runtime.GOOS, runtime.GOARCH)
}

// printVersion writes the banner shown by `cj version`.
func printVersion(w io.Writer, app *App) error {
	_, err := fmt.Fprintf(w, "cj version %s\nBuilt for: %s\nRepository: %s\nLicense: MIT\n",
		app.Version, platformInfo(), repositoryURL)
	if err != nil {
		return err
	}
	if app.Commit != "" && app.Commit != "unknown" {
		_, err = fmt.Fprintf(w, "Commit: %s (built %s)\n", app.Commit, app.BuildTime)
	}
	return err
}
