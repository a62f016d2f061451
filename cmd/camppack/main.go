// Package main provides the entry point for the camppack CLI tool.
package main

import (
	"context"
	"os"

	"github.com/pxlchk1/Complete-Camping-App-3.0-sub005/cmd/camppack/app"
)

// Version information populated by goreleaser.
var (
	version = "dev"
	commit  = "unknown"
	date    = "unknown"
	builtBy = "unknown"
)

func main() {
	application, err := app.New(version, commit, date, builtBy)
	if err != nil {
		app.ExitOnError(err)
	}

	// Cancelled on SIGINT/SIGTERM for graceful shutdown.
	ctx, cancel := app.ContextWithSignals(context.Background())
	defer cancel()

	if err := application.Execute(ctx, os.Args[1:]); err != nil {
		application.Shutdown()
		app.ExitOnError(err)
	}
	application.Shutdown()
}
