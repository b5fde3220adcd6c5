// Package main is the entry point for the gcphcp CLI.
//
// gcphcp manages hosted control plane clusters and nodepools on
// Google Cloud through the GCP HCP management API, and drives the
// external hypershift binary for workload identity federation and
// network provisioning.
//
// Commands: clusters, nodepools, infra, config.
//
// For detailed usage information, run:
//
//	gcphcp --help
package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/jimdaga/gcp-hcp-cli/cmd/gcphcp/commands"
)

// Version information set by goreleaser at build time.
var (
	version = "dev"
	commit  = "none"
	date    = "unknown"
)

func main() {
	commands.SetVersionInfo(version, commit, date)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := commands.Root().ExecuteContext(ctx); err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		os.Exit(1)
	}
}
