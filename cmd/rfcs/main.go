// Package main is the entry point for the rfcs CLI.
//
// This binary manages numbered RFC documents tracked in a git repository.
// It delegates all functionality to the internal/cli package, which
// defines cobra commands.
//
// Build-time variables (version, commit, date) are injected via ldflags
// during the release process. During development, they default to "dev",
// "none", and "unknown" respectively.
package main

import (
	"github.com/mmr-tortoise/rfcs/internal/cli"
)

// version, commit, and date are set at build time via ldflags.
// They provide binary identification for the --version flag output.
var (
	version = "dev"
	commit  = "none"
	date    = "unknown"
)

func main() {
	// Inject build-time version info into the CLI package. This keeps
	// main.go minimal and decouples the build system from cobra.
	cli.Version = version
	cli.Commit = commit
	cli.Date = date

	// Create the root command with all subcommands registered,
	// then execute it. Execute handles error formatting and exit codes.
	rootCmd := cli.NewRootCommand()
	cli.Execute(rootCmd)
}
