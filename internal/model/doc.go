// Package model defines the domain types and value objects for the
// rfcs CLI.
//
// This package contains pure data structures with no external dependencies.
// Identifiers are ephemeral: they are reconstructed from the repository's
// file tree and branch list on every invocation — there is no persistent
// state beyond the git repository itself.
//
// The package also defines exit codes (ExitCode) and a custom error type
// (CLIError) that carries exit codes for proper OS process exit handling.
package model
