// Package cli — configure.go implements the "rfcs configure" command.
//
// Configure sets a single key in the user's config file. The valid keys
// and their value kinds are owned by the config package; this file only
// wires them to the command line.
package cli

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/mmr-tortoise/rfcs/internal/config"
)

// NewConfigureCommand creates the "configure" cobra command.
// It is called from NewRootCommand to register as a subcommand.
func NewConfigureCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "configure <key> <value>",
		Short: "Set a configuration value",
		Long: fmt.Sprintf(`Set a configuration value in the user's config file.

Valid keys:
  git.repo        - Path to an existing local checkout of the RFC repository
  git.url         - Git URL to clone the RFC repository from
  scan.recursive  - Whether to scan subdirectories for documents (true/false)

The config file lives at %s.

Examples:
  rfcs configure git.repo ~/src/rfcs
  rfcs configure git.url git@example.com:team/rfcs.git
  rfcs configure scan.recursive false`, config.ConfigFile()),

		Args: cobra.ExactArgs(2),

		RunE: func(cmd *cobra.Command, args []string) error {
			return runConfigure(args[0], args[1])
		},
	}

	return cmd
}

// runConfigure validates and persists a single key/value pair.
func runConfigure(key, value string) error {
	// Read the existing file first so setting one key does not discard
	// the others when the config is written back.
	if err := config.Init(); err != nil {
		return err
	}

	if err := config.Set(key, value); err != nil {
		return err
	}

	VerboseLog("Known keys: %s", strings.Join(config.KnownKeys(), ", "))
	fmt.Printf("Set %s to %s\n", key, value)
	fmt.Printf("Wrote %s\n", config.ConfigFile())
	return nil
}
