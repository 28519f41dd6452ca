// Package cli — info.go implements the "rfcs info" command, which dumps
// the configuration location and the current repository settings.
package cli

import (
	"encoding/json"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/mmr-tortoise/rfcs/internal/config"
)

// NewInfoCommand creates the "info" cobra command.
// It is called from NewRootCommand to register as a subcommand.
func NewInfoCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "info",
		Short: "Show configuration location and values",
		Args:  cobra.NoArgs,

		RunE: func(cmd *cobra.Command, args []string) error {
			return runInfo()
		},
	}

	return cmd
}

// runInfo prints where the configuration lives and what it contains.
func runInfo() error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}

	if IsJSONOutput() {
		out := map[string]interface{}{
			"configFile":    config.ConfigFile(),
			"gitRepo":       cfg.Git.Repo,
			"gitUrl":        cfg.Git.URL,
			"scanRecursive": cfg.Scan.Recursive,
		}
		data, _ := json.MarshalIndent(out, "", "  ")
		fmt.Println(string(data))
		return nil
	}

	fmt.Printf("Configuration location: %s\n", config.ConfigFile())
	fmt.Printf("git.repo: %q\n", cfg.Git.Repo)
	fmt.Printf("git.url: %q\n", cfg.Git.URL)
	fmt.Printf("scan.recursive: %v\n", cfg.Scan.Recursive)
	return nil
}
