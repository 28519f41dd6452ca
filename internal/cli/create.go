// Package cli — create.go implements the "rfcs create" command.
//
// The create command is the primary user-facing operation. It runs the
// RFC creation workflow: a fresh scan of document files and local
// branches, allocation of the lowest free identifier, and an atomic
// git branch-create-and-checkout for the new draft.
package cli

import (
	"encoding/json"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/mmr-tortoise/rfcs/internal/gitrepo"
	"github.com/mmr-tortoise/rfcs/internal/ident"
	"github.com/mmr-tortoise/rfcs/internal/model"
	"github.com/mmr-tortoise/rfcs/internal/repo"
	"github.com/mmr-tortoise/rfcs/internal/rfc"
)

// NewCreateCommand creates the "create" cobra command.
// It is called from NewRootCommand to register as a subcommand.
func NewCreateCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "create <title>",
		Short: "Start a new draft RFC on a fresh branch",
		Long: `Create a new draft RFC branch for the given title.

The command scans existing document files and local branches for claimed
RFC numbers, allocates the lowest free number, and creates and checks out
a branch named <number>-<title> rooted at the current HEAD.

If a branch with that exact name already exists (for example because
another contributor claimed the same number since your last fetch), the
command fails without retrying — a naming collision is a coordination
problem you should see, not something to paper over.

Examples:
  rfcs create "Service mesh rollout"
  rfcs create "New Thing" --json`,

		// Args validates that exactly one positional argument (the title)
		// is provided. Quoting keeps a multi-word title as one argument.
		Args: cobra.ExactArgs(1),

		RunE: func(cmd *cobra.Command, args []string) error {
			return runCreate(args[0])
		},
	}

	return cmd
}

// runCreate is the main orchestration function for the create command.
func runCreate(title string) error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}

	path, err := repo.Locate(cfg)
	if err != nil {
		return err
	}
	VerboseLog("Repository checkout: %s", path)

	checkout := gitrepo.Open(path)
	if !checkout.IsRepo() {
		return model.NewCLIError(model.ExitScanError,
			fmt.Sprintf("%s is not a git repository", path))
	}

	scanner := ident.NewDocScanner()
	scanner.Recursive = cfg.Scan.Recursive

	workflow := rfc.NewWorkflow(scanner)
	draft, err := workflow.Create(checkout, title)
	if err != nil {
		VerboseLog("Workflow failed in phase %s", workflow.Phase())
		return err
	}
	VerboseLog("Allocated identifier %d", draft.ID)

	printCreateResult(draft)
	return nil
}

// printCreateResult outputs the create command results in text or JSON
// format.
func printCreateResult(draft *model.RfcDraft) {
	if IsJSONOutput() {
		data, _ := json.MarshalIndent(draft, "", "  ")
		fmt.Println(string(data))
		return
	}

	fmt.Printf("Created and checked out git branch %s\n", draft.Branch)
}
