// Package cli — list.go implements the "rfcs list" command.
//
// The list command resolves the configured repository checkout, scans it
// for RFC documents, and prints one row per document with its identifier
// and path. Documents sharing an identifier are all shown — duplicate
// numbers are a coordination problem for humans to resolve, and hiding
// one of the claimants would make that harder, not easier.
package cli

import (
	"encoding/json"
	"fmt"
	"sort"

	"github.com/charmbracelet/lipgloss"
	"github.com/spf13/cobra"

	"github.com/mmr-tortoise/rfcs/internal/config"
	"github.com/mmr-tortoise/rfcs/internal/ident"
	"github.com/mmr-tortoise/rfcs/internal/model"
	"github.com/mmr-tortoise/rfcs/internal/repo"
)

// listHeaderStyle renders the column header of the text listing.
var listHeaderStyle = lipgloss.NewStyle().Bold(true)

// duplicateStyle highlights rows whose identifier is claimed by more
// than one document.
var duplicateStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("11"))

// NewListCommand creates the "list" cobra command.
// It is called from NewRootCommand to register as a subcommand.
func NewListCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "list",
		Short: "List RFC documents in the repository",
		Long: `List all RFC documents found in the configured repository.

Each document is shown with its numeric identifier and path. If two
documents claim the same identifier, both are listed and flagged.

Examples:
  rfcs list
  rfcs list --json`,

		Args: cobra.NoArgs,

		RunE: func(cmd *cobra.Command, args []string) error {
			return runList()
		},
	}

	return cmd
}

// runList is the main logic function for the list command.
func runList() error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}

	path, err := repo.Locate(cfg)
	if err != nil {
		return err
	}
	VerboseLog("Repository checkout: %s", path)

	scanner := ident.NewDocScanner()
	scanner.Recursive = cfg.Scan.Recursive

	docs, err := scanner.Scan(path)
	if err != nil {
		return model.WrapCLIError(model.ExitScanError, "failed to scan repository documents", err)
	}
	VerboseLog("Found %d RFC document(s)", len(docs))

	sortDocs(docs)

	if IsJSONOutput() {
		printDocsJSON(docs)
	} else {
		printDocsText(docs)
	}
	return nil
}

// loadConfig initializes viper and loads the configuration. Shared by
// every subcommand that needs a resolved repository.
func loadConfig() (*config.Config, error) {
	if err := config.Init(); err != nil {
		return nil, err
	}
	return config.Load()
}

// sortDocs orders documents by identifier value, then path, so the
// listing is stable across runs and duplicates end up adjacent.
func sortDocs(docs []model.RfcDoc) {
	sort.Slice(docs, func(i, j int) bool {
		if docs[i].ID.Value != docs[j].ID.Value {
			return docs[i].ID.Value < docs[j].ID.Value
		}
		return docs[i].Path < docs[j].Path
	})
}

// duplicateValues returns the set of identifier values claimed by more
// than one document.
func duplicateValues(docs []model.RfcDoc) map[int]bool {
	seen := make(map[int]int)
	for _, doc := range docs {
		seen[doc.ID.Value]++
	}

	dups := make(map[int]bool)
	for value, count := range seen {
		if count > 1 {
			dups[value] = true
		}
	}
	return dups
}

// printDocsJSON outputs the listing as a JSON array.
func printDocsJSON(docs []model.RfcDoc) {
	type docJSON struct {
		ID        int    `json:"id"`
		Padded    string `json:"padded"`
		Path      string `json:"path"`
		Duplicate bool   `json:"duplicate"`
	}

	dups := duplicateValues(docs)

	// Emit [] rather than null for an empty repository.
	out := make([]docJSON, 0, len(docs))
	for _, doc := range docs {
		out = append(out, docJSON{
			ID:        doc.ID.Value,
			Padded:    doc.ID.Padded(),
			Path:      doc.Path,
			Duplicate: dups[doc.ID.Value],
		})
	}

	data, _ := json.MarshalIndent(out, "", "  ")
	fmt.Println(string(data))
}

// printDocsText outputs the listing as a human-readable table.
func printDocsText(docs []model.RfcDoc) {
	if len(docs) == 0 {
		fmt.Println("No RFC documents found.")
		return
	}

	fmt.Println(listHeaderStyle.Render(fmt.Sprintf("%-8s %s", "ID", "PATH")))

	dups := duplicateValues(docs)
	for _, doc := range docs {
		row := fmt.Sprintf("%-8s %s", doc.ID.Padded(), doc.Path)
		if dups[doc.ID.Value] {
			row = duplicateStyle.Render(row + "  (duplicate identifier)")
		}
		fmt.Println(row)
	}
}
