package ident

import (
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"

	"github.com/mmr-tortoise/rfcs/internal/model"
)

// documentExtensions is the fixed set of file extensions recognized as
// RFC document candidates. A file must match both this filter and the
// numeric-run grammar to be counted; everything else in the repository
// (READMEs, configs, source files) is silently ignored.
var documentExtensions = map[string]bool{
	"txt":      true,
	"md":       true,
	"markdown": true,
	"rst":      true,
	"adoc":     true,
	"org":      true,
}

// DocScanner discovers RFC documents in a repository working tree.
//
// The struct is stateless between scans — every Scan call walks the tree
// fresh, because the working tree can change between invocations (another
// contributor's merge landing, for example) and a stale claimed set would
// defeat the allocator's snapshot guarantee.
type DocScanner struct {
	// Recursive controls whether subdirectories are descended into.
	// The default (true) matches repositories that group RFCs into
	// subdirectories; flat top-level repositories can disable it via
	// the scan.recursive configuration key. The .git directory is
	// always skipped.
	Recursive bool
}

// NewDocScanner creates a DocScanner with recursive scanning enabled.
func NewDocScanner() *DocScanner {
	return &DocScanner{Recursive: true}
}

// Scan walks the working tree rooted at root and returns every document
// that matches both the extension filter and the numeric-run grammar.
//
// Paths in the result are relative to root. Duplicate identifier values
// from distinct files are all reported — the scanner never deduplicates,
// since picking a winner would hide exactly the ambiguity a human needs
// to see in the listing.
//
// An unreadable root is a fatal error (the caller cannot distinguish an
// empty repository from a missing one otherwise). Errors on individual
// entries during the walk skip that entry and continue.
func (s *DocScanner) Scan(root string) ([]model.RfcDoc, error) {
	if _, err := os.Stat(root); err != nil {
		return nil, fmt.Errorf("repository path %s is not readable: %w", root, err)
	}

	var docs []model.RfcDoc

	err := filepath.WalkDir(root, func(path string, d fs.DirEntry, walkErr error) error {
		if walkErr != nil {
			if path == root {
				return walkErr
			}
			// A single unreadable entry should not abort the whole scan.
			return nil
		}

		if d.IsDir() {
			if path == root {
				return nil
			}
			// Never descend into git's own bookkeeping; branch state is
			// the branch scanner's job.
			if d.Name() == ".git" {
				return fs.SkipDir
			}
			if !s.Recursive {
				return fs.SkipDir
			}
			return nil
		}

		if !isDocument(d.Name()) {
			return nil
		}

		id, ok := Extract(d.Name(), model.SourceFile)
		if !ok {
			return nil
		}

		rel, relErr := filepath.Rel(root, path)
		if relErr != nil {
			rel = path
		}

		docs = append(docs, model.RfcDoc{ID: id, Path: rel})
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("failed to scan repository at %s: %w", root, err)
	}

	return docs, nil
}

// ScanBranches applies the numeric-run grammar to a list of local branch
// names and returns the identifiers they claim.
//
// This is a pure function over plain strings: the git layer supplies the
// branch names, so the grammar here stays byte-for-byte identical to the
// one used for filenames. Branches without a 3+ digit run ("main",
// "feature/x") claim nothing and are skipped.
func ScanBranches(names []string) []model.Identifier {
	var ids []model.Identifier
	for _, name := range names {
		if id, ok := Extract(name, model.SourceBranch); ok {
			ids = append(ids, id)
		}
	}
	return ids
}

// isDocument reports whether the filename carries one of the recognized
// document extensions. The comparison is case-insensitive ("RFC.MD" is
// still a document).
func isDocument(name string) bool {
	ext := strings.TrimPrefix(filepath.Ext(name), ".")
	return documentExtensions[strings.ToLower(ext)]
}
