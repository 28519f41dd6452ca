package ident

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mmr-tortoise/rfcs/internal/model"
)

// writeFiles creates empty files with the given relative paths under dir,
// creating parent directories as needed.
func writeFiles(t *testing.T, dir string, paths ...string) {
	t.Helper()
	for _, p := range paths {
		full := filepath.Join(dir, p)
		require.NoError(t, os.MkdirAll(filepath.Dir(full), 0755))
		require.NoError(t, os.WriteFile(full, []byte("content\n"), 0644))
	}
}

// values collects the identifier values from scanned documents.
func values(docs []model.RfcDoc) []int {
	out := make([]int, 0, len(docs))
	for _, d := range docs {
		out = append(out, d.ID.Value)
	}
	return out
}

// TestScan_Basic verifies the canonical mixed repository: files matching
// both the extension filter and the digit-run rule are claimed, and a
// text file without a 3+ digit run is silently ignored.
func TestScan_Basic(t *testing.T) {
	dir := t.TempDir()
	writeFiles(t, dir, "001.md", "rfc_002.org", "readme.txt", "011-caches.rst")

	docs, err := NewDocScanner().Scan(dir)
	require.NoError(t, err)

	assert.ElementsMatch(t, []int{1, 2, 11}, values(docs))
}

// TestScan_ExtensionFilter verifies that files with unrecognized
// extensions never become candidates, no matter how many digits their
// names carry.
func TestScan_ExtensionFilter(t *testing.T) {
	dir := t.TempDir()
	writeFiles(t, dir, "091_migration.sql", "main.go", "004-notes", "005-plan.md")

	docs, err := NewDocScanner().Scan(dir)
	require.NoError(t, err)

	assert.Equal(t, []int{5}, values(docs), "only the .md file should be a candidate")
}

// TestScan_CaseInsensitiveExtension verifies extension matching ignores
// case.
func TestScan_CaseInsensitiveExtension(t *testing.T) {
	dir := t.TempDir()
	writeFiles(t, dir, "007-PLAN.MD")

	docs, err := NewDocScanner().Scan(dir)
	require.NoError(t, err)

	assert.Equal(t, []int{7}, values(docs))
}

// TestScan_Recursive verifies that nested documents are found by
// default, with paths reported relative to the root.
func TestScan_Recursive(t *testing.T) {
	dir := t.TempDir()
	writeFiles(t, dir, "001.md", filepath.Join("accepted", "002-storage.md"))

	docs, err := NewDocScanner().Scan(dir)
	require.NoError(t, err)

	require.Len(t, docs, 2)
	assert.ElementsMatch(t, []int{1, 2}, values(docs))

	paths := []string{docs[0].Path, docs[1].Path}
	assert.Contains(t, paths, filepath.Join("accepted", "002-storage.md"))
}

// TestScan_NonRecursive verifies that disabling recursion restricts the
// scan to the top level.
func TestScan_NonRecursive(t *testing.T) {
	dir := t.TempDir()
	writeFiles(t, dir, "001.md", filepath.Join("accepted", "002-storage.md"))

	scanner := NewDocScanner()
	scanner.Recursive = false

	docs, err := scanner.Scan(dir)
	require.NoError(t, err)

	assert.Equal(t, []int{1}, values(docs), "nested document should be invisible")
}

// TestScan_SkipsGitDir verifies that git's own bookkeeping never
// contributes candidates, even though it is full of digit-heavy names.
func TestScan_SkipsGitDir(t *testing.T) {
	dir := t.TempDir()
	writeFiles(t, dir, "001.md", filepath.Join(".git", "123-internal.md"))

	docs, err := NewDocScanner().Scan(dir)
	require.NoError(t, err)

	assert.Equal(t, []int{1}, values(docs))
}

// TestScan_DuplicatesReported verifies that two files claiming the same
// identifier are both reported — the scanner never deduplicates.
func TestScan_DuplicatesReported(t *testing.T) {
	dir := t.TempDir()
	writeFiles(t, dir, "003-first.md", "003-second.md")

	docs, err := NewDocScanner().Scan(dir)
	require.NoError(t, err)

	assert.Equal(t, []int{3, 3}, values(docs))
}

// TestScan_EmptyDir verifies an empty repository scans cleanly to an
// empty result.
func TestScan_EmptyDir(t *testing.T) {
	docs, err := NewDocScanner().Scan(t.TempDir())
	require.NoError(t, err)
	assert.Empty(t, docs)
}

// TestScan_MissingRoot verifies an unreadable root is a fatal error
// rather than an empty result.
func TestScan_MissingRoot(t *testing.T) {
	_, err := NewDocScanner().Scan(filepath.Join(t.TempDir(), "does-not-exist"))
	assert.Error(t, err)
}

// TestScanBranches verifies branch-name extraction against the canonical
// branch list from the contract: only names with a 3+ digit run claim
// an identifier.
func TestScanBranches(t *testing.T) {
	ids := ScanBranches([]string{"main", "002-other-draft", "feature/x"})

	require.Len(t, ids, 1)
	assert.Equal(t, 2, ids[0].Value)
	assert.Equal(t, model.SourceBranch, ids[0].Source)
}

// TestScanBranches_Empty verifies a nil branch list yields no claims.
func TestScanBranches_Empty(t *testing.T) {
	assert.Empty(t, ScanBranches(nil))
}
