// Package gitrepo provides the git integration layer for the rfcs CLI.
//
// This package wraps Git CLI commands (via os/exec) to list local
// branches, inspect the current checkout, clone repositories, and create
// draft branches.
//
// Design decisions:
//   - We shell out to `git` rather than using a Go Git library because
//     branch creation must behave exactly like the git the operator uses
//     by hand — it is the one atomic arbiter the tool relies on when two
//     contributors race for the same RFC number.
//   - Only local branches are ever listed. Remote-tracking branches that
//     have not been fetched are invisible to the scan; the consistency
//     guarantee is scoped to what is locally known at invocation time.
//   - All errors from git commands are wrapped in model.CLIError with
//     ExitGitError (or ExitBranchConflict for a refused branch create)
//     to enable proper CLI exit code handling.
package gitrepo
