package gitrepo

import (
	"errors"
	"fmt"
	"os/exec"
	"strings"

	"github.com/mmr-tortoise/rfcs/internal/model"
)

// ErrBranchExists is the sentinel wrapped into the error returned by
// CreateAndCheckout when git refuses to create a branch because the name
// is already taken. Callers use errors.Is to distinguish this conflict
// from other git failures.
var ErrBranchExists = errors.New("branch already exists")

// Repo is a handle to a local git working tree.
//
// It is stateless beyond the path — every method shells out to git
// against the current on-disk state, so a Repo can be held across an
// operation without going stale. The caller owns the checkout for the
// duration of an operation; nothing here persists its location.
type Repo struct {
	path string
}

// Open returns a Repo handle for the working tree at path.
// It does not verify the path; use IsRepo for that.
func Open(path string) *Repo {
	return &Repo{path: path}
}

// Path returns the working tree path this handle operates on.
func (r *Repo) Path() string {
	return r.path
}

// IsRepo reports whether the path is inside a git repository.
// Uses `git rev-parse --git-dir`, which exits non-zero outside a repo.
func (r *Repo) IsRepo() bool {
	_, err := runGit(r.path, "rev-parse", "--git-dir")
	return err == nil
}

// ListBranches returns the short names of all local branches.
//
// Uses `git branch --list --format=%(refname:short)` so the output is one
// plain name per line with no "* " current-branch marker to strip.
// Remote-tracking branches are deliberately excluded.
func (r *Repo) ListBranches() ([]string, error) {
	output, err := runGit(r.path, "branch", "--list", "--format=%(refname:short)")
	if err != nil {
		return nil, err
	}

	var branches []string
	for _, line := range strings.Split(output, "\n") {
		line = strings.TrimSpace(line)
		if line != "" {
			branches = append(branches, line)
		}
	}
	return branches, nil
}

// CurrentBranch returns the name of the currently checked-out branch.
//
// Uses `git rev-parse --abbrev-ref HEAD` which returns the short branch
// name. Returns "HEAD" if the repository is in a detached HEAD state.
func (r *Repo) CurrentBranch() (string, error) {
	output, err := runGit(r.path, "rev-parse", "--abbrev-ref", "HEAD")
	if err != nil {
		return "", err
	}
	return strings.TrimSpace(output), nil
}

// BranchExists checks whether a local branch with the given name exists.
//
// Uses `git rev-parse --verify refs/heads/<name>` which exits with code 0
// if the ref exists. The fully qualified form avoids matching tags or
// remote-tracking refs that happen to share the name.
func (r *Repo) BranchExists(name string) bool {
	_, err := runGit(r.path, "rev-parse", "--verify", "refs/heads/"+name)
	return err == nil
}

// CreateAndCheckout creates a branch with the given name rooted at the
// current HEAD and checks it out, exactly like `git checkout -b <name>`.
//
// This is the serialization point for the whole tool: git refuses
// atomically if the branch already exists, and that refusal is surfaced
// as a model.CLIError with ExitBranchConflict wrapping ErrBranchExists.
// The workflow never retries with a different identifier — a name
// collision here means two contributors picked the same number, which is
// a coordination problem the human must see. On failure the repository
// is left unchanged.
func (r *Repo) CreateAndCheckout(name string) error {
	_, err := runGit(r.path, "checkout", "-b", name)
	if err == nil {
		return nil
	}

	// Classify the failure. The existence check runs after the attempt,
	// so git's own atomicity already decided the race.
	if r.BranchExists(name) {
		return model.WrapCLIError(model.ExitBranchConflict,
			fmt.Sprintf("branch %q already exists", name),
			fmt.Errorf("%w: %v", ErrBranchExists, err))
	}
	return err
}

// Clone clones the repository at url into dest.
// Used once by repository resolution when only git.url is configured.
func Clone(url, dest string) error {
	// No -C here: dest may not exist yet, and clone takes it as an argument.
	// #nosec G204 — the URL comes from the user's own configuration
	cmd := exec.Command("git", "clone", url, dest)

	var stdout, stderr strings.Builder
	cmd.Stdout = &stdout
	cmd.Stderr = &stderr

	if err := cmd.Run(); err != nil {
		stderrStr := strings.TrimSpace(stderr.String())
		message := fmt.Sprintf("git clone %s failed", url)
		if stderrStr != "" {
			message = fmt.Sprintf("%s: %s", message, stderrStr)
		}
		return model.WrapCLIError(model.ExitGitError, message, err)
	}
	return nil
}

// runGit executes a git command with the given arguments against the
// specified working tree.
//
// It captures stdout and stderr separately. On success it returns stdout.
// On failure it returns a model.CLIError with ExitGitError, folding the
// stderr output into the message for diagnostics.
//
// The repoPath is passed via git's -C flag, which makes git change to
// that directory before doing anything else; this avoids touching the
// process-wide working directory.
func runGit(repoPath string, args ...string) (string, error) {
	fullArgs := append([]string{"-C", repoPath}, args...)

	// #nosec G204 — args are constructed internally, not from user input
	cmd := exec.Command("git", fullArgs...)

	var stdout, stderr strings.Builder
	cmd.Stdout = &stdout
	cmd.Stderr = &stderr

	err := cmd.Run()
	if err != nil {
		stderrStr := strings.TrimSpace(stderr.String())
		message := fmt.Sprintf("git %s failed", strings.Join(args, " "))
		if stderrStr != "" {
			message = fmt.Sprintf("%s: %s", message, stderrStr)
		}
		return "", model.WrapCLIError(model.ExitGitError, message, err)
	}

	return stdout.String(), nil
}
