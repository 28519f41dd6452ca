package rfc

import (
	"fmt"

	"github.com/mmr-tortoise/rfcs/internal/gitrepo"
	"github.com/mmr-tortoise/rfcs/internal/ident"
	"github.com/mmr-tortoise/rfcs/internal/model"
)

// Phase is the lifecycle state of a creation workflow.
type Phase string

const (
	// PhaseIdle is the initial state before a create request arrives.
	PhaseIdle Phase = "idle"

	// PhaseAllocating means the scanners are producing a fresh claimed
	// set and the allocator is choosing the next identifier.
	PhaseAllocating Phase = "allocating"

	// PhaseBranching means the branch name has been synthesized and the
	// git layer is being asked to create and check it out.
	PhaseBranching Phase = "branching"

	// PhaseDone is the terminal success state: the branch exists and is
	// the current branch. Nothing can fail past this point.
	PhaseDone Phase = "done"

	// PhaseFailed is the terminal failure state. The repository is
	// unchanged (git guarantees a refused branch create mutates nothing).
	PhaseFailed Phase = "failed"
)

// String returns the string representation of Phase.
func (p Phase) String() string {
	return string(p)
}

// Checkout is the slice of the git layer the workflow depends on: a
// working tree that can report its path and local branches, and create
// a branch atomically. *gitrepo.Repo is the production implementation;
// the interface exists so tests can present a stale branch list and
// exercise the scan-vs-create race deterministically.
type Checkout interface {
	Path() string
	ListBranches() ([]string, error)
	CreateAndCheckout(name string) error
}

// Workflow turns a human-supplied title into a checked-out draft branch.
//
// A Workflow instance tracks one create request from idle to done or
// failed. It is not reused: each CLI invocation constructs a fresh one,
// which also guarantees the claimed-identifier snapshot is taken fresh.
type Workflow struct {
	docs  *ident.DocScanner
	phase Phase
}

// NewWorkflow creates a Workflow that scans documents with the given
// scanner. The scanner is injected so tests (and a future configurable
// extension set) control the document side of the snapshot.
func NewWorkflow(docs *ident.DocScanner) *Workflow {
	return &Workflow{
		docs:  docs,
		phase: PhaseIdle,
	}
}

// Phase returns the workflow's current lifecycle state.
func (w *Workflow) Phase() Phase {
	return w.phase
}

// Create runs the full workflow against the given checkout: sanitize the
// title, take a fresh snapshot of claimed identifiers from both the file
// tree and the local branch list, allocate the lowest free identifier,
// and ask git to create and check out "<padded-id>-<sanitized-title>".
//
// Every failure is detected at or before the git mutation boundary.
// In particular an unusable title fails before any scan or git call, an
// unreadable checkout fails before allocation, and a branch-name
// collision (a race lost since the scan) comes back as a CLIError with
// ExitBranchConflict wrapping gitrepo.ErrBranchExists, leaving the
// checkout on its previous branch.
func (w *Workflow) Create(repo Checkout, title string) (*model.RfcDraft, error) {
	// Title problems must surface before any git mutation, so sanitize
	// before touching the repository at all.
	fragment, err := gitrepo.SanitizeTitle(title)
	if err != nil {
		return nil, w.fail(err)
	}

	w.phase = PhaseAllocating

	docs, err := w.docs.Scan(repo.Path())
	if err != nil {
		return nil, w.fail(model.WrapCLIError(model.ExitScanError,
			"failed to scan repository documents", err))
	}

	branches, err := repo.ListBranches()
	if err != nil {
		return nil, w.fail(model.WrapCLIError(model.ExitScanError,
			"failed to list local branches", err))
	}

	fileIDs := make([]model.Identifier, 0, len(docs))
	for _, doc := range docs {
		fileIDs = append(fileIDs, doc.ID)
	}
	claimed := ident.ClaimedSet(fileIDs, ident.ScanBranches(branches))

	next := ident.Allocate(claimed)
	prefix := ident.FormatIdentifier(next)

	w.phase = PhaseBranching
	branch := fmt.Sprintf("%s-%s", prefix, fragment)

	if err := repo.CreateAndCheckout(branch); err != nil {
		return nil, w.fail(err)
	}

	w.phase = PhaseDone
	return &model.RfcDraft{
		ID:     next,
		Prefix: prefix,
		Branch: branch,
	}, nil
}

// fail transitions to the terminal failure state and passes the error
// through unchanged so the CLI layer sees the original exit code.
func (w *Workflow) fail(err error) error {
	w.phase = PhaseFailed
	return err
}
