// Package model defines the domain types for the rfcs CLI.
//
// All entities here are transient: an Identifier only exists for the
// duration of a single scan-and-allocate pass, and an RfcDraft is the
// record of one successful create operation. The git repository is the
// single source of truth; nothing in this package is persisted.
package model

import (
	"fmt"
	"strings"
)

// Source records where a claimed identifier was extracted from.
// Both sources feed the same claimed-identifier set; the distinction
// only matters for display and diagnostics.
type Source string

const (
	// SourceFile indicates the identifier was extracted from the name of a
	// document in the repository's working tree.
	SourceFile Source = "file"

	// SourceBranch indicates the identifier was extracted from a local
	// git branch name, i.e. an RFC still in review.
	SourceBranch Source = "branch"
)

// String returns the string representation of Source.
func (s Source) String() string {
	return string(s)
}

// IsValid checks whether the Source value is one of the predefined
// valid sources.
func (s Source) IsValid() bool {
	switch s {
	case SourceFile, SourceBranch:
		return true
	default:
		return false
	}
}

// ParseSource converts a string to a Source.
// Returns an error if the string does not match any valid source.
func ParseSource(s string) (Source, error) {
	source := Source(strings.ToLower(s))
	if !source.IsValid() {
		return "", fmt.Errorf("invalid identifier source: %q (valid: file, branch)", s)
	}
	return source, nil
}

// Identifier is a candidate RFC identifier extracted from a filename or
// branch name.
//
// Value is the integer with leading zeros stripped; comparisons between
// identifiers always use Value. Width is the digit width as it appeared
// in the name (at least 3 in practice, since the extraction grammar
// requires a run of 3+ digits) and is kept for display purposes only:
// "011-caches.rst" and a hypothetical "0011-caches.rst" both claim 11.
type Identifier struct {
	// Value is the numeric identifier, leading zeros stripped.
	Value int `json:"value"`

	// Width is the number of digits in the run the value was parsed from.
	Width int `json:"width"`

	// Source is where the identifier was found (file or branch).
	Source Source `json:"source"`
}

// Padded returns the identifier value zero-padded to the observed width,
// with a floor of 3 digits. Values wider than the padding render at their
// natural width.
func (i Identifier) Padded() string {
	width := i.Width
	if width < 3 {
		width = 3
	}
	return fmt.Sprintf("%0*d", width, i.Value)
}

// String returns a human-readable representation, e.g. "011 (file)".
func (i Identifier) String() string {
	return fmt.Sprintf("%s (%s)", i.Padded(), i.Source)
}

// RfcDoc is a single RFC document discovered in the repository's working
// tree: its identifier and its path relative to the repository root.
//
// The scanner does not deduplicate: two files claiming the same value
// produce two RfcDocs, and resolving that ambiguity is left to the human
// reading the listing.
type RfcDoc struct {
	// ID is the identifier extracted from the file's base name.
	ID Identifier `json:"id"`

	// Path is the document's path relative to the repository root.
	Path string `json:"path"`
}

// RfcDraft is the output of a successful create operation: a newly
// allocated identifier and the branch that now claims it. The branch is
// checked out at the moment the draft is returned, and persists in the
// repository until merged or deleted by an ordinary git workflow.
type RfcDraft struct {
	// ID is the allocated identifier value.
	ID int `json:"id"`

	// Prefix is the zero-padded numeric prefix, e.g. "004".
	Prefix string `json:"prefix"`

	// Branch is the full branch name, "<prefix>-<sanitized-title>".
	Branch string `json:"branch"`
}

// ExitCode defines the CLI process exit codes. These allow scripts to
// programmatically distinguish outcomes, in particular the branch-conflict
// case which a wrapper might want to treat differently from a plain error.
type ExitCode int

const (
	// ExitSuccess indicates the command completed successfully.
	ExitSuccess ExitCode = 0

	// ExitGeneralError indicates an unspecified error occurred.
	ExitGeneralError ExitCode = 1

	// ExitConfigError indicates the configuration is missing or invalid,
	// e.g. no repository path or URL has been configured.
	ExitConfigError ExitCode = 2

	// ExitScanError indicates the repository could not be scanned: the
	// path is unreadable or not a valid git checkout.
	ExitScanError ExitCode = 3

	// ExitGitError indicates a git operation failed.
	ExitGitError ExitCode = 4

	// ExitBranchConflict indicates git refused to create the draft branch
	// because a branch with that name already exists.
	ExitBranchConflict ExitCode = 5

	// ExitInvalidTitle indicates the supplied title produced an empty
	// branch-name fragment after sanitization.
	ExitInvalidTitle ExitCode = 6
)

// CLIError is a custom error type that carries an exit code.
// This allows the CLI layer to translate domain errors into
// appropriate process exit codes.
type CLIError struct {
	// Code is the exit code to return to the OS.
	Code ExitCode

	// Message is the human-readable error description.
	Message string

	// Err is the underlying error, if any.
	Err error
}

// Error satisfies the error interface. It returns the human-readable
// error message, optionally including the underlying error.
func (e *CLIError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: %v", e.Message, e.Err)
	}
	return e.Message
}

// Unwrap returns the underlying error for use with errors.Is/errors.As.
func (e *CLIError) Unwrap() error {
	return e.Err
}

// NewCLIError creates a new CLIError with the given exit code and message.
func NewCLIError(code ExitCode, message string) *CLIError {
	return &CLIError{Code: code, Message: message}
}

// WrapCLIError creates a new CLIError that wraps an existing error.
func WrapCLIError(code ExitCode, message string, err error) *CLIError {
	return &CLIError{Code: code, Message: message, Err: err}
}
