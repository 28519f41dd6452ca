// Package rfc implements the RFC creation workflow for the rfcs CLI.
//
// The workflow is a short state machine:
//
//	idle → allocating → branching → done
//
// with failure possible at every transition. Allocating takes a fresh
// snapshot of the claimed-identifier set (files plus local branches) on
// every invocation; branching hands the chosen name to git, whose atomic
// branch creation is the final arbiter when two contributors race for
// the same number. Once branching succeeds the workflow cannot fail —
// done is terminal.
//
// A refused branch creation is surfaced verbatim and never retried with
// a bumped identifier: masking a true naming collision would hide a
// coordination problem between contributors.
package rfc
