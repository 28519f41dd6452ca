// Package ident implements RFC identifier extraction, scanning and
// allocation for the rfcs CLI.
//
// The core rule is the numeric-run grammar: any run of 3 or more
// consecutive decimal digits in a filename or branch name claims that
// integer as an RFC identifier. One pure function (Extract) implements
// the grammar for both sources, so a file named "011-caches.rst" and a
// branch named "011-caches" always agree on what they claim.
//
// The Allocator merges the two claimed sets and returns the smallest
// positive integer not present — it fills gaps rather than appending
// after the maximum, so a stray legacy identifier like 9999 does not
// push new RFCs past it.
package ident
