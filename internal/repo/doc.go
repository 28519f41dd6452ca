// Package repo resolves the local RFC repository checkout the tool
// operates against.
//
// Resolution order: an explicitly configured local path (git.repo) wins;
// otherwise a configured clone URL (git.url) is cloned once into the
// config directory and reused on subsequent runs; otherwise resolution
// fails with instructions for configuring the tool. Everything past this
// point receives the resolved path as a plain parameter.
package repo
