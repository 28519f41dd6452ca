package gitrepo

import (
	"errors"
	"fmt"
	"strings"
	"unicode"

	"github.com/mmr-tortoise/rfcs/internal/model"
)

// ErrEmptyTitle is the sentinel wrapped into the error returned by
// SanitizeTitle when nothing branch-safe is left after stripping.
var ErrEmptyTitle = errors.New("title is empty after sanitization")

// SanitizeTitle converts a free-text RFC title into a branch-name-safe
// fragment.
//
// Whitespace runs become single hyphens; letters, digits, hyphens and
// underscores pass through unchanged; everything else (punctuation, git
// ref metacharacters like ~ ^ : ? * [ \) is dropped. Leading and
// trailing hyphens and dots are trimmed because git rejects refs that
// begin with "-" or end with ".". Case is preserved: "New Thing"
// sanitizes to "New-Thing".
//
// A title that sanitizes to nothing (e.g. "???") is rejected with a
// model.CLIError carrying ExitInvalidTitle, before any git mutation can
// occur.
func SanitizeTitle(title string) (string, error) {
	var b strings.Builder
	lastHyphen := false

	for _, r := range title {
		switch {
		case unicode.IsSpace(r):
			if !lastHyphen && b.Len() > 0 {
				b.WriteRune('-')
				lastHyphen = true
			}
		case unicode.IsLetter(r) || unicode.IsDigit(r) || r == '_':
			b.WriteRune(r)
			lastHyphen = false
		case r == '-':
			if !lastHyphen && b.Len() > 0 {
				b.WriteRune('-')
				lastHyphen = true
			}
		default:
			// Dropped. This covers the original set (, . ? !) plus every
			// character git's ref-name rules forbid.
		}
	}

	name := strings.Trim(b.String(), "-.")
	if name == "" {
		return "", model.WrapCLIError(model.ExitInvalidTitle,
			fmt.Sprintf("cannot derive a branch name from title %q", title), ErrEmptyTitle)
	}
	return name, nil
}
