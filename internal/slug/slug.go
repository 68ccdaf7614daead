// Package slug derives URL-safe tenant identifiers from display names.
package slug

import (
	"fmt"
	"strings"
	"time"

	"golang.org/x/text/unicode/norm"
)

// MaxLength bounds the base slug before any uniqueness suffix is appended.
const MaxLength = 150

// Make normalizes a display name into a URL-safe slug: lower-case, accents
// folded to their base letter, apostrophes removed, every run of other
// non-alphanumerics collapsed to a single hyphen, leading/trailing hyphens
// trimmed, truncated to MaxLength. An input that normalizes to nothing
// yields "tenant-<unixMillis>".
func Make(name string) string {
	s := strings.ToLower(strings.TrimSpace(name))

	// Decompose and drop combining diacritical marks (U+0300–U+036F) so
	// accented characters fold to their base letter.
	s = strings.Map(func(r rune) rune {
		if r >= 0x0300 && r <= 0x036f {
			return -1
		}
		return r
	}, norm.NFD.String(s))

	var b strings.Builder
	b.Grow(len(s))
	pendingHyphen := false
	for _, r := range s {
		switch {
		case (r >= 'a' && r <= 'z') || (r >= '0' && r <= '9'):
			if pendingHyphen && b.Len() > 0 {
				b.WriteByte('-')
			}
			pendingHyphen = false
			b.WriteRune(r)
		case r == '\'' || r == '’':
			// Apostrophes join their word ("Ștefan's" -> "stefans")
			// instead of splitting it.
		default:
			pendingHyphen = true
		}
	}

	out := b.String()
	if len(out) > MaxLength {
		out = strings.TrimRight(out[:MaxLength], "-")
	}
	if out == "" {
		return fmt.Sprintf("tenant-%d", time.Now().UnixMilli())
	}
	return out
}

// WithSuffix appends the n-th uniqueness suffix to a base slug.
func WithSuffix(base string, n int) string {
	return fmt.Sprintf("%s-%d", base, n)
}
