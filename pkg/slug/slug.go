package slug

import (
	"strings"
	"unicode"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"
	"golang.org/x/text/unicode/norm"
)

const suffixLength = 8

// Make normalises free text into a URL slug. It is idempotent: feeding a slug
// back in returns it unchanged.
func Make(value string) string {
	caser := cases.Lower(language.Und)
	normalized := caser.String(strings.TrimSpace(norm.NFKC.String(value)))

	var b strings.Builder
	b.Grow(len(normalized))

	inSeparator := false

	for _, r := range normalized {
		switch {
		case unicode.IsLetter(r), unicode.IsNumber(r):
			b.WriteRune(r)
			inSeparator = false
		case r == '-', unicode.IsSpace(r):
			if !inSeparator {
				b.WriteRune('-')
				inSeparator = true
			}
		}
	}

	return b.String()
}

// IDSuffix returns the last eight characters of a dash-less document id.
func IDSuffix(id string) string {
	compact := strings.ToLower(strings.ReplaceAll(strings.TrimSpace(id), "-", ""))

	if len(compact) <= suffixLength {
		return compact
	}

	return compact[len(compact)-suffixLength:]
}

// FromID builds a stable fallback slug such as "post-1a2b3c4d".
func FromID(prefix, id string) string {
	suffix := IDSuffix(id)

	if suffix == "" {
		return prefix
	}

	return prefix + "-" + suffix
}

// WithIDSuffix appends the id suffix to a title slug, falling back to
// FromID(prefix, id) when the title produces nothing.
func WithIDSuffix(title, prefix, id string) string {
	base := Make(title)
	suffix := IDSuffix(id)

	switch {
	case base == "":
		return FromID(prefix, id)
	case suffix == "":
		return base
	default:
		return base + "-" + suffix
	}
}

// HasIDSuffix reports whether the slug ends with the suffix of id.
func HasIDSuffix(value, id string) bool {
	suffix := IDSuffix(id)
	if suffix == "" {
		return false
	}

	return strings.HasSuffix(strings.ToLower(strings.TrimSpace(value)), "-"+suffix)
}
