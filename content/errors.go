package content

import (
	"errors"
	"fmt"
	"strings"
)

var ErrPostNotFound = errors.New("post not found")

// MissingCollectionsError reports required collections absent from the root page.
type MissingCollectionsError struct {
	Missing   []string
	Available []string
}

func (e *MissingCollectionsError) Error() string {
	available := "none"

	if len(e.Available) > 0 {
		quoted := make([]string, 0, len(e.Available))
		for _, title := range e.Available {
			quoted = append(quoted, fmt.Sprintf("%q", title))
		}

		available = strings.Join(quoted, ", ")
	}

	return fmt.Sprintf(
		"Missing Notion databases: %s. Available child databases: %s.",
		strings.Join(e.Missing, ", "),
		available,
	)
}

// SchemaMismatchError lists every violation found in one collection schema.
type SchemaMismatchError struct {
	Collection string
	Missing    []string
	Mismatched []string
}

func (e *SchemaMismatchError) Error() string {
	var segments []string

	if len(e.Missing) > 0 {
		segments = append(segments, "missing: "+strings.Join(e.Missing, ", "))
	}

	if len(e.Mismatched) > 0 {
		segments = append(segments, "type mismatch: "+strings.Join(e.Mismatched, ", "))
	}

	return fmt.Sprintf("Notion database schema mismatch for %q: %s.", e.Collection, strings.Join(segments, "; "))
}
