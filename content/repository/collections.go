package repository

import (
	"context"
	"fmt"
	"log/slog"
	"strings"

	"github.com/paragon0107/notive/content"
	"github.com/paragon0107/notive/pkg/cache"
	"github.com/paragon0107/notive/pkg/notion"
)

const collectionsKey = "notion:collections"

// Collection titles expected under the root page, in report order.
const (
	TitlePosts    = "Posts"
	TitleProjects = "Projects"
	TitleContacts = "Contacts"
	TitleHome     = "Home"
)

var requiredTitles = []string{TitlePosts, TitleProjects, TitleContacts, TitleHome}

type Collections struct {
	Source *content.Source
}

// Resolve returns the ids of the four collections, all or nothing.
func (c Collections) Resolve(ctx context.Context) (content.CollectionMap, error) {
	return cache.GetOrSet(ctx, c.Source.Cache, collectionsKey, c.Source.TTL, c.discover)
}

func normalizeTitle(value string) string {
	return strings.ToLower(strings.TrimSpace(value))
}

func (c Collections) discover(ctx context.Context) (content.CollectionMap, error) {
	children, err := notion.ListAllChildren(ctx, c.Source.API, c.Source.RootID)

	if err != nil {
		return content.CollectionMap{}, fmt.Errorf("list root page children: %w", err)
	}

	byTitle := make(map[string]string)
	var available []string

	for _, block := range children {
		if block.Type != notion.TypeChildDatabase || block.ChildDatabase == nil {
			continue
		}

		title := normalizeTitle(block.ChildDatabase.Title)
		if _, seen := byTitle[title]; !seen {
			available = append(available, title)
		}

		byTitle[title] = block.ID
	}

	var missing []string
	resolved := make(map[string]string, len(requiredTitles))

	for _, title := range requiredTitles {
		id, ok := byTitle[normalizeTitle(title)]

		if !ok {
			missing = append(missing, title)
			continue
		}

		resolved[title] = id
	}

	if len(missing) > 0 {
		return content.CollectionMap{}, &content.MissingCollectionsError{Missing: missing, Available: available}
	}

	slog.Debug("collections resolved", "root", c.Source.RootID, "count", len(resolved))

	return content.CollectionMap{
		PostsID:    resolved[TitlePosts],
		ProjectsID: resolved[TitleProjects],
		ContactsID: resolved[TitleContacts],
		HomeID:     resolved[TitleHome],
	}, nil
}
