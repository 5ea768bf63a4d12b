package repository

import (
	"context"
	"fmt"

	"github.com/paragon0107/notive/content"
	"github.com/paragon0107/notive/content/schema"
	"github.com/paragon0107/notive/pkg/cache"
	"github.com/paragon0107/notive/pkg/notion"
)

type Kind int

const (
	KindPosts Kind = iota
	KindProjects
	KindContacts
	KindHome
)

func (k Kind) String() string {
	switch k {
	case KindPosts:
		return TitlePosts
	case KindProjects:
		return TitleProjects
	case KindContacts:
		return TitleContacts
	case KindHome:
		return TitleHome
	default:
		return fmt.Sprintf("Kind(%d)", int(k))
	}
}

func (k Kind) expected() schema.Expected {
	switch k {
	case KindPosts:
		return schema.Posts
	case KindProjects:
		return schema.Projects
	case KindContacts:
		return schema.Contacts
	default:
		return schema.Home
	}
}

func (k Kind) id(m content.CollectionMap) string {
	switch k {
	case KindPosts:
		return m.PostsID
	case KindProjects:
		return m.ProjectsID
	case KindContacts:
		return m.ContactsID
	default:
		return m.HomeID
	}
}

type Schemas struct {
	Source      *content.Source
	Collections Collections
}

// Database retrieves a collection definition through the cache.
func (s Schemas) Database(ctx context.Context, id string) (notion.Database, error) {
	return cache.GetOrSet(ctx, s.Source.Cache, "notion:database:"+id, s.Source.TTL, func(ctx context.Context) (notion.Database, error) {
		db, err := s.Source.API.RetrieveDatabase(ctx, id)

		if err != nil {
			return notion.Database{}, fmt.Errorf("retrieve database %s: %w", id, err)
		}

		return db, nil
	})
}

// Ensure resolves the collection of kind and validates its schema before
// any of its rows are read.
func (s Schemas) Ensure(ctx context.Context, kind Kind) (string, notion.Database, error) {
	collections, err := s.Collections.Resolve(ctx)
	if err != nil {
		return "", notion.Database{}, err
	}

	id := kind.id(collections)

	db, err := s.Database(ctx, id)
	if err != nil {
		return "", notion.Database{}, err
	}

	if err := schema.Assert(db, kind.expected()); err != nil {
		return "", notion.Database{}, err
	}

	return id, db, nil
}
