package repository

import (
	"context"
	"fmt"
	"strings"

	"github.com/paragon0107/notive/content"
	"github.com/paragon0107/notive/pkg/cache"
	"github.com/paragon0107/notive/pkg/notion"
)

const postsKey = "notion:posts"

type Posts struct {
	Source  *content.Source
	Schemas Schemas
	Series  Series
}

// Published lists published posts, newest first.
func (p Posts) Published(ctx context.Context) ([]content.Post, error) {
	return cache.GetOrSet(ctx, p.Source.Cache, postsKey, p.Source.TTL, func(ctx context.Context) ([]content.Post, error) {
		id, _, err := p.Schemas.Ensure(ctx, KindPosts)
		if err != nil {
			return nil, err
		}

		index, err := p.Series.Index(ctx)
		if err != nil {
			return nil, err
		}

		pages, err := notion.QueryAll(ctx, p.Source.API, id, notion.QueryOptions{
			Filter: notion.CheckboxEquals("Published", true),
			Sorts:  []notion.Sort{{Property: "Date", Direction: "descending"}},
		})

		if err != nil {
			return nil, fmt.Errorf("query posts: %w", err)
		}

		posts := make([]content.Post, 0, len(pages))
		for _, page := range pages {
			posts = append(posts, MapPost(page, index.ByID))
		}

		return posts, nil
	})
}

// BySlug looks a published post up by its Slug property, then falls back to
// the published list so derived and id-suffixed slugs resolve too.
func (p Posts) BySlug(ctx context.Context, value string) (content.Post, error) {
	key := strings.ToLower(strings.TrimSpace(value))

	if key == "" {
		return content.Post{}, content.ErrPostNotFound
	}

	return cache.GetOrSet(ctx, p.Source.Cache, "notion:post:"+key, p.Source.TTL, func(ctx context.Context) (content.Post, error) {
		id, _, err := p.Schemas.Ensure(ctx, KindPosts)
		if err != nil {
			return content.Post{}, err
		}

		index, err := p.Series.Index(ctx)
		if err != nil {
			return content.Post{}, err
		}

		page, ok, err := notion.QueryFirst(ctx, p.Source.API, id, notion.QueryOptions{
			Filter: notion.Filter{"and": []notion.Filter{
				notion.RichTextEquals("Slug", key),
				notion.CheckboxEquals("Published", true),
			}},
		})

		if err != nil {
			return content.Post{}, fmt.Errorf("query post %q: %w", key, err)
		}

		if ok {
			return MapPost(page, index.ByID), nil
		}

		posts, err := p.Published(ctx)
		if err != nil {
			return content.Post{}, err
		}

		if post, found := content.FindBySlug(posts, key); found {
			return post, nil
		}

		return content.Post{}, content.ErrPostNotFound
	})
}
