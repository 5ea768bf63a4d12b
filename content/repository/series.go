package repository

import (
	"context"
	"fmt"

	"github.com/paragon0107/notive/content"
	"github.com/paragon0107/notive/pkg/cache"
	"github.com/paragon0107/notive/pkg/notion"
)

// SeriesIndex is the ordered series catalogue and its lookup by page id.
type SeriesIndex struct {
	List []content.Series
	ByID map[string]content.Series
}

type Series struct {
	Source  *content.Source
	Schemas Schemas
}

// Index loads the collection targeted by the Posts "Series" relation. Posts
// without such a relation yield an empty index.
func (s Series) Index(ctx context.Context) (SeriesIndex, error) {
	_, posts, err := s.Schemas.Ensure(ctx, KindPosts)
	if err != nil {
		return SeriesIndex{}, err
	}

	prop, ok := posts.Properties["Series"]
	if !ok || prop.Type != notion.PropRelation || prop.Relation == nil || prop.Relation.DatabaseID == "" {
		return SeriesIndex{ByID: map[string]content.Series{}}, nil
	}

	id := prop.Relation.DatabaseID

	return cache.GetOrSet(ctx, s.Source.Cache, "notion:series:"+id, s.Source.TTL, func(ctx context.Context) (SeriesIndex, error) {
		pages, err := notion.QueryAll(ctx, s.Source.API, id, notion.QueryOptions{})
		if err != nil {
			return SeriesIndex{}, fmt.Errorf("query series %s: %w", id, err)
		}

		list := make([]content.Series, 0, len(pages))
		for i, page := range pages {
			list = append(list, MapSeriesPage(page, i))
		}

		list = content.SortByOrder(list)

		byID := make(map[string]content.Series, len(list))
		for _, item := range list {
			byID[item.ID] = item
		}

		return SeriesIndex{List: list, ByID: byID}, nil
	})
}

// WithPosts returns the series list with post ids filled from posts, in post order.
func WithPosts(series []content.Series, posts []content.Post) []content.Series {
	out := make([]content.Series, 0, len(series))

	for _, s := range series {
		s.PostIDs = []string{}

		for _, post := range posts {
			for _, ref := range post.Series {
				if ref.ID == s.ID {
					s.PostIDs = append(s.PostIDs, post.ID)
					break
				}
			}
		}

		out = append(out, s)
	}

	return out
}
