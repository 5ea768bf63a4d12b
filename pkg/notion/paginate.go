package notion

import (
	"context"
	"encoding/json"
)

// MaxPageSize is the largest page the upstream accepts.
const MaxPageSize = 100

// Item tags a decoded listing entry. Partial objects come back unusable and
// are dropped by the paginated readers.
type Item[T any] struct {
	Value  T
	Usable bool
}

type QueryOptions struct {
	Filter   Filter
	Sorts    []Sort
	PageSize int
}

func ParsePage(raw json.RawMessage) Item[Page] {
	var page Page

	if err := json.Unmarshal(raw, &page); err != nil {
		return Item[Page]{}
	}

	return Item[Page]{Value: page, Usable: page.Object == ObjectPage && page.Properties != nil}
}

func ParseBlock(raw json.RawMessage) Item[Block] {
	var block Block

	if err := json.Unmarshal(raw, &block); err != nil {
		return Item[Block]{}
	}

	return Item[Block]{Value: block, Usable: block.Type != ""}
}

type fetchFunc func(ctx context.Context, cursor string) (List, error)

// collect follows next cursors until the listing is exhausted. When stop is
// set, it ends as soon as stop reports true for the gathered items.
func collect[T any](ctx context.Context, fetch fetchFunc, parse func(json.RawMessage) Item[T], stop func([]T) bool) ([]T, error) {
	items := make([]T, 0)
	cursor := ""

	for {
		list, err := fetch(ctx, cursor)
		if err != nil {
			return nil, err
		}

		for _, raw := range list.Results {
			if item := parse(raw); item.Usable {
				items = append(items, item.Value)
			}
		}

		if stop != nil && stop(items) {
			return items, nil
		}

		if !list.HasMore || list.NextCursor == nil || *list.NextCursor == "" {
			return items, nil
		}

		cursor = *list.NextCursor
	}
}

func pageSize(size int) int {
	if size <= 0 || size > MaxPageSize {
		return MaxPageSize
	}

	return size
}

// QueryAll returns every full row of a database matching opts, in upstream order.
func QueryAll(ctx context.Context, api API, databaseID string, opts QueryOptions) ([]Page, error) {
	fetch := func(ctx context.Context, cursor string) (List, error) {
		return api.QueryDatabase(ctx, databaseID, QueryRequest{
			Filter:      opts.Filter,
			Sorts:       opts.Sorts,
			StartCursor: cursor,
			PageSize:    pageSize(opts.PageSize),
		})
	}

	return collect(ctx, fetch, ParsePage, nil)
}

// QueryFirst returns the first full row matching opts, if any.
func QueryFirst(ctx context.Context, api API, databaseID string, opts QueryOptions) (Page, bool, error) {
	fetch := func(ctx context.Context, cursor string) (List, error) {
		return api.QueryDatabase(ctx, databaseID, QueryRequest{
			Filter:      opts.Filter,
			Sorts:       opts.Sorts,
			StartCursor: cursor,
			PageSize:    1,
		})
	}

	pages, err := collect(ctx, fetch, ParsePage, func(items []Page) bool {
		return len(items) > 0
	})

	if err != nil || len(pages) == 0 {
		return Page{}, false, err
	}

	return pages[0], true, nil
}

// ListAllChildren returns every full direct child of a block, in order.
func ListAllChildren(ctx context.Context, api API, blockID string) ([]Block, error) {
	fetch := func(ctx context.Context, cursor string) (List, error) {
		return api.ListBlockChildren(ctx, blockID, cursor, MaxPageSize)
	}

	return collect(ctx, fetch, ParseBlock, nil)
}
