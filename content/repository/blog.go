package repository

import (
	"context"
	"fmt"
	"strings"

	"github.com/paragon0107/notive/content"
	"github.com/paragon0107/notive/pkg/blocks"
	"github.com/paragon0107/notive/pkg/cache"
	"github.com/paragon0107/notive/pkg/markdown"
	"golang.org/x/sync/errgroup"
)

const bootstrapKey = "api:blog:bootstrap"

// Blog assembles the route payloads from the individual repositories.
type Blog struct {
	Source      *content.Source
	Collections Collections
	Schemas     Schemas
	Posts       Posts
	Series      Series
	Categories  Categories
	Home        Home
	Renderer    *markdown.Renderer
}

func NewBlog(source *content.Source) *Blog {
	collections := Collections{Source: source}
	schemas := Schemas{Source: source, Collections: collections}
	series := Series{Source: source, Schemas: schemas}
	categories := Categories{Schemas: schemas}

	return &Blog{
		Source:      source,
		Collections: collections,
		Schemas:     schemas,
		Posts:       Posts{Source: source, Schemas: schemas, Series: series},
		Series:      series,
		Categories:  categories,
		Home:        Home{Source: source, Schemas: schemas, Categories: categories},
		Renderer:    markdown.NewRenderer(),
	}
}

func PostDetailKey(slug string) string {
	return "api:blog:post:" + strings.ToLower(strings.TrimSpace(slug))
}

// Bootstrap loads the collection map, the home configuration and every
// published post concurrently.
func (b *Blog) Bootstrap(ctx context.Context) (content.Bootstrap, error) {
	return cache.GetOrSet(ctx, b.Source.Cache, bootstrapKey, b.Source.TTL, func(ctx context.Context) (content.Bootstrap, error) {
		var out content.Bootstrap
		var posts []content.Post

		group, gctx := errgroup.WithContext(ctx)

		group.Go(func() error {
			var err error
			out.DatabaseMap, err = b.Collections.Resolve(gctx)
			return err
		})

		group.Go(func() error {
			var err error
			posts, err = b.Posts.Published(gctx)
			return err
		})

		group.Go(func() error {
			var err error
			out.Home, err = b.Home.Config(gctx)
			return err
		})

		if err := group.Wait(); err != nil {
			return content.Bootstrap{}, err
		}

		out.Posts = content.Summarize(posts)

		return out, nil
	})
}

// PostDetail loads one post with its hydrated body, rendered HTML and
// navigation. A missing post yields content.ErrPostNotFound.
func (b *Blog) PostDetail(ctx context.Context, slug string) (content.PostDetail, error) {
	return cache.GetOrSet(ctx, b.Source.Cache, PostDetailKey(slug), b.Source.TTL, func(ctx context.Context) (content.PostDetail, error) {
		var out content.PostDetail
		var posts []content.Post

		group, gctx := errgroup.WithContext(ctx)

		group.Go(func() error {
			var err error
			out.DatabaseMap, err = b.Collections.Resolve(gctx)
			return err
		})

		group.Go(func() error {
			var err error
			posts, err = b.Posts.Published(gctx)
			return err
		})

		group.Go(func() error {
			var err error
			out.Post, err = b.Posts.BySlug(gctx, slug)
			return err
		})

		if err := group.Wait(); err != nil {
			return content.PostDetail{}, err
		}

		tree, err := blocks.FetchTree(ctx, b.Source.API, out.Post.ID)
		if err != nil {
			return content.PostDetail{}, fmt.Errorf("post %s body: %w", out.Post.ID, err)
		}

		html, err := b.Renderer.Render(tree)
		if err != nil {
			return content.PostDetail{}, err
		}

		out.Posts = content.Summarize(posts)
		out.Blocks = tree
		out.Toc = blocks.TableOfContents(tree)
		out.HTML = html
		out.ReadingMinutes = blocks.ReadingMinutes(blocks.PlainText(tree))
		out.Previous, out.Next = content.Navigation(posts, out.Post.ID)
		out.Related = content.Related(posts, out.Post, content.RelatedLimit)

		return out, nil
	})
}

// CategoriesWithCounts lists the catalogue with published post counts.
func (b *Blog) CategoriesWithCounts(ctx context.Context) ([]content.CategoryCount, error) {
	categories, err := b.Categories.All(ctx)
	if err != nil {
		return nil, err
	}

	posts, err := b.Posts.Published(ctx)
	if err != nil {
		return nil, err
	}

	return content.CountByCategory(categories, posts), nil
}

// PostsInCategory returns nil posts when no category has the slug.
func (b *Blog) PostsInCategory(ctx context.Context, categorySlug string) (*content.Category, []content.Post, error) {
	category, err := b.Categories.FindBy(ctx, categorySlug)
	if err != nil || category == nil {
		return nil, nil, err
	}

	posts, err := b.Posts.Published(ctx)
	if err != nil {
		return nil, nil, err
	}

	return category, content.InCategory(posts, category.Slug), nil
}

// PostsInSeries returns nil posts when no series has the slug.
func (b *Blog) PostsInSeries(ctx context.Context, seriesSlug string) (*content.Series, []content.Post, error) {
	posts, err := b.Posts.Published(ctx)
	if err != nil {
		return nil, nil, err
	}

	index, err := b.Series.Index(ctx)
	if err != nil {
		return nil, nil, err
	}

	for _, series := range WithPosts(index.List, posts) {
		if series.Slug == seriesSlug {
			return &series, content.InSeries(posts, series), nil
		}
	}

	return nil, nil, nil
}

// SitemapPaths loads the catalogue and the published posts concurrently.
func (b *Blog) SitemapPaths(ctx context.Context) ([]string, error) {
	var categories []content.Category
	var posts []content.Post

	group, gctx := errgroup.WithContext(ctx)

	group.Go(func() error {
		var err error
		categories, err = b.Categories.All(gctx)
		return err
	})

	group.Go(func() error {
		var err error
		posts, err = b.Posts.Published(gctx)
		return err
	})

	if err := group.Wait(); err != nil {
		return nil, err
	}

	return content.SitemapPaths(categories, posts), nil
}

// Warm loads the bootstrap payload so that it sits in the cache.
func (b *Blog) Warm(ctx context.Context) error {
	_, err := b.Bootstrap(ctx)

	return err
}
