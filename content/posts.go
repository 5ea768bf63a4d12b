package content

import (
	"slices"
	"strings"

	"github.com/paragon0107/notive/pkg/slug"
)

const RelatedLimit = 4

// SearchText is the lower-cased haystack used by client-side search.
func SearchText(post Post, contentText string) string {
	names := make([]string, 0, len(post.Categories))
	for _, c := range post.Categories {
		names = append(names, c.Name)
	}

	series := make([]string, 0, len(post.Series))
	for _, s := range post.Series {
		series = append(series, s.Name)
	}

	parts := []string{post.Title, post.Summary, contentText, strings.Join(names, " "), strings.Join(series, " ")}

	kept := parts[:0]
	for _, part := range parts {
		if part != "" {
			kept = append(kept, part)
		}
	}

	return strings.ToLower(strings.Join(kept, " "))
}

// Summarize attaches search text built from post metadata only.
func Summarize(posts []Post) []PostSummary {
	out := make([]PostSummary, 0, len(posts))

	for _, post := range posts {
		out = append(out, PostSummary{Post: post, SearchText: SearchText(post, "")})
	}

	return out
}

// FindBySlug matches the canonical slug first, then a slug carrying the id suffix.
func FindBySlug(posts []Post, value string) (Post, bool) {
	wanted := strings.ToLower(strings.TrimSpace(value))
	if wanted == "" {
		return Post{}, false
	}

	for _, post := range posts {
		if strings.ToLower(post.Slug) == wanted {
			return post, true
		}
	}

	for _, post := range posts {
		if slug.HasIDSuffix(wanted, post.ID) {
			return post, true
		}
	}

	return Post{}, false
}

// Navigation returns the older (previous) and newer (next) neighbours of a
// post in a list sorted by date descending.
func Navigation(posts []Post, currentID string) (previous, next *Post) {
	index := slices.IndexFunc(posts, func(p Post) bool { return p.ID == currentID })

	if index == -1 {
		return nil, nil
	}

	if index+1 < len(posts) {
		p := posts[index+1]
		previous = &p
	}

	if index > 0 {
		p := posts[index-1]
		next = &p
	}

	return previous, next
}

// Related lists up to limit other posts sharing a category with current.
func Related(posts []Post, current Post, limit int) []Post {
	related := make([]Post, 0, limit)

	if len(current.Categories) == 0 {
		return related
	}

	ids := make(map[string]bool, len(current.Categories))
	for _, c := range current.Categories {
		ids[c.ID] = true
	}

	for _, post := range posts {
		if len(related) == limit {
			break
		}

		if post.ID == current.ID {
			continue
		}

		if slices.ContainsFunc(post.Categories, func(c Category) bool { return ids[c.ID] }) {
			related = append(related, post)
		}
	}

	return related
}

func InCategory(posts []Post, categorySlug string) []Post {
	out := make([]Post, 0)

	for _, post := range posts {
		if slices.ContainsFunc(post.Categories, func(c Category) bool { return c.Slug == categorySlug }) {
			out = append(out, post)
		}
	}

	return out
}

// InSeries lists the posts of a series ordered by the series post ids;
// posts missing from that list go last in their current order.
func InSeries(posts []Post, series Series) []Post {
	out := make([]Post, 0)

	for _, post := range posts {
		if slices.ContainsFunc(post.Series, func(s Series) bool { return s.ID == series.ID }) {
			out = append(out, post)
		}
	}

	position := make(map[string]int, len(series.PostIDs))
	for i, id := range series.PostIDs {
		position[id] = i
	}

	slices.SortStableFunc(out, func(a, b Post) int {
		pa, okA := position[a.ID]
		pb, okB := position[b.ID]

		switch {
		case !okA && !okB:
			return 0
		case !okA:
			return 1
		case !okB:
			return -1
		default:
			return pa - pb
		}
	})

	return out
}

// CategoryCount pairs a category with its number of published posts.
type CategoryCount struct {
	Category
	PostCount int `json:"post_count"`
}

func CountByCategory(categories []Category, posts []Post) []CategoryCount {
	out := make([]CategoryCount, 0, len(categories))

	for _, c := range categories {
		out = append(out, CategoryCount{Category: c, PostCount: len(InCategory(posts, c.Slug))})
	}

	return out
}

// SitemapPaths lists the public pages: home, the category index, every post
// and each category that has at least one post.
func SitemapPaths(categories []Category, posts []Post) []string {
	paths := make([]string, 0, 2+len(posts)+len(categories))
	paths = append(paths, "/", "/category")

	for _, post := range posts {
		paths = append(paths, "/post/"+post.Slug)
	}

	for _, count := range CountByCategory(categories, posts) {
		if count.PostCount > 0 {
			paths = append(paths, "/category/"+count.Slug)
		}
	}

	return paths
}
