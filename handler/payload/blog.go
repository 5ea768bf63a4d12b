package payload

import (
	"github.com/paragon0107/notive/content"
	"github.com/paragon0107/notive/pkg/pagination"
)

type DatabaseMapResponse struct {
	DatabaseMap content.CollectionMap `json:"database_map"`
}

type CategoryResponse struct {
	ID          string   `json:"id"`
	Name        string   `json:"name"`
	Slug        string   `json:"slug"`
	Description string   `json:"description"`
	Color       string   `json:"color,omitempty"`
	Order       *float64 `json:"order,omitempty"`
	PostCount   int      `json:"post_count"`
}

func GetCategoriesResponse(counts []content.CategoryCount) []CategoryResponse {
	data := make([]CategoryResponse, 0, len(counts))

	for _, count := range counts {
		data = append(data, CategoryResponse{
			ID:          count.ID,
			Name:        count.Name,
			Slug:        count.Slug,
			Description: count.Description,
			Color:       count.Color,
			Order:       count.Order,
			PostCount:   count.PostCount,
		})
	}

	return data
}

type PostResponse struct {
	ID           string             `json:"id"`
	Title        string             `json:"title"`
	Slug         string             `json:"slug"`
	Date         string             `json:"date"`
	Summary      string             `json:"summary"`
	ThumbnailURL string             `json:"thumbnail_url"`
	Categories   []content.Category `json:"categories"`
}

func GetPostResponse(p content.Post) PostResponse {
	return PostResponse{
		ID:           p.ID,
		Title:        p.Title,
		Slug:         p.Slug,
		Date:         p.Date,
		Summary:      p.Summary,
		ThumbnailURL: p.ThumbnailURL,
		Categories:   p.Categories,
	}
}

type CategoryPostsResponse struct {
	Category content.Category                     `json:"category"`
	Posts    *pagination.Pagination[PostResponse] `json:"posts"`
}

type SeriesPostsResponse struct {
	Series content.Series `json:"series"`
	Posts  []content.Post `json:"posts"`
}
