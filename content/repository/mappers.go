package repository

import (
	"strconv"
	"strings"

	"github.com/paragon0107/notive/content"
	"github.com/paragon0107/notive/pkg/notion"
	"github.com/paragon0107/notive/pkg/slug"
)

// PostSlug is the canonical slug: the explicit Slug property, else the title
// slug with the id suffix, else "post-<suffix>".
func PostSlug(page notion.Page) string {
	if explicit := slug.Make(notion.RichTextValue(page, "Slug")); explicit != "" {
		return explicit
	}

	return slug.WithIDSuffix(notion.Title(page), "post", page.ID)
}

func sanitizeID(id string) string {
	var b strings.Builder

	for _, r := range id {
		if (r >= 'a' && r <= 'z') || (r >= 'A' && r <= 'Z') || (r >= '0' && r <= '9') {
			b.WriteRune(r)
		}
	}

	return strings.ToLower(b.String())
}

// MapCategoryOption turns a select option at index into a category.
func MapCategoryOption(option notion.Option, index int, pinned bool, order *float64) content.Category {
	name := strings.TrimSpace(option.Name)
	if name == "" {
		name = "Untitled Category " + strconv.Itoa(index+1)
	}

	fallback := sanitizeID(option.ID)
	if fallback == "" {
		fallback = strconv.Itoa(index + 1)
	}

	categorySlug := slug.Make(name)
	if categorySlug == "" {
		categorySlug = "category-" + fallback
	}

	return content.Category{
		ID:       "category-" + categorySlug,
		Name:     name,
		Slug:     categorySlug,
		Order:    order,
		IsPinned: pinned,
		Color:    option.Color,
	}
}

func MapSeriesPage(page notion.Page, index int) content.Series {
	name := strings.TrimSpace(notion.Title(page))
	if name == "" || name == notion.DefaultTitle {
		name = "Untitled Series " + strconv.Itoa(index+1)
	}

	seriesSlug := slug.Make(name)
	if seriesSlug == "" {
		seriesSlug = "series-" + strconv.Itoa(index+1)
	}

	return content.Series{
		ID:      page.ID,
		Name:    name,
		Slug:    seriesSlug,
		Order:   notion.Number(page, "Order"),
		PostIDs: []string{},
	}
}

// MapPost maps a Posts row. Series relation ids missing from seriesByID are dropped.
func MapPost(page notion.Page, seriesByID map[string]content.Series) content.Post {
	options := notion.MultiSelect(page, "Category")
	categories := make([]content.Category, 0, len(options))

	for i, option := range options {
		categories = append(categories, MapCategoryOption(option, i, false, nil))
	}

	var series []content.Series
	for _, id := range notion.RelationIDs(page, "Series") {
		if s, ok := seriesByID[id]; ok {
			series = append(series, s)
		}
	}

	authors := notion.PeopleNames(page, "Author")
	if authors == nil {
		authors = []string{}
	}

	return content.Post{
		ID:           page.ID,
		Title:        notion.Title(page),
		Slug:         PostSlug(page),
		Date:         notion.Date(page, "Date"),
		Summary:      notion.RichTextValue(page, "Summary"),
		ThumbnailURL: notion.FileLocation(page, "Thumbnail"),
		Categories:   categories,
		Series:       series,
		AuthorNames:  authors,
	}
}

func MapProject(page notion.Page) content.Project {
	return content.Project{
		ID:      page.ID,
		Name:    notion.Title(page),
		Link:    notion.URL(page, "Link"),
		IconURL: notion.FileLocation(page, "Icon"),
		Order:   notion.Number(page, "Order"),
	}
}

func MapContact(page notion.Page) content.Contact {
	name := notion.Title(page)

	kind := name
	if option := notion.Select(page, "Type"); option != nil && option.Name != "" {
		kind = option.Name
	}

	label := notion.RichTextValue(page, "Label")
	if label == "" {
		label = name
	}

	return content.Contact{
		ID:      page.ID,
		Type:    kind,
		Label:   label,
		Value:   notion.RichTextValue(page, "Value"),
		IconURL: notion.FileLocation(page, "Icon"),
		Order:   notion.Number(page, "Order"),
	}
}
