package repository

import (
	"context"

	"github.com/paragon0107/notive/content"
	"github.com/paragon0107/notive/pkg/notion"
)

type Categories struct {
	Schemas Schemas
}

// All lists the options of the Posts "Category" multi-select in schema order.
func (c Categories) All(ctx context.Context) ([]content.Category, error) {
	_, db, err := c.Schemas.Ensure(ctx, KindPosts)
	if err != nil {
		return nil, err
	}

	categories := make([]content.Category, 0)

	prop, ok := db.Properties["Category"]
	if !ok || prop.Type != notion.PropMultiSelect || prop.MultiSelect == nil {
		return categories, nil
	}

	for i, option := range prop.MultiSelect.Options {
		order := float64(i)
		categories = append(categories, MapCategoryOption(option, i, false, &order))
	}

	return categories, nil
}

// FindBy returns the category whose slug matches.
func (c Categories) FindBy(ctx context.Context, categorySlug string) (*content.Category, error) {
	categories, err := c.All(ctx)
	if err != nil {
		return nil, err
	}

	for _, category := range categories {
		if category.Slug == categorySlug {
			return &category, nil
		}
	}

	return nil, nil
}
