package repository

import (
	"context"
	"fmt"
	"slices"

	"github.com/paragon0107/notive/content"
	"github.com/paragon0107/notive/pkg/notion"
	"golang.org/x/sync/errgroup"
)

type Home struct {
	Source     *content.Source
	Schemas    Schemas
	Categories Categories
}

// Config reads the first Home row merged over the site fallbacks and
// normalised. Pinned categories fall back to the full catalogue.
func (h Home) Config(ctx context.Context) (content.HomeConfig, error) {
	config, err := h.fetch(ctx)
	if err != nil {
		return content.HomeConfig{}, err
	}

	config = h.Source.Site.NormalizeHome(config)

	if len(config.Categories) == 0 {
		categories, err := h.Categories.All(ctx)
		if err != nil {
			return content.HomeConfig{}, err
		}

		config.Categories = categories
	}

	return config, nil
}

func (h Home) fetch(ctx context.Context) (content.HomeConfig, error) {
	fallback := h.Source.Site.FallbackHome()

	id, _, err := h.Schemas.Ensure(ctx, KindHome)
	if err != nil {
		return content.HomeConfig{}, err
	}

	page, ok, err := notion.QueryFirst(ctx, h.Source.API, id, notion.QueryOptions{})
	if err != nil {
		return content.HomeConfig{}, fmt.Errorf("query home: %w", err)
	}

	if !ok {
		return fallback, nil
	}

	var projects []content.Project
	var contacts []content.Contact

	group, gctx := errgroup.WithContext(ctx)

	group.Go(func() error {
		var err error
		projects, err = h.projects(gctx, notion.RelationIDs(page, "Projects"))
		return err
	})

	group.Go(func() error {
		var err error
		contacts, err = h.contacts(gctx, notion.RelationIDs(page, "Contacts"))
		return err
	})

	if err := group.Wait(); err != nil {
		return content.HomeConfig{}, err
	}

	pinned := notion.MultiSelect(page, "CategoryList")
	categories := make([]content.Category, 0, len(pinned))

	for i, option := range pinned {
		order := float64(i)
		categories = append(categories, MapCategoryOption(option, i, true, &order))
	}

	return content.HomeConfig{
		BlogName:                  firstNonEmpty(notion.RichTextValue(page, "BlogName"), fallback.BlogName),
		AboutMe:                   firstNonEmpty(notion.RichTextValue(page, "AboutMe"), fallback.AboutMe),
		ProfileName:               firstNonEmpty(notion.RichTextValue(page, "ProfileName"), fallback.ProfileName),
		ProfileImageURL:           firstNonEmpty(notion.FileLocation(page, "ProfileImage"), fallback.ProfileImageURL),
		Categories:                categories,
		Projects:                  projects,
		Contacts:                  contacts,
		UseNotionProfileAsDefault: notion.Checkbox(page, "UseNotionProfileAsDefault"),
	}, nil
}

func (h Home) projects(ctx context.Context, ids []string) ([]content.Project, error) {
	id, _, err := h.Schemas.Ensure(ctx, KindProjects)
	if err != nil {
		return nil, err
	}

	pages, err := notion.QueryAll(ctx, h.Source.API, id, notion.QueryOptions{})
	if err != nil {
		return nil, fmt.Errorf("query projects: %w", err)
	}

	projects := make([]content.Project, 0, len(pages))
	for _, page := range pages {
		projects = append(projects, MapProject(page))
	}

	projects = content.SortByOrder(projects)

	if len(ids) == 0 {
		return projects, nil
	}

	return slices.DeleteFunc(projects, func(p content.Project) bool {
		return !slices.Contains(ids, p.ID)
	}), nil
}

func (h Home) contacts(ctx context.Context, ids []string) ([]content.Contact, error) {
	id, _, err := h.Schemas.Ensure(ctx, KindContacts)
	if err != nil {
		return nil, err
	}

	pages, err := notion.QueryAll(ctx, h.Source.API, id, notion.QueryOptions{})
	if err != nil {
		return nil, fmt.Errorf("query contacts: %w", err)
	}

	contacts := make([]content.Contact, 0, len(pages))
	for _, page := range pages {
		contacts = append(contacts, MapContact(page))
	}

	contacts = content.SortByOrder(contacts)

	if len(ids) == 0 {
		return contacts, nil
	}

	return slices.DeleteFunc(contacts, func(c content.Contact) bool {
		return !slices.Contains(ids, c.ID)
	}), nil
}

func firstNonEmpty(values ...string) string {
	for _, v := range values {
		if v != "" {
			return v
		}
	}

	return ""
}
