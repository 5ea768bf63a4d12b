// Package contenttest builds fake Notion workspaces with valid collection
// schemas for repository and handler tests.
package contenttest

import (
	"github.com/paragon0107/notive/content/schema"
	"github.com/paragon0107/notive/pkg/notion"
	"github.com/paragon0107/notive/pkg/notion/notiontest"
)

const (
	RootID     = "root"
	PostsID    = "p1"
	ProjectsID = "pr1"
	ContactsID = "c1"
	HomeID     = "h1"
	SeriesID   = "s1"
)

// Props picks the first allowed type of every expected property.
func Props(expected schema.Expected) map[string]string {
	props := make(map[string]string, len(expected))
	for name, kinds := range expected {
		props[name] = kinds[0]
	}

	return props
}

// Workspace returns a fake root page holding the four collections, a series
// collection and a category catalogue of Go, " Notes " and "!!!".
func Workspace() *notiontest.Fake {
	fake := notiontest.New()

	fake.AddChildren(RootID,
		notiontest.ChildDatabase(PostsID, "Posts"),
		notiontest.ChildDatabase(ProjectsID, " projects "),
		notiontest.ChildDatabase(ContactsID, "CONTACTS"),
		notiontest.ChildDatabase(HomeID, "Home"),
		notiontest.Paragraph("intro", "not a database"),
	)

	posts := notiontest.Database(PostsID, "Posts", Props(schema.Posts))
	posts.Properties["Series"] = notion.PropertySchema{
		Type:     notion.PropRelation,
		Relation: &notion.RelationSchema{DatabaseID: SeriesID},
	}
	posts.Properties["Category"] = notion.PropertySchema{
		Type: notion.PropMultiSelect,
		MultiSelect: &notion.OptionsSchema{Options: []notion.Option{
			{ID: "o1", Name: "Go", Color: "blue"},
			{ID: "o2", Name: " Notes "},
			{ID: "o-3", Name: "!!!"},
		}},
	}

	fake.AddDatabase(posts)
	fake.AddDatabase(notiontest.Database(ProjectsID, "Projects", Props(schema.Projects)))
	fake.AddDatabase(notiontest.Database(ContactsID, "Contacts", Props(schema.Contacts)))
	fake.AddDatabase(notiontest.Database(HomeID, "Home", Props(schema.Home)))
	fake.AddDatabase(notiontest.Database(SeriesID, "Series", map[string]string{
		"Name": notion.PropTitle, "Order": notion.PropNumber,
	}))

	return fake
}

// Post builds a Posts row. An empty slug leaves the Slug property unset.
func Post(id, title, slug, date string, published bool, extra map[string]notion.Property) notion.Page {
	props := map[string]notion.Property{
		"Title":     notiontest.Title(title),
		"Published": notiontest.Checkbox(published),
		"Date":      notiontest.Date(date),
	}

	if slug != "" {
		props["Slug"] = notiontest.Text(slug)
	}

	for name, prop := range extra {
		props[name] = prop
	}

	return notiontest.Row(id, props)
}
