package repository

import (
	"context"
	"testing"

	"github.com/paragon0107/notive/pkg/notion"
	"github.com/paragon0107/notive/pkg/notion/notiontest"
)

func TestHomeConfigMergesRowOverFallback(t *testing.T) {
	fake := workspace(t)
	fake.AddRows(homeID, notiontest.Row("home-row", map[string]notion.Property{
		"Name":                      notiontest.Title("Home"),
		"BlogName":                  notiontest.Text("Field Notes"),
		"ProfileImage":              notiontest.Files("https://cdn.example.com/me.png"),
		"CategoryList":              notiontest.MultiSelect("Go"),
		"Projects":                  notiontest.Relation("proj-2"),
		"UseNotionProfileAsDefault": notiontest.Checkbox(true),
	}))
	fake.AddRows(projectsID,
		notiontest.Row("proj-1", map[string]notion.Property{"Name": notiontest.Title("One"), "Order": notiontest.Number(1)}),
		notiontest.Row("proj-2", map[string]notion.Property{"Name": notiontest.Title("Two"), "Link": notiontest.URL("https://two.dev")}),
	)
	fake.AddRows(contactsID,
		notiontest.Row("contact-1", map[string]notion.Property{
			"Name":  notiontest.Title("Mail"),
			"Type":  notiontest.Select("Email"),
			"Value": notiontest.Text("me@example.com"),
			"Order": notiontest.Number(3),
		}),
	)

	home, err := newBlog(fake).Home.Config(context.Background())
	if err != nil {
		t.Fatalf("home config: %v", err)
	}

	if home.BlogName != "Field Notes" || home.AboutMe != "Notion based blog" || home.ProfileName != "Notive" {
		t.Fatalf("unexpected merge %+v", home)
	}

	if home.ProfileImageURL != "https://cdn.example.com/me.png" || !home.UseNotionProfileAsDefault {
		t.Fatalf("unexpected profile fields %+v", home)
	}

	if len(home.Projects) != 1 || home.Projects[0].ID != "proj-2" || home.Projects[0].Link != "https://two.dev" {
		t.Fatalf("projects must follow the Home relation, got %+v", home.Projects)
	}

	if len(home.Categories) != 1 || !home.Categories[0].IsPinned || home.Categories[0].Slug != "go" {
		t.Fatalf("unexpected pinned categories %+v", home.Categories)
	}

	var types []string
	for _, c := range home.Contacts {
		types = append(types, c.Type)
	}

	if len(types) != 3 || types[0] != "GitHub" || types[1] != "LinkedIn" || types[2] != "Email" {
		t.Fatalf("unexpected contacts order %v", types)
	}

	if home.Contacts[2].Label != "Mail" || home.Contacts[2].Value != "me@example.com" {
		t.Fatalf("unexpected contact %+v", home.Contacts[2])
	}
}

func TestHomeConfigFallsBackWithoutRows(t *testing.T) {
	fake := workspace(t)

	home, err := newBlog(fake).Home.Config(context.Background())
	if err != nil {
		t.Fatalf("home config: %v", err)
	}

	if home.BlogName != "Notive" || len(home.Contacts) != 3 || !home.UseNotionProfileAsDefault {
		t.Fatalf("unexpected fallback %+v", home)
	}

	if len(home.Categories) != 3 {
		t.Fatalf("expected the catalogue when nothing is pinned, got %+v", home.Categories)
	}

	if home.Categories[1].Name != "Notes" || home.Categories[2].Slug != "category-o3" {
		t.Fatalf("unexpected catalogue mapping %+v", home.Categories)
	}
}
