package repository

import (
	"context"
	"errors"
	"strings"
	"sync"
	"testing"

	"github.com/paragon0107/notive/content"
	"github.com/paragon0107/notive/pkg/notion"
	"github.com/paragon0107/notive/pkg/notion/notiontest"
)

func TestBootstrap(t *testing.T) {
	fake := workspace(t)
	fake.AddRows(postsID,
		post("p-new", "Newest", "newest", "2024-06-01", true, map[string]notion.Property{"Summary": notiontest.Text("Fresh")}),
		post("p-old", "Oldest", "oldest", "2024-01-01", true, nil),
	)

	blog := newBlog(fake)

	var wg sync.WaitGroup
	results := make([]content.Bootstrap, 8)
	errs := make([]error, 8)

	for i := range results {
		wg.Add(1)
		go func() {
			defer wg.Done()
			results[i], errs[i] = blog.Bootstrap(context.Background())
		}()
	}

	wg.Wait()

	for i, err := range errs {
		if err != nil {
			t.Fatalf("caller %d: %v", i, err)
		}
	}

	got := results[0]

	if got.DatabaseMap.PostsID != postsID || len(got.Posts) != 2 {
		t.Fatalf("unexpected bootstrap %+v", got)
	}

	if got.Posts[0].SearchText != "newest fresh" {
		t.Fatalf("unexpected search text %q", got.Posts[0].SearchText)
	}

	if fake.Calls(notiontest.OpChildren) != 1 {
		t.Fatalf("expected a single discovery call, got %d", fake.Calls(notiontest.OpChildren))
	}
}

func TestPostDetail(t *testing.T) {
	fake := workspace(t)
	goCategory := map[string]notion.Property{"Category": notiontest.MultiSelect("Go")}
	fake.AddRows(postsID,
		post("p-3", "Third", "third", "2024-03-01", true, goCategory),
		post("p-2", "Second", "second", "2024-02-01", true, goCategory),
		post("p-1", "First", "first", "2024-01-01", true, nil),
	)
	fake.AddChildren("p-2",
		notiontest.TextBlock(notion.TypeHeading1, "aaaa-0000-0000-00000001", "Intro"),
		notiontest.Nested(notiontest.Paragraph("para", "Body text")),
	)
	fake.AddChildren("para", notiontest.Paragraph("child", "nested words"))

	detail, err := newBlog(fake).PostDetail(context.Background(), "Second")
	if err != nil {
		t.Fatalf("post detail: %v", err)
	}

	if detail.Post.ID != "p-2" || len(detail.Posts) != 3 {
		t.Fatalf("unexpected detail %+v", detail.Post)
	}

	if detail.Previous == nil || detail.Previous.ID != "p-1" || detail.Next == nil || detail.Next.ID != "p-3" {
		t.Fatalf("unexpected navigation %v %v", detail.Previous, detail.Next)
	}

	if len(detail.Related) != 1 || detail.Related[0].ID != "p-3" {
		t.Fatalf("unexpected related %+v", detail.Related)
	}

	if len(detail.Toc) != 1 || detail.Toc[0].ID != "intro-00000001" {
		t.Fatalf("unexpected toc %+v", detail.Toc)
	}

	if len(detail.Blocks) != 2 || len(detail.Blocks[1].Children) != 1 {
		t.Fatalf("body not hydrated %+v", detail.Blocks)
	}

	if !strings.Contains(detail.HTML, `<h2 id="intro-00000001">Intro</h2>`) {
		t.Fatalf("unexpected html %s", detail.HTML)
	}

	if detail.ReadingMinutes != 1 {
		t.Fatalf("unexpected reading minutes %d", detail.ReadingMinutes)
	}
}

func TestPostDetailNotFound(t *testing.T) {
	fake := workspace(t)

	_, err := newBlog(fake).PostDetail(context.Background(), "missing")

	if !errors.Is(err, content.ErrPostNotFound) {
		t.Fatalf("expected ErrPostNotFound, got %v", err)
	}
}

func TestPostsInSeriesAndCategory(t *testing.T) {
	fake := workspace(t)
	fake.AddRows(seriesID, notiontest.Row("series-a", map[string]notion.Property{"Name": notiontest.Title("Basics")}))
	fake.AddRows(postsID,
		post("p-2", "Two", "two", "2024-02-01", true, map[string]notion.Property{
			"Series":   notiontest.Relation("series-a"),
			"Category": notiontest.MultiSelect("Go"),
		}),
		post("p-1", "One", "one", "2024-01-01", true, map[string]notion.Property{"Series": notiontest.Relation("series-a")}),
	)

	blog := newBlog(fake)

	series, posts, err := blog.PostsInSeries(context.Background(), "basics")
	if err != nil || series == nil {
		t.Fatalf("series lookup: %v %v", series, err)
	}

	if len(posts) != 2 || strings.Join(series.PostIDs, ",") != "p-2,p-1" {
		t.Fatalf("unexpected series posts %+v %v", posts, series.PostIDs)
	}

	category, inCategory, err := blog.PostsInCategory(context.Background(), "go")
	if err != nil || category == nil || len(inCategory) != 1 {
		t.Fatalf("category lookup: %v %v %v", category, inCategory, err)
	}

	missing, _, err := blog.PostsInCategory(context.Background(), "rust")
	if err != nil || missing != nil {
		t.Fatalf("expected no category, got %v %v", missing, err)
	}

	counts, err := blog.CategoriesWithCounts(context.Background())
	if err != nil || len(counts) != 3 || counts[0].PostCount != 1 || counts[1].PostCount != 0 {
		t.Fatalf("unexpected counts %+v %v", counts, err)
	}
}
