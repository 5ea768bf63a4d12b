package handler

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/paragon0107/notive/content"
	"github.com/paragon0107/notive/content/contenttest"
	"github.com/paragon0107/notive/content/repository"
	"github.com/paragon0107/notive/pkg/endpoint"
	"github.com/paragon0107/notive/pkg/notion"
	"github.com/paragon0107/notive/pkg/notion/notiontest"
)

func newTestBlog(fake *notiontest.Fake) *repository.Blog {
	return repository.NewBlog(content.NewSource(fake, contenttest.RootID, 30*time.Second, content.DefaultSite()))
}

// seededWorkspace holds three published posts, two of them in the Go category
// and the Basics series, plus one draft.
func seededWorkspace() *notiontest.Fake {
	fake := contenttest.Workspace()

	fake.AddRows(contenttest.SeriesID, notiontest.Row("series-a", map[string]notion.Property{"Name": notiontest.Title("Basics")}))

	inSeries := func(extra map[string]notion.Property) map[string]notion.Property {
		extra["Series"] = notiontest.Relation("series-a")
		return extra
	}

	fake.AddRows(contenttest.PostsID,
		contenttest.Post("p-3", "Third", "third", "2024-03-01", true, inSeries(map[string]notion.Property{
			"Category": notiontest.MultiSelect("Go"),
		})),
		contenttest.Post("p-2", "Second", "second", "2024-02-01", true, inSeries(map[string]notion.Property{
			"Category": notiontest.MultiSelect("Go"),
		})),
		contenttest.Post("p-1", "First", "first", "2024-01-01", true, nil),
		contenttest.Post("p-0", "Draft", "draft", "2023-12-01", false, nil),
	)

	fake.AddChildren("p-2", notiontest.TextBlock(notion.TypeHeading1, "aaaa-0000-0000-00000001", "Intro"))

	return fake
}

func serve(t *testing.T, h endpoint.ApiHandler, req *http.Request) *httptest.ResponseRecorder {
	t.Helper()

	rec := httptest.NewRecorder()
	endpoint.NewApiHandler(h).ServeHTTP(rec, req)

	return rec
}

func withSlug(req *http.Request, slug string) *http.Request {
	req.SetPathValue("slug", slug)

	return req
}

func decode[T any](t *testing.T, rec *httptest.ResponseRecorder) T {
	t.Helper()

	var out T
	if err := json.NewDecoder(rec.Body).Decode(&out); err != nil {
		t.Fatalf("decode: %v (%s)", err, rec.Body.String())
	}

	return out
}
