package handler

import (
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/paragon0107/notive/content"
	"github.com/paragon0107/notive/content/contenttest"
	"github.com/paragon0107/notive/handler/payload"
	"github.com/paragon0107/notive/pkg/endpoint"
	"github.com/paragon0107/notive/pkg/notion/notiontest"
)

func TestBlogHandlerBootstrap(t *testing.T) {
	h := NewBlogHandler(newTestBlog(seededWorkspace()))

	rec := serve(t, h.Bootstrap, httptest.NewRequest("GET", "/api/blog/bootstrap", nil))

	if rec.Code != http.StatusOK {
		t.Fatalf("status %d: %s", rec.Code, rec.Body.String())
	}

	if got := rec.Header().Get("Cache-Control"); got != "public, s-maxage=30, stale-while-revalidate=60" {
		t.Fatalf("unexpected cache-control %q", got)
	}

	etag := rec.Header().Get("ETag")
	body := decode[content.Bootstrap](t, rec)

	if body.DatabaseMap.PostsID != contenttest.PostsID || len(body.Posts) != 3 || body.Posts[0].ID != "p-3" {
		t.Fatalf("unexpected bootstrap %+v", body)
	}

	if body.Home.BlogName == "" || len(body.Home.Contacts) == 0 {
		t.Fatalf("expected fallback home config, got %+v", body.Home)
	}

	req := httptest.NewRequest("GET", "/api/blog/bootstrap", nil)
	req.Header.Set("If-None-Match", etag)

	if rec := serve(t, h.Bootstrap, req); rec.Code != http.StatusNotModified {
		t.Fatalf("expected 304 for a matching etag, got %d", rec.Code)
	}
}

func TestBlogHandlerDatabaseMap(t *testing.T) {
	h := NewBlogHandler(newTestBlog(seededWorkspace()))

	rec := serve(t, h.DatabaseMap, httptest.NewRequest("GET", "/api/blog/database-map", nil))
	body := decode[payload.DatabaseMapResponse](t, rec)

	if body.DatabaseMap.HomeID != contenttest.HomeID || body.DatabaseMap.ContactsID != contenttest.ContactsID {
		t.Fatalf("unexpected database map %+v", body.DatabaseMap)
	}

	if got := rec.Header().Get("Cache-Control"); got != "no-store" || rec.Header().Get("ETag") != "" {
		t.Fatalf("database map must not be cached publicly, got %q", got)
	}
}

func TestBlogHandlerPost(t *testing.T) {
	fake := seededWorkspace()
	h := NewBlogHandler(newTestBlog(fake))

	rec := serve(t, h.Post, withSlug(httptest.NewRequest("GET", "/api/blog/post/second", nil), "Second"))

	if rec.Code != http.StatusOK {
		t.Fatalf("status %d: %s", rec.Code, rec.Body.String())
	}

	body := decode[content.PostDetail](t, rec)

	if body.Post.ID != "p-2" || body.Previous == nil || body.Previous.ID != "p-1" || body.Next == nil || body.Next.ID != "p-3" {
		t.Fatalf("unexpected detail %+v", body)
	}

	if len(body.Toc) != 1 || !strings.Contains(body.HTML, "<h2") {
		t.Fatalf("expected rendered body, got toc=%v html=%q", body.Toc, body.HTML)
	}

	queries := fake.Calls(notiontest.OpQuery)

	if rec := serve(t, h.Post, withSlug(httptest.NewRequest("GET", "/api/blog/post/second", nil), "second")); rec.Code != http.StatusOK {
		t.Fatalf("cached read failed: %d", rec.Code)
	}

	if fake.Calls(notiontest.OpQuery) != queries {
		t.Fatalf("expected the second read to be served from cache")
	}
}

func TestBlogHandlerPostNotFound(t *testing.T) {
	h := NewBlogHandler(newTestBlog(seededWorkspace()))

	for _, slug := range []string{"missing", "draft", ""} {
		rec := serve(t, h.Post, withSlug(httptest.NewRequest("GET", "/api/blog/post/x", nil), slug))

		if rec.Code != http.StatusNotFound {
			t.Fatalf("slug %q: expected 404, got %d", slug, rec.Code)
		}

		body := decode[endpoint.ErrorResponse](t, rec)
		if body.Message != "Post not found." || body.Status != http.StatusNotFound {
			t.Fatalf("slug %q: unexpected body %+v", slug, body)
		}
	}
}

func TestBlogHandlerMissingCollections(t *testing.T) {
	fake := notiontest.New()
	fake.AddChildren(contenttest.RootID, notiontest.ChildDatabase("x", "Drafts"))

	h := NewBlogHandler(newTestBlog(fake))

	rec := serve(t, h.Bootstrap, httptest.NewRequest("GET", "/api/blog/bootstrap", nil))

	if rec.Code != http.StatusInternalServerError {
		t.Fatalf("expected 500, got %d", rec.Code)
	}

	body := decode[endpoint.ErrorResponse](t, rec)
	if !strings.HasPrefix(body.Message, "Missing Notion databases: ") || !strings.Contains(body.Message, `Available child databases: "drafts"`) {
		t.Fatalf("unexpected message %q", body.Message)
	}
}

func TestBlogHandlerUpstreamFailure(t *testing.T) {
	fake := seededWorkspace()
	fake.Err = errors.New("upstream unavailable")

	rec := serve(t, NewBlogHandler(newTestBlog(fake)).Bootstrap, httptest.NewRequest("GET", "/api/blog/bootstrap", nil))

	if rec.Code != http.StatusInternalServerError {
		t.Fatalf("expected 500, got %d", rec.Code)
	}

	if body := decode[endpoint.ErrorResponse](t, rec); body.Message != "Failed to load blog data." {
		t.Fatalf("unexpected message %q", body.Message)
	}
}
