package commands

import (
	"bytes"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/paragon0107/notive/content"
	"github.com/paragon0107/notive/content/contenttest"
	"github.com/paragon0107/notive/content/repository"
	"github.com/paragon0107/notive/metal/env"
	"github.com/paragon0107/notive/metal/router"
	"github.com/paragon0107/notive/pkg/middleware"
	"github.com/paragon0107/notive/pkg/notion/notiontest"
)

func newTestBlog() *repository.Blog {
	fake := contenttest.Workspace()

	fake.AddRows(contenttest.PostsID, contenttest.Post("p-1", "Hello", "hello", "2024-01-01", true, nil))
	fake.AddChildren("p-1", notiontest.Paragraph("aaaa-0000-0000-00000001", "Hi there"))

	return repository.NewBlog(content.NewSource(fake, contenttest.RootID, 30*time.Second, content.DefaultSite()))
}

func testDeps(blog *repository.Blog) Deps {
	return Deps{
		Blog: func(string) (*repository.Blog, error) {
			return blog, nil
		},
		Serve: func(string) error {
			return errors.New("serve is not available in tests")
		},
	}
}

func execute(t *testing.T, deps Deps, args ...string) (string, error) {
	t.Helper()

	var out bytes.Buffer

	cmd := NewRootCmdWith(deps)
	cmd.SetOut(&out)
	cmd.SetErr(&out)
	cmd.SetArgs(append(args, "--plain"))

	err := cmd.Execute()

	return out.String(), err
}

func TestCollectionsCommand(t *testing.T) {
	out, err := execute(t, testDeps(newTestBlog()), "collections")
	if err != nil {
		t.Fatalf("collections: %v", err)
	}

	var dbMap content.CollectionMap
	if err := json.Unmarshal([]byte(out), &dbMap); err != nil {
		t.Fatalf("decode %q: %v", out, err)
	}

	if dbMap.PostsID != contenttest.PostsID || dbMap.HomeID != contenttest.HomeID {
		t.Fatalf("unexpected map %+v", dbMap)
	}
}

func TestPostCommand(t *testing.T) {
	out, err := execute(t, testDeps(newTestBlog()), "post", "hello")
	if err != nil {
		t.Fatalf("post: %v", err)
	}

	var detail content.PostDetail
	if err := json.Unmarshal([]byte(out), &detail); err != nil {
		t.Fatalf("decode: %v", err)
	}

	if detail.Post.ID != "p-1" || len(detail.Blocks) != 1 {
		t.Fatalf("unexpected detail %+v", detail.Post)
	}

	out, err = execute(t, testDeps(newTestBlog()), "post", "hello", "--html")
	if err != nil {
		t.Fatalf("post --html: %v", err)
	}

	if !strings.Contains(out, "Hi there") || strings.HasPrefix(strings.TrimSpace(out), "{") {
		t.Fatalf("expected the html body only, got %q", out)
	}
}

func TestPostCommandMissingPost(t *testing.T) {
	_, err := execute(t, testDeps(newTestBlog()), "post", "nope")

	if !errors.Is(err, content.ErrPostNotFound) {
		t.Fatalf("expected ErrPostNotFound, got %v", err)
	}
}

func TestPostCommandRequiresSlug(t *testing.T) {
	if _, err := execute(t, testDeps(newTestBlog()), "post"); err == nil {
		t.Fatalf("expected an argument error")
	}
}

func TestWarmCommand(t *testing.T) {
	out, err := execute(t, testDeps(newTestBlog()), "warm")
	if err != nil {
		t.Fatalf("warm: %v", err)
	}

	if !strings.HasPrefix(out, "Bootstrap loaded in") {
		t.Fatalf("unexpected output %q", out)
	}
}

func TestServeCommandUsesDeps(t *testing.T) {
	if _, err := execute(t, testDeps(newTestBlog()), "serve"); err == nil || !strings.Contains(err.Error(), "not available") {
		t.Fatalf("expected the injected serve error, got %v", err)
	}
}

func TestBlogErrorsPropagate(t *testing.T) {
	deps := testDeps(nil)
	deps.Blog = func(string) (*repository.Blog, error) {
		return nil, errors.New("bad env")
	}

	if _, err := execute(t, deps, "collections"); err == nil || err.Error() != "bad env" {
		t.Fatalf("expected env error, got %v", err)
	}
}

func newTestAPI(t *testing.T) *httptest.Server {
	t.Helper()

	r := router.Router{
		Env:     &env.Environment{App: env.AppEnvironment{Type: "local"}},
		Mux:     http.NewServeMux(),
		Content: newTestBlog(),
		Pipeline: middleware.Pipeline{
			PublicMiddleware: middleware.MakePublicMiddleware(),
		},
	}

	r.Blog()

	server := httptest.NewServer(r.Mux)
	t.Cleanup(server.Close)

	return server
}

func TestRemotePostCommand(t *testing.T) {
	server := newTestAPI(t)

	out, err := execute(t, testDeps(nil), "remote", "post", "hello", "--url", server.URL)
	if err != nil {
		t.Fatalf("remote post: %v", err)
	}

	var detail content.PostDetail
	if err := json.Unmarshal([]byte(out), &detail); err != nil {
		t.Fatalf("decode: %v", err)
	}

	if detail.Post.Slug != "hello" {
		t.Fatalf("unexpected detail %+v", detail.Post)
	}

	_, err = execute(t, testDeps(nil), "remote", "post", "missing", "--url", server.URL)
	if err == nil || !strings.Contains(err.Error(), "Post not found.") {
		t.Fatalf("expected the server message, got %v", err)
	}
}

func TestRemotePostsCommand(t *testing.T) {
	server := newTestAPI(t)

	out, err := execute(t, testDeps(nil), "remote", "posts", "--url", server.URL)
	if err != nil {
		t.Fatalf("remote posts: %v", err)
	}

	if !strings.Contains(out, "2024-01-01  hello") || !strings.Contains(out, "  Hello") {
		t.Fatalf("unexpected output %q", out)
	}
}

