package notion

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
)

func TestClientQueryDatabaseSendsHeadersAndBody(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.Method != http.MethodPost || r.URL.Path != "/v1/databases/db-1/query" {
			t.Errorf("unexpected request %s %s", r.Method, r.URL.Path)
		}

		if got := r.Header.Get("Authorization"); got != "Bearer secret" {
			t.Errorf("authorization header: %q", got)
		}

		if got := r.Header.Get("Notion-Version"); got != DefaultVersion {
			t.Errorf("version header: %q", got)
		}

		var body QueryRequest
		if err := json.NewDecoder(r.Body).Decode(&body); err != nil {
			t.Errorf("decode body: %v", err)
		}

		if body.StartCursor != "c1" || body.PageSize != 100 {
			t.Errorf("unexpected body: %+v", body)
		}

		_, _ = w.Write([]byte(`{"object":"list","results":[{"object":"page","id":"p1","properties":{}}],"has_more":false,"next_cursor":null}`))
	}))
	defer srv.Close()

	client := NewClient("secret", WithBaseURL(srv.URL+"/"))

	list, err := client.QueryDatabase(context.Background(), "db-1", QueryRequest{StartCursor: "c1", PageSize: 100})

	if err != nil {
		t.Fatalf("query: %v", err)
	}

	if len(list.Results) != 1 || list.HasMore {
		t.Fatalf("unexpected list: %+v", list)
	}

	if item := ParsePage(list.Results[0]); !item.Usable || item.Value.ID != "p1" {
		t.Fatalf("expected usable page, got %+v", item)
	}
}

func TestClientListBlockChildrenQuery(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/v1/blocks/b-1/children" {
			t.Errorf("unexpected path %s", r.URL.Path)
		}

		if r.URL.Query().Get("start_cursor") != "next" || r.URL.Query().Get("page_size") != "100" {
			t.Errorf("unexpected query %s", r.URL.RawQuery)
		}

		_, _ = w.Write([]byte(`{"object":"list","results":[],"has_more":false}`))
	}))
	defer srv.Close()

	client := NewClient("secret", WithBaseURL(srv.URL))

	if _, err := client.ListBlockChildren(context.Background(), "b-1", "next", 100); err != nil {
		t.Fatalf("list children: %v", err)
	}
}

func TestClientDecodesErrorEnvelope(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusTooManyRequests)
		_, _ = w.Write([]byte(`{"object":"error","status":429,"code":"rate_limited","message":"Rate limited"}`))
	}))
	defer srv.Close()

	client := NewClient("secret", WithBaseURL(srv.URL))

	_, err := client.RetrieveDatabase(context.Background(), "db")

	if !IsRateLimited(err) {
		t.Fatalf("expected rate limited error, got %v", err)
	}

	if IsNotFound(err) {
		t.Fatalf("rate limit must not read as not found")
	}
}

func TestClientErrorWithoutEnvelope(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusNotFound)
	}))
	defer srv.Close()

	client := NewClient("secret", WithBaseURL(srv.URL))

	_, err := client.RetrieveDatabase(context.Background(), "db")

	apiErr, ok := err.(*APIError)
	if !ok {
		t.Fatalf("expected *APIError, got %T", err)
	}

	if apiErr.Message != "Not Found" || !apiErr.IsNotFound() {
		t.Fatalf("unexpected error: %+v", apiErr)
	}
}

func TestClientsKeepTheirOwnCredentials(t *testing.T) {
	seen := make(chan string, 2)

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		seen <- r.Header.Get("Authorization")
		_, _ = w.Write([]byte(`{"object":"database","id":"db-1","title":[]}`))
	}))
	defer srv.Close()

	first := NewClient("token-one", WithBaseURL(srv.URL))
	second := NewClient("token-two", WithBaseURL(srv.URL), WithVersion("2025-09-03"))

	if first.http == second.http {
		t.Fatalf("clients must not share the authenticated transport")
	}

	for _, c := range []*Client{first, second} {
		if _, err := c.RetrieveDatabase(context.Background(), "db-1"); err != nil {
			t.Fatalf("retrieve: %v", err)
		}
	}

	if got := <-seen; got != "Bearer token-one" {
		t.Fatalf("first client sent %q", got)
	}

	if got := <-seen; got != "Bearer token-two" {
		t.Fatalf("second client sent %q", got)
	}
}
