package blogapi

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"strings"

	"github.com/paragon0107/notive/content"
	"github.com/paragon0107/notive/pkg/portal"
)

// Client reads the blog JSON API exposed by the server.
type Client struct {
	BaseURL string
	HTTP    *portal.Client
}

func NewClient(baseURL string, client *portal.Client) *Client {
	if client == nil {
		client = portal.NewDefaultClient(nil)
	}

	return &Client{
		BaseURL: strings.TrimRight(strings.TrimSpace(baseURL), "/"),
		HTTP:    client,
	}
}

func (c *Client) FetchBootstrap(ctx context.Context) (content.Bootstrap, error) {
	var out content.Bootstrap

	err := c.get(ctx, "/api/blog/bootstrap", &out)

	return out, err
}

func (c *Client) FetchDatabaseMap(ctx context.Context) (content.CollectionMap, error) {
	var out struct {
		DatabaseMap content.CollectionMap `json:"database_map"`
	}

	err := c.get(ctx, "/api/blog/database-map", &out)

	return out.DatabaseMap, err
}

func (c *Client) FetchPostDetail(ctx context.Context, slug string) (content.PostDetail, error) {
	var out content.PostDetail

	err := c.get(ctx, "/api/blog/post/"+url.PathEscape(slug), &out)

	return out, err
}

func (c *Client) get(ctx context.Context, path string, out any) error {
	resp, err := c.HTTP.Send(ctx, http.MethodGet, c.BaseURL+path, nil)
	if err != nil {
		return fmt.Errorf("blogapi: GET %s: %w", path, err)
	}

	if !resp.OK() {
		return newRequestError(resp)
	}

	if err := json.Unmarshal(resp.Body, out); err != nil {
		return fmt.Errorf("blogapi: decode %s: %w", path, err)
	}

	return nil
}
