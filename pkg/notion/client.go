package notion

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"time"

	"github.com/paragon0107/notive/pkg/portal"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"
)

const (
	DefaultBaseURL = "https://api.notion.com"
	DefaultVersion = "2022-06-28"
)

// API is the subset of the upstream service the content layer relies on.
type API interface {
	QueryDatabase(ctx context.Context, databaseID string, req QueryRequest) (List, error)
	ListBlockChildren(ctx context.Context, blockID, cursor string, pageSize int) (List, error)
	RetrieveDatabase(ctx context.Context, databaseID string) (Database, error)
}

type Client struct {
	baseURL string
	token   string
	version string
	http    *portal.Client
	tracer  trace.Tracer
}

// ClientOption configures a Client.
type ClientOption func(*Client)

func WithBaseURL(base string) ClientOption {
	return func(c *Client) {
		if base = strings.TrimRight(strings.TrimSpace(base), "/"); base != "" {
			c.baseURL = base
		}
	}
}

func WithVersion(version string) ClientOption {
	return func(c *Client) {
		if version = strings.TrimSpace(version); version != "" {
			c.version = version
		}
	}
}

func NewClient(token string, opts ...ClientOption) *Client {
	c := &Client{
		baseURL: DefaultBaseURL,
		token:   token,
		version: DefaultVersion,
		http:    portal.NewDefaultClient(nil),
		tracer:  otel.Tracer("github.com/paragon0107/notive/pkg/notion"),
	}

	for _, opt := range opts {
		opt(c)
	}

	c.http.OnHeaders = func(req *http.Request) {
		req.Header.Set("Authorization", "Bearer "+c.token)
		req.Header.Set("Notion-Version", c.version)
	}

	return c
}

func (c *Client) QueryDatabase(ctx context.Context, databaseID string, req QueryRequest) (List, error) {
	var out List
	path := "/v1/databases/" + url.PathEscape(databaseID) + "/query"

	err := c.call(ctx, "query_database", databaseID, http.MethodPost, path, req, &out)

	return out, err
}

func (c *Client) ListBlockChildren(ctx context.Context, blockID, cursor string, pageSize int) (List, error) {
	var out List

	query := url.Values{}
	if cursor != "" {
		query.Set("start_cursor", cursor)
	}

	if pageSize > 0 {
		query.Set("page_size", strconv.Itoa(pageSize))
	}

	path := "/v1/blocks/" + url.PathEscape(blockID) + "/children"
	if len(query) > 0 {
		path += "?" + query.Encode()
	}

	err := c.call(ctx, "list_block_children", blockID, http.MethodGet, path, nil, &out)

	return out, err
}

func (c *Client) RetrieveDatabase(ctx context.Context, databaseID string) (Database, error) {
	var out Database
	path := "/v1/databases/" + url.PathEscape(databaseID)

	err := c.call(ctx, "retrieve_database", databaseID, http.MethodGet, path, nil, &out)

	return out, err
}

func (c *Client) call(ctx context.Context, operation, id, method, path string, payload, out any) error {
	ctx, span := c.tracer.Start(ctx, "notion."+operation, trace.WithAttributes(
		attribute.String("notion.operation", operation),
		attribute.String("notion.id", id),
	))
	defer span.End()

	started := time.Now()
	resp, err := c.http.Send(ctx, method, c.baseURL+path, payload)
	requestDuration.WithLabelValues(operation).Observe(time.Since(started).Seconds())

	if err != nil {
		return c.fail(span, operation, "transport", fmt.Errorf("notion %s: %w", operation, err))
	}

	span.SetAttributes(attribute.Int("http.status_code", resp.Status))

	if !resp.OK() {
		return c.fail(span, operation, strconv.Itoa(resp.Status), decodeError(resp.Status, resp.Body))
	}

	if err := json.Unmarshal(resp.Body, out); err != nil {
		return c.fail(span, operation, "decode", fmt.Errorf("notion %s: decode response: %w", operation, err))
	}

	requestsTotal.WithLabelValues(operation, "ok").Inc()

	return nil
}

func (c *Client) fail(span trace.Span, operation, outcome string, err error) error {
	requestsTotal.WithLabelValues(operation, outcome).Inc()
	span.RecordError(err)
	span.SetStatus(codes.Error, err.Error())

	return err
}
