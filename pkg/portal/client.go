package portal

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"
)

type Client struct {
	UserAgent      string
	client         *http.Client
	transport      *http.Transport
	OnHeaders      func(req *http.Request)
	AbortOnNone2xx bool
}

// Response is a fully read upstream reply.
type Response struct {
	Status int
	Header http.Header
	Body   []byte
}

func (r Response) OK() bool {
	return r.Status >= 200 && r.Status < 300
}

func GetDefaultTransport() *http.Transport {
	return &http.Transport{
		MaxIdleConns:        100,
		MaxIdleConnsPerHost: 10,
		IdleConnTimeout:     90 * time.Second,
	}
}

func NewDefaultClient(transport *http.Transport) *Client {
	if transport == nil {
		transport = GetDefaultTransport()
	}

	client := &http.Client{
		Transport: transport,
		Timeout:   15 * time.Second,
	}

	return &Client{
		client:         client,
		transport:      transport,
		UserAgent:      "notive",
		OnHeaders:      nil,
		AbortOnNone2xx: false,
	}
}

// Send performs a request with an optional JSON body and reads the reply.
func (f *Client) Send(ctx context.Context, method, url string, payload any) (Response, error) {
	if f == nil || f.client == nil {
		return Response{}, fmt.Errorf("client is nil")
	}

	var body io.Reader

	if payload != nil {
		encoded, err := json.Marshal(payload)
		if err != nil {
			return Response{}, fmt.Errorf("failed to encode request body: %w", err)
		}

		body = bytes.NewReader(encoded)
	}

	req, err := http.NewRequestWithContext(ctx, method, url, body)

	if err != nil {
		return Response{}, fmt.Errorf("failed to create request: %w", err)
	}

	req.Header.Set("Accept", "application/json")

	if payload != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	if f.OnHeaders != nil {
		f.OnHeaders(req)
	}

	req.Header.Set("User-Agent", f.UserAgent)

	resp, err := f.client.Do(req)
	if err != nil {
		return Response{}, fmt.Errorf("http request failed: %w", err)
	}

	defer CloseWithLog(resp.Body)

	out := Response{Status: resp.StatusCode, Header: resp.Header}

	if f.AbortOnNone2xx && !out.OK() {
		return out, fmt.Errorf("received non-2xx status code: %d", resp.StatusCode)
	}

	data, err := ReadWithSizeLimit(resp.Body)
	if err != nil {
		return out, fmt.Errorf("failed to read response body: %w", err)
	}

	out.Body = data

	return out, nil
}
