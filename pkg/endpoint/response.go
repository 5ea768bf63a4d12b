package endpoint

import (
	"encoding/json"
	"fmt"
	"log/slog"
	"net/http"
	"strings"
	"time"
)

const ContentTypeJSON = "application/json"

type Response struct {
	etag         string
	cacheControl string
	contentType  string
	writer       http.ResponseWriter
	request      *http.Request
}

func NewResponseWithCache(salt string, maxAgeSeconds int, writer http.ResponseWriter, request *http.Request) *Response {
	if maxAgeSeconds < 0 {
		maxAgeSeconds = 0
	}

	return newResponse(
		etagFrom(salt),
		fmt.Sprintf("public, max-age=%d", maxAgeSeconds),
		writer,
		request,
	)
}

// NewSharedCacheResponse lets shared caches keep the payload for ttl and serve
// it stale for twice as long while they revalidate in the background.
func NewSharedCacheResponse(salt string, ttl time.Duration, writer http.ResponseWriter, request *http.Request) *Response {
	seconds := int(ttl / time.Second)
	if seconds < 0 {
		seconds = 0
	}

	return newResponse(
		etagFrom(salt),
		fmt.Sprintf("public, s-maxage=%d, stale-while-revalidate=%d", seconds, seconds*2),
		writer,
		request,
	)
}

func NewNoCacheResponse(writer http.ResponseWriter, request *http.Request) *Response {
	return newResponse("", "no-store", writer, request)
}

func newResponse(etag, cacheControl string, writer http.ResponseWriter, request *http.Request) *Response {
	return &Response{
		etag:         etag,
		cacheControl: cacheControl,
		contentType:  ContentTypeJSON,
		writer:       writer,
		request:      request,
	}
}

func etagFrom(salt string) string {
	salt = strings.TrimSpace(salt)
	if salt == "" {
		return ""
	}

	return fmt.Sprintf(`"%s"`, salt)
}

func (r *Response) WithContentType(contentType string) *Response {
	r.contentType = contentType

	return r
}

func (r *Response) WithHeaders(callback func(w http.ResponseWriter)) {
	callback(r.writer)
}

func (r *Response) writeHeaders() {
	h := r.writer.Header()

	h.Set("Content-Type", r.contentType)
	h.Set("X-Content-Type-Options", "nosniff")
	h.Set("Cache-Control", r.cacheControl)

	if r.etag != "" {
		h.Set("ETag", r.etag)
	}
}

func (r *Response) RespondOk(payload any) error {
	r.writeHeaders()
	r.writer.WriteHeader(http.StatusOK)

	return json.NewEncoder(r.writer).Encode(payload)
}

// RespondRaw writes an already encoded body (XML, plain text) with the
// response cache headers.
func (r *Response) RespondRaw(body []byte) error {
	r.writeHeaders()
	r.writer.WriteHeader(http.StatusOK)

	_, err := r.writer.Write(body)

	return err
}

func (r *Response) HasCache() bool {
	if r.etag == "" {
		return false
	}

	match := strings.TrimSpace(r.request.Header.Get("If-None-Match"))

	return match == r.etag
}

func (r *Response) RespondWithNotModified() {
	h := r.writer.Header()
	h.Set("Cache-Control", r.cacheControl)
	h.Set("ETag", r.etag)

	r.writer.WriteHeader(http.StatusNotModified)
}

func InternalError(msg string) *ApiError {
	return &ApiError{
		Message: msg,
		Status:  http.StatusInternalServerError,
		Err:     fmt.Errorf("internal server error: %s", msg),
	}
}

func LogInternalError(msg string, err error) *ApiError {
	slog.Error(msg, "error", err)

	return &ApiError{
		Message: msg,
		Status:  http.StatusInternalServerError,
		Err:     err,
	}
}

func BadRequestError(msg string) *ApiError {
	return &ApiError{
		Message: msg,
		Status:  http.StatusBadRequest,
		Err:     fmt.Errorf("bad request: %s", msg),
	}
}

func NotFound(msg string) *ApiError {
	return &ApiError{
		Message: msg,
		Status:  http.StatusNotFound,
		Err:     fmt.Errorf("not found: %s", msg),
	}
}

func TooManyRequests(msg string, data map[string]any) *ApiError {
	return &ApiError{
		Message: msg,
		Status:  http.StatusTooManyRequests,
		Data:    data,
		Err:     fmt.Errorf("rate limited: %s", msg),
	}
}
