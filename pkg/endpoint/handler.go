package endpoint

import (
	"encoding/json"
	"log/slog"
	"net/http"
	"strings"

	"github.com/getsentry/sentry-go"
	"github.com/paragon0107/notive/pkg/portal"
)

// NewApiHandler adapts an ApiHandler to net/http. A returned *ApiError is
// logged, reported to sentry and written as an uncached JSON body.
func NewApiHandler(fn ApiHandler) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		apiErr := fn(w, r)
		if apiErr == nil {
			return
		}

		logApiError(r, apiErr)
		captureApiError(r, apiErr)
		writeApiError(w, r, apiErr)
	}
}

func writeApiError(w http.ResponseWriter, r *http.Request, apiErr *ApiError) {
	h := w.Header()
	h.Set("Content-Type", ContentTypeJSON)
	h.Set("Cache-Control", "no-store")
	h.Set("X-Content-Type-Options", "nosniff")

	w.WriteHeader(apiErr.Status)

	body := ErrorResponse{
		Message:   apiErr.Message,
		Status:    apiErr.Status,
		Data:      apiErr.Data,
		RequestID: requestID(r),
	}

	if err := json.NewEncoder(w).Encode(body); err != nil {
		slog.Error("could not encode error response", "error", err)
	}
}

func logApiError(r *http.Request, apiErr *ApiError) {
	attrs := []any{
		"message", apiErr.Message,
		"status", apiErr.Status,
		"path", r.URL.Path,
	}

	if id := requestID(r); id != "" {
		attrs = append(attrs, "request_id", id)
	}

	if apiErr.Err != nil {
		attrs = append(attrs, "error", apiErr.Err)
	}

	level := slog.LevelInfo
	if apiErr.Status >= http.StatusInternalServerError {
		level = slog.LevelError
	}

	slog.Log(r.Context(), level, "api error", attrs...)
}

func captureApiError(r *http.Request, apiErr *ApiError) {
	var cause error = apiErr
	if apiErr.Err != nil {
		cause = apiErr.Err
	}

	hub := sentry.GetHubFromContext(r.Context())
	if hub == nil {
		hub = sentry.CurrentHub()
	}

	hub.WithScope(func(scope *sentry.Scope) {
		NewScopeApiError(scope, r, apiErr).Enrich()
		hub.CaptureException(cause)
	})
}

// requestID prefers the id stamped by the public middleware over the raw
// request header.
func requestID(r *http.Request) string {
	if r == nil {
		return ""
	}

	if v, ok := r.Context().Value(portal.RequestIDKey).(string); ok {
		if id := strings.TrimSpace(v); id != "" {
			return id
		}
	}

	return strings.TrimSpace(r.Header.Get(portal.RequestIDHeader))
}

// getSentryLevel keeps expected client outcomes out of the alerting path.
func getSentryLevel(status int) sentry.Level {
	switch status {
	case http.StatusUnauthorized,
		http.StatusForbidden,
		http.StatusNotFound,
		http.StatusTooManyRequests:
		return sentry.LevelInfo
	default:
		return sentry.LevelError
	}
}
