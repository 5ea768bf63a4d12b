package handler

import (
	"encoding/json"
	"errors"
	"log/slog"
	baseHttp "net/http"
	"time"

	"github.com/paragon0107/notive/content"
	"github.com/paragon0107/notive/pkg/endpoint"
	"github.com/paragon0107/notive/pkg/portal"
)

const loadFailedMessage = "Failed to load blog data."

// respondShared writes payload with shared cache headers and an ETag derived
// from the encoded body, answering 304 when the client already holds it.
func respondShared(w baseHttp.ResponseWriter, r *baseHttp.Request, ttl time.Duration, payload any) *endpoint.ApiError {
	body, err := json.Marshal(payload)
	if err != nil {
		return endpoint.LogInternalError("There was an issue processing the response. Please, try later.", err)
	}

	resp := endpoint.NewSharedCacheResponse(portal.Sha256Hex(body), ttl, w, r)

	if resp.HasCache() {
		resp.RespondWithNotModified()

		return nil
	}

	if err := resp.RespondRaw(append(body, '\n')); err != nil {
		slog.Error("failed to write response", "err", err)
	}

	return nil
}

// loadError maps a repository failure onto the API error envelope. Workspace
// configuration problems keep their message so the operator can fix them.
func loadError(err error) *endpoint.ApiError {
	var missing *content.MissingCollectionsError
	var mismatch *content.SchemaMismatchError

	switch {
	case errors.As(err, &missing), errors.As(err, &mismatch):
		return endpoint.LogInternalError(err.Error(), err)
	default:
		return endpoint.LogInternalError(loadFailedMessage, err)
	}
}
