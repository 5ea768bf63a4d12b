package handler

import (
	baseHttp "net/http"
	"time"

	"github.com/paragon0107/notive/handler/payload"
	"github.com/paragon0107/notive/pkg/endpoint"
	"github.com/paragon0107/notive/pkg/scheduler"
)

// WarmReporter exposes the outcome of the latest cache warm-up.
type WarmReporter interface {
	LastResult() (scheduler.Result, bool)
}

type PingHandler struct {
	warmer WarmReporter
}

// MakePingHandler builds the liveness handler. warmer may be nil when no
// warm-up schedule is configured.
func MakePingHandler(warmer WarmReporter) PingHandler {
	return PingHandler{warmer: warmer}
}

func (h PingHandler) Handle(w baseHttp.ResponseWriter, r *baseHttp.Request) *endpoint.ApiError {
	now := time.Now().UTC()

	data := payload.PingResponse{
		Message: "pong",
		Date:    now.Format(time.DateOnly),
		Time:    now.Format(time.TimeOnly),
		Warmer:  h.warmStatus(),
	}

	if err := endpoint.NewNoCacheResponse(w, r).RespondOk(data); err != nil {
		return endpoint.LogInternalError("could not encode ping response", err)
	}

	return nil
}

func (h PingHandler) warmStatus() *payload.WarmStatus {
	if h.warmer == nil {
		return nil
	}

	result, ok := h.warmer.LastResult()
	if !ok {
		return nil
	}

	status := &payload.WarmStatus{
		StartedAt:  result.StartedAt.UTC().Format(time.RFC3339),
		DurationMS: result.Duration.Milliseconds(),
		OK:         result.Err == nil,
	}

	if result.Err != nil {
		status.Error = result.Err.Error()
	}

	return status
}
