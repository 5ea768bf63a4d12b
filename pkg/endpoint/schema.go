package endpoint

import "net/http"

type ErrorResponse struct {
	Message   string         `json:"message"`
	Status    int            `json:"status"`
	Data      map[string]any `json:"data,omitempty"`
	RequestID string         `json:"request_id,omitempty"`
}

type ApiError struct {
	Message string         `json:"message"`
	Status  int            `json:"status"`
	Data    map[string]any `json:"data,omitempty"`
	Err     error          `json:"-"`
}

func (e *ApiError) Error() string {
	if e == nil {
		return "Internal Server Error"
	}

	return e.Message
}

func (e *ApiError) Unwrap() error {
	if e == nil {
		return nil
	}

	return e.Err
}

type ApiHandler func(http.ResponseWriter, *http.Request) *ApiError

type Middleware func(ApiHandler) ApiHandler
