package notion

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
)

// APIError is the error envelope returned by the upstream API.
type APIError struct {
	Status  int    `json:"status"`
	Code    string `json:"code"`
	Message string `json:"message"`
}

func (e *APIError) Error() string {
	return fmt.Sprintf("notion: %s (status %d, code %s)", e.Message, e.Status, e.Code)
}

func (e *APIError) IsRateLimited() bool {
	return e.Status == http.StatusTooManyRequests || e.Code == "rate_limited"
}

func (e *APIError) IsNotFound() bool {
	return e.Status == http.StatusNotFound || e.Code == "object_not_found"
}

func IsRateLimited(err error) bool {
	var apiErr *APIError

	return errors.As(err, &apiErr) && apiErr.IsRateLimited()
}

func IsNotFound(err error) bool {
	var apiErr *APIError

	return errors.As(err, &apiErr) && apiErr.IsNotFound()
}

func decodeError(status int, body []byte) error {
	apiErr := &APIError{Status: status}

	if err := json.Unmarshal(body, apiErr); err != nil || apiErr.Message == "" {
		apiErr.Message = http.StatusText(status)
	}

	apiErr.Status = status

	return apiErr
}
