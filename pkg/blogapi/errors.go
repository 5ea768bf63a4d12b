package blogapi

import (
	"encoding/json"
	"errors"
	"strings"

	"github.com/paragon0107/notive/pkg/portal"
)

const defaultErrorMessage = "Request failed."

var ErrEmptySlug = errors.New("blogapi: empty slug")

// RequestError carries the message the server put in its error body.
type RequestError struct {
	Status  int
	Message string
}

func (e *RequestError) Error() string {
	return e.Message
}

func newRequestError(resp portal.Response) *RequestError {
	var body struct {
		Message string `json:"message"`
	}

	message := defaultErrorMessage
	if err := json.Unmarshal(resp.Body, &body); err == nil && strings.TrimSpace(body.Message) != "" {
		message = body.Message
	}

	return &RequestError{Status: resp.Status, Message: message}
}
