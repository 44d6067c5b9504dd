package api

import (
	"encoding/json"
	"errors"
	"net/http"
	"strings"
)

// APIError is a non-2xx response. Message is the backend's {"message"}
// verbatim, or "Failed to <verb> <noun>" when the body carried none.
type APIError struct {
	Status  int
	Message string
}

func (e *APIError) Error() string {
	return e.Message
}

var verbs = map[string]string{
	"list":   "fetch",
	"create": "create",
	"update": "update",
	"delete": "delete",
}

func newAPIError(status int, op, noun string, body []byte) *APIError {
	var payload struct {
		Message string `json:"message"`
		Error   string `json:"error"`
	}
	if json.Unmarshal(body, &payload) == nil {
		if msg := strings.TrimSpace(payload.Message); msg != "" {
			return &APIError{Status: status, Message: msg}
		}
		if msg := strings.TrimSpace(payload.Error); msg != "" {
			return &APIError{Status: status, Message: msg}
		}
	}
	verb := verbs[op]
	if verb == "" {
		verb = op
	}
	return &APIError{Status: status, Message: "Failed to " + verb + " " + noun}
}

// IsNotFound reports whether err is a 404 from the backend.
func IsNotFound(err error) bool {
	var apiErr *APIError
	return errors.As(err, &apiErr) && apiErr.Status == http.StatusNotFound
}

// IsUnauthorized reports whether the backend rejected the token.
func IsUnauthorized(err error) bool {
	var apiErr *APIError
	return errors.As(err, &apiErr) &&
		(apiErr.Status == http.StatusUnauthorized || apiErr.Status == http.StatusForbidden)
}
