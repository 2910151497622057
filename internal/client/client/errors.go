package client

import (
	"encoding/json"
	"errors"
	"strings"
)

var (
	ErrUnavailable  = errors.New("server unavailable")
	ErrUnauthorized = errors.New("unauthorized")
	ErrNoToken      = errors.New("login response carried no access token")
)

// DefaultFailureMessage is used when a failed response has no usable body
// and the caller supplied no fallback.
const DefaultFailureMessage = "Request failed"

// RequestFailedError is returned for any non-2xx, non-401 response.
// Message is meant to be shown to the user as is.
type RequestFailedError struct {
	StatusCode int
	Message    string
}

func (e *RequestFailedError) Error() string {
	return e.Message
}

// errorMessage extracts a user-facing message from a failed response body:
// a JSON "message" field (lists are joined with ", "), else the raw text,
// else fallback.
func errorMessage(body []byte, fallback string) string {
	var payload struct {
		Message json.RawMessage `json:"message"`
	}
	if err := json.Unmarshal(body, &payload); err == nil && len(payload.Message) > 0 {
		var list []string
		if err := json.Unmarshal(payload.Message, &list); err == nil && len(list) > 0 {
			return strings.Join(list, ", ")
		}
		var msg string
		if err := json.Unmarshal(payload.Message, &msg); err == nil && msg != "" {
			return msg
		}
	}

	if text := strings.TrimSpace(string(body)); text != "" {
		return text
	}
	if fallback != "" {
		return fallback
	}
	return DefaultFailureMessage
}
