package api

import (
	"encoding/json"
	"errors"
	"fmt"
	"strings"
)

// Error is a non-2xx service response. Detail carries the backend's
// human-readable message when the body included one.
type Error struct {
	StatusCode int
	Detail     string
}

// Error renders the response failure.
func (e *Error) Error() string {
	if e.Detail != "" {
		return fmt.Sprintf("service error (status %d): %s", e.StatusCode, e.Detail)
	}
	return fmt.Sprintf("service error (status %d)", e.StatusCode)
}

// errorFromResponse builds an Error from a response body, extracting the
// optional detail field.
func errorFromResponse(statusCode int, body []byte) *Error {
	var payload struct {
		Detail string `json:"detail"`
	}
	detail := ""
	if err := json.Unmarshal(body, &payload); err == nil {
		detail = strings.TrimSpace(payload.Detail)
	}
	return &Error{StatusCode: statusCode, Detail: detail}
}

// Message converts a request failure into a user-facing message. A service
// detail is surfaced verbatim; everything else falls back to the generic
// per-action message.
func Message(err error, fallback string) string {
	var svcErr *Error
	if errors.As(err, &svcErr) && svcErr.Detail != "" {
		return svcErr.Detail
	}
	return fallback
}
