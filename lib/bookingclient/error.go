// Copyright 2026 The Rayliner Authors
// SPDX-License-Identifier: Apache-2.0

package bookingclient

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"strings"
)

// APIError is a non-2xx response from the booking server. Message is
// the server's own wording, surfaced verbatim: the server answers
// some failures with a bare string body and others with a
// {"message": ...} object, and both are preserved unchanged so the
// user sees exactly what the server said.
type APIError struct {
	// StatusCode is the HTTP status of the response.
	StatusCode int
	// Message is the server's error text. Empty only when the server
	// sent an empty body, in which case Error falls back to the
	// status text.
	Message string
}

func (e *APIError) Error() string {
	if e.Message != "" {
		return e.Message
	}
	return fmt.Sprintf("booking server returned %d %s",
		e.StatusCode, http.StatusText(e.StatusCode))
}

// IsNotFound reports whether err is an APIError with status 404.
func IsNotFound(err error) bool {
	var apiErr *APIError
	return errors.As(err, &apiErr) && apiErr.StatusCode == http.StatusNotFound
}

// IsUnauthorized reports whether err is an APIError with status 401
// or 403 — an expired or missing session.
func IsUnauthorized(err error) bool {
	var apiErr *APIError
	return errors.As(err, &apiErr) &&
		(apiErr.StatusCode == http.StatusUnauthorized || apiErr.StatusCode == http.StatusForbidden)
}

// parseAPIError extracts the server's message from an error response
// body. Tries the structured {"message": ...} shape first, then a
// JSON string, then falls back to the raw body text.
func parseAPIError(statusCode int, body []byte) *APIError {
	text := strings.TrimSpace(string(body))

	var structured struct {
		Message string `json:"message"`
	}
	if err := json.Unmarshal(body, &structured); err == nil && structured.Message != "" {
		return &APIError{StatusCode: statusCode, Message: structured.Message}
	}

	var plain string
	if err := json.Unmarshal(body, &plain); err == nil && plain != "" {
		return &APIError{StatusCode: statusCode, Message: plain}
	}

	return &APIError{StatusCode: statusCode, Message: text}
}
