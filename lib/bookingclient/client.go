// Copyright 2026 The Rayliner Authors
// SPDX-License-Identifier: Apache-2.0

package bookingclient

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"net/url"
	"strings"

	"github.com/google/uuid"
)

// sessionTokenHeader carries the opaque session token on
// authenticated requests, in both the user and admin namespaces.
const sessionTokenHeader = "Session-Token"

// requestIDHeader carries a per-request UUID for log correlation
// between client and server.
const requestIDHeader = "X-Request-Id"

// maxResponseBytes bounds response reads. Seat maps for long trains
// are the largest payload and stay well under this.
const maxResponseBytes = 4 << 20

// ClientConfig holds configuration for creating a Client.
type ClientConfig struct {
	// BaseURL is the booking server's API root, including the API
	// prefix (e.g., "http://localhost:8081/api").
	BaseURL string
	// HTTPClient is used for all requests. If nil, http.DefaultClient
	// is used. Set a timeout on it — the client adds none of its own.
	HTTPClient *http.Client
	// Logger is used for structured logging. If nil, slog.Default()
	// is used.
	Logger *slog.Logger
}

// Client talks to the booking server. It is safe for concurrent use,
// though the TUI only ever issues one request at a time.
type Client struct {
	baseURL    string
	httpClient *http.Client
	logger     *slog.Logger
}

// NewClient creates a booking server client.
func NewClient(config ClientConfig) (*Client, error) {
	if config.BaseURL == "" {
		return nil, fmt.Errorf("bookingclient: BaseURL is required")
	}
	// Validate URL structure up front; request URLs are built by
	// direct concatenation onto the trimmed base.
	if _, err := url.Parse(config.BaseURL); err != nil {
		return nil, fmt.Errorf("bookingclient: invalid BaseURL %q: %w", config.BaseURL, err)
	}

	httpClient := config.HTTPClient
	if httpClient == nil {
		httpClient = http.DefaultClient
	}
	logger := config.Logger
	if logger == nil {
		logger = slog.Default()
	}

	return &Client{
		baseURL:    strings.TrimRight(config.BaseURL, "/"),
		httpClient: httpClient,
		logger:     logger,
	}, nil
}

// CloseIdleConnections closes idle HTTP connections in the transport's
// pool. Useful after a network disruption to avoid reusing a poisoned
// connection.
func (c *Client) CloseIdleConnections() {
	c.httpClient.CloseIdleConnections()
}

// doRequest performs an HTTP request and returns the response body.
// token is the raw session token for the Session-Token header; pass ""
// for unauthenticated endpoints. Non-2xx responses return the body
// alongside a *APIError so callers can still inspect structured error
// payloads.
func (c *Client) doRequest(ctx context.Context, method, path, token string, requestBody any, query ...url.Values) ([]byte, error) {
	requestURL := c.baseURL + path
	if len(query) > 0 && query[0] != nil {
		requestURL += "?" + query[0].Encode()
	}

	var bodyReader io.Reader
	if requestBody != nil {
		encoded, err := json.Marshal(requestBody)
		if err != nil {
			return nil, fmt.Errorf("bookingclient: failed to encode request body: %w", err)
		}
		bodyReader = bytes.NewReader(encoded)
	}

	request, err := http.NewRequestWithContext(ctx, method, requestURL, bodyReader)
	if err != nil {
		return nil, fmt.Errorf("bookingclient: failed to create request: %w", err)
	}

	if requestBody != nil {
		request.Header.Set("Content-Type", "application/json")
	}
	if token != "" {
		request.Header.Set(sessionTokenHeader, token)
	}

	requestID := uuid.NewString()
	request.Header.Set(requestIDHeader, requestID)

	response, err := c.httpClient.Do(request)
	if err != nil {
		return nil, fmt.Errorf("bookingclient: request to %s %s failed: %w", method, path, err)
	}
	defer response.Body.Close()

	responseBody, err := io.ReadAll(io.LimitReader(response.Body, maxResponseBytes))
	if err != nil {
		return nil, fmt.Errorf("bookingclient: failed to read response body: %w", err)
	}

	if response.StatusCode >= 200 && response.StatusCode < 300 {
		return responseBody, nil
	}

	apiErr := parseAPIError(response.StatusCode, responseBody)
	c.logger.Debug("booking server rejected request",
		"method", method,
		"path", path,
		"status", response.StatusCode,
		"request_id", requestID,
	)
	return responseBody, apiErr
}

// decode unmarshals a response body into out, wrapping parse failures
// with the endpoint name for context.
func decode(endpoint string, body []byte, out any) error {
	if err := json.Unmarshal(body, out); err != nil {
		return fmt.Errorf("bookingclient: failed to parse %s response: %w", endpoint, err)
	}
	return nil
}
