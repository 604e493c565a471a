// Copyright 2026 The Rayliner Authors
// SPDX-License-Identifier: Apache-2.0

package bookingclient

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/rayliner-project/rayliner/lib/credential"
	"github.com/rayliner-project/rayliner/lib/secret"
)

// testBuffer creates a secret.Buffer from a string for testing. The
// buffer is automatically closed when the test completes.
func testBuffer(t *testing.T, value string) *secret.Buffer {
	t.Helper()
	buffer, err := secret.NewFromString(value)
	if err != nil {
		t.Fatalf("creating test buffer: %v", err)
	}
	t.Cleanup(func() { buffer.Close() })
	return buffer
}

// testUserToken wraps a string token in a UserToken for testing.
func testUserToken(t *testing.T, value string) credential.UserToken {
	t.Helper()
	return credential.NewUserToken(testBuffer(t, value))
}

// testClient starts an httptest server with the given handler and
// returns a client pointed at it. Both are torn down with the test.
func testClient(t *testing.T, handler http.HandlerFunc) *Client {
	t.Helper()
	server := httptest.NewServer(handler)
	t.Cleanup(server.Close)

	client, err := NewClient(ClientConfig{BaseURL: server.URL})
	if err != nil {
		t.Fatalf("NewClient failed: %v", err)
	}
	return client
}

func TestNewClient(t *testing.T) {
	t.Run("valid URL", func(t *testing.T) {
		client, err := NewClient(ClientConfig{BaseURL: "http://localhost:8081/api"})
		if err != nil {
			t.Fatalf("NewClient failed: %v", err)
		}
		if client == nil {
			t.Fatal("NewClient returned nil")
		}
	})

	t.Run("empty URL", func(t *testing.T) {
		_, err := NewClient(ClientConfig{})
		if err == nil {
			t.Fatal("expected error for empty URL")
		}
	})

	t.Run("trailing slash trimmed", func(t *testing.T) {
		client, err := NewClient(ClientConfig{BaseURL: "http://localhost:8081/api/"})
		if err != nil {
			t.Fatalf("NewClient failed: %v", err)
		}
		if client.baseURL != "http://localhost:8081/api" {
			t.Errorf("baseURL = %q, want trailing slash removed", client.baseURL)
		}
	})
}

// --- Request headers ---

func TestRequestHeaders(t *testing.T) {
	t.Run("session token attached when present", func(t *testing.T) {
		var gotToken string
		client := testClient(t, func(writer http.ResponseWriter, request *http.Request) {
			gotToken = request.Header.Get("Session-Token")
			json.NewEncoder(writer).Encode(Profile{Email: "ayse@example.com"})
		})

		_, err := client.Me(context.Background(), testUserToken(t, "tok-123"))
		if err != nil {
			t.Fatalf("Me failed: %v", err)
		}
		if gotToken != "tok-123" {
			t.Errorf("Session-Token = %q, want %q", gotToken, "tok-123")
		}
	})

	t.Run("no session token on unauthenticated requests", func(t *testing.T) {
		var hasToken bool
		client := testClient(t, func(writer http.ResponseWriter, request *http.Request) {
			_, hasToken = request.Header[http.CanonicalHeaderKey("Session-Token")]
			writer.Write([]byte("[]"))
		})

		if _, err := client.Stations(context.Background()); err != nil {
			t.Fatalf("Stations failed: %v", err)
		}
		if hasToken {
			t.Error("unauthenticated request carried a Session-Token header")
		}
	})

	t.Run("request ID set on every request", func(t *testing.T) {
		var requestIDs []string
		client := testClient(t, func(writer http.ResponseWriter, request *http.Request) {
			requestIDs = append(requestIDs, request.Header.Get("X-Request-Id"))
			writer.Write([]byte("[]"))
		})

		for range 2 {
			if _, err := client.Stations(context.Background()); err != nil {
				t.Fatalf("Stations failed: %v", err)
			}
		}
		if len(requestIDs) != 2 {
			t.Fatalf("expected 2 requests, got %d", len(requestIDs))
		}
		if requestIDs[0] == "" || requestIDs[1] == "" {
			t.Error("request ID missing")
		}
		if requestIDs[0] == requestIDs[1] {
			t.Error("request IDs repeated across requests")
		}
	})
}

// --- Error parsing ---

func TestAPIErrorParsing(t *testing.T) {
	tests := []struct {
		name        string
		status      int
		body        string
		wantMessage string
	}{
		{
			name:        "structured message object",
			status:      http.StatusConflict,
			body:        `{"message": "Seat is already booked"}`,
			wantMessage: "Seat is already booked",
		},
		{
			name:        "bare JSON string",
			status:      http.StatusBadRequest,
			body:        `"Invalid trip date"`,
			wantMessage: "Invalid trip date",
		},
		{
			name:        "plain text body",
			status:      http.StatusInternalServerError,
			body:        "something broke\n",
			wantMessage: "something broke",
		},
		{
			name:        "empty body falls back to status text",
			status:      http.StatusBadGateway,
			body:        "",
			wantMessage: "booking server returned 502 Bad Gateway",
		},
	}

	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			client := testClient(t, func(writer http.ResponseWriter, request *http.Request) {
				writer.WriteHeader(test.status)
				writer.Write([]byte(test.body))
			})

			_, err := client.Stations(context.Background())
			if err == nil {
				t.Fatal("expected error for non-2xx response")
			}
			apiErr, ok := asAPIError(err)
			if !ok {
				t.Fatalf("error is not an APIError: %v", err)
			}
			if apiErr.StatusCode != test.status {
				t.Errorf("StatusCode = %d, want %d", apiErr.StatusCode, test.status)
			}
			if apiErr.Error() != test.wantMessage {
				t.Errorf("Error() = %q, want %q", apiErr.Error(), test.wantMessage)
			}
		})
	}
}

func TestErrorPredicates(t *testing.T) {
	notFound := &APIError{StatusCode: http.StatusNotFound}
	unauthorized := &APIError{StatusCode: http.StatusUnauthorized}
	forbidden := &APIError{StatusCode: http.StatusForbidden}
	conflict := &APIError{StatusCode: http.StatusConflict}

	if !IsNotFound(notFound) {
		t.Error("IsNotFound(404) = false")
	}
	if IsNotFound(conflict) {
		t.Error("IsNotFound(409) = true")
	}
	if !IsUnauthorized(unauthorized) || !IsUnauthorized(forbidden) {
		t.Error("IsUnauthorized should cover both 401 and 403")
	}
	if IsUnauthorized(notFound) {
		t.Error("IsUnauthorized(404) = true")
	}
	if IsNotFound(nil) || IsUnauthorized(nil) {
		t.Error("predicates should be false for nil error")
	}
}

// --- Login ---

func TestLogin(t *testing.T) {
	t.Run("password travels in passwordHash field", func(t *testing.T) {
		var gotBody map[string]any
		client := testClient(t, func(writer http.ResponseWriter, request *http.Request) {
			if request.URL.Path != "/users/login" {
				t.Errorf("unexpected path: %s", request.URL.Path)
			}
			if err := json.NewDecoder(request.Body).Decode(&gotBody); err != nil {
				t.Fatalf("decoding request body: %v", err)
			}
			json.NewEncoder(writer).Encode(loginResponse{
				SessionToken: "session-abc",
				FullName:     "Ayşe Yılmaz",
				Email:        "ayse@example.com",
			})
		})

		result, err := client.Login(context.Background(), "ayse@example.com", testBuffer(t, "hunter2"))
		if err != nil {
			t.Fatalf("Login failed: %v", err)
		}
		t.Cleanup(func() { result.Token.Close() })

		if gotBody["email"] != "ayse@example.com" {
			t.Errorf("email = %v", gotBody["email"])
		}
		if gotBody["passwordHash"] != "hunter2" {
			t.Errorf("passwordHash = %v, want plain password", gotBody["passwordHash"])
		}
		if result.Token.Value() != "session-abc" {
			t.Errorf("token = %q, want %q", result.Token.Value(), "session-abc")
		}
		if result.FullName != "Ayşe Yılmaz" {
			t.Errorf("FullName = %q", result.FullName)
		}
	})

	t.Run("missing token in response", func(t *testing.T) {
		client := testClient(t, func(writer http.ResponseWriter, request *http.Request) {
			json.NewEncoder(writer).Encode(loginResponse{Message: "ok but no token"})
		})

		_, err := client.Login(context.Background(), "ayse@example.com", testBuffer(t, "hunter2"))
		if err == nil {
			t.Fatal("expected error when response carries no session token")
		}
	})

	t.Run("nil password rejected locally", func(t *testing.T) {
		client := testClient(t, func(writer http.ResponseWriter, request *http.Request) {
			t.Error("request should not reach the server")
		})

		if _, err := client.Login(context.Background(), "ayse@example.com", nil); err == nil {
			t.Fatal("expected error for nil password")
		}
	})
}

// asAPIError unwraps err to an *APIError if one is in the chain.
func asAPIError(err error) (*APIError, bool) {
	var apiErr *APIError
	if !errors.As(err, &apiErr) {
		return nil, false
	}
	return apiErr, true
}
