// Copyright 2026 The Rayliner Authors
// SPDX-License-Identifier: Apache-2.0

package bookingclient

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"strings"

	"github.com/rayliner-project/rayliner/lib/credential"
	"github.com/rayliner-project/rayliner/lib/secret"
)

// Profile is the account information behind a session, from the
// users/me and admin/me endpoints.
type Profile struct {
	ID       int64  `json:"id,omitempty"`
	FullName string `json:"fullName"`
	Email    string `json:"email"`
	Role     string `json:"role,omitempty"`
}

// LoginResult is a successful login: the issued session token plus
// the profile fields the server returns alongside it.
type LoginResult struct {
	Token    credential.UserToken
	FullName string
	Email    string
	Message  string
}

// loginResponse is the wire shape shared by the user and admin login
// endpoints.
type loginResponse struct {
	SessionToken string `json:"sessionToken"`
	FullName     string `json:"fullName"`
	Email        string `json:"email"`
	Message      string `json:"message"`
}

// Register creates a user account. The password travels in the
// "passwordHash" field — a misnomer fixed on the server's side of the
// contract, not ours; the value is the plain password and the server
// hashes it. Returns the server's confirmation message.
func (c *Client) Register(ctx context.Context, fullName, email string, password *secret.Buffer) (string, error) {
	if password == nil {
		return "", fmt.Errorf("bookingclient: password is required for registration")
	}

	// Password becomes a string only at the JSON boundary; the heap
	// copy lives for the duration of the call.
	request := map[string]any{
		"fullName":     fullName,
		"email":        email,
		"passwordHash": password.String(),
	}
	body, err := c.doRequest(ctx, http.MethodPost, "/users/register", "", request)
	if err != nil {
		return "", fmt.Errorf("bookingclient: registration failed: %w", err)
	}
	return messageFromBody(body), nil
}

// Login authenticates a user and returns the session token with the
// profile the server sends back. The password Buffer is read but not
// closed — the caller retains ownership.
func (c *Client) Login(ctx context.Context, email string, password *secret.Buffer) (*LoginResult, error) {
	if password == nil {
		return nil, fmt.Errorf("bookingclient: password is required for login")
	}

	request := map[string]any{
		"email":        email,
		"passwordHash": password.String(),
	}
	body, err := c.doRequest(ctx, http.MethodPost, "/users/login", "", request)
	if err != nil {
		return nil, fmt.Errorf("bookingclient: login failed: %w", err)
	}

	var response loginResponse
	if err := decode("login", body, &response); err != nil {
		return nil, err
	}
	if response.SessionToken == "" {
		return nil, fmt.Errorf("bookingclient: login response carried no session token")
	}

	buffer, err := secret.NewFromString(response.SessionToken)
	if err != nil {
		return nil, fmt.Errorf("bookingclient: storing session token: %w", err)
	}

	c.logger.Info("logged in", "email", response.Email)
	return &LoginResult{
		Token:    credential.NewUserToken(buffer),
		FullName: response.FullName,
		Email:    response.Email,
		Message:  response.Message,
	}, nil
}

// Logout invalidates a user session server-side. Callers treat a
// failure here as best-effort — log it and clear the local session
// anyway.
func (c *Client) Logout(ctx context.Context, token credential.UserToken) error {
	_, err := c.doRequest(ctx, http.MethodPost, "/users/logout", token.Value(), struct{}{})
	if err != nil {
		return fmt.Errorf("bookingclient: logout failed: %w", err)
	}
	return nil
}

// Me returns the profile behind a user session. An IsUnauthorized
// error means the session has expired and the stored token should be
// discarded.
func (c *Client) Me(ctx context.Context, token credential.UserToken) (Profile, error) {
	body, err := c.doRequest(ctx, http.MethodGet, "/users/me", token.Value(), nil)
	if err != nil {
		return Profile{}, fmt.Errorf("bookingclient: profile fetch failed: %w", err)
	}

	var profile Profile
	if err := decode("profile", body, &profile); err != nil {
		return Profile{}, err
	}
	return profile, nil
}

// messageFromBody extracts a human-readable message from endpoints
// that answer with either a bare string body or a JSON string.
func messageFromBody(body []byte) string {
	var quoted string
	if err := json.Unmarshal(body, &quoted); err == nil {
		return quoted
	}
	return strings.TrimSpace(string(body))
}
