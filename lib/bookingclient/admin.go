// Copyright 2026 The Rayliner Authors
// SPDX-License-Identifier: Apache-2.0

package bookingclient

import (
	"context"
	"fmt"
	"net/http"

	"github.com/rayliner-project/rayliner/lib/credential"
	"github.com/rayliner-project/rayliner/lib/secret"
)

// AdminLoginResult is a successful admin login. The token lives in
// the admin namespace; it is useless against user-session endpoints
// and the type system keeps it away from them.
type AdminLoginResult struct {
	Token    credential.AdminToken
	FullName string
	Email    string
	Message  string
}

// AdminLogin authenticates against the admin session namespace.
func (c *Client) AdminLogin(ctx context.Context, email string, password *secret.Buffer) (*AdminLoginResult, error) {
	if password == nil {
		return nil, fmt.Errorf("bookingclient: password is required for admin login")
	}

	request := map[string]any{
		"email":        email,
		"passwordHash": password.String(),
	}
	body, err := c.doRequest(ctx, http.MethodPost, "/admin/login", "", request)
	if err != nil {
		return nil, fmt.Errorf("bookingclient: admin login failed: %w", err)
	}

	var response loginResponse
	if err := decode("admin login", body, &response); err != nil {
		return nil, err
	}
	if response.SessionToken == "" {
		return nil, fmt.Errorf("bookingclient: admin login response carried no session token")
	}

	buffer, err := secret.NewFromString(response.SessionToken)
	if err != nil {
		return nil, fmt.Errorf("bookingclient: storing admin session token: %w", err)
	}

	c.logger.Info("admin logged in", "email", response.Email)
	return &AdminLoginResult{
		Token:    credential.NewAdminToken(buffer),
		FullName: response.FullName,
		Email:    response.Email,
		Message:  response.Message,
	}, nil
}

// AdminLogout invalidates an admin session. Best-effort, like Logout.
func (c *Client) AdminLogout(ctx context.Context, token credential.AdminToken) error {
	_, err := c.doRequest(ctx, http.MethodPost, "/admin/logout", token.Value(), struct{}{})
	if err != nil {
		return fmt.Errorf("bookingclient: admin logout failed: %w", err)
	}
	return nil
}

// AdminMe returns the profile behind an admin session.
func (c *Client) AdminMe(ctx context.Context, token credential.AdminToken) (Profile, error) {
	body, err := c.doRequest(ctx, http.MethodGet, "/admin/me", token.Value(), nil)
	if err != nil {
		return Profile{}, fmt.Errorf("bookingclient: admin profile fetch failed: %w", err)
	}

	var profile Profile
	if err := decode("admin profile", body, &profile); err != nil {
		return Profile{}, err
	}
	return profile, nil
}
