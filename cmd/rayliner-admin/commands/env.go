// Copyright 2026 The Rayliner Authors
// SPDX-License-Identifier: Apache-2.0

package commands

import (
	"errors"
	"log/slog"
	"net/http"

	"github.com/rayliner-project/rayliner/lib/bookingclient"
	"github.com/rayliner-project/rayliner/lib/cli"
	"github.com/rayliner-project/rayliner/lib/config"
	"github.com/rayliner-project/rayliner/lib/credential"
)

// appEnv bundles the shared command dependencies. It mirrors the user
// console's environment but authenticates from the admin credential
// namespace.
type appEnv struct {
	config *config.Config
	client *bookingclient.Client
	store  *credential.Store
	logger *slog.Logger
}

func newEnv(configPath string) (*appEnv, error) {
	resolved, err := config.Load(configPath)
	if err != nil {
		return nil, err
	}

	logger := cli.NewCommandLogger()
	client, err := bookingclient.NewClient(bookingclient.ClientConfig{
		BaseURL:    resolved.Server.URL,
		HTTPClient: &http.Client{Timeout: resolved.Timeout()},
		Logger:     logger,
	})
	if err != nil {
		return nil, err
	}

	return &appEnv{
		config: resolved,
		client: client,
		store:  credential.NewStore(resolved.Paths.State),
		logger: logger,
	}, nil
}

// adminToken loads the stored admin session, translating a missing
// session into an actionable auth error.
func (env *appEnv) adminToken() (credential.AdminToken, error) {
	token, err := env.store.LoadAdmin()
	if errors.Is(err, credential.ErrNoSession) {
		return credential.AdminToken{}, cli.Auth("not logged in; run 'rayliner-admin login' first")
	}
	if err != nil {
		return credential.AdminToken{}, err
	}
	return token, nil
}
