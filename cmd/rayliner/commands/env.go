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

// appEnv bundles what every command needs: the resolved
// configuration, a booking server client, the credential store, and
// the structured logger.
type appEnv struct {
	config *config.Config
	client *bookingclient.Client
	store  *credential.Store
	logger *slog.Logger
}

// newEnv resolves configuration (flag path, then RAYLINER_CONFIG,
// then defaults) and constructs the shared command environment.
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

// userToken loads the stored user session, translating a missing
// session into an actionable auth error.
func (env *appEnv) userToken() (credential.UserToken, error) {
	token, err := env.store.LoadUser()
	if errors.Is(err, credential.ErrNoSession) {
		return credential.UserToken{}, cli.Auth("not logged in; run 'rayliner login' first")
	}
	if err != nil {
		return credential.UserToken{}, err
	}
	return token, nil
}

// optionalUserToken loads the stored user session if one exists. A
// missing session returns the zero token: booking works for guests.
func (env *appEnv) optionalUserToken() (credential.UserToken, error) {
	token, err := env.store.LoadUser()
	if errors.Is(err, credential.ErrNoSession) {
		return credential.UserToken{}, nil
	}
	if err != nil {
		return credential.UserToken{}, err
	}
	return token, nil
}
