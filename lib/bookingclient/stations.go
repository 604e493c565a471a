// Copyright 2026 The Rayliner Authors
// SPDX-License-Identifier: Apache-2.0

package bookingclient

import (
	"context"
	"fmt"
	"net/http"

	"github.com/rayliner-project/rayliner/lib/booking"
	"github.com/rayliner-project/rayliner/lib/credential"
)

// Stations returns every station, for route pickers and name
// resolution. Unauthenticated.
func (c *Client) Stations(ctx context.Context) ([]booking.Station, error) {
	body, err := c.doRequest(ctx, http.MethodGet, "/stations/all", "", nil)
	if err != nil {
		return nil, fmt.Errorf("bookingclient: station list failed: %w", err)
	}

	var stations []booking.Station
	if err := decode("stations", body, &stations); err != nil {
		return nil, err
	}
	return stations, nil
}

// CreateStationRequest is the admin station-creation payload.
type CreateStationRequest struct {
	Name string `json:"name"`
	City string `json:"city"`
	Code string `json:"code"`
}

// CreateStation creates a station. Admin only.
func (c *Client) CreateStation(ctx context.Context, token credential.AdminToken, request CreateStationRequest) (booking.Station, error) {
	body, err := c.doRequest(ctx, http.MethodPost, "/stations/create", token.Value(), request)
	if err != nil {
		return booking.Station{}, fmt.Errorf("bookingclient: station create failed: %w", err)
	}

	var station booking.Station
	if err := decode("station create", body, &station); err != nil {
		return booking.Station{}, err
	}
	return station, nil
}
