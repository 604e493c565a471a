// Copyright 2026 The Rayliner Authors
// SPDX-License-Identifier: Apache-2.0

package bookingclient

import (
	"context"
	"fmt"
	"net/http"
	"net/url"
	"strconv"

	"github.com/rayliner-project/rayliner/lib/booking"
	"github.com/rayliner-project/rayliner/lib/credential"
)

// SearchTrips returns the trips serving a route on a travel date
// ("YYYY-MM-DD"). Unauthenticated. An empty result is a valid answer,
// not an error.
func (c *Client) SearchTrips(ctx context.Context, fromStationID, toStationID int64, date string) ([]booking.Trip, error) {
	query := url.Values{}
	query.Set("fromId", strconv.FormatInt(fromStationID, 10))
	query.Set("toId", strconv.FormatInt(toStationID, 10))
	query.Set("date", date)

	body, err := c.doRequest(ctx, http.MethodGet, "/trips/search", "", nil, query)
	if err != nil {
		return nil, fmt.Errorf("bookingclient: trip search failed: %w", err)
	}

	var trips []booking.Trip
	if err := decode("trip search", body, &trips); err != nil {
		return nil, err
	}
	return trips, nil
}

// Trips returns every trip. Used by the admin console's listings.
func (c *Client) Trips(ctx context.Context) ([]booking.Trip, error) {
	body, err := c.doRequest(ctx, http.MethodGet, "/trips/all", "", nil)
	if err != nil {
		return nil, fmt.Errorf("bookingclient: trip list failed: %w", err)
	}

	var trips []booking.Trip
	if err := decode("trips", body, &trips); err != nil {
		return nil, err
	}
	return trips, nil
}

// Trip returns one trip by ID.
func (c *Client) Trip(ctx context.Context, tripID int64) (booking.Trip, error) {
	body, err := c.doRequest(ctx, http.MethodGet, "/trips/"+strconv.FormatInt(tripID, 10), "", nil)
	if err != nil {
		return booking.Trip{}, fmt.Errorf("bookingclient: trip %d fetch failed: %w", tripID, err)
	}

	var trip booking.Trip
	if err := decode("trip", body, &trip); err != nil {
		return booking.Trip{}, err
	}
	return trip, nil
}

// CreateTripRequest is the admin trip-creation payload. Times are
// "HH:mm", the date "YYYY-MM-DD".
type CreateTripRequest struct {
	TripNumber         string  `json:"tripNumber"`
	DepartureStationID int64   `json:"departureStationId"`
	ArrivalStationID   int64   `json:"arrivalStationId"`
	TripDate           string  `json:"tripDate"`
	DepartureTime      string  `json:"departureTime"`
	ArrivalTime        string  `json:"arrivalTime"`
	BasePrice          float64 `json:"basePrice"`
}

// CreateTrip creates a trip. Admin only. The server provisions the
// trip's wagons and seats; the client never computes capacity.
func (c *Client) CreateTrip(ctx context.Context, token credential.AdminToken, request CreateTripRequest) (booking.Trip, error) {
	body, err := c.doRequest(ctx, http.MethodPost, "/trips/create", token.Value(), request)
	if err != nil {
		return booking.Trip{}, fmt.Errorf("bookingclient: trip create failed: %w", err)
	}

	var trip booking.Trip
	if err := decode("trip create", body, &trip); err != nil {
		return booking.Trip{}, err
	}
	return trip, nil
}

// DeleteTrip deletes a trip. Admin only.
func (c *Client) DeleteTrip(ctx context.Context, token credential.AdminToken, tripID int64) error {
	_, err := c.doRequest(ctx, http.MethodDelete, "/trips/"+strconv.FormatInt(tripID, 10), token.Value(), nil)
	if err != nil {
		return fmt.Errorf("bookingclient: trip %d delete failed: %w", tripID, err)
	}
	return nil
}
