// Copyright 2026 The Rayliner Authors
// SPDX-License-Identifier: Apache-2.0

// Package bookingui implements the interactive booking flow as a
// bubbletea model: trip list, seat selection on the wagon's corridor
// layout, passenger and payment capture, and the PNR result screen.
//
// The same model serves three modes. Book is the full pipeline from
// trip pick to payment. Change re-seats an existing ticket: passenger
// fields are locked to the original booking and confirmation hits the
// change endpoint, skipping payment. Inspect is the admin console's
// read-only occupancy view — no selection, no forms, just the map.
//
// All server state arrives through lib/bookingclient; this package
// never mutates seat availability, it only reflects what the server
// last reported and refreshes after every completed booking mutation.
package bookingui
