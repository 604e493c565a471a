// Copyright 2026 The Rayliner Authors
// SPDX-License-Identifier: Apache-2.0

// Package bookingclient is the REST client for the booking server.
//
// One Client instance holds the base URL and HTTP transport and is
// shared across all calls. Authenticated endpoints take a typed
// session token (credential.UserToken or credential.AdminToken) so
// the two token namespaces cannot be conflated at a call site; the
// token travels in the Session-Token header.
//
// Non-2xx responses become a typed *APIError carrying the server's
// message verbatim — the server responds with either a bare string or
// a {"message": ...} object, and both are surfaced unchanged. The
// client never retries and attaches no idempotency key; a user
// re-submitting after a network failure can double-book, and the
// server is the one expected to reject the duplicate.
//
// The seats endpoint's dynamically keyed payload ({"wagons": [...],
// "wagon_1": [...], ...}) is decoded into an explicit
// booking.SeatMap here, at the wire boundary, so the rest of the
// client never constructs string keys from wagon numbers.
package bookingclient
