// Copyright 2026 The Rayliner Authors
// SPDX-License-Identifier: Apache-2.0

// Package booking holds the domain model for the train booking client:
// stations, trips, wagons, seats, and bookings as the server presents
// them, plus the purely client-side workflow state — the corridor seat
// layout, the single-seat selection machine, and the booking/change
// intent that travels from seat selection to payment.
//
// Everything here is ephemeral client state or a read-only copy of
// server state. Seat availability is never mutated locally; the client
// optimistically assumes a selected seat stays available until the
// server accepts or rejects the booking.
package booking
