// Copyright 2026 The Rayliner Authors
// SPDX-License-Identifier: Apache-2.0

// Package ticketdoc renders a booking as shareable artifacts: a PDF
// e-ticket with an embedded PNR QR code, and a QR block printable
// straight to the terminal. The PNR alone retrieves a booking without
// authentication, so the QR payload is just the code.
package ticketdoc
