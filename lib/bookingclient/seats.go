// Copyright 2026 The Rayliner Authors
// SPDX-License-Identifier: Apache-2.0

package bookingclient

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"strconv"

	"github.com/rayliner-project/rayliner/lib/booking"
)

// TripSeats fetches a trip's full seating inventory. Unauthenticated.
//
// The server's payload keys each wagon's seat list by a constructed
// field name:
//
//	{"wagons": [{"wagonNumber": 1, ...}, ...],
//	 "wagon_1": [{"id": 1, "seatNumber": 1, "isAvailable": true}, ...],
//	 "wagon_2": [...]}
//
// This is the only place that string key is ever built. The decoded
// SeatMap indexes seats by wagon number, so everything above this call
// works with ints. A wagon listed without a matching wagon_N key gets
// an empty seat list, which renders as an empty layout.
func (c *Client) TripSeats(ctx context.Context, tripID int64) (*booking.SeatMap, error) {
	body, err := c.doRequest(ctx, http.MethodGet, "/seats/trip/"+strconv.FormatInt(tripID, 10), "", nil)
	if err != nil {
		return nil, fmt.Errorf("bookingclient: seats for trip %d failed: %w", tripID, err)
	}
	return decodeSeatMap(body)
}

func decodeSeatMap(body []byte) (*booking.SeatMap, error) {
	var fields map[string]json.RawMessage
	if err := json.Unmarshal(body, &fields); err != nil {
		return nil, fmt.Errorf("bookingclient: failed to parse seats response: %w", err)
	}

	seatMap := &booking.SeatMap{Seats: make(map[int][]booking.Seat)}

	if raw, ok := fields["wagons"]; ok {
		if err := json.Unmarshal(raw, &seatMap.Wagons); err != nil {
			return nil, fmt.Errorf("bookingclient: failed to parse wagon list: %w", err)
		}
	}

	for _, wagon := range seatMap.Wagons {
		raw, ok := fields["wagon_"+strconv.Itoa(wagon.WagonNumber)]
		if !ok {
			continue
		}
		var seats []booking.Seat
		if err := json.Unmarshal(raw, &seats); err != nil {
			return nil, fmt.Errorf("bookingclient: failed to parse seats for wagon %d: %w", wagon.WagonNumber, err)
		}
		seatMap.Seats[wagon.WagonNumber] = seats
	}

	return seatMap, nil
}
