// Copyright 2026 The Rayliner Authors
// SPDX-License-Identifier: Apache-2.0

package bookingclient

import (
	"context"
	"fmt"
	"net/http"
	"strconv"

	"github.com/rayliner-project/rayliner/lib/booking"
	"github.com/rayliner-project/rayliner/lib/credential"
)

// CreateBookingRequest is the create-booking payload: the handoff
// bundle from seat selection plus the raw payment fields. The card
// data passes through unmodified; the server (and whatever payment
// processor sits behind it) is the authority on card validity.
type CreateBookingRequest struct {
	TripID           int64               `json:"tripId"`
	SeatID           int64               `json:"seatId"`
	PassengerName    string              `json:"passengerName"`
	PassengerSurname string              `json:"passengerSurname"`
	WagonNumber      int                 `json:"wagonNumber"`
	SeatNumber       int                 `json:"seatNumber"`
	PaymentDetails   booking.CardDetails `json:"paymentDetails"`
}

// NewCreateBookingRequest assembles the request from a confirmed
// handoff and validated card details.
func NewCreateBookingRequest(handoff booking.Handoff, card booking.CardDetails) CreateBookingRequest {
	return CreateBookingRequest{
		TripID:           handoff.TripID,
		SeatID:           handoff.Seat.SeatID,
		PassengerName:    handoff.PassengerName,
		PassengerSurname: handoff.PassengerSurname,
		WagonNumber:      handoff.Seat.WagonNumber,
		SeatNumber:       handoff.Seat.SeatNumber,
		PaymentDetails:   card,
	}
}

// CreateBooking submits a booking. On success the returned booking
// carries the server-assigned PNR code. The session token is optional
// — guests may book — so this takes the token by value and tolerates
// an invalid one. No idempotency key is attached: a user-initiated
// resubmission after a network failure can double-book, and the
// server is expected to reject the duplicate seat.
func (c *Client) CreateBooking(ctx context.Context, token credential.UserToken, request CreateBookingRequest) (booking.Booking, error) {
	body, err := c.doRequest(ctx, http.MethodPost, "/bookings/create", token.Value(), request)
	if err != nil {
		return booking.Booking{}, fmt.Errorf("bookingclient: booking create failed: %w", err)
	}

	var created booking.Booking
	if err := decode("booking create", body, &created); err != nil {
		return booking.Booking{}, err
	}
	if created.PNRCode == "" {
		return booking.Booking{}, fmt.Errorf("bookingclient: booking response carried no PNR code")
	}
	return created, nil
}

// BookingByPNR looks a booking up by its PNR code. Unauthenticated —
// the PNR itself is the retrieval key.
func (c *Client) BookingByPNR(ctx context.Context, pnrCode string) (booking.Booking, error) {
	body, err := c.doRequest(ctx, http.MethodGet, "/bookings/"+pnrCode, "", nil)
	if err != nil {
		return booking.Booking{}, fmt.Errorf("bookingclient: PNR %s lookup failed: %w", pnrCode, err)
	}

	var found booking.Booking
	if err := decode("PNR lookup", body, &found); err != nil {
		return booking.Booking{}, err
	}
	return found, nil
}

// MyTickets returns the session user's bookings, newest first as the
// server orders them.
func (c *Client) MyTickets(ctx context.Context, token credential.UserToken) ([]booking.Booking, error) {
	body, err := c.doRequest(ctx, http.MethodGet, "/bookings/user/my-tickets", token.Value(), nil)
	if err != nil {
		return nil, fmt.Errorf("bookingclient: ticket list failed: %w", err)
	}

	var tickets []booking.Booking
	if err := decode("tickets", body, &tickets); err != nil {
		return nil, err
	}
	return tickets, nil
}

// CancelBooking cancels a booking by its ID. The booking transitions
// to CANCELLED server-side; it is never deleted.
func (c *Client) CancelBooking(ctx context.Context, token credential.UserToken, bookingID int64) error {
	_, err := c.doRequest(ctx, http.MethodDelete, "/bookings/"+strconv.FormatInt(bookingID, 10)+"/cancel", token.Value(), nil)
	if err != nil {
		return fmt.Errorf("bookingclient: booking %d cancel failed: %w", bookingID, err)
	}
	return nil
}

// ChangeBooking re-seats an existing booking. The payload carries only
// the new placement — passenger identity is not part of a change.
func (c *Client) ChangeBooking(ctx context.Context, token credential.UserToken, change booking.ChangeRequest) (booking.Booking, error) {
	request := map[string]any{
		"newTripId": change.NewTripID,
		"newSeatId": change.NewSeatID,
	}
	body, err := c.doRequest(ctx, http.MethodPut, "/bookings/"+strconv.FormatInt(change.TicketID, 10)+"/change", token.Value(), request)
	if err != nil {
		return booking.Booking{}, fmt.Errorf("bookingclient: booking %d change failed: %w", change.TicketID, err)
	}

	var changed booking.Booking
	if err := decode("booking change", body, &changed); err != nil {
		return booking.Booking{}, err
	}
	return changed, nil
}
