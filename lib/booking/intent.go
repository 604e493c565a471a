// Copyright 2026 The Rayliner Authors
// SPDX-License-Identifier: Apache-2.0

package booking

import "errors"

// IntentKind discriminates what a seat-selection session is for.
type IntentKind int

const (
	// IntentNew is a fresh booking: the user supplies passenger
	// details and proceeds to payment.
	IntentNew IntentKind = iota
	// IntentChange re-seats an existing booking: passenger identity
	// is fixed by the original ticket and confirmation hits the
	// change endpoint instead of creating a booking.
	IntentChange
)

// Intent is the tagged variant carried through a seat-selection
// session. Exactly one of the two shapes is active at a time — a
// session is either creating a booking or changing one, never both
// and never neither. Constructing it through NewBookingIntent or
// ChangeTicketIntent keeps the invariant structural.
//
// An Intent is transient by design: it lives in the TUI model for one
// session and is consumed (or discarded) when the flow completes. It
// is never persisted, so an interrupted session simply starts over.
type Intent struct {
	kind IntentKind

	// Passenger identity. For IntentNew these are user input; for
	// IntentChange they are pre-filled from the original booking and
	// immutable.
	passengerName    string
	passengerSurname string

	// original is the booking being re-seated. Nil unless kind is
	// IntentChange.
	original *Booking
}

// NewBookingIntent starts a fresh booking session with empty passenger
// fields.
func NewBookingIntent() *Intent {
	return &Intent{kind: IntentNew}
}

// ChangeTicketIntent starts a change session for an existing booking.
// The passenger fields are snapshotted from the booking and locked.
func ChangeTicketIntent(original Booking) *Intent {
	return &Intent{
		kind:             IntentChange,
		passengerName:    original.PassengerName,
		passengerSurname: original.PassengerSurname,
		original:         &original,
	}
}

// Kind returns the intent discriminant.
func (i *Intent) Kind() IntentKind { return i.kind }

// Passenger returns the current passenger name and surname.
func (i *Intent) Passenger() (name, surname string) {
	return i.passengerName, i.passengerSurname
}

// SetPassenger updates the passenger fields. Rejected for change
// intents: a ticket change reassigns the seat, not the passenger.
func (i *Intent) SetPassenger(name, surname string) error {
	if i.kind == IntentChange {
		return errors.New("booking: passenger identity is fixed for a ticket change")
	}
	i.passengerName = name
	i.passengerSurname = surname
	return nil
}

// Original returns the booking being changed. Nil for new-booking
// intents.
func (i *Intent) Original() *Booking {
	return i.original
}

// Handoff is the opaque bundle passed from seat selection to the
// payment step for a new booking. It is a single transient transfer:
// not queryable, not durable, gone if the session ends.
type Handoff struct {
	TripID           int64
	Seat             SelectedSeat
	PassengerName    string
	PassengerSurname string
}

// Errors returned by ConfirmHandoff and ConfirmChange when the session
// is not in a state that may proceed.
var (
	// ErrNoSeatSelected blocks confirmation while nothing is selected.
	ErrNoSeatSelected = errors.New("booking: no seat selected")
	// ErrPassengerIncomplete blocks a new booking until both passenger
	// fields are non-empty.
	ErrPassengerIncomplete = errors.New("booking: passenger name and surname are required")
	// ErrWrongIntent is returned when a confirmation is asked of the
	// other intent kind.
	ErrWrongIntent = errors.New("booking: operation does not match the active intent")
)

// ConfirmHandoff validates a new-booking session and produces the
// payment handoff. Fails fast — no handoff is produced, and therefore
// no navigation to payment happens, unless a seat is selected and both
// passenger fields are filled.
func (i *Intent) ConfirmHandoff(tripID int64, selection *Selection) (*Handoff, error) {
	if i.kind != IntentNew {
		return nil, ErrWrongIntent
	}
	seat := selection.Seat()
	if seat == nil {
		return nil, ErrNoSeatSelected
	}
	if i.passengerName == "" || i.passengerSurname == "" {
		return nil, ErrPassengerIncomplete
	}
	return &Handoff{
		TripID:           tripID,
		Seat:             *seat,
		PassengerName:    i.passengerName,
		PassengerSurname: i.passengerSurname,
	}, nil
}

// ChangeRequest is what the change endpoint receives: the ticket and
// the new placement, nothing else. Passenger identity never travels
// with a change.
type ChangeRequest struct {
	TicketID  int64
	NewTripID int64
	NewSeatID int64
}

// ConfirmChange validates a change session and produces the change
// request for the selected seat on the given trip.
func (i *Intent) ConfirmChange(tripID int64, selection *Selection) (*ChangeRequest, error) {
	if i.kind != IntentChange {
		return nil, ErrWrongIntent
	}
	seat := selection.Seat()
	if seat == nil {
		return nil, ErrNoSeatSelected
	}
	return &ChangeRequest{
		TicketID:  i.original.ID,
		NewTripID: tripID,
		NewSeatID: seat.SeatID,
	}, nil
}
