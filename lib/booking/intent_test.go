// Copyright 2026 The Rayliner Authors
// SPDX-License-Identifier: Apache-2.0

package booking

import (
	"errors"
	"testing"
)

// selectionWith returns a Selection holding the given seat.
func selectionWith(seatID int64, wagonNumber, seatNumber int) *Selection {
	var selection Selection
	selection.Tap(Seat{ID: seatID, SeatNumber: seatNumber, Available: true}, wagonNumber)
	return &selection
}

// --- New-booking intent ---

func TestConfirmHandoff_Complete(t *testing.T) {
	intent := NewBookingIntent()
	if err := intent.SetPassenger("Ayşe", "Yılmaz"); err != nil {
		t.Fatalf("SetPassenger: %v", err)
	}

	handoff, err := intent.ConfirmHandoff(7, selectionWith(112, 2, 12))
	if err != nil {
		t.Fatalf("ConfirmHandoff: %v", err)
	}
	if handoff.TripID != 7 {
		t.Errorf("trip ID %d, want 7", handoff.TripID)
	}
	if handoff.Seat.SeatID != 112 || handoff.Seat.WagonNumber != 2 || handoff.Seat.SeatNumber != 12 {
		t.Errorf("seat %+v, want seat 112 in wagon 2 at number 12", handoff.Seat)
	}
	if handoff.PassengerName != "Ayşe" || handoff.PassengerSurname != "Yılmaz" {
		t.Errorf("passenger %q %q, want Ayşe Yılmaz", handoff.PassengerName, handoff.PassengerSurname)
	}
}

func TestConfirmHandoff_BlockedWithoutSeat(t *testing.T) {
	intent := NewBookingIntent()
	intent.SetPassenger("Ayşe", "Yılmaz")

	var empty Selection
	if _, err := intent.ConfirmHandoff(7, &empty); !errors.Is(err, ErrNoSeatSelected) {
		t.Fatalf("error %v, want ErrNoSeatSelected", err)
	}
}

func TestConfirmHandoff_BlockedWithoutPassenger(t *testing.T) {
	tests := []struct {
		name    string
		surname string
	}{
		{"", ""},
		{"Ayşe", ""},
		{"", "Yılmaz"},
	}
	for _, test := range tests {
		intent := NewBookingIntent()
		intent.SetPassenger(test.name, test.surname)
		_, err := intent.ConfirmHandoff(7, selectionWith(112, 2, 12))
		if !errors.Is(err, ErrPassengerIncomplete) {
			t.Errorf("name=%q surname=%q: error %v, want ErrPassengerIncomplete",
				test.name, test.surname, err)
		}
	}
}

func TestConfirmChange_RejectedForNewIntent(t *testing.T) {
	intent := NewBookingIntent()
	intent.SetPassenger("Ayşe", "Yılmaz")
	if _, err := intent.ConfirmChange(7, selectionWith(112, 2, 12)); !errors.Is(err, ErrWrongIntent) {
		t.Fatalf("error %v, want ErrWrongIntent", err)
	}
}

// --- Change-ticket intent ---

func TestChangeTicketIntent_PassengerLocked(t *testing.T) {
	intent := ChangeTicketIntent(Booking{
		ID:               42,
		PNRCode:          "ABC123",
		PassengerName:    "Mehmet",
		PassengerSurname: "Demir",
	})

	name, surname := intent.Passenger()
	if name != "Mehmet" || surname != "Demir" {
		t.Fatalf("passenger %q %q, want prefilled Mehmet Demir", name, surname)
	}

	if err := intent.SetPassenger("Other", "Person"); err == nil {
		t.Fatal("SetPassenger succeeded on a change intent")
	}
	name, surname = intent.Passenger()
	if name != "Mehmet" || surname != "Demir" {
		t.Fatal("passenger fields mutated despite rejection")
	}
}

func TestConfirmChange_CarriesOnlyReassignmentFields(t *testing.T) {
	intent := ChangeTicketIntent(Booking{ID: 42, PassengerName: "Mehmet", PassengerSurname: "Demir"})

	request, err := intent.ConfirmChange(9, selectionWith(205, 1, 3))
	if err != nil {
		t.Fatalf("ConfirmChange: %v", err)
	}
	want := ChangeRequest{TicketID: 42, NewTripID: 9, NewSeatID: 205}
	if *request != want {
		t.Fatalf("change request %+v, want %+v", *request, want)
	}
}

func TestConfirmChange_BlockedWithoutSeat(t *testing.T) {
	intent := ChangeTicketIntent(Booking{ID: 42})
	var empty Selection
	if _, err := intent.ConfirmChange(9, &empty); !errors.Is(err, ErrNoSeatSelected) {
		t.Fatalf("error %v, want ErrNoSeatSelected", err)
	}
}

func TestConfirmHandoff_RejectedForChangeIntent(t *testing.T) {
	intent := ChangeTicketIntent(Booking{ID: 42, PassengerName: "Mehmet", PassengerSurname: "Demir"})
	if _, err := intent.ConfirmHandoff(9, selectionWith(205, 1, 3)); !errors.Is(err, ErrWrongIntent) {
		t.Fatalf("error %v, want ErrWrongIntent", err)
	}
}
