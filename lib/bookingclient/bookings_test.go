// Copyright 2026 The Rayliner Authors
// SPDX-License-Identifier: Apache-2.0

package bookingclient

import (
	"context"
	"encoding/json"
	"net/http"
	"testing"

	"github.com/rayliner-project/rayliner/lib/booking"
	"github.com/rayliner-project/rayliner/lib/credential"
)

func TestCreateBooking(t *testing.T) {
	handoff := booking.Handoff{
		TripID: 42,
		Seat: booking.SelectedSeat{
			SeatID:      103,
			WagonNumber: 1,
			SeatNumber:  3,
		},
		PassengerName:    "Ayşe",
		PassengerSurname: "Yılmaz",
	}
	card := booking.CardDetails{
		Number:     "4111111111111111",
		Holder:     "AYSE YILMAZ",
		CVV:        "123",
		ExpiryDate: "12/27",
	}

	t.Run("payload shape and PNR result", func(t *testing.T) {
		var gotBody map[string]any
		client := testClient(t, func(writer http.ResponseWriter, request *http.Request) {
			if request.Method != http.MethodPost || request.URL.Path != "/bookings/create" {
				t.Errorf("unexpected request: %s %s", request.Method, request.URL.Path)
			}
			if err := json.NewDecoder(request.Body).Decode(&gotBody); err != nil {
				t.Fatalf("decoding request body: %v", err)
			}
			json.NewEncoder(writer).Encode(booking.Booking{
				ID:      7,
				PNRCode: "ABC123",
				Status:  booking.StatusConfirmed,
			})
		})

		created, err := client.CreateBooking(context.Background(),
			testUserToken(t, "tok"), NewCreateBookingRequest(handoff, card))
		if err != nil {
			t.Fatalf("CreateBooking failed: %v", err)
		}
		if created.PNRCode != "ABC123" {
			t.Errorf("PNRCode = %q, want %q", created.PNRCode, "ABC123")
		}

		// float64 is what encoding/json decodes numbers into.
		if gotBody["tripId"] != float64(42) || gotBody["seatId"] != float64(103) {
			t.Errorf("trip/seat IDs = %v/%v", gotBody["tripId"], gotBody["seatId"])
		}
		if gotBody["wagonNumber"] != float64(1) || gotBody["seatNumber"] != float64(3) {
			t.Errorf("wagon/seat numbers = %v/%v", gotBody["wagonNumber"], gotBody["seatNumber"])
		}
		if gotBody["passengerName"] != "Ayşe" || gotBody["passengerSurname"] != "Yılmaz" {
			t.Errorf("passenger = %v %v", gotBody["passengerName"], gotBody["passengerSurname"])
		}
		payment, ok := gotBody["paymentDetails"].(map[string]any)
		if !ok {
			t.Fatal("paymentDetails missing or not an object")
		}
		if payment["cardNumber"] != card.Number {
			t.Errorf("cardNumber = %v", payment["cardNumber"])
		}
		if payment["expiryDate"] != "12/27" {
			t.Errorf("expiryDate = %v", payment["expiryDate"])
		}
	})

	t.Run("guest booking sends no session token", func(t *testing.T) {
		var hasToken bool
		client := testClient(t, func(writer http.ResponseWriter, request *http.Request) {
			_, hasToken = request.Header[http.CanonicalHeaderKey("Session-Token")]
			json.NewEncoder(writer).Encode(booking.Booking{PNRCode: "GUEST1"})
		})

		_, err := client.CreateBooking(context.Background(),
			credential.UserToken{}, NewCreateBookingRequest(handoff, card))
		if err != nil {
			t.Fatalf("CreateBooking failed: %v", err)
		}
		if hasToken {
			t.Error("guest booking carried a Session-Token header")
		}
	})

	t.Run("response without PNR is an error", func(t *testing.T) {
		client := testClient(t, func(writer http.ResponseWriter, request *http.Request) {
			json.NewEncoder(writer).Encode(booking.Booking{ID: 7})
		})

		_, err := client.CreateBooking(context.Background(),
			credential.UserToken{}, NewCreateBookingRequest(handoff, card))
		if err == nil {
			t.Fatal("expected error when response carries no PNR code")
		}
	})

	t.Run("seat conflict surfaces server wording", func(t *testing.T) {
		client := testClient(t, func(writer http.ResponseWriter, request *http.Request) {
			writer.WriteHeader(http.StatusConflict)
			json.NewEncoder(writer).Encode(map[string]string{"message": "Seat is already booked"})
		})

		_, err := client.CreateBooking(context.Background(),
			credential.UserToken{}, NewCreateBookingRequest(handoff, card))
		if err == nil {
			t.Fatal("expected error for seat conflict")
		}
		apiErr, ok := asAPIError(err)
		if !ok {
			t.Fatalf("error is not an APIError: %v", err)
		}
		if apiErr.Message != "Seat is already booked" {
			t.Errorf("Message = %q", apiErr.Message)
		}
	})
}

func TestBookingByPNR(t *testing.T) {
	t.Run("lookup is unauthenticated", func(t *testing.T) {
		var hasToken bool
		client := testClient(t, func(writer http.ResponseWriter, request *http.Request) {
			if request.URL.Path != "/bookings/ABC123" {
				t.Errorf("unexpected path: %s", request.URL.Path)
			}
			_, hasToken = request.Header[http.CanonicalHeaderKey("Session-Token")]
			json.NewEncoder(writer).Encode(booking.Booking{
				PNRCode:       "ABC123",
				PassengerName: "Ayşe",
				Status:        booking.StatusConfirmed,
			})
		})

		found, err := client.BookingByPNR(context.Background(), "ABC123")
		if err != nil {
			t.Fatalf("BookingByPNR failed: %v", err)
		}
		if hasToken {
			t.Error("PNR lookup carried a Session-Token header")
		}
		if found.PassengerName != "Ayşe" {
			t.Errorf("PassengerName = %q", found.PassengerName)
		}
	})

	t.Run("unknown PNR", func(t *testing.T) {
		client := testClient(t, func(writer http.ResponseWriter, request *http.Request) {
			writer.WriteHeader(http.StatusNotFound)
			json.NewEncoder(writer).Encode(map[string]string{"message": "Booking not found"})
		})

		_, err := client.BookingByPNR(context.Background(), "NOSUCH")
		if !IsNotFound(err) {
			t.Errorf("expected IsNotFound, got %v", err)
		}
	})
}

func TestMyTickets(t *testing.T) {
	client := testClient(t, func(writer http.ResponseWriter, request *http.Request) {
		if request.URL.Path != "/bookings/user/my-tickets" {
			t.Errorf("unexpected path: %s", request.URL.Path)
		}
		if request.Header.Get("Session-Token") != "tok" {
			t.Errorf("Session-Token = %q", request.Header.Get("Session-Token"))
		}
		json.NewEncoder(writer).Encode([]booking.Booking{
			{ID: 2, PNRCode: "BBB222", Status: booking.StatusConfirmed},
			{ID: 1, PNRCode: "AAA111", Status: booking.StatusCancelled},
		})
	})

	tickets, err := client.MyTickets(context.Background(), testUserToken(t, "tok"))
	if err != nil {
		t.Fatalf("MyTickets failed: %v", err)
	}
	if len(tickets) != 2 {
		t.Fatalf("tickets = %d, want 2", len(tickets))
	}
	if tickets[0].PNRCode != "BBB222" {
		t.Errorf("server ordering not preserved: first = %q", tickets[0].PNRCode)
	}
}

func TestCancelBooking(t *testing.T) {
	var gotMethod, gotPath string
	client := testClient(t, func(writer http.ResponseWriter, request *http.Request) {
		gotMethod = request.Method
		gotPath = request.URL.Path
		json.NewEncoder(writer).Encode(map[string]string{"message": "cancelled"})
	})

	if err := client.CancelBooking(context.Background(), testUserToken(t, "tok"), 7); err != nil {
		t.Fatalf("CancelBooking failed: %v", err)
	}
	if gotMethod != http.MethodDelete || gotPath != "/bookings/7/cancel" {
		t.Errorf("request = %s %s, want DELETE /bookings/7/cancel", gotMethod, gotPath)
	}
}

func TestChangeBooking(t *testing.T) {
	var gotMethod, gotPath string
	var gotBody map[string]any
	client := testClient(t, func(writer http.ResponseWriter, request *http.Request) {
		gotMethod = request.Method
		gotPath = request.URL.Path
		if err := json.NewDecoder(request.Body).Decode(&gotBody); err != nil {
			t.Fatalf("decoding request body: %v", err)
		}
		json.NewEncoder(writer).Encode(booking.Booking{
			ID:      7,
			PNRCode: "ABC123",
			SeatNo:  12,
		})
	})

	changed, err := client.ChangeBooking(context.Background(), testUserToken(t, "tok"),
		booking.ChangeRequest{TicketID: 7, NewTripID: 43, NewSeatID: 210})
	if err != nil {
		t.Fatalf("ChangeBooking failed: %v", err)
	}
	if gotMethod != http.MethodPut || gotPath != "/bookings/7/change" {
		t.Errorf("request = %s %s, want PUT /bookings/7/change", gotMethod, gotPath)
	}

	// The change payload carries only the new placement. No passenger
	// fields, no payment.
	if len(gotBody) != 2 {
		t.Errorf("change payload has %d fields, want exactly 2: %v", len(gotBody), gotBody)
	}
	if gotBody["newTripId"] != float64(43) || gotBody["newSeatId"] != float64(210) {
		t.Errorf("placement = %v/%v", gotBody["newTripId"], gotBody["newSeatId"])
	}
	if changed.PNRCode != "ABC123" {
		t.Errorf("PNRCode = %q, PNR should survive a change", changed.PNRCode)
	}
}
