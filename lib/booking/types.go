// Copyright 2026 The Rayliner Authors
// SPDX-License-Identifier: Apache-2.0

package booking

// Station is a read-only copy of a station record. The booking server
// owns the lifecycle; the client only uses stations to populate route
// pickers and to resolve names for display.
type Station struct {
	ID   int64  `json:"id"`
	Name string `json:"name"`
	City string `json:"city"`
	Code string `json:"code"`
}

// Trip is a scheduled service between two stations on a date. Station
// names are denormalized by the server so trip rows render without a
// second lookup.
type Trip struct {
	ID                   int64   `json:"id"`
	TripNumber           string  `json:"tripNumber"`
	DepartureStationID   int64   `json:"departureStationId"`
	ArrivalStationID     int64   `json:"arrivalStationId"`
	DepartureStationName string  `json:"departureStationName,omitempty"`
	ArrivalStationName   string  `json:"arrivalStationName,omitempty"`
	TripDate             string  `json:"tripDate"`      // "YYYY-MM-DD"
	DepartureTime        string  `json:"departureTime"` // "HH:mm" or "HH:mm:ss"
	ArrivalTime          string  `json:"arrivalTime"`
	BasePrice            float64 `json:"basePrice"`
	OccupancyRate        float64 `json:"occupancyRate,omitempty"`
	AvailableSeats       int     `json:"availableSeats,omitempty"`
}

// Wagon is a single car of a trip's train.
type Wagon struct {
	ID          int64  `json:"id"`
	WagonNumber int    `json:"wagonNumber"`
	WagonType   string `json:"wagonType"`
	TotalSeats  int    `json:"totalSeats,omitempty"`
}

// Seat belongs to exactly one wagon. SeatNumber is unique within the
// wagon. Available reflects server state at fetch time.
type Seat struct {
	ID          int64 `json:"id"`
	WagonID     int64 `json:"wagonId,omitempty"`
	SeatNumber  int   `json:"seatNumber"`
	Available   bool  `json:"isAvailable"`
	WagonNumber int   `json:"wagonNumber,omitempty"`
}

// SeatMap is a trip's seating inventory: the wagon list plus each
// wagon's seats keyed by wagon number. The server's wire format keys
// seats by a constructed "wagon_N" field name; the client decodes that
// into this explicit mapping at the API boundary so nothing above the
// client layer ever builds string keys.
type SeatMap struct {
	Wagons []Wagon
	Seats  map[int][]Seat
}

// WagonSeats returns the seat list for a wagon number. A wagon with no
// seats (or an unknown wagon number) yields nil, which renders as an
// empty layout rather than an error.
func (m *SeatMap) WagonSeats(wagonNumber int) []Seat {
	if m == nil || m.Seats == nil {
		return nil
	}
	return m.Seats[wagonNumber]
}

// BookingStatus is the server-side lifecycle state of a booking.
type BookingStatus string

const (
	// StatusPending means the booking exists but payment has not
	// been confirmed by the server.
	StatusPending BookingStatus = "PENDING"
	// StatusConfirmed means the booking is paid and the seat is held.
	StatusConfirmed BookingStatus = "CONFIRMED"
	// StatusCancelled means the booking was cancelled; the seat has
	// been released. Cancelled bookings are never deleted, only
	// displayed in their terminal state.
	StatusCancelled BookingStatus = "CANCELLED"
)

// Booking is a ticket as returned by the server. PNRCode is the
// server-assigned retrieval key and requires no authentication to
// look up.
type Booking struct {
	ID               int64         `json:"id"`
	PNRCode          string        `json:"pnrCode"`
	PassengerName    string        `json:"passengerName"`
	PassengerSurname string        `json:"passengerSurname"`
	TripID           int64         `json:"tripId,omitempty"`
	TripNumber       string        `json:"tripNumber,omitempty"`
	WagonID          int64         `json:"wagonId,omitempty"`
	SeatID           int64         `json:"seatId,omitempty"`
	WagonNo          int           `json:"wagonNo,omitempty"`
	SeatNo           int           `json:"seatNo,omitempty"`
	TravelDate       string        `json:"travelDate,omitempty"`
	TripDate         string        `json:"tripDate,omitempty"`
	Status           BookingStatus `json:"bookingStatus"`
	TotalPrice       float64       `json:"totalPrice"`
	CreatedAt        string        `json:"createdAt,omitempty"`
}

// Date returns the travel date, preferring TravelDate over TripDate.
// Different server endpoints populate different fields for the same
// concept.
func (b Booking) Date() string {
	if b.TravelDate != "" {
		return b.TravelDate
	}
	return b.TripDate
}

// Actionable reports whether the booking can still be changed or
// cancelled. Cancelled is terminal.
func (b Booking) Actionable() bool {
	return b.Status != StatusCancelled
}

// SelectedSeat is the client-side record of the one seat the user has
// picked: the seat's identity plus the wagon and seat numbers needed
// for display and for the create-booking request. It exists only for
// the duration of a seat-selection session.
type SelectedSeat struct {
	SeatID      int64
	WagonNumber int
	SeatNumber  int
}
