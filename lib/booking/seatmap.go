// Copyright 2026 The Rayliner Authors
// SPDX-License-Identifier: Apache-2.0

package booking

import "sort"

// seatsPerRow is the corridor layout width: two seats, the aisle, two
// more seats. Capacity and numbering come entirely from the server
// payload; the client only arranges whatever seats it is given.
const seatsPerRow = 4

// Row is one bench of the corridor layout. Left holds the pair before
// the aisle, Right the pair after it. The final row of a wagon may be
// partial: Left fills first, so a 3-seat row has two seats on the left
// and one on the right, and a 1-seat row has only Left populated.
type Row struct {
	Left  []Seat
	Right []Seat
}

// Seats returns the row's seats in order, left pair then right pair.
func (r Row) Seats() []Seat {
	combined := make([]Seat, 0, len(r.Left)+len(r.Right))
	combined = append(combined, r.Left...)
	combined = append(combined, r.Right...)
	return combined
}

// BuildRows arranges a wagon's seats into corridor rows: ascending
// seat number, four per row, split around the aisle. An empty or nil
// seat list yields zero rows. The input slice is not modified.
func BuildRows(seats []Seat) []Row {
	if len(seats) == 0 {
		return nil
	}

	ordered := make([]Seat, len(seats))
	copy(ordered, seats)
	sort.Slice(ordered, func(i, j int) bool {
		return ordered[i].SeatNumber < ordered[j].SeatNumber
	})

	rows := make([]Row, 0, (len(ordered)+seatsPerRow-1)/seatsPerRow)
	for start := 0; start < len(ordered); start += seatsPerRow {
		end := start + seatsPerRow
		if end > len(ordered) {
			end = len(ordered)
		}
		group := ordered[start:end]

		split := len(group)
		if split > 2 {
			split = 2
		}
		rows = append(rows, Row{
			Left:  group[:split],
			Right: group[split:],
		})
	}
	return rows
}

// SeatVisual is the rendering state of one seat in the map. The three
// states are mutually exclusive: occupied wins over selected, and a
// seat is free only when it is neither.
type SeatVisual int

const (
	// SeatFree is an available seat the user has not selected.
	SeatFree SeatVisual = iota
	// SeatSelected is the one seat the current selection points at.
	SeatSelected
	// SeatOccupied is a seat the server reports as unavailable.
	SeatOccupied
)

// Visual classifies a seat against the current selection. A nil
// selection marks every available seat free.
func Visual(seat Seat, selection *Selection) SeatVisual {
	if !seat.Available {
		return SeatOccupied
	}
	if selection != nil && selection.IsSelected(seat.ID) {
		return SeatSelected
	}
	return SeatFree
}
