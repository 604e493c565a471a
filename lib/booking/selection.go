// Copyright 2026 The Rayliner Authors
// SPDX-License-Identifier: Apache-2.0

package booking

// Selection tracks the at-most-one seat a user has picked during a
// seat-selection session. The zero value is the none-selected state.
//
// Transitions, all driven by Tap:
//   - tap an available seat while nothing is selected: select it
//   - tap the currently selected seat: deselect (toggle off)
//   - tap a different available seat: reselect — the old selection is
//     replaced, never duplicated
//   - tap an occupied seat: no-op in every state
//
// Switching the displayed wagon is not a transition: the selection
// deliberately survives wagon tab changes so a user can pick a seat,
// browse other wagons, and come back.
type Selection struct {
	current *SelectedSeat
}

// Tap applies a tap on a seat in the given wagon and reports whether
// the selection changed.
func (s *Selection) Tap(seat Seat, wagonNumber int) bool {
	if !seat.Available {
		return false
	}
	if s.current != nil && s.current.SeatID == seat.ID {
		s.current = nil
		return true
	}
	s.current = &SelectedSeat{
		SeatID:      seat.ID,
		WagonNumber: wagonNumber,
		SeatNumber:  seat.SeatNumber,
	}
	return true
}

// Clear drops any selection. Called when the user leaves the
// seat-selection screen; the selection is session-scoped and never
// outlives its screen.
func (s *Selection) Clear() {
	s.current = nil
}

// Seat returns the selected seat, or nil when nothing is selected.
// The returned value is a copy-safe pointer into the selection; it is
// invalidated by the next transition.
func (s *Selection) Seat() *SelectedSeat {
	return s.current
}

// IsSelected reports whether the seat with the given ID is the current
// selection.
func (s *Selection) IsSelected(seatID int64) bool {
	return s.current != nil && s.current.SeatID == seatID
}

// Empty reports whether nothing is selected. Payment and change
// confirmation are both blocked while Empty.
func (s *Selection) Empty() bool {
	return s.current == nil
}
