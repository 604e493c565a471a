// Copyright 2026 The Rayliner Authors
// SPDX-License-Identifier: Apache-2.0

package booking

import "testing"

func TestSelection_TapSelects(t *testing.T) {
	var selection Selection
	seat := Seat{ID: 10, SeatNumber: 5, Available: true}

	if !selection.Tap(seat, 2) {
		t.Fatal("tap on available seat reported no change")
	}

	selected := selection.Seat()
	if selected == nil {
		t.Fatal("no seat selected after tap")
	}
	if selected.SeatID != 10 || selected.WagonNumber != 2 || selected.SeatNumber != 5 {
		t.Fatalf("selected %+v, want seat 10 in wagon 2 at number 5", *selected)
	}
}

func TestSelection_ToggleOff(t *testing.T) {
	var selection Selection
	seat := Seat{ID: 10, SeatNumber: 5, Available: true}

	selection.Tap(seat, 2)
	if !selection.Tap(seat, 2) {
		t.Fatal("toggle-off tap reported no change")
	}
	if !selection.Empty() {
		t.Fatal("selection not empty after toggling the same seat twice")
	}
}

func TestSelection_ReselectReplaces(t *testing.T) {
	var selection Selection
	seatA := Seat{ID: 10, SeatNumber: 5, Available: true}
	seatB := Seat{ID: 11, SeatNumber: 6, Available: true}

	selection.Tap(seatA, 2)
	selection.Tap(seatB, 3)

	selected := selection.Seat()
	if selected == nil {
		t.Fatal("nothing selected after reselect")
	}
	// Exactly seat B, never both.
	if selected.SeatID != 11 {
		t.Fatalf("selected seat %d, want 11", selected.SeatID)
	}
	if selection.IsSelected(10) {
		t.Fatal("seat A still reads as selected after selecting seat B")
	}
}

func TestSelection_OccupiedIsNoOp(t *testing.T) {
	var selection Selection
	occupied := Seat{ID: 20, SeatNumber: 1, Available: false}

	if selection.Tap(occupied, 1) {
		t.Fatal("tap on occupied seat changed an empty selection")
	}
	if !selection.Empty() {
		t.Fatal("occupied tap produced a selection")
	}

	available := Seat{ID: 21, SeatNumber: 2, Available: true}
	selection.Tap(available, 1)
	if selection.Tap(occupied, 1) {
		t.Fatal("tap on occupied seat changed an existing selection")
	}
	if !selection.IsSelected(21) {
		t.Fatal("existing selection lost after occupied tap")
	}
}

func TestSelection_SurvivesWagonSwitch(t *testing.T) {
	// The selection is keyed by seat, not by displayed wagon. The
	// caller switching wagon tabs performs no Selection call at all,
	// so all this test has to assert is that taps in another wagon's
	// context behave like any other tap.
	var selection Selection
	selection.Tap(Seat{ID: 30, SeatNumber: 12, Available: true}, 2)

	// Browsing wagon 3 and coming back: selection unchanged.
	if !selection.IsSelected(30) {
		t.Fatal("selection lost without any tap")
	}

	// Selecting in another wagon replaces, as usual.
	selection.Tap(Seat{ID: 31, SeatNumber: 1, Available: true}, 3)
	selected := selection.Seat()
	if selected.SeatID != 31 || selected.WagonNumber != 3 {
		t.Fatalf("selected %+v, want seat 31 in wagon 3", *selected)
	}
}

func TestSelection_Clear(t *testing.T) {
	var selection Selection
	selection.Tap(Seat{ID: 40, SeatNumber: 1, Available: true}, 1)
	selection.Clear()
	if !selection.Empty() {
		t.Fatal("selection not empty after Clear")
	}
}
