// Copyright 2026 The Rayliner Authors
// SPDX-License-Identifier: Apache-2.0

package bookingui

import "github.com/charmbracelet/bubbles/key"

// KeyMap defines all key bindings for the booking flow TUI.
type KeyMap struct {
	// Grid and list navigation.
	Up    key.Binding
	Down  key.Binding
	Left  key.Binding
	Right key.Binding

	// Wagon tab switching on the seat map.
	NextWagon     key.Binding
	PreviousWagon key.Binding

	// Seat tap (toggle select/deselect).
	Toggle key.Binding

	// Confirm the current step: pick a trip, proceed to payment,
	// submit the change, submit the payment.
	Confirm key.Binding

	// Form field cycling.
	NextField     key.Binding
	PreviousField key.Binding

	// Step back (payment to seats, seats to trip list).
	Back key.Binding

	Quit key.Binding
}

// DefaultKeyMap is the built-in key binding set. Vim-style navigation
// (h/j/k/l) alongside standard arrow keys; bracket keys page through
// wagons the way they resize panes elsewhere.
var DefaultKeyMap = KeyMap{
	Up: key.NewBinding(
		key.WithKeys("k", "up"),
		key.WithHelp("k/↑", "up"),
	),
	Down: key.NewBinding(
		key.WithKeys("j", "down"),
		key.WithHelp("j/↓", "down"),
	),
	Left: key.NewBinding(
		key.WithKeys("h", "left"),
		key.WithHelp("h/←", "left"),
	),
	Right: key.NewBinding(
		key.WithKeys("l", "right"),
		key.WithHelp("l/→", "right"),
	),
	NextWagon: key.NewBinding(
		key.WithKeys("]"),
		key.WithHelp("]", "next wagon"),
	),
	PreviousWagon: key.NewBinding(
		key.WithKeys("["),
		key.WithHelp("[", "prev wagon"),
	),
	Toggle: key.NewBinding(
		key.WithKeys(" "),
		key.WithHelp("Space", "select seat"),
	),
	Confirm: key.NewBinding(
		key.WithKeys("enter"),
		key.WithHelp("Enter", "confirm"),
	),
	NextField: key.NewBinding(
		key.WithKeys("tab"),
		key.WithHelp("Tab", "next field"),
	),
	PreviousField: key.NewBinding(
		key.WithKeys("shift+tab"),
		key.WithHelp("S-Tab", "prev field"),
	),
	Back: key.NewBinding(
		key.WithKeys("esc"),
		key.WithHelp("Esc", "back"),
	),
	Quit: key.NewBinding(
		key.WithKeys("q", "ctrl+c"),
		key.WithHelp("q", "quit"),
	),
}
