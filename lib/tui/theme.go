// Copyright 2026 The Rayliner Authors
// SPDX-License-Identifier: Apache-2.0

package tui

import (
	"github.com/charmbracelet/lipgloss"

	"github.com/rayliner-project/rayliner/lib/booking"
)

// Theme defines the color palette and visual properties for
// Rayliner's terminal UI. All colors use lipgloss ANSI 256-color
// codes for broad terminal compatibility.
//
// The fields cover both universal chrome (text, selection, borders)
// and the domain's semantic categories: seat states on the wagon map
// and the booking lifecycle statuses.
type Theme struct {
	// Text colors.
	NormalText lipgloss.Color
	FaintText  lipgloss.Color

	// Selected row.
	SelectedBackground lipgloss.Color
	SelectedForeground lipgloss.Color

	// Seat map cells.
	SeatFree     lipgloss.Color
	SeatSelected lipgloss.Color
	SeatOccupied lipgloss.Color

	// Booking status colors.
	StatusPending   lipgloss.Color
	StatusConfirmed lipgloss.Color
	StatusCancelled lipgloss.Color

	// UI chrome.
	HeaderForeground lipgloss.Color
	BorderColor      lipgloss.Color
	HelpText         lipgloss.Color
	AccentColor      lipgloss.Color

	// Inline feedback lines.
	ErrorText   lipgloss.Color
	SuccessText lipgloss.Color

	// Overlay boxes (dropdowns, confirmation prompts).
	OverlayForeground lipgloss.Color
	OverlayBackground lipgloss.Color
}

// SeatColor returns the color for a seat's visual state.
func (theme Theme) SeatColor(visual booking.SeatVisual) lipgloss.Color {
	switch visual {
	case booking.SeatSelected:
		return theme.SeatSelected
	case booking.SeatOccupied:
		return theme.SeatOccupied
	default:
		return theme.SeatFree
	}
}

// StatusColor returns the color for a booking status. Unknown values
// render faint, same as any other text the UI cannot classify.
func (theme Theme) StatusColor(status booking.BookingStatus) lipgloss.Color {
	switch status {
	case booking.StatusPending:
		return theme.StatusPending
	case booking.StatusConfirmed:
		return theme.StatusConfirmed
	case booking.StatusCancelled:
		return theme.StatusCancelled
	default:
		return theme.FaintText
	}
}

// DefaultTheme is the built-in dark-terminal color scheme. Designed
// for 256-color terminals with a dark background (the common case for
// development environments and tmux sessions).
var DefaultTheme = Theme{
	NormalText: lipgloss.Color("252"),
	FaintText:  lipgloss.Color("245"),

	SelectedBackground: lipgloss.Color("236"),
	SelectedForeground: lipgloss.Color("255"),

	SeatFree:     lipgloss.Color("114"), // green
	SeatSelected: lipgloss.Color("220"), // yellow/amber
	SeatOccupied: lipgloss.Color("196"), // red

	StatusPending:   lipgloss.Color("220"), // amber: payment outstanding
	StatusConfirmed: lipgloss.Color("114"), // green
	StatusCancelled: lipgloss.Color("245"), // gray, terminal state

	HeaderForeground: lipgloss.Color("255"),
	BorderColor:      lipgloss.Color("240"),
	HelpText:         lipgloss.Color("241"),
	AccentColor:      lipgloss.Color("75"), // blue

	ErrorText:   lipgloss.Color("196"),
	SuccessText: lipgloss.Color("114"),

	OverlayForeground: lipgloss.Color("252"),
	OverlayBackground: lipgloss.Color("237"), // slightly lighter than terminal background
}
