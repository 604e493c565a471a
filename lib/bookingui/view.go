// Copyright 2026 The Rayliner Authors
// SPDX-License-Identifier: Apache-2.0

package bookingui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/rayliner-project/rayliner/lib/booking"
	"github.com/rayliner-project/rayliner/lib/tui"
)

// tripListHeight is how many trip rows fit between the header and the
// status bar.
func (model Model) tripListHeight() int {
	height := model.height - 4
	if height < 1 {
		height = 1
	}
	return height
}

// View implements tea.Model.
func (model Model) View() string {
	if !model.ready {
		return "Loading..."
	}

	var body string
	switch model.step {
	case StepSearch:
		body = model.viewSearch()
	case StepTrips:
		body = model.viewTrips()
	case StepSeats:
		body = model.viewSeats()
	case StepPayment:
		body = model.viewPayment()
	case StepResult:
		body = model.viewResult()
	case StepDeadEnd:
		body = model.viewDeadEnd()
	}

	view := strings.Join([]string{
		model.viewHeader(),
		body,
		model.viewStatusBar(),
	}, "\n")

	// An open station picker floats over the composed view.
	if model.step == StepSearch && model.dropdown != nil {
		view = tui.SpliceOverlay(view, model.dropdown.Render(model.theme),
			model.dropdown.AnchorX, model.dropdown.AnchorY)
	}
	return view
}

// viewHeader renders the title line: screen name plus the trip being
// worked on once one is picked.
func (model Model) viewHeader() string {
	headerStyle := lipgloss.NewStyle().
		Foreground(model.theme.HeaderForeground).
		Bold(true)

	title := model.stepTitle()
	if model.step != StepTrips && model.trip.ID != 0 {
		title += "  " + lipgloss.NewStyle().
			Foreground(model.theme.FaintText).
			Render(tripLabel(model.trip))
	}
	return headerStyle.Render(title)
}

// tripLabel is the one-line description of a trip used in the header
// and the trip list.
func tripLabel(trip booking.Trip) string {
	route := trip.DepartureStationName
	if trip.ArrivalStationName != "" {
		route += " → " + trip.ArrivalStationName
	}
	if route == "" {
		route = trip.TripNumber
	}
	return fmt.Sprintf("%s  %s %s–%s", route, trip.TripDate, trip.DepartureTime, trip.ArrivalTime)
}

// viewSearch renders the route/date form. The focused field's label
// takes the accent color; station fields show their pick or a hint.
func (model Model) viewSearch() string {
	labelStyle := lipgloss.NewStyle().Foreground(model.theme.FaintText).Width(searchLabelWidth)
	focusedLabelStyle := lipgloss.NewStyle().Foreground(model.theme.AccentColor).Width(searchLabelWidth)
	valueStyle := lipgloss.NewStyle().Foreground(model.theme.NormalText)
	hintStyle := lipgloss.NewStyle().Foreground(model.theme.HelpText)

	label := func(field int, text string) string {
		if model.searchFocus == field {
			return focusedLabelStyle.Render(text)
		}
		return labelStyle.Render(text)
	}
	stationValue := func(station *booking.Station) string {
		if station == nil {
			return hintStyle.Render("press Enter to choose")
		}
		return valueStyle.Render(stationLabel(*station))
	}

	lines := []string{
		label(searchFieldFrom, "From") + stationValue(model.fromStation),
		label(searchFieldTo, "To") + stationValue(model.toStation),
		label(searchFieldDate, "Date") + model.dateInput.View(),
	}
	if model.loading {
		lines = append(lines, "", hintStyle.Render("Searching..."))
	}
	return strings.Join(lines, "\n")
}

// viewTrips renders the scrollable trip list.
func (model Model) viewTrips() string {
	if len(model.trips) == 0 {
		return lipgloss.NewStyle().
			Foreground(model.theme.FaintText).
			Render("No trips found for this route and date.")
	}

	normalStyle := lipgloss.NewStyle().Foreground(model.theme.NormalText)
	selectedStyle := lipgloss.NewStyle().
		Background(model.theme.SelectedBackground).
		Foreground(model.theme.SelectedForeground)
	priceStyle := lipgloss.NewStyle().Foreground(model.theme.AccentColor)

	visible := model.tripListHeight()
	end := model.tripScroll + visible
	if end > len(model.trips) {
		end = len(model.trips)
	}

	var lines []string
	for index := model.tripScroll; index < end; index++ {
		trip := model.trips[index]
		row := fmt.Sprintf(" %-10s %s  %s",
			trip.TripNumber, tripLabel(trip),
			priceStyle.Render(fmt.Sprintf("%.2f", trip.BasePrice)))
		if index == model.tripCursor {
			lines = append(lines, selectedStyle.Render("> "+row))
		} else {
			lines = append(lines, normalStyle.Render("  "+row))
		}
	}
	list := strings.Join(lines, "\n")

	if len(model.trips) <= visible {
		return list
	}
	scrollbar := tui.RenderScrollbar(model.theme, len(lines),
		len(model.trips), visible, model.tripScroll, true)
	return lipgloss.JoinHorizontal(lipgloss.Top, scrollbar, " ", list)
}

// viewSeats renders the wagon tab bar, the corridor grid, the legend,
// and (for new bookings) the passenger form.
func (model Model) viewSeats() string {
	if model.loading && model.seatMap == nil {
		return lipgloss.NewStyle().
			Foreground(model.theme.FaintText).
			Render("Fetching seats...")
	}
	if model.seatMap == nil || len(model.seatMap.Wagons) == 0 {
		return lipgloss.NewStyle().
			Foreground(model.theme.FaintText).
			Render("This trip has no wagons.")
	}

	sections := []string{
		model.viewWagonTabs(),
		"",
		model.viewSeatGrid(),
		"",
		model.viewLegend(),
	}

	if model.intent != nil {
		sections = append(sections, "", model.viewPassengerForm())
	}
	if model.mode == ModeChange && model.intent != nil {
		banner := lipgloss.NewStyle().
			Foreground(model.theme.StatusPending).
			Render(fmt.Sprintf("Changing ticket %s — pick the new seat and press Enter.",
				model.intent.Original().PNRCode))
		sections = append([]string{banner, ""}, sections...)
	}

	return strings.Join(sections, "\n")
}

// viewWagonTabs renders one tab per wagon with the active one
// highlighted.
func (model Model) viewWagonTabs() string {
	activeStyle := lipgloss.NewStyle().
		Background(model.theme.SelectedBackground).
		Foreground(model.theme.SelectedForeground).
		Padding(0, 1)
	inactiveStyle := lipgloss.NewStyle().
		Foreground(model.theme.FaintText).
		Padding(0, 1)

	var tabs []string
	for index, wagon := range model.seatMap.Wagons {
		label := fmt.Sprintf("Wagon %d", wagon.WagonNumber)
		if wagon.WagonType != "" {
			label += " · " + wagon.WagonType
		}
		if index == model.wagonIndex {
			tabs = append(tabs, activeStyle.Render(label))
		} else {
			tabs = append(tabs, inactiveStyle.Render(label))
		}
	}
	return strings.Join(tabs, " ")
}

// viewSeatGrid renders the corridor layout: left pair, aisle gap,
// right pair, one row per line. The cursor is shown with the
// selection background when the grid has focus.
func (model Model) viewSeatGrid() string {
	wagonNumber := model.currentWagon().WagonNumber
	rows := booking.BuildRows(model.seatMap.WagonSeats(wagonNumber))
	if len(rows) == 0 {
		return lipgloss.NewStyle().
			Foreground(model.theme.FaintText).
			Render("No seats in this wagon.")
	}

	var selection *booking.Selection
	if model.mode != ModeInspect {
		selection = &model.selection
	}

	cursorActive := model.focus == focusGrid && model.mode != ModeInspect
	var lines []string
	flatIndex := 0
	for _, row := range rows {
		var cells []string
		for position, seat := range row.Seats() {
			if position == len(row.Left) {
				// The aisle between the left and right pairs.
				cells = append(cells, "  ")
			}
			cells = append(cells, model.renderSeat(seat, selection,
				cursorActive && flatIndex == model.seatCursor))
			flatIndex++
		}
		lines = append(lines, "  "+strings.Join(cells, " "))
	}
	return strings.Join(lines, "\n")
}

// renderSeat renders one seat cell, colored by its visual state.
func (model Model) renderSeat(seat booking.Seat, selection *booking.Selection, underCursor bool) string {
	style := lipgloss.NewStyle().
		Foreground(model.theme.SeatColor(booking.Visual(seat, selection)))
	if underCursor {
		style = style.Background(model.theme.SelectedBackground).Bold(true)
	}
	return style.Render(fmt.Sprintf("[%2d]", seat.SeatNumber))
}

// viewLegend renders the three seat states with their colors.
func (model Model) viewLegend() string {
	entry := func(color lipgloss.Color, label string) string {
		return lipgloss.NewStyle().Foreground(color).Render("[##]") + " " + label
	}
	parts := []string{
		entry(model.theme.SeatFree, "free"),
		entry(model.theme.SeatOccupied, "occupied"),
	}
	if model.mode != ModeInspect {
		parts = append(parts, entry(model.theme.SeatSelected, "selected"))
	}
	return lipgloss.NewStyle().
		Foreground(model.theme.FaintText).
		Render("  " + strings.Join(parts, "   "))
}

// viewPassengerForm renders the name/surname fields, locked and faint
// for a change.
func (model Model) viewPassengerForm() string {
	labelStyle := lipgloss.NewStyle().Foreground(model.theme.FaintText).Width(10)

	if model.intent.Kind() == booking.IntentChange {
		name, surname := model.intent.Passenger()
		lockedStyle := lipgloss.NewStyle().Foreground(model.theme.FaintText)
		return strings.Join([]string{
			labelStyle.Render("Passenger") + lockedStyle.Render(name+" "+surname+"  (fixed for a ticket change)"),
		}, "\n")
	}

	selected := "none"
	if seat := model.selection.Seat(); seat != nil {
		selected = fmt.Sprintf("wagon %d, seat %d", seat.WagonNumber, seat.SeatNumber)
	}
	return strings.Join([]string{
		labelStyle.Render("Seat") + lipgloss.NewStyle().
			Foreground(model.theme.NormalText).Render(selected),
		labelStyle.Render("Name") + model.nameInput.View(),
		labelStyle.Render("Surname") + model.surnameInput.View(),
	}, "\n")
}

// viewPayment renders the card form.
func (model Model) viewPayment() string {
	if model.handoff == nil {
		return model.viewDeadEnd()
	}

	labelStyle := lipgloss.NewStyle().Foreground(model.theme.FaintText).Width(14)
	labels := [payFieldCount]string{"Card number", "Card holder", "CVV", "Expiry"}

	summary := fmt.Sprintf("%s %s — wagon %d, seat %d — %.2f",
		model.handoff.PassengerName, model.handoff.PassengerSurname,
		model.handoff.Seat.WagonNumber, model.handoff.Seat.SeatNumber,
		model.totalAmount)

	lines := []string{
		lipgloss.NewStyle().Foreground(model.theme.NormalText).Render(summary),
		"",
	}
	for index := range model.payInputs {
		lines = append(lines, labelStyle.Render(labels[index])+model.payInputs[index].View())
	}
	if model.submitting {
		lines = append(lines, "",
			lipgloss.NewStyle().Foreground(model.theme.FaintText).Render("Submitting..."))
	}
	return strings.Join(lines, "\n")
}

// viewResult renders the PNR confirmation (or the change
// confirmation, which reports the ticket's PNR unchanged).
func (model Model) viewResult() string {
	boxStyle := lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(model.theme.SuccessText).
		Padding(1, 3)
	pnrStyle := lipgloss.NewStyle().
		Foreground(model.theme.SuccessText).
		Bold(true)

	heading := "Booking confirmed"
	if model.mode == ModeChange {
		heading = "Ticket changed"
	}

	content := []string{
		heading,
		"",
		"PNR  " + pnrStyle.Render(model.result.PNRCode),
	}
	if model.result.PassengerName != "" {
		content = append(content, fmt.Sprintf("%s %s",
			model.result.PassengerName, model.result.PassengerSurname))
	}
	content = append(content, "",
		lipgloss.NewStyle().Foreground(model.theme.FaintText).
			Render("Keep the PNR: it retrieves the ticket without an account."))

	return boxStyle.Render(strings.Join(content, "\n"))
}

// viewDeadEnd renders the missing-state screen: the payment step was
// reached without a seat selection handing off to it. One action out.
func (model Model) viewDeadEnd() string {
	return lipgloss.NewStyle().
		Foreground(model.theme.ErrorText).
		Render("Nothing to pay for — no seat selection reached this screen.\n\n") +
		lipgloss.NewStyle().
			Foreground(model.theme.HelpText).
			Render("Press Enter to start over.")
}

// viewStatusBar renders the bottom line: the inline notice when one
// is set, otherwise contextual key help.
func (model Model) viewStatusBar() string {
	if model.notice != "" {
		return lipgloss.NewStyle().
			Foreground(model.theme.ErrorText).
			Render(model.notice)
	}

	var parts []string
	switch model.step {
	case StepSearch:
		if model.dropdown != nil {
			parts = []string{"j/k move", "Enter select", "Esc close"}
		} else {
			parts = []string{"Tab field", "Enter choose/search", "q quit"}
		}
	case StepTrips:
		if len(model.stations) > 0 {
			parts = []string{"j/k move", "Enter pick trip", "Esc new search", "q quit"}
		} else {
			parts = []string{"j/k move", "Enter pick trip", "q quit"}
		}
	case StepSeats:
		if model.mode == ModeInspect {
			parts = []string{"arrows move", "[/] wagon", "q quit"}
		} else {
			parts = []string{"arrows move", "[/] wagon", "Space select", "Tab form", "Enter continue", "q quit"}
		}
	case StepPayment:
		parts = []string{"Tab next field", "Enter submit", "Esc back"}
	case StepResult:
		if model.mode == ModeBook {
			parts = []string{"Esc book another", "Enter/q quit"}
		} else {
			parts = []string{"Enter/q quit"}
		}
	case StepDeadEnd:
		parts = []string{"Enter start over", "q quit"}
	}
	return lipgloss.NewStyle().
		Foreground(model.theme.HelpText).
		Render(strings.Join(parts, " · "))
}
