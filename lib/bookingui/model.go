// Copyright 2026 The Rayliner Authors
// SPDX-License-Identifier: Apache-2.0

package bookingui

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/rayliner-project/rayliner/lib/booking"
	"github.com/rayliner-project/rayliner/lib/bookingclient"
	"github.com/rayliner-project/rayliner/lib/credential"
	"github.com/rayliner-project/rayliner/lib/tui"
)

// Mode selects what a flow session is for.
type Mode int

const (
	// ModeBook is the full pipeline: trip pick, seat selection,
	// passenger details, payment, PNR result.
	ModeBook Mode = iota
	// ModeChange re-seats an existing ticket. Passenger fields are
	// locked to the original booking and confirmation submits the
	// change endpoint directly; there is no payment step.
	ModeChange
	// ModeInspect is the admin console's read-only occupancy view.
	// No selection state exists; seats render occupied or free only.
	ModeInspect
)

// Step is the active screen within the flow.
type Step int

const (
	// StepTrips shows the trip list from a prior search.
	StepTrips Step = iota
	// StepSearch picks a route and date: two station dropdowns and a
	// date field, feeding a trip search. Entered only when the session
	// started with neither a trip nor a trip list.
	StepSearch
	// StepSeats shows the wagon seat map, and for bookings the
	// passenger form under it.
	StepSeats
	// StepPayment shows the card form for a new booking.
	StepPayment
	// StepResult shows the outcome: the PNR for a new booking, or
	// the confirmation of a change.
	StepResult
	// StepDeadEnd renders when the payment screen is reached without
	// a seat-selection handoff. The only action is returning to the
	// start of the flow.
	StepDeadEnd
)

// formFocus identifies which input has keyboard focus on the current
// step. The grid is focus zero on the seats step; form fields follow.
type formFocus int

const (
	focusGrid formFocus = iota
	focusName
	focusSurname
)

// Payment form field indices, in tab order.
const (
	payFieldCard = iota
	payFieldHolder
	payFieldCVV
	payFieldExpiry
	payFieldCount
)

// Search form field indices, in tab order.
const (
	searchFieldFrom = iota
	searchFieldTo
	searchFieldDate
	searchFieldCount
)

// searchLabelWidth is the label column of the search form; station
// dropdowns anchor immediately after it.
const searchLabelWidth = 9

// seatsLoadedMsg delivers an asynchronous seat map fetch. seq guards
// against stale responses: a fetch dispatched before the user moved
// on is ignored when it lands, not surfaced.
type seatsLoadedMsg struct {
	seq     int
	seatMap *booking.SeatMap
	err     error
}

// submitDoneMsg delivers the outcome of a create-booking or
// change-booking submission.
type submitDoneMsg struct {
	seq    int
	result booking.Booking
	err    error
}

// tripsLoadedMsg delivers an asynchronous trip search, tagged like
// seat fetches so a stale search result is dropped.
type tripsLoadedMsg struct {
	seq   int
	trips []booking.Trip
	err   error
}

// Config assembles a flow session.
type Config struct {
	// Client talks to the booking server. Required.
	Client *bookingclient.Client
	// Token is attached to booking mutations. The zero value is a
	// guest session: booking without an account is allowed.
	Token credential.UserToken
	// Mode selects book, change, or inspect.
	Mode Mode
	// Trips is the trip list to offer, from a prior search. May be
	// empty when Trip preselects one.
	Trips []booking.Trip
	// Trip preselects a trip and skips the trip list.
	Trip *booking.Trip
	// Stations enables the in-flow route search: when neither Trip nor
	// Trips is given, the session opens on a search form whose station
	// pickers are populated from this list.
	Stations []booking.Station
	// Original is the booking being re-seated. Required for
	// ModeChange, ignored otherwise.
	Original *booking.Booking
}

// Model is the top-level bubbletea model for the booking flow.
type Model struct {
	client *bookingclient.Client
	token  credential.UserToken
	theme  tui.Theme
	keys   KeyMap
	mode   Mode

	// Terminal dimensions (set by WindowSizeMsg).
	width  int
	height int
	ready  bool

	step   Step
	notice string // Inline error/feedback line for the current step.

	// Async request state. loading covers seat fetches; submitting
	// covers booking mutations and disables re-dispatch while a
	// request is in flight. requestSeq tags every dispatch so a
	// response landing after the user moved on is dropped.
	loading    bool
	submitting bool
	requestSeq int

	// Search form state. The dropdown is non-nil while a station
	// picker is open; it captures all keys until closed.
	stations    []booking.Station
	fromStation *booking.Station
	toStation   *booking.Station
	dateInput   textinput.Model
	searchFocus int
	dropdown    *tui.DropdownOverlay

	// Trip list state.
	trips      []booking.Trip
	tripCursor int
	tripScroll int

	// Seat map state. seatCursor indexes into the wagon's seats in
	// corridor-row order (ascending seat number).
	trip       booking.Trip
	seatMap    *booking.SeatMap
	wagonIndex int
	seatCursor int
	selection  booking.Selection
	intent     *booking.Intent
	focus      formFocus

	nameInput    textinput.Model
	surnameInput textinput.Model

	// Payment step state.
	handoff     *booking.Handoff
	payInputs   [payFieldCount]textinput.Model
	payFocus    int
	totalAmount float64

	// Result screen.
	result booking.Booking
}

// NewModel creates a flow model. For ModeChange, config.Original must
// be set; its passenger identity pre-fills the locked form fields.
func NewModel(config Config) Model {
	model := Model{
		client:   config.Client,
		token:    config.Token,
		theme:    tui.DefaultTheme,
		keys:     DefaultKeyMap,
		mode:     config.Mode,
		trips:    config.Trips,
		stations: config.Stations,
	}

	switch config.Mode {
	case ModeBook:
		model.intent = booking.NewBookingIntent()
	case ModeChange:
		if config.Original != nil {
			model.intent = booking.ChangeTicketIntent(*config.Original)
		}
	}

	model.nameInput = newFormInput("Name", 64)
	model.surnameInput = newFormInput("Surname", 64)
	if model.intent != nil && model.intent.Kind() == booking.IntentChange {
		name, surname := model.intent.Passenger()
		model.nameInput.SetValue(name)
		model.surnameInput.SetValue(surname)
	}

	model.payInputs[payFieldCard] = newFormInput("1234 5678 9012 3456", 19)
	model.payInputs[payFieldHolder] = newFormInput("NAME ON CARD", 64)
	model.payInputs[payFieldCVV] = newFormInput("123", 3)
	model.payInputs[payFieldExpiry] = newFormInput("MM/YY", 5)
	model.dateInput = newFormInput("YYYY-MM-DD", 10)

	switch {
	case config.Trip != nil:
		model.trip = *config.Trip
		model.step = StepSeats
		model.loading = true
	case len(config.Trips) == 0 && len(config.Stations) > 0:
		model.step = StepSearch
	default:
		model.step = StepTrips
	}

	return model
}

// newFormInput creates a single-line input with the flow's shared
// configuration.
func newFormInput(placeholder string, limit int) textinput.Model {
	input := textinput.New()
	input.Placeholder = placeholder
	input.CharLimit = limit
	input.Prompt = ""
	return input
}

// Init implements tea.Model. Fetches seats immediately when the trip
// was preselected. Init receives a copy of the model, so the fetch is
// built against the current sequence counter rather than advancing it.
func (model Model) Init() tea.Cmd {
	if model.step == StepSeats {
		return loadSeatsCmd(model.client, model.trip.ID, model.requestSeq)
	}
	return nil
}

// fetchSeats returns a command that loads the current trip's seat
// map, advancing the sequence counter so earlier in-flight fetches
// are dropped when they land.
func (model *Model) fetchSeats() tea.Cmd {
	model.requestSeq++
	return loadSeatsCmd(model.client, model.trip.ID, model.requestSeq)
}

// loadSeatsCmd fetches a trip's seat map and delivers it tagged with
// the dispatch sequence.
func loadSeatsCmd(client *bookingclient.Client, tripID int64, seq int) tea.Cmd {
	return func() tea.Msg {
		seatMap, err := client.TripSeats(context.Background(), tripID)
		return seatsLoadedMsg{seq: seq, seatMap: seatMap, err: err}
	}
}

// submitCreate dispatches the create-booking request for the current
// handoff and card input.
func (model *Model) submitCreate(card booking.CardDetails) tea.Cmd {
	model.requestSeq++
	seq := model.requestSeq
	client := model.client
	token := model.token
	request := bookingclient.NewCreateBookingRequest(*model.handoff, card)
	return func() tea.Msg {
		created, err := client.CreateBooking(context.Background(), token, request)
		return submitDoneMsg{seq: seq, result: created, err: err}
	}
}

// submitChange dispatches the change request for the selected seat.
func (model *Model) submitChange(change booking.ChangeRequest) tea.Cmd {
	model.requestSeq++
	seq := model.requestSeq
	client := model.client
	token := model.token
	return func() tea.Msg {
		changed, err := client.ChangeBooking(context.Background(), token, change)
		return submitDoneMsg{seq: seq, result: changed, err: err}
	}
}

// Update implements tea.Model. Routes keyboard events by step, and
// within the seats and payment steps by which field has focus.
func (model Model) Update(message tea.Msg) (tea.Model, tea.Cmd) {
	switch message := message.(type) {
	case tea.WindowSizeMsg:
		model.width = message.Width
		model.height = message.Height
		model.ready = true

	case tea.KeyMsg:
		return model.handleKey(message)

	case seatsLoadedMsg:
		// A stale fetch (user already navigated again) is ignored.
		if message.seq != model.requestSeq {
			return model, nil
		}
		model.loading = false
		if message.err != nil {
			model.notice = message.err.Error()
			return model, nil
		}
		model.seatMap = message.seatMap
		model.clampWagonIndex()
		model.seatCursor = 0
		return model, nil

	case tripsLoadedMsg:
		if message.seq != model.requestSeq {
			return model, nil
		}
		model.loading = false
		if message.err != nil {
			model.notice = message.err.Error()
			return model, nil
		}
		if len(message.trips) == 0 {
			model.notice = "No trips found for this route and date."
			return model, nil
		}
		model.trips = message.trips
		model.tripCursor = 0
		model.tripScroll = 0
		model.notice = ""
		model.step = StepTrips
		return model, nil

	case submitDoneMsg:
		if message.seq != model.requestSeq {
			return model, nil
		}
		model.submitting = false
		if message.err != nil {
			// The server's wording travels verbatim; no retry is
			// issued — the user resubmits if they want to.
			model.notice = message.err.Error()
			return model, nil
		}
		model.result = message.result
		model.notice = ""
		model.step = StepResult
		// The map is refreshed after every completed booking
		// mutation so a return to the seats screen shows the
		// server's authoritative state.
		return model, model.fetchSeats()
	}
	return model, nil
}

// handleKey routes a key press by step.
func (model Model) handleKey(message tea.KeyMsg) (tea.Model, tea.Cmd) {
	// ctrl+c always quits, regardless of focus.
	if message.Type == tea.KeyCtrlC {
		return model, tea.Quit
	}

	switch model.step {
	case StepSearch:
		return model.handleSearchKey(message)
	case StepTrips:
		return model.handleTripsKey(message)
	case StepSeats:
		return model.handleSeatsKey(message)
	case StepPayment:
		return model.handlePaymentKey(message)
	case StepResult:
		return model.handleResultKey(message)
	case StepDeadEnd:
		if key.Matches(message, model.keys.Confirm) || key.Matches(message, model.keys.Back) {
			model.step = model.startStep()
			model.notice = ""
			return model, nil
		}
		if key.Matches(message, model.keys.Quit) {
			return model, tea.Quit
		}
	}
	return model, nil
}

// handleSearchKey drives the route/date form. An open station
// dropdown captures every key until a selection or dismissal.
func (model Model) handleSearchKey(message tea.KeyMsg) (tea.Model, tea.Cmd) {
	if model.dropdown != nil {
		switch {
		case key.Matches(message, model.keys.Up):
			model.dropdown.MoveUp()
		case key.Matches(message, model.keys.Down):
			model.dropdown.MoveDown()
		case key.Matches(message, model.keys.Confirm):
			model.pickStation(model.dropdown.Field, model.dropdown.Selected())
			model.dropdown = nil
		case key.Matches(message, model.keys.Back):
			model.dropdown = nil
		}
		return model, nil
	}

	switch {
	case key.Matches(message, model.keys.NextField):
		model.cycleSearchFocus(1)
		return model, nil

	case key.Matches(message, model.keys.PreviousField):
		model.cycleSearchFocus(-1)
		return model, nil

	case key.Matches(message, model.keys.Confirm):
		if model.searchFocus == searchFieldDate {
			return model.submitSearch()
		}
		model.openStationDropdown()
		return model, nil
	}

	// The date field owns plain typing; on the station fields the
	// usual quit key still works.
	if model.searchFocus == searchFieldDate {
		var cmd tea.Cmd
		model.dateInput, cmd = model.dateInput.Update(message)
		return model, cmd
	}
	if key.Matches(message, model.keys.Quit) {
		return model, tea.Quit
	}
	return model, nil
}

// openStationDropdown opens the picker for the focused station field,
// anchored just below it, with the cursor on the current choice.
func (model *Model) openStationDropdown() {
	if len(model.stations) == 0 {
		return
	}
	field := "from"
	current := model.fromStation
	if model.searchFocus == searchFieldTo {
		field = "to"
		current = model.toStation
	}

	options := make([]tui.DropdownOption, len(model.stations))
	cursor := 0
	for index, station := range model.stations {
		options[index] = tui.DropdownOption{
			Label: stationLabel(station),
			ID:    station.ID,
		}
		if current != nil && station.ID == current.ID {
			cursor = index
		}
	}
	model.dropdown = &tui.DropdownOverlay{
		Options: options,
		Cursor:  cursor,
		AnchorX: searchLabelWidth,
		AnchorY: 2 + model.searchFocus,
		Field:   field,
	}
}

// pickStation stores a dropdown selection into the field it was
// opened for.
func (model *Model) pickStation(field string, option tui.DropdownOption) {
	for index := range model.stations {
		if model.stations[index].ID != option.ID {
			continue
		}
		station := model.stations[index]
		if field == "to" {
			model.toStation = &station
		} else {
			model.fromStation = &station
		}
		model.notice = ""
		return
	}
}

// cycleSearchFocus moves focus between the search fields, wrapping,
// and keeps the date input's focus state in sync.
func (model *Model) cycleSearchFocus(direction int) {
	model.searchFocus = (model.searchFocus + direction + searchFieldCount) % searchFieldCount
	if model.searchFocus == searchFieldDate {
		model.dateInput.Focus()
	} else {
		model.dateInput.Blur()
	}
}

// submitSearch validates the form and dispatches the trip search.
// Validation failures never reach the network.
func (model Model) submitSearch() (tea.Model, tea.Cmd) {
	if model.fromStation == nil || model.toStation == nil {
		model.notice = "Pick both stations first."
		return model, nil
	}
	if model.fromStation.ID == model.toStation.ID {
		model.notice = "Origin and destination are the same station."
		return model, nil
	}
	date := strings.TrimSpace(model.dateInput.Value())
	if _, err := time.Parse("2006-01-02", date); err != nil {
		model.notice = "Enter the date as YYYY-MM-DD."
		return model, nil
	}
	if model.loading {
		return model, nil
	}

	model.loading = true
	model.notice = ""
	return model, model.searchTripsCmd(date)
}

// searchTripsCmd dispatches the search, advancing the sequence counter
// so an abandoned search cannot land later.
func (model *Model) searchTripsCmd(date string) tea.Cmd {
	model.requestSeq++
	seq := model.requestSeq
	client := model.client
	fromID := model.fromStation.ID
	toID := model.toStation.ID
	return func() tea.Msg {
		trips, err := client.SearchTrips(context.Background(), fromID, toID, date)
		return tripsLoadedMsg{seq: seq, trips: trips, err: err}
	}
}

// startStep is the first screen of this session: the search form when
// the flow opened with one, otherwise the trip list.
func (model Model) startStep() Step {
	if len(model.stations) > 0 && len(model.trips) == 0 {
		return StepSearch
	}
	return StepTrips
}

// stationLabel is the display text for a station in the pickers.
func stationLabel(station booking.Station) string {
	if station.Code != "" {
		return fmt.Sprintf("%s (%s)", station.Name, station.Code)
	}
	return station.Name
}

// handleTripsKey navigates the trip list.
func (model Model) handleTripsKey(message tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(message, model.keys.Quit):
		return model, tea.Quit

	case key.Matches(message, model.keys.Back):
		if len(model.stations) > 0 {
			model.step = StepSearch
			model.notice = ""
		}

	case key.Matches(message, model.keys.Up):
		if model.tripCursor > 0 {
			model.tripCursor--
		}
		model.scrollTripListToCursor()

	case key.Matches(message, model.keys.Down):
		if model.tripCursor < len(model.trips)-1 {
			model.tripCursor++
		}
		model.scrollTripListToCursor()

	case key.Matches(message, model.keys.Confirm):
		if len(model.trips) == 0 {
			return model, nil
		}
		model.trip = model.trips[model.tripCursor]
		model.step = StepSeats
		model.seatMap = nil
		model.wagonIndex = 0
		model.seatCursor = 0
		// Leaving the seats screen destroys its selection; entering
		// it fresh must not inherit one either.
		model.selection.Clear()
		model.focus = focusGrid
		model.notice = ""
		model.loading = true
		return model, model.fetchSeats()
	}
	return model, nil
}

// handleSeatsKey drives the seat map and, for new bookings, the
// passenger form beneath it.
func (model Model) handleSeatsKey(message tea.KeyMsg) (tea.Model, tea.Cmd) {
	// Text input focus: route typing to the focused field and keep
	// only the structural keys for ourselves.
	if model.focus == focusName || model.focus == focusSurname {
		switch {
		case key.Matches(message, model.keys.NextField):
			model.cycleSeatsFocus(1)
			return model, nil
		case key.Matches(message, model.keys.PreviousField):
			model.cycleSeatsFocus(-1)
			return model, nil
		case key.Matches(message, model.keys.Back):
			model.setSeatsFocus(focusGrid)
			return model, nil
		case key.Matches(message, model.keys.Confirm):
			return model.confirmSeats()
		}
		var cmd tea.Cmd
		if model.focus == focusName {
			model.nameInput, cmd = model.nameInput.Update(message)
		} else {
			model.surnameInput, cmd = model.surnameInput.Update(message)
		}
		model.syncPassenger()
		return model, cmd
	}

	switch {
	case key.Matches(message, model.keys.Quit):
		return model, tea.Quit

	case key.Matches(message, model.keys.Back):
		if len(model.trips) > 0 {
			model.step = StepTrips
			// The selection is screen-scoped: navigating away
			// destroys it.
			model.selection.Clear()
			model.notice = ""
		}

	case key.Matches(message, model.keys.NextWagon):
		model.switchWagon(1)

	case key.Matches(message, model.keys.PreviousWagon):
		model.switchWagon(-1)

	case key.Matches(message, model.keys.Up):
		model.moveSeatCursor(-seatsPerRow())

	case key.Matches(message, model.keys.Down):
		model.moveSeatCursor(seatsPerRow())

	case key.Matches(message, model.keys.Left):
		model.moveSeatCursor(-1)

	case key.Matches(message, model.keys.Right):
		model.moveSeatCursor(1)

	case key.Matches(message, model.keys.NextField):
		if model.passengerFormVisible() {
			model.cycleSeatsFocus(1)
		}

	case key.Matches(message, model.keys.Toggle):
		model.tapSeatUnderCursor()

	case key.Matches(message, model.keys.Confirm):
		return model.confirmSeats()
	}
	return model, nil
}

// confirmSeats advances past the seat map: to payment for a new
// booking, straight to submission for a change. Inspect mode has
// nothing to confirm.
func (model Model) confirmSeats() (tea.Model, tea.Cmd) {
	if model.intent == nil {
		return model, nil
	}
	if model.submitting {
		// A submission is already in flight; re-dispatch is blocked
		// until it lands.
		return model, nil
	}

	switch model.intent.Kind() {
	case booking.IntentNew:
		handoff, err := model.intent.ConfirmHandoff(model.trip.ID, &model.selection)
		if err != nil {
			model.notice = flowMessage(err)
			return model, nil
		}
		model.handoff = handoff
		model.totalAmount = model.trip.BasePrice
		model.notice = ""
		model.step = StepPayment
		model.setPayFocus(payFieldCard)
		return model, nil

	case booking.IntentChange:
		change, err := model.intent.ConfirmChange(model.trip.ID, &model.selection)
		if err != nil {
			model.notice = flowMessage(err)
			return model, nil
		}
		model.submitting = true
		model.notice = ""
		return model, model.submitChange(*change)
	}
	return model, nil
}

// handlePaymentKey drives the card form.
func (model Model) handlePaymentKey(message tea.KeyMsg) (tea.Model, tea.Cmd) {
	if model.handoff == nil {
		// Payment without a handoff is a dead end, not a crash.
		model.step = StepDeadEnd
		return model, nil
	}

	switch {
	case key.Matches(message, model.keys.Back):
		// Cancelling payment keeps the selection and intent; the
		// user lands back on the seat map to reconsider.
		model.step = StepSeats
		model.handoff = nil
		model.notice = ""
		return model, nil

	case key.Matches(message, model.keys.NextField):
		model.setPayFocus((model.payFocus + 1) % payFieldCount)
		return model, nil

	case key.Matches(message, model.keys.PreviousField):
		model.setPayFocus((model.payFocus + payFieldCount - 1) % payFieldCount)
		return model, nil

	case key.Matches(message, model.keys.Confirm):
		return model.submitPayment()
	}

	var cmd tea.Cmd
	model.payInputs[model.payFocus], cmd = model.payInputs[model.payFocus].Update(message)
	model.reformatPayInput()
	return model, cmd
}

// submitPayment validates the card locally and dispatches the
// create-booking request. Validation failures never reach the
// network.
func (model Model) submitPayment() (tea.Model, tea.Cmd) {
	if model.submitting {
		return model, nil
	}

	card := model.cardDetails()
	if err := card.Validate(); err != nil {
		model.notice = flowMessage(err)
		return model, nil
	}

	model.submitting = true
	model.notice = ""
	return model, model.submitCreate(card)
}

// handleResultKey: any of the usual exits quits; Back returns to the
// seat map (already refreshed by the post-mutation fetch).
func (model Model) handleResultKey(message tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(message, model.keys.Quit), key.Matches(message, model.keys.Confirm):
		return model, tea.Quit
	case key.Matches(message, model.keys.Back):
		if model.mode == ModeBook {
			// Book another seat on the same trip. The previous
			// intent was consumed; start a fresh one.
			model.intent = booking.NewBookingIntent()
			model.selection.Clear()
			model.nameInput.SetValue("")
			model.surnameInput.SetValue("")
			model.handoff = nil
			model.step = StepSeats
			model.setSeatsFocus(focusGrid)
		}
	}
	return model, nil
}

// cardDetails assembles the card input in wire form. The card number
// is stored formatted for display and stripped here.
func (model Model) cardDetails() booking.CardDetails {
	return booking.CardDetails{
		Number:     booking.NormalizeCardNumber(model.payInputs[payFieldCard].Value()),
		Holder:     model.payInputs[payFieldHolder].Value(),
		CVV:        model.payInputs[payFieldCVV].Value(),
		ExpiryDate: model.payInputs[payFieldExpiry].Value(),
	}
}

// reformatPayInput reapplies display formatting to the field that was
// just edited: digit grouping for the card number, the auto-slash for
// the expiry.
func (model *Model) reformatPayInput() {
	switch model.payFocus {
	case payFieldCard:
		formatted := booking.FormatCardNumber(
			booking.NormalizeCardNumber(model.payInputs[payFieldCard].Value()))
		if formatted != model.payInputs[payFieldCard].Value() {
			model.payInputs[payFieldCard].SetValue(formatted)
			model.payInputs[payFieldCard].CursorEnd()
		}
	case payFieldExpiry:
		normalized := booking.NormalizeExpiry(model.payInputs[payFieldExpiry].Value())
		if normalized != model.payInputs[payFieldExpiry].Value() {
			model.payInputs[payFieldExpiry].SetValue(normalized)
			model.payInputs[payFieldExpiry].CursorEnd()
		}
	}
}

// syncPassenger copies the form fields into the intent. No-op for
// change intents, whose passenger identity is fixed.
func (model *Model) syncPassenger() {
	if model.intent == nil || model.intent.Kind() != booking.IntentNew {
		return
	}
	model.intent.SetPassenger(model.nameInput.Value(), model.surnameInput.Value())
}

// passengerFormVisible reports whether the seats step shows editable
// passenger fields. Only new bookings do: changes lock them, inspect
// has none.
func (model Model) passengerFormVisible() bool {
	return model.intent != nil && model.intent.Kind() == booking.IntentNew
}

// cycleSeatsFocus moves focus between the grid and the passenger form
// fields, wrapping in either direction.
func (model *Model) cycleSeatsFocus(direction int) {
	if !model.passengerFormVisible() {
		return
	}
	order := []formFocus{focusGrid, focusName, focusSurname}
	index := 0
	for i, focus := range order {
		if focus == model.focus {
			index = i
			break
		}
	}
	index = (index + direction + len(order)) % len(order)
	model.setSeatsFocus(order[index])
}

// setSeatsFocus moves focus on the seats step and keeps the textinput
// focus state in sync.
func (model *Model) setSeatsFocus(focus formFocus) {
	model.focus = focus
	model.nameInput.Blur()
	model.surnameInput.Blur()
	switch focus {
	case focusName:
		model.nameInput.Focus()
	case focusSurname:
		model.surnameInput.Focus()
	}
}

// setPayFocus moves focus between payment fields.
func (model *Model) setPayFocus(field int) {
	model.payFocus = field
	for index := range model.payInputs {
		if index == field {
			model.payInputs[index].Focus()
		} else {
			model.payInputs[index].Blur()
		}
	}
}

// currentWagon returns the displayed wagon, or a zero value when no
// seat map is loaded.
func (model Model) currentWagon() booking.Wagon {
	if model.seatMap == nil || model.wagonIndex >= len(model.seatMap.Wagons) {
		return booking.Wagon{}
	}
	return model.seatMap.Wagons[model.wagonIndex]
}

// wagonSeatsInOrder returns the displayed wagon's seats in corridor
// row order, the order the seat cursor walks.
func (model Model) wagonSeatsInOrder() []booking.Seat {
	if model.seatMap == nil {
		return nil
	}
	rows := booking.BuildRows(model.seatMap.WagonSeats(model.currentWagon().WagonNumber))
	var ordered []booking.Seat
	for _, row := range rows {
		ordered = append(ordered, row.Seats()...)
	}
	return ordered
}

// switchWagon steps the displayed wagon, wrapping at the ends. The
// seat selection deliberately survives: a user may pick a seat,
// browse other wagons, and come back.
func (model *Model) switchWagon(direction int) {
	if model.seatMap == nil || len(model.seatMap.Wagons) == 0 {
		return
	}
	count := len(model.seatMap.Wagons)
	model.wagonIndex = (model.wagonIndex + direction + count) % count
	model.seatCursor = 0
}

// clampWagonIndex keeps the wagon index valid after a seat map
// refresh changed the wagon count.
func (model *Model) clampWagonIndex() {
	if model.seatMap == nil || len(model.seatMap.Wagons) == 0 {
		model.wagonIndex = 0
		return
	}
	if model.wagonIndex >= len(model.seatMap.Wagons) {
		model.wagonIndex = len(model.seatMap.Wagons) - 1
	}
}

// moveSeatCursor moves the grid cursor by the given offset in corridor
// order, clamping at the wagon's bounds.
func (model *Model) moveSeatCursor(offset int) {
	seats := model.wagonSeatsInOrder()
	if len(seats) == 0 {
		return
	}
	model.seatCursor += offset
	if model.seatCursor < 0 {
		model.seatCursor = 0
	}
	if model.seatCursor >= len(seats) {
		model.seatCursor = len(seats) - 1
	}
}

// tapSeatUnderCursor applies a tap to the seat under the cursor.
// Inspect mode has no selection; occupied seats are a no-op by the
// selection's own rules.
func (model *Model) tapSeatUnderCursor() {
	if model.mode == ModeInspect {
		return
	}
	seats := model.wagonSeatsInOrder()
	if model.seatCursor >= len(seats) {
		return
	}
	if model.selection.Tap(seats[model.seatCursor], model.currentWagon().WagonNumber) {
		model.notice = ""
	}
}

// scrollTripListToCursor keeps the trip cursor inside the visible
// window of the trip list.
func (model *Model) scrollTripListToCursor() {
	visible := model.tripListHeight()
	if visible <= 0 {
		return
	}
	if model.tripCursor < model.tripScroll {
		model.tripScroll = model.tripCursor
	}
	if model.tripCursor >= model.tripScroll+visible {
		model.tripScroll = model.tripCursor - visible + 1
	}
}

// seatsPerRow is the corridor width the cursor moves over: two seats,
// the aisle, two seats.
func seatsPerRow() int { return 4 }

// flowMessage rewords the flow's sentinel errors for the inline
// notice line; anything else passes through as-is.
func flowMessage(err error) string {
	switch err {
	case booking.ErrNoSeatSelected:
		return "Select a seat first."
	case booking.ErrPassengerIncomplete:
		return "Enter the passenger's name and surname."
	case booking.ErrCardNumber:
		return "Card number must be 16 digits."
	case booking.ErrCardCVV:
		return "CVV must be 3 digits."
	case booking.ErrCardExpiry:
		return "Expiry must be MM/YY."
	}
	return err.Error()
}

// Selected exposes the current selection for tests and callers that
// resume the flow.
func (model Model) Selected() *booking.SelectedSeat {
	return model.selection.Seat()
}

// Result returns the booking produced by a completed flow. Only
// meaningful once the result screen has been reached.
func (model Model) Result() booking.Booking {
	return model.result
}

// stepTitle names the current screen for the header line.
func (model Model) stepTitle() string {
	switch model.step {
	case StepSearch:
		return "Search trips"
	case StepTrips:
		return "Trips"
	case StepSeats:
		switch model.mode {
		case ModeChange:
			return "Pick a new seat"
		case ModeInspect:
			return "Seat occupancy"
		default:
			return "Pick a seat"
		}
	case StepPayment:
		return fmt.Sprintf("Payment — %.2f", model.totalAmount)
	case StepResult:
		return "Done"
	default:
		return ""
	}
}
