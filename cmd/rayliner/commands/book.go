// Copyright 2026 The Rayliner Authors
// SPDX-License-Identifier: Apache-2.0

package commands

import (
	"context"
	"fmt"
	"strconv"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/pflag"

	"github.com/rayliner-project/rayliner/lib/booking"
	"github.com/rayliner-project/rayliner/lib/bookingui"
	"github.com/rayliner-project/rayliner/lib/cli"
)

// bookCommand returns the "book" command: the interactive booking
// flow. A trip ID argument jumps straight to seat selection; the
// search flags offer a trip list first.
func bookCommand() *cli.Command {
	var configPath string
	var from string
	var to string
	var date string

	return &cli.Command{
		Name:    "book",
		Summary: "Book a seat interactively",
		Description: `Open the interactive booking flow: pick a trip, pick a seat on
the wagon map, enter passenger and payment details.

With no arguments the flow opens on a search form with station
pickers. A trip ID jumps straight to its seat map; the search
flags skip the form and open on the result list.

Booking works with or without a login. When logged in, the ticket
is attached to the account and appears under 'rayliner tickets';
guest bookings are retrievable by PNR only.`,
		Usage: "rayliner book [<trip-id> | --from <station> --to <station> --date <YYYY-MM-DD>]",
		Examples: []cli.Example{
			{
				Description: "Pick the route interactively",
				Command:     "rayliner book",
			},
			{
				Description: "Book a seat on a known trip",
				Command:     "rayliner book 42",
			},
			{
				Description: "Search first, then book",
				Command:     "rayliner book --from ANK --to IST --date 2026-09-14",
			},
		},
		Flags: func() *pflag.FlagSet {
			flagSet := pflag.NewFlagSet("book", pflag.ContinueOnError)
			flagSet.StringVar(&configPath, "config", "", "path to config file")
			flagSet.StringVar(&from, "from", "", "origin station (code, name, or prefix)")
			flagSet.StringVar(&to, "to", "", "destination station")
			flagSet.StringVar(&date, "date", "", "travel date (YYYY-MM-DD)")
			return flagSet
		},
		Run: func(args []string) error {
			env, err := newEnv(configPath)
			if err != nil {
				return err
			}
			ctx := context.Background()

			config := bookingui.Config{
				Client: env.client,
				Mode:   bookingui.ModeBook,
			}

			switch {
			case len(args) == 1:
				tripID, err := strconv.ParseInt(args[0], 10, 64)
				if err != nil {
					return cli.Validation("invalid trip ID %q", args[0])
				}
				trip, err := env.client.Trip(ctx, tripID)
				if err != nil {
					return err
				}
				config.Trip = &trip
			case from != "" && to != "" && date != "":
				trips, err := searchTrips(ctx, env, from, to, date)
				if err != nil {
					return err
				}
				if len(trips) == 0 {
					return cli.NotFound("no trips from %s to %s on %s", from, to, date)
				}
				config.Trips = trips
			case from == "" && to == "" && date == "":
				stations, err := env.client.Stations(ctx)
				if err != nil {
					return err
				}
				if len(stations) == 0 {
					return cli.NotFound("the server has no stations to search between")
				}
				config.Stations = stations
			default:
				return cli.Validation("--from, --to and --date go together")
			}

			// Guests may book; a stored session attaches the ticket to
			// the account.
			token, err := env.optionalUserToken()
			if err != nil {
				return err
			}
			defer token.Close()
			config.Token = token

			final, err := runBookingFlow(config)
			if err != nil {
				return err
			}
			reportBooking(final)
			return nil
		},
	}
}

// runBookingFlow runs the interactive flow in the alternate screen and
// returns the final model state.
func runBookingFlow(config bookingui.Config) (bookingui.Model, error) {
	program := tea.NewProgram(bookingui.NewModel(config), tea.WithAltScreen())
	final, err := program.Run()
	if err != nil {
		return bookingui.Model{}, cli.Internal("booking flow failed: %v", err)
	}
	model, ok := final.(bookingui.Model)
	if !ok {
		return bookingui.Model{}, cli.Internal("booking flow returned unexpected model %T", final)
	}
	return model, nil
}

// reportBooking prints the outcome after the screen is restored, so
// the PNR survives in the scrollback.
func reportBooking(model bookingui.Model) {
	result := model.Result()
	if result.PNRCode == "" {
		fmt.Println("No booking made.")
		return
	}
	fmt.Printf("Booked. PNR %s — %s %s, wagon %d seat %d.\n",
		result.PNRCode, result.PassengerName, result.PassengerSurname,
		result.WagonNo, result.SeatNo)
	fmt.Printf("Keep the PNR: 'rayliner pnr %s' retrieves this ticket.\n", result.PNRCode)
}

// findTicket locates one of the caller's tickets by ID.
func findTicket(tickets []booking.Booking, id int64) (booking.Booking, error) {
	for _, ticket := range tickets {
		if ticket.ID == id {
			return ticket, nil
		}
	}
	return booking.Booking{}, cli.NotFound("no ticket with ID %d; see 'rayliner tickets'", id)
}
