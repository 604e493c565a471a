// Copyright 2026 The Rayliner Authors
// SPDX-License-Identifier: Apache-2.0

package commands

import (
	"context"
	"fmt"
	"strings"

	"github.com/spf13/pflag"

	"github.com/rayliner-project/rayliner/lib/booking"
	"github.com/rayliner-project/rayliner/lib/bookingclient"
	"github.com/rayliner-project/rayliner/lib/cli"
	"github.com/rayliner-project/rayliner/lib/ticketdoc"
)

// pnrCommand returns the "pnr" command: look up a booking by its PNR
// code. This works without a login — the PNR is the credential.
func pnrCommand() *cli.Command {
	var configPath string
	var asJSON bool
	var showQR bool

	return &cli.Command{
		Name:    "pnr",
		Summary: "Look up a booking by PNR code",
		Usage:   "rayliner pnr <code> [--qr]",
		Examples: []cli.Example{
			{
				Description: "Show a booking with its boarding QR code",
				Command:     "rayliner pnr A7K2M9 --qr",
			},
		},
		Flags: func() *pflag.FlagSet {
			flagSet := pflag.NewFlagSet("pnr", pflag.ContinueOnError)
			flagSet.StringVar(&configPath, "config", "", "path to config file")
			flagSet.BoolVar(&asJSON, "json", false, "print the booking as JSON")
			flagSet.BoolVar(&showQR, "qr", false, "render the PNR as a terminal QR code")
			return flagSet
		},
		Run: func(args []string) error {
			if len(args) != 1 {
				return cli.Validation("usage: rayliner pnr <code>")
			}
			code := strings.ToUpper(strings.TrimSpace(args[0]))
			if code == "" {
				return cli.Validation("empty PNR code")
			}

			env, err := newEnv(configPath)
			if err != nil {
				return err
			}
			found, err := env.client.BookingByPNR(context.Background(), code)
			if err != nil {
				return pnrLookupError(err, code)
			}

			if asJSON {
				return cli.WriteJSON(found)
			}
			printBookingDetail(found)
			if showQR {
				qr, err := ticketdoc.PNRQRTerminal(found.PNRCode)
				if err != nil {
					return err
				}
				fmt.Println()
				fmt.Println(qr)
			}
			return nil
		},
	}
}

// pnrLookupError translates a failed PNR lookup. A 404 means the code
// itself is wrong — the caller gets a not-found with the code in it,
// not the server's wording. Everything else passes through.
func pnrLookupError(err error, code string) error {
	if bookingclient.IsNotFound(err) {
		return cli.NotFound("no booking with PNR %s", code)
	}
	return err
}

// printBookingDetail writes the full detail view of one booking.
func printBookingDetail(ticket booking.Booking) {
	fmt.Printf("PNR:       %s\n", ticket.PNRCode)
	fmt.Printf("Passenger: %s %s\n", ticket.PassengerName, ticket.PassengerSurname)
	fmt.Printf("Trip:      %s\n", ticket.TripNumber)
	fmt.Printf("Date:      %s\n", ticket.Date())
	fmt.Printf("Seat:      wagon %d, seat %d\n", ticket.WagonNo, ticket.SeatNo)
	fmt.Printf("Status:    %s\n", ticket.Status)
	fmt.Printf("Price:     %.2f\n", ticket.TotalPrice)
	if ticket.CreatedAt != "" {
		fmt.Printf("Booked:    %s\n", ticket.CreatedAt)
	}
}
