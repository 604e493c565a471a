// Copyright 2026 The Rayliner Authors
// SPDX-License-Identifier: Apache-2.0

package commands

import (
	"context"
	"fmt"
	"os"
	"strconv"
	"text/tabwriter"

	"github.com/spf13/pflag"

	"github.com/rayliner-project/rayliner/lib/booking"
	"github.com/rayliner-project/rayliner/lib/bookingui"
	"github.com/rayliner-project/rayliner/lib/cli"
	"github.com/rayliner-project/rayliner/lib/ticketdoc"
)

// ticketsCommand returns the "tickets" command tree: list the
// account's tickets and manage them.
func ticketsCommand() *cli.Command {
	var configPath string
	var asJSON bool

	return &cli.Command{
		Name:    "tickets",
		Summary: "List and manage your tickets",
		Usage:   "rayliner tickets [cancel|change|export] ...",
		Flags: func() *pflag.FlagSet {
			flagSet := pflag.NewFlagSet("tickets", pflag.ContinueOnError)
			flagSet.StringVar(&configPath, "config", "", "path to config file")
			flagSet.BoolVar(&asJSON, "json", false, "print tickets as JSON")
			return flagSet
		},
		Subcommands: []*cli.Command{
			cancelTicketCommand(),
			changeTicketCommand(),
			exportTicketCommand(),
		},
		Run: func(args []string) error {
			env, err := newEnv(configPath)
			if err != nil {
				return err
			}
			token, err := env.userToken()
			if err != nil {
				return err
			}
			defer token.Close()

			tickets, err := env.client.MyTickets(context.Background(), token)
			if err != nil {
				return err
			}
			if asJSON {
				return cli.WriteJSON(tickets)
			}
			if len(tickets) == 0 {
				fmt.Println("No tickets.")
				return nil
			}
			printTicketTable(tickets)
			return nil
		},
	}
}

// cancelTicketCommand returns "tickets cancel".
func cancelTicketCommand() *cli.Command {
	var configPath string

	return &cli.Command{
		Name:    "cancel",
		Summary: "Cancel a ticket",
		Usage:   "rayliner tickets cancel <ticket-id>",
		Flags: func() *pflag.FlagSet {
			flagSet := pflag.NewFlagSet("cancel", pflag.ContinueOnError)
			flagSet.StringVar(&configPath, "config", "", "path to config file")
			return flagSet
		},
		Run: func(args []string) error {
			ticketID, err := ticketIDArg(args)
			if err != nil {
				return err
			}
			env, err := newEnv(configPath)
			if err != nil {
				return err
			}
			token, err := env.userToken()
			if err != nil {
				return err
			}
			defer token.Close()

			ctx := context.Background()
			tickets, err := env.client.MyTickets(ctx, token)
			if err != nil {
				return err
			}
			ticket, err := findTicket(tickets, ticketID)
			if err != nil {
				return err
			}
			if ticket.Status == booking.StatusCancelled {
				return cli.Validation("ticket %d is already cancelled", ticketID)
			}

			if err := env.client.CancelBooking(ctx, token, ticketID); err != nil {
				return err
			}
			fmt.Printf("Ticket %d cancelled.\n", ticketID)
			return nil
		},
	}
}

// changeTicketCommand returns "tickets change": re-seat an existing
// ticket interactively. Passenger details carry over from the original
// booking; no new payment is taken.
func changeTicketCommand() *cli.Command {
	var configPath string
	var from string
	var to string
	var date string

	return &cli.Command{
		Name:    "change",
		Summary: "Move a ticket to a different trip or seat",
		Description: `Open the seat map to re-seat an existing ticket. By default the
new seat is picked on the ticket's own trip; the search flags
offer trips on a different route or date instead.`,
		Usage: "rayliner tickets change <ticket-id> [--from ... --to ... --date ...]",
		Flags: func() *pflag.FlagSet {
			flagSet := pflag.NewFlagSet("change", pflag.ContinueOnError)
			flagSet.StringVar(&configPath, "config", "", "path to config file")
			flagSet.StringVar(&from, "from", "", "origin station for a new trip search")
			flagSet.StringVar(&to, "to", "", "destination station")
			flagSet.StringVar(&date, "date", "", "travel date (YYYY-MM-DD)")
			return flagSet
		},
		Run: func(args []string) error {
			ticketID, err := ticketIDArg(args)
			if err != nil {
				return err
			}
			env, err := newEnv(configPath)
			if err != nil {
				return err
			}
			token, err := env.userToken()
			if err != nil {
				return err
			}
			defer token.Close()
			ctx := context.Background()

			tickets, err := env.client.MyTickets(ctx, token)
			if err != nil {
				return err
			}
			original, err := findTicket(tickets, ticketID)
			if err != nil {
				return err
			}
			if original.Status == booking.StatusCancelled {
				return cli.Validation("ticket %d is cancelled and cannot be changed", ticketID)
			}

			config := bookingui.Config{
				Client:   env.client,
				Token:    token,
				Mode:     bookingui.ModeChange,
				Original: &original,
			}
			if from != "" && to != "" && date != "" {
				trips, err := searchTrips(ctx, env, from, to, date)
				if err != nil {
					return err
				}
				if len(trips) == 0 {
					return cli.NotFound("no trips from %s to %s on %s", from, to, date)
				}
				config.Trips = trips
			} else {
				trip, err := env.client.Trip(ctx, original.TripID)
				if err != nil {
					return err
				}
				config.Trip = &trip
			}

			final, err := runBookingFlow(config)
			if err != nil {
				return err
			}
			result := final.Result()
			if result.PNRCode == "" {
				fmt.Println("Ticket unchanged.")
				return nil
			}
			fmt.Printf("Ticket moved. PNR %s — wagon %d seat %d.\n",
				result.PNRCode, result.WagonNo, result.SeatNo)
			return nil
		},
	}
}

// exportTicketCommand returns "tickets export": write an e-ticket PDF
// with an embedded boarding QR code.
func exportTicketCommand() *cli.Command {
	var configPath string
	var outputPath string

	return &cli.Command{
		Name:    "export",
		Summary: "Export a ticket as a PDF",
		Usage:   "rayliner tickets export <ticket-id> [--output <path>]",
		Flags: func() *pflag.FlagSet {
			flagSet := pflag.NewFlagSet("export", pflag.ContinueOnError)
			flagSet.StringVar(&configPath, "config", "", "path to config file")
			flagSet.StringVar(&outputPath, "output", "", "output path (defaults to eticket_<pnr>.pdf)")
			return flagSet
		},
		Run: func(args []string) error {
			ticketID, err := ticketIDArg(args)
			if err != nil {
				return err
			}
			env, err := newEnv(configPath)
			if err != nil {
				return err
			}
			token, err := env.userToken()
			if err != nil {
				return err
			}
			defer token.Close()

			tickets, err := env.client.MyTickets(context.Background(), token)
			if err != nil {
				return err
			}
			ticket, err := findTicket(tickets, ticketID)
			if err != nil {
				return err
			}

			document, filename, err := ticketdoc.TicketPDF(ticket)
			if err != nil {
				return err
			}
			if outputPath == "" {
				outputPath = filename
			}
			if err := os.WriteFile(outputPath, document, 0o644); err != nil {
				return fmt.Errorf("writing e-ticket: %w", err)
			}
			fmt.Printf("Wrote %s\n", outputPath)
			return nil
		},
	}
}

func ticketIDArg(args []string) (int64, error) {
	if len(args) != 1 {
		return 0, cli.Validation("expected exactly one ticket ID argument")
	}
	ticketID, err := strconv.ParseInt(args[0], 10, 64)
	if err != nil {
		return 0, cli.Validation("invalid ticket ID %q", args[0])
	}
	return ticketID, nil
}

func printTicketTable(tickets []booking.Booking) {
	writer := tabwriter.NewWriter(os.Stdout, 2, 0, 3, ' ', 0)
	fmt.Fprintln(writer, "ID\tPNR\tTRIP\tDATE\tSEAT\tSTATUS\tPRICE")
	for _, ticket := range tickets {
		fmt.Fprintf(writer, "%d\t%s\t%s\t%s\tw%d s%d\t%s\t%.2f\n",
			ticket.ID, ticket.PNRCode, ticket.TripNumber, ticket.Date(),
			ticket.WagonNo, ticket.SeatNo, ticket.Status, ticket.TotalPrice)
	}
	writer.Flush()
}
