// Copyright 2026 The Rayliner Authors
// SPDX-License-Identifier: Apache-2.0

package commands

import (
	"context"
	"fmt"
	"os"
	"text/tabwriter"
	"time"

	"github.com/spf13/pflag"

	"github.com/rayliner-project/rayliner/lib/booking"
	"github.com/rayliner-project/rayliner/lib/cli"
)

// searchCommand returns the "search" command: find trips between two
// stations on a given date.
func searchCommand() *cli.Command {
	var configPath string
	var asJSON bool

	return &cli.Command{
		Name:    "search",
		Summary: "Search trips between two stations",
		Description: `Search for trips. Stations may be given by code, name, or a
unique name prefix; the date is YYYY-MM-DD.`,
		Usage: "rayliner search <from> <to> <date>",
		Examples: []cli.Example{
			{
				Description: "Trips from Ankara to İstanbul",
				Command:     "rayliner search ANK IST 2026-09-14",
			},
		},
		Flags: func() *pflag.FlagSet {
			flagSet := pflag.NewFlagSet("search", pflag.ContinueOnError)
			flagSet.StringVar(&configPath, "config", "", "path to config file")
			flagSet.BoolVar(&asJSON, "json", false, "print trips as JSON")
			return flagSet
		},
		Run: func(args []string) error {
			if len(args) != 3 {
				return cli.Validation("usage: rayliner search <from> <to> <date>")
			}
			date := args[2]
			if _, err := time.Parse("2006-01-02", date); err != nil {
				return cli.Validation("invalid date %q: expected YYYY-MM-DD", date)
			}

			env, err := newEnv(configPath)
			if err != nil {
				return err
			}
			ctx := context.Background()

			trips, err := searchTrips(ctx, env, args[0], args[1], date)
			if err != nil {
				return err
			}
			if asJSON {
				return cli.WriteJSON(trips)
			}
			if len(trips) == 0 {
				fmt.Println("No trips found.")
				return nil
			}
			printTripTable(trips)
			return nil
		},
	}
}

// searchTrips resolves the station references and runs the search.
func searchTrips(ctx context.Context, env *appEnv, from, to, date string) ([]booking.Trip, error) {
	stations, err := env.client.Stations(ctx)
	if err != nil {
		return nil, err
	}
	origin, err := resolveStation(stations, from)
	if err != nil {
		return nil, err
	}
	destination, err := resolveStation(stations, to)
	if err != nil {
		return nil, err
	}
	if origin.ID == destination.ID {
		return nil, cli.Validation("origin and destination are the same station (%s)", origin.Name)
	}
	return env.client.SearchTrips(ctx, origin.ID, destination.ID, date)
}

func printTripTable(trips []booking.Trip) {
	writer := tabwriter.NewWriter(os.Stdout, 2, 0, 3, ' ', 0)
	fmt.Fprintln(writer, "ID\tTRIP\tROUTE\tDATE\tDEPART\tARRIVE\tSEATS\tPRICE")
	for _, trip := range trips {
		fmt.Fprintf(writer, "%d\t%s\t%s → %s\t%s\t%s\t%s\t%d\t%.2f\n",
			trip.ID, trip.TripNumber,
			trip.DepartureStationName, trip.ArrivalStationName,
			trip.TripDate, trip.DepartureTime, trip.ArrivalTime,
			trip.AvailableSeats, trip.BasePrice)
	}
	writer.Flush()
}
