// Copyright 2026 The Rayliner Authors
// SPDX-License-Identifier: Apache-2.0

package commands

import (
	"context"
	"fmt"
	"os"
	"strconv"
	"text/tabwriter"
	"time"

	"github.com/spf13/pflag"

	"github.com/rayliner-project/rayliner/lib/booking"
	"github.com/rayliner-project/rayliner/lib/bookingclient"
	"github.com/rayliner-project/rayliner/lib/cli"
)

// tripCommand returns the "trip" command tree.
func tripCommand() *cli.Command {
	return &cli.Command{
		Name:    "trip",
		Summary: "Manage trips",
		Usage:   "rayliner-admin trip <list|show|create|delete> ...",
		Subcommands: []*cli.Command{
			tripListCommand(),
			tripShowCommand(),
			tripCreateCommand(),
			tripDeleteCommand(),
		},
	}
}

func tripListCommand() *cli.Command {
	var configPath string
	var asJSON bool

	return &cli.Command{
		Name:    "list",
		Summary: "List all trips",
		Flags: func() *pflag.FlagSet {
			flagSet := pflag.NewFlagSet("list", pflag.ContinueOnError)
			flagSet.StringVar(&configPath, "config", "", "path to config file")
			flagSet.BoolVar(&asJSON, "json", false, "print trips as JSON")
			return flagSet
		},
		Run: func(args []string) error {
			env, err := newEnv(configPath)
			if err != nil {
				return err
			}
			trips, err := env.client.Trips(context.Background())
			if err != nil {
				return err
			}

			if asJSON {
				return cli.WriteJSON(trips)
			}
			writer := tabwriter.NewWriter(os.Stdout, 2, 0, 3, ' ', 0)
			fmt.Fprintln(writer, "ID\tTRIP\tROUTE\tDATE\tDEPART\tARRIVE\tSEATS\tOCCUPANCY\tPRICE")
			for _, trip := range trips {
				fmt.Fprintf(writer, "%d\t%s\t%s → %s\t%s\t%s\t%s\t%d\t%.0f%%\t%.2f\n",
					trip.ID, trip.TripNumber,
					trip.DepartureStationName, trip.ArrivalStationName,
					trip.TripDate, trip.DepartureTime, trip.ArrivalTime,
					trip.AvailableSeats, trip.OccupancyRate, trip.BasePrice)
			}
			return writer.Flush()
		},
	}
}

func tripShowCommand() *cli.Command {
	var configPath string
	var asJSON bool

	return &cli.Command{
		Name:    "show",
		Summary: "Show one trip",
		Usage:   "rayliner-admin trip show <trip-id>",
		Flags: func() *pflag.FlagSet {
			flagSet := pflag.NewFlagSet("show", pflag.ContinueOnError)
			flagSet.StringVar(&configPath, "config", "", "path to config file")
			flagSet.BoolVar(&asJSON, "json", false, "print the trip as JSON")
			return flagSet
		},
		Run: func(args []string) error {
			tripID, err := tripIDArg(args)
			if err != nil {
				return err
			}
			env, err := newEnv(configPath)
			if err != nil {
				return err
			}
			trip, err := env.client.Trip(context.Background(), tripID)
			if err != nil {
				return err
			}

			if asJSON {
				return cli.WriteJSON(trip)
			}
			printTripDetail(trip)
			return nil
		},
	}
}

func tripCreateCommand() *cli.Command {
	var configPath string
	request := bookingclient.CreateTripRequest{}

	return &cli.Command{
		Name:    "create",
		Summary: "Create a trip",
		Description: `Create a trip. The server provisions the wagons and seats for
the new trip; there is nothing to configure client-side beyond
route, schedule, and price.`,
		Usage: "rayliner-admin trip create --number <n> --from-id <id> --to-id <id> --date <YYYY-MM-DD> --depart <HH:MM> --arrive <HH:MM> --price <amount>",
		Examples: []cli.Example{
			{
				Description: "Add a morning service",
				Command:     "rayliner-admin trip create --number YHT-101 --from-id 1 --to-id 2 --date 2026-09-14 --depart 08:15 --arrive 12:40 --price 450",
			},
		},
		Flags: func() *pflag.FlagSet {
			flagSet := pflag.NewFlagSet("create", pflag.ContinueOnError)
			flagSet.StringVar(&configPath, "config", "", "path to config file")
			flagSet.StringVar(&request.TripNumber, "number", "", "trip number, e.g. YHT-101")
			flagSet.Int64Var(&request.DepartureStationID, "from-id", 0, "departure station ID")
			flagSet.Int64Var(&request.ArrivalStationID, "to-id", 0, "arrival station ID")
			flagSet.StringVar(&request.TripDate, "date", "", "trip date (YYYY-MM-DD)")
			flagSet.StringVar(&request.DepartureTime, "depart", "", "departure time (HH:MM)")
			flagSet.StringVar(&request.ArrivalTime, "arrive", "", "arrival time (HH:MM)")
			flagSet.Float64Var(&request.BasePrice, "price", 0, "base seat price")
			return flagSet
		},
		Run: func(args []string) error {
			if err := validateTripRequest(request); err != nil {
				return err
			}
			env, err := newEnv(configPath)
			if err != nil {
				return err
			}
			token, err := env.adminToken()
			if err != nil {
				return err
			}
			defer token.Close()

			trip, err := env.client.CreateTrip(context.Background(), token, request)
			if err != nil {
				return err
			}
			fmt.Printf("Created trip %d: %s, %s %s → %s\n",
				trip.ID, trip.TripNumber, trip.TripDate, trip.DepartureTime, trip.ArrivalTime)
			return nil
		},
	}
}

func tripDeleteCommand() *cli.Command {
	var configPath string
	var force bool

	return &cli.Command{
		Name:    "delete",
		Summary: "Delete a trip",
		Usage:   "rayliner-admin trip delete <trip-id> [--force]",
		Flags: func() *pflag.FlagSet {
			flagSet := pflag.NewFlagSet("delete", pflag.ContinueOnError)
			flagSet.StringVar(&configPath, "config", "", "path to config file")
			flagSet.BoolVar(&force, "force", false, "skip the confirmation prompt")
			return flagSet
		},
		Run: func(args []string) error {
			tripID, err := tripIDArg(args)
			if err != nil {
				return err
			}
			env, err := newEnv(configPath)
			if err != nil {
				return err
			}
			token, err := env.adminToken()
			if err != nil {
				return err
			}
			defer token.Close()
			ctx := context.Background()

			trip, err := env.client.Trip(ctx, tripID)
			if err != nil {
				return err
			}
			if !force {
				fmt.Printf("Delete trip %d (%s, %s)? [y/N] ", trip.ID, trip.TripNumber, trip.TripDate)
				var answer string
				fmt.Scanln(&answer)
				if answer != "y" && answer != "Y" {
					fmt.Println("Aborted.")
					return nil
				}
			}

			if err := env.client.DeleteTrip(ctx, token, tripID); err != nil {
				return err
			}
			fmt.Printf("Deleted trip %d.\n", tripID)
			return nil
		},
	}
}

// validateTripRequest rejects obviously malformed trip definitions
// before they reach the server.
func validateTripRequest(request bookingclient.CreateTripRequest) error {
	if request.TripNumber == "" {
		return cli.Validation("--number is required")
	}
	if request.DepartureStationID <= 0 || request.ArrivalStationID <= 0 {
		return cli.Validation("--from-id and --to-id are required")
	}
	if request.DepartureStationID == request.ArrivalStationID {
		return cli.Validation("departure and arrival stations must differ")
	}
	if _, err := time.Parse("2006-01-02", request.TripDate); err != nil {
		return cli.Validation("invalid --date %q: expected YYYY-MM-DD", request.TripDate)
	}
	for _, clock := range []struct{ flag, value string }{
		{"--depart", request.DepartureTime},
		{"--arrive", request.ArrivalTime},
	} {
		if _, err := time.Parse("15:04", clock.value); err != nil {
			return cli.Validation("invalid %s %q: expected HH:MM", clock.flag, clock.value)
		}
	}
	if request.BasePrice <= 0 {
		return cli.Validation("--price must be positive")
	}
	return nil
}

func tripIDArg(args []string) (int64, error) {
	if len(args) != 1 {
		return 0, cli.Validation("expected exactly one trip ID argument")
	}
	tripID, err := strconv.ParseInt(args[0], 10, 64)
	if err != nil {
		return 0, cli.Validation("invalid trip ID %q", args[0])
	}
	return tripID, nil
}

func printTripDetail(trip booking.Trip) {
	fmt.Printf("Trip:      %s (ID %d)\n", trip.TripNumber, trip.ID)
	fmt.Printf("Route:     %s → %s\n", trip.DepartureStationName, trip.ArrivalStationName)
	fmt.Printf("Date:      %s\n", trip.TripDate)
	fmt.Printf("Schedule:  %s → %s\n", trip.DepartureTime, trip.ArrivalTime)
	fmt.Printf("Seats:     %d available (%.0f%% occupied)\n", trip.AvailableSeats, trip.OccupancyRate)
	fmt.Printf("Price:     %.2f\n", trip.BasePrice)
}
