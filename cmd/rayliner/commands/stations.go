// Copyright 2026 The Rayliner Authors
// SPDX-License-Identifier: Apache-2.0

package commands

import (
	"context"
	"fmt"
	"os"
	"strconv"
	"strings"
	"text/tabwriter"

	"github.com/spf13/pflag"

	"github.com/rayliner-project/rayliner/lib/booking"
	"github.com/rayliner-project/rayliner/lib/cli"
)

// stationsCommand returns the "stations" command: list the stations
// the server knows about.
func stationsCommand() *cli.Command {
	var configPath string
	var asJSON bool

	return &cli.Command{
		Name:    "stations",
		Summary: "List stations",
		Usage:   "rayliner stations [--json]",
		Flags: func() *pflag.FlagSet {
			flagSet := pflag.NewFlagSet("stations", pflag.ContinueOnError)
			flagSet.StringVar(&configPath, "config", "", "path to config file")
			flagSet.BoolVar(&asJSON, "json", false, "print stations as JSON")
			return flagSet
		},
		Run: func(args []string) error {
			env, err := newEnv(configPath)
			if err != nil {
				return err
			}
			stations, err := env.client.Stations(context.Background())
			if err != nil {
				return err
			}

			if asJSON {
				return cli.WriteJSON(stations)
			}
			writer := tabwriter.NewWriter(os.Stdout, 2, 0, 3, ' ', 0)
			fmt.Fprintln(writer, "ID\tCODE\tNAME\tCITY")
			for _, station := range stations {
				fmt.Fprintf(writer, "%d\t%s\t%s\t%s\n",
					station.ID, station.Code, station.Name, station.City)
			}
			return writer.Flush()
		},
	}
}

// resolveStation matches a user-supplied station reference against the
// station list. The reference may be a station code ("ANK"), an exact
// name, or a unique name prefix; matching is case-insensitive.
func resolveStation(stations []booking.Station, reference string) (booking.Station, error) {
	needle := strings.ToLower(strings.TrimSpace(reference))
	if needle == "" {
		return booking.Station{}, cli.Validation("empty station reference")
	}

	if id, err := strconv.ParseInt(needle, 10, 64); err == nil {
		for _, station := range stations {
			if station.ID == id {
				return station, nil
			}
		}
		return booking.Station{}, cli.NotFound("no station with ID %d; see 'rayliner stations'", id)
	}

	for _, station := range stations {
		if strings.ToLower(station.Code) == needle {
			return station, nil
		}
	}
	for _, station := range stations {
		if strings.ToLower(station.Name) == needle || strings.ToLower(station.City) == needle {
			return station, nil
		}
	}

	var prefixMatches []booking.Station
	for _, station := range stations {
		if strings.HasPrefix(strings.ToLower(station.Name), needle) {
			prefixMatches = append(prefixMatches, station)
		}
	}
	switch len(prefixMatches) {
	case 1:
		return prefixMatches[0], nil
	case 0:
		return booking.Station{}, cli.NotFound("no station matches %q; see 'rayliner stations'", reference)
	default:
		names := make([]string, len(prefixMatches))
		for i, station := range prefixMatches {
			names[i] = station.Name
		}
		return booking.Station{}, cli.Validation("station %q is ambiguous: %s", reference, strings.Join(names, ", "))
	}
}
