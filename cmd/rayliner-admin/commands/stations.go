// Copyright 2026 The Rayliner Authors
// SPDX-License-Identifier: Apache-2.0

package commands

import (
	"context"
	"fmt"
	"os"
	"strings"
	"text/tabwriter"

	"github.com/spf13/pflag"

	"github.com/rayliner-project/rayliner/lib/bookingclient"
	"github.com/rayliner-project/rayliner/lib/cli"
)

// stationCommand returns the "station" command tree.
func stationCommand() *cli.Command {
	return &cli.Command{
		Name:    "station",
		Summary: "Manage stations",
		Usage:   "rayliner-admin station <list|create> ...",
		Subcommands: []*cli.Command{
			stationListCommand(),
			stationCreateCommand(),
		},
	}
}

func stationListCommand() *cli.Command {
	var configPath string
	var asJSON bool

	return &cli.Command{
		Name:    "list",
		Summary: "List stations",
		Flags: func() *pflag.FlagSet {
			flagSet := pflag.NewFlagSet("list", pflag.ContinueOnError)
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

func stationCreateCommand() *cli.Command {
	var configPath string
	var name string
	var city string
	var code string

	return &cli.Command{
		Name:    "create",
		Summary: "Create a station",
		Usage:   "rayliner-admin station create --name <name> --city <city> --code <code>",
		Examples: []cli.Example{
			{
				Description: "Add a station",
				Command:     "rayliner-admin station create --name 'Ankara Gar' --city Ankara --code ANK",
			},
		},
		Flags: func() *pflag.FlagSet {
			flagSet := pflag.NewFlagSet("create", pflag.ContinueOnError)
			flagSet.StringVar(&configPath, "config", "", "path to config file")
			flagSet.StringVar(&name, "name", "", "station name")
			flagSet.StringVar(&city, "city", "", "city")
			flagSet.StringVar(&code, "code", "", "short station code, e.g. ANK")
			return flagSet
		},
		Run: func(args []string) error {
			if name == "" || city == "" || code == "" {
				return cli.Validation("--name, --city and --code are all required")
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

			station, err := env.client.CreateStation(context.Background(), token, bookingclient.CreateStationRequest{
				Name: name,
				City: city,
				Code: strings.ToUpper(code),
			})
			if err != nil {
				return err
			}
			fmt.Printf("Created station %d: %s (%s), %s\n",
				station.ID, station.Name, station.Code, station.City)
			return nil
		},
	}
}
