// Copyright 2026 The Rayliner Authors
// SPDX-License-Identifier: Apache-2.0

// Package commands builds the rayliner CLI command tree: session
// management, station and trip lookup, the interactive booking flow,
// PNR retrieval, and ticket management.
package commands

import (
	"fmt"

	"github.com/rayliner-project/rayliner/lib/cli"
	"github.com/rayliner-project/rayliner/lib/version"
)

// Root builds and returns the complete rayliner command tree.
func Root() *cli.Command {
	return &cli.Command{
		Name: "rayliner",
		Description: `Rayliner: train ticket booking from the terminal.

Search trips, pick a seat on the wagon map, pay, and get a PNR code.
Tickets can be listed, cancelled, re-seated, and exported as PDF.`,
		Subcommands: []*cli.Command{
			loginCommand(),
			registerCommand(),
			logoutCommand(),
			whoamiCommand(),
			stationsCommand(),
			searchCommand(),
			bookCommand(),
			pnrCommand(),
			ticketsCommand(),
			{
				Name:    "version",
				Summary: "Print version information",
				Run: func(args []string) error {
					fmt.Printf("rayliner %s\n", version.Full())
					return nil
				},
			},
		},
	}
}
