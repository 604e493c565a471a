// Copyright 2026 The Rayliner Authors
// SPDX-License-Identifier: Apache-2.0

// Package commands builds the rayliner-admin command tree. Admin
// sessions live in their own credential namespace, so an operator can
// stay logged into both consoles on the same machine without the
// tokens clobbering each other.
package commands

import (
	"fmt"

	"github.com/rayliner-project/rayliner/lib/cli"
	"github.com/rayliner-project/rayliner/lib/version"
)

// Root builds and returns the complete rayliner-admin command tree.
func Root() *cli.Command {
	return &cli.Command{
		Name: "rayliner-admin",
		Description: `Rayliner operator console.

Manage stations and trips on the booking server, and inspect seat
occupancy for any trip. Requires an admin account.`,
		Subcommands: []*cli.Command{
			loginCommand(),
			logoutCommand(),
			whoamiCommand(),
			stationCommand(),
			tripCommand(),
			inspectCommand(),
			{
				Name:    "version",
				Summary: "Print version information",
				Run: func(args []string) error {
					fmt.Printf("rayliner-admin %s\n", version.Full())
					return nil
				},
			},
		},
	}
}
