// Copyright 2026 The Rayliner Authors
// SPDX-License-Identifier: Apache-2.0

package commands

import (
	"context"
	"strconv"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/pflag"

	"github.com/rayliner-project/rayliner/lib/bookingui"
	"github.com/rayliner-project/rayliner/lib/cli"
)

// inspectCommand returns "inspect": the read-only seat occupancy
// viewer. Seats cannot be selected or booked from this view.
func inspectCommand() *cli.Command {
	var configPath string

	return &cli.Command{
		Name:    "inspect",
		Summary: "Browse seat occupancy for a trip",
		Usage:   "rayliner-admin inspect <trip-id>",
		Flags: func() *pflag.FlagSet {
			flagSet := pflag.NewFlagSet("inspect", pflag.ContinueOnError)
			flagSet.StringVar(&configPath, "config", "", "path to config file")
			return flagSet
		},
		Run: func(args []string) error {
			if len(args) != 1 {
				return cli.Validation("usage: rayliner-admin inspect <trip-id>")
			}
			tripID, err := strconv.ParseInt(args[0], 10, 64)
			if err != nil {
				return cli.Validation("invalid trip ID %q", args[0])
			}

			env, err := newEnv(configPath)
			if err != nil {
				return err
			}
			trip, err := env.client.Trip(context.Background(), tripID)
			if err != nil {
				return err
			}

			program := tea.NewProgram(bookingui.NewModel(bookingui.Config{
				Client: env.client,
				Mode:   bookingui.ModeInspect,
				Trip:   &trip,
			}), tea.WithAltScreen())
			if _, err := program.Run(); err != nil {
				return cli.Internal("occupancy viewer failed: %v", err)
			}
			return nil
		},
	}
}
