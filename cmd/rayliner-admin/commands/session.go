// Copyright 2026 The Rayliner Authors
// SPDX-License-Identifier: Apache-2.0

package commands

import (
	"context"
	"fmt"

	"github.com/spf13/pflag"

	"github.com/rayliner-project/rayliner/lib/bookingclient"
	"github.com/rayliner-project/rayliner/lib/cli"
	"github.com/rayliner-project/rayliner/lib/secret"
)

// loginCommand returns the admin "login" command.
func loginCommand() *cli.Command {
	var configPath string
	var email string
	var passwordPath string

	return &cli.Command{
		Name:    "login",
		Summary: "Log in as an operator",
		Usage:   "rayliner-admin login --email <address>",
		Flags: func() *pflag.FlagSet {
			flagSet := pflag.NewFlagSet("login", pflag.ContinueOnError)
			flagSet.StringVar(&configPath, "config", "", "path to config file")
			flagSet.StringVar(&email, "email", "", "admin email address")
			flagSet.StringVar(&passwordPath, "password-file", "", "read the password from a file (\"-\" for stdin)")
			return flagSet
		},
		Run: func(args []string) error {
			if email == "" {
				return cli.Validation("--email is required")
			}
			env, err := newEnv(configPath)
			if err != nil {
				return err
			}

			password, err := readPassword(passwordPath)
			if err != nil {
				return err
			}
			defer password.Close()

			result, err := env.client.AdminLogin(context.Background(), email, password)
			if err != nil {
				return err
			}
			defer result.Token.Close()

			if err := env.store.SaveAdmin(result.Token); err != nil {
				return err
			}
			fmt.Printf("Logged in as %s <%s>\n", result.FullName, result.Email)
			return nil
		},
	}
}

// logoutCommand returns the admin "logout" command. Server-side
// logout is best-effort.
func logoutCommand() *cli.Command {
	var configPath string

	return &cli.Command{
		Name:    "logout",
		Summary: "Log out and discard the stored admin session",
		Flags: func() *pflag.FlagSet {
			flagSet := pflag.NewFlagSet("logout", pflag.ContinueOnError)
			flagSet.StringVar(&configPath, "config", "", "path to config file")
			return flagSet
		},
		Run: func(args []string) error {
			env, err := newEnv(configPath)
			if err != nil {
				return err
			}

			token, err := env.store.LoadAdmin()
			if err == nil {
				defer token.Close()
				if err := env.client.AdminLogout(context.Background(), token); err != nil {
					env.logger.Warn("server logout failed; clearing local session anyway", "error", err)
				}
			}

			if err := env.store.ClearAdmin(); err != nil {
				return err
			}
			fmt.Println("Logged out.")
			return nil
		},
	}
}

// whoamiCommand returns the admin "whoami" command.
func whoamiCommand() *cli.Command {
	var configPath string
	var asJSON bool

	return &cli.Command{
		Name:    "whoami",
		Summary: "Show the admin account behind the stored session",
		Flags: func() *pflag.FlagSet {
			flagSet := pflag.NewFlagSet("whoami", pflag.ContinueOnError)
			flagSet.StringVar(&configPath, "config", "", "path to config file")
			flagSet.BoolVar(&asJSON, "json", false, "print the profile as JSON")
			return flagSet
		},
		Run: func(args []string) error {
			env, err := newEnv(configPath)
			if err != nil {
				return err
			}
			token, err := env.adminToken()
			if err != nil {
				return err
			}
			defer token.Close()

			profile, err := env.client.AdminMe(context.Background(), token)
			if bookingclient.IsUnauthorized(err) {
				return cli.Auth("session expired; run 'rayliner-admin login' again")
			}
			if err != nil {
				return err
			}

			if asJSON {
				return cli.WriteJSON(profile)
			}
			fmt.Printf("%s <%s> (%s)\n", profile.FullName, profile.Email, profile.Role)
			return nil
		},
	}
}

func readPassword(path string) (*secret.Buffer, error) {
	if path != "" {
		return secret.ReadFromPath(path)
	}
	return secret.Prompt("Password: ")
}
