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

// loginCommand returns the "login" command: authenticate against the
// booking server and persist the session token.
func loginCommand() *cli.Command {
	var configPath string
	var email string
	var passwordPath string

	return &cli.Command{
		Name:    "login",
		Summary: "Log in and store the session token",
		Description: `Authenticate with the booking server.

The password is prompted interactively unless --password-file is
given ("-" reads from stdin, for scripting). The issued session
token is stored under the state directory with owner-only
permissions.`,
		Usage: "rayliner login --email <address>",
		Examples: []cli.Example{
			{
				Description: "Interactive login",
				Command:     "rayliner login --email ayse@example.com",
			},
			{
				Description: "Scripted login with the password on stdin",
				Command:     "echo \"$PASSWORD\" | rayliner login --email ayse@example.com --password-file -",
			},
		},
		Flags: func() *pflag.FlagSet {
			flagSet := pflag.NewFlagSet("login", pflag.ContinueOnError)
			flagSet.StringVar(&configPath, "config", "", "path to config file")
			flagSet.StringVar(&email, "email", "", "account email address")
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

			result, err := env.client.Login(context.Background(), email, password)
			if err != nil {
				return err
			}
			defer result.Token.Close()

			if err := env.store.SaveUser(result.Token); err != nil {
				return err
			}
			fmt.Printf("Logged in as %s <%s>\n", result.FullName, result.Email)
			return nil
		},
	}
}

// registerCommand returns the "register" command.
func registerCommand() *cli.Command {
	var configPath string
	var fullName string
	var email string
	var passwordPath string

	return &cli.Command{
		Name:    "register",
		Summary: "Create an account",
		Usage:   "rayliner register --name <full name> --email <address>",
		Flags: func() *pflag.FlagSet {
			flagSet := pflag.NewFlagSet("register", pflag.ContinueOnError)
			flagSet.StringVar(&configPath, "config", "", "path to config file")
			flagSet.StringVar(&fullName, "name", "", "full name")
			flagSet.StringVar(&email, "email", "", "account email address")
			flagSet.StringVar(&passwordPath, "password-file", "", "read the password from a file (\"-\" for stdin)")
			return flagSet
		},
		Run: func(args []string) error {
			if fullName == "" || email == "" {
				return cli.Validation("--name and --email are required")
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

			message, err := env.client.Register(context.Background(), fullName, email, password)
			if err != nil {
				return err
			}
			if message == "" {
				message = "Account created. Log in with 'rayliner login'."
			}
			fmt.Println(message)
			return nil
		},
	}
}

// logoutCommand returns the "logout" command. The server-side logout
// is best-effort: the local session is cleared even when the server
// call fails.
func logoutCommand() *cli.Command {
	var configPath string

	return &cli.Command{
		Name:    "logout",
		Summary: "Log out and discard the stored session",
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

			token, err := env.store.LoadUser()
			if err == nil {
				defer token.Close()
				if err := env.client.Logout(context.Background(), token); err != nil {
					env.logger.Warn("server logout failed; clearing local session anyway", "error", err)
				}
			}

			if err := env.store.ClearUser(); err != nil {
				return err
			}
			fmt.Println("Logged out.")
			return nil
		},
	}
}

// whoamiCommand returns the "whoami" command.
func whoamiCommand() *cli.Command {
	var configPath string
	var asJSON bool

	return &cli.Command{
		Name:    "whoami",
		Summary: "Show the account behind the stored session",
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
			token, err := env.userToken()
			if err != nil {
				return err
			}
			defer token.Close()

			profile, err := env.client.Me(context.Background(), token)
			if bookingclient.IsUnauthorized(err) {
				return cli.Auth("session expired; run 'rayliner login' again")
			}
			if err != nil {
				return err
			}

			if asJSON {
				return cli.WriteJSON(profile)
			}
			fmt.Printf("%s <%s>\n", profile.FullName, profile.Email)
			return nil
		},
	}
}

// readPassword reads the password from the given path, or prompts on
// the terminal when no path was given.
func readPassword(path string) (*secret.Buffer, error) {
	if path != "" {
		return secret.ReadFromPath(path)
	}
	return secret.Prompt("Password: ")
}
