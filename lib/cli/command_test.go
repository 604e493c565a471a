// Copyright 2026 The Rayliner Authors
// SPDX-License-Identifier: Apache-2.0

package cli

import (
	"errors"
	"strings"
	"testing"

	"github.com/spf13/pflag"
)

func TestCommand_Execute_DispatchesToSubcommand(t *testing.T) {
	var called string

	root := &Command{
		Name: "rayliner",
		Subcommands: []*Command{
			{
				Name: "stations",
				Run: func(args []string) error {
					called = "stations"
					return nil
				},
			},
			{
				Name: "search",
				Run: func(args []string) error {
					called = "search"
					return nil
				},
			},
		},
	}

	if err := root.Execute([]string{"search"}); err != nil {
		t.Fatalf("Execute() error: %v", err)
	}
	if called != "search" {
		t.Errorf("dispatched to %q, want %q", called, "search")
	}
}

func TestCommand_Execute_NestedSubcommands(t *testing.T) {
	var called string
	var receivedArgs []string

	root := &Command{
		Name: "rayliner",
		Subcommands: []*Command{
			{
				Name: "tickets",
				Subcommands: []*Command{
					{
						Name: "cancel",
						Run: func(args []string) error {
							called = "tickets cancel"
							receivedArgs = args
							return nil
						},
					},
				},
			},
		},
	}

	if err := root.Execute([]string{"tickets", "cancel", "42"}); err != nil {
		t.Fatalf("Execute() error: %v", err)
	}
	if called != "tickets cancel" {
		t.Errorf("dispatched to %q, want %q", called, "tickets cancel")
	}
	if len(receivedArgs) != 1 || receivedArgs[0] != "42" {
		t.Errorf("args = %v, want [42]", receivedArgs)
	}
}

func TestCommand_Execute_FlagParsing(t *testing.T) {
	var server string
	var target string

	command := &Command{
		Name: "pnr",
		Flags: func() *pflag.FlagSet {
			flagSet := pflag.NewFlagSet("pnr", pflag.ContinueOnError)
			flagSet.StringVar(&server, "server", "http://localhost:8081", "booking server URL")
			return flagSet
		},
		Run: func(args []string) error {
			if len(args) > 0 {
				target = args[0]
			}
			return nil
		},
	}

	if err := command.Execute([]string{"--server", "http://rail.example", "ABC123"}); err != nil {
		t.Fatalf("Execute() error: %v", err)
	}
	if server != "http://rail.example" {
		t.Errorf("server = %q, want %q", server, "http://rail.example")
	}
	if target != "ABC123" {
		t.Errorf("target = %q, want %q", target, "ABC123")
	}
}

func TestCommand_Execute_UnknownSubcommandSuggestion(t *testing.T) {
	root := &Command{
		Name: "rayliner",
		Subcommands: []*Command{
			{Name: "tickets", Run: func(args []string) error { return nil }},
			{Name: "stations", Run: func(args []string) error { return nil }},
		},
	}

	err := root.Execute([]string{"tickest"})
	if err == nil {
		t.Fatal("expected error for unknown subcommand")
	}
	if !strings.Contains(err.Error(), `did you mean "tickets"`) {
		t.Errorf("error %q lacks suggestion for tickets", err)
	}
}

func TestCommand_Execute_UnknownFlagSuggestion(t *testing.T) {
	command := &Command{
		Name: "search",
		Flags: func() *pflag.FlagSet {
			flagSet := pflag.NewFlagSet("search", pflag.ContinueOnError)
			flagSet.String("date", "", "travel date")
			return flagSet
		},
		Run: func(args []string) error { return nil },
	}

	err := command.Execute([]string{"--dete", "2024-05-10"})
	if err == nil {
		t.Fatal("expected error for unknown flag")
	}
	if !strings.Contains(err.Error(), "--date") {
		t.Errorf("error %q lacks suggestion for --date", err)
	}
}

func TestCommand_Execute_HelpFlag(t *testing.T) {
	executed := false
	command := &Command{
		Name:    "stations",
		Summary: "List stations",
		Run: func(args []string) error {
			executed = true
			return nil
		},
	}

	if err := command.Execute([]string{"--help"}); err != nil {
		t.Fatalf("Execute(--help) error: %v", err)
	}
	if executed {
		t.Error("Run executed for --help")
	}
}

func TestCommand_Execute_SubcommandRequired(t *testing.T) {
	root := &Command{
		Name: "rayliner",
		Subcommands: []*Command{
			{Name: "stations", Run: func(args []string) error { return nil }},
		},
	}
	if err := root.Execute(nil); err == nil {
		t.Fatal("expected error when no subcommand given")
	}
}

func TestLevenshtein(t *testing.T) {
	tests := []struct {
		a, b string
		want int
	}{
		{"", "", 0},
		{"abc", "", 3},
		{"", "abc", 3},
		{"tickets", "tickets", 0},
		{"tickest", "tickets", 2},
		{"serach", "search", 2},
		{"xyz", "tickets", 7},
	}
	for _, test := range tests {
		if got := levenshtein(test.a, test.b); got != test.want {
			t.Errorf("levenshtein(%q, %q) = %d, want %d", test.a, test.b, got, test.want)
		}
	}
}

func TestCommandError_Unwrap(t *testing.T) {
	inner := errors.New("boom")
	err := &CommandError{Category: CategoryTransient, Err: inner}
	if !errors.Is(err, inner) {
		t.Fatal("errors.Is fails to reach the wrapped error")
	}
}

func TestExitError(t *testing.T) {
	err := &ExitError{Code: 3}
	if err.ExitCode() != 3 {
		t.Errorf("ExitCode() = %d, want 3", err.ExitCode())
	}
}
