// Copyright 2026 The Rayliner Authors
// SPDX-License-Identifier: Apache-2.0

package commands

import (
	"strings"
	"testing"

	"github.com/rayliner-project/rayliner/lib/cli"
)

// TestCommandTreeShape walks the full command tree and validates the
// invariants help rendering and dispatch rely on: every command is
// named and summarized, and every node is actionable (it either runs
// or dispatches further).
func TestCommandTreeShape(t *testing.T) {
	walkCommands(Root(), nil, func(command *cli.Command, path []string) {
		joined := strings.Join(path, " ")
		if command.Name == "" {
			t.Errorf("%s: command with empty name", joined)
		}
		if command.Summary == "" && command.Description == "" {
			t.Errorf("%s: command has neither summary nor description", joined)
		}
		if command.Run == nil && len(command.Subcommands) == 0 {
			t.Errorf("%s: command has neither Run nor subcommands", joined)
		}
	})
}

// TestCommandNamesUnique catches copy-paste duplicates among siblings,
// which would make the later twin unreachable.
func TestCommandNamesUnique(t *testing.T) {
	walkCommands(Root(), nil, func(command *cli.Command, path []string) {
		seen := make(map[string]bool, len(command.Subcommands))
		for _, sub := range command.Subcommands {
			if seen[sub.Name] {
				t.Errorf("%s: duplicate subcommand %q", strings.Join(path, " "), sub.Name)
			}
			seen[sub.Name] = true
		}
	})
}

// walkCommands recursively visits every command in the tree, calling
// visit for each node with the accumulated command path.
func walkCommands(command *cli.Command, path []string, visit func(*cli.Command, []string)) {
	current := make([]string, len(path)+1)
	copy(current, path)
	current[len(path)] = command.Name
	visit(command, current)
	for _, sub := range command.Subcommands {
		walkCommands(sub, current, visit)
	}
}
