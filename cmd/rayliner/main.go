// Copyright 2026 The Rayliner Authors
// SPDX-License-Identifier: Apache-2.0

package main

import (
	"errors"
	"fmt"
	"os"

	"github.com/rayliner-project/rayliner/cmd/rayliner/commands"
	"github.com/rayliner-project/rayliner/lib/cli"
)

func main() {
	if err := run(); err != nil {
		code := 1
		if coder, ok := err.(interface{ ExitCode() int }); ok {
			code = coder.ExitCode()
		}
		// An ExitError means the command already wrote its own output;
		// everything else still needs the message printed.
		var exitErr *cli.ExitError
		if !errors.As(err, &exitErr) {
			fmt.Fprintf(os.Stderr, "error: %v\n", err)
		}
		os.Exit(code)
	}
}

func run() error {
	return commands.Root().Execute(os.Args[1:])
}
