// Copyright 2026 The Rayliner Authors
// SPDX-License-Identifier: Apache-2.0

package cli

import (
	"errors"
	"fmt"
	"testing"
)

func TestCommandError_ExitCodes(t *testing.T) {
	tests := []struct {
		name     string
		err      *CommandError
		wantCode int
	}{
		{name: "validation", err: Validation("bad input"), wantCode: 2},
		{name: "not found", err: NotFound("no such trip"), wantCode: 3},
		{name: "auth", err: Auth("not logged in"), wantCode: 4},
		{name: "transient", err: Transient("server unreachable"), wantCode: 5},
		{name: "internal", err: Internal("unexpected"), wantCode: 1},
	}

	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			if got := test.err.ExitCode(); got != test.wantCode {
				t.Errorf("ExitCode() = %d, want %d", got, test.wantCode)
			}
		})
	}
}

// Each category must map to its own exit code so scripts can branch on
// the result; only internal shares the generic 1.
func TestCommandError_ExitCodesDistinct(t *testing.T) {
	categories := []*CommandError{
		Validation("v"), NotFound("n"), Auth("a"), Transient("t"),
	}
	seen := make(map[int]ErrorCategory)
	for _, err := range categories {
		code := err.ExitCode()
		if code == 1 {
			t.Errorf("%s: exit code 1 is reserved for internal errors", err.Category)
		}
		if prior, dup := seen[code]; dup {
			t.Errorf("exit code %d shared by %s and %s", code, prior, err.Category)
		}
		seen[code] = err.Category
	}
}

// The mains branch on the ExitCode interface; a constructed error must
// satisfy it through the error type, not just the concrete struct.
func TestCommandError_ExitCodeInterface(t *testing.T) {
	var err error = NotFound("no booking with PNR %q", "A7K2M9")
	coder, ok := err.(interface{ ExitCode() int })
	if !ok {
		t.Fatal("CommandError does not satisfy the ExitCode interface")
	}
	if got := coder.ExitCode(); got != 3 {
		t.Errorf("ExitCode() = %d, want 3", got)
	}
}

func TestCommandError_WrapsCause(t *testing.T) {
	cause := errors.New("connection refused")
	err := Transient("request failed: %w", cause)

	if !errors.Is(err, cause) {
		t.Error("errors.Is does not reach the wrapped cause")
	}
	if got := err.Error(); got != "request failed: connection refused" {
		t.Errorf("Error() = %q", got)
	}

	var commandErr *CommandError
	if !errors.As(fmt.Errorf("outer: %w", err), &commandErr) {
		t.Fatal("errors.As does not find the CommandError in a wrapped chain")
	}
	if commandErr.Category != CategoryTransient {
		t.Errorf("Category = %q, want %q", commandErr.Category, CategoryTransient)
	}
}
