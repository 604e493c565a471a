// Copyright 2026 The Rayliner Authors
// SPDX-License-Identifier: Apache-2.0

package commands

import (
	"errors"
	"net/http"
	"testing"

	"github.com/rayliner-project/rayliner/lib/bookingclient"
	"github.com/rayliner-project/rayliner/lib/cli"
)

func TestPNRLookupError(t *testing.T) {
	t.Run("404 becomes not-found with the code", func(t *testing.T) {
		err := pnrLookupError(&bookingclient.APIError{StatusCode: http.StatusNotFound}, "A7K2M9")

		var commandErr *cli.CommandError
		if !errors.As(err, &commandErr) {
			t.Fatalf("pnrLookupError returned %T, want *cli.CommandError", err)
		}
		if commandErr.Category != cli.CategoryNotFound {
			t.Errorf("Category = %q, want %q", commandErr.Category, cli.CategoryNotFound)
		}
		if commandErr.ExitCode() != 3 {
			t.Errorf("ExitCode() = %d, want 3", commandErr.ExitCode())
		}
		if got := err.Error(); got != `no booking with PNR A7K2M9` {
			t.Errorf("Error() = %q", got)
		}
	})

	t.Run("other server errors pass through verbatim", func(t *testing.T) {
		serverErr := &bookingclient.APIError{StatusCode: http.StatusInternalServerError, Message: "database down"}
		err := pnrLookupError(serverErr, "A7K2M9")
		if err != serverErr {
			t.Errorf("pnrLookupError rewrote a non-404 error: %v", err)
		}
	})
}
