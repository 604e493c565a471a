// Copyright 2026 The Rayliner Authors
// SPDX-License-Identifier: Apache-2.0

package cli

import "fmt"

// ErrorCategory classifies command errors along the client's error
// taxonomy: input problems caught before any network call, missing
// resources, temporary network/server failures, and everything else.
type ErrorCategory string

const (
	// CategoryValidation indicates the caller provided invalid input:
	// missing arguments, unparseable values, a card number of the
	// wrong length. No request was sent; fix the input and rerun.
	CategoryValidation ErrorCategory = "validation"

	// CategoryNotFound indicates a referenced resource does not exist:
	// unknown PNR code, unknown trip or station ID.
	CategoryNotFound ErrorCategory = "not_found"

	// CategoryAuth indicates a missing or rejected session: the user
	// must log in (again) before retrying.
	CategoryAuth ErrorCategory = "auth"

	// CategoryTransient indicates a temporary failure: network error,
	// timeout, server overload. Retrying the command may succeed.
	CategoryTransient ErrorCategory = "transient"

	// CategoryInternal indicates an unexpected error: bugs, I/O
	// failures, malformed data from the server.
	CategoryInternal ErrorCategory = "internal"
)

// CommandError is a categorized error returned by command handlers. It
// wraps an inner error, preserving the chain for errors.Is/As, while
// the category travels alongside for exit-code and display decisions.
// Use the category constructors rather than building one directly.
type CommandError struct {
	Category ErrorCategory
	Err      error
}

// Error returns the underlying error message. The category is not part
// of the text.
func (e *CommandError) Error() string { return e.Err.Error() }

// Unwrap returns the underlying error, allowing errors.Is and
// errors.As to walk the full chain through the CommandError wrapper.
func (e *CommandError) Unwrap() error { return e.Err }

// ExitCode maps the category to the process exit code. Scripts branch
// on these: 2 means fix the invocation, 3 means the thing does not
// exist, 4 means log in again, 5 means try again later.
func (e *CommandError) ExitCode() int {
	switch e.Category {
	case CategoryValidation:
		return 2
	case CategoryNotFound:
		return 3
	case CategoryAuth:
		return 4
	case CategoryTransient:
		return 5
	default:
		return 1
	}
}

// Validation creates a validation error: the caller provided bad input.
func Validation(format string, args ...any) *CommandError {
	return &CommandError{Category: CategoryValidation, Err: fmt.Errorf(format, args...)}
}

// NotFound creates a not-found error: a referenced resource does not exist.
func NotFound(format string, args ...any) *CommandError {
	return &CommandError{Category: CategoryNotFound, Err: fmt.Errorf(format, args...)}
}

// Auth creates an auth error: no session, or the server rejected it.
func Auth(format string, args ...any) *CommandError {
	return &CommandError{Category: CategoryAuth, Err: fmt.Errorf(format, args...)}
}

// Transient creates a transient error: a temporary failure that may
// succeed on retry.
func Transient(format string, args ...any) *CommandError {
	return &CommandError{Category: CategoryTransient, Err: fmt.Errorf(format, args...)}
}

// Internal creates an internal error: an unexpected failure.
func Internal(format string, args ...any) *CommandError {
	return &CommandError{Category: CategoryInternal, Err: fmt.Errorf(format, args...)}
}
