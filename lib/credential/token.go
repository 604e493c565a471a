// Copyright 2026 The Rayliner Authors
// SPDX-License-Identifier: Apache-2.0

package credential

import "github.com/rayliner-project/rayliner/lib/secret"

// UserToken is an end-user session token. It is valid only against
// the user-session endpoints; admin endpoints require an AdminToken.
type UserToken struct {
	buffer *secret.Buffer
}

// AdminToken is an admin session token, from the admin login flow's
// separate token namespace.
type AdminToken struct {
	buffer *secret.Buffer
}

// NewUserToken wraps a secret buffer as a user session token. The
// token takes ownership of the buffer.
func NewUserToken(buffer *secret.Buffer) UserToken {
	return UserToken{buffer: buffer}
}

// NewAdminToken wraps a secret buffer as an admin session token. The
// token takes ownership of the buffer.
func NewAdminToken(buffer *secret.Buffer) AdminToken {
	return AdminToken{buffer: buffer}
}

// Value returns the raw token string for the Session-Token header.
// Valid only at the HTTP boundary; do not store the result. An
// invalid token yields the empty string.
func (t UserToken) Value() string {
	if t.buffer == nil {
		return ""
	}
	return t.buffer.String()
}

// Value returns the raw token string for the Session-Token header.
func (t AdminToken) Value() string {
	if t.buffer == nil {
		return ""
	}
	return t.buffer.String()
}

// Valid reports whether the token holds a value.
func (t UserToken) Valid() bool { return t.buffer != nil }

// Valid reports whether the token holds a value.
func (t AdminToken) Valid() bool { return t.buffer != nil }

// Close releases the token's locked memory.
func (t UserToken) Close() error {
	if t.buffer == nil {
		return nil
	}
	return t.buffer.Close()
}

// Close releases the token's locked memory.
func (t AdminToken) Close() error {
	if t.buffer == nil {
		return nil
	}
	return t.buffer.Close()
}
