// Copyright 2026 The Rayliner Authors
// SPDX-License-Identifier: Apache-2.0

// Package credential manages the client's session credentials.
//
// The booking server issues opaque session tokens in two independent
// namespaces: end-user sessions and admin sessions, with independent
// login and logout flows. This package keeps that separation in the
// type system — UserToken and AdminToken are distinct types, so an
// admin endpoint cannot be called with a user token (or vice versa)
// without a compile error. The stringly-typed shared storage the
// server's web frontend uses has no equivalent here.
//
// Tokens are persisted in separate files under the client state
// directory with owner-only permissions, and held in mmap-locked
// secret buffers while in memory.
package credential
