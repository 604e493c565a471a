// Copyright 2026 The Rayliner Authors
// SPDX-License-Identifier: Apache-2.0

// Package cli is the command framework shared by the rayliner and
// rayliner-admin binaries: a declarative command tree with pflag flag
// parsing, synthesized help output, typo suggestions for unknown
// commands and flags, categorized errors, JSON output support, and a
// structured logger whose format follows the output destination.
package cli
