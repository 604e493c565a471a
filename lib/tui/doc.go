// Copyright 2026 The Rayliner Authors
// SPDX-License-Identifier: Apache-2.0

// Package tui provides shared terminal user interface components for
// Rayliner's interactive screens. Built on bubbletea (Elm
// architecture), these components handle common patterns like the
// color theme, dropdown overlays, scrollbars, and ANSI-aware overlay
// splicing.
//
// The booking flow (lib/bookingui) imports this package for
// consistent look and behavior: same theme, same keyboard
// conventions, same overlay mechanics. The flow owns its own data
// source, layout, and seat-map rendering.
package tui
