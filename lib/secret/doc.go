// Copyright 2026 The Rayliner Authors
// SPDX-License-Identifier: Apache-2.0

// Package secret provides a memory-safe buffer for sensitive material
// the booking client handles: account passwords, session tokens, and
// raw card fields on their way to the payment endpoint.
//
// Buffer allocates memory outside the Go heap via mmap(MAP_ANONYMOUS),
// locks it into physical RAM via mlock (preventing swap), and marks it
// excluded from core dumps via madvise(MADV_DONTDUMP). On Close, the
// memory is zeroed, unlocked, and unmapped.
//
// Because the memory lives outside the Go heap, the garbage collector
// never sees it and cannot copy or relocate it, so closing a buffer
// genuinely removes the secret from memory rather than leaving stray
// copies behind.
package secret
