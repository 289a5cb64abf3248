// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package reactive provides the minimal push-based reactive substrate the
// validation engine is built on.
//
// Core types:
//   - Observable: a mutable value that notifies subscribers synchronously on
//     every Set (never on registration).
//   - Computed: a derived value whose read function is re-run whenever one of
//     the reactive values it read during its last evaluation changes.
//     Dependencies are tracked automatically.
//   - Subscription: a handle whose Dispose detaches a listener. Dispose is
//     idempotent.
//
// Propagation is synchronous and depth-first: when Set returns, every
// dependent Computed has been recomputed and every subscriber has run.
//
// The package is intentionally single-threaded. Values must be read and
// written from one goroutine (in the application this is the bubbletea
// Update loop).
package reactive
