// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package app implements the formguard process lifecycle.
//
// It wires storage, the form built from its definition, the services and the
// terminal UI into a single run, and releases them in reverse order.
package app
