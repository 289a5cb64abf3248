// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package binding keeps UI elements in sync with reactive values.
//
// The host UI layer implements Element; application wiring creates bindings
// explicitly and the host tears them down by reporting element removal.
package binding

//go:generate mockgen -source=interfaces.go -destination=../mock/element_mock.go -package=mock

// Element is a UI control whose enabled state can be toggled.
type Element interface {
	// SetEnabled enables or disables the control.
	SetEnabled(enabled bool)

	// OnRemove registers fn to be called once when the element is
	// permanently removed from its presentation context.
	OnRemove(fn func())
}
