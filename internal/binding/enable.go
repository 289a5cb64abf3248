// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package binding

import (
	"github.com/MKhiriev/go-form-guard/internal/logger"
	"github.com/MKhiriev/go-form-guard/internal/reactive"
	"github.com/MKhiriev/go-form-guard/internal/utils"
)

// State is the enablement state of a bound element.
type State int

const (
	// Disabled is the state while the bound value is false.
	Disabled State = iota
	// Enabled is the state while the bound value is true.
	Enabled
)

// String returns the state name.
func (s State) String() string {
	switch s {
	case Enabled:
		return "enabled"
	case Disabled:
		return "disabled"
	default:
		return "unknown"
	}
}

func stateFor(valid bool) State {
	if valid {
		return Enabled
	}
	return Disabled
}

// EnableBinding drives an Element's enabled state from a reactive boolean.
//
// The initial state is taken from the value at bind time. Every change of
// the value moves the binding to Enabled (true) or Disabled (false) and
// writes the result to the element. When the element reports its removal the
// binding disposes its subscription; no transitions happen afterwards.
type EnableBinding struct {
	id       string
	element  Element
	state    State
	sub      *reactive.Subscription
	disposed bool
	logger   *logger.Logger
}

// NewEnableBinding binds element to valid and applies the current value
// immediately.
func NewEnableBinding(element Element, valid reactive.Readable[bool], log *logger.Logger) *EnableBinding {
	b := &EnableBinding{
		id:      utils.NewUUIDGenerator().Generate(),
		element: element,
		logger:  log,
	}

	b.transition(reactive.Untracked(valid.Get))
	b.sub = valid.Subscribe(b.transition)
	element.OnRemove(b.dispose)

	b.logger.Debug().
		Str("binding_id", b.id).
		Str("state", b.state.String()).
		Msg("enable binding created")

	return b
}

// ID identifies the binding in logs.
func (b *EnableBinding) ID() string {
	return b.id
}

// State returns the current state.
func (b *EnableBinding) State() State {
	return b.state
}

// Disposed reports whether the element has been removed.
func (b *EnableBinding) Disposed() bool {
	return b.disposed
}

func (b *EnableBinding) transition(valid bool) {
	if b.disposed {
		return
	}

	next := stateFor(valid)
	if next != b.state {
		b.logger.Debug().
			Str("binding_id", b.id).
			Str("from", b.state.String()).
			Str("to", next.String()).
			Msg("enable binding transition")
	}
	b.state = next
	b.element.SetEnabled(next == Enabled)
}

// dispose is the removal callback handed to the element. It is idempotent.
func (b *EnableBinding) dispose() {
	if b.disposed {
		return
	}
	b.disposed = true
	b.sub.Dispose()

	b.logger.Debug().Str("binding_id", b.id).Msg("enable binding disposed")
}
