// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package validation

import (
	"github.com/MKhiriev/go-form-guard/internal/reactive"
)

// Cell is a reactive string value enriched with validation state.
//
// The cell observes the value but does not own it. Its status is published
// through a single observable, and Message, StyleTag and HasError are
// derived from that one status, so they always describe the same
// evaluation.
type Cell struct {
	value  reactive.Readable[string]
	rule   Rule
	status *reactive.Observable[Status]

	message  *reactive.Computed[string]
	styleTag *reactive.Computed[string]
	hasError *reactive.Computed[bool]

	sub *reactive.Subscription
}

// Attach resolves opts into a rule and binds validation to value.
//
// Nothing is evaluated at attach time: the cell starts in rule.Initial()
// (an untouched required field is in error but shows no message) and is
// re-evaluated on every subsequent change of value.
func Attach(value reactive.Readable[string], opts Options) *Cell {
	rule := Resolve(opts)
	status := reactive.NewObservable(rule.Initial())

	c := &Cell{
		value:  value,
		rule:   rule,
		status: status,
		message: reactive.NewComputed(func() string {
			return status.Get().Message
		}),
		styleTag: reactive.NewComputed(func() string {
			return status.Get().StyleTag
		}),
		hasError: reactive.NewComputed(func() bool {
			return status.Get().HasError
		}),
	}
	c.sub = value.Subscribe(c.evaluate)

	return c
}

func (c *Cell) evaluate(v string) {
	c.status.Set(c.rule.Evaluate(v))
}

// Value returns the observed value.
func (c *Cell) Value() reactive.Readable[string] {
	return c.value
}

// Rule returns the resolved rule in effect.
func (c *Cell) Rule() Rule {
	return c.rule
}

// Required reports whether the field is mandatory.
func (c *Cell) Required() bool {
	return c.rule.Required
}

// Status returns the latest evaluation as one consistent value.
func (c *Cell) Status() Status {
	return c.status.Get()
}

// Message is the derived display message.
func (c *Cell) Message() reactive.Readable[string] {
	return c.message
}

// StyleTag is the derived opaque style tag.
func (c *Cell) StyleTag() reactive.Readable[string] {
	return c.styleTag
}

// Error is the derived error flag as a reactive value.
func (c *Cell) Error() reactive.Readable[bool] {
	return c.hasError
}

// HasError reports the current error flag. Inside a Computed the read is
// tracked, which is how Aggregate follows every field.
func (c *Cell) HasError() bool {
	return c.hasError.Get()
}

// Detach stops validating value changes. The last status is kept.
// Detach is idempotent.
func (c *Cell) Detach() {
	c.sub.Dispose()
}
