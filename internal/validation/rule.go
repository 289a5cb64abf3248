// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package validation attaches validation state to reactive form values and
// aggregates per-field validity into a single form-level signal.
//
// Core concepts:
//   - Rule: immutable validation configuration resolved from partial Options.
//   - Cell: a reactive string enriched with a derived message, style tag and
//     error flag, recomputed on every change of the value.
//   - FormModel / Aggregate: a named collection of entries and the derived
//     "all valid" boolean over the entries that implement Validatable.
package validation

import (
	"regexp"

	"dario.cat/mergo"
)

// Default rule values. A field configured with empty Options is required
// and must contain at least one non-whitespace character.
const (
	DefaultSuccessMessage = "Good!"
	DefaultErrorMessage   = "Invalid!"
	DefaultSuccessStyle   = "success"
	DefaultErrorStyle     = "error"
)

// DefaultPattern accepts any value with a non-whitespace character. Unicode
// spaces such as U+00A0 and U+3000 count as whitespace, not only ASCII ones.
var DefaultPattern = regexp.MustCompile(`^[\s\p{Z}\x{feff}]*[^\s\p{Z}\x{feff}].*$`)

// Options is a partial rule configuration. Nil fields are taken from the
// defaults by Resolve; a non-nil field wins even when it points to "".
type Options struct {
	// Pattern is matched against the whole string value of the field.
	Pattern *regexp.Regexp

	// Required controls whether a failed match counts as an error. When false
	// an empty value is displayed neutrally and the field never reports an
	// error.
	Required *bool

	SuccessMessage *string
	ErrorMessage   *string

	// SuccessStyle and ErrorStyle are opaque tags handed to the presentation
	// layer untouched.
	SuccessStyle *string
	ErrorStyle   *string
}

// Rule is a fully resolved validation configuration.
type Rule struct {
	Pattern        *regexp.Regexp
	Required       bool
	SuccessMessage string
	ErrorMessage   string
	SuccessStyle   string
	ErrorStyle     string
}

// Bool returns a pointer to v, for use in Options.Required.
func Bool(v bool) *bool {
	return &v
}

// String returns a pointer to v, for use in the message and style fields of
// Options.
func String(v string) *string {
	return &v
}

func defaultOptions() Options {
	return Options{
		Pattern:        DefaultPattern,
		Required:       Bool(true),
		SuccessMessage: String(DefaultSuccessMessage),
		ErrorMessage:   String(DefaultErrorMessage),
		SuccessStyle:   String(DefaultSuccessStyle),
		ErrorStyle:     String(DefaultErrorStyle),
	}
}

// Resolve merges opts field by field over the defaults. Caller fields take
// precedence; opts itself is never modified.
func Resolve(opts Options) Rule {
	merged := opts
	// WithoutDereference keeps mergo from writing through caller pointers.
	// Merging two values of the same struct type cannot fail.
	_ = mergo.Merge(&merged, defaultOptions(), mergo.WithoutDereference)

	return Rule{
		Pattern:        merged.Pattern,
		Required:       *merged.Required,
		SuccessMessage: *merged.SuccessMessage,
		ErrorMessage:   *merged.ErrorMessage,
		SuccessStyle:   *merged.SuccessStyle,
		ErrorStyle:     *merged.ErrorStyle,
	}
}

// Status is the outcome of evaluating a value against a rule. The three
// fields always come from the same evaluation.
type Status struct {
	Message  string
	StyleTag string
	HasError bool
}

// Initial returns the status of a cell before its value has ever changed:
// no message, no style, and an error only when the field is required.
func (r Rule) Initial() Status {
	return Status{HasError: r.Required}
}

// Evaluate checks v against the rule.
//
// A failed match sets the error message and style. An empty value on a
// non-required field is displayed neutrally. HasError is only ever true for
// required fields.
func (r Rule) Evaluate(v string) Status {
	failed := !r.Pattern.MatchString(v)

	status := Status{HasError: r.Required && failed}
	if !r.Required && len(v) == 0 {
		return status
	}

	if failed {
		status.Message = r.ErrorMessage
		status.StyleTag = r.ErrorStyle
	} else {
		status.Message = r.SuccessMessage
		status.StyleTag = r.SuccessStyle
	}

	return status
}
