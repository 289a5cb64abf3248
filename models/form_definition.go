// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

// FormDefinition declares a form: its identity and the ordered list of
// fields rendered and validated by the application. Definitions are loaded
// from YAML or JSON files.
type FormDefinition struct {
	// Name is the stable identifier stored with every submission.
	Name string `json:"name" yaml:"name"`

	// Title is shown as the form heading.
	Title string `json:"title" yaml:"title"`

	// Fields are rendered in declaration order.
	Fields []FieldDefinition `json:"fields" yaml:"fields"`
}

// FieldDefinition declares a single scalar form field and its validation
// rule. Empty rule fields fall back to the rule defaults.
type FieldDefinition struct {
	// Name is the key of the field in submitted values. Must be unique
	// within a form.
	Name string `json:"name" yaml:"name"`

	// Label is the text rendered next to the input.
	Label string `json:"label" yaml:"label"`

	// Placeholder is shown while the input is empty.
	Placeholder string `json:"placeholder,omitempty" yaml:"placeholder,omitempty"`

	// Pattern is either a catalog key (required, url, email, phone, zipcode)
	// or a regular expression.
	Pattern string `json:"pattern,omitempty" yaml:"pattern,omitempty"`

	// Required defaults to true when omitted.
	Required *bool `json:"required,omitempty" yaml:"required,omitempty"`

	// Messages and style tags default when omitted. An explicit "" is kept,
	// so success_message: "" hides the success message.
	SuccessMessage *string `json:"success_message,omitempty" yaml:"success_message,omitempty"`
	ErrorMessage   *string `json:"error_message,omitempty" yaml:"error_message,omitempty"`
	SuccessStyle   *string `json:"success_style,omitempty" yaml:"success_style,omitempty"`
	ErrorStyle     *string `json:"error_style,omitempty" yaml:"error_style,omitempty"`

	// Secret masks the input while typing. Only a digest of the value is
	// stored with a submission.
	Secret bool `json:"secret,omitempty" yaml:"secret,omitempty"`
}
