// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package form turns a declarative form definition into live, validated
// reactive fields plus the form-level validity signal.
package form

import (
	"fmt"
	"strings"

	"github.com/MKhiriev/go-form-guard/internal/logger"
	"github.com/MKhiriev/go-form-guard/internal/patterns"
	"github.com/MKhiriev/go-form-guard/internal/reactive"
	"github.com/MKhiriev/go-form-guard/internal/validation"
	"github.com/MKhiriev/go-form-guard/models"
)

// Field is one input of a form: the caller-owned value and the validation
// cell attached to it.
type Field struct {
	Definition models.FieldDefinition
	Value      *reactive.Observable[string]
	Cell       *validation.Cell
}

// Name returns the field key.
func (f *Field) Name() string {
	return f.Definition.Name
}

// Label returns the display label, falling back to the name.
func (f *Field) Label() string {
	if f.Definition.Label != "" {
		return f.Definition.Label
	}
	return f.Definition.Name
}

// Form is a set of validated fields built from a definition, together with
// the aggregate validity of all of them.
type Form struct {
	definition models.FormDefinition
	fields     []*Field
	byName     map[string]*Field
	model      validation.FormModel
	valid      *reactive.Computed[bool]
	logger     *logger.Logger
}

// New builds the fields of def, attaches validation to each of them and
// derives the form validity. Pattern expressions are resolved here, so an
// invalid expression fails construction.
func New(def models.FormDefinition, log *logger.Logger) (*Form, error) {
	if err := checkDefinition(def); err != nil {
		return nil, fmt.Errorf("form %q: %w", def.Name, err)
	}

	f := &Form{
		definition: def,
		fields:     make([]*Field, 0, len(def.Fields)),
		byName:     make(map[string]*Field, len(def.Fields)),
		model:      make(validation.FormModel, len(def.Fields)),
		logger:     log,
	}

	for _, fd := range def.Fields {
		fd.Name = strings.TrimSpace(fd.Name)

		opts, err := optionsFor(fd)
		if err != nil {
			return nil, fmt.Errorf("form %q field %q: %w", def.Name, fd.Name, err)
		}

		value := reactive.NewObservable("")
		field := &Field{
			Definition: fd,
			Value:      value,
			Cell:       validation.Attach(value, opts),
		}

		f.fields = append(f.fields, field)
		f.byName[fd.Name] = field
		f.model[fd.Name] = field.Cell
	}

	// every field is attached; the aggregate is created exactly once
	f.valid = validation.Aggregate(f.model)

	log.Debug().
		Str("form", def.Name).
		Int("fields", len(f.fields)).
		Bool("valid", f.valid.Peek()).
		Msg("form built")

	return f, nil
}

func optionsFor(fd models.FieldDefinition) (validation.Options, error) {
	pattern, err := patterns.Lookup(fd.Pattern)
	if err != nil {
		return validation.Options{}, err
	}

	return validation.Options{
		Pattern:        pattern,
		Required:       fd.Required,
		SuccessMessage: fd.SuccessMessage,
		ErrorMessage:   fd.ErrorMessage,
		SuccessStyle:   fd.SuccessStyle,
		ErrorStyle:     fd.ErrorStyle,
	}, nil
}

// Name returns the form identifier.
func (f *Form) Name() string {
	return f.definition.Name
}

// Title returns the heading, falling back to the name.
func (f *Form) Title() string {
	if f.definition.Title != "" {
		return f.definition.Title
	}
	return f.definition.Name
}

// Fields returns the fields in declaration order.
func (f *Form) Fields() []*Field {
	return f.fields
}

// Field looks a field up by name.
func (f *Form) Field(name string) (*Field, bool) {
	field, ok := f.byName[name]
	return field, ok
}

// Model exposes the validation model backing the form.
func (f *Form) Model() validation.FormModel {
	return f.model
}

// Valid is the aggregate validity of all fields.
func (f *Form) Valid() reactive.Readable[bool] {
	return f.valid
}

// Set writes value into the named field. Validation, aggregation and any
// bindings have run by the time Set returns.
func (f *Form) Set(name, value string) error {
	field, ok := f.byName[name]
	if !ok {
		return fmt.Errorf("form %q: %w: %s", f.definition.Name, ErrUnknownField, name)
	}

	field.Value.Set(value)
	return nil
}

// Values returns a snapshot of every field value keyed by field name.
func (f *Form) Values() map[string]string {
	values := make(map[string]string, len(f.fields))
	for _, field := range f.fields {
		values[field.Name()] = field.Value.Peek()
	}

	return values
}

// Invalid returns the names of the fields currently reporting an error, in
// declaration order.
func (f *Form) Invalid() []string {
	var names []string
	for _, field := range f.fields {
		if field.Cell.Status().HasError {
			names = append(names, field.Name())
		}
	}

	return names
}

// Close detaches every cell and disposes the aggregate. The form must not be
// used afterwards.
func (f *Form) Close() {
	for _, field := range f.fields {
		field.Cell.Detach()
	}
	f.valid.Dispose()
}
