// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package validation

import (
	"maps"
	"slices"

	"github.com/MKhiriev/go-form-guard/internal/reactive"
)

// Validatable is implemented by form entries that take part in aggregation.
type Validatable interface {
	HasError() bool
}

// FormModel maps field names to entries. Entries that do not implement
// Validatable are opaque and ignored by Aggregate.
type FormModel map[string]any

// Validatables returns the names of the entries implementing Validatable,
// sorted.
func (m FormModel) Validatables() []string {
	names := make([]string, 0, len(m))
	for _, name := range slices.Sorted(maps.Keys(m)) {
		if _, ok := m[name].(Validatable); ok {
			names = append(names, name)
		}
	}

	return names
}

// Aggregate derives the form-level validity: true when no Validatable entry
// reports an error. An empty model is valid.
//
// The set of validatable entries is captured once; later structural changes
// to model are not observed. The model is only read, never modified.
func Aggregate(model FormModel) *reactive.Computed[bool] {
	names := model.Validatables()
	fields := make([]Validatable, 0, len(names))
	for _, name := range names {
		fields = append(fields, model[name].(Validatable))
	}

	return reactive.NewComputed(func() bool {
		errorCount := 0
		// every HasError must be read so each field stays a dependency
		for _, field := range fields {
			if field.HasError() {
				errorCount++
			}
		}

		return errorCount == 0
	})
}
