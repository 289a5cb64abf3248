// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package validators checks domain objects before they cross into storage.
//
// Form fields are validated reactively by the validation package; this
// package covers what is assembled around them (ids, timestamps, names) at
// submit time.
package validators

import "context"

//go:generate mockgen -source=interfaces.go -destination=../mock/validator_mock.go -package=mock

// Validator validates a value, optionally only the named fields of it.
type Validator interface {
	Validate(ctx context.Context, obj any, fields ...string) error
}
