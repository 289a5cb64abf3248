// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

import "time"

// Submission is a validated form snapshot persisted by the store.
type Submission struct {
	// SubmissionID is a client-generated UUIDv7.
	SubmissionID string `json:"submission_id"`

	// FormName is the [FormDefinition.Name] of the submitted form.
	FormName string `json:"form_name"`

	// Values maps field names to the submitted string values.
	Values map[string]string `json:"values"`

	// CreatedAt is the moment the submission was accepted.
	CreatedAt time.Time `json:"created_at"`
}
