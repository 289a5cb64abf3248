// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package tui

import (
	"context"
	"errors"

	"github.com/MKhiriev/go-form-guard/internal/service"
	"github.com/MKhiriev/go-form-guard/internal/store"
)

// humanizeError turns service and storage failures into a line fit for the
// status bar or the error overlay.
func humanizeError(err error) string {
	switch {
	case err == nil:
		return ""
	case errors.Is(err, service.ErrFormInvalid):
		return "Fix the highlighted fields first"
	case errors.Is(err, store.ErrSubmissionExists):
		return "This submission was already saved"
	case errors.Is(err, context.DeadlineExceeded):
		return "The database did not answer in time"
	case errors.Is(err, context.Canceled):
		return "Cancelled"
	}

	return err.Error()
}
