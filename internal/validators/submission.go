package validators

import (
	"context"
	"strings"

	"github.com/google/uuid"

	"github.com/MKhiriev/go-form-guard/models"
)

const (
	FieldSubmissionID = "submission_id"
	FieldFormName     = "form_name"
	FieldValues       = "values"
	FieldCreatedAt    = "created_at"
)

// SubmissionValidator checks the envelope of a submission before it is
// stored. Field values themselves are validated by the form.
type SubmissionValidator struct {
}

func NewSubmissionValidator() Validator {
	return &SubmissionValidator{}
}

func (v *SubmissionValidator) Validate(ctx context.Context, obj any, fields ...string) error {
	switch value := obj.(type) {
	case models.Submission:
		return v.validateSubmission(ctx, value, fields...)
	case *models.Submission:
		if value == nil {
			return ErrUnsupportedType
		}
		return v.validateSubmission(ctx, *value, fields...)
	default:
		return ErrUnsupportedType
	}
}

func (v *SubmissionValidator) validateSubmission(_ context.Context, s models.Submission, fields ...string) error {
	if len(fields) == 0 {
		fields = []string{FieldSubmissionID, FieldFormName, FieldValues, FieldCreatedAt}
	}

	for _, f := range fields {
		switch f {
		case FieldSubmissionID:
			if _, err := uuid.Parse(s.SubmissionID); err != nil {
				return ErrInvalidSubmissionID
			}
		case FieldFormName:
			if strings.TrimSpace(s.FormName) == "" {
				return ErrEmptyFormName
			}
		case FieldValues:
			if len(s.Values) == 0 {
				return ErrEmptyValues
			}
		case FieldCreatedAt:
			if s.CreatedAt.IsZero() {
				return ErrInvalidCreatedAt
			}
		default:
			return ErrUnknownField
		}
	}

	return nil
}
