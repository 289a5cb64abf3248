package validators

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/MKhiriev/go-form-guard/models"
)

func validSubmission() models.Submission {
	return models.Submission{
		SubmissionID: "0190a0b1-2c3d-7e4f-8a9b-0c1d2e3f4a5b",
		FormName:     "signup",
		Values:       map[string]string{"email": "jane@example.com"},
		CreatedAt:    time.Now(),
	}
}

func TestSubmissionValidator_Validate(t *testing.T) {
	v := NewSubmissionValidator()
	ctx := context.Background()

	tests := []struct {
		name    string
		mutate  func(s *models.Submission)
		fields  []string
		wantErr error
	}{
		{name: "valid", mutate: func(*models.Submission) {}},
		{name: "bad id", mutate: func(s *models.Submission) { s.SubmissionID = "42" }, wantErr: ErrInvalidSubmissionID},
		{name: "blank form name", mutate: func(s *models.Submission) { s.FormName = "  " }, wantErr: ErrEmptyFormName},
		{name: "no values", mutate: func(s *models.Submission) { s.Values = nil }, wantErr: ErrEmptyValues},
		{name: "zero time", mutate: func(s *models.Submission) { s.CreatedAt = time.Time{} }, wantErr: ErrInvalidCreatedAt},
		{
			name:   "only selected fields are checked",
			mutate: func(s *models.Submission) { s.Values = nil },
			fields: []string{FieldSubmissionID, FieldFormName},
		},
		{name: "unknown field", mutate: func(*models.Submission) {}, fields: []string{"hash"}, wantErr: ErrUnknownField},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s := validSubmission()
			tt.mutate(&s)

			err := v.Validate(ctx, s, tt.fields...)
			if tt.wantErr == nil {
				assert.NoError(t, err)
				return
			}
			assert.ErrorIs(t, err, tt.wantErr)
		})
	}
}

func TestSubmissionValidator_PointerAndUnsupported(t *testing.T) {
	v := NewSubmissionValidator()
	s := validSubmission()

	assert.NoError(t, v.Validate(context.Background(), &s))
	assert.ErrorIs(t, v.Validate(context.Background(), (*models.Submission)(nil)), ErrUnsupportedType)
	assert.ErrorIs(t, v.Validate(context.Background(), "signup"), ErrUnsupportedType)
}
