package store

import (
	"context"

	"github.com/MKhiriev/go-form-guard/models"
)

//go:generate mockgen -source=interfaces.go -destination=../mock/submission_repository_mock.go -package=mock

// SubmissionRepository persists validated form submissions.
type SubmissionRepository interface {
	Save(ctx context.Context, submission models.Submission) error
	Get(ctx context.Context, submissionID string) (models.Submission, error)
	ListByForm(ctx context.Context, formName string, limit int) ([]models.Submission, error)
}

// ErrorClassificator decides whether a failed database call may be retried.
type ErrorClassificator interface {
	Classify(err error) ErrorClassification
}
