package service

import (
	"context"

	"github.com/MKhiriev/go-form-guard/internal/form"
	"github.com/MKhiriev/go-form-guard/models"
)

//go:generate mockgen -source=interfaces.go -destination=../mock/service_mock.go -package=mock -exclude_interfaces=SubmissionServiceWrapper

// SubmissionService turns a valid form into a stored submission.
type SubmissionService interface {
	// Submit snapshots the values of f and stores them. It fails with
	// ErrFormInvalid when any required field is in error.
	Submit(ctx context.Context, f *form.Form) (models.Submission, error)

	// Recent lists the latest submissions of a form, newest first.
	Recent(ctx context.Context, formName string, limit int) ([]models.Submission, error)
}

// SubmissionServiceWrapper defines middleware composition for
// SubmissionService. Implementations wrap an existing SubmissionService to add
// behavior such as validating.
type SubmissionServiceWrapper interface {
	Wrap(SubmissionService) SubmissionService
}

// AppInfoService reports build metadata for the about screen.
type AppInfoService interface {
	GetAppVersion(ctx context.Context) string
	GetBuildInfo(ctx context.Context) models.AppBuildInfo
}
