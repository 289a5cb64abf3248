package service

import (
	"context"
	"errors"
	"time"

	"github.com/MKhiriev/go-form-guard/internal/form"
	"github.com/MKhiriev/go-form-guard/internal/logger"
	"github.com/MKhiriev/go-form-guard/models"
)

// SubmissionLoggingService attaches a logger to the context of every call and
// records its outcome.
type SubmissionLoggingService struct {
	inner  SubmissionService
	logger *logger.Logger
}

func NewSubmissionLoggingService(logger *logger.Logger) SubmissionServiceWrapper {
	return &SubmissionLoggingService{
		logger: logger,
	}
}

func (l *SubmissionLoggingService) Submit(ctx context.Context, f *form.Form) (models.Submission, error) {
	log := l.logger.GetChildLogger()
	ctx = log.WithContext(ctx)
	start := time.Now()

	submission, err := l.inner.Submit(ctx, f)
	switch {
	case errors.Is(err, ErrFormInvalid):
		log.Debug().Err(err).Msg("submit refused")
	case err != nil:
		log.Err(err).Dur("took", time.Since(start)).Msg("submit failed")
	default:
		log.Debug().
			Str("submission_id", submission.SubmissionID).
			Dur("took", time.Since(start)).
			Msg("submit finished")
	}

	return submission, err
}

func (l *SubmissionLoggingService) Recent(ctx context.Context, formName string, limit int) ([]models.Submission, error) {
	ctx = l.logger.WithContext(ctx)

	submissions, err := l.inner.Recent(ctx, formName, limit)
	if err != nil {
		l.logger.Err(err).Str("form", formName).Msg("listing submissions failed")
	}

	return submissions, err
}

func (l *SubmissionLoggingService) Wrap(inner SubmissionService) SubmissionService {
	l.inner = inner
	return l
}
