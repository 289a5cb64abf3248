// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/MKhiriev/go-form-guard/internal/crypto"
	"github.com/MKhiriev/go-form-guard/internal/form"
	"github.com/MKhiriev/go-form-guard/internal/logger"
	"github.com/MKhiriev/go-form-guard/internal/store"
	"github.com/MKhiriev/go-form-guard/internal/utils"
	"github.com/MKhiriev/go-form-guard/internal/validators"
	"github.com/MKhiriev/go-form-guard/models"
)

type submissionService struct {
	repository store.SubmissionRepository
	validator  validators.Validator
	secrets    crypto.SecretHasher
	ids        *utils.UUIDGenerator
	now        func() time.Time
	timeout    time.Duration

	logger *logger.Logger
}

// NewSubmissionService stores submissions through repository after checking
// them with validator. Secret field values are replaced by digests from
// secrets. timeout bounds each save; zero means no extra bound beyond ctx.
func NewSubmissionService(repository store.SubmissionRepository, validator validators.Validator, secrets crypto.SecretHasher, timeout time.Duration, logger *logger.Logger) SubmissionService {
	return &submissionService{
		repository: repository,
		validator:  validator,
		secrets:    secrets,
		ids:        utils.NewUUIDGenerator(),
		now:        time.Now,
		timeout:    timeout,
		logger:     logger,
	}
}

func (s *submissionService) Submit(ctx context.Context, f *form.Form) (models.Submission, error) {
	if f == nil {
		return models.Submission{}, ErrNoFormProvided
	}

	if !f.Valid().Get() {
		return models.Submission{}, fmt.Errorf("%w: %s", ErrFormInvalid, strings.Join(f.Invalid(), ", "))
	}

	values, err := s.submittedValues(f)
	if err != nil {
		return models.Submission{}, err
	}

	submission := models.Submission{
		SubmissionID: s.ids.Generate(),
		FormName:     f.Name(),
		Values:       values,
		CreatedAt:    s.now().UTC(),
	}

	if err := s.validator.Validate(ctx, submission); err != nil {
		return models.Submission{}, fmt.Errorf("%w: %w", ErrInvalidSubmission, err)
	}

	if s.timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, s.timeout)
		defer cancel()
	}

	if err := s.repository.Save(ctx, submission); err != nil {
		return models.Submission{}, fmt.Errorf("error saving submission: %w", err)
	}

	logger.FromContext(ctx).Info().
		Str("submission_id", submission.SubmissionID).
		Str("form", submission.FormName).
		Int("values", len(submission.Values)).
		Msg("submission saved")

	return submission, nil
}

func (s *submissionService) Recent(ctx context.Context, formName string, limit int) ([]models.Submission, error) {
	return s.repository.ListByForm(ctx, formName, limit)
}

// submittedValues snapshots every field. Secret inputs are validated like
// any other field but only their digest is kept; an empty secret stays empty.
func (s *submissionService) submittedValues(f *form.Form) (map[string]string, error) {
	values := f.Values()
	for _, field := range f.Fields() {
		name := field.Name()
		if !field.Definition.Secret || values[name] == "" {
			continue
		}

		digest, err := s.secrets.Hash(values[name])
		if err != nil {
			return nil, fmt.Errorf("error hashing field %q: %w", name, err)
		}
		values[name] = digest
	}

	return values, nil
}
