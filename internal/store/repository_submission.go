// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/MKhiriev/go-form-guard/internal/logger"
	"github.com/MKhiriev/go-form-guard/models"
)

const (
	saveAttempts     = 3
	saveRetryBackoff = 50 * time.Millisecond
)

// submissionRepository is the SQL implementation of [SubmissionRepository]
// shared by the SQLite and PostgreSQL backends.
type submissionRepository struct {
	db     *DB
	logger *logger.Logger
}

// NewSubmissionRepository constructs a [SubmissionRepository] backed by db.
func NewSubmissionRepository(db *DB, logger *logger.Logger) SubmissionRepository {
	logger.Debug().Msg("creating submission repository")
	return &submissionRepository{
		db:     db,
		logger: logger,
	}
}

// Save inserts a submission. Transient driver errors are retried a few times
// with a growing pause.
//
// Error handling:
//   - primary key violation → [ErrSubmissionExists].
//   - any other driver-level error → wrapped [ErrExecutingStatement].
func (r *submissionRepository) Save(ctx context.Context, submission models.Submission) error {
	log := logger.FromContext(ctx)

	query, args, err := buildInsertSubmissionQuery(r.db.builder(), submission)
	if err != nil {
		log.Err(err).Str("func", "*submissionRepository.Save").Msg("error building insert query")
		return err
	}

	for attempt := 1; ; attempt++ {
		_, err = r.db.ExecContext(ctx, query, args...)
		if err == nil {
			return nil
		}

		if isUniqueViolation(err) {
			return ErrSubmissionExists
		}

		if attempt == saveAttempts || r.db.errorClassificator.Classify(err) != Retryable {
			break
		}

		log.Warn().Err(err).
			Str("func", "*submissionRepository.Save").
			Int("attempt", attempt).
			Msg("transient error saving submission, retrying")

		select {
		case <-ctx.Done():
			return ctx.Err()
		case <-time.After(time.Duration(attempt) * saveRetryBackoff):
		}
	}

	log.Err(err).
		Str("func", "*submissionRepository.Save").
		Str("submission_id", submission.SubmissionID).
		Msg("failed to insert submission")

	return fmt.Errorf("%w: %w", ErrExecutingStatement, err)
}

// Get returns the submission with the given id or [ErrSubmissionNotFound].
func (r *submissionRepository) Get(ctx context.Context, submissionID string) (models.Submission, error) {
	log := logger.FromContext(ctx)

	query, args, err := buildSelectSubmissionQuery(r.db.builder(), submissionID)
	if err != nil {
		return models.Submission{}, err
	}

	submission, err := scanSubmission(r.db.QueryRowContext(ctx, query, args...))
	if errors.Is(err, sql.ErrNoRows) {
		return models.Submission{}, ErrSubmissionNotFound
	}
	if errors.Is(err, ErrEncodingValues) {
		return models.Submission{}, err
	}
	if err != nil {
		log.Err(err).
			Str("func", "*submissionRepository.Get").
			Str("submission_id", submissionID).
			Msg("failed to scan submission row")
		return models.Submission{}, fmt.Errorf("%w: %w", ErrScanningRow, err)
	}

	return submission, nil
}

// ListByForm returns the latest submissions of a form, newest first.
func (r *submissionRepository) ListByForm(ctx context.Context, formName string, limit int) ([]models.Submission, error) {
	log := logger.FromContext(ctx)

	query, args, err := buildListSubmissionsQuery(r.db.builder(), formName, limit)
	if err != nil {
		return nil, err
	}

	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		log.Err(err).
			Str("func", "*submissionRepository.ListByForm").
			Str("form", formName).
			Msg("failed to query submissions")
		return nil, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}
	defer rows.Close()

	var submissions []models.Submission
	for rows.Next() {
		submission, err := scanSubmission(rows)
		if err != nil {
			return nil, fmt.Errorf("%w: %w", ErrScanningRows, err)
		}
		submissions = append(submissions, submission)
	}

	if err := rows.Err(); err != nil {
		log.Err(err).
			Str("func", "*submissionRepository.ListByForm").
			Str("form", formName).
			Msg("error iterating submission rows")
		return nil, fmt.Errorf("%w: %w", ErrScanningRows, err)
	}

	return submissions, nil
}
