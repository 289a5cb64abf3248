package store

import (
	"encoding/json"
	"fmt"

	sq "github.com/Masterminds/squirrel"

	"github.com/MKhiriev/go-form-guard/models"
)

const submissionsTable = "submissions"

var submissionColumns = []string{
	"submission_id",
	"form_name",
	"values_json",
	"created_at",
}

func buildInsertSubmissionQuery(b sq.StatementBuilderType, s models.Submission) (string, []any, error) {
	values, err := json.Marshal(s.Values)
	if err != nil {
		return "", nil, fmt.Errorf("%w: %w", ErrEncodingValues, err)
	}

	query, args, err := b.
		Insert(submissionsTable).
		Columns(submissionColumns...).
		Values(s.SubmissionID, s.FormName, string(values), s.CreatedAt.UTC()).
		ToSql()
	if err != nil {
		return "", nil, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	return query, args, nil
}

func buildSelectSubmissionQuery(b sq.StatementBuilderType, submissionID string) (string, []any, error) {
	query, args, err := b.
		Select(submissionColumns...).
		From(submissionsTable).
		Where(sq.Eq{"submission_id": submissionID}).
		ToSql()
	if err != nil {
		return "", nil, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	return query, args, nil
}

// buildListSubmissionsQuery selects the newest submissions of a form first.
// A non-positive limit returns all of them.
func buildListSubmissionsQuery(b sq.StatementBuilderType, formName string, limit int) (string, []any, error) {
	q := b.
		Select(submissionColumns...).
		From(submissionsTable).
		Where(sq.Eq{"form_name": formName}).
		OrderBy("created_at DESC", "submission_id DESC")
	if limit > 0 {
		q = q.Limit(uint64(limit))
	}

	query, args, err := q.ToSql()
	if err != nil {
		return "", nil, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	return query, args, nil
}

type rowScanner interface {
	Scan(dest ...any) error
}

func scanSubmission(row rowScanner) (models.Submission, error) {
	var (
		s      models.Submission
		values string
	)

	if err := row.Scan(&s.SubmissionID, &s.FormName, &values, &s.CreatedAt); err != nil {
		return models.Submission{}, err
	}

	if err := json.Unmarshal([]byte(values), &s.Values); err != nil {
		return models.Submission{}, fmt.Errorf("%w: %w", ErrEncodingValues, err)
	}

	return s, nil
}
