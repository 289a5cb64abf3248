package service

import "errors"

var (
	// ErrFormInvalid is returned by Submit while the form has fields in error.
	ErrFormInvalid = errors.New("form has invalid fields")

	// ErrNoFormProvided is returned when Submit receives a nil form.
	ErrNoFormProvided = errors.New("no form provided")

	// ErrInvalidSubmission wraps validator failures of an assembled
	// submission.
	ErrInvalidSubmission = errors.New("invalid submission")
)
