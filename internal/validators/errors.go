package validators

import "errors"

var (
	ErrUnsupportedType = errors.New("unsupported type for validation")
	ErrUnknownField    = errors.New("unknown field for validation")

	ErrInvalidSubmissionID = errors.New("invalid submission id")
	ErrEmptyFormName       = errors.New("form name is required")
	ErrEmptyValues         = errors.New("submission values are required")
	ErrInvalidCreatedAt    = errors.New("invalid submission timestamp")
)
