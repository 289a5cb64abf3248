package form

import "errors"

var (
	ErrUnknownDefinition = errors.New("unknown form definition")
	ErrEmptyDefinition   = errors.New("form definition is empty")
	ErrEmptyFormName     = errors.New("form name is required")
	ErrNoFields          = errors.New("form must declare at least one field")
	ErrEmptyFieldName    = errors.New("field name is required")
	ErrDuplicateField    = errors.New("duplicate field name")
	ErrUnknownField      = errors.New("unknown field")
)
