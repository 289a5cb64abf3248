package config

import "errors"

// Validation errors returned by [StructuredConfig.validate] when a
// configuration group is incomplete or invalid.
var (
	// ErrInvalidStorageConfigs indicates an empty database DSN.
	ErrInvalidStorageConfigs = errors.New("invalid storage configuration")
	// ErrInvalidAppConfigs indicates invalid form screen settings
	// (for example, a form file that does not exist).
	ErrInvalidAppConfigs = errors.New("invalid app configuration")
	// ErrInvalidLogConfigs indicates an unknown log level or empty log path.
	ErrInvalidLogConfigs = errors.New("invalid log configuration")
)
