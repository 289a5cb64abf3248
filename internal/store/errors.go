package store

import "errors"

// Sentinel errors returned by repository methods to signal well-known failure
// conditions. Callers should use [errors.Is] to match against these values.
var (
	// ErrSubmissionExists is returned when a submission with the same id is
	// already stored.
	ErrSubmissionExists = errors.New("submission already exists")

	// ErrSubmissionNotFound is returned when no submission matches the
	// requested id.
	ErrSubmissionNotFound = errors.New("submission was not found")

	// ErrUnsupportedDSN is returned when a DSN names neither a SQLite file nor
	// a PostgreSQL server.
	ErrUnsupportedDSN = errors.New("unsupported database dsn")
)

// Low-level database operation errors. These are wrapped by repository
// methods when a SQL-level operation fails before any domain logic can be
// applied.
var (
	// ErrBuildingSQLQuery is returned when squirrel cannot render a query.
	ErrBuildingSQLQuery = errors.New("error building sql query")

	// ErrExecutingQuery is returned when executing a SELECT fails.
	ErrExecutingQuery = errors.New("error executing sql query")

	// ErrExecutingStatement is returned when executing an INSERT fails.
	ErrExecutingStatement = errors.New("failed to execute statement")

	// ErrScanningRow is returned when scanning a single result row fails.
	ErrScanningRow = errors.New("failed to scan submission row")

	// ErrScanningRows is returned when iterating a multi-row result fails.
	ErrScanningRows = errors.New("failed to scan submission rows")

	// ErrEncodingValues is returned when submission values cannot be
	// converted to or from their stored JSON form.
	ErrEncodingValues = errors.New("failed to encode submission values")
)
