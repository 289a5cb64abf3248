package store

import (
	"context"
	"database/sql"
	"fmt"
	"strings"

	sq "github.com/Masterminds/squirrel"

	"github.com/MKhiriev/go-form-guard/internal/config"
	"github.com/MKhiriev/go-form-guard/internal/logger"
	"github.com/MKhiriev/go-form-guard/migrations"
)

// DB wraps a database handle with what repositories need to talk to it:
// the goose dialect, the squirrel placeholder format and the driver error
// classifier.
type DB struct {
	*sql.DB
	dialect            string
	placeholder        sq.PlaceholderFormat
	errorClassificator ErrorClassificator
	logger             *logger.Logger
}

// Open connects to PostgreSQL when the DSN is a postgres URL and to a SQLite
// file otherwise. Any other URL scheme is rejected with [ErrUnsupportedDSN].
func Open(ctx context.Context, cfg config.DB, log *logger.Logger) (*DB, error) {
	switch {
	case isPostgresDSN(cfg.DSN):
		return NewConnectPostgres(ctx, cfg, log)
	case strings.Contains(cfg.DSN, "://"):
		return nil, fmt.Errorf("%w: %s", ErrUnsupportedDSN, cfg.DSN)
	}

	return NewConnectSQLite(ctx, cfg, log)
}

func isPostgresDSN(dsn string) bool {
	return strings.HasPrefix(dsn, "postgres://") || strings.HasPrefix(dsn, "postgresql://")
}

// Migrate applies the embedded schema with the dialect of the connection.
func (db *DB) Migrate() error {
	return migrations.Migrate(db.DB, db.dialect)
}

func (db *DB) builder() sq.StatementBuilderType {
	return sq.StatementBuilder.PlaceholderFormat(db.placeholder)
}
