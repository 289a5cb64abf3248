// Package migrations embeds the submission schema and applies it with goose.
package migrations

import (
	"database/sql"
	"embed"
	"errors"
	"fmt"

	"github.com/pressly/goose/v3"
)

//go:embed *.sql
var embedMigrations embed.FS

// Dialects understood by Migrate.
const (
	DialectSQLite   = "sqlite3"
	DialectPostgres = "pgx"
)

var errNilDB = errors.New("migration error: db is nil")

// Migrate brings the schema of db up to date. dialect is one of
// DialectSQLite or DialectPostgres.
func Migrate(db *sql.DB, dialect string) error {
	if db == nil {
		return errNilDB
	}

	goose.SetBaseFS(embedMigrations)

	if err := goose.SetDialect(dialect); err != nil {
		return fmt.Errorf("migration error setting dialect for db: %w", err)
	}

	if err := goose.Up(db, "."); err != nil {
		return fmt.Errorf("migration error: %w", err)
	}

	return nil
}
