package store

import (
	"context"
	"fmt"

	"github.com/MKhiriev/go-form-guard/internal/config"
	"github.com/MKhiriev/go-form-guard/internal/logger"
)

// Storages groups the repositories of the application together with the
// connection they share.
type Storages struct {
	// Submissions stores validated form submissions.
	Submissions SubmissionRepository

	db *DB
}

// NewStorages initialises the storage layer:
//  1. Opens the database named by cfg.DSN (SQLite file or PostgreSQL URL).
//  2. Runs pending schema migrations via [DB.Migrate].
//  3. Wires the repositories to the connection.
func NewStorages(ctx context.Context, cfg config.DB, logger *logger.Logger) (*Storages, error) {
	logger.Info().Msg("creating new storages...")

	db, err := Open(ctx, cfg, logger)
	if err != nil {
		return nil, fmt.Errorf("database connection error: %w", err)
	}

	if err := db.Migrate(); err != nil {
		db.Close()
		return nil, fmt.Errorf("migration failed: %w", err)
	}

	return &Storages{
		Submissions: NewSubmissionRepository(db, logger),
		db:          db,
	}, nil
}

// Close releases the database connection.
func (s *Storages) Close() error {
	return s.db.Close()
}
