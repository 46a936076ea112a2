package store

import (
	"context"
	"database/sql"

	"github.com/MKhiriev/go-doc-sync/internal/logger"
	"github.com/MKhiriev/go-doc-sync/migrations"
)

// DB is the SQLite connection behind [SQLiteStore].
type DB struct {
	*sql.DB
	logger *logger.Logger
}

// Migrate applies pending schema migrations and logs the applied versions.
func (db *DB) Migrate(ctx context.Context) error {
	applied, err := migrations.Migrate(ctx, db.DB)
	if err != nil {
		return err
	}

	db.logger.Info().
		Str("func", "DB.Migrate").
		Ints64("applied", applied).
		Msg("local schema up to date")
	return nil
}
