package store

import (
	"context"
	"fmt"

	"github.com/MKhiriev/go-doc-sync/internal/config"
	"github.com/MKhiriev/go-doc-sync/internal/logger"
)

// ClientStorages holds the local store of the client together with the
// resources that back it.
type ClientStorages struct {
	// Store is the local store the sync session reads from and reconciles
	// into.
	Store LocalStore

	db *DB
}

// NewClientStorages initialises the client storage layer using the supplied
// configuration and logger. For the "sqlite" kind it performs the following
// steps:
//  1. Opens an SQLite connection to the file path specified in cfg.DB.DSN,
//     creating the database file if it does not yet exist.
//  2. Runs pending schema migrations via [DB.Migrate].
//  3. Wraps the connection in a [SQLiteStore].
//
// The "memory" kind returns an empty [MemoryStore].
func NewClientStorages(ctx context.Context, cfg config.Storage, logger *logger.Logger) (*ClientStorages, error) {
	logger.Info().Str("kind", cfg.Kind).Msg("creating local store...")

	switch cfg.Kind {
	case config.StorageMemory:
		return &ClientStorages{Store: NewMemoryStore()}, nil

	case config.StorageSQLite:
		db, err := NewConnectSQLite(ctx, cfg.DB, logger)
		if err != nil {
			return nil, fmt.Errorf("sqlite connection error: %w", err)
		}

		if err = db.Migrate(ctx); err != nil {
			_ = db.Close()
			return nil, fmt.Errorf("migration failed: %w", err)
		}

		return &ClientStorages{Store: NewSQLiteStore(db, logger), db: db}, nil

	default:
		return nil, fmt.Errorf("%w: %q", ErrUnknownStorageKind, cfg.Kind)
	}
}

// Close releases the database connection, if any.
func (c *ClientStorages) Close() error {
	if c.db == nil {
		return nil
	}
	return c.db.Close()
}
