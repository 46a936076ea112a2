package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"

	_ "github.com/mattn/go-sqlite3"

	"github.com/MKhiriev/go-doc-sync/internal/config"
	"github.com/MKhiriev/go-doc-sync/internal/logger"
)

const (
	inMemoryDSN = ":memory:"

	// busyTimeoutMS lets concurrent writers wait for the file lock instead
	// of failing with SQLITE_BUSY.
	busyTimeoutMS = 5000
)

// NewConnectSQLite opens the local SQLite database named by cfg.DSN. Plain
// file paths are created together with missing parent directories.
func NewConnectSQLite(ctx context.Context, cfg config.DB, log *logger.Logger) (*DB, error) {
	if err := ensureSQLiteFile(cfg.DSN); err != nil {
		log.Err(err).Str("func", "NewConnectSQLite").Str("dsn", cfg.DSN).Msg("prepare database file")
		return nil, err
	}

	conn, err := sql.Open("sqlite3", sqliteDSN(cfg.DSN))
	if err != nil {
		return nil, fmt.Errorf("open sqlite: %w", err)
	}

	if cfg.DSN == inMemoryDSN {
		// each pooled connection would get its own empty database
		conn.SetMaxOpenConns(1)
	}

	if err = conn.PingContext(ctx); err != nil {
		_ = conn.Close()
		log.Err(err).Str("func", "NewConnectSQLite").Msg("ping sqlite")
		return nil, fmt.Errorf("ping sqlite: %w", err)
	}

	log.Debug().Str("func", "NewConnectSQLite").Str("dsn", cfg.DSN).Msg("sqlite connected")
	return &DB{DB: conn, logger: log}, nil
}

// ensureSQLiteFile creates the database file of a plain path DSN. URI DSNs
// and the in-memory database are left to the driver.
func ensureSQLiteFile(dsn string) error {
	if dsn == inMemoryDSN || strings.HasPrefix(dsn, "file:") {
		return nil
	}

	path, _, _ := strings.Cut(dsn, "?")
	if _, err := os.Stat(path); err == nil {
		return nil
	} else if !errors.Is(err, fs.ErrNotExist) {
		return fmt.Errorf("stat database file: %w", err)
	}

	if dir := filepath.Dir(path); dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return fmt.Errorf("create database directory: %w", err)
		}
	}

	f, err := os.OpenFile(path, os.O_CREATE|os.O_EXCL|os.O_WRONLY, 0o600)
	if err != nil {
		if errors.Is(err, fs.ErrExist) {
			return nil
		}
		return fmt.Errorf("create database file: %w", err)
	}
	return f.Close()
}

// sqliteDSN appends the busy timeout unless the DSN already sets one.
func sqliteDSN(dsn string) string {
	if strings.Contains(dsn, "_busy_timeout=") {
		return dsn
	}
	sep := "?"
	if strings.Contains(dsn, "?") {
		sep = "&"
	}
	return fmt.Sprintf("%s%s_busy_timeout=%d", dsn, sep, busyTimeoutMS)
}
