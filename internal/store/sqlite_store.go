package store

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"
	"maps"
	"sync"

	"github.com/MKhiriev/go-doc-sync/internal/logger"
)

// SQLiteStore is a [LocalStore] persisted in the documents table of a local
// SQLite database. The first path segment selects the root (e.g. "nodes"),
// the second the document id; the remaining segments address fields inside
// the document body, which is stored as JSON.
type SQLiteStore struct {
	db     *DB
	logger *logger.Logger

	// mu serializes read-modify-write cycles on document bodies.
	mu sync.Mutex
}

type execer interface {
	ExecContext(ctx context.Context, query string, args ...any) (sql.Result, error)
}

func NewSQLiteStore(db *DB, log *logger.Logger) *SQLiteStore {
	return &SQLiteStore{
		db:     db,
		logger: log,
	}
}

func (s *SQLiteStore) Get(ctx context.Context, path string) (any, error) {
	segments, err := splitPath(path)
	if err != nil {
		return nil, err
	}

	if len(segments) == 1 {
		docs, err := s.loadRoot(ctx, segments[0])
		if err != nil {
			return nil, err
		}
		if len(docs) == 0 {
			return nil, fmt.Errorf("%w: %s", ErrPathNotFound, path)
		}
		return docs, nil
	}

	doc, err := s.loadDocument(ctx, segments[0], segments[1])
	if err != nil {
		return nil, err
	}
	if doc == nil {
		return nil, fmt.Errorf("%w: %s", ErrPathNotFound, path)
	}

	v, ok := lookup(doc, segments[2:])
	if !ok {
		return nil, fmt.Errorf("%w: %s", ErrPathNotFound, path)
	}
	return v, nil
}

func (s *SQLiteStore) Set(ctx context.Context, path string, value any) error {
	segments, err := splitPath(path)
	if err != nil {
		return err
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	root := segments[0]
	switch len(segments) {
	case 1:
		docs, ok := asMap(value)
		if !ok {
			return fmt.Errorf("%w: %s", ErrNotContainer, path)
		}
		return s.inTx(ctx, func(tx *sql.Tx) error {
			if err := s.deleteRoot(ctx, tx, root); err != nil {
				return err
			}
			return s.saveAll(ctx, tx, root, docs)
		})
	case 2:
		doc, ok := asMap(value)
		if !ok {
			return fmt.Errorf("%w: %s", ErrNotContainer, path)
		}
		return s.saveDocument(ctx, s.db, root, segments[1], doc)
	}

	doc, err := s.loadOrCreate(ctx, root, segments[1])
	if err != nil {
		return err
	}
	parent, err := container(doc, segments[2:len(segments)-1])
	if err != nil {
		return err
	}
	parent[segments[len(segments)-1]] = copyValue(value)
	return s.saveDocument(ctx, s.db, root, segments[1], doc)
}

func (s *SQLiteStore) Merge(ctx context.Context, path string, partial map[string]any) error {
	segments, err := splitPath(path)
	if err != nil {
		return err
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	root := segments[0]
	if len(segments) == 1 {
		return s.inTx(ctx, func(tx *sql.Tx) error {
			return s.saveAll(ctx, tx, root, partial)
		})
	}

	doc, err := s.loadOrCreate(ctx, root, segments[1])
	if err != nil {
		return err
	}
	target, err := container(doc, segments[2:])
	if err != nil {
		return err
	}
	maps.Copy(target, copyValue(partial).(map[string]any))
	return s.saveDocument(ctx, s.db, root, segments[1], doc)
}

func (s *SQLiteStore) Delete(ctx context.Context, path string) error {
	segments, err := splitPath(path)
	if err != nil {
		return err
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	root := segments[0]
	switch len(segments) {
	case 1:
		return s.deleteRoot(ctx, s.db, root)
	case 2:
		return s.deleteDocument(ctx, root, segments[1])
	}

	doc, err := s.loadDocument(ctx, root, segments[1])
	if err != nil || doc == nil {
		return err
	}
	parent, ok := lookup(doc, segments[2:len(segments)-1])
	if !ok {
		return nil
	}
	m, ok := asMap(parent)
	if !ok {
		return nil
	}
	delete(m, segments[len(segments)-1])
	return s.saveDocument(ctx, s.db, root, segments[1], doc)
}

// loadDocument returns the decoded body of a document, or nil when the
// document does not exist.
func (s *SQLiteStore) loadDocument(ctx context.Context, root, id string) (map[string]any, error) {
	query, args, err := buildSelectDocumentQuery(root, id)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	var body string
	err = s.db.QueryRowContext(ctx, query, args...).Scan(&body)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		s.logger.Err(err).
			Str("func", "SQLiteStore.loadDocument").
			Str("root", root).
			Str("id", id).
			Msg("failed to query document")
		return nil, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}

	return decodeDocument(body)
}

func (s *SQLiteStore) loadOrCreate(ctx context.Context, root, id string) (map[string]any, error) {
	doc, err := s.loadDocument(ctx, root, id)
	if err != nil {
		return nil, err
	}
	if doc == nil {
		doc = make(map[string]any)
	}
	return doc, nil
}

func (s *SQLiteStore) loadRoot(ctx context.Context, root string) (map[string]any, error) {
	query, args, err := buildSelectRootQuery(root)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	rows, err := s.db.QueryContext(ctx, query, args...)
	if err != nil {
		s.logger.Err(err).
			Str("func", "SQLiteStore.loadRoot").
			Str("root", root).
			Msg("failed to query documents")
		return nil, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}
	defer rows.Close()

	docs := make(map[string]any)
	for rows.Next() {
		var id, body string
		if err := rows.Scan(&id, &body); err != nil {
			return nil, fmt.Errorf("%w: %w", ErrScanningRow, err)
		}
		doc, err := decodeDocument(body)
		if err != nil {
			return nil, err
		}
		docs[id] = doc
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrScanningRow, err)
	}

	return docs, nil
}

func (s *SQLiteStore) saveAll(ctx context.Context, ex execer, root string, docs map[string]any) error {
	for id, v := range docs {
		doc, ok := asMap(v)
		if !ok {
			return fmt.Errorf("%w: %s", ErrNotContainer, JoinPath(root, id))
		}
		if err := s.saveDocument(ctx, ex, root, id, doc); err != nil {
			return err
		}
	}
	return nil
}

func (s *SQLiteStore) saveDocument(ctx context.Context, ex execer, root, id string, doc map[string]any) error {
	body, err := json.Marshal(doc)
	if err != nil {
		return fmt.Errorf("failed to encode document %s: %w", id, err)
	}

	query, args, err := buildUpsertDocumentQuery(root, id, string(body))
	if err != nil {
		return fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	if _, err = ex.ExecContext(ctx, query, args...); err != nil {
		s.logger.Err(err).
			Str("func", "SQLiteStore.saveDocument").
			Str("root", root).
			Str("id", id).
			Msg("failed to upsert document")
		return fmt.Errorf("%w: %w", ErrExecutingStatement, err)
	}
	return nil
}

func (s *SQLiteStore) deleteDocument(ctx context.Context, root, id string) error {
	query, args, err := buildDeleteDocumentQuery(root, id)
	if err != nil {
		return fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	if _, err = s.db.ExecContext(ctx, query, args...); err != nil {
		s.logger.Err(err).
			Str("func", "SQLiteStore.deleteDocument").
			Str("root", root).
			Str("id", id).
			Msg("failed to delete document")
		return fmt.Errorf("%w: %w", ErrExecutingStatement, err)
	}
	return nil
}

func (s *SQLiteStore) deleteRoot(ctx context.Context, ex execer, root string) error {
	query, args, err := buildDeleteRootQuery(root)
	if err != nil {
		return fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	if _, err = ex.ExecContext(ctx, query, args...); err != nil {
		return fmt.Errorf("%w: %w", ErrExecutingStatement, err)
	}
	return nil
}

func (s *SQLiteStore) inTx(ctx context.Context, fn func(tx *sql.Tx) error) error {
	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("%w: %w", ErrBeginningTransaction, err)
	}

	if err := fn(tx); err != nil {
		_ = tx.Rollback()
		return err
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("%w: %w", ErrCommitingTransaction, err)
	}
	return nil
}

func decodeDocument(body string) (map[string]any, error) {
	var doc map[string]any
	if err := json.Unmarshal([]byte(body), &doc); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrDecodingDocument, err)
	}
	if doc == nil {
		return nil, fmt.Errorf("%w: not an object", ErrDecodingDocument)
	}
	return doc, nil
}
