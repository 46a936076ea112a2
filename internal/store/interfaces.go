package store

import "context"

//go:generate mockgen -source=interfaces.go -destination=../mock/local_store_mock.go -package=mock

// LocalStore is the application state container the sync layer reads from
// and reconciles into. Values are addressed by a slash- or dot-delimited
// path relative to the root of the store, e.g. "nodes/abc" or "nodes.abc.title".
//
// Values are JSON-like: nil, bool, numbers, string, []any and map[string]any.
type LocalStore interface {
	// Get returns a copy of the value at path, or [ErrPathNotFound].
	Get(ctx context.Context, path string) (any, error)

	// Set replaces the value at path, creating intermediate containers.
	Set(ctx context.Context, path string, value any) error

	// Merge writes every key of partial into the container at path, leaving
	// other keys of the container untouched. A missing container is created.
	Merge(ctx context.Context, path string, partial map[string]any) error

	// Delete removes the value at path. Deleting a missing path is not an error.
	Delete(ctx context.Context, path string) error
}
