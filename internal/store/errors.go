package store

import "errors"

// Sentinel errors returned by the local stores. Callers should use
// [errors.Is] to match against these values.
var (
	// ErrPathNotFound is returned by Get when nothing is stored at the path.
	ErrPathNotFound = errors.New("path not found")

	// ErrInvalidPath is returned when a path has no segments.
	ErrInvalidPath = errors.New("invalid store path")

	// ErrNotContainer is returned when a path walks through, or merges into,
	// a value that is not a map.
	ErrNotContainer = errors.New("value at path is not a container")

	// ErrUnknownStorageKind is returned by [NewClientStorages] for a storage
	// kind it cannot build.
	ErrUnknownStorageKind = errors.New("unknown storage kind")
)

// Low-level database operation errors of the SQLite store.
var (
	// ErrBuildingSQLQuery is returned when constructing a parameterised SQL
	// query fails.
	ErrBuildingSQLQuery = errors.New("error building sql query")

	// ErrExecutingQuery is returned when executing a SELECT fails.
	ErrExecutingQuery = errors.New("error executing sql query")

	// ErrBeginningTransaction is returned when the database driver cannot
	// start a new transaction.
	ErrBeginningTransaction = errors.New("failed to begin transaction")

	// ErrCommitingTransaction is returned when committing an open transaction
	// fails. The transaction is considered rolled back at this point.
	ErrCommitingTransaction = errors.New("failed to commit transaction")

	// ErrExecutingStatement is returned when executing a DML statement
	// (INSERT, DELETE) fails.
	ErrExecutingStatement = errors.New("failed to executing statement")

	// ErrScanningRow is returned when scanning a document row fails.
	ErrScanningRow = errors.New("failed to scan document row")

	// ErrDecodingDocument is returned when a stored document body is not
	// valid JSON or does not hold an object.
	ErrDecodingDocument = errors.New("failed to decode document body")
)
