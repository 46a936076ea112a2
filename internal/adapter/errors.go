package adapter

import "errors"

// Errors mapped from HTTP status codes.
var (
	ErrBadRequest          = errors.New("bad request")
	ErrUnauthorized        = errors.New("client unauthorized")
	ErrForbidden           = errors.New("forbidden")
	ErrNotFound            = errors.New("not found")
	ErrConflict            = errors.New("conflict")
	ErrBadGateway          = errors.New("bad gateway")
	ErrInternalServerError = errors.New("internal server error")
	ErrUnavailable         = errors.New("service unavailable")
)

var (
	// ErrBatchTooLarge is returned when a batch holds more operations than
	// the store accepts in one commit.
	ErrBatchTooLarge = errors.New("batch exceeds maximum operation count")

	// ErrBatchCommitted is returned when Commit is called on a batch that was
	// already committed.
	ErrBatchCommitted = errors.New("batch already committed")

	// ErrInvalidQuery is returned for queries the store cannot execute, e.g.
	// without a collection or with a cursor that does not fit the orders.
	ErrInvalidQuery = errors.New("invalid query")

	// ErrInvalidCursorToken is returned when a continuation token cannot be
	// decoded.
	ErrInvalidCursorToken = errors.New("invalid cursor token")
)
