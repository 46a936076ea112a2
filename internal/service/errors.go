package service

import (
	"errors"
	"fmt"
)

var (
	// ErrBatchCommit marks a failed remote batch commit.
	ErrBatchCommit = errors.New("batch commit failed")

	// ErrFetch marks a failed paginated fetch.
	ErrFetch = errors.New("fetch failed")

	// ErrSubscription marks a failed remote change subscription.
	ErrSubscription = errors.New("change subscription failed")

	// ErrSessionClosed is returned by operations on a closed sync session.
	ErrSessionClosed = errors.New("sync session closed")
)

// SyncError describes a network-layer failure of a sync session. Both the
// failure kind (one of ErrBatchCommit, ErrFetch, ErrSubscription) and the
// remote cause are reachable through errors.Is.
type SyncError struct {
	Op        string
	Kind      error
	Err       error
	Retryable bool
}

func newSyncError(op string, kind, err error) *SyncError {
	return &SyncError{Op: op, Kind: kind, Err: err, Retryable: isRetryable(err)}
}

func (e *SyncError) Error() string {
	return fmt.Sprintf("%s: %v: %v", e.Op, e.Kind, e.Err)
}

func (e *SyncError) Unwrap() []error {
	return []error{e.Kind, e.Err}
}
