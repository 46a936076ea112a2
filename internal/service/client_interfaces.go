package service

import (
	"context"
	"time"

	"github.com/MKhiriev/go-doc-sync/models"
)

//go:generate mockgen -source=client_interfaces.go -destination=../mock/servicemock/client_service_mock.go -package=servicemock

// ClientSyncService is a sync session for one entity type: it buffers local
// writes, flushes them to the remote collection in bounded atomic batches,
// pages remote records in and reconciles remote changes into the local
// store.
type ClientSyncService interface {
	// Insert prepares items and queues them for creation with newly
	// allocated remote ids.
	Insert(ctx context.Context, req InsertRequest) error

	// Patch prepares the given ids from the current local records and queues
	// partial updates. Repeated patches of one id are merged field-wise.
	Patch(ctx context.Context, req PatchRequest) error

	// Delete queues remote deletions of the given ids.
	Delete(ctx context.Context, req DeleteRequest) error

	// HandleSyncStackDebounce starts the debounce countdown that triggers
	// BatchSync, or refreshes the running one. It returns false and does
	// nothing when the user is not signed in.
	HandleSyncStackDebounce() bool

	// BatchSync drains the queued writes in batches of at most the
	// configured maximum number of operations. It returns after the stack is
	// empty or the first commit fails.
	BatchSync(ctx context.Context) error

	// Flush cancels a pending debounce and drains synchronously.
	Flush(ctx context.Context) error

	// ResetSyncStack discards every queued write.
	ResetSyncStack()

	// Pending returns the number of queued writes per queue.
	Pending() StackSize

	// Fetch retrieves the next page of remote records.
	Fetch(ctx context.Context, req FetchRequest) (models.FetchResult, error)

	// ResetFetch forgets the pagination state so the next Fetch starts over.
	ResetFetch()

	// OpenChannel subscribes to remote changes and returns once the first
	// snapshot has been reconciled.
	OpenChannel(ctx context.Context) error

	// WaitChannel blocks until the open change channel ends and returns the
	// error that ended it. It returns nil at once when no channel is open.
	WaitChannel(ctx context.Context) error

	// Status reports whether a batch commit is in flight.
	Status() models.SyncStatus

	// Close stops timers and the change channel. Later writes fail with
	// ErrSessionClosed.
	Close()
}

// ClientSyncJob keeps the change channel of a session open in the
// background.
type ClientSyncJob interface {
	// Start launches the background goroutine. A channel that fails is
	// reopened after retryInterval, defaulting to 5 seconds if zero or
	// negative. Any previously running job is stopped first.
	Start(ctx context.Context, retryInterval time.Duration)

	// Stop signals the background goroutine to exit and blocks until it has
	// fully terminated.
	Stop()
}

// Auth exposes the sign-in state of the current user.
type Auth interface {
	IsSignedIn() bool
	CurrentUserID() string
}

// Sanitizer removes the fields a user may not write.
type Sanitizer interface {
	// StripNonFillable returns item without the fields missing from
	// allowlist. An empty allowlist keeps every field.
	StripNonFillable(item models.Item, allowlist []string) models.Item
}

// Reconciler applies remote changes to local state.
type Reconciler interface {
	// NewItemFromServer handles a document added remotely. tempID is the id
	// the record carried locally before it was created remotely.
	NewItemFromServer(ctx context.Context, item models.Item, tempID string) error

	// ModifiedItemFromServer handles a document changed by another writer.
	ModifiedItemFromServer(ctx context.Context, item models.Item) error

	// DeletedItemFromServer handles a document removed by another writer.
	DeletedItemFromServer(ctx context.Context, item models.Item) error
}
