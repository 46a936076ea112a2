// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package adapter provides client bindings to the remote document store.
//
// The primary abstraction is [RemoteStore], which decouples the sync service
// from the underlying protocol. The package ships an HTTP/REST binding
// ([NewHTTPRemoteStore]) and an in-process store ([NewMemoryRemoteStore])
// that honours the same contract: atomic batches capped at a maximum number
// of operations, collection queries with filter/order/limit/startAfter, and
// change subscriptions.
//
// Error values defined in errors.go are mapped from HTTP status codes by
// mapHTTPError so that callers can use [errors.Is] for transport-agnostic error
// handling (e.g. [ErrBatchTooLarge] for 413, [ErrUnauthorized] for 401).
package adapter

import (
	"context"

	"github.com/MKhiriev/go-doc-sync/models"
)

//go:generate mockgen -source=interfaces.go -destination=../mock/remote_store_mock.go -package=mock

// RemoteStore defines the operations the sync service needs from the remote
// document database. Implementations are responsible for serialisation,
// authentication and mapping transport-level errors to the sentinel values
// defined in this package.
type RemoteStore interface {
	// Doc returns a reference to document id of collection. An empty id
	// allocates a new unique id.
	Doc(collection, id string) models.DocRef

	// NewBatch starts an empty atomic write batch.
	NewBatch() Batch

	// Get executes a one-shot query and returns the matching page.
	Get(ctx context.Context, q models.Query) (models.Page, error)

	// OnSnapshot subscribes to the documents matching q. The first snapshot
	// carries every matching document as an added change; later snapshots
	// carry the changes since the previous one. onChange and onError are
	// called from a single goroutine. After onError the subscription is
	// over. The returned error reports a subscription that could not be
	// established at all.
	OnSnapshot(ctx context.Context, q models.Query, onChange func(models.Snapshot), onError func(error)) (Unsubscribe, error)
}

// Batch accumulates writes that are committed all-or-nothing.
type Batch interface {
	// Update merges fields into an existing document.
	Update(ref models.DocRef, fields models.Item)

	// Delete removes a document.
	Delete(ref models.DocRef)

	// Set writes a whole document, replacing any previous content.
	Set(ref models.DocRef, doc models.Item)

	// Len returns the number of operations added so far.
	Len() int

	// Commit applies every operation atomically. A batch can be committed
	// once.
	Commit(ctx context.Context) error
}

// Unsubscribe ends a subscription started by [RemoteStore.OnSnapshot].
// It is safe to call more than once.
type Unsubscribe func()
