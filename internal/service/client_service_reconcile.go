package service

import (
	"context"
	"fmt"

	"github.com/MKhiriev/go-doc-sync/internal/store"
	"github.com/MKhiriev/go-doc-sync/models"
)

type storeReconciler struct {
	local     store.LocalStore
	storePath string
}

// NewStoreReconciler returns a [Reconciler] that keeps the records under
// storePath in step with the remote collection, one record per document id.
func NewStoreReconciler(local store.LocalStore, storePath string) Reconciler {
	return &storeReconciler{local: local, storePath: storePath}
}

// NewItemFromServer replaces the temporary record of a newly created
// document with the record under its remote id.
func (r *storeReconciler) NewItemFromServer(ctx context.Context, item models.Item, tempID string) error {
	id := item.ID()
	if tempID != "" && tempID != id {
		if err := r.local.Delete(ctx, store.JoinPath(r.storePath, tempID)); err != nil {
			return fmt.Errorf("remove temporary record %s: %w", tempID, err)
		}
	}

	if err := r.local.Set(ctx, store.JoinPath(r.storePath, id), map[string]any(item)); err != nil {
		return fmt.Errorf("store new record %s: %w", id, err)
	}
	return nil
}

func (r *storeReconciler) ModifiedItemFromServer(ctx context.Context, item models.Item) error {
	id := item.ID()
	if err := r.local.Set(ctx, store.JoinPath(r.storePath, id), map[string]any(item)); err != nil {
		return fmt.Errorf("store modified record %s: %w", id, err)
	}
	return nil
}

func (r *storeReconciler) DeletedItemFromServer(ctx context.Context, item models.Item) error {
	id := item.ID()
	if err := r.local.Delete(ctx, store.JoinPath(r.storePath, id)); err != nil {
		return fmt.Errorf("remove deleted record %s: %w", id, err)
	}
	return nil
}
