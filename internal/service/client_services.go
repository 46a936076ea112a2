package service

import (
	"github.com/MKhiriev/go-doc-sync/internal/adapter"
	"github.com/MKhiriev/go-doc-sync/internal/config"
	"github.com/MKhiriev/go-doc-sync/internal/store"
)

// ClientServices bundles a sync session with the job that keeps its change
// channel open.
type ClientServices struct {
	SyncService ClientSyncService
	SyncJob     ClientSyncJob
}

func NewClientServices(local store.LocalStore, remote adapter.RemoteStore, cfg config.EntityConfig, opts SessionOptions) *ClientServices {
	syncSvc := NewClientSyncService(local, remote, cfg, opts)

	return &ClientServices{
		SyncService: syncSvc,
		SyncJob:     NewClientSyncJob(syncSvc, opts.Logger),
	}
}
