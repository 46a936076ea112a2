package workers

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/MKhiriev/go-doc-sync/internal/adapter"
	"github.com/MKhiriev/go-doc-sync/internal/config"
	"github.com/MKhiriev/go-doc-sync/internal/logger"
	"github.com/MKhiriev/go-doc-sync/internal/mock/servicemock"
	"github.com/MKhiriev/go-doc-sync/internal/service"
	"github.com/MKhiriev/go-doc-sync/internal/store"
	"github.com/MKhiriev/go-doc-sync/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func hasDeadline(ctx any) bool {
	c, ok := ctx.(context.Context)
	if !ok {
		return false
	}
	_, ok = c.Deadline()
	return ok
}

// ── ChannelWorker ──

func TestChannelWorker(t *testing.T) {
	ctrl := gomock.NewController(t)
	job := servicemock.NewMockClientSyncJob(ctrl)

	gomock.InOrder(
		job.EXPECT().Start(gomock.Any(), 3*time.Second),
		job.EXPECT().Stop(),
	)

	w := NewChannelWorker(job, 3*time.Second)
	w.Start(context.Background())
	w.Stop()
}

// ── FlushWorker ──

func TestFlushWorker_NothingPending(t *testing.T) {
	ctrl := gomock.NewController(t)
	sess := servicemock.NewMockClientSyncService(ctrl)

	// Flush не вызывается, если стек пуст
	sess.EXPECT().Pending().Return(service.StackSize{})

	w := NewFlushWorker(sess, 0, nil)
	w.Start(context.Background())
	w.Stop()

	assert.Equal(t, DefaultFlushTimeout, w.timeout)
}

func TestFlushWorker_FlushesPending(t *testing.T) {
	ctrl := gomock.NewController(t)
	sess := servicemock.NewMockClientSyncService(ctrl)

	sess.EXPECT().Pending().Return(service.StackSize{Inserts: 2}).AnyTimes()
	sess.EXPECT().Flush(gomock.Cond(hasDeadline)).Return(nil)

	w := NewFlushWorker(sess, time.Second, logger.Nop())
	w.Stop()
}

func TestFlushWorker_FlushError(t *testing.T) {
	ctrl := gomock.NewController(t)
	sess := servicemock.NewMockClientSyncService(ctrl)

	sess.EXPECT().Pending().Return(service.StackSize{Updates: 1}).AnyTimes()
	sess.EXPECT().Flush(gomock.Any()).Return(errors.New("offline"))

	w := NewFlushWorker(sess, time.Second, logger.Nop())
	assert.NotPanics(t, w.Stop)
}

// ── Workers ──

func TestWorkers_FlushOnShutdown(t *testing.T) {
	remote := adapter.NewMemoryRemoteStore(config.DefaultMaxBatchOps)
	cfg := config.EntityConfig{CollectionPath: "items", DebounceDelay: time.Hour}
	services := service.NewClientServices(store.NewMemoryStore(), remote.Client("c1"), cfg, service.SessionOptions{})
	defer services.SyncService.Close()

	ws := NewWorkers(
		NewChannelWorker(services.SyncJob, 10*time.Millisecond),
		NewFlushWorker(services.SyncService, time.Second, nil),
	)
	ws.Start(context.Background())

	ctx := context.Background()
	require.NoError(t, services.SyncService.Insert(ctx, service.InsertRequest{Item: models.Item{"title": "n"}}))
	ws.Stop()

	assert.Equal(t, 1, remote.Len("items"))
	assert.Equal(t, 0, services.SyncService.Pending().Total())
}
