// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"testing"
	"time"

	"github.com/MKhiriev/go-doc-sync/internal/adapter"
	"github.com/MKhiriev/go-doc-sync/internal/config"
	"github.com/MKhiriev/go-doc-sync/internal/mock"
	"github.com/MKhiriev/go-doc-sync/internal/store"
	"github.com/MKhiriev/go-doc-sync/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

const testCollection = "userItems/user-1/items"

// stubAuth: простая реализация Auth без JWT.
type stubAuth struct {
	signedIn bool
	userID   string
}

func (a stubAuth) IsSignedIn() bool      { return a.signedIn }
func (a stubAuth) CurrentUserID() string { return a.userID }

// commitRecorder записывает размер каждого батча и умеет ронять коммиты.
type commitRecorder struct {
	mu    sync.Mutex
	sizes []int
	fail  error
}

func (r *commitRecorder) hook(ops []models.BatchOp) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.fail != nil {
		return r.fail
	}
	r.sizes = append(r.sizes, len(ops))
	return nil
}

func (r *commitRecorder) setFail(err error) {
	r.mu.Lock()
	r.fail = err
	r.mu.Unlock()
}

func (r *commitRecorder) commits() []int {
	r.mu.Lock()
	defer r.mu.Unlock()
	return append([]int(nil), r.sizes...)
}

func testEntityConfig() config.EntityConfig {
	return config.EntityConfig{
		StorePath:         "nodes",
		CollectionPath:    testCollection,
		PageSize:          2,
		MaxBatchOps:       config.DefaultMaxBatchOps,
		DebounceDelay:     time.Hour,
		StatusSettleDelay: 10 * time.Millisecond,
	}
}

// newTestSession: хелпер для создания clientSyncService поверх заданных хранилищ
func newTestSession(t *testing.T, local store.LocalStore, remote adapter.RemoteStore, cfg config.EntityConfig, opts SessionOptions) *clientSyncService {
	t.Helper()
	if opts.Auth == nil {
		opts.Auth = stubAuth{signedIn: true, userID: "user-1"}
	}

	svc := NewClientSyncService(local, remote, cfg, opts).(*clientSyncService)
	t.Cleanup(svc.Close)
	return svc
}

// newMemorySession собирает сессию поверх in-memory хранилищ
func newMemorySession(t *testing.T, cfg config.EntityConfig, opts SessionOptions) (*clientSyncService, *store.MemoryStore, *adapter.MemoryRemoteStore, *commitRecorder) {
	t.Helper()
	rec := &commitRecorder{}
	remote := adapter.NewMemoryRemoteStore(config.DefaultMaxBatchOps, adapter.WithCommitHook(rec.hook))
	local := store.NewMemoryStore()

	svc := newTestSession(t, local, remote.Client("client-1"), cfg, opts)
	return svc, local, remote, rec
}

func makeItems(n int) []models.Item {
	items := make([]models.Item, n)
	for i := range items {
		items[i] = models.Item{"title": fmt.Sprintf("item-%d", i)}
	}
	return items
}

// ── BatchSync ────────────────────────────────────────────────────────────────

func TestClientSyncService_BatchSync_SplitsAtMaxBatchOps(t *testing.T) {
	svc, _, remote, rec := newMemorySession(t, testEntityConfig(), SessionOptions{})
	ctx := context.Background()

	require.NoError(t, svc.Insert(ctx, InsertRequest{Items: makeItems(600)}))
	assert.Equal(t, StackSize{Inserts: 600}, svc.Pending())

	require.NoError(t, svc.BatchSync(ctx))

	assert.Equal(t, []int{500, 100}, rec.commits())
	assert.Equal(t, 600, remote.Len(testCollection))
	assert.Equal(t, 0, svc.Pending().Total())
}

func TestClientSyncService_BatchSync_EmptyStack(t *testing.T) {
	svc, _, remote, _ := newMemorySession(t, testEntityConfig(), SessionOptions{})

	require.NoError(t, svc.BatchSync(context.Background()))
	assert.Equal(t, 0, remote.Commits())
	assert.Equal(t, models.StatusIdle, svc.Status())
}

func TestClientSyncService_BatchSync_MixedQueuesFillOneBatch(t *testing.T) {
	svc, local, remote, rec := newMemorySession(t, testEntityConfig(), SessionOptions{})
	ctx := context.Background()

	remote.Put(testCollection, "a", models.Item{"title": "a"})
	remote.Put(testCollection, "b", models.Item{"title": "b"})
	require.NoError(t, local.Set(ctx, "nodes", map[string]any{
		"a": map[string]any{"id": "a", "title": "a2"},
	}))

	require.NoError(t, svc.Patch(ctx, PatchRequest{ID: "a", Field: "title"}))
	require.NoError(t, svc.Delete(ctx, DeleteRequest{ID: "b"}))
	require.NoError(t, svc.Insert(ctx, InsertRequest{Item: models.Item{"title": "c"}}))

	require.NoError(t, svc.BatchSync(ctx))

	assert.Equal(t, []int{3}, rec.commits())
	doc, ok := remote.Document(testCollection, "a")
	require.True(t, ok)
	assert.Equal(t, "a2", doc["title"])
	assert.IsType(t, time.Time{}, doc[models.FieldUpdatedAt])
	_, ok = remote.Document(testCollection, "b")
	assert.False(t, ok)
	assert.Equal(t, 2, remote.Len(testCollection))
}

func TestClientSyncService_BatchSync_FailureRequeues(t *testing.T) {
	svc, _, remote, rec := newMemorySession(t, testEntityConfig(), SessionOptions{})
	ctx := context.Background()

	require.NoError(t, svc.Insert(ctx, InsertRequest{Items: makeItems(3)}))
	rec.setFail(adapter.ErrInternalServerError)

	err := svc.BatchSync(ctx)
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrBatchCommit)
	assert.ErrorIs(t, err, adapter.ErrInternalServerError)

	var syncErr *SyncError
	require.ErrorAs(t, err, &syncErr)
	assert.True(t, syncErr.Retryable)
	assert.Equal(t, "batch sync", syncErr.Op)

	// ничего не потеряно, статус: ошибка
	assert.Equal(t, StackSize{Inserts: 3}, svc.Pending())
	assert.Equal(t, models.StatusError, svc.Status())
	assert.Equal(t, 0, remote.Len(testCollection))

	rec.setFail(nil)
	require.NoError(t, svc.BatchSync(ctx))
	assert.Equal(t, 3, remote.Len(testCollection))
}

func TestClientSyncService_BatchSync_StopsAtFirstFailure(t *testing.T) {
	svc, _, remote, rec := newMemorySession(t, testEntityConfig(), SessionOptions{})
	ctx := context.Background()

	require.NoError(t, svc.Insert(ctx, InsertRequest{Items: makeItems(600)}))

	calls := 0
	failing := adapter.NewMemoryRemoteStore(0, adapter.WithCommitHook(func(ops []models.BatchOp) error {
		calls++
		if calls == 2 {
			return adapter.ErrBadRequest
		}
		return rec.hook(ops)
	}))
	svc.remote = failing.Client("client-1")

	err := svc.BatchSync(ctx)
	require.ErrorIs(t, err, adapter.ErrBadRequest)

	var syncErr *SyncError
	require.ErrorAs(t, err, &syncErr)
	assert.False(t, syncErr.Retryable)

	assert.Equal(t, 2, calls)
	assert.Equal(t, 500, failing.Len(testCollection))
	assert.Equal(t, StackSize{Inserts: 100}, svc.Pending())
	assert.Equal(t, 0, remote.Commits())
}

func TestClientSyncService_BatchSync_UpdatePayload(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	ctx := context.Background()
	mockRemote := mock.NewMockRemoteStore(ctrl)
	mockBatch := mock.NewMockBatch(ctrl)
	local := store.NewMemoryStore()
	require.NoError(t, local.Set(ctx, "nodes/a", map[string]any{"id": "a", "title": "x", "depth": 1}))

	svc := newTestSession(t, local, mockRemote, testEntityConfig(), SessionOptions{})
	require.NoError(t, svc.Patch(ctx, PatchRequest{ID: "a", Field: "title"}))

	ref := models.DocRef{Collection: testCollection, ID: "a"}
	mockRemote.EXPECT().NewBatch().Return(mockBatch)
	mockRemote.EXPECT().Doc(testCollection, "a").Return(ref)
	mockBatch.EXPECT().Update(ref, models.Item{"title": "x", models.FieldUpdatedAt: models.ServerTimestamp})
	mockBatch.EXPECT().Commit(gomock.Any()).Return(nil)

	require.NoError(t, svc.BatchSync(ctx))
}

func TestClientSyncService_BatchSync_InsertAllocatesID(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	ctx := context.Background()
	mockRemote := mock.NewMockRemoteStore(ctrl)
	mockBatch := mock.NewMockBatch(ctrl)

	svc := newTestSession(t, store.NewMemoryStore(), mockRemote, testEntityConfig(), SessionOptions{})
	require.NoError(t, svc.Insert(ctx, InsertRequest{Item: models.Item{"title": "n"}}))

	ref := models.DocRef{Collection: testCollection, ID: "generated"}
	mockRemote.EXPECT().NewBatch().Return(mockBatch)
	mockRemote.EXPECT().Doc(testCollection, "").Return(ref)
	want := models.Item{"title": "n", models.FieldCreatedAt: models.ServerTimestamp, models.FieldCreatedBy: "user-1"}
	mockBatch.EXPECT().Set(ref, want)
	mockBatch.EXPECT().Commit(gomock.Any()).Return(adapter.ErrConflict)

	err := svc.BatchSync(ctx)
	require.ErrorIs(t, err, adapter.ErrConflict)
	assert.Equal(t, StackSize{Inserts: 1}, svc.Pending())
}

// ── Status ───────────────────────────────────────────────────────────────────

func TestClientSyncService_Status_PatchingThenIdle(t *testing.T) {
	var mu sync.Mutex
	var seen []models.SyncStatus
	onStatus := func(st models.SyncStatus) {
		mu.Lock()
		seen = append(seen, st)
		mu.Unlock()
	}

	svc, _, _, _ := newMemorySession(t, testEntityConfig(), SessionOptions{OnStatus: onStatus})
	ctx := context.Background()

	require.NoError(t, svc.Insert(ctx, InsertRequest{Item: models.Item{"title": "n"}}))
	require.NoError(t, svc.BatchSync(ctx))

	require.Eventually(t, func() bool {
		return svc.Status() == models.StatusIdle
	}, time.Second, 5*time.Millisecond)

	mu.Lock()
	defer mu.Unlock()
	assert.Equal(t, []models.SyncStatus{models.StatusPatching, models.StatusIdle}, seen)
}

// ── Debounce ─────────────────────────────────────────────────────────────────

func TestClientSyncService_Debounce_CoalescesWrites(t *testing.T) {
	cfg := testEntityConfig()
	cfg.DebounceDelay = 30 * time.Millisecond
	svc, _, remote, rec := newMemorySession(t, cfg, SessionOptions{})
	ctx := context.Background()

	for i := range 3 {
		require.NoError(t, svc.Insert(ctx, InsertRequest{Item: models.Item{"n": i}}))
	}

	require.Eventually(t, func() bool {
		return remote.Len(testCollection) == 3
	}, time.Second, 5*time.Millisecond)

	// три вставки: один батч
	assert.Equal(t, []int{3}, rec.commits())
	assert.Equal(t, 0, svc.Pending().Total())
}

func TestClientSyncService_Debounce_ReportsFailure(t *testing.T) {
	errs := make(chan error, 1)
	cfg := testEntityConfig()
	cfg.DebounceDelay = 10 * time.Millisecond
	svc, _, _, rec := newMemorySession(t, cfg, SessionOptions{OnError: func(err error) { errs <- err }})
	rec.setFail(adapter.ErrBadGateway)

	require.NoError(t, svc.Insert(context.Background(), InsertRequest{Item: models.Item{"n": 1}}))

	select {
	case err := <-errs:
		assert.ErrorIs(t, err, ErrBatchCommit)
		assert.ErrorIs(t, err, adapter.ErrBadGateway)
	case <-time.After(time.Second):
		t.Fatal("debounced failure was not reported")
	}
	assert.Equal(t, StackSize{Inserts: 1}, svc.Pending())
}

func TestClientSyncService_HandleSyncStackDebounce_SignedOut(t *testing.T) {
	svc, _, remote, _ := newMemorySession(t, testEntityConfig(), SessionOptions{Auth: stubAuth{}})

	assert.False(t, svc.HandleSyncStackDebounce())

	require.NoError(t, svc.Insert(context.Background(), InsertRequest{Item: models.Item{"n": 1}}))
	svc.mu.Lock()
	assert.Nil(t, svc.stack.debounce)
	svc.mu.Unlock()

	// записи копятся, но не уходят
	assert.Equal(t, StackSize{Inserts: 1}, svc.Pending())
	assert.Equal(t, 0, remote.Commits())
}

func TestClientSyncService_HandleSyncStackDebounce_RefreshesRunningHandle(t *testing.T) {
	svc, _, _, _ := newMemorySession(t, testEntityConfig(), SessionOptions{})

	require.True(t, svc.HandleSyncStackDebounce())
	svc.mu.Lock()
	first := svc.stack.debounce
	svc.mu.Unlock()

	require.True(t, svc.HandleSyncStackDebounce())
	svc.mu.Lock()
	second := svc.stack.debounce
	svc.mu.Unlock()

	assert.Same(t, first, second)
}

// ── Delete ───────────────────────────────────────────────────────────────────

func TestClientSyncService_Delete_TempIDRejected(t *testing.T) {
	svc, _, _, _ := newMemorySession(t, testEntityConfig(), SessionOptions{})

	require.NoError(t, svc.Delete(context.Background(), DeleteRequest{ID: "tempItem-1"}))

	assert.Equal(t, 0, svc.Pending().Total())
	svc.mu.Lock()
	assert.Nil(t, svc.stack.debounce)
	svc.mu.Unlock()
}

func TestClientSyncService_Delete_CombinesSingularAndList(t *testing.T) {
	svc, _, _, _ := newMemorySession(t, testEntityConfig(), SessionOptions{})
	ids := []string{"a", "b"}

	require.NoError(t, svc.Delete(context.Background(), DeleteRequest{ID: "c", IDs: ids}))

	assert.Equal(t, StackSize{Deletions: 3}, svc.Pending())
	assert.Equal(t, []string{"a", "b"}, ids)
}

// ── Flush / Reset / Close ────────────────────────────────────────────────────

func TestClientSyncService_Flush_DrainsImmediately(t *testing.T) {
	svc, _, remote, _ := newMemorySession(t, testEntityConfig(), SessionOptions{})
	ctx := context.Background()

	require.NoError(t, svc.Insert(ctx, InsertRequest{Items: makeItems(2)}))
	require.NoError(t, svc.Flush(ctx))

	assert.Equal(t, 2, remote.Len(testCollection))
	svc.mu.Lock()
	assert.Nil(t, svc.stack.debounce)
	svc.mu.Unlock()
}

func TestClientSyncService_ResetSyncStack(t *testing.T) {
	svc, _, remote, _ := newMemorySession(t, testEntityConfig(), SessionOptions{})
	ctx := context.Background()

	require.NoError(t, svc.Insert(ctx, InsertRequest{Items: makeItems(2)}))
	require.NoError(t, svc.Delete(ctx, DeleteRequest{ID: "a"}))
	svc.ResetSyncStack()

	assert.Equal(t, 0, svc.Pending().Total())
	require.NoError(t, svc.BatchSync(ctx))
	assert.Equal(t, 0, remote.Commits())
}

func TestClientSyncService_Close(t *testing.T) {
	cfg := testEntityConfig()
	cfg.DebounceDelay = 20 * time.Millisecond
	svc, _, remote, _ := newMemorySession(t, cfg, SessionOptions{})
	ctx := context.Background()

	require.NoError(t, svc.Insert(ctx, InsertRequest{Item: models.Item{"n": 1}}))
	svc.Close()
	svc.Close()

	assert.ErrorIs(t, svc.Insert(ctx, InsertRequest{Item: models.Item{"n": 2}}), ErrSessionClosed)
	assert.ErrorIs(t, svc.Patch(ctx, PatchRequest{ID: "a"}), ErrSessionClosed)
	assert.ErrorIs(t, svc.Delete(ctx, DeleteRequest{ID: "a"}), ErrSessionClosed)
	assert.False(t, svc.HandleSyncStackDebounce())

	time.Sleep(60 * time.Millisecond)
	assert.Equal(t, 0, remote.Commits())
}

func TestNewClientSyncService_Defaults(t *testing.T) {
	svc := NewClientSyncService(store.NewMemoryStore(), adapter.NewMemoryRemoteStore(0).Client("c"), config.EntityConfig{}, SessionOptions{}).(*clientSyncService)
	defer svc.Close()

	assert.Equal(t, config.DefaultMaxBatchOps, svc.cfg.MaxBatchOps)
	assert.Equal(t, config.DefaultPageSize, svc.cfg.PageSize)
	assert.Equal(t, config.DefaultStorePath, svc.cfg.StorePath)
	assert.Equal(t, config.DefaultDebounce, svc.cfg.DebounceDelay)
	assert.Equal(t, config.DefaultStatusSettle, svc.cfg.StatusSettleDelay)
	assert.True(t, svc.auth.IsSignedIn())
	assert.NotNil(t, svc.reconciler)
	assert.NotNil(t, svc.guards.CheckDelete)
}

// Отрицательные задержки не подменяются значениями по умолчанию.
func TestNewClientSyncService_NegativeDelaysKept(t *testing.T) {
	cfg := config.EntityConfig{DebounceDelay: -1, StatusSettleDelay: -1}
	svc := NewClientSyncService(store.NewMemoryStore(), adapter.NewMemoryRemoteStore(0).Client("c"), cfg, SessionOptions{}).(*clientSyncService)
	defer svc.Close()

	assert.Equal(t, time.Duration(-1), svc.cfg.DebounceDelay)
	assert.Equal(t, time.Duration(-1), svc.cfg.StatusSettleDelay)
}

// Нулевой EntityConfig получает задержку по умолчанию, поэтому частые
// вставки не уходят отдельными коммитами.
func TestClientSyncService_ZeroConfigCoalescesWrites(t *testing.T) {
	remote := adapter.NewMemoryRemoteStore(0)
	svc := NewClientSyncService(store.NewMemoryStore(), remote.Client("c"), config.EntityConfig{CollectionPath: testCollection}, SessionOptions{}).(*clientSyncService)
	defer svc.Close()
	ctx := context.Background()

	for _, item := range makeItems(5) {
		require.NoError(t, svc.Insert(ctx, InsertRequest{Item: item}))
		time.Sleep(5 * time.Millisecond)
	}

	assert.Equal(t, 0, remote.Commits())
	assert.Equal(t, StackSize{Inserts: 5}, svc.Pending())
}

func TestClientSyncService_Insert_StoreErrorPropagates(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	local := mock.NewMockLocalStore(ctrl)
	guards := Guards{CheckInsert: func(models.Item, models.Item) bool { return true }}
	svc := newTestSession(t, local, mock.NewMockRemoteStore(ctrl), testEntityConfig(), SessionOptions{Guards: &guards})

	boom := errors.New("disk failure")
	local.EXPECT().Get(gomock.Any(), "nodes").Return(nil, boom)

	err := svc.Insert(context.Background(), InsertRequest{Item: models.Item{"n": 1}})
	require.ErrorIs(t, err, boom)
	assert.Equal(t, 0, svc.Pending().Total())
}
