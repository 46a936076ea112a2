package adapter

import (
	"context"
	"errors"
	"fmt"
	"testing"
	"time"

	"github.com/MKhiriev/go-doc-sync/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var fixedNow = time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)

func newMemory(maxOps int, opts ...MemoryOption) *MemoryRemoteStore {
	return NewMemoryRemoteStore(maxOps, append([]MemoryOption{WithClock(func() time.Time { return fixedNow })}, opts...)...)
}

type snapshotRecorder struct {
	snaps chan models.Snapshot
	errs  chan error
}

func newRecorder() *snapshotRecorder {
	return &snapshotRecorder{snaps: make(chan models.Snapshot, 16), errs: make(chan error, 1)}
}

func (r *snapshotRecorder) onChange(s models.Snapshot) { r.snaps <- s }
func (r *snapshotRecorder) onError(err error)          { r.errs <- err }

func (r *snapshotRecorder) next(t *testing.T) models.Snapshot {
	t.Helper()
	select {
	case s := <-r.snaps:
		return s
	case <-time.After(2 * time.Second):
		t.Fatal("timed out waiting for snapshot")
		return models.Snapshot{}
	}
}

// ── Commit ──────────────────────────────────────────────────────────────────

func TestMemoryCommit_AppliesOps(t *testing.T) {
	s := newMemory(500)
	s.Put("items", "a", models.Item{"title": "old", "depth": 1})
	s.Put("items", "b", models.Item{"title": "gone"})
	c := s.Client("c1")

	b := c.NewBatch()
	b.Update(c.Doc("items", "a"), models.Item{"title": "new", "updated_at": models.ServerTimestamp})
	b.Delete(c.Doc("items", "b"))
	b.Set(c.Doc("items", "c"), models.Item{"title": "fresh"})
	require.NoError(t, b.Commit(context.Background()))

	a, ok := s.Document("items", "a")
	require.True(t, ok)
	assert.Equal(t, "new", a["title"])
	assert.Equal(t, 1, a["depth"])
	assert.Equal(t, fixedNow, a["updated_at"])

	_, ok = s.Document("items", "b")
	assert.False(t, ok)

	cdoc, ok := s.Document("items", "c")
	require.True(t, ok)
	assert.Equal(t, "fresh", cdoc["title"])
	assert.Equal(t, 1, s.Commits())
}

func TestMemoryCommit_TooLarge(t *testing.T) {
	s := newMemory(2)
	c := s.Client("c1")

	b := c.NewBatch()
	for i := range 3 {
		b.Set(c.Doc("items", fmt.Sprint(i)), models.Item{})
	}

	assert.ErrorIs(t, b.Commit(context.Background()), ErrBatchTooLarge)
	assert.Equal(t, 0, s.Len("items"))
	assert.Equal(t, 0, s.Commits())
}

func TestMemoryCommit_UpdateMissingIsAtomic(t *testing.T) {
	s := newMemory(500)
	c := s.Client("c1")

	b := c.NewBatch()
	b.Set(c.Doc("items", "a"), models.Item{"title": "x"})
	b.Update(c.Doc("items", "missing"), models.Item{"title": "y"})

	assert.ErrorIs(t, b.Commit(context.Background()), ErrNotFound)
	assert.Equal(t, 0, s.Len("items"))
}

func TestMemoryCommit_UpdateAfterSetInSameBatch(t *testing.T) {
	s := newMemory(500)
	c := s.Client("c1")

	b := c.NewBatch()
	b.Set(c.Doc("items", "a"), models.Item{"title": "x"})
	b.Update(c.Doc("items", "a"), models.Item{"depth": 3})
	require.NoError(t, b.Commit(context.Background()))

	a, _ := s.Document("items", "a")
	assert.Equal(t, models.Item{"title": "x", "depth": 3}, a)
}

func TestMemoryCommit_HookRejects(t *testing.T) {
	boom := errors.New("unavailable")
	s := newMemory(500, WithCommitHook(func(ops []models.BatchOp) error { return boom }))
	c := s.Client("c1")

	b := c.NewBatch()
	b.Set(c.Doc("items", "a"), models.Item{})

	assert.ErrorIs(t, b.Commit(context.Background()), boom)
	assert.Equal(t, 0, s.Len("items"))
}

func TestMemoryCommit_CanceledContext(t *testing.T) {
	s := newMemory(500)
	c := s.Client("c1")
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	b := c.NewBatch()
	b.Set(c.Doc("items", "a"), models.Item{})
	assert.ErrorIs(t, b.Commit(ctx), context.Canceled)
}

func TestMemoryCommit_BatchIsolatedFromCaller(t *testing.T) {
	s := newMemory(500)
	c := s.Client("c1")

	fields := models.Item{"title": "x"}
	b := c.NewBatch()
	b.Set(c.Doc("items", "a"), fields)
	fields["title"] = "mutated"
	require.NoError(t, b.Commit(context.Background()))

	a, _ := s.Document("items", "a")
	assert.Equal(t, "x", a["title"])
}

// ── Get ─────────────────────────────────────────────────────────────────────

func TestMemoryGet(t *testing.T) {
	s := newMemory(500)
	s.Put("items", "a", models.Item{"depth": 2})
	s.Put("items", "b", models.Item{"depth": 1})
	s.Put("other", "z", models.Item{"depth": 0})

	page, err := s.Client("c1").Get(context.Background(), models.Collection("items").OrderBy("depth", models.Asc))
	require.NoError(t, err)
	assert.Equal(t, []string{"b", "a"}, docIDs(page.Docs))
}

func TestMemoryGet_InvalidQuery(t *testing.T) {
	s := newMemory(500)
	_, err := s.Client("c1").Get(context.Background(), models.Query{})
	assert.ErrorIs(t, err, ErrInvalidQuery)

	q := models.Collection("items").StartAfter(models.Cursor{DocID: "a", Values: []any{1}})
	_, err = s.Client("c1").Get(context.Background(), q)
	assert.ErrorIs(t, err, ErrInvalidQuery)
}

// ── OnSnapshot ──────────────────────────────────────────────────────────────

func TestMemoryOnSnapshot_InitialAndChanges(t *testing.T) {
	s := newMemory(500)
	s.Put("items", "a", models.Item{"archived": false})
	s.Put("items", "x", models.Item{"archived": true})

	rec := newRecorder()
	q := models.Collection("items").Where("archived", models.OpEqual, false)
	unsubscribe, err := s.Client("c1").OnSnapshot(context.Background(), q, rec.onChange, rec.onError)
	require.NoError(t, err)
	defer unsubscribe()

	initial := rec.next(t)
	assert.False(t, initial.HasPendingWrites)
	require.Len(t, initial.Changes, 1)
	assert.Equal(t, models.ChangeAdded, initial.Changes[0].Type)
	assert.Equal(t, "a", initial.Changes[0].Doc.ID)

	// Written by another client: server origin.
	other := s.Client("c2")
	b := other.NewBatch()
	b.Update(other.Doc("items", "a"), models.Item{"title": "t"})
	b.Update(other.Doc("items", "x"), models.Item{"archived": false})
	require.NoError(t, b.Commit(context.Background()))

	snap := rec.next(t)
	assert.Equal(t, models.OriginServer, snap.Origin())
	require.Len(t, snap.Changes, 2)
	assert.Equal(t, models.ChangeModified, snap.Changes[0].Type)
	assert.Equal(t, models.ChangeAdded, snap.Changes[1].Type)

	// Written by the subscriber itself: local origin.
	own := s.Client("c1")
	b = own.NewBatch()
	b.Update(own.Doc("items", "a"), models.Item{"archived": true})
	require.NoError(t, b.Commit(context.Background()))

	snap = rec.next(t)
	assert.Equal(t, models.OriginLocal, snap.Origin())
	require.Len(t, snap.Changes, 1)
	assert.Equal(t, models.ChangeRemoved, snap.Changes[0].Type)
}

func TestMemoryOnSnapshot_EmptyInitial(t *testing.T) {
	s := newMemory(500)
	rec := newRecorder()

	unsubscribe, err := s.Client("c1").OnSnapshot(context.Background(), models.Collection("items"), rec.onChange, rec.onError)
	require.NoError(t, err)
	defer unsubscribe()

	assert.Empty(t, rec.next(t).Changes)
}

func TestMemoryOnSnapshot_ServerWrite(t *testing.T) {
	s := newMemory(500)
	rec := newRecorder()

	unsubscribe, err := s.Client("c1").OnSnapshot(context.Background(), models.Collection("items"), rec.onChange, rec.onError)
	require.NoError(t, err)
	defer unsubscribe()
	rec.next(t)

	s.Put("items", "a", models.Item{"title": "x"})
	snap := rec.next(t)
	assert.False(t, snap.HasPendingWrites)
	assert.Equal(t, models.ChangeAdded, snap.Changes[0].Type)

	s.Remove("items", "a")
	snap = rec.next(t)
	assert.Equal(t, models.ChangeRemoved, snap.Changes[0].Type)
}

func TestMemoryOnSnapshot_FailSubscriptions(t *testing.T) {
	s := newMemory(500)
	rec := newRecorder()

	unsubscribe, err := s.Client("c1").OnSnapshot(context.Background(), models.Collection("items"), rec.onChange, rec.onError)
	require.NoError(t, err)
	defer unsubscribe()
	rec.next(t)

	boom := errors.New("channel closed")
	s.FailSubscriptions(boom)

	select {
	case err := <-rec.errs:
		assert.ErrorIs(t, err, boom)
	case <-time.After(2 * time.Second):
		t.Fatal("timed out waiting for error")
	}
}

func TestMemoryOnSnapshot_Unsubscribe(t *testing.T) {
	s := newMemory(500)
	rec := newRecorder()

	unsubscribe, err := s.Client("c1").OnSnapshot(context.Background(), models.Collection("items"), rec.onChange, rec.onError)
	require.NoError(t, err)
	rec.next(t)

	unsubscribe()
	unsubscribe()

	s.Put("items", "a", models.Item{})
	select {
	case <-rec.snaps:
		t.Fatal("snapshot delivered after unsubscribe")
	case <-time.After(50 * time.Millisecond):
	}
}

func TestMemoryDoc_AllocatesID(t *testing.T) {
	c := newMemory(500).Client("c1")
	ref := c.Doc("items", "")
	assert.NotEmpty(t, ref.ID)
	assert.Equal(t, "items", ref.Collection)
}
