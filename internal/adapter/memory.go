package adapter

import (
	"context"
	"fmt"
	"maps"
	"sync"
	"time"

	"github.com/MKhiriev/go-doc-sync/internal/utils"
	"github.com/MKhiriev/go-doc-sync/models"
)

// MemoryRemoteStore is an in-process document store. Several clients share
// one store through [MemoryRemoteStore.Client]; each client sees the echoes
// of its own commits flagged as pending writes, and everybody else's as
// server changes.
type MemoryRemoteStore struct {
	maxBatchOps int
	now         func() time.Time
	ids         *utils.UUIDGenerator
	hook        func(ops []models.BatchOp) error

	mu          sync.Mutex
	collections map[string]map[string]models.Item
	subs        map[uint64]*memorySubscription
	nextSub     uint64
	commits     int
}

// MemoryOption configures a [MemoryRemoteStore].
type MemoryOption func(*MemoryRemoteStore)

// WithClock sets the clock used to resolve server timestamps.
func WithClock(now func() time.Time) MemoryOption {
	return func(s *MemoryRemoteStore) { s.now = now }
}

// WithCommitHook installs a hook consulted before every client commit. A
// non-nil error rejects the whole batch.
func WithCommitHook(hook func(ops []models.BatchOp) error) MemoryOption {
	return func(s *MemoryRemoteStore) { s.hook = hook }
}

// NewMemoryRemoteStore returns an empty store that rejects batches larger
// than maxBatchOps. maxBatchOps <= 0 disables the cap.
func NewMemoryRemoteStore(maxBatchOps int, opts ...MemoryOption) *MemoryRemoteStore {
	s := &MemoryRemoteStore{
		maxBatchOps: maxBatchOps,
		now:         time.Now,
		ids:         utils.NewUUIDGenerator(),
		collections: make(map[string]map[string]models.Item),
		subs:        make(map[uint64]*memorySubscription),
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Client returns the [RemoteStore] view of the store for clientID.
func (s *MemoryRemoteStore) Client(clientID string) *MemoryClient {
	return &MemoryClient{store: s, clientID: clientID}
}

// Put writes a document as the server would, outside of any client batch.
func (s *MemoryRemoteStore) Put(collection, id string, data models.Item) {
	s.mu.Lock()
	defer s.mu.Unlock()
	_ = s.apply("", []models.BatchOp{{Kind: models.BatchSet, Ref: models.DocRef{Collection: collection, ID: id}, Data: data}})
}

// Remove deletes a document as the server would.
func (s *MemoryRemoteStore) Remove(collection, id string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	_ = s.apply("", []models.BatchOp{{Kind: models.BatchDelete, Ref: models.DocRef{Collection: collection, ID: id}}})
}

// Document returns a copy of a stored document.
func (s *MemoryRemoteStore) Document(collection, id string) (models.Item, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	doc, ok := s.collections[collection][id]
	return doc.DeepCopy(), ok
}

// Len returns the number of documents in collection.
func (s *MemoryRemoteStore) Len(collection string) int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.collections[collection])
}

// Commits returns the number of successful client commits.
func (s *MemoryRemoteStore) Commits() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.commits
}

// FailSubscriptions ends every open subscription with err.
func (s *MemoryRemoteStore) FailSubscriptions(err error) {
	s.mu.Lock()
	subs := s.subs
	s.subs = make(map[uint64]*memorySubscription)
	s.mu.Unlock()

	for _, sub := range subs {
		sub.push(memoryEvent{err: err})
	}
}

func (s *MemoryRemoteStore) commit(ctx context.Context, clientID string, ops []models.BatchOp) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	if s.maxBatchOps > 0 && len(ops) > s.maxBatchOps {
		return fmt.Errorf("%w: %d > %d", ErrBatchTooLarge, len(ops), s.maxBatchOps)
	}
	if s.hook != nil {
		if err := s.hook(ops); err != nil {
			return err
		}
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	if err := s.apply(clientID, ops); err != nil {
		return err
	}
	s.commits++
	return nil
}

type docWrite struct {
	ref    models.DocRef
	before models.Item
	after  models.Item
}

// apply validates and applies ops all-or-nothing, then notifies the
// subscriptions. Callers hold s.mu.
func (s *MemoryRemoteStore) apply(clientID string, ops []models.BatchOp) error {
	now := s.now()
	staged := make(map[models.DocRef]models.Item, len(ops))
	order := make([]models.DocRef, 0, len(ops))

	current := func(ref models.DocRef) (models.Item, bool) {
		if doc, ok := staged[ref]; ok {
			return doc, doc != nil
		}
		doc, ok := s.collections[ref.Collection][ref.ID]
		return doc, ok
	}

	for _, op := range ops {
		if op.Ref.Collection == "" || op.Ref.ID == "" {
			return fmt.Errorf("%w: empty document reference", ErrBadRequest)
		}

		var next models.Item
		switch op.Kind {
		case models.BatchUpdate:
			cur, ok := current(op.Ref)
			if !ok {
				return fmt.Errorf("%w: no document to update: %s", ErrNotFound, op.Ref.Path())
			}
			next = cur.DeepCopy()
			maps.Copy(next, resolveSentinels(op.Data, now))
		case models.BatchSet:
			next = resolveSentinels(op.Data, now)
			if next == nil {
				next = models.Item{}
			}
		case models.BatchDelete:
			next = nil
		default:
			return fmt.Errorf("%w: unknown operation %q", ErrBadRequest, op.Kind)
		}

		if _, seen := staged[op.Ref]; !seen {
			order = append(order, op.Ref)
		}
		staged[op.Ref] = next
	}

	writes := make([]docWrite, 0, len(order))
	for _, ref := range order {
		coll := s.collections[ref.Collection]
		if coll == nil {
			coll = make(map[string]models.Item)
			s.collections[ref.Collection] = coll
		}

		w := docWrite{ref: ref, before: coll[ref.ID], after: staged[ref]}
		if w.after == nil {
			delete(coll, ref.ID)
		} else {
			coll[ref.ID] = w.after
		}
		writes = append(writes, w)
	}

	s.notify(clientID, writes)
	return nil
}

func (s *MemoryRemoteStore) notify(clientID string, writes []docWrite) {
	for _, sub := range s.subs {
		var changes []models.Change
		for _, w := range writes {
			if w.ref.Collection != sub.query.Collection {
				continue
			}
			before := w.before != nil && matches(models.Document{ID: w.ref.ID, Data: w.before}, sub.query)
			after := w.after != nil && matches(models.Document{ID: w.ref.ID, Data: w.after}, sub.query)

			switch {
			case !before && after:
				changes = append(changes, models.Change{Type: models.ChangeAdded, Doc: models.Document{ID: w.ref.ID, Data: w.after.DeepCopy()}})
			case before && after:
				changes = append(changes, models.Change{Type: models.ChangeModified, Doc: models.Document{ID: w.ref.ID, Data: w.after.DeepCopy()}})
			case before && !after:
				changes = append(changes, models.Change{Type: models.ChangeRemoved, Doc: models.Document{ID: w.ref.ID, Data: w.before.DeepCopy()}})
			}
		}
		if len(changes) == 0 {
			continue
		}

		sub.push(memoryEvent{snapshot: models.Snapshot{
			HasPendingWrites: clientID != "" && sub.clientID == clientID,
			Changes:          changes,
		}})
	}
}

func (s *MemoryRemoteStore) get(ctx context.Context, q models.Query) (models.Page, error) {
	if err := ctx.Err(); err != nil {
		return models.Page{}, err
	}
	if err := validateQuery(q); err != nil {
		return models.Page{}, err
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	return models.Page{Docs: copyDocs(runQuery(s.documents(q.Collection), q))}, nil
}

func (s *MemoryRemoteStore) subscribe(ctx context.Context, clientID string, q models.Query, onChange func(models.Snapshot), onError func(error)) (Unsubscribe, error) {
	if err := validateQuery(q); err != nil {
		return nil, err
	}
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	ctx, cancel := context.WithCancel(ctx)
	sub := &memorySubscription{
		clientID: clientID,
		query:    q,
		onChange: onChange,
		onError:  onError,
		notify:   make(chan struct{}, 1),
	}

	s.mu.Lock()
	s.nextSub++
	id := s.nextSub
	s.subs[id] = sub

	initial := models.Snapshot{Changes: make([]models.Change, 0)}
	for _, doc := range copyDocs(runQuery(s.documents(q.Collection), q)) {
		initial.Changes = append(initial.Changes, models.Change{Type: models.ChangeAdded, Doc: doc})
	}
	sub.push(memoryEvent{snapshot: initial})
	s.mu.Unlock()

	stop := func() {
		cancel()
		s.mu.Lock()
		delete(s.subs, id)
		s.mu.Unlock()
	}

	go func() {
		defer stop()
		sub.run(ctx)
	}()

	return sync.OnceFunc(stop), nil
}

func (s *MemoryRemoteStore) documents(collection string) []models.Document {
	coll := s.collections[collection]
	docs := make([]models.Document, 0, len(coll))
	for id, data := range coll {
		docs = append(docs, models.Document{ID: id, Data: data})
	}
	return docs
}

// MemoryClient is one client's [RemoteStore] view of a [MemoryRemoteStore].
type MemoryClient struct {
	store    *MemoryRemoteStore
	clientID string
}

var _ RemoteStore = (*MemoryClient)(nil)

func (c *MemoryClient) Doc(collection, id string) models.DocRef {
	if id == "" {
		id = c.store.ids.Generate()
	}
	return models.DocRef{Collection: collection, ID: id}
}

func (c *MemoryClient) NewBatch() Batch {
	return newWriteBatch(func(ctx context.Context, ops []models.BatchOp) error {
		return c.store.commit(ctx, c.clientID, ops)
	})
}

func (c *MemoryClient) Get(ctx context.Context, q models.Query) (models.Page, error) {
	return c.store.get(ctx, q)
}

func (c *MemoryClient) OnSnapshot(ctx context.Context, q models.Query, onChange func(models.Snapshot), onError func(error)) (Unsubscribe, error) {
	return c.store.subscribe(ctx, c.clientID, q, onChange, onError)
}

type memoryEvent struct {
	snapshot models.Snapshot
	err      error
}

// memorySubscription delivers queued events in order from its own goroutine
// so that callbacks never run under the store lock.
type memorySubscription struct {
	clientID string
	query    models.Query
	onChange func(models.Snapshot)
	onError  func(error)

	mu     sync.Mutex
	queue  []memoryEvent
	notify chan struct{}
}

func (m *memorySubscription) push(ev memoryEvent) {
	m.mu.Lock()
	m.queue = append(m.queue, ev)
	m.mu.Unlock()

	select {
	case m.notify <- struct{}{}:
	default:
	}
}

func (m *memorySubscription) run(ctx context.Context) {
	for {
		select {
		case <-ctx.Done():
			return
		case <-m.notify:
		}

		for {
			m.mu.Lock()
			if len(m.queue) == 0 {
				m.mu.Unlock()
				break
			}
			ev := m.queue[0]
			m.queue = m.queue[1:]
			m.mu.Unlock()

			if ctx.Err() != nil {
				return
			}
			if ev.err != nil {
				if m.onError != nil {
					m.onError(ev.err)
				}
				return
			}
			if m.onChange != nil {
				m.onChange(ev.snapshot)
			}
		}
	}
}

func validateQuery(q models.Query) error {
	if q.Collection == "" {
		return fmt.Errorf("%w: empty collection", ErrInvalidQuery)
	}
	if q.After != nil && len(q.After.Values) > len(q.Orders) {
		return fmt.Errorf("%w: cursor has more values than order clauses", ErrInvalidQuery)
	}
	return nil
}

func copyDocs(docs []models.Document) []models.Document {
	out := make([]models.Document, len(docs))
	for i, d := range docs {
		out[i] = models.Document{ID: d.ID, Data: d.Data.DeepCopy()}
	}
	return out
}

// resolveSentinels returns a deep copy of data with every server timestamp
// sentinel replaced by now.
func resolveSentinels(data models.Item, now time.Time) models.Item {
	if data == nil {
		return nil
	}
	out := make(models.Item, len(data))
	for k, v := range data {
		out[k] = resolveValue(v, now)
	}
	return out
}

func resolveValue(v any, now time.Time) any {
	if models.IsServerTimestamp(v) {
		return now
	}
	switch val := v.(type) {
	case models.Item:
		return resolveSentinels(val, now)
	case map[string]any:
		return map[string]any(resolveSentinels(models.Item(val), now))
	case []any:
		out := make([]any, len(val))
		for i, el := range val {
			out[i] = resolveValue(el, now)
		}
		return out
	default:
		return models.Item{"v": v}.DeepCopy()["v"]
	}
}
