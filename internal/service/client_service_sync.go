package service

import (
	"context"
	"sync"

	"github.com/MKhiriev/go-doc-sync/internal/adapter"
	"github.com/MKhiriev/go-doc-sync/internal/config"
	"github.com/MKhiriev/go-doc-sync/internal/debounce"
	"github.com/MKhiriev/go-doc-sync/internal/logger"
	"github.com/MKhiriev/go-doc-sync/internal/store"
	"github.com/MKhiriev/go-doc-sync/models"
)

// SessionOptions carries the collaborators of a sync session. Zero fields
// fall back to defaults: a signed-in anonymous user, [FillableSanitizer],
// a [Reconciler] over the local store, [DefaultGuards] and a no-op logger.
type SessionOptions struct {
	Auth           Auth
	Sanitizer      Sanitizer
	Reconciler     Reconciler
	Guards         *Guards
	InsertDefaults models.Item

	// OnError receives failures that have no synchronous caller: drains
	// triggered by the debounce and channel errors after the first snapshot.
	OnError func(error)

	// OnStatus is called on every status transition.
	OnStatus func(models.SyncStatus)

	Logger *logger.Logger
}

type clientSyncService struct {
	local      store.LocalStore
	remote     adapter.RemoteStore
	cfg        config.EntityConfig
	auth       Auth
	sanitizer  Sanitizer
	reconciler Reconciler
	guards     Guards
	defaults   models.Item
	onError    func(error)
	logger     *logger.Logger

	status *syncStatus
	cursor fetchCursor

	// base is cancelled by Close; debounce-triggered drains run under it.
	base   context.Context
	cancel context.CancelFunc

	mu      sync.Mutex
	stack   syncStack
	channel *channelState
	closed  bool

	// drainMu serializes drain passes.
	drainMu sync.Mutex
}

// NewClientSyncService creates a sync session for the entity type described
// by cfg.
func NewClientSyncService(local store.LocalStore, remote adapter.RemoteStore, cfg config.EntityConfig, opts SessionOptions) ClientSyncService {
	if cfg.MaxBatchOps <= 0 {
		cfg.MaxBatchOps = config.DefaultMaxBatchOps
	}
	if cfg.PageSize <= 0 {
		cfg.PageSize = config.DefaultPageSize
	}
	if cfg.StorePath == "" {
		cfg.StorePath = config.DefaultStorePath
	}
	// negative delays are kept and mean "no delay"
	if cfg.DebounceDelay == 0 {
		cfg.DebounceDelay = config.DefaultDebounce
	}
	if cfg.StatusSettleDelay == 0 {
		cfg.StatusSettleDelay = config.DefaultStatusSettle
	}

	log := opts.Logger
	if log == nil {
		log = logger.Nop()
	}
	log = log.WithCollection(cfg.CollectionPath)

	s := &clientSyncService{
		local:     local,
		remote:    remote,
		cfg:       cfg,
		auth:      opts.Auth,
		sanitizer: opts.Sanitizer,
		defaults:  opts.InsertDefaults.DeepCopy(),
		onError:   opts.OnError,
		logger:    log,
		status:    newSyncStatus(cfg.StatusSettleDelay, opts.OnStatus),
		cursor:    newFetchCursor(),
		stack:     newSyncStack(),
	}
	s.base, s.cancel = context.WithCancel(context.Background())

	if s.auth == nil {
		s.auth = NewStaticAuth("")
	}
	if s.sanitizer == nil {
		s.sanitizer = FillableSanitizer{}
	}
	s.reconciler = opts.Reconciler
	if s.reconciler == nil {
		s.reconciler = NewStoreReconciler(local, cfg.StorePath)
	}
	if opts.Guards != nil {
		s.guards = *opts.Guards
	} else {
		s.guards = DefaultGuards()
	}

	return s
}

func (s *clientSyncService) Insert(ctx context.Context, req InsertRequest) error {
	if s.isClosed() {
		return ErrSessionClosed
	}

	items, err := s.prepareForInsert(ctx, req.normalize())
	if err != nil {
		return err
	}

	s.mu.Lock()
	if s.closed {
		s.mu.Unlock()
		return ErrSessionClosed
	}
	s.stack.addInserts(items)
	s.mu.Unlock()

	s.HandleSyncStackDebounce()
	return nil
}

func (s *clientSyncService) Patch(ctx context.Context, req PatchRequest) error {
	if s.isClosed() {
		return ErrSessionClosed
	}

	ids, fields := req.normalize()
	updates, err := s.prepareForPatch(ctx, ids, fields)
	if err != nil {
		return err
	}

	s.mu.Lock()
	if s.closed {
		s.mu.Unlock()
		return ErrSessionClosed
	}
	for _, u := range updates {
		s.stack.addUpdate(u.id, u.fields)
	}
	s.mu.Unlock()

	s.HandleSyncStackDebounce()
	return nil
}

func (s *clientSyncService) Delete(ctx context.Context, req DeleteRequest) error {
	if s.isClosed() {
		return ErrSessionClosed
	}

	ids, err := s.prepareForDeletion(ctx, req.normalize())
	if err != nil {
		return err
	}

	s.mu.Lock()
	if s.closed {
		s.mu.Unlock()
		return ErrSessionClosed
	}
	s.stack.addDeletions(ids)
	queued := len(s.stack.deletions)
	s.mu.Unlock()

	if queued == 0 {
		return nil
	}
	s.HandleSyncStackDebounce()
	return nil
}

func (s *clientSyncService) HandleSyncStackDebounce() bool {
	if !s.auth.IsSignedIn() {
		return false
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	if s.closed {
		return false
	}

	if s.stack.debounce == nil {
		h := debounce.Start(s.cfg.DebounceDelay)
		s.stack.debounce = h
		go s.drainAfter(h)
		return true
	}

	s.stack.debounce.Refresh()
	return true
}

// drainAfter runs BatchSync once h completes.
func (s *clientSyncService) drainAfter(h *debounce.Handle) {
	if !h.Wait(s.base) {
		return
	}

	if err := s.BatchSync(s.base); err != nil {
		s.logger.Err(err).Str("func", "clientSyncService.drainAfter").Msg("debounced batch sync failed")
		s.reportError(err)
	}
}

func (s *clientSyncService) BatchSync(ctx context.Context) error {
	s.drainMu.Lock()
	defer s.drainMu.Unlock()

	for {
		s.mu.Lock()
		s.stack.stopDebounce()
		if s.stack.empty() {
			s.mu.Unlock()
			return nil
		}
		pass := s.stack.take(s.cfg.MaxBatchOps)
		s.mu.Unlock()

		if err := s.commitPass(ctx, pass); err != nil {
			s.mu.Lock()
			s.stack.requeue(pass)
			s.stack.stopDebounce()
			s.mu.Unlock()

			s.status.fail()
			return newSyncError("batch sync", ErrBatchCommit, err)
		}

		s.mu.Lock()
		remaining := !s.stack.empty()
		s.mu.Unlock()

		if !remaining {
			s.status.stopPatching()
			return nil
		}
	}
}

func (s *clientSyncService) commitPass(ctx context.Context, pass syncPass) error {
	coll := s.cfg.CollectionPath
	batch := s.remote.NewBatch()

	for _, u := range pass.updates {
		batch.Update(s.remote.Doc(coll, u.id), u.fields)
	}
	for _, id := range pass.deletions {
		batch.Delete(s.remote.Doc(coll, id))
	}
	for _, item := range pass.inserts {
		batch.Set(s.remote.Doc(coll, ""), item)
	}

	size := pass.size()
	s.status.startPatching()
	s.logger.Info().
		Str("func", "clientSyncService.commitPass").
		Int("updates", size.Updates).
		Int("deletions", size.Deletions).
		Int("inserts", size.Inserts).
		Msg("committing batch")

	if err := batch.Commit(ctx); err != nil {
		s.logger.Err(err).
			Str("func", "clientSyncService.commitPass").
			Int("ops", size.Total()).
			Msg("batch commit failed")
		return err
	}
	return nil
}

func (s *clientSyncService) Flush(ctx context.Context) error {
	s.mu.Lock()
	s.stack.stopDebounce()
	s.mu.Unlock()

	return s.BatchSync(ctx)
}

func (s *clientSyncService) ResetSyncStack() {
	s.mu.Lock()
	s.stack.reset()
	s.mu.Unlock()

	s.status.reset()
}

func (s *clientSyncService) Pending() StackSize {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.stack.size()
}

func (s *clientSyncService) Status() models.SyncStatus {
	return s.status.get()
}

func (s *clientSyncService) Close() {
	s.mu.Lock()
	if s.closed {
		s.mu.Unlock()
		return
	}
	s.closed = true
	s.stack.stopDebounce()
	ch := s.channel
	s.channel = nil
	s.mu.Unlock()

	if ch != nil {
		ch.close(nil)
	}
	s.cancel()
	s.status.close()
}

func (s *clientSyncService) isClosed() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.closed
}

func (s *clientSyncService) reportError(err error) {
	if s.onError != nil {
		s.onError(err)
	}
}
