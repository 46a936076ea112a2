package service

import (
	"context"
	"fmt"
	"sync"

	"github.com/MKhiriev/go-doc-sync/internal/adapter"
	"github.com/MKhiriev/go-doc-sync/models"
)

// channelState is one open change subscription.
type channelState struct {
	mu          sync.Mutex
	unsubscribe adapter.Unsubscribe
	closed      bool
	err         error
	done        chan struct{}
}

func newChannelState() *channelState {
	return &channelState{done: make(chan struct{})}
}

// attach records the subscription handle, or releases it at once when the
// channel already ended.
func (c *channelState) attach(unsubscribe adapter.Unsubscribe) {
	c.mu.Lock()
	if c.closed {
		c.mu.Unlock()
		unsubscribe()
		return
	}
	c.unsubscribe = unsubscribe
	c.mu.Unlock()
}

// close ends the subscription. Only the first call records its error.
func (c *channelState) close(err error) {
	c.mu.Lock()
	if c.closed {
		c.mu.Unlock()
		return
	}
	c.closed = true
	c.err = err
	unsubscribe := c.unsubscribe
	close(c.done)
	c.mu.Unlock()

	if unsubscribe != nil {
		unsubscribe()
	}
}

// channelQuery selects the live records: neither archived nor deleted,
// ordered by depth.
func (s *clientSyncService) channelQuery() models.Query {
	return models.Collection(s.cfg.CollectionPath).
		Where(models.FieldArchived, models.OpEqual, false).
		Where(models.FieldDeleted, models.OpEqual, false).
		OrderBy(models.FieldDepth, models.Asc)
}

func (s *clientSyncService) OpenChannel(ctx context.Context) error {
	s.mu.Lock()
	if s.closed {
		s.mu.Unlock()
		return ErrSessionClosed
	}
	prev := s.channel
	ch := newChannelState()
	s.channel = ch
	s.mu.Unlock()

	if prev != nil {
		prev.close(nil)
	}

	first := make(chan error, 1)
	var firstOnce sync.Once

	onChange := func(snap models.Snapshot) {
		s.dispatchSnapshot(ctx, snap)
		firstOnce.Do(func() { first <- nil })
	}
	onError := func(err error) {
		s.status.fail()
		serr := newSyncError("open channel", ErrSubscription, err)

		delivered := false
		firstOnce.Do(func() {
			first <- serr
			delivered = true
		})
		if !delivered {
			s.logger.Err(err).Str("func", "clientSyncService.OpenChannel").Msg("change channel failed")
			s.reportError(serr)
		}
		ch.close(serr)
	}

	unsubscribe, err := s.remote.OnSnapshot(ctx, s.channelQuery(), onChange, onError)
	if err != nil {
		s.status.fail()
		serr := newSyncError("open channel", ErrSubscription, err)
		ch.close(serr)
		return serr
	}

	ch.attach(unsubscribe)

	select {
	case err = <-first:
		if err != nil {
			return err
		}
		s.logger.Info().Str("func", "clientSyncService.OpenChannel").Msg("change channel open")
		return nil
	case <-ch.done:
		if ch.err != nil {
			return ch.err
		}
		return ErrSessionClosed
	case <-ctx.Done():
		ch.close(nil)
		return ctx.Err()
	}
}

func (s *clientSyncService) WaitChannel(ctx context.Context) error {
	s.mu.Lock()
	ch := s.channel
	s.mu.Unlock()

	if ch == nil {
		return nil
	}

	select {
	case <-ch.done:
		return ch.err
	case <-ctx.Done():
		return ctx.Err()
	}
}

// dispatchSnapshot reconciles the changes of one snapshot. Added documents
// are always reconciled; modifications and removals only when they come
// from the server, since local echoes are already applied.
func (s *clientSyncService) dispatchSnapshot(ctx context.Context, snap models.Snapshot) {
	origin := snap.Origin()

	for _, change := range snap.Changes {
		item := change.Doc.Item()
		tempID, _ := change.Doc.Data[models.FieldID].(string)

		var err error
		switch change.Type {
		case models.ChangeAdded:
			err = s.reconciler.NewItemFromServer(ctx, item, tempID)
		case models.ChangeModified:
			if origin != models.OriginServer {
				continue
			}
			err = s.reconciler.ModifiedItemFromServer(ctx, item)
		case models.ChangeRemoved:
			if origin != models.OriginServer {
				continue
			}
			err = s.reconciler.DeletedItemFromServer(ctx, item)
		default:
			continue
		}

		if err != nil {
			s.logger.Err(err).
				Str("func", "clientSyncService.dispatchSnapshot").
				Str("id", change.Doc.ID).
				Str("change", string(change.Type)).
				Msg("reconcile failed")
			s.reportError(fmt.Errorf("reconcile %s %s: %w", change.Type, change.Doc.ID, err))
		}
	}
}
