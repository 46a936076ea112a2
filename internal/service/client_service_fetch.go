package service

import (
	"context"
	"errors"
	"fmt"
	"sync"

	"github.com/MKhiriev/go-doc-sync/internal/store"
	"github.com/MKhiriev/go-doc-sync/models"
)

// FetchRequest describes the query of a paginated fetch. Filters and
// ordering are applied to the first page only; later pages continue from
// the stored cursor.
type FetchRequest struct {
	Filters []models.Filter
	OrderBy []models.Order

	// Callback receives every delivered page. Without a callback the
	// documents missing locally are written to the store.
	Callback func(ctx context.Context, page models.Page) error
}

type fetchCursor struct {
	mu        sync.Mutex
	retrieved map[string]struct{}
	next      *models.Query
	exhausted bool
}

func newFetchCursor() fetchCursor {
	return fetchCursor{retrieved: make(map[string]struct{})}
}

func (s *clientSyncService) Fetch(ctx context.Context, req FetchRequest) (models.FetchResult, error) {
	if !s.auth.IsSignedIn() {
		return models.FetchResultNone, nil
	}

	c := &s.cursor
	c.mu.Lock()
	defer c.mu.Unlock()

	if c.exhausted {
		return models.FetchResultFetchedAll, nil
	}

	var q models.Query
	if c.next != nil {
		q = *c.next
	} else {
		q = models.Collection(s.cfg.CollectionPath)
		for _, f := range req.Filters {
			q = q.Where(f.Field, f.Op, f.Value)
		}
		for _, o := range req.OrderBy {
			q = q.OrderBy(o.Field, o.Direction)
		}
	}
	q = q.Limit(s.cfg.PageSize)

	key := q.Key()
	if _, ok := c.retrieved[key]; ok {
		s.logger.Debug().Str("func", "clientSyncService.Fetch").Msg("page already retrieved")
		return models.FetchResultNone, nil
	}

	page, err := s.remote.Get(ctx, q)
	if err != nil {
		s.logger.Err(err).Str("func", "clientSyncService.Fetch").Msg("fetch query failed")
		return models.FetchResultNone, newSyncError("fetch", ErrFetch, err)
	}

	if page.Len() == 0 {
		c.exhausted = true
		return models.FetchResultFetchedAll, nil
	}

	if page.Len() < s.cfg.PageSize {
		c.exhausted = true
	} else {
		c.retrieved[key] = struct{}{}
		last, _ := page.Last()
		next := q.StartAfter(q.CursorFor(last))
		c.next = &next
	}

	s.logger.Debug().
		Str("func", "clientSyncService.Fetch").
		Int("docs", page.Len()).
		Bool("exhausted", c.exhausted).
		Msg("page fetched")

	if req.Callback != nil {
		if err = req.Callback(ctx, page); err != nil {
			return models.FetchResultPage, fmt.Errorf("fetch callback: %w", err)
		}
		return models.FetchResultPage, nil
	}

	if err = s.addMissing(ctx, page); err != nil {
		return models.FetchResultPage, err
	}
	return models.FetchResultPage, nil
}

// addMissing writes the documents of page that are not present locally.
func (s *clientSyncService) addMissing(ctx context.Context, page models.Page) error {
	for _, doc := range page.Docs {
		path := store.JoinPath(s.cfg.StorePath, doc.ID)

		_, err := s.local.Get(ctx, path)
		if err == nil {
			continue
		}
		if !errors.Is(err, store.ErrPathNotFound) {
			return fmt.Errorf("read local record %s: %w", doc.ID, err)
		}

		if err = s.local.Set(ctx, path, map[string]any(doc.Item())); err != nil {
			return fmt.Errorf("store fetched record %s: %w", doc.ID, err)
		}
	}
	return nil
}

func (s *clientSyncService) ResetFetch() {
	s.cursor.mu.Lock()
	defer s.cursor.mu.Unlock()

	s.cursor.retrieved = make(map[string]struct{})
	s.cursor.next = nil
	s.cursor.exhausted = false
}
