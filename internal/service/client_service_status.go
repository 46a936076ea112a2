package service

import (
	"context"
	"sync"
	"time"

	"github.com/MKhiriev/go-doc-sync/internal/debounce"
	"github.com/MKhiriev/go-doc-sync/models"
)

// syncStatus tracks whether a commit is in flight. The transition back to
// idle waits for a settle delay and is cancelled by a new patching cycle.
type syncStatus struct {
	settle   time.Duration
	onChange func(models.SyncStatus)

	mu      sync.Mutex
	current models.SyncStatus
	stop    *debounce.Handle
}

func newSyncStatus(settle time.Duration, onChange func(models.SyncStatus)) *syncStatus {
	return &syncStatus{settle: settle, onChange: onChange}
}

func (s *syncStatus) get() models.SyncStatus {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.current
}

func (s *syncStatus) startPatching() {
	s.set(models.StatusPatching)
}

func (s *syncStatus) fail() {
	s.set(models.StatusError)
}

func (s *syncStatus) reset() {
	s.set(models.StatusIdle)
}

// stopPatching schedules the transition to idle.
func (s *syncStatus) stopPatching() {
	s.mu.Lock()
	s.cancelStopLocked()
	h := debounce.Start(s.settle)
	s.stop = h
	s.mu.Unlock()

	go func() {
		if !h.Wait(context.Background()) {
			return
		}

		s.mu.Lock()
		if s.stop != h {
			s.mu.Unlock()
			return
		}
		s.stop = nil
		changed := s.current != models.StatusIdle
		s.current = models.StatusIdle
		s.mu.Unlock()

		if changed {
			s.notify(models.StatusIdle)
		}
	}()
}

func (s *syncStatus) close() {
	s.mu.Lock()
	s.cancelStopLocked()
	s.mu.Unlock()
}

func (s *syncStatus) set(st models.SyncStatus) {
	s.mu.Lock()
	s.cancelStopLocked()
	changed := s.current != st
	s.current = st
	s.mu.Unlock()

	if changed {
		s.notify(st)
	}
}

func (s *syncStatus) cancelStopLocked() {
	if s.stop != nil {
		s.stop.Stop()
		s.stop = nil
	}
}

func (s *syncStatus) notify(st models.SyncStatus) {
	if s.onChange != nil {
		s.onChange(st)
	}
}
