package service

import (
	"maps"
	"slices"

	"github.com/MKhiriev/go-doc-sync/internal/debounce"
	"github.com/MKhiriev/go-doc-sync/models"
)

// StackSize counts the queued writes of a sync stack.
type StackSize struct {
	Updates   int
	Deletions int
	Inserts   int
}

// Total returns the number of queued operations.
func (s StackSize) Total() int {
	return s.Updates + s.Deletions + s.Inserts
}

type pendingUpdate struct {
	id     string
	fields models.Item
}

// syncStack is the pending-write accumulator of a session. Updates are keyed
// by id in first-insertion order; deletions and inserts are FIFO and never
// deduplicated.
type syncStack struct {
	updates   map[string]models.Item
	order     []string
	deletions []string
	inserts   []models.Item
	debounce  *debounce.Handle
}

func newSyncStack() syncStack {
	return syncStack{updates: make(map[string]models.Item)}
}

// addUpdate merges fields into the queued update of id, later values winning.
func (s *syncStack) addUpdate(id string, fields models.Item) {
	cur, ok := s.updates[id]
	if !ok {
		cur = make(models.Item, len(fields))
		s.updates[id] = cur
		s.order = append(s.order, id)
	}
	maps.Copy(cur, fields)
}

func (s *syncStack) addDeletions(ids []string) {
	s.deletions = append(s.deletions, ids...)
}

func (s *syncStack) addInserts(items []models.Item) {
	s.inserts = append(s.inserts, items...)
}

func (s *syncStack) size() StackSize {
	return StackSize{Updates: len(s.order), Deletions: len(s.deletions), Inserts: len(s.inserts)}
}

func (s *syncStack) empty() bool {
	return s.size().Total() == 0
}

// syncPass is the share of the stack committed in one batch.
type syncPass struct {
	updates   []pendingUpdate
	deletions []string
	inserts   []models.Item
}

func (p syncPass) size() StackSize {
	return StackSize{Updates: len(p.updates), Deletions: len(p.deletions), Inserts: len(p.inserts)}
}

// take removes at most maxOps operations from the stack: updates first in
// insertion order, then deletions, then inserts, each from the front.
func (s *syncStack) take(maxOps int) syncPass {
	var p syncPass

	n := min(len(s.order), maxOps)
	for _, id := range s.order[:n] {
		p.updates = append(p.updates, pendingUpdate{id: id, fields: s.updates[id]})
		delete(s.updates, id)
	}
	s.order = slices.Clone(s.order[n:])
	budget := maxOps - n

	n = min(len(s.deletions), budget)
	p.deletions = slices.Clone(s.deletions[:n])
	s.deletions = slices.Clone(s.deletions[n:])
	budget -= n

	n = min(len(s.inserts), budget)
	p.inserts = slices.Clone(s.inserts[:n])
	s.inserts = slices.Clone(s.inserts[n:])

	return p
}

// requeue puts a failed pass back at the front of the stack. Fields patched
// for the same id while the pass was in flight override the failed ones.
func (s *syncStack) requeue(p syncPass) {
	order := make([]string, 0, len(p.updates)+len(s.order))
	for _, u := range p.updates {
		merged := u.fields.DeepCopy()
		if newer, ok := s.updates[u.id]; ok {
			maps.Copy(merged, newer)
		}
		s.updates[u.id] = merged
		order = append(order, u.id)
	}
	for _, id := range s.order {
		if !slices.Contains(order, id) {
			order = append(order, id)
		}
	}
	s.order = order

	s.deletions = append(slices.Clone(p.deletions), s.deletions...)
	s.inserts = append(slices.Clone(p.inserts), s.inserts...)
}

// reset empties every queue and stops the debounce countdown.
func (s *syncStack) reset() {
	s.stopDebounce()
	*s = newSyncStack()
}

func (s *syncStack) stopDebounce() {
	if s.debounce != nil {
		s.debounce.Stop()
		s.debounce = nil
	}
}
