package service

import (
	"testing"

	"github.com/MKhiriev/go-doc-sync/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// ── addUpdate ────────────────────────────────────────────────────────────────

func TestSyncStack_AddUpdate_MergesFieldsPerID(t *testing.T) {
	s := newSyncStack()

	s.addUpdate("a", models.Item{"title": "x", "depth": 1})
	s.addUpdate("b", models.Item{"title": "y"})
	s.addUpdate("a", models.Item{"title": "z"})

	assert.Equal(t, []string{"a", "b"}, s.order)
	assert.Equal(t, models.Item{"title": "z", "depth": 1}, s.updates["a"])
	assert.Equal(t, StackSize{Updates: 2}, s.size())
}

func TestSyncStack_DeletionsAndInserts_NotDeduplicated(t *testing.T) {
	s := newSyncStack()

	s.addDeletions([]string{"a", "a"})
	s.addInserts([]models.Item{{"title": "n"}, {"title": "n"}})

	assert.Equal(t, StackSize{Deletions: 2, Inserts: 2}, s.size())
	assert.Equal(t, 4, s.size().Total())
}

// ── take ─────────────────────────────────────────────────────────────────────

func TestSyncStack_Take_UpdatesThenDeletionsThenInserts(t *testing.T) {
	s := newSyncStack()
	s.addUpdate("u1", models.Item{"t": 1})
	s.addUpdate("u2", models.Item{"t": 2})
	s.addDeletions([]string{"d1", "d2"})
	s.addInserts([]models.Item{{"n": 1}, {"n": 2}})

	p := s.take(3)
	require.Len(t, p.updates, 2)
	assert.Equal(t, "u1", p.updates[0].id)
	assert.Equal(t, "u2", p.updates[1].id)
	assert.Equal(t, []string{"d1"}, p.deletions)
	assert.Empty(t, p.inserts)

	// остаток стека: одна deletion и две вставки
	assert.Equal(t, StackSize{Deletions: 1, Inserts: 2}, s.size())

	p = s.take(3)
	assert.Equal(t, []string{"d2"}, p.deletions)
	assert.Len(t, p.inserts, 2)
	assert.True(t, s.empty())
}

func TestSyncStack_Take_SplitsLargeInsertQueue(t *testing.T) {
	s := newSyncStack()
	items := make([]models.Item, 600)
	for i := range items {
		items[i] = models.Item{"n": i}
	}
	s.addInserts(items)

	first := s.take(500)
	second := s.take(500)

	assert.Equal(t, 500, first.size().Total())
	assert.Equal(t, 100, second.size().Total())
	assert.Equal(t, 0, first.inserts[0]["n"])
	assert.Equal(t, 500, second.inserts[0]["n"])
	assert.True(t, s.empty())
}

func TestSyncStack_Take_EmptyStack(t *testing.T) {
	s := newSyncStack()

	p := s.take(500)
	assert.Equal(t, 0, p.size().Total())
}

// ── requeue ──────────────────────────────────────────────────────────────────

func TestSyncStack_Requeue_PutsPassInFront(t *testing.T) {
	s := newSyncStack()
	s.addDeletions([]string{"d1"})
	s.addInserts([]models.Item{{"n": 1}})
	p := s.take(500)

	s.addDeletions([]string{"d2"})
	s.addInserts([]models.Item{{"n": 2}})
	s.requeue(p)

	assert.Equal(t, []string{"d1", "d2"}, s.deletions)
	require.Len(t, s.inserts, 2)
	assert.Equal(t, 1, s.inserts[0]["n"])
	assert.Equal(t, 2, s.inserts[1]["n"])
}

func TestSyncStack_Requeue_NewerFieldsWin(t *testing.T) {
	s := newSyncStack()
	s.addUpdate("a", models.Item{"title": "old", "depth": 1})
	p := s.take(500)

	// пока пасс "в полёте", пользователь снова патчит title
	s.addUpdate("b", models.Item{"title": "b"})
	s.addUpdate("a", models.Item{"title": "new"})
	s.requeue(p)

	assert.Equal(t, []string{"a", "b"}, s.order)
	assert.Equal(t, models.Item{"title": "new", "depth": 1}, s.updates["a"])
}

// ── reset ────────────────────────────────────────────────────────────────────

func TestSyncStack_Reset(t *testing.T) {
	s := newSyncStack()
	s.addUpdate("a", models.Item{"t": 1})
	s.addDeletions([]string{"d"})
	s.addInserts([]models.Item{{"n": 1}})

	s.reset()

	assert.True(t, s.empty())
	assert.Nil(t, s.debounce)
	assert.NotNil(t, s.updates)
}
