package store

import (
	"context"
	"fmt"
	"maps"
	"sync"
)

// MemoryStore is an in-process [LocalStore] holding a nested tree of maps.
// Values are copied on the way in and on the way out, so callers never share
// memory with the tree.
type MemoryStore struct {
	mu   sync.RWMutex
	root map[string]any
}

// NewMemoryStore returns an empty MemoryStore.
func NewMemoryStore() *MemoryStore {
	return &MemoryStore{root: make(map[string]any)}
}

func (s *MemoryStore) Get(_ context.Context, path string) (any, error) {
	segments, err := splitPath(path)
	if err != nil {
		return nil, err
	}

	s.mu.RLock()
	defer s.mu.RUnlock()

	v, ok := lookup(s.root, segments)
	if !ok {
		return nil, fmt.Errorf("%w: %s", ErrPathNotFound, path)
	}
	return copyValue(v), nil
}

func (s *MemoryStore) Set(_ context.Context, path string, value any) error {
	segments, err := splitPath(path)
	if err != nil {
		return err
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	parent, err := container(s.root, segments[:len(segments)-1])
	if err != nil {
		return err
	}
	parent[segments[len(segments)-1]] = copyValue(value)
	return nil
}

func (s *MemoryStore) Merge(_ context.Context, path string, partial map[string]any) error {
	segments, err := splitPath(path)
	if err != nil {
		return err
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	target, err := container(s.root, segments)
	if err != nil {
		return err
	}
	maps.Copy(target, copyValue(partial).(map[string]any))
	return nil
}

func (s *MemoryStore) Delete(_ context.Context, path string) error {
	segments, err := splitPath(path)
	if err != nil {
		return err
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	parent, ok := lookup(s.root, segments[:len(segments)-1])
	if !ok {
		return nil
	}
	m, ok := asMap(parent)
	if !ok {
		return nil
	}
	delete(m, segments[len(segments)-1])
	return nil
}
