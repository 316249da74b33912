package store

import (
	"context"
	"sort"
	"sync"

	"github.com/google/uuid"

	"github.com/turtle3d-xyz/go-turtle3d/export"
	"github.com/turtle3d-xyz/go-turtle3d/skeleton"
)

// MemoryStore keeps skeletons in process memory. Geometry is held in
// its encoded form, so callers cannot mutate stored skeletons through
// retained pointers.
type MemoryStore struct {
	mu      sync.RWMutex
	entries map[string]memoryEntry
}

type memoryEntry struct {
	meta Meta
	data []byte
}

// NewMemoryStore creates an empty in-memory store.
func NewMemoryStore() *MemoryStore {
	return &MemoryStore{entries: make(map[string]memoryEntry)}
}

// Save persists a skeleton under a fresh ID.
func (s *MemoryStore) Save(_ context.Context, name string, skel *skeleton.Skeleton) (Meta, error) {
	data, err := export.EncodeCBOR(skel)
	if err != nil {
		return Meta{}, err
	}
	meta := metaFor(uuid.NewString(), name, skel)

	s.mu.Lock()
	defer s.mu.Unlock()
	s.entries[meta.ID] = memoryEntry{meta: meta, data: data}
	return meta, nil
}

// Load retrieves a skeleton by ID.
func (s *MemoryStore) Load(_ context.Context, id string) (*skeleton.Skeleton, Meta, error) {
	s.mu.RLock()
	entry, ok := s.entries[id]
	s.mu.RUnlock()
	if !ok {
		return nil, Meta{}, ErrNotFound
	}
	skel, err := export.DecodeCBOR(entry.data)
	if err != nil {
		return nil, Meta{}, err
	}
	return skel, entry.meta, nil
}

// List returns all catalog entries, newest first.
func (s *MemoryStore) List(_ context.Context) ([]Meta, error) {
	s.mu.RLock()
	metas := make([]Meta, 0, len(s.entries))
	for _, entry := range s.entries {
		metas = append(metas, entry.meta)
	}
	s.mu.RUnlock()

	sort.Slice(metas, func(i, j int) bool {
		return metas[i].CreatedAt.After(metas[j].CreatedAt)
	})
	return metas, nil
}

// Delete removes a skeleton by ID.
func (s *MemoryStore) Delete(_ context.Context, id string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, ok := s.entries[id]; !ok {
		return ErrNotFound
	}
	delete(s.entries, id)
	return nil
}

// Close is a no-op for the in-memory store.
func (s *MemoryStore) Close() error {
	return nil
}
