package store

import (
	"context"
	"sync"

	"github.com/getitemd/itemd/pkg/item"
)

// MemoryStore is a thread-safe in-memory implementation of ItemStore.
// Ids increase monotonically and are never reused, matching the
// auto-increment behavior of the relational backends within one process
// lifetime.
type MemoryStore struct {
	mu     sync.RWMutex
	items  map[int64]*item.Item
	order  []int64
	nextID int64
}

// NewMemoryStore creates an empty MemoryStore.
func NewMemoryStore() *MemoryStore {
	return &MemoryStore{
		items: make(map[int64]*item.Item),
	}
}

// List returns items in insertion order, skipping the first skip records.
func (s *MemoryStore) List(ctx context.Context, skip int) ([]*item.Item, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	result := make([]*item.Item, 0)
	if skip >= len(s.order) {
		return result, nil
	}
	for _, id := range s.order[skip:] {
		cp := *s.items[id]
		result = append(result, &cp)
	}
	return result, nil
}

// Get retrieves an item by id.
func (s *MemoryStore) Get(ctx context.Context, id int64) (*item.Item, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	it, ok := s.items[id]
	if !ok {
		return nil, ErrNotFound
	}
	cp := *it
	return &cp, nil
}

// Create stores a new item and assigns the next id.
func (s *MemoryStore) Create(ctx context.Context, it *item.Item) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.nextID++
	it.ID = s.nextID
	cp := *it
	s.items[it.ID] = &cp
	s.order = append(s.order, it.ID)
	return nil
}

// Update replaces the stored fields of an existing item.
func (s *MemoryStore) Update(ctx context.Context, it *item.Item) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := s.items[it.ID]; !ok {
		return ErrNotFound
	}
	cp := *it
	s.items[it.ID] = &cp
	return nil
}

// Delete removes an item by id. The id is never handed out again.
func (s *MemoryStore) Delete(ctx context.Context, id int64) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := s.items[id]; !ok {
		return ErrNotFound
	}
	delete(s.items, id)
	for i, oid := range s.order {
		if oid == id {
			s.order = append(s.order[:i], s.order[i+1:]...)
			break
		}
	}
	return nil
}

// Close is a no-op for the memory backend.
func (s *MemoryStore) Close() error {
	return nil
}

// Ensure MemoryStore implements ItemStore.
var _ ItemStore = (*MemoryStore)(nil)
