package store

import (
	"container/list"
	"context"
	"sync"

	"github.com/duccv/jotspot/internal/model"
	"github.com/google/uuid"
	"go.uber.org/zap"
)

// MemoryStore keeps jots in a map for lookups and a list for insertion order.
// One RWMutex guards both.
type MemoryStore struct {
	items map[uuid.UUID]*list.Element
	order *list.List
	mu    sync.RWMutex
}

func NewMemoryStore() *MemoryStore {
	return &MemoryStore{
		items: make(map[uuid.UUID]*list.Element),
		order: list.New(),
	}
}

func (s *MemoryStore) GetAll(_ context.Context) ([]model.Jot, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	jots := make([]model.Jot, 0, s.order.Len())
	for e := s.order.Front(); e != nil; e = e.Next() {
		jots = append(jots, *e.Value.(*model.Jot))
	}
	return jots, nil
}

func (s *MemoryStore) Add(_ context.Context, jot model.Jot) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, exists := s.items[jot.ID]; exists {
		return ErrDuplicateID
	}

	stored := jot
	s.items[jot.ID] = s.order.PushBack(&stored)
	zap.L().Debug("Jot stored", zap.String("id", jot.ID.String()), zap.Int("size", s.order.Len()))
	return nil
}

func (s *MemoryStore) GetByID(_ context.Context, id uuid.UUID) (model.Jot, bool, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	element, exists := s.items[id]
	if !exists {
		return model.Jot{}, false, nil
	}
	return *element.Value.(*model.Jot), true, nil
}

func (s *MemoryStore) Update(_ context.Context, id uuid.UUID, mutate func(*model.Jot)) (model.Jot, bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	element, exists := s.items[id]
	if !exists {
		return model.Jot{}, false, nil
	}

	jot := element.Value.(*model.Jot)
	mutate(jot)
	jot.ID = id
	return *jot, true, nil
}

func (s *MemoryStore) Delete(_ context.Context, id uuid.UUID) (bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	element, exists := s.items[id]
	if !exists {
		return false, nil
	}
	s.order.Remove(element)
	delete(s.items, id)
	return true, nil
}

// Len returns the number of stored jots.
func (s *MemoryStore) Len() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.order.Len()
}

func (s *MemoryStore) Close() error { return nil }
