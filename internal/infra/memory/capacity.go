package memory

import (
	"context"
	"sync"

	"parking-reservation/internal/domain/capacity"
)

type CapacityStore struct {
	mu    sync.RWMutex
	value *capacity.SlotCapacity
}

func NewCapacityStore() *CapacityStore {
	return &CapacityStore{}
}

func (s *CapacityStore) Get(_ context.Context) (capacity.SlotCapacity, bool, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	if s.value == nil {
		return capacity.SlotCapacity{}, false, nil
	}
	return *s.value, true, nil
}

func (s *CapacityStore) Upsert(_ context.Context, c capacity.SlotCapacity) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.value = &c
	return nil
}
