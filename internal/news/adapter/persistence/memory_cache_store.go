package persistence

import (
	"context"
	"sync"

	"clubsite/internal/news/domain/model"
)

// MemoryCacheStore is an in-process CacheStore for tests and single-instance
// deployments without Redis.
type MemoryCacheStore struct {
	mu    sync.RWMutex
	batch *model.Batch
}

// NewMemoryCacheStore creates an empty in-memory news cache store.
func NewMemoryCacheStore() *MemoryCacheStore {
	return &MemoryCacheStore{}
}

func (s *MemoryCacheStore) Get(ctx context.Context) (*model.Batch, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	if s.batch == nil {
		return nil, nil
	}
	copied := *s.batch
	return &copied, nil
}

func (s *MemoryCacheStore) Set(ctx context.Context, batch *model.Batch) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	copied := *batch
	s.batch = &copied
	return nil
}

func (s *MemoryCacheStore) Delete(ctx context.Context) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.batch = nil
	return nil
}
