package cache

import (
	"context"
	"sync"
	"time"
)

type memoryEntry struct {
	body    []byte
	expires time.Time
}

// MemoryStore is a process-local Store. Expired entries are dropped on read.
type MemoryStore struct {
	mu      sync.RWMutex
	entries map[string]memoryEntry
	now     func() time.Time
}

func NewMemoryStore() *MemoryStore {
	return &MemoryStore{
		entries: make(map[string]memoryEntry),
		now:     time.Now,
	}
}

func (s *MemoryStore) Get(_ context.Context, key string) ([]byte, bool, error) {
	s.mu.RLock()
	entry, ok := s.entries[key]
	s.mu.RUnlock()
	if !ok {
		return nil, false, nil
	}
	if !s.now().Before(entry.expires) {
		s.mu.Lock()
		if current, ok := s.entries[key]; ok && current.expires.Equal(entry.expires) {
			delete(s.entries, key)
		}
		s.mu.Unlock()
		return nil, false, nil
	}
	return entry.body, true, nil
}

func (s *MemoryStore) Set(_ context.Context, key string, body []byte, ttl time.Duration) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.entries[key] = memoryEntry{body: body, expires: s.now().Add(ttl)}
	return nil
}
