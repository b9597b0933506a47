package razorpaywebhook

import (
	"context"
	"strings"
	"sync"
	"time"
)

// MemoryStore is an in-process idempotency store for single-instance
// listeners that run without redis.
type MemoryStore struct {
	mu      sync.Mutex
	entries map[string]time.Time
	now     func() time.Time
}

func NewMemoryStore() *MemoryStore {
	return &MemoryStore{
		entries: make(map[string]time.Time),
		now:     time.Now,
	}
}

// SetNX stores key unless a live entry exists. A zero ttl never expires.
func (s *MemoryStore) SetNX(_ context.Context, key string, _ any, ttl time.Duration) (bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	now := s.now()
	if expires, ok := s.entries[key]; ok && (expires.IsZero() || now.Before(expires)) {
		return false, nil
	}
	var expires time.Time
	if ttl > 0 {
		expires = now.Add(ttl)
	}
	s.entries[key] = expires
	return true, nil
}

func (s *MemoryStore) Del(_ context.Context, keys ...string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	for _, key := range keys {
		delete(s.entries, key)
	}
	return nil
}

func (s *MemoryStore) IdempotencyKey(scope, id string) string {
	return strings.Join([]string{"rzp", "idempotency", scope, id}, ":")
}
