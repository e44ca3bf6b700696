package ratelimit

import (
	"context"
	"sync"
	"time"

	"github.com/hashicorp/golang-lru/v2/expirable"
)

type window struct {
	count   int
	resetAt time.Time
}

// MemoryStore keeps counters in a bounded LRU. Counters are lost on restart
// and are not shared between instances.
type MemoryStore struct {
	mu      sync.Mutex
	windows *expirable.LRU[string, window]
}

// NewMemoryStore keeps at most size keys; idle keys expire after ttl, which
// should be at least the longest tier window.
func NewMemoryStore(size int, ttl time.Duration) *MemoryStore {
	return &MemoryStore{
		windows: expirable.NewLRU[string, window](size, nil, ttl),
	}
}

func (s *MemoryStore) Hit(_ context.Context, key string, w time.Duration, now time.Time) (int, time.Time, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	cur, ok := s.windows.Get(key)
	if !ok || !now.Before(cur.resetAt) {
		cur = window{resetAt: now.Add(w)}
	}
	cur.count++
	s.windows.Add(key, cur)
	return cur.count, cur.resetAt, nil
}
