package oauth

import (
	"context"
	"sync"
	"time"

	"career-compass/internal/infrastructure/cache"
)

const stateTTL = 10 * time.Minute

// StateStore holds one-shot OAuth state nonces between the redirect and the
// callback.
type StateStore interface {
	Put(ctx context.Context, state string) error
	Take(ctx context.Context, state string) bool
}

type RedisStateStore struct {
	redis *cache.Redis
}

func NewRedisStateStore(r *cache.Redis) *RedisStateStore {
	return &RedisStateStore{redis: r}
}

func (s *RedisStateStore) Put(ctx context.Context, state string) error {
	return s.redis.SetString(ctx, "oauth:state:"+state, "1", stateTTL)
}

func (s *RedisStateStore) Take(ctx context.Context, state string) bool {
	_, ok, err := s.redis.TakeString(ctx, "oauth:state:"+state)
	return err == nil && ok
}

// MemoryStateStore backs single-instance deployments with no Redis.
type MemoryStateStore struct {
	mu     sync.Mutex
	states map[string]time.Time
}

func NewMemoryStateStore() *MemoryStateStore {
	return &MemoryStateStore{states: map[string]time.Time{}}
}

func (s *MemoryStateStore) Put(_ context.Context, state string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	now := time.Now()
	for k, exp := range s.states {
		if now.After(exp) {
			delete(s.states, k)
		}
	}
	s.states[state] = now.Add(stateTTL)
	return nil
}

func (s *MemoryStateStore) Take(_ context.Context, state string) bool {
	s.mu.Lock()
	defer s.mu.Unlock()

	exp, ok := s.states[state]
	if !ok {
		return false
	}
	delete(s.states, state)
	return time.Now().Before(exp)
}

var (
	_ StateStore = (*RedisStateStore)(nil)
	_ StateStore = (*MemoryStateStore)(nil)
)
