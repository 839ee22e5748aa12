// pkg/memcache/memo_store.go
package mem

import (
	"context"
	"encoding/json"
	"errors"
	"strings"
	"time"

	"github.com/patrickmn/go-cache"
	"github.com/redis/go-redis/v9"
)

// MemoStore memoizes JSON-encodable values under a key until their TTL passes.
type MemoStore interface {
	// Get decodes the value stored under key into dest. It reports false on a miss or expiry.
	Get(ctx context.Context, key string, dest any) (bool, error)
	Set(ctx context.Context, key string, value any, ttl time.Duration) error
}

type localMemoStore struct {
	cache *cache.Cache
}

// NewLocalMemoStore keeps entries in process memory; expired entries are purged every cleanup interval.
func NewLocalMemoStore(defaultTTL, cleanup time.Duration) MemoStore {
	return &localMemoStore{cache: cache.New(defaultTTL, cleanup)}
}

func (s *localMemoStore) Get(_ context.Context, key string, dest any) (bool, error) {
	raw, ok := s.cache.Get(key)
	if !ok {
		return false, nil
	}
	b, ok := raw.([]byte)
	if !ok {
		s.cache.Delete(key)
		return false, nil
	}
	if err := json.Unmarshal(b, dest); err != nil {
		return false, err
	}
	return true, nil
}

func (s *localMemoStore) Set(_ context.Context, key string, value any, ttl time.Duration) error {
	if strings.TrimSpace(key) == "" {
		return nil
	}
	b, err := json.Marshal(value)
	if err != nil {
		return err
	}
	s.cache.Set(key, b, ttl)
	return nil
}

// redisKV is the part of *redis.Client the store needs.
type redisKV interface {
	Get(ctx context.Context, key string) *redis.StringCmd
	Set(ctx context.Context, key string, value interface{}, expiration time.Duration) *redis.StatusCmd
}

type redisMemoStore struct {
	client redisKV
	prefix string
}

func NewRedisMemoStore(client *redis.Client) MemoStore {
	if client == nil {
		return nil
	}
	return newRedisMemoStore(client)
}

func newRedisMemoStore(client redisKV) *redisMemoStore {
	return &redisMemoStore{
		client: client,
		prefix: "yourmyth:memo:",
	}
}

func (s *redisMemoStore) Get(ctx context.Context, key string, dest any) (bool, error) {
	ctx, cancel := context.WithTimeout(ctx, 500*time.Millisecond)
	defer cancel()

	b, err := s.client.Get(ctx, s.prefix+key).Bytes()
	if errors.Is(err, redis.Nil) {
		return false, nil
	}
	if err != nil {
		return false, err
	}
	if err := json.Unmarshal(b, dest); err != nil {
		return false, err
	}
	return true, nil
}

func (s *redisMemoStore) Set(ctx context.Context, key string, value any, ttl time.Duration) error {
	if strings.TrimSpace(key) == "" {
		return nil
	}
	b, err := json.Marshal(value)
	if err != nil {
		return err
	}
	ctx, cancel := context.WithTimeout(ctx, 500*time.Millisecond)
	defer cancel()
	return s.client.Set(ctx, s.prefix+key, b, ttl).Err()
}
