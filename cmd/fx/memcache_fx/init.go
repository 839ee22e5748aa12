package memcache_fx

import (
	"time"

	"github.com/redis/go-redis/v9"
	"go.uber.org/fx"
	"go.uber.org/zap"
	mem "yourmyth/pkg/memcache"
)

var Module = fx.Provide(provideMemoStore)

// provideMemoStore prefers Redis and falls back to an in-process cache.
func provideMemoStore(client *redis.Client, logger *zap.Logger) mem.MemoStore {
	if client != nil {
		logger.Info("memo store: redis")
		return mem.NewRedisMemoStore(client)
	}
	logger.Info("memo store: local")
	return mem.NewLocalMemoStore(24*time.Hour, 10*time.Minute)
}
