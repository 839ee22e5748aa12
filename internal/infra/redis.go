package infra

import (
	"context"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"
	"yourmyth/internal/config"
)

// InitRedis returns nil when no address is configured.
func InitRedis(ctx context.Context, cfg *config.Config, logger *zap.Logger) (*redis.Client, error) {
	if cfg.RedisAddr == "" {
		return nil, nil
	}

	client := redis.NewClient(&redis.Options{
		Addr:     cfg.RedisAddr,
		Password: cfg.RedisPassword,
		DB:       cfg.RedisDB,
	})

	pingCtx, cancel := context.WithTimeout(ctx, 2*time.Second)
	defer cancel()
	if err := client.Ping(pingCtx).Err(); err != nil {
		_ = client.Close()
		return nil, fmt.Errorf("ping redis %s: %w", cfg.RedisAddr, err)
	}

	logger.Info("connected to redis", zap.String("addr", cfg.RedisAddr))
	return client, nil
}
