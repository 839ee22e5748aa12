package db_fx

import (
	"context"
	"errors"
	"fmt"

	"github.com/redis/go-redis/v9"
	"go.uber.org/fx"
	"go.uber.org/zap"
	"gorm.io/gorm"
	"yourmyth/internal/config"
	"yourmyth/internal/infra"
)

var Module = fx.Provide(
	provideDB, provideRedis)

// provideDB yields a nil *gorm.DB when no database is configured and the places come from CSV.
func provideDB(lc fx.Lifecycle, cfg *config.Config, logger *zap.Logger) (*gorm.DB, error) {
	db, err := infra.InitPostgresql(cfg, logger)
	if errors.Is(err, infra.ErrNoDatabaseURL) && cfg.PlacesSource != "postgres" {
		logger.Warn("no database configured, recommendations are disabled")
		return nil, nil
	}
	if err != nil {
		return nil, err
	}

	lc.Append(fx.Hook{
		OnStart: func(ctx context.Context) error {
			if err := infra.Migrate(ctx, db); err != nil {
				return fmt.Errorf("migrate database: %w", err)
			}
			return nil
		},
		OnStop: func(ctx context.Context) error {
			infra.ClosePostgresql(db, logger)
			return nil
		},
	})
	return db, nil
}

func provideRedis(lc fx.Lifecycle, cfg *config.Config, logger *zap.Logger) (*redis.Client, error) {
	client, err := infra.InitRedis(context.Background(), cfg, logger)
	if err != nil || client == nil {
		return nil, err
	}
	lc.Append(fx.StopHook(client.Close))
	return client, nil
}
