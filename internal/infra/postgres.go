package infra

import (
	"context"
	"errors"
	"fmt"
	"time"

	"go.uber.org/zap"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	gormlogger "gorm.io/gorm/logger"
	"yourmyth/internal/config"
	"yourmyth/internal/models/db_models"
)

var ErrNoDatabaseURL = errors.New("POSTGRES_URL is not set")

func InitPostgresql(cfg *config.Config, logger *zap.Logger) (*gorm.DB, error) {
	dsn := cfg.Credentials.PostgresURL
	if dsn == "" {
		return nil, ErrNoDatabaseURL
	}

	connectionPool, err := gorm.Open(postgres.Open(dsn), &gorm.Config{
		Logger: gormlogger.Default.LogMode(gormlogger.Warn),
	})
	if err != nil {
		logger.Error("error connecting to database", zap.Error(err))
		return nil, fmt.Errorf("connect postgres: %w", err)
	}

	sqlDB, err := connectionPool.DB()
	if err != nil {
		return nil, fmt.Errorf("postgres pool: %w", err)
	}
	sqlDB.SetMaxOpenConns(10)
	sqlDB.SetMaxIdleConns(5)
	sqlDB.SetConnMaxLifetime(30 * time.Minute)

	logger.Info("connected to postgres")
	return connectionPool, nil
}

// Migrate enables pgvector and creates the places and embeddings tables.
func Migrate(ctx context.Context, db *gorm.DB) error {
	if err := db.WithContext(ctx).Exec("CREATE EXTENSION IF NOT EXISTS vector").Error; err != nil {
		return fmt.Errorf("enable pgvector: %w", err)
	}
	if err := db.WithContext(ctx).AutoMigrate(&db_models.Place{}, &db_models.PlaceEmbedding{}); err != nil {
		return fmt.Errorf("migrate: %w", err)
	}
	return nil
}

func ClosePostgresql(db *gorm.DB, logger *zap.Logger) {
	if db == nil {
		return
	}
	sqlDB, err := db.DB()
	if err != nil {
		logger.Warn("error getting database instance", zap.Error(err))
		return
	}

	if err := sqlDB.Close(); err != nil {
		logger.Warn("error closing database connection", zap.Error(err))
	} else {
		logger.Info("postgres connection closed")
	}
}
