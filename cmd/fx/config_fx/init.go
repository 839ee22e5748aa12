package config_fx

import (
	"github.com/joho/godotenv"
	"go.uber.org/fx"
	"go.uber.org/zap"
	"yourmyth/internal/config"
	"yourmyth/pkg/logger"
)

var Module = fx.Provide(provideConfig, provideLogger)

func provideConfig() (*config.Config, error) {
	// .env is optional; real environment variables win.
	_ = godotenv.Load()
	return config.LoadConfig()
}

func provideLogger(lc fx.Lifecycle, cfg *config.Config) (*zap.Logger, error) {
	l, err := logger.New(cfg.LogLevel)
	if err != nil {
		return nil, err
	}
	lc.Append(fx.StopHook(func() {
		_ = l.Sync()
	}))
	return l, nil
}
