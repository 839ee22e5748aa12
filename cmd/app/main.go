package main

import (
	"context"
	"errors"
	"net"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"go.uber.org/fx"
	"go.uber.org/fx/fxevent"
	"go.uber.org/zap"
	"yourmyth/cmd/fx/config_fx"
	"yourmyth/cmd/fx/controllers_fx"
	"yourmyth/cmd/fx/db_fx"
	"yourmyth/cmd/fx/embeddings_fx"
	"yourmyth/cmd/fx/geo_fx"
	"yourmyth/cmd/fx/llm_fx"
	"yourmyth/cmd/fx/memcache_fx"
	"yourmyth/cmd/fx/places_fx"
	"yourmyth/internal/api/controllers"
	"yourmyth/internal/config"
	"yourmyth/pkg/middleware"
)

func main() {
	app := fx.New(
		fx.WithLogger(func(logger *zap.Logger) fxevent.Logger {
			return &fxevent.ZapLogger{Logger: logger}
		}),
		config_fx.Module,
		db_fx.Module,
		memcache_fx.Module,
		places_fx.Module,
		embeddings_fx.Module,
		llm_fx.Module,
		geo_fx.Module,
		controllers_fx.Module,

		fx.Provide(ProvideRouter),
		fx.Invoke(StartServer),
	)

	app.Run()
}

func StartServer(lc fx.Lifecycle, cfg *config.Config, engine *gin.Engine, logger *zap.Logger) {
	srv := &http.Server{
		Addr:              ":" + cfg.Port,
		Handler:           middleware.CORS(engine),
		ReadHeaderTimeout: 10 * time.Second,
	}

	lc.Append(fx.Hook{
		OnStart: func(ctx context.Context) error {
			ln, err := net.Listen("tcp", srv.Addr)
			if err != nil {
				return err
			}
			logger.Info("starting HTTP server", zap.String("addr", srv.Addr))
			go func() {
				if err := srv.Serve(ln); err != nil && !errors.Is(err, http.ErrServerClosed) {
					logger.Fatal("failed to start server", zap.Error(err))
				}
			}()
			return nil
		},
		OnStop: func(ctx context.Context) error {
			logger.Info("stopping HTTP server")
			return srv.Shutdown(ctx)
		},
	})
}

func ProvideRouter(
	logger *zap.Logger,
	placesController *controllers.PlacesController,
	recommendationController *controllers.RecommendationController,
	itineraryController *controllers.ItineraryController,
	weatherController *controllers.WeatherController,
	indexController *controllers.IndexController) *gin.Engine {

	gin.SetMode(gin.ReleaseMode)
	r := gin.New()
	r.Use(middleware.TraceIDMiddleware())
	r.Use(middleware.ZapLoggerMiddleware(logger))
	r.Use(gin.Recovery())

	r.GET("/healthz", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})
	r.GET("/metrics", gin.WrapH(promhttp.Handler()))

	controllers.RegisterRoutes(r, placesController, recommendationController, itineraryController, weatherController, indexController)

	return r
}
