// Command seed loads the places CSV into Postgres and builds the vector index.
package main

import (
	"context"
	"flag"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/joho/godotenv"
	"go.uber.org/zap"
	"yourmyth/cmd/fx/llm_fx"
	"yourmyth/internal/config"
	"yourmyth/internal/infra"
	"yourmyth/internal/models/db_models"
	"yourmyth/internal/repositories"
	"yourmyth/internal/services"
	"yourmyth/pkg/logger"
	mem "yourmyth/pkg/memcache"
)

func main() {
	_ = godotenv.Load()

	csvPath := flag.String("csv", "", "places CSV (defaults to PLACES_CSV)")
	skipEmbeddings := flag.Bool("skip-embeddings", false, "only load the places table")
	flag.Parse()

	cfg, err := config.LoadConfig()
	if err != nil {
		panic(err)
	}
	log, err := logger.New(cfg.LogLevel)
	if err != nil {
		panic(err)
	}
	defer func() { _ = log.Sync() }()

	if *csvPath == "" {
		*csvPath = cfg.PlacesCSV
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := run(ctx, cfg, *csvPath, *skipEmbeddings, log); err != nil {
		log.Fatal("seed failed", zap.Error(err))
	}
}

func run(ctx context.Context, cfg *config.Config, csvPath string, skipEmbeddings bool, log *zap.Logger) error {
	db, err := infra.InitPostgresql(cfg, log)
	if err != nil {
		return err
	}
	defer infra.ClosePostgresql(db, log)

	if err := infra.Migrate(ctx, db); err != nil {
		return err
	}

	places, err := repositories.LoadPlacesCSV(csvPath, log)
	if err != nil {
		return err
	}

	rows := make([]db_models.Place, 0, len(places))
	for _, p := range places {
		rows = append(rows, db_models.Place{
			Name:      p.Name,
			Address:   p.Address,
			Tags:      p.Tags,
			Rating:    p.Rating,
			Latitude:  p.Latitude,
			Longitude: p.Longitude,
		})
	}

	store := repositories.NewPlaceRepository(db)
	if err := store.UpsertPlaces(ctx, rows); err != nil {
		return err
	}
	log.Info("places stored", zap.Int("rows", len(rows)))

	if skipEmbeddings {
		return nil
	}

	embeddings, err := llm_fx.ProvideEmbeddingClient(nil, cfg, mem.NewLocalMemoStore(time.Hour, 10*time.Minute), log)
	if err != nil {
		return err
	}

	indexer := services.NewEmbededService(store, repositories.NewPlaceEmbeddingRepository(db), embeddings, log)
	start := time.Now()
	n, err := indexer.IndexPlaces(ctx)
	if err != nil {
		return err
	}
	log.Info("vector index built", zap.Int("documents", n), zap.Duration("took", time.Since(start)))
	return nil
}
