package embeddings_fx

import (
	"context"
	"time"

	"go.uber.org/fx"
	"go.uber.org/zap"
	"gorm.io/gorm"
	"yourmyth/internal/repositories"
	"yourmyth/internal/services"
	"yourmyth/pkg/utils"
)

const indexCheckTimeout = 5 * time.Second

var Module = fx.Options(
	fx.Provide(provideEmbededRepo, providePlaceStore, provideEmbededService),
	fx.Invoke(registerIndexCheck))

func provideEmbededRepo(db *gorm.DB) repositories.IPlaceEmbeddingRepository {
	return repositories.NewPlaceEmbeddingRepository(db)
}

func providePlaceStore(db *gorm.DB) repositories.PlaceStore {
	return repositories.NewPlaceRepository(db)
}

func provideEmbededService(
	store repositories.PlaceStore,
	embededRepo repositories.IPlaceEmbeddingRepository,
	embeddings utils.EmbeddingClientInterface,
	logger *zap.Logger,
) services.EmbededServiceInterface {
	return services.NewEmbededService(store, embededRepo, embeddings, logger)
}

// registerIndexCheck reports the vector index size on start. It never blocks startup.
func registerIndexCheck(lc fx.Lifecycle, indexer services.EmbededServiceInterface, logger *zap.Logger) {
	lc.Append(fx.Hook{
		OnStart: func(ctx context.Context) error {
			checkIndex(ctx, indexer, logger)
			return nil
		},
	})
}

func checkIndex(ctx context.Context, indexer services.EmbededServiceInterface, logger *zap.Logger) {
	ctx, cancel := context.WithTimeout(ctx, indexCheckTimeout)
	defer cancel()

	n, err := indexer.CountIndexed(ctx)
	switch {
	case err != nil:
		logger.Warn("vector index unavailable, recommendations will fail", zap.Error(err))
	case n == 0:
		logger.Warn("vector index is empty, run the seeder or POST /places/index")
	default:
		logger.Info("vector index ready", zap.Int64("documents", n))
	}
}
