package places_fx

import (
	"errors"

	"go.uber.org/fx"
	"go.uber.org/zap"
	"gorm.io/gorm"
	"yourmyth/internal/config"
	"yourmyth/internal/repositories"
	"yourmyth/internal/services"
)

var Module = fx.Provide(
	providePlaceRepo, providePlaceService)

// providePlaceRepo returns a nil repository when the CSV cannot be read so the
// server still starts and the place endpoints report the missing dataset.
func providePlaceRepo(cfg *config.Config, db *gorm.DB, logger *zap.Logger) (repositories.PlaceRepository, error) {
	if cfg.PlacesSource == "postgres" {
		if db == nil {
			return nil, errors.New("PLACES_SOURCE=postgres needs POSTGRES_URL")
		}
		return repositories.NewPlaceRepository(db), nil
	}

	repo, err := repositories.NewCSVPlaceRepository(cfg.PlacesCSV, logger)
	if err != nil {
		logger.Error("places dataset not loaded", zap.String("path", cfg.PlacesCSV), zap.Error(err))
		return nil, nil
	}
	return repo, nil
}

func providePlaceService(repo repositories.PlaceRepository, logger *zap.Logger) services.PlaceServiceInterface {
	return services.NewPlaceService(repo, logger)
}
