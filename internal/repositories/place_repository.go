package repositories

import (
	"context"
	"errors"
	"fmt"

	"go.uber.org/zap"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
	"yourmyth/internal/models/db_models"
	"yourmyth/internal/models/response_models"
)

// PlaceRepository serves the read-only places dataset.
type PlaceRepository interface {
	ListPlaces(ctx context.Context) ([]response_models.Place, error)
}

// csvPlaceRepository holds the dataset loaded once at startup. Callers must not mutate it.
type csvPlaceRepository struct {
	places []response_models.Place
}

func NewCSVPlaceRepository(path string, logger *zap.Logger) (PlaceRepository, error) {
	places, err := LoadPlacesCSV(path, logger)
	if err != nil {
		return nil, err
	}
	logger.Info("places dataset loaded", zap.String("path", path), zap.Int("rows", len(places)))
	return &csvPlaceRepository{places: places}, nil
}

// NewStaticPlaceRepository wraps an in-memory dataset.
func NewStaticPlaceRepository(places []response_models.Place) PlaceRepository {
	return &csvPlaceRepository{places: places}
}

func (r *csvPlaceRepository) ListPlaces(ctx context.Context) ([]response_models.Place, error) {
	return r.places, nil
}

type PlaceStore interface {
	PlaceRepository
	UpsertPlaces(ctx context.Context, places []db_models.Place) error
	ListPlaceRows(ctx context.Context) ([]db_models.Place, error)
}

type placeRepository struct {
	db *gorm.DB
}

var errNoDatabase = errors.New("places table unavailable: no database configured")

// NewPlaceRepository falls back to a store that fails every call when db is nil.
func NewPlaceRepository(db *gorm.DB) PlaceStore {
	if db == nil {
		return unavailablePlaceStore{}
	}
	return &placeRepository{db: db}
}

type unavailablePlaceStore struct{}

func (unavailablePlaceStore) ListPlaces(context.Context) ([]response_models.Place, error) {
	return nil, errNoDatabase
}

func (unavailablePlaceStore) UpsertPlaces(context.Context, []db_models.Place) error {
	return errNoDatabase
}

func (unavailablePlaceStore) ListPlaceRows(context.Context) ([]db_models.Place, error) {
	return nil, errNoDatabase
}

func (r *placeRepository) ListPlaceRows(ctx context.Context) ([]db_models.Place, error) {
	var rows []db_models.Place
	if err := r.db.WithContext(ctx).Order("created_at, name").Find(&rows).Error; err != nil {
		return nil, err
	}
	return rows, nil
}

func (r *placeRepository) ListPlaces(ctx context.Context) ([]response_models.Place, error) {
	rows, err := r.ListPlaceRows(ctx)
	if err != nil {
		return nil, err
	}

	places := make([]response_models.Place, 0, len(rows))
	for _, row := range rows {
		places = append(places, ToPlaceResponse(row))
	}
	return places, nil
}

func (r *placeRepository) UpsertPlaces(ctx context.Context, places []db_models.Place) error {
	if len(places) == 0 {
		return nil
	}
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		err := tx.Clauses(clause.OnConflict{
			Columns:   []clause.Column{{Name: "name"}, {Name: "address"}},
			DoUpdates: clause.AssignmentColumns([]string{"tags", "rating", "latitude", "longitude", "updated_at"}),
		}).CreateInBatches(&places, 100).Error
		if err != nil {
			return fmt.Errorf("upsert places: %w", err)
		}
		return nil
	})
}

func ToPlaceResponse(p db_models.Place) response_models.Place {
	tags := []string(p.Tags)
	if tags == nil {
		tags = []string{}
	}
	return response_models.Place{
		Name:      p.Name,
		Address:   p.Address,
		Tags:      tags,
		Rating:    p.Rating,
		Latitude:  p.Latitude,
		Longitude: p.Longitude,
	}
}
