package services

import (
	"context"
	"fmt"
	"sort"

	"go.uber.org/zap"
	"yourmyth/internal/models/request_models"
	"yourmyth/internal/models/response_models"
	"yourmyth/internal/repositories"
	"yourmyth/pkg/utils"
)

// DefaultTripDays is used when a request leaves the duration out.
const DefaultTripDays = 5

// Activities offered by the JSON itinerary flow.
var Activities = []string{"coffee", "museum", "beach", "temple", "dinner", "shopping", "church", "restaurant", "bar", "mountain", "walk"}

// Countries supported by the recommendation flow, with example destinations.
var Countries = []response_models.Country{
	{Name: "Denmark", Destinations: []string{}},
	{Name: "Spain", Destinations: []string{"Barcelona", "Malaga", "Bilbao", "Tenerife", "Valencia", "Madrid", "Ibiza", "Majorca", "Menorca", "Lanzarote", "La Palma", "La Gomera", "El Hierro"}},
	{Name: "Italy", Destinations: []string{"Palermo", "Catania", "Taormina", "Syracuse", "Agrigento", "Ragusa", "Cefalù", "Aeolian Islands", "Lipari", "Stromboli", "Favignana", "Trapani", "Marsala", "Erice", "Noto", "Modica", "Messina", "Etna", "Naples"}},
	{Name: "Greece", Destinations: []string{"Amorgos", "Rhodes", "Santorini", "Agathonisi", "Chalki", "Leros", "Ikaria", "Samothrace", "Thasos", "Agios Nikolaos", "Skiathos", "Zakynthos", "Corfu", "Nafplio", "Spetses", "Kilkis", "Prespes", "Lefkada", "Volos", "Mani", "Elafonisos", "Kythera"}},
}

type PlaceServiceInterface interface {
	ListPlaces(ctx context.Context) ([]response_models.Place, error)
	ListFilters(ctx context.Context) ([]string, error)
	ListActivities() []string
	ListCountries() []response_models.Country
	Select(ctx context.Context, req request_models.SelectPlacesRequest) (response_models.SelectionResponse, error)
}

type PlaceService struct {
	placeRepo repositories.PlaceRepository
	logger    *zap.Logger
}

func NewPlaceService(placeRepo repositories.PlaceRepository, logger *zap.Logger) PlaceServiceInterface {
	return &PlaceService{
		placeRepo: placeRepo,
		logger:    logger,
	}
}

func (s *PlaceService) ListPlaces(ctx context.Context) ([]response_models.Place, error) {
	if s.placeRepo == nil {
		return nil, utils.ErrDatasetNotLoaded
	}
	places, err := s.placeRepo.ListPlaces(ctx)
	if err != nil {
		s.logger.Error("list places failed", zap.Error(err))
		return nil, fmt.Errorf("%w: %v", utils.ErrDatabaseError, err)
	}
	return places, nil
}

func (s *PlaceService) ListFilters(ctx context.Context) ([]string, error) {
	places, err := s.ListPlaces(ctx)
	if err != nil {
		return nil, err
	}
	return ExtractUniqueFilters(places), nil
}

func (s *PlaceService) ListActivities() []string {
	return append([]string(nil), Activities...)
}

func (s *PlaceService) ListCountries() []response_models.Country {
	return append([]response_models.Country(nil), Countries...)
}

func (s *PlaceService) Select(ctx context.Context, req request_models.SelectPlacesRequest) (response_models.SelectionResponse, error) {
	duration, err := normalizeDuration(req.Duration)
	if err != nil {
		return response_models.SelectionResponse{}, err
	}
	if len(req.Tags) == 0 {
		return response_models.SelectionResponse{}, fmt.Errorf("%w: at least one tag is required", utils.ErrInvalidInput)
	}

	places, err := s.ListPlaces(ctx)
	if err != nil {
		return response_models.SelectionResponse{}, err
	}

	selected := SelectPlaces(places, req.Location, req.Tags, duration)
	view, _ := MapViewFromPlaces(selected)
	return response_models.SelectionResponse{Places: selected, Map: view}, nil
}

// ExtractUniqueFilters returns every tag used in the dataset, sorted.
func ExtractUniqueFilters(places []response_models.Place) []string {
	seen := make(map[string]struct{})
	for _, p := range places {
		for _, t := range p.Tags {
			seen[t] = struct{}{}
		}
	}

	filters := make([]string, 0, len(seen))
	for t := range seen {
		filters = append(filters, t)
	}
	sort.Strings(filters)
	return filters
}

func normalizeDuration(d int) (int, error) {
	switch {
	case d == 0:
		return DefaultTripDays, nil
	case d < 0:
		return 0, fmt.Errorf("%w: duration must be at least 1 day", utils.ErrInvalidInput)
	default:
		return d, nil
	}
}
