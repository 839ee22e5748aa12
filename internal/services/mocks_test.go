package services

import (
	"context"

	"github.com/pgvector/pgvector-go"
	"github.com/stretchr/testify/mock"
	"yourmyth/internal/models/db_models"
	"yourmyth/internal/models/response_models"
	"yourmyth/pkg/utils"
)

// --- Mocks for Dependencies ---

type MockPlaceRepository struct {
	mock.Mock
}

func (m *MockPlaceRepository) ListPlaces(ctx context.Context) ([]response_models.Place, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]response_models.Place), args.Error(1)
}

type MockCompletionClient struct {
	mock.Mock
}

func (m *MockCompletionClient) Complete(ctx context.Context, prompt string, opts utils.CompletionOptions) (string, error) {
	args := m.Called(ctx, prompt, opts)
	return args.String(0), args.Error(1)
}

type MockEmbeddingClient struct {
	mock.Mock
}

func (m *MockEmbeddingClient) GetEmbedding(ctx context.Context, text string) (pgvector.Vector, error) {
	args := m.Called(ctx, text)
	return args.Get(0).(pgvector.Vector), args.Error(1)
}

func (m *MockEmbeddingClient) GetEmbeddings(ctx context.Context, texts []string) ([]pgvector.Vector, error) {
	args := m.Called(ctx, texts)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]pgvector.Vector), args.Error(1)
}

type MockPlaceEmbeddingRepository struct {
	mock.Mock
}

func (m *MockPlaceEmbeddingRepository) SearchByVector(ctx context.Context, vector pgvector.Vector, topK int) ([]db_models.PlaceEmbedding, error) {
	args := m.Called(ctx, vector, topK)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]db_models.PlaceEmbedding), args.Error(1)
}

func (m *MockPlaceEmbeddingRepository) UpsertEmbedding(ctx context.Context, embedding db_models.PlaceEmbedding) error {
	return m.Called(ctx, embedding).Error(0)
}

func (m *MockPlaceEmbeddingRepository) CountEmbeddings(ctx context.Context) (int64, error) {
	args := m.Called(ctx)
	return args.Get(0).(int64), args.Error(1)
}

type MockGeocoder struct {
	mock.Mock
}

func (m *MockGeocoder) Geocode(ctx context.Context, name string) (response_models.Coordinates, error) {
	args := m.Called(ctx, name)
	return args.Get(0).(response_models.Coordinates), args.Error(1)
}

func (m *MockGeocoder) GeocodeAll(ctx context.Context, names []string) []response_models.GeocodedPlace {
	args := m.Called(ctx, names)
	return args.Get(0).([]response_models.GeocodedPlace)
}

type MockWeatherClient struct {
	mock.Mock
}

func (m *MockWeatherClient) CurrentWeather(ctx context.Context, at response_models.Coordinates) (response_models.WeatherConditions, error) {
	args := m.Called(ctx, at)
	return args.Get(0).(response_models.WeatherConditions), args.Error(1)
}

// wordCounter counts whitespace-separated words in place of a BPE encoding.
type wordCounter struct{}

func (wordCounter) Count(text string) int {
	n := 0
	inWord := false
	for _, r := range text {
		if r == ' ' || r == '\n' || r == '\t' {
			inWord = false
			continue
		}
		if !inWord {
			n++
			inWord = true
		}
	}
	return n
}
