package services

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"yourmyth/internal/models/request_models"
	"yourmyth/internal/repositories"
	"yourmyth/pkg/utils"
)

func TestExtractUniqueFilters(t *testing.T) {
	filters := ExtractUniqueFilters(samplePlaces())
	assert.Equal(t, []string{"bar", "beach", "church", "coffee", "museum", "temple"}, filters)
	assert.Empty(t, ExtractUniqueFilters(nil))
}

func TestPlaceService_Select(t *testing.T) {
	svc := NewPlaceService(repositories.NewStaticPlaceRepository(samplePlaces()), zap.NewNop())
	ctx := context.Background()

	t.Run("selects with map", func(t *testing.T) {
		resp, err := svc.Select(ctx, request_models.SelectPlacesRequest{Location: "Rhodes", Tags: []string{"museum", "beach"}, Duration: 1})
		require.NoError(t, err)
		assert.Equal(t, []string{"Rhodes Old Town", "Rhodes Beach"}, names(resp.Places))
		require.NotNil(t, resp.Map)
		assert.Equal(t, 36.4451, resp.Map.Center.Lat)
	})

	t.Run("default duration", func(t *testing.T) {
		resp, err := svc.Select(ctx, request_models.SelectPlacesRequest{Location: "Greece", Tags: []string{"museum", "beach", "coffee", "bar", "temple", "church"}})
		require.NoError(t, err)
		assert.Len(t, resp.Places, 7)
	})

	t.Run("no match has no map", func(t *testing.T) {
		resp, err := svc.Select(ctx, request_models.SelectPlacesRequest{Location: "Crete", Tags: []string{"beach"}, Duration: 2})
		require.NoError(t, err)
		assert.Empty(t, resp.Places)
		assert.Nil(t, resp.Map)
	})

	t.Run("invalid input", func(t *testing.T) {
		_, err := svc.Select(ctx, request_models.SelectPlacesRequest{Location: "Rhodes", Tags: []string{"beach"}, Duration: -1})
		assert.ErrorIs(t, err, utils.ErrInvalidInput)

		_, err = svc.Select(ctx, request_models.SelectPlacesRequest{Location: "Rhodes", Duration: 2})
		assert.ErrorIs(t, err, utils.ErrInvalidInput)
	})
}

func TestPlaceService_ListFilters_RepositoryError(t *testing.T) {
	repo := new(MockPlaceRepository)
	repo.On("ListPlaces", context.Background()).Return(nil, errors.New("connection reset"))

	svc := NewPlaceService(repo, zap.NewNop())
	_, err := svc.ListFilters(context.Background())
	assert.ErrorIs(t, err, utils.ErrDatabaseError)
	repo.AssertExpectations(t)
}

func TestPlaceService_Catalogues(t *testing.T) {
	svc := NewPlaceService(repositories.NewStaticPlaceRepository(nil), zap.NewNop())

	activities := svc.ListActivities()
	assert.Len(t, activities, 11)
	assert.Equal(t, "coffee", activities[0])
	activities[0] = "changed"
	assert.Equal(t, "coffee", svc.ListActivities()[0])

	var countries []string
	for _, c := range svc.ListCountries() {
		countries = append(countries, c.Name)
	}
	assert.Equal(t, []string{"Denmark", "Spain", "Italy", "Greece"}, countries)
	assert.Contains(t, svc.ListCountries()[3].Destinations, "Rhodes")

}
