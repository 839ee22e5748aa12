package services

import (
	"context"
	"errors"
	"testing"

	"github.com/google/uuid"
	"github.com/lib/pq"
	"github.com/pgvector/pgvector-go"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"yourmyth/internal/models/db_models"
	"yourmyth/internal/models/response_models"
	"yourmyth/pkg/utils"
)

type fakePlaceStore struct {
	rows []db_models.Place
	err  error
}

func (f *fakePlaceStore) ListPlaces(ctx context.Context) ([]response_models.Place, error) {
	return nil, nil
}

func (f *fakePlaceStore) UpsertPlaces(ctx context.Context, places []db_models.Place) error {
	return nil
}

func (f *fakePlaceStore) ListPlaceRows(ctx context.Context) ([]db_models.Place, error) {
	return f.rows, f.err
}

func TestPlaceDocument(t *testing.T) {
	r := 4.8
	doc := PlaceDocument(db_models.Place{Name: "Rhodes Old Town", Address: "Rhodes 851 00, Greece", Tags: pq.StringArray{"museum", "church"}, Rating: &r})
	assert.Equal(t, "Rhodes Old Town: Rhodes 851 00, Greece. Good for: museum, church. Rated 4.8.", doc)

	assert.Equal(t, "X: Y.", PlaceDocument(db_models.Place{Name: "X", Address: "Y"}))
}

func TestEmbededService_IndexPlaces(t *testing.T) {
	ctx := context.Background()
	rows := make([]db_models.Place, 0, 3)
	for _, name := range []string{"A", "B", "C"} {
		p := db_models.Place{Name: name, Address: "Rhodes", Tags: pq.StringArray{"beach"}}
		p.ID = uuid.New()
		rows = append(rows, p)
	}

	emb := new(MockEmbeddingClient)
	emb.On("GetEmbeddings", ctx, []string{"A: Rhodes. Good for: beach.", "B: Rhodes. Good for: beach."}).
		Return([]pgvector.Vector{pgvector.NewVector([]float32{1}), pgvector.NewVector([]float32{2})}, nil).Once()
	emb.On("GetEmbeddings", ctx, []string{"C: Rhodes. Good for: beach."}).
		Return([]pgvector.Vector{pgvector.NewVector([]float32{3})}, nil).Once()

	index := new(MockPlaceEmbeddingRepository)
	index.On("UpsertEmbedding", ctx, mock.MatchedBy(func(e db_models.PlaceEmbedding) bool {
		return e.PlaceID == rows[0].ID.String() && e.Name == "A"
	})).Return(nil).Once()
	index.On("UpsertEmbedding", ctx, mock.Anything).Return(nil).Twice()

	svc := NewEmbededService(&fakePlaceStore{rows: rows}, index, emb, zap.NewNop()).(*EmbededService)
	svc.batchSize = 2

	n, err := svc.IndexPlaces(ctx)
	require.NoError(t, err)
	assert.Equal(t, 3, n)
	emb.AssertExpectations(t)
	index.AssertExpectations(t)
}

func TestEmbededService_IndexPlaces_Errors(t *testing.T) {
	ctx := context.Background()

	svc := NewEmbededService(&fakePlaceStore{err: errors.New("down")}, nil, nil, zap.NewNop())
	_, err := svc.IndexPlaces(ctx)
	assert.ErrorIs(t, err, utils.ErrDatabaseError)

	p := db_models.Place{Name: "A", Address: "Rhodes"}
	p.ID = uuid.New()
	emb := new(MockEmbeddingClient)
	emb.On("GetEmbeddings", ctx, mock.Anything).Return(nil, utils.ErrMissingCredential)
	svc = NewEmbededService(&fakePlaceStore{rows: []db_models.Place{p}}, new(MockPlaceEmbeddingRepository), emb, zap.NewNop())
	n, err := svc.IndexPlaces(ctx)
	assert.ErrorIs(t, err, utils.ErrMissingCredential)
	assert.Equal(t, 0, n)
}

func TestEmbededService_CountIndexed(t *testing.T) {
	ctx := context.Background()
	index := new(MockPlaceEmbeddingRepository)
	index.On("CountEmbeddings", ctx).Return(int64(42), nil).Once()
	index.On("CountEmbeddings", ctx).Return(int64(0), errors.New("relation does not exist")).Once()

	svc := NewEmbededService(&fakePlaceStore{}, index, nil, zap.NewNop())

	n, err := svc.CountIndexed(ctx)
	require.NoError(t, err)
	assert.Equal(t, int64(42), n)

	_, err = svc.CountIndexed(ctx)
	assert.ErrorIs(t, err, utils.ErrDatabaseError)
	index.AssertExpectations(t)
}
