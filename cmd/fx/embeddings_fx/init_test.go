package embeddings_fx

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"
	"yourmyth/internal/services"
)

type stubIndexer struct {
	count int64
	err   error
}

func (s stubIndexer) IndexPlaces(context.Context) (int, error) { return 0, nil }

func (s stubIndexer) CountIndexed(context.Context) (int64, error) { return s.count, s.err }

func TestCheckIndex(t *testing.T) {
	cases := []struct {
		name    string
		indexer services.EmbededServiceInterface
		level   zapcore.Level
		message string
	}{
		{"ready", stubIndexer{count: 12}, zapcore.InfoLevel, "vector index ready"},
		{"empty", stubIndexer{}, zapcore.WarnLevel, "vector index is empty, run the seeder or POST /places/index"},
		{"unavailable", stubIndexer{err: errors.New("no database")}, zapcore.WarnLevel, "vector index unavailable, recommendations will fail"},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			core, logs := observer.New(zapcore.DebugLevel)
			checkIndex(context.Background(), tc.indexer, zap.New(core))

			entries := logs.All()
			if assert.Len(t, entries, 1) {
				assert.Equal(t, tc.level, entries[0].Level)
				assert.Equal(t, tc.message, entries[0].Message)
			}
		})
	}
}

func TestProviders_NilDatabase(t *testing.T) {
	indexer := provideEmbededService(providePlaceStore(nil), provideEmbededRepo(nil), nil, zap.NewNop())

	_, err := indexer.IndexPlaces(context.Background())
	assert.Error(t, err)

	core, logs := observer.New(zapcore.DebugLevel)
	checkIndex(context.Background(), indexer, zap.New(core))
	assert.Equal(t, 1, logs.FilterMessage("vector index unavailable, recommendations will fail").Len())
}
