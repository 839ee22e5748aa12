package services

import (
	"context"
	"fmt"
	"strings"

	"go.uber.org/zap"
	"yourmyth/internal/models/db_models"
	"yourmyth/internal/repositories"
	"yourmyth/pkg/utils"
)

const defaultIndexBatch = 50

type EmbededServiceInterface interface {
	// IndexPlaces embeds every stored place and upserts it into the vector index.
	IndexPlaces(ctx context.Context) (int, error)
	CountIndexed(ctx context.Context) (int64, error)
}

type EmbededService struct {
	placeStore  repositories.PlaceStore
	embededRepo repositories.IPlaceEmbeddingRepository
	embeddings  utils.EmbeddingClientInterface
	batchSize   int
	logger      *zap.Logger
}

func NewEmbededService(
	placeStore repositories.PlaceStore,
	embededRepo repositories.IPlaceEmbeddingRepository,
	embeddings utils.EmbeddingClientInterface,
	logger *zap.Logger,
) EmbededServiceInterface {
	return &EmbededService{
		placeStore:  placeStore,
		embededRepo: embededRepo,
		embeddings:  embeddings,
		batchSize:   defaultIndexBatch,
		logger:      logger,
	}
}

func (e *EmbededService) IndexPlaces(ctx context.Context) (int, error) {
	rows, err := e.placeStore.ListPlaceRows(ctx)
	if err != nil {
		return 0, fmt.Errorf("%w: %v", utils.ErrDatabaseError, err)
	}

	indexed := 0
	for start := 0; start < len(rows); start += e.batchSize {
		end := start + e.batchSize
		if end > len(rows) {
			end = len(rows)
		}
		batch := rows[start:end]

		contents := make([]string, len(batch))
		for i, row := range batch {
			contents[i] = PlaceDocument(row)
		}

		vectors, err := e.embeddings.GetEmbeddings(ctx, contents)
		if err != nil {
			return indexed, err
		}

		for i, row := range batch {
			err := e.embededRepo.UpsertEmbedding(ctx, db_models.PlaceEmbedding{
				PlaceID:   row.ID.String(),
				Name:      row.Name,
				Content:   contents[i],
				Tags:      row.Tags,
				Embedding: vectors[i],
			})
			if err != nil {
				return indexed, fmt.Errorf("%w: upsert embedding for %s: %v", utils.ErrDatabaseError, row.Name, err)
			}
			indexed++
		}

		e.logger.Info("embedded places batch", zap.Int("done", indexed), zap.Int("total", len(rows)))
	}
	return indexed, nil
}

func (e *EmbededService) CountIndexed(ctx context.Context) (int64, error) {
	n, err := e.embededRepo.CountEmbeddings(ctx)
	if err != nil {
		return 0, fmt.Errorf("%w: count embeddings: %v", utils.ErrDatabaseError, err)
	}
	return n, nil
}

// PlaceDocument is the text stored and embedded for a place.
func PlaceDocument(p db_models.Place) string {
	var b strings.Builder
	fmt.Fprintf(&b, "%s: %s.", p.Name, p.Address)
	if len(p.Tags) > 0 {
		fmt.Fprintf(&b, " Good for: %s.", strings.Join(p.Tags, ", "))
	}
	if p.Rating != nil {
		fmt.Fprintf(&b, " Rated %s.", formatRating(p.Rating))
	}
	return b.String()
}
