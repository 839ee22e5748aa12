package repositories

import (
	"context"
	"errors"

	"github.com/pgvector/pgvector-go"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
	"yourmyth/internal/models/db_models"
)

// IPlaceEmbeddingRepository is the vector index over place descriptions.
type IPlaceEmbeddingRepository interface {
	SearchByVector(ctx context.Context, vector pgvector.Vector, topK int) ([]db_models.PlaceEmbedding, error)
	UpsertEmbedding(ctx context.Context, embedding db_models.PlaceEmbedding) error
	CountEmbeddings(ctx context.Context) (int64, error)
}

type PlaceEmbeddingRepository struct {
	db *gorm.DB
}

var errNoVectorIndex = errors.New("vector index unavailable: no database configured")

// NewPlaceEmbeddingRepository falls back to an index that fails every call when db is nil.
func NewPlaceEmbeddingRepository(db *gorm.DB) IPlaceEmbeddingRepository {
	if db == nil {
		return unavailableEmbeddingRepository{}
	}
	return &PlaceEmbeddingRepository{
		db: db,
	}
}

func (p *PlaceEmbeddingRepository) SearchByVector(ctx context.Context, vector pgvector.Vector, topK int) ([]db_models.PlaceEmbedding, error) {
	if topK <= 0 {
		topK = 5
	}

	var results []db_models.PlaceEmbedding
	query := `
        SELECT place_id, name, content, tags, embedding, created_at,
               (1 - (embedding <=> ?)) AS similarity
        FROM place_embeddings
        ORDER BY embedding <=> ?  -- cosine distance, closer to 0 is better
        LIMIT ?
    `

	err := p.db.WithContext(ctx).Raw(query, vector, vector, topK).Scan(&results).Error
	if err != nil {
		return nil, err
	}
	return results, nil
}

func (p *PlaceEmbeddingRepository) UpsertEmbedding(ctx context.Context, embedding db_models.PlaceEmbedding) error {
	return p.db.WithContext(ctx).Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "place_id"}},
		DoUpdates: clause.AssignmentColumns([]string{"name", "content", "tags", "embedding"}),
	}).Create(&embedding).Error
}

func (p *PlaceEmbeddingRepository) CountEmbeddings(ctx context.Context) (int64, error) {
	var n int64
	err := p.db.WithContext(ctx).Model(&db_models.PlaceEmbedding{}).Count(&n).Error
	return n, err
}

type unavailableEmbeddingRepository struct{}

func (unavailableEmbeddingRepository) SearchByVector(context.Context, pgvector.Vector, int) ([]db_models.PlaceEmbedding, error) {
	return nil, errNoVectorIndex
}

func (unavailableEmbeddingRepository) UpsertEmbedding(context.Context, db_models.PlaceEmbedding) error {
	return errNoVectorIndex
}

func (unavailableEmbeddingRepository) CountEmbeddings(context.Context) (int64, error) {
	return 0, errNoVectorIndex
}
