package db_models

import (
	"time"

	"github.com/lib/pq"
	"github.com/pgvector/pgvector-go"
)

type PlaceEmbedding struct {
	PlaceID   string `gorm:"primaryKey;column:place_id"`
	Name      string
	Content   string
	Tags      pq.StringArray  `gorm:"type:text[]"`
	Embedding pgvector.Vector `gorm:"type:vector"`
	CreatedAt time.Time       `gorm:"autoCreateTime"`

	// Populated by similarity queries only.
	Similarity float64 `gorm:"->;-:migration"`
}
