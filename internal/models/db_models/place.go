package db_models

import "github.com/lib/pq"

// Place is one row of the points-of-interest table seeded from the places CSV.
type Place struct {
	BaseModel
	Name      string         `gorm:"not null;uniqueIndex:idx_place_name_address"`
	Address   string         `gorm:"uniqueIndex:idx_place_name_address"`
	Tags      pq.StringArray `gorm:"type:text[]"`
	Rating    *float64
	Latitude  float64
	Longitude float64
}
