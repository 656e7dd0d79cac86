package repository

import (
	"gorm.io/gorm"
)

// BaseRepository provides transaction management for multi-write operations.
// An award write and its audit append share one transaction so a visible
// status change is never persisted without its audit record.
type BaseRepository interface {
	Transaction(fn func(tx *gorm.DB) error) error
}

type baseRepository struct {
	db *gorm.DB
}

// NewBaseRepository creates a new base repository instance.
func NewBaseRepository(db *gorm.DB) BaseRepository {
	return &baseRepository{db: db}
}

func (r *baseRepository) Transaction(fn func(tx *gorm.DB) error) error {
	return r.db.Transaction(fn)
}
