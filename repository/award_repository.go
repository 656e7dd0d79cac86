package repository

import (
	"time"

	"prestigeapi/models"

	"gorm.io/gorm"
)

// AwardFilter carries the query constraints built by the query service.
// Zero values mean "no constraint" for the corresponding column.
type AwardFilter struct {
	Status      string
	User        int64
	Category    int64
	Source      string // substring match
	Description string // substring match
	Awarder     int64
	Nominate    int64
	DateBefore  *time.Time
	DateAfter   *time.Time
}

// AwardRepository provides data access for award records. Reads always
// attach the resolved category.
type AwardRepository interface {
	Create(tx *gorm.DB, award *models.Award) error
	Update(tx *gorm.DB, award *models.Award) error
	GetByID(tx *gorm.DB, id int64) (*models.Award, error)
	List(filter AwardFilter, limit, offset int) ([]models.Award, error)
}

type awardRepository struct {
	db *gorm.DB
}

// NewAwardRepository creates a new award repository instance.
func NewAwardRepository(db *gorm.DB) AwardRepository {
	return &awardRepository{db: db}
}

func (r *awardRepository) Create(tx *gorm.DB, award *models.Award) error {
	db := tx
	if db == nil {
		db = r.db
	}
	return db.Create(award).Error
}

func (r *awardRepository) Update(tx *gorm.DB, award *models.Award) error {
	db := tx
	if db == nil {
		db = r.db
	}
	return db.Save(award).Error
}

func (r *awardRepository) GetByID(tx *gorm.DB, id int64) (*models.Award, error) {
	db := tx
	if db == nil {
		db = r.db
	}
	var award models.Award
	if err := db.Preload("Category").Where("id = ?", id).First(&award).Error; err != nil {
		return nil, err
	}
	return &award, nil
}

func (r *awardRepository) List(filter AwardFilter, limit, offset int) ([]models.Award, error) {
	q := r.db.Model(models.Award{}).Preload("Category")

	if filter.Status != "" {
		q = q.Where("status = ?", filter.Status)
	}
	if filter.User != 0 {
		q = q.Where("user = ?", filter.User)
	}
	if filter.Category != 0 {
		q = q.Where("categoryId = ?", filter.Category)
	}
	if filter.Source != "" {
		q = q.Where("source LIKE ?", "%"+filter.Source+"%")
	}
	if filter.Description != "" {
		q = q.Where("description LIKE ?", "%"+filter.Description+"%")
	}
	if filter.Awarder != 0 {
		q = q.Where("awarder = ?", filter.Awarder)
	}
	if filter.Nominate != 0 {
		q = q.Where("nominate = ?", filter.Nominate)
	}
	if filter.DateBefore != nil {
		q = q.Where("date < ?", *filter.DateBefore)
	}
	if filter.DateAfter != nil {
		q = q.Where("date >= ?", *filter.DateAfter)
	}

	var awards []models.Award
	if err := q.Order("date DESC").Limit(limit).Offset(offset).Find(&awards).Error; err != nil {
		return nil, err
	}
	return awards, nil
}
