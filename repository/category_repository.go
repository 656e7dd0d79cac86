package repository

import (
	"time"

	"prestigeapi/models"

	"gorm.io/gorm"
)

// CategoryRepository provides data access for award categories.
type CategoryRepository interface {
	// FindActive resolves a category by ID constrained to being active on
	// the given date: start < date and (end is null or end >= date).
	FindActive(tx *gorm.DB, id int64, onDate time.Time) (*models.Category, error)
	List() ([]models.Category, error)
	Create(category *models.Category) error
}

type categoryRepository struct {
	db *gorm.DB
}

// NewCategoryRepository creates a new category repository instance.
func NewCategoryRepository(db *gorm.DB) CategoryRepository {
	return &categoryRepository{db: db}
}

func (r *categoryRepository) FindActive(tx *gorm.DB, id int64, onDate time.Time) (*models.Category, error) {
	db := tx
	if db == nil {
		db = r.db
	}
	var category models.Category
	err := db.Model(models.Category{}).
		Where("id = ?", id).
		Where("start < ?", onDate).
		Where("`end` IS NULL OR `end` >= ?", onDate).
		First(&category).Error
	if err != nil {
		return nil, err
	}
	return &category, nil
}

func (r *categoryRepository) List() ([]models.Category, error) {
	var categories []models.Category
	if err := r.db.Model(models.Category{}).Order("id").Find(&categories).Error; err != nil {
		return nil, err
	}
	return categories, nil
}

func (r *categoryRepository) Create(category *models.Category) error {
	return r.db.Create(category).Error
}
