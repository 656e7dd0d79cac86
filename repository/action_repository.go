package repository

import (
	"prestigeapi/models"

	"gorm.io/gorm"
)

// ActionRepository appends to and reads the award audit trail. Actions are
// append-only; there are no update or delete operations.
type ActionRepository interface {
	Append(tx *gorm.DB, action *models.Action) error
	ListByAward(awardID int64) ([]models.Action, error)
}

type actionRepository struct {
	db *gorm.DB
}

// NewActionRepository creates a new action repository instance.
func NewActionRepository(db *gorm.DB) ActionRepository {
	return &actionRepository{db: db}
}

func (r *actionRepository) Append(tx *gorm.DB, action *models.Action) error {
	db := tx
	if db == nil {
		db = r.db
	}
	return db.Create(action).Error
}

func (r *actionRepository) ListByAward(awardID int64) ([]models.Action, error) {
	var actions []models.Action
	if err := r.db.Model(models.Action{}).Where("awardId = ?", awardID).Order("id").Find(&actions).Error; err != nil {
		return nil, err
	}
	return actions, nil
}
