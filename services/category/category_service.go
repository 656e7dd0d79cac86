// Package category manages the award rule configuration. Categories are
// seeded, append-only configuration: they can be listed and added, never
// edited, since historical awards reference them.
package category

import (
	"context"

	"prestigeapi/models"
	"prestigeapi/pkg/errs"
	"prestigeapi/pkg/logger"
	"prestigeapi/repository"
	"prestigeapi/services/award"
	"prestigeapi/services/hub"
	"prestigeapi/utils"
)

// Service provides category listing and guarded creation.
type Service interface {
	List(ctx context.Context) ([]models.Category, error)
	Create(ctx context.Context, auth hub.Authority, category *models.Category, actorID int64) (*models.Category, error)
}

type service struct {
	categories repository.CategoryRepository
}

// NewService creates a category service instance.
func NewService(categories repository.CategoryRepository) Service {
	return &service{categories: categories}
}

func (s *service) List(ctx context.Context) ([]models.Category, error) {
	categories, err := s.categories.List()
	if err != nil {
		return nil, errs.Dependency("category listing failed", err)
	}
	return categories, nil
}

// Create adds a category. Only national-level award officers may change the
// rule configuration.
func (s *service) Create(ctx context.Context, auth hub.Authority, category *models.Category, actorID int64) (*models.Category, error) {
	if err := utils.ValidateStruct(category); err != nil {
		return nil, errs.Validationf("invalid category: %v", err)
	}
	if category.End != nil && !category.End.After(category.Start) {
		return nil, errs.Validationf("invalid category: end must be after start")
	}

	role := award.Prestige.Role(award.CapAward, "national")
	check, err := auth.HasOverOrgUnit(ctx, 1, role)
	if err != nil {
		return nil, err
	}
	if !check.Granted {
		return nil, errs.Authorizationf("missing role %s", role)
	}

	if err := s.categories.Create(category); err != nil {
		return nil, errs.Dependency("category create failed", err)
	}
	logger.Infof("Created category %d (%s) by actor %d", category.ID, category.Name, actorID)
	return category, nil
}
