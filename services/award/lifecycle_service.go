package award

import (
	"context"
	"encoding/json"
	"errors"

	"prestigeapi/models"
	"prestigeapi/pkg/errs"
	"prestigeapi/pkg/logger"
	"prestigeapi/repository"
	"prestigeapi/services/hub"

	"gorm.io/datatypes"
	"gorm.io/gorm"
)

// LifecycleService orchestrates state-changing award operations: validation,
// the Hub permission check, persistence, and audit emission. The award write
// and its audit append always share one transaction.
type LifecycleService interface {
	Create(ctx context.Context, auth hub.Authority, raw map[string]interface{}, actorID int64) (*models.Award, error)
	Update(ctx context.Context, auth hub.Authority, id int64, raw map[string]interface{}, actorID int64) (*models.Award, error)
	Delete(ctx context.Context, auth hub.Authority, id int64, actorID int64, note string) (*models.Award, error)
}

type lifecycleService struct {
	domain  Domain
	engine  *Engine
	base    repository.BaseRepository
	awards  repository.AwardRepository
	actions repository.ActionRepository
}

// NewLifecycleService creates a lifecycle service for the given domain.
func NewLifecycleService(
	domain Domain,
	engine *Engine,
	base repository.BaseRepository,
	awards repository.AwardRepository,
	actions repository.ActionRepository,
) LifecycleService {
	return &lifecycleService{
		domain:  domain,
		engine:  engine,
		base:    base,
		awards:  awards,
		actions: actions,
	}
}

func (s *lifecycleService) Create(ctx context.Context, auth hub.Authority, raw map[string]interface{}, actorID int64) (*models.Award, error) {
	draft, err := s.engine.Validate(ctx, raw, actorID)
	if err != nil {
		return nil, err
	}

	office, err := s.authorize(ctx, auth, draft, actorID)
	if err != nil {
		return nil, err
	}

	entry := draft.Award
	stampActor(&entry, actorID)

	err = s.base.Transaction(func(tx *gorm.DB) error {
		if err := s.awards.Create(tx, &entry); err != nil {
			return errs.Dependency("award create failed", err)
		}
		if entry.Status == models.StatusRequested {
			return nil
		}
		return s.appendAction(tx, &models.Action{
			AwardID: entry.ID,
			Action:  entry.Status,
			User:    actorID,
			Office:  office,
		})
	})
	if err != nil {
		return nil, err
	}

	logger.Infof("Created %s award %d for user %d (%s) by actor %d",
		s.domain.Name, entry.ID, entry.User, entry.Status, actorID)
	return s.awards.GetByID(nil, entry.ID)
}

func (s *lifecycleService) Update(ctx context.Context, auth hub.Authority, id int64, raw map[string]interface{}, actorID int64) (*models.Award, error) {
	existing, err := s.load(id)
	if err != nil {
		return nil, err
	}

	draft, err := s.engine.Validate(ctx, raw, actorID)
	if err != nil {
		return nil, err
	}

	// A member can rework their own pending request, but never touch an
	// award that has already been approved for them.
	if existing.User == actorID && existing.Status == models.StatusAwarded {
		return nil, errs.Authorizationf("cannot modify own approved award")
	}

	// Anyone else must act through a checked capability. An unchecked draft
	// here would let a non-owner rewrite the award as their own request.
	if existing.User != actorID && draft.Role == "" {
		return nil, errs.Authorizationf("cannot request another member's award")
	}

	office, err := s.authorize(ctx, auth, draft, actorID)
	if err != nil {
		return nil, err
	}

	previous, err := snapshot(existing)
	if err != nil {
		return nil, err
	}

	entry := draft.Award
	entry.ID = existing.ID
	stampActor(&entry, actorID)

	err = s.base.Transaction(func(tx *gorm.DB) error {
		if err := s.awards.Update(tx, &entry); err != nil {
			return errs.Dependency("award update failed", err)
		}
		if entry.Status == models.StatusRequested {
			return nil
		}
		return s.appendAction(tx, &models.Action{
			AwardID:  entry.ID,
			Action:   entry.Status,
			User:     actorID,
			Office:   office,
			Previous: previous,
		})
	})
	if err != nil {
		return nil, err
	}

	logger.Infof("Updated %s award %d (%s) by actor %d", s.domain.Name, entry.ID, entry.Status, actorID)
	return s.awards.GetByID(nil, entry.ID)
}

func (s *lifecycleService) Delete(ctx context.Context, auth hub.Authority, id int64, actorID int64, note string) (*models.Award, error) {
	existing, err := s.load(id)
	if err != nil {
		return nil, err
	}

	// Members may withdraw their own not-yet-approved awards without a
	// check; everything else needs the remove capability over the owner,
	// and the check must name at least one granting office for the audit.
	var office int64
	if existing.User != actorID || existing.Status == models.StatusAwarded {
		role := s.domain.Role(CapRemove, s.levelOf(existing))
		check, err := auth.HasOverUser(ctx, existing.User, role)
		if err != nil {
			return nil, err
		}
		if !check.Granted {
			return nil, errs.Authorizationf("missing role %s", role)
		}
		if len(check.Offices) == 0 {
			return nil, errs.Authorizationf("no granting office found")
		}
		office = check.Offices[0].ID
	}

	previous, err := snapshot(existing)
	if err != nil {
		return nil, err
	}

	existing.Status = models.StatusRemoved
	err = s.base.Transaction(func(tx *gorm.DB) error {
		if err := s.awards.Update(tx, existing); err != nil {
			return errs.Dependency("award removal failed", err)
		}
		return s.appendAction(tx, &models.Action{
			AwardID:  existing.ID,
			Action:   models.StatusRemoved,
			User:     actorID,
			Office:   office,
			Note:     note,
			Previous: previous,
		})
	})
	if err != nil {
		return nil, err
	}

	logger.Infof("Removed %s award %d by actor %d", s.domain.Name, existing.ID, actorID)
	return existing, nil
}

// load fetches an award, mapping a missing row to a not-found error and an
// already-removed row to a request conflict.
func (s *lifecycleService) load(id int64) (*models.Award, error) {
	existing, err := s.awards.GetByID(nil, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errs.NotFoundf("award %d not found", id)
		}
		return nil, errs.Dependency("award lookup failed", err)
	}
	if existing.Status == models.StatusRemoved {
		return nil, errs.Validationf("award already removed")
	}
	return existing, nil
}

// authorize runs the Hub check a draft requires, returning the granting
// office for audit attribution. Self-requests need no check.
func (s *lifecycleService) authorize(ctx context.Context, auth hub.Authority, draft *Draft, actorID int64) (int64, error) {
	if draft.Role == "" {
		return 0, nil
	}
	check, err := auth.HasOverUser(ctx, draft.Award.User, draft.Role)
	if err != nil {
		return 0, err
	}
	if !check.Granted {
		logger.Warnf("Actor %d denied role %s over user %d", actorID, draft.Role, draft.Award.User)
		return 0, errs.Authorizationf("missing role %s", draft.Role)
	}
	if len(check.Offices) > 0 {
		return check.Offices[0].ID, nil
	}
	return 0, nil
}

func (s *lifecycleService) appendAction(tx *gorm.DB, action *models.Action) error {
	if err := s.actions.Append(tx, action); err != nil {
		return errs.Dependency("audit append failed", err)
	}
	return nil
}

// levelOf resolves the level an award concerns, falling back to its amounts
// for rows written before the level column existed.
func (s *lifecycleService) levelOf(a *models.Award) string {
	if a.Level != "" {
		return a.Level
	}
	for _, level := range s.domain.Levels {
		if a.Amount(level) != 0 {
			return level
		}
	}
	return ""
}

func stampActor(a *models.Award, actorID int64) {
	switch a.Status {
	case models.StatusNominated:
		a.Nominate = actorID
	case models.StatusAwarded:
		a.Awarder = actorID
	}
}

func snapshot(a *models.Award) (datatypes.JSON, error) {
	previous, err := json.Marshal(a)
	if err != nil {
		return nil, errs.Dependency("award snapshot failed", err)
	}
	return datatypes.JSON(previous), nil
}
