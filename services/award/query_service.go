package award

import (
	"context"
	"errors"
	"strconv"

	"prestigeapi/models"
	"prestigeapi/pkg/errs"
	"prestigeapi/repository"
	"prestigeapi/services/hub"

	"gorm.io/gorm"
)

// The root org unit; the scope checked for blanket view permission.
const rootOrgUnit = 1

// Listing bounds.
const (
	defaultListLimit = 20
	maxListLimit     = 100
)

// ListFilters carries raw caller-supplied listing filters. StatusAll
// disables the status constraint entirely.
type ListFilters struct {
	Status      string
	User        string // numeric or the self-marker
	Category    int64
	Source      string
	Description string
	Awarder     int64
	Nominate    int64
	DateBefore  string
	DateAfter   string
	Limit       int
	Offset      int
}

// StatusAll requests awards regardless of status.
const StatusAll = "all"

// QueryService translates listing filters into repository constraints and
// gates non-public views behind the Hub. Approved awards are public; anything
// else needs self-scope or the view role.
type QueryService interface {
	List(ctx context.Context, auth hub.Authority, filters ListFilters, actorID int64) ([]models.Award, error)
	ListMember(ctx context.Context, auth hub.Authority, member string, filters ListFilters, actorID int64) ([]models.Award, error)
	GetOne(ctx context.Context, auth hub.Authority, id int64, actorID int64) (*models.Award, error)
}

type queryService struct {
	domain Domain
	awards repository.AwardRepository
}

// NewQueryService creates a query service for the given domain.
func NewQueryService(domain Domain, awards repository.AwardRepository) QueryService {
	return &queryService{domain: domain, awards: awards}
}

func (s *queryService) List(ctx context.Context, auth hub.Authority, filters ListFilters, actorID int64) ([]models.Award, error) {
	if filters.Status == "" {
		filters.Status = models.StatusAwarded
	}

	if filters.Status != models.StatusAwarded && !s.selfScoped(filters, actorID) {
		check, err := auth.HasOverOrgUnit(ctx, rootOrgUnit, s.domain.ViewRole())
		if err != nil {
			return nil, err
		}
		if !check.Granted {
			return nil, errs.Authorizationf("missing role %s", s.domain.ViewRole())
		}
	}

	return s.fetch(filters, actorID)
}

func (s *queryService) ListMember(ctx context.Context, auth hub.Authority, member string, filters ListFilters, actorID int64) ([]models.Award, error) {
	memberID := actorID
	if member != SelfMarker {
		id, err := strconv.ParseInt(member, 10, 64)
		if err != nil {
			return nil, errs.Validationf("invalid user")
		}
		memberID = id
	}
	filters.User = strconv.FormatInt(memberID, 10)
	if filters.Status == "" {
		filters.Status = models.StatusAwarded
	}

	// Approved awards and one's own records are public to the caller;
	// anything else needs the view role over that member.
	if filters.Status != models.StatusAwarded && memberID != actorID {
		check, err := auth.HasOverUser(ctx, memberID, s.domain.ViewRole())
		if err != nil {
			return nil, err
		}
		if !check.Granted {
			return nil, errs.Authorizationf("missing role %s", s.domain.ViewRole())
		}
	}

	return s.fetch(filters, actorID)
}

func (s *queryService) GetOne(ctx context.Context, auth hub.Authority, id int64, actorID int64) (*models.Award, error) {
	entry, err := s.awards.GetByID(nil, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errs.NotFoundf("award %d not found", id)
		}
		return nil, errs.Dependency("award lookup failed", err)
	}

	if entry.Status == models.StatusAwarded || entry.User == actorID {
		return entry, nil
	}
	check, err := auth.HasOverUser(ctx, entry.User, s.domain.ViewRole())
	if err != nil {
		return nil, err
	}
	if !check.Granted {
		return nil, errs.Authorizationf("missing role %s", s.domain.ViewRole())
	}
	return entry, nil
}

// selfScoped reports whether the filters target only the caller's own awards.
func (s *queryService) selfScoped(filters ListFilters, actorID int64) bool {
	if filters.User == SelfMarker {
		return true
	}
	id, err := strconv.ParseInt(filters.User, 10, 64)
	return err == nil && id == actorID
}

// fetch translates filters into repository constraints. Malformed user and
// date filters are ignored rather than rejected.
func (s *queryService) fetch(filters ListFilters, actorID int64) ([]models.Award, error) {
	constraints := repository.AwardFilter{
		Category:    filters.Category,
		Source:      filters.Source,
		Description: filters.Description,
		Awarder:     filters.Awarder,
		Nominate:    filters.Nominate,
	}

	if filters.Status != StatusAll {
		constraints.Status = filters.Status
	}
	if filters.User == SelfMarker {
		constraints.User = actorID
	} else if filters.User != "" {
		if id, err := strconv.ParseInt(filters.User, 10, 64); err == nil {
			constraints.User = id
		}
	}
	if t, ok := parseDate(filters.DateBefore); ok {
		constraints.DateBefore = &t
	}
	if t, ok := parseDate(filters.DateAfter); ok {
		constraints.DateAfter = &t
	}

	limit := filters.Limit
	if limit <= 0 {
		limit = defaultListLimit
	}
	if limit > maxListLimit {
		limit = maxListLimit
	}
	offset := filters.Offset
	if offset < 0 {
		offset = 0
	}

	awards, err := s.awards.List(constraints, limit, offset)
	if err != nil {
		return nil, errs.Dependency("award listing failed", err)
	}
	return awards, nil
}
