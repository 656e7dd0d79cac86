package award

import (
	"context"
	"fmt"
	"testing"
	"time"

	"prestigeapi/models"
	"prestigeapi/repository"
	"prestigeapi/services/hub"

	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
)

// setupDB opens a per-test in-memory database with the baseline categories.
func setupDB(t *testing.T) *gorm.DB {
	t.Helper()
	dsn := fmt.Sprintf("file:%s?mode=memory&cache=shared", t.Name())
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{})
	require.NoError(t, err)
	require.NoError(t, db.AutoMigrate(&models.Category{}, &models.Award{}, &models.Action{}))

	limit50 := int64(50)
	limit3 := int64(3)
	end2015 := day("2015-12-31")
	categories := []models.Category{
		{ID: 1, Name: "Administration", EntryLimit: &limit50, Start: day("2013-06-01"), Type: models.TypePrestige},
		{ID: 5, Name: "Standards and Renewals", Start: day("2013-06-01"), Type: models.TypePrestige},
		{ID: 6, Name: "Attending Events", EntryLimit: &limit3, Start: day("2016-01-01"), Type: models.TypeVip},
		{ID: 7, Name: "Retired Program", EntryLimit: &limit3, Start: day("2013-06-01"), End: &end2015, Type: models.TypeVip},
	}
	require.NoError(t, db.Create(&categories).Error)
	return db
}

func day(s string) time.Time {
	t, err := time.Parse("2006-01-02", s)
	if err != nil {
		panic(err)
	}
	return t
}

func seedAward(t *testing.T, db *gorm.DB, a models.Award) models.Award {
	t.Helper()
	require.NoError(t, db.Create(&a).Error)
	return a
}

func awardActions(t *testing.T, db *gorm.DB, awardID int64) []models.Action {
	t.Helper()
	actions, err := repository.NewActionRepository(db).ListByAward(awardID)
	require.NoError(t, err)
	return actions
}

// stubAuthority is a scripted Hub. It records every check so tests can
// assert which roles were asked for, and how often.
type stubAuthority struct {
	granted   bool
	offices   []hub.Office
	err       error
	userRoles []string
	orgRoles  []string
}

func grantingHub(officeIDs ...int64) *stubAuthority {
	s := &stubAuthority{granted: true}
	for _, id := range officeIDs {
		s.offices = append(s.offices, hub.Office{ID: id})
	}
	return s
}

func denyingHub() *stubAuthority {
	return &stubAuthority{granted: false}
}

func (s *stubAuthority) HasOverUser(ctx context.Context, userID int64, role string) (*hub.Check, error) {
	s.userRoles = append(s.userRoles, role)
	if s.err != nil {
		return nil, s.err
	}
	return &hub.Check{Granted: s.granted, Offices: s.offices}, nil
}

func (s *stubAuthority) HasOverOrgUnit(ctx context.Context, unitID int64, role string) (*hub.Check, error) {
	s.orgRoles = append(s.orgRoles, role)
	if s.err != nil {
		return nil, s.err
	}
	return &hub.Check{Granted: s.granted, Offices: s.offices}, nil
}

func (s *stubAuthority) checks() int {
	return len(s.userRoles) + len(s.orgRoles)
}

// vipServices wires a lifecycle and query service for the VIP domain.
func vipServices(db *gorm.DB) (LifecycleService, QueryService) {
	awards := repository.NewAwardRepository(db)
	lifecycle := NewLifecycleService(
		VIP,
		NewEngine(VIP, repository.NewCategoryRepository(db)),
		repository.NewBaseRepository(db),
		awards,
		repository.NewActionRepository(db),
	)
	return lifecycle, NewQueryService(VIP, awards)
}

// prestigeServices wires a lifecycle and query service for the prestige domain.
func prestigeServices(db *gorm.DB) (LifecycleService, QueryService) {
	awards := repository.NewAwardRepository(db)
	lifecycle := NewLifecycleService(
		Prestige,
		NewEngine(Prestige, repository.NewCategoryRepository(db)),
		repository.NewBaseRepository(db),
		awards,
		repository.NewActionRepository(db),
	)
	return lifecycle, NewQueryService(Prestige, awards)
}

// vipPayload is a valid nomination payload minus the level amount.
func vipPayload() map[string]interface{} {
	return map[string]interface{}{
		"user":        float64(2),
		"category":    float64(6),
		"date":        "2017-01-01",
		"description": "Test Award",
	}
}

func with(base map[string]interface{}, overrides map[string]interface{}) map[string]interface{} {
	merged := make(map[string]interface{}, len(base)+len(overrides))
	for k, v := range base {
		merged[k] = v
	}
	for k, v := range overrides {
		merged[k] = v
	}
	return merged
}
