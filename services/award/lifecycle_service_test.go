package award

import (
	"context"
	"encoding/json"
	"testing"

	"prestigeapi/models"
	"prestigeapi/pkg/errs"

	"github.com/stretchr/testify/require"
)

func TestCreateSelfRequest(t *testing.T) {
	db := setupDB(t)
	lifecycle, _ := vipServices(db)
	auth := grantingHub(1)

	payload := with(vipPayload(), map[string]interface{}{"user": "me", "vip": float64(3)})
	result, err := lifecycle.Create(context.Background(), auth, payload, 1)
	require.NoError(t, err)

	require.Equal(t, models.StatusRequested, result.Status)
	require.Equal(t, int64(1), result.User)
	require.NotNil(t, result.Category)
	require.Equal(t, "Attending Events", result.Category.Name)

	// Self-requests never consult the Hub and leave no audit entry.
	require.Zero(t, auth.checks())
	require.Empty(t, awardActions(t, db, result.ID))
}

func TestCreateNomination(t *testing.T) {
	db := setupDB(t)
	lifecycle, _ := vipServices(db)
	auth := grantingHub(1)

	result, err := lifecycle.Create(context.Background(), auth, with(vipPayload(), map[string]interface{}{"vip": float64(3)}), 1)
	require.NoError(t, err)

	require.Equal(t, models.StatusNominated, result.Status)
	require.Equal(t, int64(1), result.Nominate)
	require.Equal(t, int64(2), result.User)
	require.Equal(t, []string{"vip_nominate"}, auth.userRoles)

	actions := awardActions(t, db, result.ID)
	require.Len(t, actions, 1)
	require.Equal(t, models.StatusNominated, actions[0].Action)
	require.Equal(t, int64(1), actions[0].User)
	require.Equal(t, int64(1), actions[0].Office)
}

func TestCreateDirectAward(t *testing.T) {
	db := setupDB(t)
	lifecycle, _ := vipServices(db)
	auth := grantingHub(1)

	payload := with(vipPayload(), map[string]interface{}{"action": "award", "vip": float64(3)})
	result, err := lifecycle.Create(context.Background(), auth, payload, 1)
	require.NoError(t, err)

	require.Equal(t, models.StatusAwarded, result.Status)
	require.Equal(t, int64(1), result.Awarder)
	require.Equal(t, []string{"vip_award"}, auth.userRoles)

	actions := awardActions(t, db, result.ID)
	require.Len(t, actions, 1)
	require.Equal(t, models.StatusAwarded, actions[0].Action)
}

func TestCreateDeduction(t *testing.T) {
	db := setupDB(t)
	lifecycle, _ := vipServices(db)
	auth := grantingHub(1)

	payload := with(vipPayload(), map[string]interface{}{"action": "deduct", "vip": float64(-10)})
	result, err := lifecycle.Create(context.Background(), auth, payload, 1)
	require.NoError(t, err)

	require.Equal(t, models.StatusAwarded, result.Status)
	require.Equal(t, int64(1), result.Awarder)
	require.Equal(t, int64(-10), result.Vip)
	require.Equal(t, []string{"vip_deduct"}, auth.userRoles)
}

func TestCreateDenied(t *testing.T) {
	db := setupDB(t)
	lifecycle, _ := vipServices(db)
	auth := denyingHub()

	_, err := lifecycle.Create(context.Background(), auth, with(vipPayload(), map[string]interface{}{"vip": float64(3)}), 1)
	require.Error(t, err)
	require.Equal(t, errs.KindAuthorization, errs.KindOf(err))

	// Nothing may be persisted after a denied check.
	var count int64
	require.NoError(t, db.Model(models.Award{}).Count(&count).Error)
	require.Zero(t, count)
}

func TestCreatePrestigeChecksLeveledRole(t *testing.T) {
	db := setupDB(t)
	lifecycle, _ := prestigeServices(db)
	auth := grantingHub(4)

	payload := with(vipPayload(), map[string]interface{}{"category": float64(1), "action": "award", "national": float64(10)})
	result, err := lifecycle.Create(context.Background(), auth, payload, 1)
	require.NoError(t, err)

	require.Equal(t, []string{"prestige_award_national"}, auth.userRoles)
	require.Equal(t, "national", result.Level)
	require.Equal(t, int64(10), result.National)

	actions := awardActions(t, db, result.ID)
	require.Len(t, actions, 1)
	require.Equal(t, int64(4), actions[0].Office)
}

func TestUpdateNotFound(t *testing.T) {
	db := setupDB(t)
	lifecycle, _ := vipServices(db)

	_, err := lifecycle.Update(context.Background(), grantingHub(1), 999, with(vipPayload(), map[string]interface{}{"vip": float64(3)}), 1)
	require.Error(t, err)
	require.Equal(t, errs.KindNotFound, errs.KindOf(err))
}

func TestUpdateRemovedAward(t *testing.T) {
	db := setupDB(t)
	lifecycle, _ := vipServices(db)
	seeded := seedAward(t, db, models.Award{
		ID: 9, User: 2, CategoryID: 6, Date: day("2017-02-20"),
		Status: models.StatusRemoved, Vip: 1, UsableVip: 1, Level: "vip",
	})

	_, err := lifecycle.Update(context.Background(), grantingHub(1), seeded.ID, with(vipPayload(), map[string]interface{}{"vip": float64(3)}), 1)
	require.Error(t, err)
	require.Equal(t, errs.KindValidation, errs.KindOf(err))
}

func TestUpdateOwnApprovedAwardForbidden(t *testing.T) {
	db := setupDB(t)
	lifecycle, _ := vipServices(db)
	seeded := seedAward(t, db, models.Award{
		ID: 6, User: 2, CategoryID: 6, Date: day("2017-02-20"),
		Status: models.StatusAwarded, Awarder: 1, Vip: 1, UsableVip: 1, Level: "vip",
	})

	auth := grantingHub(1)
	_, err := lifecycle.Update(context.Background(), auth, seeded.ID, with(vipPayload(), map[string]interface{}{"vip": float64(3)}), 2)
	require.Error(t, err)
	require.Equal(t, errs.KindAuthorization, errs.KindOf(err))
	require.Zero(t, auth.checks())
}

func TestUpdateOwnRequestedAward(t *testing.T) {
	db := setupDB(t)
	lifecycle, _ := vipServices(db)
	seeded := seedAward(t, db, models.Award{
		ID: 7, User: 2, CategoryID: 6, Date: day("2017-02-20"),
		Status: models.StatusRequested, Vip: 1, UsableVip: 1, Level: "vip",
	})

	auth := grantingHub(1)
	result, err := lifecycle.Update(context.Background(), auth, seeded.ID, with(vipPayload(), map[string]interface{}{"vip": float64(3)}), 2)
	require.NoError(t, err)

	require.Equal(t, models.StatusRequested, result.Status)
	require.Equal(t, int64(2), result.User)
	require.Equal(t, int64(3), result.Vip)
	require.Equal(t, int64(3), result.UsableVip)
	require.Zero(t, auth.checks())
	require.Empty(t, awardActions(t, db, result.ID))
}

func TestUpdateForeignAwardNeedsCheckedCapability(t *testing.T) {
	db := setupDB(t)
	lifecycle, _ := vipServices(db)
	seeded := seedAward(t, db, models.Award{
		ID: 6, User: 2, CategoryID: 6, Date: day("2017-02-20"),
		Status: models.StatusAwarded, Awarder: 3, Vip: 1, UsableVip: 1, Level: "vip",
	})

	// A non-owner cannot rewrite someone else's award into a self-request
	// and dodge the Hub that way.
	auth := denyingHub()
	_, err := lifecycle.Update(context.Background(), auth, seeded.ID, with(vipPayload(), map[string]interface{}{"user": "me", "vip": float64(3)}), 5)
	require.Error(t, err)
	require.Equal(t, errs.KindAuthorization, errs.KindOf(err))

	// Same with the actor's own ID spelled out.
	_, err = lifecycle.Update(context.Background(), auth, seeded.ID, with(vipPayload(), map[string]interface{}{"user": float64(5), "vip": float64(3)}), 5)
	require.Error(t, err)
	require.Equal(t, errs.KindAuthorization, errs.KindOf(err))

	// The award is untouched and nothing was audited.
	var stored models.Award
	require.NoError(t, db.First(&stored, seeded.ID).Error)
	require.Equal(t, int64(2), stored.User)
	require.Equal(t, models.StatusAwarded, stored.Status)
	require.Empty(t, awardActions(t, db, seeded.ID))
}

func TestUpdateNomination(t *testing.T) {
	db := setupDB(t)
	lifecycle, _ := vipServices(db)
	seeded := seedAward(t, db, models.Award{
		ID: 6, User: 2, CategoryID: 6, Date: day("2017-02-20"),
		Status: models.StatusAwarded, Awarder: 3, Vip: 1, UsableVip: 1, Level: "vip",
	})

	auth := grantingHub(1)
	result, err := lifecycle.Update(context.Background(), auth, seeded.ID, with(vipPayload(), map[string]interface{}{"vip": float64(3)}), 1)
	require.NoError(t, err)

	require.Equal(t, models.StatusNominated, result.Status)
	require.Equal(t, int64(1), result.Nominate)
	require.Equal(t, []string{"vip_nominate"}, auth.userRoles)

	actions := awardActions(t, db, result.ID)
	require.Len(t, actions, 1)
	require.Equal(t, models.StatusNominated, actions[0].Action)

	// The audit row snapshots the award as it was before the update.
	var previous models.Award
	require.NoError(t, json.Unmarshal(actions[0].Previous, &previous))
	require.Equal(t, models.StatusAwarded, previous.Status)
	require.Equal(t, int64(1), previous.Vip)
}

func TestDeleteNotFound(t *testing.T) {
	db := setupDB(t)
	lifecycle, _ := vipServices(db)

	_, err := lifecycle.Delete(context.Background(), grantingHub(1), 999, 1, "")
	require.Error(t, err)
	require.Equal(t, errs.KindNotFound, errs.KindOf(err))
}

func TestDeleteAlreadyRemoved(t *testing.T) {
	db := setupDB(t)
	lifecycle, _ := vipServices(db)
	seeded := seedAward(t, db, models.Award{
		ID: 9, User: 2, CategoryID: 6, Date: day("2017-02-20"),
		Status: models.StatusRemoved, Vip: 1, UsableVip: 1, Level: "vip",
	})

	// Already removed is a request conflict, not a missing record.
	_, err := lifecycle.Delete(context.Background(), grantingHub(1), seeded.ID, 1, "")
	require.Error(t, err)
	require.Equal(t, errs.KindValidation, errs.KindOf(err))
}

func TestDeleteOwnPendingAward(t *testing.T) {
	db := setupDB(t)
	lifecycle, _ := vipServices(db)
	seeded := seedAward(t, db, models.Award{
		ID: 7, User: 1, CategoryID: 6, Date: day("2017-02-20"),
		Status: models.StatusRequested, Vip: 1, UsableVip: 1, Level: "vip",
	})

	auth := grantingHub(1)
	result, err := lifecycle.Delete(context.Background(), auth, seeded.ID, 1, "")
	require.NoError(t, err)
	require.Equal(t, models.StatusRemoved, result.Status)
	require.Zero(t, auth.checks())

	var stored models.Award
	require.NoError(t, db.First(&stored, seeded.ID).Error)
	require.Equal(t, models.StatusRemoved, stored.Status)
}

func TestDeleteWithoutOffices(t *testing.T) {
	db := setupDB(t)
	lifecycle, _ := vipServices(db)
	seeded := seedAward(t, db, models.Award{
		ID: 6, User: 2, CategoryID: 6, Date: day("2017-02-20"),
		Status: models.StatusAwarded, Awarder: 1, Vip: 1, UsableVip: 1, Level: "vip",
	})

	// The check passed but named no granting office: still a refusal.
	auth := grantingHub()
	_, err := lifecycle.Delete(context.Background(), auth, seeded.ID, 3, "")
	require.Error(t, err)
	require.Equal(t, errs.KindAuthorization, errs.KindOf(err))
}

func TestDeleteDenied(t *testing.T) {
	db := setupDB(t)
	lifecycle, _ := vipServices(db)
	seeded := seedAward(t, db, models.Award{
		ID: 6, User: 2, CategoryID: 6, Date: day("2017-02-20"),
		Status: models.StatusAwarded, Awarder: 1, Vip: 1, UsableVip: 1, Level: "vip",
	})

	_, err := lifecycle.Delete(context.Background(), denyingHub(), seeded.ID, 3, "")
	require.Error(t, err)
	require.Equal(t, errs.KindAuthorization, errs.KindOf(err))
}

func TestDeleteByOfficer(t *testing.T) {
	db := setupDB(t)
	lifecycle, _ := vipServices(db)
	seeded := seedAward(t, db, models.Award{
		ID: 6, User: 2, CategoryID: 6, Date: day("2017-02-20"),
		Status: models.StatusAwarded, Awarder: 1, Vip: 1, UsableVip: 1, Level: "vip",
	})

	auth := grantingHub(1)
	result, err := lifecycle.Delete(context.Background(), auth, seeded.ID, 3, "Test note")
	require.NoError(t, err)
	require.Equal(t, models.StatusRemoved, result.Status)
	require.Equal(t, []string{"vip_remove"}, auth.userRoles)

	actions := awardActions(t, db, seeded.ID)
	require.Len(t, actions, 1)
	require.Equal(t, models.StatusRemoved, actions[0].Action)
	require.Equal(t, int64(3), actions[0].User)
	require.Equal(t, int64(1), actions[0].Office)
	require.Equal(t, "Test note", actions[0].Note)

	var previous models.Award
	require.NoError(t, json.Unmarshal(actions[0].Previous, &previous))
	require.Equal(t, models.StatusAwarded, previous.Status)
}

func TestDeletePrestigeUsesLeveledRemoveRole(t *testing.T) {
	db := setupDB(t)
	lifecycle, _ := prestigeServices(db)
	seeded := seedAward(t, db, models.Award{
		ID: 11, User: 2, CategoryID: 1, Date: day("2017-02-20"),
		Status: models.StatusAwarded, Awarder: 1, National: 10, UsableNational: 10, Level: "national",
	})

	auth := grantingHub(1)
	_, err := lifecycle.Delete(context.Background(), auth, seeded.ID, 3, "")
	require.NoError(t, err)
	require.Equal(t, []string{"prestige_remove_national"}, auth.userRoles)
}
