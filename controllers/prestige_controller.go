package controllers

import (
	"prestigeapi/services/award"

	"github.com/gin-gonic/gin"
)

var prestigeLifecycleSrv award.LifecycleService
var prestigeQuerySrv award.QueryService

// SetPrestigeServices initializes the prestige award service instances.
func SetPrestigeServices(lifecycle award.LifecycleService, query award.QueryService) {
	prestigeLifecycleSrv = lifecycle
	prestigeQuerySrv = query
}

// RegisterPrestigeRoutes registers the prestige award endpoints.
func RegisterPrestigeRoutes(rg *gin.RouterGroup) {
	awards := rg.Group("/awards")
	awards.GET("", listPrestigeAwards)
	awards.GET("/member/:user", listPrestigeMemberAwards)
	awards.GET("/:id", getPrestigeAward)
	awards.POST("", createPrestigeAward)
	awards.PUT("/:id", updatePrestigeAward)
	awards.DELETE("/:id", deletePrestigeAward)
}

// listPrestigeAwards lists prestige awards
// @Summary List prestige awards
// @Description Lists prestige awards. Defaults to approved awards; other statuses require the prestige view role.
// @Tags Prestige
// @Produce json
// @Param status query string false "Award status or 'all'"
// @Param user query string false "Member ID or 'me'"
// @Param category query int false "Category ID"
// @Param limit query int false "Page size, capped at 100"
// @Param offset query int false "Page offset"
// @Success 200 {object} map[string]interface{} "Matching awards"
// @Failure 403 {object} map[string]interface{} "Missing view role"
// @Router /v1/awards [get]
func listPrestigeAwards(c *gin.Context) {
	listAwards(c, prestigeQuerySrv)
}

// listPrestigeMemberAwards lists one member's prestige awards
// @Summary List a member's prestige awards
// @Tags Prestige
// @Produce json
// @Param user path string true "Member ID or 'me'"
// @Success 200 {object} map[string]interface{} "Matching awards"
// @Failure 403 {object} map[string]interface{} "Missing view role"
// @Router /v1/awards/member/{user} [get]
func listPrestigeMemberAwards(c *gin.Context) {
	listMemberAwards(c, prestigeQuerySrv)
}

// getPrestigeAward fetches a single prestige award
// @Summary Get a prestige award
// @Tags Prestige
// @Produce json
// @Param id path int true "Award ID"
// @Success 200 {object} models.Award
// @Failure 404 {object} map[string]interface{} "Award not found"
// @Router /v1/awards/{id} [get]
func getPrestigeAward(c *gin.Context) {
	getAward(c, prestigeQuerySrv)
}

// createPrestigeAward creates a prestige award
// @Summary Create a prestige award
// @Description Creates an award. Self-targeted payloads become requests; nominations, awards and deductions require the matching prestige role.
// @Tags Prestige
// @Accept json
// @Produce json
// @Success 200 {object} models.Award
// @Failure 400 {object} map[string]interface{} "Validation failure"
// @Failure 403 {object} map[string]interface{} "Missing role"
// @Router /v1/awards [post]
func createPrestigeAward(c *gin.Context) {
	createAward(c, prestigeLifecycleSrv)
}

// updatePrestigeAward updates a prestige award
// @Summary Update a prestige award
// @Tags Prestige
// @Accept json
// @Produce json
// @Param id path int true "Award ID"
// @Success 200 {object} models.Award
// @Failure 404 {object} map[string]interface{} "Award not found"
// @Router /v1/awards/{id} [put]
func updatePrestigeAward(c *gin.Context) {
	updateAward(c, prestigeLifecycleSrv)
}

// deletePrestigeAward removes a prestige award
// @Summary Remove a prestige award
// @Description Flips the award to Removed and records the audit entry. Rows are never hard-deleted.
// @Tags Prestige
// @Produce json
// @Param id path int true "Award ID"
// @Param note query string false "Audit note"
// @Success 200 {object} models.Award
// @Failure 404 {object} map[string]interface{} "Award not found"
// @Router /v1/awards/{id} [delete]
func deletePrestigeAward(c *gin.Context) {
	deleteAward(c, prestigeLifecycleSrv)
}
