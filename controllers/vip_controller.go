package controllers

import (
	"prestigeapi/services/award"

	"github.com/gin-gonic/gin"
)

var vipLifecycleSrv award.LifecycleService
var vipQuerySrv award.QueryService

// SetVIPServices initializes the VIP award service instances.
func SetVIPServices(lifecycle award.LifecycleService, query award.QueryService) {
	vipLifecycleSrv = lifecycle
	vipQuerySrv = query
}

// RegisterVIPRoutes registers the VIP award endpoints.
func RegisterVIPRoutes(rg *gin.RouterGroup) {
	vip := rg.Group("/vip")
	vip.GET("", listVIPAwards)
	vip.GET("/member/:user", listVIPMemberAwards)
	vip.GET("/:id", getVIPAward)
	vip.POST("", createVIPAward)
	vip.PUT("/:id", updateVIPAward)
	vip.DELETE("/:id", deleteVIPAward)
}

// listVIPAwards lists VIP awards
// @Summary List VIP awards
// @Tags VIP
// @Produce json
// @Param status query string false "Award status or 'all'"
// @Param user query string false "Member ID or 'me'"
// @Success 200 {object} map[string]interface{} "Matching awards"
// @Failure 403 {object} map[string]interface{} "Missing view role"
// @Router /v1/vip [get]
func listVIPAwards(c *gin.Context) {
	listAwards(c, vipQuerySrv)
}

// listVIPMemberAwards lists one member's VIP awards
// @Summary List a member's VIP awards
// @Tags VIP
// @Produce json
// @Param user path string true "Member ID or 'me'"
// @Success 200 {object} map[string]interface{} "Matching awards"
// @Router /v1/vip/member/{user} [get]
func listVIPMemberAwards(c *gin.Context) {
	listMemberAwards(c, vipQuerySrv)
}

// getVIPAward fetches a single VIP award
// @Summary Get a VIP award
// @Tags VIP
// @Produce json
// @Param id path int true "Award ID"
// @Success 200 {object} models.Award
// @Failure 404 {object} map[string]interface{} "Award not found"
// @Router /v1/vip/{id} [get]
func getVIPAward(c *gin.Context) {
	getAward(c, vipQuerySrv)
}

// createVIPAward creates a VIP award
// @Summary Create a VIP award
// @Tags VIP
// @Accept json
// @Produce json
// @Success 200 {object} models.Award
// @Failure 400 {object} map[string]interface{} "Validation failure"
// @Failure 403 {object} map[string]interface{} "Missing role"
// @Router /v1/vip [post]
func createVIPAward(c *gin.Context) {
	createAward(c, vipLifecycleSrv)
}

// updateVIPAward updates a VIP award
// @Summary Update a VIP award
// @Tags VIP
// @Accept json
// @Produce json
// @Param id path int true "Award ID"
// @Success 200 {object} models.Award
// @Failure 404 {object} map[string]interface{} "Award not found"
// @Router /v1/vip/{id} [put]
func updateVIPAward(c *gin.Context) {
	updateAward(c, vipLifecycleSrv)
}

// deleteVIPAward removes a VIP award
// @Summary Remove a VIP award
// @Tags VIP
// @Produce json
// @Param id path int true "Award ID"
// @Param note query string false "Audit note"
// @Success 200 {object} models.Award
// @Failure 404 {object} map[string]interface{} "Award not found"
// @Router /v1/vip/{id} [delete]
func deleteVIPAward(c *gin.Context) {
	deleteAward(c, vipLifecycleSrv)
}
