package controllers

import (
	"net/http"

	"prestigeapi/models"
	"prestigeapi/pkg/errs"
	"prestigeapi/services/category"
	"prestigeapi/services/hub"
	"prestigeapi/utils"

	"github.com/gin-gonic/gin"
)

var categorySrv category.Service

// SetCategoryService initializes the category service instance.
func SetCategoryService(srv category.Service) {
	categorySrv = srv
}

// RegisterCategoryRoutes registers the category endpoints.
func RegisterCategoryRoutes(rg *gin.RouterGroup) {
	categories := rg.Group("/categories")
	categories.GET("", listCategories)
	categories.POST("", createCategory)
}

// listCategories lists award categories
// @Summary List award categories
// @Tags Categories
// @Produce json
// @Success 200 {object} map[string]interface{} "All categories"
// @Router /v1/categories [get]
func listCategories(c *gin.Context) {
	results, err := categorySrv.List(c.Request.Context())
	if err != nil {
		utils.ErrorResponse(c, err)
		return
	}
	utils.JSONResponse(c, http.StatusOK, gin.H{"results": results})
}

// createCategory adds an award category
// @Summary Add an award category
// @Description Adds a category to the rule configuration. Requires the national award role.
// @Tags Categories
// @Accept json
// @Produce json
// @Success 201 {object} models.Category
// @Failure 400 {object} map[string]interface{} "Validation failure"
// @Failure 403 {object} map[string]interface{} "Missing role"
// @Router /v1/categories [post]
func createCategory(c *gin.Context) {
	var data models.Category
	if err := c.ShouldBindJSON(&data); err != nil {
		utils.ErrorResponse(c, errs.Validationf("invalid request body"))
		return
	}
	result, err := categorySrv.Create(c.Request.Context(), hub.AuthorityFrom(c), &data, hub.UserID(c))
	if err != nil {
		utils.ErrorResponse(c, err)
		return
	}
	utils.JSONResponse(c, http.StatusCreated, result)
}
