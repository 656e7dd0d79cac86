package controllers

import (
	"net/http"
	"strconv"

	"prestigeapi/pkg/errs"
	"prestigeapi/services/award"
	"prestigeapi/services/hub"
	"prestigeapi/utils"

	"github.com/gin-gonic/gin"
)

// Handlers for both award domains share this file; the prestige and VIP
// route sets differ only in the services they are bound to.

func bindListFilters(c *gin.Context) award.ListFilters {
	filters := award.ListFilters{
		Status:      c.Query("status"),
		User:        c.Query("user"),
		Source:      c.Query("source"),
		Description: c.Query("description"),
		DateBefore:  c.Query("dateBefore"),
		DateAfter:   c.Query("dateAfter"),
	}
	filters.Category, _ = strconv.ParseInt(c.Query("category"), 10, 64)
	filters.Awarder, _ = strconv.ParseInt(c.Query("awarder"), 10, 64)
	filters.Nominate, _ = strconv.ParseInt(c.Query("nominate"), 10, 64)
	filters.Limit, _ = strconv.Atoi(c.Query("limit"))
	filters.Offset, _ = strconv.Atoi(c.Query("offset"))
	return filters
}

func listAwards(c *gin.Context, query award.QueryService) {
	results, err := query.List(c.Request.Context(), hub.AuthorityFrom(c), bindListFilters(c), hub.UserID(c))
	if err != nil {
		utils.ErrorResponse(c, err)
		return
	}
	utils.JSONResponse(c, http.StatusOK, gin.H{"results": results})
}

func listMemberAwards(c *gin.Context, query award.QueryService) {
	results, err := query.ListMember(c.Request.Context(), hub.AuthorityFrom(c), c.Param("user"), bindListFilters(c), hub.UserID(c))
	if err != nil {
		utils.ErrorResponse(c, err)
		return
	}
	utils.JSONResponse(c, http.StatusOK, gin.H{"results": results})
}

func getAward(c *gin.Context, query award.QueryService) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		utils.ErrorResponse(c, errs.Validationf("invalid id"))
		return
	}
	result, err := query.GetOne(c.Request.Context(), hub.AuthorityFrom(c), id, hub.UserID(c))
	if err != nil {
		utils.ErrorResponse(c, err)
		return
	}
	utils.JSONResponse(c, http.StatusOK, result)
}

func createAward(c *gin.Context, lifecycle award.LifecycleService) {
	var data map[string]interface{}
	if err := c.ShouldBindJSON(&data); err != nil {
		utils.ErrorResponse(c, errs.Validationf("invalid request body"))
		return
	}
	result, err := lifecycle.Create(c.Request.Context(), hub.AuthorityFrom(c), data, hub.UserID(c))
	if err != nil {
		utils.ErrorResponse(c, err)
		return
	}
	utils.JSONResponse(c, http.StatusOK, result)
}

func updateAward(c *gin.Context, lifecycle award.LifecycleService) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		utils.ErrorResponse(c, errs.Validationf("invalid id"))
		return
	}
	var data map[string]interface{}
	if err := c.ShouldBindJSON(&data); err != nil {
		utils.ErrorResponse(c, errs.Validationf("invalid request body"))
		return
	}
	result, err := lifecycle.Update(c.Request.Context(), hub.AuthorityFrom(c), id, data, hub.UserID(c))
	if err != nil {
		utils.ErrorResponse(c, err)
		return
	}
	utils.JSONResponse(c, http.StatusOK, result)
}

func deleteAward(c *gin.Context, lifecycle award.LifecycleService) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		utils.ErrorResponse(c, errs.Validationf("invalid id"))
		return
	}
	result, err := lifecycle.Delete(c.Request.Context(), hub.AuthorityFrom(c), id, hub.UserID(c), c.Query("note"))
	if err != nil {
		utils.ErrorResponse(c, err)
		return
	}
	utils.JSONResponse(c, http.StatusOK, result)
}
