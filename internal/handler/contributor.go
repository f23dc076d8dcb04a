package handler

import (
	"ShowFolio/internal/dto"
	"ShowFolio/internal/service"
	"ShowFolio/utils"
	"net/http"

	"github.com/gin-gonic/gin"
)

// AddContributor appends an empty contributor row. Only the owner may
// grow the list.
func AddContributor(c *gin.Context) {
	projectID, ok := projectIDParam(c)
	if !ok {
		return
	}
	contributor, err := service.AddContributor(c.Request.Context(), projectID, utils.RequesterEmail(c))
	if err != nil {
		writeServiceError(c, err)
		return
	}
	c.JSON(http.StatusCreated, gin.H{
		"id":   contributor.ID,
		"role": contributor.Role,
	})
}

// UpdateContributor rewrites a contributor row.
func UpdateContributor(c *gin.Context) {
	projectID, ok := projectIDParam(c)
	if !ok {
		return
	}
	contributorID, ok := uintParam(c, "contributor_id")
	if !ok {
		return
	}
	var req dto.ContributorUpdateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request"})
		return
	}
	err := service.UpdateContributor(
		c.Request.Context(),
		projectID,
		contributorID,
		utils.RequesterEmail(c),
		req.Name,
		req.Email,
		req.Role,
	)
	if err != nil {
		writeServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"msg": "updated"})
}

// DeleteContributor removes a contributor row.
func DeleteContributor(c *gin.Context) {
	projectID, ok := projectIDParam(c)
	if !ok {
		return
	}
	contributorID, ok := uintParam(c, "contributor_id")
	if !ok {
		return
	}
	err := service.DeleteContributor(c.Request.Context(), projectID, contributorID, utils.RequesterEmail(c))
	if err != nil {
		writeServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"msg": "deleted"})
}
