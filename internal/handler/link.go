package handler

import (
	"ShowFolio/internal/dto"
	"ShowFolio/internal/service"
	"ShowFolio/utils"
	"net/http"

	"github.com/gin-gonic/gin"
)

// AddProjectLink attaches an outbound link to a project.
func AddProjectLink(c *gin.Context) {
	projectID, ok := projectIDParam(c)
	if !ok {
		return
	}
	var req dto.ProjectLinkRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request"})
		return
	}
	link, err := service.AddProjectLink(c.Request.Context(), projectID, utils.RequesterEmail(c), req.Link, req.CoverText)
	if err != nil {
		writeServiceError(c, err)
		return
	}
	c.JSON(http.StatusCreated, gin.H{
		"id":        link.ID,
		"link":      link.URL,
		"coverText": link.Label,
	})
}

// DeleteProjectLink removes an outbound link.
func DeleteProjectLink(c *gin.Context) {
	projectID, ok := projectIDParam(c)
	if !ok {
		return
	}
	linkID, ok := uintParam(c, "link_id")
	if !ok {
		return
	}
	if err := service.DeleteProjectLink(c.Request.Context(), projectID, linkID, utils.RequesterEmail(c)); err != nil {
		writeServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"msg": "deleted"})
}
