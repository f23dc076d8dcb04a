package handler

import (
	"ShowFolio/internal/dto"
	"ShowFolio/internal/service"
	"ShowFolio/utils"
	"net/http"

	"github.com/gin-gonic/gin"
)

// AttachSkillTag adds a skill tag to a project.
func AttachSkillTag(c *gin.Context) {
	projectID, ok := projectIDParam(c)
	if !ok {
		return
	}
	var req dto.SkillTagRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request"})
		return
	}
	if err := service.AttachSkillTag(c.Request.Context(), projectID, utils.RequesterEmail(c), req.Name); err != nil {
		writeServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"msg": "attached"})
}

// DetachSkillTag removes a skill tag from a project.
func DetachSkillTag(c *gin.Context) {
	projectID, ok := projectIDParam(c)
	if !ok {
		return
	}
	name := c.Param("name")
	if err := service.DetachSkillTag(c.Request.Context(), projectID, utils.RequesterEmail(c), name); err != nil {
		writeServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"msg": "detached"})
}

// ListSkillTags returns every known skill tag name.
func ListSkillTags(c *gin.Context) {
	tags, err := service.ListSkillTags(c.Request.Context())
	if err != nil {
		writeServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"skillTags": tags})
}
