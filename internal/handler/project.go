package handler

import (
	"ShowFolio/internal/dto"
	"ShowFolio/internal/service"
	"ShowFolio/utils"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
)

// CreateProject creates an empty draft project owned by the caller.
func CreateProject(c *gin.Context) {
	owner, err := service.FindUserByEmail(utils.RequesterEmail(c))
	if err != nil {
		writeServiceError(c, err)
		return
	}
	project, err := service.CreateProject(owner)
	if err != nil {
		writeServiceError(c, err)
		return
	}
	c.JSON(http.StatusCreated, gin.H{
		"project_id":        project.ID,
		"visibility":        project.Visibility,
		"storage_remaining": project.StorageRemaining,
	})
}

// GetProject returns the full project document. Drafts are only
// visible to the owner and contributors.
func GetProject(c *gin.Context) {
	projectID, ok := projectIDParam(c)
	if !ok {
		return
	}
	detail, err := service.GetProjectDetail(c.Request.Context(), projectID, utils.RequesterEmail(c))
	if err != nil {
		writeServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, detail)
}

// SearchProjects lists public projects matching keyword and skill
// filters.
func SearchProjects(c *gin.Context) {
	req := dto.ProjectSearchRequest{
		Keywords: c.QueryArray("keyword"),
		Skills:   c.QueryArray("skill"),
		Token:    c.Query("token"),
	}
	if raw := c.Query("limit"); raw != "" {
		limit, err := strconv.Atoi(raw)
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "bad limit"})
			return
		}
		req.Limit = limit
	}
	resp, err := service.SearchPublicProjects(&req)
	if err != nil {
		writeServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, resp)
}

// UpdateProjectTitle sets the project title.
func UpdateProjectTitle(c *gin.Context) {
	projectID, ok := projectIDParam(c)
	if !ok {
		return
	}
	var req dto.ProjectTitleRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request"})
		return
	}
	if err := service.UpdateProjectTitle(c.Request.Context(), projectID, utils.RequesterEmail(c), req.Title); err != nil {
		writeServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"msg": "updated"})
}

// UpdateProjectDescription sets the project description.
func UpdateProjectDescription(c *gin.Context) {
	projectID, ok := projectIDParam(c)
	if !ok {
		return
	}
	var req dto.ProjectDescriptionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request"})
		return
	}
	if err := service.UpdateProjectDescription(c.Request.Context(), projectID, utils.RequesterEmail(c), req.Description); err != nil {
		writeServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"msg": "updated"})
}

// UpdateProjectVisibility moves a project between DRAFT, PUBLIC and
// DELETED.
func UpdateProjectVisibility(c *gin.Context) {
	projectID, ok := projectIDParam(c)
	if !ok {
		return
	}
	var req dto.ProjectVisibilityRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request"})
		return
	}
	if err := service.UpdateProjectVisibility(c.Request.Context(), projectID, utils.RequesterEmail(c), req.Visibility); err != nil {
		writeServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"msg": "updated"})
}
