package handler

import (
	"ShowFolio/internal/dto"
	"ShowFolio/internal/service"
	"ShowFolio/utils"
	"net/http"

	"github.com/gin-gonic/gin"
)

// AddQuestion appends an empty Q&A row to a project.
func AddQuestion(c *gin.Context) {
	projectID, ok := projectIDParam(c)
	if !ok {
		return
	}
	question, err := service.AddQuestion(c.Request.Context(), projectID, utils.RequesterEmail(c))
	if err != nil {
		writeServiceError(c, err)
		return
	}
	c.JSON(http.StatusCreated, gin.H{"id": question.ID})
}

// UpdateQuestion rewrites a Q&A row's prompt and answer.
func UpdateQuestion(c *gin.Context) {
	projectID, ok := projectIDParam(c)
	if !ok {
		return
	}
	questionID, ok := uintParam(c, "question_id")
	if !ok {
		return
	}
	var req dto.QuestionUpdateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request"})
		return
	}
	question, err := service.UpdateQuestion(
		c.Request.Context(),
		projectID,
		questionID,
		utils.RequesterEmail(c),
		req.Question,
		req.Answer,
	)
	if err != nil {
		writeServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{
		"id":       question.ID,
		"question": question.Question,
		"answer":   question.Answer,
	})
}

// DeleteQuestion removes a Q&A row.
func DeleteQuestion(c *gin.Context) {
	projectID, ok := projectIDParam(c)
	if !ok {
		return
	}
	questionID, ok := uintParam(c, "question_id")
	if !ok {
		return
	}
	err := service.DeleteQuestion(c.Request.Context(), projectID, questionID, utils.RequesterEmail(c))
	if err != nil {
		writeServiceError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}

// TransferOwner hands the project to another registered account.
func TransferOwner(c *gin.Context) {
	projectID, ok := projectIDParam(c)
	if !ok {
		return
	}
	var req dto.OwnerTransferRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request"})
		return
	}
	resp, err := service.TransferProjectOwnership(c.Request.Context(), projectID, utils.RequesterEmail(c), req.Email)
	if err != nil {
		writeServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, resp)
}
