package handler

import (
	"ShowFolio/internal/dto"
	"ShowFolio/internal/service"
	"ShowFolio/utils"
	"net/http"

	"github.com/gin-gonic/gin"
)

// Login authenticates an account and returns a token.
func Login(c *gin.Context) {
	var loginRequest dto.LoginRequest
	if err := c.ShouldBind(&loginRequest); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request"})
		return
	}
	user, err := service.FindUserByEmail(loginRequest.Email)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "bad credentials"})
		return
	}
	if !user.IsActive {
		c.JSON(http.StatusBadRequest, gin.H{"error": "account not activated"})
		return
	}
	if !service.CheckPassword(user, loginRequest.Password) {
		c.JSON(http.StatusBadRequest, gin.H{"error": "bad credentials"})
		return
	}
	token, err := utils.GenerateToken(user.ID, user.Email, user.Role)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "token generation failed"})
		return
	}
	c.JSON(http.StatusOK, gin.H{
		"message": "success",
		"token":   token,
		"user":    user,
	})
}
