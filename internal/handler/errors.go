package handler

import (
	"ShowFolio/internal/service"
	"errors"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
)

// writeServiceError maps service sentinels onto HTTP statuses. Unknown
// errors become an opaque 500 so internals never leak to clients.
func writeServiceError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, service.ErrNotFound):
		c.JSON(http.StatusNotFound, gin.H{"error": "not found"})
	case errors.Is(err, service.ErrForbidden):
		c.JSON(http.StatusForbidden, gin.H{"error": "forbidden"})
	case errors.Is(err, service.ErrInvalidInput):
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
	case errors.Is(err, service.ErrUnsupportedMedia):
		c.JSON(http.StatusUnsupportedMediaType, gin.H{"error": "unsupported media type"})
	case errors.Is(err, service.ErrInsufficientStorage):
		c.JSON(http.StatusBadRequest, gin.H{"error": "Insufficient Storage"})
	case errors.Is(err, service.ErrThumbnailExists):
		c.JSON(http.StatusBadRequest, gin.H{"error": "thumbnail already exists"})
	default:
		c.JSON(http.StatusInternalServerError, gin.H{"error": "internal error"})
	}
}

func projectIDParam(c *gin.Context) (uint64, bool) {
	id, err := strconv.ParseUint(c.Param("project_id"), 10, 64)
	if err != nil || id == 0 {
		c.JSON(http.StatusBadRequest, gin.H{"error": "bad project id"})
		return 0, false
	}
	return id, true
}

func uintParam(c *gin.Context, name string) (uint64, bool) {
	id, err := strconv.ParseUint(c.Param(name), 10, 64)
	if err != nil || id == 0 {
		c.JSON(http.StatusBadRequest, gin.H{"error": "bad " + name})
		return 0, false
	}
	return id, true
}
