package handler

import (
	"ShowFolio/internal/dto"
	"ShowFolio/internal/repo"
	"ShowFolio/internal/service"
	"ShowFolio/model"
	"ShowFolio/utils"
	"fmt"
	"io"
	"log"
	"net/http"
	"strconv"
	"strings"
	"time"

	"github.com/gin-gonic/gin"
)

func mediaLock(projectID uint64) *repo.RedisLock {
	return repo.NewRedisLock(
		repo.Redis,
		"lock:media:"+strconv.FormatUint(projectID, 10),
		30*time.Second,
	)
}

// UploadImage adds a gallery image. A JSON body records an external
// link; any other content type is streamed into the object store under
// the storage allotment.
func UploadImage(c *gin.Context) {
	uploadMedia(c, model.MediaKindImage)
}

// UploadThumbnail sets the project thumbnail. The slot holds at most
// one entry.
func UploadThumbnail(c *gin.Context) {
	uploadMedia(c, model.MediaKindThumbnail)
}

func uploadMedia(c *gin.Context, kind string) {
	projectID, ok := projectIDParam(c)
	if !ok {
		return
	}

	lock := mediaLock(projectID)
	ctx := c.Request.Context()
	if err := lock.Lock(ctx); err != nil {
		log.Printf("media lock for project %d failed: %v", projectID, err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "internal error"})
		return
	}
	defer lock.Unlock(ctx)

	contentType := c.ContentType()
	requesterEmail := utils.RequesterEmail(c)

	// The branch is decided here, once, on the declared content type.
	if contentType == "application/json" {
		var req dto.ExternalMediaRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request"})
			return
		}
		resp, err := service.AttachExternalMedia(ctx, projectID, requesterEmail, kind, req.Image, req.Alt)
		if err != nil {
			writeServiceError(c, err)
			return
		}
		c.JSON(http.StatusCreated, resp)
		return
	}

	if c.Request.ContentLength == 0 {
		c.JSON(http.StatusBadRequest, gin.H{"error": "no image provided"})
		return
	}
	resp, err := service.UploadMediaStream(ctx, projectID, requesterEmail, kind, contentType, c.Request.Body)
	if err != nil {
		writeServiceError(c, err)
		return
	}
	c.JSON(http.StatusCreated, resp)
}

// DeleteImage removes a gallery image and returns the reclaimed
// storage balance.
func DeleteImage(c *gin.Context) {
	projectID, ok := projectIDParam(c)
	if !ok {
		return
	}
	mediaID := c.Param("media_id")
	if mediaID == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "bad media id"})
		return
	}

	lock := mediaLock(projectID)
	ctx := c.Request.Context()
	if err := lock.Lock(ctx); err != nil {
		log.Printf("media lock for project %d failed: %v", projectID, err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "internal error"})
		return
	}
	defer lock.Unlock(ctx)

	remaining, err := service.DeleteImage(ctx, projectID, mediaID, utils.RequesterEmail(c))
	if err != nil {
		writeServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"storageRemaining": remaining})
}

// DeleteThumbnail clears the thumbnail slot.
func DeleteThumbnail(c *gin.Context) {
	projectID, ok := projectIDParam(c)
	if !ok {
		return
	}

	lock := mediaLock(projectID)
	ctx := c.Request.Context()
	if err := lock.Lock(ctx); err != nil {
		log.Printf("media lock for project %d failed: %v", projectID, err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "internal error"})
		return
	}
	defer lock.Unlock(ctx)

	remaining, err := service.DeleteThumbnail(ctx, projectID, utils.RequesterEmail(c))
	if err != nil {
		writeServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"storageRemaining": remaining})
}

// GetImage streams an internally stored image. Requires a session;
// draft visibility applies on top.
func GetImage(c *gin.Context) {
	projectID, ok := projectIDParam(c)
	if !ok {
		return
	}
	mediaID := c.Param("media_id")
	if mediaID == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "bad media id"})
		return
	}

	object, info, err := service.StreamMedia(c.Request.Context(), projectID, mediaID, utils.RequesterEmail(c))
	if err != nil {
		writeServiceError(c, err)
		return
	}
	defer object.Close()

	fileName := utils.SanitizeHeaderFilename(mediaID)
	contentType := info.ContentType
	if contentType == "" {
		contentType = "application/octet-stream"
	}
	c.Header(
		"Content-Disposition",
		fmt.Sprintf("inline; filename=\"%s\"", fileName),
	)
	c.Header("Content-Type", contentType)
	c.Header("Content-Length", fmt.Sprintf("%d", info.Size))

	if _, err := io.Copy(c.Writer, object); err != nil {
		log.Println("stream error:", err)
	}
}

// UpdateImageAlt sets a gallery image caption.
func UpdateImageAlt(c *gin.Context) {
	projectID, ok := projectIDParam(c)
	if !ok {
		return
	}
	mediaID := strings.TrimSpace(c.Param("media_id"))
	if mediaID == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "bad media id"})
		return
	}
	var req dto.MediaAltRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request"})
		return
	}
	media, err := service.UpdateImageAlt(c.Request.Context(), projectID, mediaID, utils.RequesterEmail(c), req.Alt)
	if err != nil {
		writeServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"id": media.ID, "alt": media.AltText})
}

// UpdateThumbnailAlt sets the thumbnail caption.
func UpdateThumbnailAlt(c *gin.Context) {
	projectID, ok := projectIDParam(c)
	if !ok {
		return
	}
	var req dto.MediaAltRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request"})
		return
	}
	media, err := service.UpdateThumbnailAlt(c.Request.Context(), projectID, utils.RequesterEmail(c), req.Alt)
	if err != nil {
		writeServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"id": media.ID, "alt": media.AltText})
}
