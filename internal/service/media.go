package service

import (
	"ShowFolio/config"
	"ShowFolio/internal/dto"
	"ShowFolio/internal/repo"
	"ShowFolio/internal/storage"
	"ShowFolio/internal/task"
	"ShowFolio/model"
	"errors"
	"fmt"
	"io"
	"log"
	"strings"

	"github.com/google/uuid"
	"golang.org/x/net/context"
	"gorm.io/gorm"
)

// NewMediaID returns a fresh high-entropy media identifier. Object keys
// derive from it, so collisions within a project are ruled out.
func NewMediaID() string {
	return uuid.NewString()
}

// MIME types accepted for binary media uploads.
var acceptedImageTypes = []string{
	"image/png",
	"image/jpeg",
	"image/gif",
	"image/svg+xml",
	"image/webp",
	"image/x-icon",
}

const (
	maxMediaURLLen = 2048
	maxAltTextLen  = 512
)

// IsAcceptedImageType reports whether a Content-Type is uploadable.
func IsAcceptedImageType(contentType string) bool {
	contentType = strings.TrimSpace(strings.ToLower(contentType))
	if i := strings.Index(contentType, ";"); i >= 0 {
		contentType = strings.TrimSpace(contentType[:i])
	}
	for _, t := range acceptedImageTypes {
		if contentType == t {
			return true
		}
	}
	return false
}

// ValidateExternalLink checks an external media URL and caption.
func ValidateExternalLink(link, alt string) error {
	link = strings.TrimSpace(link)
	if link == "" {
		return fmt.Errorf("%w: image link required", ErrInvalidInput)
	}
	if len(link) > maxMediaURLLen {
		return fmt.Errorf("%w: image link too long", ErrInvalidInput)
	}
	if len(alt) > maxAltTextLen {
		return fmt.Errorf("%w: caption too long", ErrInvalidInput)
	}
	return nil
}

// MediaURL builds the serving path for an internally stored object.
func MediaURL(projectID uint64, mediaID string) string {
	return fmt.Sprintf("/api/v1/project/%d/image/%s", projectID, mediaID)
}

// loadProjectForEdit fetches a project with its contributors and
// checks the requester's edit right.
func loadProjectForEdit(projectID uint64, requesterEmail string) (*model.Project, error) {
	var project model.Project
	err := repo.Db.Preload("Contributors").Preload("Owner").
		Where("id = ? AND visibility <> ?", projectID, model.VisibilityDeleted).
		First(&project).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	if !CanEdit(project.Owner.Email, project.Contributors, requesterEmail) {
		return nil, ErrForbidden
	}
	return &project, nil
}

// thumbnailSlotFree reports whether the project's singular thumbnail
// slot is empty.
func thumbnailSlotFree(projectID uint64) (bool, error) {
	var count int64
	err := repo.Db.Model(&model.Media{}).
		Where("project_id = ? AND kind = ?", projectID, model.MediaKindThumbnail).
		Count(&count).Error
	if err != nil {
		return false, err
	}
	return count == 0, nil
}

// chargeStorage atomically decrements a project's remaining quota,
// refusing decrements that would drive it negative. Returns false when
// the conditional update matched no row, meaning a concurrent upload
// got there first.
func chargeStorage(projectID uint64, n int64) (bool, error) {
	res := repo.Db.Model(&model.Project{}).
		Where("id = ? AND storage_remaining >= ?", projectID, n).
		UpdateColumn("storage_remaining", gorm.Expr("storage_remaining - ?", n))
	if res.Error != nil {
		return false, res.Error
	}
	return res.RowsAffected > 0, nil
}

// refundStorage atomically returns bytes to a project's quota.
func refundStorage(db *gorm.DB, projectID uint64, n int64) error {
	return db.Model(&model.Project{}).
		Where("id = ?", projectID).
		UpdateColumn("storage_remaining", gorm.Expr("storage_remaining + ?", n)).Error
}

func currentStorageRemaining(projectID uint64) (int64, error) {
	var project model.Project
	err := repo.Db.Select("storage_remaining").Where("id = ?", projectID).First(&project).Error
	return project.StorageRemaining, err
}

// removeOrEnqueue removes an object from the store; when the removal
// fails it records a cleanup task for the worker so the bucket never
// keeps an orphan silently.
func removeOrEnqueue(ctx context.Context, objectName, mediaID, reason string) {
	if storage.Default == nil {
		return
	}
	if err := storage.Default.RemoveObject(ctx, config.AppConfig.BucketName, objectName); err != nil {
		log.Printf("remove object %s failed: %v, scheduling cleanup", objectName, err)
		if _, taskErr := task.CreateCleanupTask(objectName, mediaID, reason); taskErr != nil {
			log.Printf("schedule cleanup for %s failed: %v", objectName, taskErr)
		}
	}
}

// AttachExternalMedia records a linked image. External links consume no
// storage, so the quota counter is left untouched.
func AttachExternalMedia(
	ctx context.Context,
	projectID uint64,
	requesterEmail string,
	kind string,
	link string,
	alt string,
) (*dto.MediaResponse, error) {
	project, err := loadProjectForEdit(projectID, requesterEmail)
	if err != nil {
		return nil, err
	}
	if err := ValidateExternalLink(link, alt); err != nil {
		return nil, err
	}
	if kind == model.MediaKindThumbnail {
		free, err := thumbnailSlotFree(projectID)
		if err != nil {
			return nil, err
		}
		if !free {
			return nil, ErrThumbnailExists
		}
	}
	media := &model.Media{
		ID:        NewMediaID(),
		ProjectID: projectID,
		Kind:      kind,
		URL:       strings.TrimSpace(link),
		AltText:   alt,
		External:  true,
		Size:      0,
	}
	if err := repo.Db.Create(media).Error; err != nil {
		return nil, err
	}
	InvalidateProjectCache(ctx, projectID)
	return &dto.MediaResponse{
		ID:               media.ID,
		URL:              media.URL,
		AltText:          media.AltText,
		StorageRemaining: project.StorageRemaining,
	}, nil
}

// UploadMediaStream runs the quota-enforced binary upload pipeline:
// authorize, stream through a QuotaReader into the object store, stat
// for the authoritative size, charge the quota, persist the record.
// Any failure after bytes hit the bucket rolls the object back.
func UploadMediaStream(
	ctx context.Context,
	projectID uint64,
	requesterEmail string,
	kind string,
	contentType string,
	body io.Reader,
) (*dto.MediaResponse, error) {
	project, err := loadProjectForEdit(projectID, requesterEmail)
	if err != nil {
		return nil, err
	}
	if !IsAcceptedImageType(contentType) {
		return nil, ErrUnsupportedMedia
	}
	if body == nil {
		return nil, fmt.Errorf("%w: no image provided", ErrInvalidInput)
	}
	if kind == model.MediaKindThumbnail {
		free, err := thumbnailSlotFree(projectID)
		if err != nil {
			return nil, err
		}
		if !free {
			return nil, ErrThumbnailExists
		}
	}
	if storage.Default == nil {
		return nil, fmt.Errorf("storage not initialized")
	}

	mediaID := NewMediaID()
	objectName := storage.ObjectKey(projectID, mediaID)
	quotaReader := storage.NewQuotaReader(body, project.StorageRemaining)

	err = storage.Default.PutObject(
		ctx,
		config.AppConfig.BucketName,
		objectName,
		quotaReader,
		-1,
		storage.PutOptions{ContentType: contentType},
	)
	if err != nil {
		// A failed put may have committed earlier parts already.
		removeOrEnqueue(ctx, objectName, mediaID, task.ReasonPartialUpload)
		if quotaReader.Exceeded() {
			return nil, ErrInsufficientStorage
		}
		return nil, err
	}

	// The stat call is the accounting source of truth, never a
	// client-declared size.
	info, err := storage.Default.StatObject(ctx, config.AppConfig.BucketName, objectName)
	if err != nil {
		removeOrEnqueue(ctx, objectName, mediaID, task.ReasonPartialUpload)
		return nil, err
	}
	if info.Size == 0 {
		// An empty request body still produces a zero-length object.
		removeOrEnqueue(ctx, objectName, mediaID, task.ReasonPartialUpload)
		return nil, fmt.Errorf("%w: no image provided", ErrInvalidInput)
	}

	charged, err := chargeStorage(projectID, info.Size)
	if err != nil {
		removeOrEnqueue(ctx, objectName, mediaID, task.ReasonPartialUpload)
		return nil, err
	}
	if !charged {
		removeOrEnqueue(ctx, objectName, mediaID, task.ReasonPartialUpload)
		return nil, ErrInsufficientStorage
	}

	media := &model.Media{
		ID:        mediaID,
		ProjectID: projectID,
		Kind:      kind,
		URL:       MediaURL(projectID, mediaID),
		AltText:   "",
		External:  false,
		Size:      info.Size,
	}
	if err := repo.Db.Create(media).Error; err != nil {
		if refundErr := refundStorage(repo.Db, projectID, info.Size); refundErr != nil {
			log.Printf("refund storage for project %d failed: %v", projectID, refundErr)
		}
		removeOrEnqueue(ctx, objectName, mediaID, task.ReasonPartialUpload)
		return nil, err
	}

	remaining, err := currentStorageRemaining(projectID)
	if err != nil {
		remaining = project.StorageRemaining - info.Size
	}
	InvalidateProjectCache(ctx, projectID)
	return &dto.MediaResponse{
		ID:               media.ID,
		URL:              media.URL,
		AltText:          media.AltText,
		StorageRemaining: remaining,
	}, nil
}

// DeleteImage removes a gallery image and reclaims its quota charge.
func DeleteImage(ctx context.Context, projectID uint64, mediaID, requesterEmail string) (int64, error) {
	if _, err := loadProjectForEdit(projectID, requesterEmail); err != nil {
		return 0, err
	}
	var media model.Media
	err := repo.Db.
		Where("id = ? AND project_id = ? AND kind = ?", mediaID, projectID, model.MediaKindImage).
		First(&media).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return 0, ErrNotFound
		}
		return 0, err
	}
	return deleteMediaRecord(ctx, &media)
}

// DeleteThumbnail removes the project's thumbnail slot.
func DeleteThumbnail(ctx context.Context, projectID uint64, requesterEmail string) (int64, error) {
	if _, err := loadProjectForEdit(projectID, requesterEmail); err != nil {
		return 0, err
	}
	var media model.Media
	err := repo.Db.
		Where("project_id = ? AND kind = ?", projectID, model.MediaKindThumbnail).
		First(&media).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return 0, ErrNotFound
		}
		return 0, err
	}
	return deleteMediaRecord(ctx, &media)
}

// deleteMediaRecord removes the underlying object before the record.
// If object removal fails, the record stays so the handle to the blob
// is never lost; a cleanup task retries the removal and the client may
// simply retry the delete afterwards.
func deleteMediaRecord(ctx context.Context, media *model.Media) (int64, error) {
	if !media.External {
		if storage.Default == nil {
			return 0, fmt.Errorf("storage not initialized")
		}
		objectName := storage.ObjectKey(media.ProjectID, media.ID)
		if err := storage.Default.RemoveObject(ctx, config.AppConfig.BucketName, objectName); err != nil {
			log.Printf("remove object %s failed: %v, scheduling cleanup", objectName, err)
			if _, taskErr := task.CreateCleanupTask(objectName, media.ID, task.ReasonDeleteRetry); taskErr != nil {
				log.Printf("schedule cleanup for %s failed: %v", objectName, taskErr)
			}
			return 0, err
		}
	}
	err := repo.Db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Delete(&model.Media{}, "id = ?", media.ID).Error; err != nil {
			return err
		}
		if media.Size > 0 {
			return refundStorage(tx, media.ProjectID, media.Size)
		}
		return nil
	})
	if err != nil {
		return 0, err
	}
	remaining, err := currentStorageRemaining(media.ProjectID)
	if err != nil {
		return 0, err
	}
	InvalidateProjectCache(ctx, media.ProjectID)
	return remaining, nil
}

// StreamMedia opens an internally stored object for serving, applying
// the draft visibility rule.
func StreamMedia(
	ctx context.Context,
	projectID uint64,
	mediaID string,
	requesterEmail string,
) (io.ReadCloser, storage.ObjectInfo, error) {
	var project model.Project
	err := repo.Db.Preload("Contributors").Preload("Owner").
		Where("id = ? AND visibility <> ?", projectID, model.VisibilityDeleted).
		First(&project).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, storage.ObjectInfo{}, ErrNotFound
		}
		return nil, storage.ObjectInfo{}, err
	}
	if !CanView(project.Visibility, project.Owner.Email, project.Contributors, requesterEmail) {
		return nil, storage.ObjectInfo{}, ErrForbidden
	}
	if storage.Default == nil {
		return nil, storage.ObjectInfo{}, fmt.Errorf("storage not initialized")
	}
	objectName := storage.ObjectKey(projectID, mediaID)
	reader, info, err := storage.Default.GetObject(ctx, config.AppConfig.BucketName, objectName)
	if err != nil {
		if errors.Is(err, storage.ErrObjectNotFound) {
			return nil, storage.ObjectInfo{}, ErrNotFound
		}
		return nil, storage.ObjectInfo{}, err
	}
	return reader, info, nil
}

// UpdateImageAlt updates a gallery image caption.
func UpdateImageAlt(ctx context.Context, projectID uint64, mediaID, requesterEmail, alt string) (*model.Media, error) {
	return updateMediaAlt(ctx, projectID, requesterEmail, alt, "id = ? AND project_id = ? AND kind = ?", mediaID, projectID, model.MediaKindImage)
}

// UpdateThumbnailAlt updates the thumbnail caption.
func UpdateThumbnailAlt(ctx context.Context, projectID uint64, requesterEmail, alt string) (*model.Media, error) {
	return updateMediaAlt(ctx, projectID, requesterEmail, alt, "project_id = ? AND kind = ?", projectID, model.MediaKindThumbnail)
}

func updateMediaAlt(ctx context.Context, projectID uint64, requesterEmail, alt string, query string, args ...interface{}) (*model.Media, error) {
	if _, err := loadProjectForEdit(projectID, requesterEmail); err != nil {
		return nil, err
	}
	if len(alt) > maxAltTextLen {
		return nil, fmt.Errorf("%w: caption too long", ErrInvalidInput)
	}
	var media model.Media
	if err := repo.Db.Where(query, args...).First(&media).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	if err := repo.Db.Model(&media).UpdateColumn("alt_text", alt).Error; err != nil {
		return nil, err
	}
	media.AltText = alt
	InvalidateProjectCache(ctx, projectID)
	return &media, nil
}
