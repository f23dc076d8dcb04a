package task

import (
	"ShowFolio/config"
	"ShowFolio/internal/mq"
	"ShowFolio/internal/repo"
	"ShowFolio/internal/storage"
	"ShowFolio/model"
	"context"
	"encoding/json"
	"time"
)

// Cleanup reasons recorded on the task row.
const (
	ReasonPartialUpload = "partial_upload"
	ReasonDeleteRetry   = "delete_retry"
)

// CleanupMessage is the payload sent to the worker.
type CleanupMessage struct {
	TaskID  uint64 `json:"task_id"`
	Attempt int    `json:"attempt"`
}

// CreateCleanupTask records a pending object removal and enqueues it.
// The task row survives broker outages: the worker can be pointed at
// pending rows manually if publishing failed.
func CreateCleanupTask(objectName, mediaID, reason string) (*model.CleanupTask, error) {
	cleanupTask := &model.CleanupTask{
		Bucket:     config.AppConfig.BucketName,
		ObjectName: objectName,
		MediaID:    mediaID,
		Reason:     reason,
		Status:     "pending",
	}
	if err := repo.Db.Create(cleanupTask).Error; err != nil {
		return nil, err
	}
	msg := CleanupMessage{
		TaskID:  cleanupTask.ID,
		Attempt: 0,
	}
	body, err := json.Marshal(msg)
	if err != nil {
		markCleanupTaskFailed(cleanupTask.ID, err)
		return nil, err
	}
	publisher, err := mq.GetPublisher()
	if err != nil {
		markCleanupTaskFailed(cleanupTask.ID, err)
		return nil, err
	}
	if err := publisher.PublishTask(context.Background(), body); err != nil {
		markCleanupTaskFailed(cleanupTask.ID, err)
		return nil, err
	}
	return cleanupTask, nil
}

// ProcessCleanupTask retries the object removal for a task. Removal is
// idempotent against the store, so re-deliveries are harmless.
func ProcessCleanupTask(ctx context.Context, taskID uint64) error {
	var cleanupTask model.CleanupTask
	if err := repo.Db.Where("id = ?", taskID).First(&cleanupTask).Error; err != nil {
		return err
	}
	if cleanupTask.Status == "done" {
		return nil
	}
	res := repo.Db.Model(&model.CleanupTask{}).
		Where("id = ? AND status IN ?", taskID, []string{"pending", "retrying"}).
		Updates(map[string]interface{}{
			"status":    "running",
			"error_msg": "",
		})
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return nil
	}

	if err := storage.Default.RemoveObject(ctx, cleanupTask.Bucket, cleanupTask.ObjectName); err != nil {
		return err
	}

	finishedAt := time.Now()
	return repo.Db.Model(&cleanupTask).Updates(map[string]interface{}{
		"status":      "done",
		"finished_at": &finishedAt,
	}).Error
}

func markCleanupTaskFailed(taskID uint64, err error) {
	finishedAt := time.Now()
	_ = repo.Db.Model(&model.CleanupTask{}).
		Where("id = ?", taskID).
		Updates(map[string]interface{}{
			"status":      "failed",
			"error_msg":   err.Error(),
			"finished_at": &finishedAt,
		}).Error
}
