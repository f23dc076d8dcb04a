package model

import "time"

// CleanupTask records an object-store removal that could not be done
// inline: a partial upload left behind after a failed put, or a delete
// whose object removal failed. The worker retries these until the
// bucket holds no orphan.
type CleanupTask struct {
	ID uint64 `gorm:"primaryKey;autoIncrement" json:"id"`

	Bucket     string `gorm:"column:bucket;type:varchar(64);not null" json:"bucket"`
	ObjectName string `gorm:"column:object_name;type:varchar(255);not null" json:"object_name"`

	MediaID string `gorm:"column:media_id;size:36;not null;default:''" json:"media_id"`
	Reason  string `gorm:"column:reason;type:varchar(64);not null" json:"reason"`

	Status      string     `gorm:"column:status;type:varchar(32);index;not null" json:"status"`
	ErrorMsg    string     `gorm:"column:error_msg;type:text" json:"error_msg"`
	RetryCount  int        `gorm:"column:retry_count;default:0" json:"retry_count"`
	NextRetryAt *time.Time `gorm:"column:next_retry_at" json:"next_retry_at"`
	FinishedAt  *time.Time `gorm:"column:finished_at" json:"finished_at"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// TableName returns the database table name.
func (CleanupTask) TableName() string {
	return "cleanup_task"
}
