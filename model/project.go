package model

import "time"

const (
	VisibilityDraft   = "DRAFT"
	VisibilityPublic  = "PUBLIC"
	VisibilityDeleted = "DELETED"
)

type Project struct {
	ID uint64 `gorm:"primaryKey" json:"id"`

	Title       string `gorm:"column:title;size:255;not null;default:''" json:"title"`
	Description string `gorm:"column:description;type:text" json:"description"`

	Visibility string `gorm:"column:visibility;type:varchar(20);index;not null;default:'DRAFT'" json:"visibility"`

	OwnerID uint64 `gorm:"column:owner_id;not null;index" json:"owner_id"`
	Owner   User   `gorm:"foreignKey:OwnerID;references:ID" json:"-"`

	// Bytes left of the project's media allotment. Seeded from
	// config.AppConfig.ProjectStorageQuota at creation and only ever
	// changed through conditional UPDATE expressions.
	StorageRemaining int64 `gorm:"column:storage_remaining;not null;default:0" json:"storage_remaining"`

	Contributors []Contributor    `gorm:"foreignKey:ProjectID" json:"contributors,omitempty"`
	Media        []Media          `gorm:"foreignKey:ProjectID" json:"media,omitempty"`
	Links        []ProjectLink    `gorm:"foreignKey:ProjectID" json:"links,omitempty"`
	SkillTags    []SkillTag       `gorm:"many2many:project_skill_tags;" json:"skill_tags,omitempty"`
	Questions    []QuestionPrompt `gorm:"foreignKey:ProjectID" json:"questions,omitempty"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// TableName returns the database table name.
func (Project) TableName() string {
	return "project"
}
