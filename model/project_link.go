package model

import "time"

type ProjectLink struct {
	ID uint64 `gorm:"primaryKey" json:"id"`

	ProjectID uint64  `gorm:"column:project_id;not null;index" json:"project_id"`
	Project   Project `gorm:"foreignKey:ProjectID;references:ID;constraint:OnDelete:CASCADE" json:"-"`

	URL   string `gorm:"column:url;size:2048;not null" json:"url"`
	Label string `gorm:"column:label;size:160;not null;default:''" json:"label"`

	CreatedAt time.Time `json:"created_at"`
}

// TableName returns the database table name.
func (ProjectLink) TableName() string {
	return "project_link"
}
