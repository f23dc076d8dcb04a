package model

import "time"

type SkillTag struct {
	ID uint64 `gorm:"primaryKey" json:"id"`

	Name string `gorm:"column:name;size:80;uniqueIndex;not null" json:"name"`

	CreatedAt time.Time `json:"created_at"`
}

// TableName returns the database table name.
func (SkillTag) TableName() string {
	return "skill_tag"
}
