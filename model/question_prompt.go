package model

import "time"

// QuestionPrompt is a Q&A entry on a project page. Rows are created
// blank and filled in by a later edit.
type QuestionPrompt struct {
	ID uint64 `gorm:"primaryKey" json:"id"`

	ProjectID uint64  `gorm:"column:project_id;not null;index" json:"project_id"`
	Project   Project `gorm:"foreignKey:ProjectID;references:ID;constraint:OnDelete:CASCADE" json:"-"`

	Question string `gorm:"column:question;size:512;not null;default:''" json:"question"`
	Answer   string `gorm:"column:answer;type:text" json:"answer"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// TableName returns the database table name.
func (QuestionPrompt) TableName() string {
	return "question_prompt"
}
