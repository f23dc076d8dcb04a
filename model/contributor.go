package model

import "time"

const (
	ContributorEditor = "EDITOR"
	ContributorViewer = "VIEWER"
)

type Contributor struct {
	ID uint64 `gorm:"primaryKey" json:"id"`

	ProjectID uint64  `gorm:"column:project_id;not null;index" json:"project_id"`
	Project   Project `gorm:"foreignKey:ProjectID;references:ID;constraint:OnDelete:CASCADE" json:"-"`

	Name  string `gorm:"column:name;size:160;not null;default:''" json:"name"`
	Email string `gorm:"column:email;size:255;not null;default:'';index" json:"email"`

	Role string `gorm:"column:role;type:varchar(20);not null;default:'VIEWER'" json:"role"`

	// Set when the contributor maps to a registered account.
	UserID *uint64 `gorm:"column:user_id;index" json:"user_id,omitempty"`
	User   *User   `gorm:"foreignKey:UserID;references:ID" json:"-"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// TableName returns the database table name.
func (Contributor) TableName() string {
	return "contributor"
}
