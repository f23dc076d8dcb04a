package model

import (
	"time"

	"gorm.io/gorm"
)

const (
	RoleStudent   = "student"
	RoleProfessor = "professor"
)

type User struct {
	ID uint64 `gorm:"primaryKey"`

	Email string `gorm:"column:email;type:varchar(255);not null;unique"`

	Password string `gorm:"column:pass_word;type:varchar(255);not null" json:"-"`

	FirstName string `gorm:"column:first_name;type:varchar(80);not null;default:''"`
	LastName  string `gorm:"column:last_name;type:varchar(80);not null;default:''"`

	Role string `gorm:"column:role;type:varchar(20);not null;default:'student'"`

	IsActive bool `gorm:"column:is_active;not null;default:false"`

	CreatedAt time.Time
	DeletedAt gorm.DeletedAt `gorm:"index"`
}

// TableName returns the database table name.
func (User) TableName() string {
	return "user_db"
}
