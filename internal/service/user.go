package service

import (
	"ShowFolio/internal/repo"
	"ShowFolio/model"
	"ShowFolio/utils"
	"errors"
	"fmt"
	"net/mail"
	"strings"

	"gorm.io/gorm"
)

// IsEmailExist reports whether an account with the email already
// exists.
func IsEmailExist(email string) (bool, error) {
	var count int64
	err := repo.Db.Model(&model.User{}).Where("email = ?", email).Count(&count).Error
	if err != nil {
		return false, err
	}
	return count > 0, nil
}

// CreateUser inserts an inactive account with a hashed password.
// Activation flips is_active once the mailed token is redeemed.
func CreateUser(email, firstName, lastName, password, role string) (*model.User, error) {
	email = strings.ToLower(strings.TrimSpace(email))
	if _, err := mail.ParseAddress(email); err != nil {
		return nil, fmt.Errorf("%w: bad email", ErrInvalidInput)
	}
	switch role {
	case model.RoleStudent, model.RoleProfessor:
	default:
		return nil, fmt.Errorf("%w: bad role", ErrInvalidInput)
	}
	if len(password) < 8 {
		return nil, fmt.Errorf("%w: password too short", ErrInvalidInput)
	}

	user := &model.User{
		Email:     email,
		Password:  utils.GetPwd(password),
		FirstName: strings.TrimSpace(firstName),
		LastName:  strings.TrimSpace(lastName),
		Role:      role,
		IsActive:  false,
	}
	if err := repo.Db.Create(user).Error; err != nil {
		return nil, err
	}
	return user, nil
}

// FindUserByEmail loads an account by email.
func FindUserByEmail(email string) (*model.User, error) {
	var user model.User
	err := repo.Db.Where("email = ?", strings.ToLower(strings.TrimSpace(email))).First(&user).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return &user, nil
}

// ActivateUser marks an account active.
func ActivateUser(userID uint64) error {
	result := repo.Db.Model(&model.User{}).Where("id = ?", userID).UpdateColumn("is_active", true)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return ErrNotFound
	}
	return nil
}

// CheckPassword verifies login credentials against the stored hash.
func CheckPassword(user *model.User, password string) bool {
	return utils.CheckPwd(password, user.Password)
}
