package service

import (
	"ShowFolio/internal/repo"
	"ShowFolio/model"
	"context"
	"errors"
	"fmt"
	"net/mail"
	"strings"

	"gorm.io/gorm"
)

// AddContributor appends a blank contributor row the edit page fills
// in afterwards. Only the project owner may grow the collaborator
// list.
func AddContributor(ctx context.Context, projectID uint64, requesterEmail string) (*model.Contributor, error) {
	project, err := loadProjectForEdit(projectID, requesterEmail)
	if err != nil {
		return nil, err
	}
	if !strings.EqualFold(project.Owner.Email, requesterEmail) {
		return nil, ErrForbidden
	}
	contributor := &model.Contributor{
		ProjectID: projectID,
		Role:      model.ContributorViewer,
	}
	if err := repo.Db.Create(contributor).Error; err != nil {
		return nil, err
	}
	InvalidateProjectCache(ctx, projectID)
	return contributor, nil
}

// UpdateContributor rewrites a contributor row's name, email and role.
func UpdateContributor(ctx context.Context, projectID, contributorID uint64, requesterEmail, name, email, role string) error {
	if _, err := loadProjectForEdit(projectID, requesterEmail); err != nil {
		return err
	}
	switch role {
	case model.ContributorEditor, model.ContributorViewer:
	default:
		return fmt.Errorf("%w: bad contributor role", ErrInvalidInput)
	}
	email = strings.TrimSpace(email)
	if email != "" {
		if _, err := mail.ParseAddress(email); err != nil {
			return fmt.Errorf("%w: bad contributor email", ErrInvalidInput)
		}
	}

	var contributor model.Contributor
	err := repo.Db.Where("id = ? AND project_id = ?", contributorID, projectID).First(&contributor).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ErrNotFound
		}
		return err
	}

	updates := map[string]interface{}{
		"name":  strings.TrimSpace(name),
		"email": email,
		"role":  role,
	}
	if err := repo.Db.Model(&contributor).Updates(updates).Error; err != nil {
		return err
	}
	InvalidateProjectCache(ctx, projectID)
	return nil
}

// DeleteContributor removes a contributor row. The owner's own row
// cannot be removed.
func DeleteContributor(ctx context.Context, projectID, contributorID uint64, requesterEmail string) error {
	project, err := loadProjectForEdit(projectID, requesterEmail)
	if err != nil {
		return err
	}

	var contributor model.Contributor
	err = repo.Db.Where("id = ? AND project_id = ?", contributorID, projectID).First(&contributor).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ErrNotFound
		}
		return err
	}
	if strings.EqualFold(contributor.Email, project.Owner.Email) {
		return fmt.Errorf("%w: owner row cannot be removed", ErrInvalidInput)
	}

	if err := repo.Db.Delete(&contributor).Error; err != nil {
		return err
	}
	InvalidateProjectCache(ctx, projectID)
	return nil
}
