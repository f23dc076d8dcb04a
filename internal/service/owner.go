package service

import (
	"ShowFolio/internal/dto"
	"ShowFolio/internal/repo"
	"ShowFolio/model"
	"context"
	"errors"
	"strings"

	"gorm.io/gorm"
)

// TransferProjectOwnership hands a project to another registered
// account. Only the current owner may transfer, and the new owner is
// upserted as an EDITOR contributor so they can edit right away.
func TransferProjectOwnership(ctx context.Context, projectID uint64, requesterEmail, newOwnerEmail string) (*dto.OwnerTransferResponse, error) {
	project, err := loadProjectForEdit(projectID, requesterEmail)
	if err != nil {
		return nil, err
	}
	if !strings.EqualFold(project.Owner.Email, requesterEmail) {
		return nil, ErrForbidden
	}

	newOwner, err := FindUserByEmail(newOwnerEmail)
	if err != nil {
		return nil, err
	}

	err = repo.Db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Model(&model.Project{}).
			Where("id = ?", projectID).
			UpdateColumn("owner_id", newOwner.ID).Error; err != nil {
			return err
		}

		newOwnerID := newOwner.ID
		var row model.Contributor
		err := tx.Where("project_id = ? AND email = ?", projectID, newOwner.Email).First(&row).Error
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return tx.Create(&model.Contributor{
				ProjectID: projectID,
				Name:      strings.TrimSpace(newOwner.FirstName + " " + newOwner.LastName),
				Email:     newOwner.Email,
				Role:      model.ContributorEditor,
				UserID:    &newOwnerID,
			}).Error
		}
		if err != nil {
			return err
		}
		return tx.Model(&row).Updates(map[string]interface{}{
			"role":    model.ContributorEditor,
			"user_id": newOwnerID,
		}).Error
	})
	if err != nil {
		return nil, err
	}
	InvalidateProjectCache(ctx, projectID)

	var contributors []model.Contributor
	if err := repo.Db.Where("project_id = ?", projectID).Order("created_at asc").Find(&contributors).Error; err != nil {
		return nil, err
	}
	resp := &dto.OwnerTransferResponse{
		Name:         strings.TrimSpace(newOwner.FirstName + " " + newOwner.LastName),
		Email:        newOwner.Email,
		Contributors: make([]dto.ContributorRef, 0, len(contributors)),
	}
	for _, c := range contributors {
		resp.Contributors = append(resp.Contributors, dto.ContributorRef{
			ID:    c.ID,
			Name:  c.Name,
			Email: c.Email,
			Role:  c.Role,
		})
	}
	return resp, nil
}
