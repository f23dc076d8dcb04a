package service

import (
	"ShowFolio/internal/repo"
	"ShowFolio/model"
	"context"
	"errors"
	"fmt"
	"net/url"
	"strings"

	"gorm.io/gorm"
)

const maxLinkLabelLen = 160

// AddProjectLink attaches an outbound link (repository, demo, paper)
// to a project.
func AddProjectLink(ctx context.Context, projectID uint64, requesterEmail, rawURL, label string) (*model.ProjectLink, error) {
	if _, err := loadProjectForEdit(projectID, requesterEmail); err != nil {
		return nil, err
	}
	rawURL = strings.TrimSpace(rawURL)
	parsed, err := url.Parse(rawURL)
	if err != nil || (parsed.Scheme != "http" && parsed.Scheme != "https") || parsed.Host == "" {
		return nil, fmt.Errorf("%w: bad link url", ErrInvalidInput)
	}
	if len(rawURL) > maxMediaURLLen {
		return nil, fmt.Errorf("%w: link url too long", ErrInvalidInput)
	}
	if len(label) > maxLinkLabelLen {
		return nil, fmt.Errorf("%w: link label too long", ErrInvalidInput)
	}

	link := &model.ProjectLink{
		ProjectID: projectID,
		URL:       rawURL,
		Label:     strings.TrimSpace(label),
	}
	if err := repo.Db.Create(link).Error; err != nil {
		return nil, err
	}
	InvalidateProjectCache(ctx, projectID)
	return link, nil
}

// DeleteProjectLink removes an outbound link from a project.
func DeleteProjectLink(ctx context.Context, projectID, linkID uint64, requesterEmail string) error {
	if _, err := loadProjectForEdit(projectID, requesterEmail); err != nil {
		return err
	}
	var link model.ProjectLink
	err := repo.Db.Where("id = ? AND project_id = ?", linkID, projectID).First(&link).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ErrNotFound
		}
		return err
	}
	if err := repo.Db.Delete(&link).Error; err != nil {
		return err
	}
	InvalidateProjectCache(ctx, projectID)
	return nil
}
