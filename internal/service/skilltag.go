package service

import (
	"ShowFolio/internal/repo"
	"ShowFolio/model"
	"ShowFolio/utils"
	"context"
	"fmt"
	"strings"
	"time"

	"gorm.io/gorm"
)

const (
	maxSkillTagLen   = 60
	skillTagCacheTTL = 10 * time.Minute
)

func normalizeSkillTag(name string) (string, error) {
	name = strings.TrimSpace(name)
	if name == "" || len(name) > maxSkillTagLen {
		return "", fmt.Errorf("%w: bad skill tag", ErrInvalidInput)
	}
	return name, nil
}

// AttachSkillTag links a skill tag to a project, creating the tag row
// on first use.
func AttachSkillTag(ctx context.Context, projectID uint64, requesterEmail, name string) error {
	project, err := loadProjectForEdit(projectID, requesterEmail)
	if err != nil {
		return err
	}
	name, err = normalizeSkillTag(name)
	if err != nil {
		return err
	}

	tag := model.SkillTag{Name: name}
	err = repo.Db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("name = ?", name).FirstOrCreate(&tag).Error; err != nil {
			return err
		}
		return tx.Model(project).Association("SkillTags").Append(&tag)
	})
	if err != nil {
		return err
	}
	InvalidateProjectCache(ctx, projectID)
	_ = utils.InvalidateSkillTagsCache(ctx)
	return nil
}

// DetachSkillTag unlinks a skill tag from a project. The tag row
// itself is kept for reuse and for the global tag listing.
func DetachSkillTag(ctx context.Context, projectID uint64, requesterEmail, name string) error {
	project, err := loadProjectForEdit(projectID, requesterEmail)
	if err != nil {
		return err
	}
	name, err = normalizeSkillTag(name)
	if err != nil {
		return err
	}

	var tag model.SkillTag
	if err := repo.Db.Where("name = ?", name).First(&tag).Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			return ErrNotFound
		}
		return err
	}
	if err := repo.Db.Model(project).Association("SkillTags").Delete(&tag); err != nil {
		return err
	}
	InvalidateProjectCache(ctx, projectID)
	return nil
}

// ListSkillTags returns all known skill tag names, cached briefly
// since the search page requests them on every load.
func ListSkillTags(ctx context.Context) ([]string, error) {
	if tags, ok := utils.GetSkillTagsFromCache(ctx); ok {
		return tags, nil
	}
	var names []string
	if err := repo.Db.Model(&model.SkillTag{}).Order("name asc").Pluck("name", &names).Error; err != nil {
		return nil, err
	}
	_ = utils.SetSkillTagsToCache(ctx, names, skillTagCacheTTL)
	return names, nil
}
