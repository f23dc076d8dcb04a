package service

import (
	"ShowFolio/config"
	"ShowFolio/internal/dto"
	"ShowFolio/internal/repo"
	"ShowFolio/model"
	"ShowFolio/utils"
	"context"
	"errors"
	"fmt"
	"strconv"
	"strings"
	"time"

	"gorm.io/gorm"
)

const projectCacheTTL = 5 * time.Minute

const (
	maxTitleLen       = 255
	maxDescriptionLen = 20000
	maxSearchFilters  = 10
	maxSearchLimit    = 100
	defaultSearchPage = 24
)

// InvalidateProjectCache drops the cached detail document after any
// project mutation.
func InvalidateProjectCache(ctx context.Context, projectID uint64) {
	if ctx == nil {
		ctx = context.Background()
	}
	_ = utils.InvalidateProjectDetailCache(ctx, projectID)
}

// CreateProject creates a draft project for a student. The storage
// allotment is seeded from configuration, and the owner is inserted as
// an EDITOR contributor so collaborator listings always include them.
func CreateProject(owner *model.User) (*model.Project, error) {
	if owner.Role != model.RoleStudent {
		return nil, ErrForbidden
	}
	project := &model.Project{
		Visibility:       model.VisibilityDraft,
		OwnerID:          owner.ID,
		StorageRemaining: config.AppConfig.ProjectStorageQuota,
	}
	err := repo.Db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Create(project).Error; err != nil {
			return err
		}
		ownerID := owner.ID
		contributor := &model.Contributor{
			ProjectID: project.ID,
			Name:      strings.TrimSpace(owner.FirstName + " " + owner.LastName),
			Email:     owner.Email,
			Role:      model.ContributorEditor,
			UserID:    &ownerID,
		}
		return tx.Create(contributor).Error
	})
	if err != nil {
		return nil, err
	}
	return project, nil
}

// GetProjectDetail loads the full project document, enforcing the
// draft visibility rule for the requester.
func GetProjectDetail(ctx context.Context, projectID uint64, requesterEmail string) (*dto.ProjectDetail, error) {
	if cached, ok := utils.GetProjectDetailFromCache(ctx, projectID); ok {
		if !CanView(cached.Visibility, cached.OwnerEmail, refsToContributors(cached.Contributors), requesterEmail) {
			return nil, ErrForbidden
		}
		return cached, nil
	}

	var project model.Project
	err := repo.Db.
		Preload("Owner").
		Preload("Contributors", func(db *gorm.DB) *gorm.DB { return db.Order("created_at asc") }).
		Preload("Media", func(db *gorm.DB) *gorm.DB { return db.Order("created_at desc") }).
		Preload("Links").
		Preload("SkillTags").
		Preload("Questions", func(db *gorm.DB) *gorm.DB { return db.Order("created_at asc") }).
		Where("id = ?", projectID).
		First(&project).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	if project.Visibility == model.VisibilityDeleted {
		return nil, ErrNotFound
	}
	if !CanView(project.Visibility, project.Owner.Email, project.Contributors, requesterEmail) {
		return nil, ErrForbidden
	}

	detail := buildProjectDetail(&project)
	_ = utils.SetProjectDetailToCache(ctx, projectID, detail, projectCacheTTL)
	return detail, nil
}

func refsToContributors(refs []dto.ContributorRef) []model.Contributor {
	out := make([]model.Contributor, 0, len(refs))
	for _, ref := range refs {
		out = append(out, model.Contributor{Email: ref.Email, Role: ref.Role})
	}
	return out
}

func buildProjectDetail(project *model.Project) *dto.ProjectDetail {
	detail := &dto.ProjectDetail{
		ProjectID:        project.ID,
		Title:            project.Title,
		Description:      project.Description,
		Visibility:       project.Visibility,
		OwnerName:        strings.TrimSpace(project.Owner.FirstName + " " + project.Owner.LastName),
		OwnerEmail:       project.Owner.Email,
		Contributors:     make([]dto.ContributorRef, 0, len(project.Contributors)),
		Images:           make([]dto.MediaRef, 0, len(project.Media)),
		Links:            make([]dto.LinkRef, 0, len(project.Links)),
		SkillTags:        make([]string, 0, len(project.SkillTags)),
		Questions:        make([]dto.QuestionRef, 0, len(project.Questions)),
		StorageRemaining: project.StorageRemaining,
	}
	for _, c := range project.Contributors {
		detail.Contributors = append(detail.Contributors, dto.ContributorRef{
			ID:    c.ID,
			Name:  c.Name,
			Email: c.Email,
			Role:  c.Role,
		})
	}
	for _, m := range project.Media {
		ref := dto.MediaRef{ID: m.ID, URL: m.URL, AltText: m.AltText}
		if m.Kind == model.MediaKindThumbnail {
			thumb := ref
			detail.Thumbnail = &thumb
			continue
		}
		detail.Images = append(detail.Images, ref)
	}
	for _, l := range project.Links {
		detail.Links = append(detail.Links, dto.LinkRef{ID: l.ID, URL: l.URL, CoverText: l.Label})
	}
	for _, t := range project.SkillTags {
		detail.SkillTags = append(detail.SkillTags, t.Name)
	}
	for _, q := range project.Questions {
		detail.Questions = append(detail.Questions, dto.QuestionRef{ID: q.ID, Question: q.Question, Answer: q.Answer})
	}
	return detail
}

// SearchPublicProjects lists PUBLIC projects matching keyword and
// skill filters, newest first, with keyset pagination.
func SearchPublicProjects(req *dto.ProjectSearchRequest) (*dto.ProjectSearchResponse, error) {
	limit := req.Limit
	if limit <= 0 {
		limit = defaultSearchPage
	}
	if limit > maxSearchLimit {
		limit = maxSearchLimit
	}
	if len(req.Keywords) > maxSearchFilters || len(req.Skills) > maxSearchFilters {
		return nil, fmt.Errorf("%w: too many filter parameters", ErrInvalidInput)
	}

	query := repo.Db.Model(&model.Project{}).
		Preload("Contributors", func(db *gorm.DB) *gorm.DB { return db.Order("created_at asc") }).
		Preload("Media", "kind = ?", model.MediaKindThumbnail).
		Preload("SkillTags").
		Where("visibility = ?", model.VisibilityPublic)

	if len(req.Keywords) > 0 {
		keywordQuery := repo.Db
		for _, keyword := range req.Keywords {
			pattern := "%" + keyword + "%"
			keywordQuery = keywordQuery.Or("title LIKE ? OR description LIKE ?", pattern, pattern)
		}
		query = query.Where(keywordQuery)
	}
	if len(req.Skills) > 0 {
		query = query.
			Joins("JOIN project_skill_tags pst ON pst.project_id = project.id").
			Joins("JOIN skill_tag st ON st.id = pst.skill_tag_id").
			Where("st.name IN ?", req.Skills).
			Distinct("project.*")
	}
	if req.Token != "" {
		cursor, err := strconv.ParseUint(req.Token, 10, 64)
		if err != nil {
			return nil, fmt.Errorf("%w: bad pagination token", ErrInvalidInput)
		}
		query = query.Where("project.id <= ?", cursor)
	}

	var projects []model.Project
	if err := query.Order("project.id DESC").Limit(limit + 1).Find(&projects).Error; err != nil {
		return nil, err
	}

	resp := &dto.ProjectSearchResponse{Projects: make([]dto.ProjectSummary, 0, len(projects))}
	if len(projects) > limit {
		resp.PaginationToken = strconv.FormatUint(projects[limit].ID, 10)
		projects = projects[:limit]
	}
	for i := range projects {
		resp.Projects = append(resp.Projects, buildProjectSummary(&projects[i]))
	}
	return resp, nil
}

func buildProjectSummary(project *model.Project) dto.ProjectSummary {
	summary := dto.ProjectSummary{
		ProjectID:    project.ID,
		Title:        project.Title,
		Description:  project.Description,
		Contributors: make([]string, 0, len(project.Contributors)),
		SkillTags:    make([]string, 0, len(project.SkillTags)),
	}
	for _, c := range project.Contributors {
		summary.Contributors = append(summary.Contributors, c.Name)
	}
	for _, t := range project.SkillTags {
		summary.SkillTags = append(summary.SkillTags, t.Name)
	}
	for _, m := range project.Media {
		if m.Kind == model.MediaKindThumbnail {
			summary.Thumbnail = &dto.MediaRef{ID: m.ID, URL: m.URL, AltText: m.AltText}
			break
		}
	}
	return summary
}

// UpdateProjectTitle sets a project's title.
func UpdateProjectTitle(ctx context.Context, projectID uint64, requesterEmail, title string) error {
	title = strings.TrimSpace(title)
	if title == "" || len(title) > maxTitleLen {
		return fmt.Errorf("%w: bad title", ErrInvalidInput)
	}
	return updateProjectColumn(ctx, projectID, requesterEmail, "title", title)
}

// UpdateProjectDescription sets a project's description.
func UpdateProjectDescription(ctx context.Context, projectID uint64, requesterEmail, description string) error {
	if len(description) > maxDescriptionLen {
		return fmt.Errorf("%w: description too long", ErrInvalidInput)
	}
	return updateProjectColumn(ctx, projectID, requesterEmail, "description", description)
}

// UpdateProjectVisibility transitions a project between DRAFT, PUBLIC
// and DELETED. DELETED is the soft-delete terminal state.
func UpdateProjectVisibility(ctx context.Context, projectID uint64, requesterEmail, visibility string) error {
	switch visibility {
	case model.VisibilityDraft, model.VisibilityPublic, model.VisibilityDeleted:
	default:
		return fmt.Errorf("%w: bad visibility", ErrInvalidInput)
	}
	return updateProjectColumn(ctx, projectID, requesterEmail, "visibility", visibility)
}

func updateProjectColumn(ctx context.Context, projectID uint64, requesterEmail, column string, value interface{}) error {
	if _, err := loadProjectForEdit(projectID, requesterEmail); err != nil {
		return err
	}
	if err := repo.Db.Model(&model.Project{}).
		Where("id = ?", projectID).
		UpdateColumn(column, value).Error; err != nil {
		return err
	}
	InvalidateProjectCache(ctx, projectID)
	return nil
}
