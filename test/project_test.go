package test

import (
	"ShowFolio/internal/dto"
	"ShowFolio/internal/repo"
	"ShowFolio/internal/service"
	"ShowFolio/model"
	"context"
	"errors"
	"fmt"
	"testing"
	"time"
)

func TestCreateProjectSeedsOwnerContributor(t *testing.T) {
	owner := createTestUser(t, model.RoleStudent)
	project := createTestProject(t, owner)

	if project.Visibility != model.VisibilityDraft {
		t.Fatalf("visibility = %s, want DRAFT", project.Visibility)
	}
	if project.StorageRemaining != 1000 {
		t.Fatalf("storage remaining = %d, want 1000", project.StorageRemaining)
	}

	var contributor model.Contributor
	err := repo.Db.Where("project_id = ? AND email = ?", project.ID, owner.Email).First(&contributor).Error
	if err != nil {
		t.Fatalf("owner contributor row missing: %v", err)
	}
	if contributor.Role != model.ContributorEditor {
		t.Fatalf("owner contributor role = %s, want EDITOR", contributor.Role)
	}
}

func TestProfessorCannotCreateProject(t *testing.T) {
	professor := createTestUser(t, model.RoleProfessor)
	_, err := service.CreateProject(professor)
	if !errors.Is(err, service.ErrForbidden) {
		t.Fatalf("err = %v, want ErrForbidden", err)
	}
}

func TestDraftVisibility(t *testing.T) {
	owner := createTestUser(t, model.RoleStudent)
	stranger := createTestUser(t, model.RoleStudent)
	project := createTestProject(t, owner)
	ctx := context.Background()

	if _, err := service.GetProjectDetail(ctx, project.ID, owner.Email); err != nil {
		t.Fatalf("owner denied their own draft: %v", err)
	}
	if _, err := service.GetProjectDetail(ctx, project.ID, stranger.Email); !errors.Is(err, service.ErrForbidden) {
		t.Fatalf("stranger on draft: err = %v, want ErrForbidden", err)
	}
	if _, err := service.GetProjectDetail(ctx, project.ID, ""); !errors.Is(err, service.ErrForbidden) {
		t.Fatalf("anonymous on draft: err = %v, want ErrForbidden", err)
	}

	if err := service.UpdateProjectVisibility(ctx, project.ID, owner.Email, model.VisibilityPublic); err != nil {
		t.Fatalf("publish failed: %v", err)
	}
	if _, err := service.GetProjectDetail(ctx, project.ID, ""); err != nil {
		t.Fatalf("anonymous denied a public project: %v", err)
	}

	if err := service.UpdateProjectVisibility(ctx, project.ID, owner.Email, model.VisibilityDeleted); err != nil {
		t.Fatalf("soft delete failed: %v", err)
	}
	if _, err := service.GetProjectDetail(ctx, project.ID, owner.Email); !errors.Is(err, service.ErrNotFound) {
		t.Fatalf("deleted project: err = %v, want ErrNotFound", err)
	}
}

func TestUpdateTitleRequiresEditor(t *testing.T) {
	owner := createTestUser(t, model.RoleStudent)
	stranger := createTestUser(t, model.RoleStudent)
	project := createTestProject(t, owner)
	ctx := context.Background()

	err := service.UpdateProjectTitle(ctx, project.ID, stranger.Email, "hijacked")
	if !errors.Is(err, service.ErrForbidden) {
		t.Fatalf("err = %v, want ErrForbidden", err)
	}

	if err := service.UpdateProjectTitle(ctx, project.ID, owner.Email, "Robot Arm"); err != nil {
		t.Fatalf("title update failed: %v", err)
	}
	detail, err := service.GetProjectDetail(ctx, project.ID, owner.Email)
	if err != nil {
		t.Fatal(err)
	}
	if detail.Title != "Robot Arm" {
		t.Fatalf("title = %q", detail.Title)
	}
}

func TestSearchPublicProjects(t *testing.T) {
	owner := createTestUser(t, model.RoleStudent)
	ctx := context.Background()
	suffix := time.Now().UnixNano()
	needle := fmt.Sprintf("compiler-%d", suffix)

	visible := createTestProject(t, owner)
	if err := service.UpdateProjectTitle(ctx, visible.ID, owner.Email, "A tiny "+needle); err != nil {
		t.Fatal(err)
	}
	if err := service.UpdateProjectVisibility(ctx, visible.ID, owner.Email, model.VisibilityPublic); err != nil {
		t.Fatal(err)
	}

	// A draft with the same keyword must never surface.
	hidden := createTestProject(t, owner)
	if err := service.UpdateProjectTitle(ctx, hidden.ID, owner.Email, "Hidden "+needle); err != nil {
		t.Fatal(err)
	}

	resp, err := service.SearchPublicProjects(&dto.ProjectSearchRequest{Keywords: []string{needle}})
	if err != nil {
		t.Fatalf("search failed: %v", err)
	}
	if len(resp.Projects) != 1 {
		t.Fatalf("got %d results, want 1", len(resp.Projects))
	}
	if resp.Projects[0].ProjectID != visible.ID {
		t.Fatalf("result = project %d, want %d", resp.Projects[0].ProjectID, visible.ID)
	}
}

func TestSearchLimitIsCapped(t *testing.T) {
	resp, err := service.SearchPublicProjects(&dto.ProjectSearchRequest{Limit: 5000})
	if err != nil {
		t.Fatalf("search failed: %v", err)
	}
	if len(resp.Projects) > 100 {
		t.Fatalf("got %d results, cap is 100", len(resp.Projects))
	}
}

func TestContributorLifecycle(t *testing.T) {
	owner := createTestUser(t, model.RoleStudent)
	stranger := createTestUser(t, model.RoleStudent)
	project := createTestProject(t, owner)
	ctx := context.Background()

	if _, err := service.AddContributor(ctx, project.ID, stranger.Email); !errors.Is(err, service.ErrForbidden) {
		t.Fatalf("stranger add: err = %v, want ErrForbidden", err)
	}

	row, err := service.AddContributor(ctx, project.ID, owner.Email)
	if err != nil {
		t.Fatalf("add failed: %v", err)
	}

	err = service.UpdateContributor(ctx, project.ID, row.ID, owner.Email, "Ada Lovelace", "ada@test.com", model.ContributorEditor)
	if err != nil {
		t.Fatalf("update failed: %v", err)
	}

	// The fresh editor can now mutate the project.
	if err := service.UpdateProjectTitle(ctx, project.ID, "ada@test.com", "Analytical Engine"); err != nil {
		t.Fatalf("editor update failed: %v", err)
	}

	// The owner row is pinned.
	var ownerRow model.Contributor
	if err := repo.Db.Where("project_id = ? AND email = ?", project.ID, owner.Email).First(&ownerRow).Error; err != nil {
		t.Fatal(err)
	}
	if err := service.DeleteContributor(ctx, project.ID, ownerRow.ID, owner.Email); !errors.Is(err, service.ErrInvalidInput) {
		t.Fatalf("owner row delete: err = %v, want ErrInvalidInput", err)
	}

	if err := service.DeleteContributor(ctx, project.ID, row.ID, owner.Email); err != nil {
		t.Fatalf("delete failed: %v", err)
	}
}

func TestProjectLinks(t *testing.T) {
	owner := createTestUser(t, model.RoleStudent)
	project := createTestProject(t, owner)
	ctx := context.Background()

	link, err := service.AddProjectLink(ctx, project.ID, owner.Email, "https://github.com/test/repo", "Source")
	if err != nil {
		t.Fatalf("add link failed: %v", err)
	}

	if _, err := service.AddProjectLink(ctx, project.ID, owner.Email, "ftp://nope", ""); !errors.Is(err, service.ErrInvalidInput) {
		t.Fatalf("bad scheme: err = %v, want ErrInvalidInput", err)
	}

	if err := service.DeleteProjectLink(ctx, project.ID, link.ID, owner.Email); err != nil {
		t.Fatalf("delete link failed: %v", err)
	}
	if err := service.DeleteProjectLink(ctx, project.ID, link.ID, owner.Email); !errors.Is(err, service.ErrNotFound) {
		t.Fatalf("second delete: err = %v, want ErrNotFound", err)
	}
}

func TestSkillTags(t *testing.T) {
	owner := createTestUser(t, model.RoleStudent)
	project := createTestProject(t, owner)
	ctx := context.Background()
	name := fmt.Sprintf("golang-%d", time.Now().UnixNano())

	if err := service.AttachSkillTag(ctx, project.ID, owner.Email, name); err != nil {
		t.Fatalf("attach failed: %v", err)
	}
	// Attaching the same tag twice is a no-op, not an error.
	if err := service.AttachSkillTag(ctx, project.ID, owner.Email, name); err != nil {
		t.Fatalf("re-attach failed: %v", err)
	}

	detail, err := service.GetProjectDetail(ctx, project.ID, owner.Email)
	if err != nil {
		t.Fatal(err)
	}
	found := false
	for _, tag := range detail.SkillTags {
		if tag == name {
			found = true
		}
	}
	if !found {
		t.Fatalf("tag %q missing from detail %v", name, detail.SkillTags)
	}

	if err := service.DetachSkillTag(ctx, project.ID, owner.Email, name); err != nil {
		t.Fatalf("detach failed: %v", err)
	}
}
