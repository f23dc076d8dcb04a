package test

import (
	"ShowFolio/internal/repo"
	"ShowFolio/internal/service"
	"ShowFolio/model"
	"context"
	"errors"
	"strings"
	"testing"
)

func TestQuestionLifecycle(t *testing.T) {
	owner := createTestUser(t, model.RoleStudent)
	project := createTestProject(t, owner)
	ctx := context.Background()

	question, err := service.AddQuestion(ctx, project.ID, owner.Email)
	if err != nil {
		t.Fatalf("add question failed: %v", err)
	}
	if question.Question != "" || question.Answer != "" {
		t.Fatalf("new question not blank: %+v", question)
	}

	updated, err := service.UpdateQuestion(ctx, project.ID, question.ID, owner.Email, "What problem does it solve?", "Scheduling.")
	if err != nil {
		t.Fatalf("update question failed: %v", err)
	}
	if updated.Question != "What problem does it solve?" || updated.Answer != "Scheduling." {
		t.Fatalf("question after update = %+v", updated)
	}

	detail, err := service.GetProjectDetail(ctx, project.ID, owner.Email)
	if err != nil {
		t.Fatal(err)
	}
	if len(detail.Questions) != 1 || detail.Questions[0].Question != "What problem does it solve?" {
		t.Fatalf("detail questions = %+v", detail.Questions)
	}

	if err := service.DeleteQuestion(ctx, project.ID, question.ID, owner.Email); err != nil {
		t.Fatalf("delete question failed: %v", err)
	}
	var count int64
	repo.Db.Model(&model.QuestionPrompt{}).Where("project_id = ?", project.ID).Count(&count)
	if count != 0 {
		t.Fatalf("question rows = %d, want 0", count)
	}
}

func TestQuestionRequiresEditor(t *testing.T) {
	owner := createTestUser(t, model.RoleStudent)
	stranger := createTestUser(t, model.RoleStudent)
	project := createTestProject(t, owner)
	ctx := context.Background()

	if _, err := service.AddQuestion(ctx, project.ID, stranger.Email); !errors.Is(err, service.ErrForbidden) {
		t.Fatalf("err = %v, want ErrForbidden", err)
	}

	question, err := service.AddQuestion(ctx, project.ID, owner.Email)
	if err != nil {
		t.Fatal(err)
	}
	if _, err := service.UpdateQuestion(ctx, project.ID, question.ID, owner.Email, "", "answer"); !errors.Is(err, service.ErrInvalidInput) {
		t.Fatalf("blank prompt err = %v, want ErrInvalidInput", err)
	}
	if _, err := service.UpdateQuestion(ctx, project.ID, question.ID+1000, owner.Email, "Prompt?", ""); !errors.Is(err, service.ErrNotFound) {
		t.Fatalf("missing row err = %v, want ErrNotFound", err)
	}
}

func TestOwnerTransfer(t *testing.T) {
	owner := createTestUser(t, model.RoleStudent)
	successor := createTestUser(t, model.RoleStudent)
	project := createTestProject(t, owner)
	ctx := context.Background()

	resp, err := service.TransferProjectOwnership(ctx, project.ID, owner.Email, successor.Email)
	if err != nil {
		t.Fatalf("transfer failed: %v", err)
	}
	if resp.Email != successor.Email {
		t.Fatalf("new owner email = %q, want %q", resp.Email, successor.Email)
	}

	var fresh model.Project
	if err := repo.Db.First(&fresh, project.ID).Error; err != nil {
		t.Fatal(err)
	}
	if fresh.OwnerID != successor.ID {
		t.Fatalf("owner_id = %d, want %d", fresh.OwnerID, successor.ID)
	}

	// The new owner gets an EDITOR row and can edit right away.
	var row model.Contributor
	err = repo.Db.Where("project_id = ? AND email = ?", project.ID, successor.Email).First(&row).Error
	if err != nil {
		t.Fatalf("contributor row missing: %v", err)
	}
	if row.Role != model.ContributorEditor {
		t.Fatalf("contributor role = %q, want EDITOR", row.Role)
	}
	if err := service.UpdateProjectTitle(ctx, project.ID, successor.Email, "Handed over"); err != nil {
		t.Fatalf("new owner cannot edit: %v", err)
	}
}

func TestOwnerTransferPermissions(t *testing.T) {
	owner := createTestUser(t, model.RoleStudent)
	editor := createTestUser(t, model.RoleStudent)
	project := createTestProject(t, owner)
	ctx := context.Background()

	// An EDITOR contributor who is not the owner may not transfer.
	contributor, err := service.AddContributor(ctx, project.ID, owner.Email)
	if err != nil {
		t.Fatal(err)
	}
	err = service.UpdateContributor(ctx, project.ID, contributor.ID, owner.Email, "Editor", editor.Email, model.ContributorEditor)
	if err != nil {
		t.Fatal(err)
	}
	_, err = service.TransferProjectOwnership(ctx, project.ID, editor.Email, editor.Email)
	if !errors.Is(err, service.ErrForbidden) {
		t.Fatalf("err = %v, want ErrForbidden", err)
	}

	// Transfers to unknown accounts fail without touching the project.
	_, err = service.TransferProjectOwnership(ctx, project.ID, owner.Email, "nobody@test.com")
	if !errors.Is(err, service.ErrNotFound) {
		t.Fatalf("err = %v, want ErrNotFound", err)
	}
	var fresh model.Project
	if err := repo.Db.First(&fresh, project.ID).Error; err != nil {
		t.Fatal(err)
	}
	if fresh.OwnerID != owner.ID {
		t.Fatalf("owner_id changed to %d", fresh.OwnerID)
	}
}

func TestOwnerTransferUpgradesExistingRow(t *testing.T) {
	owner := createTestUser(t, model.RoleStudent)
	successor := createTestUser(t, model.RoleStudent)
	project := createTestProject(t, owner)
	ctx := context.Background()

	contributor, err := service.AddContributor(ctx, project.ID, owner.Email)
	if err != nil {
		t.Fatal(err)
	}
	err = service.UpdateContributor(ctx, project.ID, contributor.ID, owner.Email, "Viewer", successor.Email, model.ContributorViewer)
	if err != nil {
		t.Fatal(err)
	}

	if _, err := service.TransferProjectOwnership(ctx, project.ID, owner.Email, successor.Email); err != nil {
		t.Fatalf("transfer failed: %v", err)
	}

	// The existing row is upgraded in place rather than duplicated.
	var rows []model.Contributor
	err = repo.Db.Where("project_id = ? AND email = ?", project.ID, strings.ToLower(successor.Email)).Find(&rows).Error
	if err != nil {
		t.Fatal(err)
	}
	if len(rows) != 1 {
		t.Fatalf("contributor rows for new owner = %d, want 1", len(rows))
	}
	if rows[0].Role != model.ContributorEditor {
		t.Fatalf("contributor role = %q, want EDITOR", rows[0].Role)
	}
}
