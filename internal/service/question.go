package service

import (
	"ShowFolio/internal/repo"
	"ShowFolio/model"
	"context"
	"errors"
	"fmt"
	"strings"

	"gorm.io/gorm"
)

const maxQuestionLen = 512

// AddQuestion appends a blank Q&A row the edit page fills in
// afterwards.
func AddQuestion(ctx context.Context, projectID uint64, requesterEmail string) (*model.QuestionPrompt, error) {
	if _, err := loadProjectForEdit(projectID, requesterEmail); err != nil {
		return nil, err
	}
	question := &model.QuestionPrompt{ProjectID: projectID}
	if err := repo.Db.Create(question).Error; err != nil {
		return nil, err
	}
	InvalidateProjectCache(ctx, projectID)
	return question, nil
}

// UpdateQuestion rewrites a Q&A row's prompt and answer.
func UpdateQuestion(ctx context.Context, projectID, questionID uint64, requesterEmail, prompt, answer string) (*model.QuestionPrompt, error) {
	if _, err := loadProjectForEdit(projectID, requesterEmail); err != nil {
		return nil, err
	}
	prompt = strings.TrimSpace(prompt)
	if prompt == "" || len(prompt) > maxQuestionLen {
		return nil, fmt.Errorf("%w: bad question", ErrInvalidInput)
	}

	var question model.QuestionPrompt
	err := repo.Db.Where("id = ? AND project_id = ?", questionID, projectID).First(&question).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}

	updates := map[string]interface{}{
		"question": prompt,
		"answer":   answer,
	}
	if err := repo.Db.Model(&question).Updates(updates).Error; err != nil {
		return nil, err
	}
	InvalidateProjectCache(ctx, projectID)
	return &question, nil
}

// DeleteQuestion removes a Q&A row from a project.
func DeleteQuestion(ctx context.Context, projectID, questionID uint64, requesterEmail string) error {
	if _, err := loadProjectForEdit(projectID, requesterEmail); err != nil {
		return err
	}
	var question model.QuestionPrompt
	err := repo.Db.Where("id = ? AND project_id = ?", questionID, projectID).First(&question).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ErrNotFound
		}
		return err
	}
	if err := repo.Db.Delete(&question).Error; err != nil {
		return err
	}
	InvalidateProjectCache(ctx, projectID)
	return nil
}
