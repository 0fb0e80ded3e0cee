package database

import (
	"errors"
	"fmt"
	"time"

	"gorm.io/gorm"

	"github.com/inkwell-app/backend/errs"
	"github.com/inkwell-app/backend/models"
)

type PromptRepo struct {
	db *gorm.DB
}

func NewPromptRepo(db *gorm.DB) *PromptRepo {
	return &PromptRepo{db}
}

// PromptFilter narrows FindAll; both conditions apply when both are set.
type PromptFilter struct {
	ProjectID *uint
	Status    string
}

func withProjectName(db *gorm.DB) *gorm.DB {
	return db.Model(&models.Prompt{}).
		Select("prompts.*, projects.name AS project_name").
		Joins("LEFT JOIN projects ON prompts.project_id = projects.id")
}

// FindAll returns prompts matching the filter, ordered by order_number then
// recency. order_number is the primary key of the sort so drag-reordered
// lists stay stable as new prompts are created.
func (r *PromptRepo) FindAll(filter PromptFilter) ([]models.Prompt, error) {
	query := withProjectName(r.db)

	if filter.ProjectID != nil {
		query = query.Where("prompts.project_id = ?", *filter.ProjectID)
	}
	if filter.Status != "" {
		query = query.Where("prompts.status = ?", filter.Status)
	}

	var prompts []models.Prompt
	err := query.Order("prompts.order_number ASC, prompts.created_at DESC").
		Find(&prompts).Error
	return prompts, err
}

// FindByID returns a prompt with its project name, or nil when absent
func (r *PromptRepo) FindByID(id uint) (*models.Prompt, error) {
	var prompt models.Prompt
	err := withProjectName(r.db).Where("prompts.id = ?", id).First(&prompt).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &prompt, nil
}

// Add inserts a new prompt. A missing project resolves to whichever project
// is currently named Default, looked up at write time. The prompt is appended
// to the end of its status group: order_number = 1 + max within the status.
func (r *PromptRepo) Add(prompt *models.Prompt) error {
	if prompt.Status == "" {
		prompt.Status = models.StatusDraft
	}
	if !models.ValidStatus(prompt.Status) {
		return errs.NewInvalidFieldError("status",
			fmt.Sprintf("must be one of %s, %s, %s",
				models.StatusDraft, models.StatusActive, models.StatusArchived))
	}

	return r.db.Transaction(func(tx *gorm.DB) error {
		if prompt.ProjectID == nil {
			var defaultProject models.Project
			if err := tx.Where("name = ?", models.DefaultProjectName).
				First(&defaultProject).Error; err != nil {
				return fmt.Errorf("failed to resolve default project: %w", err)
			}
			prompt.ProjectID = &defaultProject.ID
		}

		var maxOrder int
		if err := tx.Model(&models.Prompt{}).
			Where("status = ?", prompt.Status).
			Select("COALESCE(MAX(order_number), 0)").
			Scan(&maxOrder).Error; err != nil {
			return fmt.Errorf("failed to compute order number: %w", err)
		}
		prompt.OrderNumber = maxOrder + 1

		return tx.Create(prompt).Error
	})
}

// Update applies a sparse patch; an empty patch is a no-op that leaves
// updated_at untouched.
func (r *PromptRepo) Update(id uint, patch models.PromptPatch) error {
	if patch.Empty() {
		return nil
	}

	if patch.Status != nil && !models.ValidStatus(*patch.Status) {
		return errs.NewInvalidFieldError("status",
			fmt.Sprintf("must be one of %s, %s, %s",
				models.StatusDraft, models.StatusActive, models.StatusArchived))
	}

	updates := map[string]any{"updated_at": time.Now()}
	if patch.Name != nil {
		updates["name"] = *patch.Name
	}
	if patch.Status != nil {
		updates["status"] = *patch.Status
	}
	if patch.Content != nil {
		updates["content"] = *patch.Content
	}
	if patch.ProjectID != nil {
		updates["project_id"] = *patch.ProjectID
	}
	if patch.OrderNumber != nil {
		updates["order_number"] = *patch.OrderNumber
	}

	return r.db.Model(&models.Prompt{}).Where("id = ?", id).Updates(updates).Error
}

// Delete removes a prompt from the database by id
func (r *PromptRepo) Delete(id uint) error {
	return r.db.Delete(&models.Prompt{}, id).Error
}

// Reorder rewrites order_number to a dense 1..N sequence following the
// submitted id order. When projectID is set (and non-zero), every id must
// already belong to that project. The whole batch runs in one transaction:
// an unknown id or a cross-project id rolls back every prior position write.
func (r *PromptRepo) Reorder(ids []uint, projectID *uint) error {
	scoped := projectID != nil && *projectID != 0

	return r.db.Transaction(func(tx *gorm.DB) error {
		for position, id := range ids {
			var prompt models.Prompt
			err := tx.Select("id", "project_id").First(&prompt, id).Error
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return errs.NewNotFoundError(fmt.Sprintf("prompt %d not found", id))
			}
			if err != nil {
				return err
			}

			if scoped && (prompt.ProjectID == nil || *prompt.ProjectID != *projectID) {
				return errs.NewBadRequestError(
					fmt.Sprintf("prompt %d does not belong to project %d", id, *projectID))
			}

			if err := tx.Model(&models.Prompt{}).
				Where("id = ?", id).
				Updates(map[string]any{
					"order_number": position + 1,
					"updated_at":   time.Now(),
				}).Error; err != nil {
				return fmt.Errorf("failed to reorder prompt %d: %w", id, err)
			}
		}
		return nil
	})
}
