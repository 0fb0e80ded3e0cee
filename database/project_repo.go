package database

import (
	"errors"
	"fmt"
	"time"

	"gorm.io/gorm"

	"github.com/inkwell-app/backend/errs"
	"github.com/inkwell-app/backend/models"
)

type ProjectRepo struct {
	db *gorm.DB
}

func NewProjectRepo(db *gorm.DB) *ProjectRepo {
	return &ProjectRepo{db}
}

// FindAll returns all projects ordered by name
func (r *ProjectRepo) FindAll() ([]models.Project, error) {
	var projects []models.Project
	err := r.db.Order("name").Find(&projects).Error
	return projects, err
}

// FindByID returns a project by its ID, or nil when no such project exists
func (r *ProjectRepo) FindByID(id uint) (*models.Project, error) {
	var project models.Project
	err := r.db.First(&project, id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &project, nil
}

// FindByName returns a project by its unique name, or nil when absent
func (r *ProjectRepo) FindByName(name string) (*models.Project, error) {
	var project models.Project
	err := r.db.Where("name = ?", name).First(&project).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &project, nil
}

// EnsureDefault inserts the Default project if absent and returns it. The
// unique name constraint keeps repeated initialization from duplicating it.
func (r *ProjectRepo) EnsureDefault() (*models.Project, error) {
	var project models.Project
	err := r.db.Where(models.Project{Name: models.DefaultProjectName}).
		FirstOrCreate(&project).Error
	if err != nil {
		return nil, fmt.Errorf("failed to ensure default project: %w", err)
	}
	return &project, nil
}

// Add inserts a new project into the database
func (r *ProjectRepo) Add(project *models.Project) error {
	return r.db.Create(project).Error
}

// Update applies a sparse patch: only supplied fields are written, and an
// empty patch skips the write entirely so updated_at stays untouched.
func (r *ProjectRepo) Update(id uint, patch models.ProjectPatch) error {
	if patch.Empty() {
		return nil
	}

	updates := map[string]any{"updated_at": time.Now()}
	if patch.Name != nil {
		updates["name"] = *patch.Name
	}
	if patch.Whiteboard != nil {
		updates["whiteboard"] = *patch.Whiteboard
	}

	return r.db.Model(&models.Project{}).Where("id = ?", id).Updates(updates).Error
}

// Delete reassigns every prompt in the project to Default, then removes the
// project row. Deleting the Default project itself is always rejected.
func (r *ProjectRepo) Delete(id uint) error {
	return r.db.Transaction(func(tx *gorm.DB) error {
		var project models.Project
		if err := tx.First(&project, id).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return errs.NewNotFound("project")
			}
			return err
		}

		if project.Name == models.DefaultProjectName {
			return errs.NewForbiddenError("cannot delete the Default project")
		}

		var defaultProject models.Project
		if err := tx.Where("name = ?", models.DefaultProjectName).
			First(&defaultProject).Error; err != nil {
			return fmt.Errorf("failed to resolve default project: %w", err)
		}

		if err := tx.Model(&models.Prompt{}).
			Where("project_id = ?", id).
			Updates(map[string]any{
				"project_id": defaultProject.ID,
				"updated_at": time.Now(),
			}).Error; err != nil {
			return fmt.Errorf("failed to reassign prompts: %w", err)
		}

		return tx.Delete(&models.Project{}, id).Error
	})
}
