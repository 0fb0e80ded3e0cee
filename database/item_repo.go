package database

import (
	"errors"
	"time"

	"gorm.io/gorm"

	"github.com/inkwell-app/backend/models"
)

// ItemRepo serves the legacy items record set. It has no relationship to
// projects or prompts.
type ItemRepo struct {
	db *gorm.DB
}

func NewItemRepo(db *gorm.DB) *ItemRepo {
	return &ItemRepo{db}
}

// FindAll returns all items, newest first
func (r *ItemRepo) FindAll() ([]models.Item, error) {
	var items []models.Item
	err := r.db.Order("created_at DESC").Find(&items).Error
	return items, err
}

// FindByID returns an item by its ID, or nil when absent
func (r *ItemRepo) FindByID(id uint) (*models.Item, error) {
	var item models.Item
	err := r.db.First(&item, id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &item, nil
}

// Add inserts a new item into the database
func (r *ItemRepo) Add(item *models.Item) error {
	return r.db.Create(item).Error
}

// Update applies a sparse patch; an empty patch skips the write
func (r *ItemRepo) Update(id uint, patch models.ItemPatch) error {
	if patch.Empty() {
		return nil
	}

	updates := map[string]any{"updated_at": time.Now()}
	if patch.Name != nil {
		updates["name"] = *patch.Name
	}
	if patch.Description != nil {
		updates["description"] = *patch.Description
	}

	return r.db.Model(&models.Item{}).Where("id = ?", id).Updates(updates).Error
}

// Delete removes an item from the database by id
func (r *ItemRepo) Delete(id uint) error {
	return r.db.Delete(&models.Item{}, id).Error
}
