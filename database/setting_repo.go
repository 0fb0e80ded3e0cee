package database

import (
	"errors"
	"time"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"github.com/inkwell-app/backend/models"
)

type SettingRepo struct {
	db *gorm.DB
}

func NewSettingRepo(db *gorm.DB) *SettingRepo {
	return &SettingRepo{db}
}

// Get returns a setting by key, or nil when the key is not set
func (r *SettingRepo) Get(key string) (*models.Setting, error) {
	var setting models.Setting
	err := r.db.Where("key = ?", key).First(&setting).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &setting, nil
}

// Set upserts a setting, refreshing updated_at when the key already exists
func (r *SettingRepo) Set(key, value string) error {
	setting := models.Setting{Key: key, Value: value}
	return r.db.Clauses(clause.OnConflict{
		Columns: []clause.Column{{Name: "key"}},
		DoUpdates: clause.Assignments(map[string]any{
			"value":      value,
			"updated_at": time.Now(),
		}),
	}).Create(&setting).Error
}

// SetIfAbsent inserts a setting only when the key is not already present
func (r *SettingRepo) SetIfAbsent(key, value string) error {
	setting := models.Setting{Key: key, Value: value}
	return r.db.Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "key"}},
		DoNothing: true,
	}).Create(&setting).Error
}
