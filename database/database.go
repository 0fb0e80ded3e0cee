package database

import (
	"database/sql"
	"fmt"
	"os"
	"path/filepath"

	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"github.com/inkwell-app/backend/models"

	_ "modernc.org/sqlite" // pure Go SQLite driver, no CGO required
)

// Database aggregates the per-entity repositories over a shared GORM instance.
type Database struct {
	projectRepo *ProjectRepo
	promptRepo  *PromptRepo
	settingRepo *SettingRepo
	itemRepo    *ItemRepo
}

// New initializes a new Database struct with each repository using a shared GORM database instance
func New(db *gorm.DB) Database {
	return Database{
		projectRepo: NewProjectRepo(db),
		promptRepo:  NewPromptRepo(db),
		settingRepo: NewSettingRepo(db),
		itemRepo:    NewItemRepo(db),
	}
}

// Accessor methods for each repository

func (d Database) ProjectRepo() *ProjectRepo {
	return d.projectRepo
}

func (d Database) PromptRepo() *PromptRepo {
	return d.promptRepo
}

func (d Database) SettingRepo() *SettingRepo {
	return d.settingRepo
}

func (d Database) ItemRepo() *ItemRepo {
	return d.itemRepo
}

// Open opens the single-file SQLite store at path, creating the parent
// directory if needed.
func Open(path string) (*gorm.DB, error) {
	if dir := filepath.Dir(path); dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return nil, fmt.Errorf("failed to create database directory: %w", err)
		}
	}

	// DSN parameters for proper datetime handling and lock tolerance
	dsn := path + "?_pragma=busy_timeout(5000)&_time_format=sqlite"
	sqlDB, err := sql.Open("sqlite", dsn)
	if err != nil {
		return nil, fmt.Errorf("failed to open sqlite database: %w", err)
	}

	db, err := gorm.Open(sqlite.Dialector{Conn: sqlDB}, &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	if err != nil {
		return nil, fmt.Errorf("failed to connect to database: %w", err)
	}

	// WAL mode allows concurrent readers while a write is in flight; NORMAL
	// synchronous is safe in WAL mode.
	if err := db.Exec("PRAGMA journal_mode = WAL;").Error; err != nil {
		return nil, fmt.Errorf("failed to enable WAL mode: %w", err)
	}
	if err := db.Exec("PRAGMA synchronous = NORMAL;").Error; err != nil {
		return nil, fmt.Errorf("failed to set synchronous mode: %w", err)
	}

	// SQLite supports only one writer at a time
	sqlDB.SetMaxOpenConns(1)
	sqlDB.SetMaxIdleConns(1)

	return db, nil
}

// Init idempotently ensures the schema exists and is migrated forward. Safe to
// call on every process start: tables are created if absent, columns added by
// newer versions are a no-op when already present, the Default project and
// bootstrap settings are inserted only if missing, and prompts left without a
// project are pointed back at Default.
func (d Database) Init(appVersion string) error {
	db := d.projectRepo.db

	if err := db.AutoMigrate(
		&models.Item{},
		&models.Project{},
		&models.Prompt{},
		&models.Setting{},
	); err != nil {
		return fmt.Errorf("failed to migrate database: %w", err)
	}

	defaultProject, err := d.projectRepo.EnsureDefault()
	if err != nil {
		return err
	}

	// Backfill: orphaned prompts are reassigned to Default.
	if err := db.Model(&models.Prompt{}).
		Where("project_id IS NULL").
		Update("project_id", defaultProject.ID).Error; err != nil {
		return fmt.Errorf("failed to backfill prompt projects: %w", err)
	}

	if err := d.settingRepo.SetIfAbsent("app_version", appVersion); err != nil {
		return err
	}
	if err := d.settingRepo.SetIfAbsent("initialized", "true"); err != nil {
		return err
	}

	return nil
}
