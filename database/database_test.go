package database

import (
	"path/filepath"
	"testing"

	"github.com/inkwell-app/backend/models"
)

func newTestDatabase(t *testing.T) Database {
	t.Helper()

	path := filepath.Join(t.TempDir(), "inkwell.db")
	db, err := Open(path)
	if err != nil {
		t.Fatalf("open database: %v", err)
	}

	d := New(db)
	if err := d.Init("0.1.0"); err != nil {
		t.Fatalf("init database: %v", err)
	}
	return d
}

func TestInitSeedsDefaultProject(t *testing.T) {
	d := newTestDatabase(t)

	project, err := d.ProjectRepo().FindByName(models.DefaultProjectName)
	if err != nil {
		t.Fatalf("find default project: %v", err)
	}
	if project == nil {
		t.Fatal("expected Default project after init")
	}
}

func TestInitIsIdempotent(t *testing.T) {
	d := newTestDatabase(t)

	// A second init must not duplicate the Default project or fail on
	// already-present columns.
	if err := d.Init("0.1.0"); err != nil {
		t.Fatalf("second init: %v", err)
	}

	var count int64
	err := d.projectRepo.db.Model(&models.Project{}).
		Where("name = ?", models.DefaultProjectName).
		Count(&count).Error
	if err != nil {
		t.Fatalf("count default projects: %v", err)
	}
	if count != 1 {
		t.Fatalf("expected exactly 1 Default project, got %d", count)
	}
}

func TestInitSeedsBootstrapSettings(t *testing.T) {
	d := newTestDatabase(t)

	for _, key := range []string{"app_version", "initialized"} {
		setting, err := d.SettingRepo().Get(key)
		if err != nil {
			t.Fatalf("get setting %q: %v", key, err)
		}
		if setting == nil {
			t.Fatalf("expected setting %q after init", key)
		}
	}
}

func TestInitDoesNotOverwriteSettings(t *testing.T) {
	d := newTestDatabase(t)

	if err := d.SettingRepo().Set("app_version", "9.9.9"); err != nil {
		t.Fatalf("set setting: %v", err)
	}
	if err := d.Init("0.1.0"); err != nil {
		t.Fatalf("re-init: %v", err)
	}

	setting, err := d.SettingRepo().Get("app_version")
	if err != nil {
		t.Fatalf("get setting: %v", err)
	}
	if setting.Value != "9.9.9" {
		t.Fatalf("expected app_version 9.9.9 to survive re-init, got %q", setting.Value)
	}
}

func TestInitBackfillsOrphanedPrompts(t *testing.T) {
	d := newTestDatabase(t)

	// Simulate a row left behind by an older schema version.
	err := d.projectRepo.db.Exec(
		"INSERT INTO prompts (name, status, order_number, created_at, updated_at) VALUES ('orphan', 'draft', 0, CURRENT_TIMESTAMP, CURRENT_TIMESTAMP)",
	).Error
	if err != nil {
		t.Fatalf("insert orphaned prompt: %v", err)
	}

	if err := d.Init("0.1.0"); err != nil {
		t.Fatalf("re-init: %v", err)
	}

	defaultProject, err := d.ProjectRepo().FindByName(models.DefaultProjectName)
	if err != nil {
		t.Fatalf("find default project: %v", err)
	}

	prompts, err := d.PromptRepo().FindAll(PromptFilter{})
	if err != nil {
		t.Fatalf("find prompts: %v", err)
	}
	if len(prompts) != 1 {
		t.Fatalf("expected 1 prompt, got %d", len(prompts))
	}
	if prompts[0].ProjectID == nil || *prompts[0].ProjectID != defaultProject.ID {
		t.Fatalf("expected orphaned prompt reassigned to Default %d, got %v",
			defaultProject.ID, prompts[0].ProjectID)
	}
}
