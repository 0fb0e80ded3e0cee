package database

import (
	"errors"
	"testing"

	"github.com/inkwell-app/backend/errs"
	"github.com/inkwell-app/backend/models"
)

func addPrompt(t *testing.T, d Database, name, status string, projectID *uint) models.Prompt {
	t.Helper()
	prompt := models.Prompt{Name: name, Status: status, ProjectID: projectID}
	if err := d.PromptRepo().Add(&prompt); err != nil {
		t.Fatalf("add prompt %q: %v", name, err)
	}
	return prompt
}

func TestPromptCreateResolvesDefaultProject(t *testing.T) {
	d := newTestDatabase(t)

	prompt := addPrompt(t, d, "idea", "", nil)

	defaultProject, err := d.ProjectRepo().FindByName(models.DefaultProjectName)
	if err != nil {
		t.Fatalf("find default project: %v", err)
	}
	if prompt.ProjectID == nil || *prompt.ProjectID != defaultProject.ID {
		t.Fatalf("expected prompt on Default %d, got %v", defaultProject.ID, prompt.ProjectID)
	}
	if prompt.Status != models.StatusDraft {
		t.Fatalf("expected default status draft, got %q", prompt.Status)
	}
}

func TestPromptCreateTracksCurrentDefault(t *testing.T) {
	// The Default lookup happens at write time, so it follows the current
	// Default project even when its id changes across reinitializations.
	d := newTestDatabase(t)

	oldDefault, err := d.ProjectRepo().FindByName(models.DefaultProjectName)
	if err != nil {
		t.Fatalf("find default project: %v", err)
	}

	// Occupy higher row ids so the recreated Default cannot reuse the old one.
	filler := models.Project{Name: "Research"}
	if err := d.ProjectRepo().Add(&filler); err != nil {
		t.Fatalf("add project: %v", err)
	}

	if err := d.projectRepo.db.Exec(
		"DELETE FROM projects WHERE name = ?", models.DefaultProjectName).Error; err != nil {
		t.Fatalf("remove default project: %v", err)
	}
	if err := d.Init("0.1.0"); err != nil {
		t.Fatalf("re-init: %v", err)
	}

	newDefault, err := d.ProjectRepo().FindByName(models.DefaultProjectName)
	if err != nil {
		t.Fatalf("find new default project: %v", err)
	}
	if newDefault.ID == oldDefault.ID {
		t.Fatal("expected reinitialized Default to get a fresh id")
	}

	prompt := addPrompt(t, d, "idea", "", nil)
	if prompt.ProjectID == nil || *prompt.ProjectID != newDefault.ID {
		t.Fatalf("expected prompt on current Default %d, got %v", newDefault.ID, prompt.ProjectID)
	}
}

func TestPromptOrderNumberScopedToStatus(t *testing.T) {
	d := newTestDatabase(t)

	drafts := []models.Prompt{
		addPrompt(t, d, "d1", models.StatusDraft, nil),
		addPrompt(t, d, "d2", models.StatusDraft, nil),
	}
	active := addPrompt(t, d, "a1", models.StatusActive, nil)

	if drafts[0].OrderNumber != 1 || drafts[1].OrderNumber != 2 {
		t.Fatalf("expected draft order 1,2; got %d,%d",
			drafts[0].OrderNumber, drafts[1].OrderNumber)
	}
	// The active column starts over, independent of how many drafts exist.
	if active.OrderNumber != 1 {
		t.Fatalf("expected active order 1, got %d", active.OrderNumber)
	}

	next := addPrompt(t, d, "d3", models.StatusDraft, nil)
	if next.OrderNumber != 3 {
		t.Fatalf("expected next draft appended at 3, got %d", next.OrderNumber)
	}
}

func TestPromptInvalidStatusRejected(t *testing.T) {
	d := newTestDatabase(t)

	prompt := models.Prompt{Name: "bad", Status: "published"}
	err := d.PromptRepo().Add(&prompt)
	if !errors.Is(err, errs.ErrInvalidField) {
		t.Fatalf("expected invalid field error, got %v", err)
	}
}

func TestPromptFilters(t *testing.T) {
	d := newTestDatabase(t)

	project := models.Project{Name: "Research"}
	if err := d.ProjectRepo().Add(&project); err != nil {
		t.Fatalf("add project: %v", err)
	}

	addPrompt(t, d, "default draft", models.StatusDraft, nil)
	addPrompt(t, d, "research draft", models.StatusDraft, &project.ID)
	addPrompt(t, d, "research active", models.StatusActive, &project.ID)

	tests := []struct {
		name   string
		filter PromptFilter
		want   int
	}{
		{name: "no filter", filter: PromptFilter{}, want: 3},
		{name: "by project", filter: PromptFilter{ProjectID: &project.ID}, want: 2},
		{name: "by status", filter: PromptFilter{Status: models.StatusDraft}, want: 2},
		{name: "conjunctive", filter: PromptFilter{ProjectID: &project.ID, Status: models.StatusDraft}, want: 1},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			prompts, err := d.PromptRepo().FindAll(tt.filter)
			if err != nil {
				t.Fatalf("find prompts: %v", err)
			}
			if len(prompts) != tt.want {
				t.Fatalf("expected %d prompts, got %d", tt.want, len(prompts))
			}
		})
	}
}

func TestPromptListCarriesProjectName(t *testing.T) {
	d := newTestDatabase(t)

	addPrompt(t, d, "idea", "", nil)

	prompts, err := d.PromptRepo().FindAll(PromptFilter{})
	if err != nil {
		t.Fatalf("find prompts: %v", err)
	}
	if prompts[0].ProjectName != models.DefaultProjectName {
		t.Fatalf("expected project name %q, got %q",
			models.DefaultProjectName, prompts[0].ProjectName)
	}
}

func TestPromptEmptyPatchIsNoOp(t *testing.T) {
	d := newTestDatabase(t)

	prompt := addPrompt(t, d, "idea", "", nil)

	before, err := d.PromptRepo().FindByID(prompt.ID)
	if err != nil {
		t.Fatalf("find prompt: %v", err)
	}

	if err := d.PromptRepo().Update(prompt.ID, models.PromptPatch{}); err != nil {
		t.Fatalf("empty update: %v", err)
	}

	after, err := d.PromptRepo().FindByID(prompt.ID)
	if err != nil {
		t.Fatalf("find prompt: %v", err)
	}
	if !after.UpdatedAt.Equal(before.UpdatedAt) {
		t.Fatalf("empty patch must not touch updated_at: before %v, after %v",
			before.UpdatedAt, after.UpdatedAt)
	}
}

func TestReorderRewritesDenseSequence(t *testing.T) {
	d := newTestDatabase(t)

	project := models.Project{Name: "Research"}
	if err := d.ProjectRepo().Add(&project); err != nil {
		t.Fatalf("add project: %v", err)
	}

	p1 := addPrompt(t, d, "p1", models.StatusDraft, &project.ID)
	p2 := addPrompt(t, d, "p2", models.StatusDraft, &project.ID)
	p3 := addPrompt(t, d, "p3", models.StatusDraft, &project.ID)

	// Drag p3 to the front.
	order := []uint{p3.ID, p1.ID, p2.ID}
	if err := d.PromptRepo().Reorder(order, &project.ID); err != nil {
		t.Fatalf("reorder: %v", err)
	}

	prompts, err := d.PromptRepo().FindAll(PromptFilter{
		ProjectID: &project.ID,
		Status:    models.StatusDraft,
	})
	if err != nil {
		t.Fatalf("find prompts: %v", err)
	}
	if len(prompts) != 3 {
		t.Fatalf("expected 3 prompts, got %d", len(prompts))
	}
	for i, wantID := range order {
		if prompts[i].ID != wantID {
			t.Fatalf("position %d: expected prompt %d, got %d", i, wantID, prompts[i].ID)
		}
		if prompts[i].OrderNumber != i+1 {
			t.Fatalf("position %d: expected order_number %d, got %d",
				i, i+1, prompts[i].OrderNumber)
		}
	}
}

func TestReorderUnknownIDFailsBatch(t *testing.T) {
	d := newTestDatabase(t)

	p1 := addPrompt(t, d, "p1", models.StatusDraft, nil)
	p2 := addPrompt(t, d, "p2", models.StatusDraft, nil)

	err := d.PromptRepo().Reorder([]uint{p2.ID, 9999, p1.ID}, nil)
	if err == nil {
		t.Fatal("expected reorder with unknown id to fail")
	}
	var apiErr *errs.ApiErr
	if !errors.As(err, &apiErr) || apiErr.StatusCode != 404 {
		t.Fatalf("expected not-found error naming the id, got %v", err)
	}

	// The whole batch rolled back: p2 keeps its original position.
	got, findErr := d.PromptRepo().FindByID(p2.ID)
	if findErr != nil {
		t.Fatalf("find prompt: %v", findErr)
	}
	if got.OrderNumber != p2.OrderNumber {
		t.Fatalf("expected rollback to order %d, got %d", p2.OrderNumber, got.OrderNumber)
	}
}

func TestReorderCrossProjectIDFailsBatch(t *testing.T) {
	d := newTestDatabase(t)

	project := models.Project{Name: "Research"}
	if err := d.ProjectRepo().Add(&project); err != nil {
		t.Fatalf("add project: %v", err)
	}

	inProject := addPrompt(t, d, "in", models.StatusDraft, &project.ID)
	outside := addPrompt(t, d, "out", models.StatusDraft, nil)

	err := d.PromptRepo().Reorder([]uint{outside.ID, inProject.ID}, &project.ID)
	if err == nil {
		t.Fatal("expected reorder across project boundary to fail")
	}
	var apiErr *errs.ApiErr
	if !errors.As(err, &apiErr) || apiErr.StatusCode != 400 {
		t.Fatalf("expected bad-request error, got %v", err)
	}
}

func TestReorderZeroProjectMeansAllProjects(t *testing.T) {
	d := newTestDatabase(t)

	project := models.Project{Name: "Research"}
	if err := d.ProjectRepo().Add(&project); err != nil {
		t.Fatalf("add project: %v", err)
	}

	p1 := addPrompt(t, d, "p1", models.StatusDraft, &project.ID)
	p2 := addPrompt(t, d, "p2", models.StatusDraft, nil)

	var all uint // sentinel: 0 scopes to nothing
	if err := d.PromptRepo().Reorder([]uint{p2.ID, p1.ID}, &all); err != nil {
		t.Fatalf("unscoped reorder: %v", err)
	}

	got, err := d.PromptRepo().FindByID(p2.ID)
	if err != nil {
		t.Fatalf("find prompt: %v", err)
	}
	if got.OrderNumber != 1 {
		t.Fatalf("expected p2 at position 1, got %d", got.OrderNumber)
	}
}

func TestPromptDeleteHasNoSideEffects(t *testing.T) {
	d := newTestDatabase(t)

	p1 := addPrompt(t, d, "p1", models.StatusDraft, nil)
	p2 := addPrompt(t, d, "p2", models.StatusDraft, nil)

	if err := d.PromptRepo().Delete(p1.ID); err != nil {
		t.Fatalf("delete prompt: %v", err)
	}

	remaining, err := d.PromptRepo().FindByID(p2.ID)
	if err != nil {
		t.Fatalf("find prompt: %v", err)
	}
	if remaining == nil {
		t.Fatal("unrelated prompt must survive")
	}
	if remaining.OrderNumber != p2.OrderNumber {
		t.Fatalf("prompt delete must not renumber: expected %d, got %d",
			p2.OrderNumber, remaining.OrderNumber)
	}
}
