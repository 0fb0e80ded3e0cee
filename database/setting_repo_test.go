package database

import (
	"testing"

	"github.com/inkwell-app/backend/models"
)

func TestSettingGetMissing(t *testing.T) {
	d := newTestDatabase(t)

	setting, err := d.SettingRepo().Get("nope")
	if err != nil {
		t.Fatalf("get setting: %v", err)
	}
	if setting != nil {
		t.Fatalf("expected nil for missing key, got %+v", setting)
	}
}

func TestSettingSetUpserts(t *testing.T) {
	d := newTestDatabase(t)

	if err := d.SettingRepo().Set("theme", "dark"); err != nil {
		t.Fatalf("set setting: %v", err)
	}
	if err := d.SettingRepo().Set("theme", "light"); err != nil {
		t.Fatalf("overwrite setting: %v", err)
	}

	setting, err := d.SettingRepo().Get("theme")
	if err != nil {
		t.Fatalf("get setting: %v", err)
	}
	if setting.Value != "light" {
		t.Fatalf("expected overwritten value light, got %q", setting.Value)
	}
}

func TestItemCRUD(t *testing.T) {
	d := newTestDatabase(t)

	desc := "a legacy record"
	item := models.Item{Name: "widget", Description: &desc}
	if err := d.ItemRepo().Add(&item); err != nil {
		t.Fatalf("add item: %v", err)
	}

	newName := "gadget"
	if err := d.ItemRepo().Update(item.ID, models.ItemPatch{Name: &newName}); err != nil {
		t.Fatalf("update item: %v", err)
	}

	got, err := d.ItemRepo().FindByID(item.ID)
	if err != nil {
		t.Fatalf("find item: %v", err)
	}
	if got.Name != newName {
		t.Fatalf("expected name %q, got %q", newName, got.Name)
	}
	if got.Description == nil || *got.Description != desc {
		t.Fatalf("description should be untouched, got %v", got.Description)
	}

	if err := d.ItemRepo().Delete(item.ID); err != nil {
		t.Fatalf("delete item: %v", err)
	}
	gone, err := d.ItemRepo().FindByID(item.ID)
	if err != nil {
		t.Fatalf("find deleted item: %v", err)
	}
	if gone != nil {
		t.Fatal("item should be gone after delete")
	}
}
