package models

import (
	"testing"

	"github.com/minsukang/newlife/internal/constants"
)

func TestChecklistToggleIsolated(t *testing.T) {
	var c Checklist

	got, err := c.Toggle("worship")
	if err != nil {
		t.Fatalf("Toggle(worship) failed: %v", err)
	}
	if !got {
		t.Error("Toggle(worship) = false, want true")
	}

	if c.Completed() != 1 {
		t.Errorf("Completed() = %d, want 1", c.Completed())
	}
	for _, item := range constants.ChecklistItems {
		if item.ID == "worship" {
			continue
		}
		v, err := c.Get(item.ID)
		if err != nil {
			t.Fatalf("Get(%s) failed: %v", item.ID, err)
		}
		if v {
			t.Errorf("toggling worship also set %s", item.ID)
		}
	}

	got, err = c.Toggle("worship")
	if err != nil {
		t.Fatalf("second Toggle(worship) failed: %v", err)
	}
	if got || c.Completed() != 0 {
		t.Error("second toggle did not reset the flag")
	}
}

func TestChecklistKnownIDs(t *testing.T) {
	if len(constants.ChecklistItems) != ChecklistItemCount {
		t.Fatalf("got %d checklist items, want %d", len(constants.ChecklistItems), ChecklistItemCount)
	}

	var c Checklist
	for _, item := range constants.ChecklistItems {
		if err := c.Set(item.ID, true); err != nil {
			t.Errorf("Set(%s) failed: %v", item.ID, err)
		}
	}
	if c.Completed() != ChecklistItemCount {
		t.Errorf("Completed() = %d after setting every flag, want %d", c.Completed(), ChecklistItemCount)
	}
}

func TestChecklistUnknownID(t *testing.T) {
	var c Checklist

	if _, err := c.Get("flossing"); err == nil {
		t.Error("Get with an unknown id should fail")
	}
	if err := c.Set("flossing", true); err == nil {
		t.Error("Set with an unknown id should fail")
	}
	if _, err := c.Toggle("flossing"); err == nil {
		t.Error("Toggle with an unknown id should fail")
	}
	if c.Completed() != 0 {
		t.Error("a failed mutation changed the checklist")
	}
}
