package undo

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/dshills/sceneforge/internal/resource"
)

func themeEdit(sheet *resource.StyleSheet, oldColor, newColor string) *ResourceEdit[string] {
	return NewResourceEdit(sheet, oldColor, newColor, func(res resource.Resource, value string) bool {
		s, ok := res.(*resource.StyleSheet)
		if !ok {
			return false
		}
		return s.SetProperty("window", "Background", value) == nil
	})
}

func TestResourceEditUndoRedo(t *testing.T) {
	w := newTestWorld(t)
	if err := w.sheet.SetProperty("window", "Background", "white"); err != nil {
		t.Fatalf("SetProperty: %v", err)
	}

	a := themeEdit(w.sheet, "white", "black")
	if !a.Redo(w.stack.Env()) {
		t.Fatal("Redo failed")
	}
	if v, _ := w.sheet.Property("window", "Background"); v != "black" {
		t.Fatalf("property = %v, want black", v)
	}

	if !a.Undo(w.stack.Env()) {
		t.Fatal("Undo failed")
	}
	if v, _ := w.sheet.Property("window", "Background"); v != "white" {
		t.Fatalf("property = %v, want white", v)
	}
}

func TestResourceEditSurvivesReload(t *testing.T) {
	w := newTestWorld(t)

	// Swap in a fresh instance under the same name, as a file reload would.
	replacement := resource.NewStyleSheet(w.sheet.Name())
	if err := replacement.SetProperty("window", "Background", "white"); err != nil {
		t.Fatalf("SetProperty: %v", err)
	}
	w.cache.Add(replacement)

	a := themeEdit(w.sheet, "white", "black")
	if !a.Redo(w.stack.Env()) {
		t.Fatal("Redo failed")
	}
	if v, _ := replacement.Property("window", "Background"); v != "black" {
		t.Fatal("edit did not reach the current resource instance")
	}
	if _, ok := w.sheet.Property("window", "Background"); ok {
		t.Fatal("edit mutated the stale instance")
	}
}

func TestResourceEditMissingResource(t *testing.T) {
	w := newTestWorld(t)
	orphan := resource.NewStyleSheet("missing.style")

	a := themeEdit(orphan, "a", "b")
	if a.Undo(w.stack.Env()) || a.Redo(w.stack.Env()) {
		t.Fatal("action resolved a resource the cache does not hold")
	}
}

func TestResourceEditAutosavesOnCommit(t *testing.T) {
	w := newTestWorld(t)
	w.stack.Env().AutosaveResources = true

	a := themeEdit(w.sheet, "white", "black")
	if !a.Redo(w.stack.Env()) {
		t.Fatal("Redo failed")
	}
	a.OnCommitted(w.stack.Env())

	path := filepath.Join(w.cache.Dir(), w.sheet.Name())
	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("autosaved file missing: %v", err)
	}
	if len(data) == 0 {
		t.Fatal("autosaved file is empty")
	}
}

func TestResourceEditSkipsAutosaveWhenDisabled(t *testing.T) {
	w := newTestWorld(t)

	a := themeEdit(w.sheet, "white", "black")
	a.OnCommitted(w.stack.Env())

	path := filepath.Join(w.cache.Dir(), w.sheet.Name())
	if _, err := os.Stat(path); !os.IsNotExist(err) {
		t.Fatal("commit wrote a file despite autosave being off")
	}
}
