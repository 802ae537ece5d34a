package undo

import (
	"errors"
	"testing"

	"github.com/dshills/sceneforge/internal/uitree"
)

func TestEditStylePropertyUndoRedo(t *testing.T) {
	w := newTestWorld(t)
	if err := w.sheet.SetProperty("button", "Padding", 4.0); err != nil {
		t.Fatalf("SetProperty: %v", err)
	}

	el := w.root.CreateChild("ok-button")
	el.SetStyle("button")

	a, err := NewEditStyleProperty(el, "Padding", 8.0)
	if err != nil {
		t.Fatalf("NewEditStyleProperty: %v", err)
	}

	if v, _ := w.sheet.Property("button", "Padding"); v != 8.0 {
		t.Fatalf("sheet property after edit = %v, want 8", v)
	}
	if v, _ := el.InstanceDefault("Padding"); v != 8.0 {
		t.Fatalf("instance default after edit = %v, want 8", v)
	}

	if !a.Undo(w.stack.Env()) {
		t.Fatal("Undo failed")
	}
	if v, _ := w.sheet.Property("button", "Padding"); v != 4.0 {
		t.Fatalf("sheet property after undo = %v, want 4", v)
	}
	if _, ok := el.InstanceDefault("Padding"); ok {
		t.Fatal("instance default should be cleared by undo")
	}

	if !a.Redo(w.stack.Env()) {
		t.Fatal("Redo failed")
	}
	if v, _ := w.sheet.Property("button", "Padding"); v != 8.0 {
		t.Fatalf("sheet property after redo = %v, want 8", v)
	}
}

func TestEditStylePropertyDelete(t *testing.T) {
	w := newTestWorld(t)
	if err := w.sheet.SetProperty("button", "Margin", 2.0); err != nil {
		t.Fatalf("SetProperty: %v", err)
	}
	el := w.root.CreateChild("btn")
	el.SetStyle("button")

	a, err := NewEditStyleProperty(el, "Margin", nil)
	if err != nil {
		t.Fatalf("NewEditStyleProperty: %v", err)
	}
	if _, ok := w.sheet.Property("button", "Margin"); ok {
		t.Fatal("property should be deleted")
	}

	if !a.Undo(w.stack.Env()) {
		t.Fatal("Undo failed")
	}
	if v, _ := w.sheet.Property("button", "Margin"); v != 2.0 {
		t.Fatalf("property after undo = %v, want 2", v)
	}
}

func TestEditStylePropertyRequiresSheet(t *testing.T) {
	bare := uitree.NewRoot(nil).CreateChild("naked")
	if _, err := NewEditStyleProperty(bare, "Padding", 1.0); !errors.Is(err, ErrNoStyleSheet) {
		t.Fatalf("err = %v, want ErrNoStyleSheet", err)
	}
}

func TestEditStylePropertyExpiredElement(t *testing.T) {
	w := newTestWorld(t)
	el := w.root.CreateChild("gone")
	el.SetStyle("button")

	a, err := NewEditStyleProperty(el, "Padding", 6.0)
	if err != nil {
		t.Fatalf("NewEditStyleProperty: %v", err)
	}
	w.root.RemoveChild(el)

	if a.Undo(w.stack.Env()) {
		t.Fatal("Undo resolved a removed element")
	}
}
