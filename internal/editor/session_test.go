package editor

import (
	"testing"

	"github.com/dshills/sceneforge/internal/config"
)

func newTestSession(t *testing.T) *Session {
	t.Helper()
	cfg := config.Default()
	cfg.Resources.Dir = t.TempDir()
	s, err := NewSession(cfg, nil)
	if err != nil {
		t.Fatalf("NewSession: %v", err)
	}
	t.Cleanup(func() { _ = s.Close() })
	return s
}

func TestSessionRecordsAndUndoes(t *testing.T) {
	s := newTestSession(t)

	n := s.Scene().Root().CreateChild("camera")
	s.EndFrame()
	n.SetAttribute("FOV", 90.0)
	s.EndFrame()

	if err := s.Undo(); err != nil {
		t.Fatalf("Undo: %v", err)
	}
	if v, _ := n.Attribute("FOV"); v != nil {
		t.Fatalf("FOV after undo = %v, want nil", v)
	}
	if err := s.Undo(); err != nil {
		t.Fatalf("Undo: %v", err)
	}
	if got := len(s.Scene().Root().Children()); got != 0 {
		t.Fatalf("children after undo = %d, want 0", got)
	}

	if err := s.Redo(); err != nil {
		t.Fatalf("Redo: %v", err)
	}
	if err := s.Redo(); err != nil {
		t.Fatalf("Redo: %v", err)
	}
	restored := s.Scene().Root().Children()
	if len(restored) != 1 {
		t.Fatalf("children after redo = %d, want 1", len(restored))
	}
	if v, _ := restored[0].Attribute("FOV"); v != 90.0 {
		t.Fatalf("FOV after redo = %v, want 90", v)
	}
}

func TestSessionUndoRedoErrorsAtBounds(t *testing.T) {
	s := newTestSession(t)
	if err := s.Undo(); err == nil {
		t.Fatal("Undo on empty history should error")
	}
	if err := s.Redo(); err == nil {
		t.Fatal("Redo at top should error")
	}
}

func TestSessionStartsWithDefaultSheet(t *testing.T) {
	s := newTestSession(t)
	sheet := s.Resources().StyleSheet(defaultSheetName)
	if sheet == nil {
		t.Fatal("default sheet missing from the cache")
	}
	if s.UIRoot().DefaultStyle() != sheet {
		t.Fatal("UI root not bound to the default sheet")
	}
}

func TestSessionInteractingFlagReachesTracker(t *testing.T) {
	s := newTestSession(t)

	s.SetInteracting(true)
	if !s.History().Env().StillInteracting() {
		t.Fatal("environment does not see the interacting flag")
	}
	s.SetInteracting(false)
	if s.History().Env().StillInteracting() {
		t.Fatal("interacting flag stuck on")
	}
}

func TestSessionHonorsHistoryLimits(t *testing.T) {
	cfg := config.Default()
	cfg.Resources.Dir = t.TempDir()
	cfg.History.MaxBatches = 1
	s, err := NewSession(cfg, nil)
	if err != nil {
		t.Fatalf("NewSession: %v", err)
	}
	t.Cleanup(func() { _ = s.Close() })

	s.Scene().Root().CreateChild("a")
	s.EndFrame()
	s.Scene().Root().CreateChild("b")
	s.EndFrame()

	if got := s.History().Len(); got != 1 {
		t.Fatalf("history length = %d, want capped 1", got)
	}
}
