package resource

import (
	"errors"
	"testing"
)

func TestStyleSheetProperties(t *testing.T) {
	s := NewStyleSheet("ui.style")

	if _, ok := s.Property("window", "Background"); ok {
		t.Fatal("empty sheet resolved a property")
	}

	if err := s.SetProperty("window", "Background", "gray"); err != nil {
		t.Fatalf("SetProperty: %v", err)
	}
	if err := s.SetProperty("window", "Opacity", 0.9); err != nil {
		t.Fatalf("SetProperty: %v", err)
	}

	if v, ok := s.Property("window", "Background"); !ok || v != "gray" {
		t.Fatalf("Background = (%v, %v), want gray", v, ok)
	}
	if v, ok := s.Property("window", "Opacity"); !ok || v != 0.9 {
		t.Fatalf("Opacity = (%v, %v), want 0.9", v, ok)
	}

	props := s.StyleProperties("window")
	if len(props) != 2 {
		t.Fatalf("StyleProperties = %v, want 2 entries", props)
	}

	if err := s.DeleteProperty("window", "Opacity"); err != nil {
		t.Fatalf("DeleteProperty: %v", err)
	}
	if _, ok := s.Property("window", "Opacity"); ok {
		t.Fatal("deleted property still resolves")
	}
}

func TestStyleSheetDocumentRoundTrip(t *testing.T) {
	s := NewStyleSheet("ui.style")
	if err := s.SetProperty("button", "Padding", 4.0); err != nil {
		t.Fatalf("SetProperty: %v", err)
	}
	doc := s.Document()

	if err := s.SetProperty("button", "Padding", 9.0); err != nil {
		t.Fatalf("SetProperty: %v", err)
	}
	if err := s.SetDocument(doc); err != nil {
		t.Fatalf("SetDocument: %v", err)
	}
	if v, _ := s.Property("button", "Padding"); v != 4.0 {
		t.Fatalf("Padding after document restore = %v, want 4", v)
	}
}

func TestStyleSheetLoadRejectsInvalidDocument(t *testing.T) {
	s := NewStyleSheet("ui.style")
	if err := s.Load([]byte("not json")); !errors.Is(err, ErrInvalidDocument) {
		t.Fatalf("err = %v, want ErrInvalidDocument", err)
	}
	if err := s.SetDocument(`{"no_styles": true}`); !errors.Is(err, ErrInvalidDocument) {
		t.Fatalf("err = %v, want ErrInvalidDocument", err)
	}
}
