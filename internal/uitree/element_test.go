package uitree

import (
	"testing"

	"github.com/dshills/sceneforge/internal/resource"
)

func newTestRoot(t *testing.T) (*Element, *resource.StyleSheet) {
	t.Helper()
	sheet := resource.NewStyleSheet("test.style")
	return NewRoot(sheet), sheet
}

func TestPathRoundTrip(t *testing.T) {
	root, _ := newTestRoot(t)
	a := root.CreateChild("a")
	b := root.CreateChild("b")
	inner := b.CreateChild("inner")

	tests := []struct {
		el   *Element
		path Path
	}{
		{root, Path{}},
		{a, Path{0}},
		{b, Path{1}},
		{inner, Path{1, 0}},
	}
	for _, tt := range tests {
		got := PathOf(tt.el)
		if len(got) != len(tt.path) {
			t.Fatalf("PathOf(%s) = %v, want %v", tt.el.Name(), got, tt.path)
		}
		for i := range got {
			if got[i] != tt.path[i] {
				t.Fatalf("PathOf(%s) = %v, want %v", tt.el.Name(), got, tt.path)
			}
		}
		if ByPath(root, tt.path) != tt.el {
			t.Fatalf("ByPath(%v) did not resolve %s", tt.path, tt.el.Name())
		}
	}
}

func TestByPathOutOfRange(t *testing.T) {
	root, _ := newTestRoot(t)
	root.CreateChild("only")

	if ByPath(root, Path{1}) != nil {
		t.Fatal("out-of-range index resolved")
	}
	if ByPath(root, Path{0, 0}) != nil {
		t.Fatal("path below a leaf resolved")
	}
}

func TestRemoveChildNotifiesBeforeDetach(t *testing.T) {
	root, _ := newTestRoot(t)
	el := root.CreateChild("panel")

	var pathAtNotify Path
	root.OnElementRemoved(func(removed *Element) {
		pathAtNotify = PathOf(removed)
	})

	if !root.RemoveChild(el) {
		t.Fatal("RemoveChild returned false")
	}
	if len(pathAtNotify) != 1 || pathAtNotify[0] != 0 {
		t.Fatalf("path at notify = %v, want [0]", pathAtNotify)
	}
	if el.Parent() != nil {
		t.Fatal("element still attached")
	}
}

func TestEffectiveAttributePrecedence(t *testing.T) {
	root, sheet := newTestRoot(t)
	if err := sheet.SetProperty("button", "Color", "blue"); err != nil {
		t.Fatalf("SetProperty: %v", err)
	}

	el := root.CreateChild("ok")
	el.SetStyle("button")

	if v, ok := el.EffectiveAttribute("Color"); !ok || v != "blue" {
		t.Fatalf("sheet-level value = %v, want blue", v)
	}

	el.SetInstanceDefault("Color", "green")
	if v, _ := el.EffectiveAttribute("Color"); v != "green" {
		t.Fatalf("instance default should win over sheet, got %v", v)
	}

	el.SetAttribute("Color", "red")
	if v, _ := el.EffectiveAttribute("Color"); v != "red" {
		t.Fatalf("attribute should win over defaults, got %v", v)
	}
}

func TestSetInstanceDefaultNilDeletes(t *testing.T) {
	root, _ := newTestRoot(t)
	el := root.CreateChild("e")

	el.SetInstanceDefault("Pad", 4.0)
	if _, ok := el.InstanceDefault("Pad"); !ok {
		t.Fatal("instance default missing")
	}
	el.SetInstanceDefault("Pad", nil)
	if _, ok := el.InstanceDefault("Pad"); ok {
		t.Fatal("nil should delete the instance default")
	}
}

func TestSnapshotRestoreAtRecordedIndex(t *testing.T) {
	root, sheet := newTestRoot(t)
	root.CreateChild("first")
	mid := root.CreateChild("mid")
	root.CreateChild("last")
	mid.CreateChild("nested").SetAttribute("X", 1.0)
	mid.SetInstanceDefault("Margin", 2.0)

	data, err := mid.Save()
	if err != nil {
		t.Fatalf("Save: %v", err)
	}
	root.RemoveChild(mid)

	restored, err := RestoreChild(root, data, sheet)
	if err != nil {
		t.Fatalf("RestoreChild: %v", err)
	}
	if root.ChildIndex(restored) != 1 {
		t.Fatalf("restored at index %d, want 1", root.ChildIndex(restored))
	}
	if restored.ChildCount() != 1 {
		t.Fatal("subtree not restored")
	}
	if v, _ := restored.Children()[0].Attribute("X"); v != 1.0 {
		t.Fatalf("nested attribute = %v, want 1", v)
	}
	if v, _ := restored.InstanceDefault("Margin"); v != 2.0 {
		t.Fatalf("instance default = %v, want 2", v)
	}
	if restored.DefaultStyle() != sheet {
		t.Fatal("restored subtree lost the sheet")
	}
}

func TestRestoreChildNotifiesOnce(t *testing.T) {
	root, sheet := newTestRoot(t)
	el := root.CreateChild("tree")
	el.CreateChild("leaf")

	data, err := el.Save()
	if err != nil {
		t.Fatalf("Save: %v", err)
	}
	root.RemoveChild(el)

	added := 0
	root.OnElementAdded(func(*Element) { added++ })
	if _, err := RestoreChild(root, data, sheet); err != nil {
		t.Fatalf("RestoreChild: %v", err)
	}
	if added != 1 {
		t.Fatalf("added notifications = %d, want 1", added)
	}
}

func TestDefaultStyleWalksAncestors(t *testing.T) {
	sheet := resource.NewStyleSheet("inherited.style")
	root := NewRoot(sheet)
	deep := root.CreateChild("a").CreateChild("b").CreateChild("c")

	if deep.DefaultStyle() != sheet {
		t.Fatal("descendant did not inherit the root sheet")
	}
}
