package undo

import (
	"github.com/google/uuid"
	"github.com/tidwall/sjson"

	"github.com/dshills/sceneforge/internal/resource"
	"github.com/dshills/sceneforge/internal/uitree"
)

// elementCapture is the state shared by the structural UI element actions: a
// subtree snapshot (which embeds the sibling index), the paths needed to
// re-locate the element and its parent, and the name of the style sheet to
// re-apply on restore.
type elementCapture struct {
	rootID      uuid.UUID
	elementPath uitree.Path
	parentPath  uitree.Path
	data        []byte
	sheetName   string
}

func captureElement(el *uitree.Element) (elementCapture, error) {
	if el.Parent() == nil {
		return elementCapture{}, ErrDetachedTarget
	}
	data, err := el.Save()
	if err != nil {
		return elementCapture{}, err
	}
	ec := elementCapture{
		rootID:      el.ID(),
		elementPath: uitree.PathOf(el).Clone(),
		parentPath:  uitree.PathOf(el.Parent()).Clone(),
		data:        data,
	}
	if sheet := el.DefaultStyle(); sheet != nil {
		ec.sheetName = sheet.Name()
	}
	return ec, nil
}

func (c *elementCapture) sheet(env *Environment) *resource.StyleSheet {
	if c.sheetName == "" || env == nil || env.Resources == nil {
		return nil
	}
	return env.Resources.StyleSheet(c.sheetName)
}

// remove detaches the captured element from its parent.
func (c *elementCapture) remove(env *Environment) bool {
	root := env.resolveUIRoot(c.rootID)
	if root == nil {
		return false
	}
	parent, element := uitree.ByPath(root, c.parentPath), uitree.ByPath(root, c.elementPath)
	if parent == nil || element == nil {
		return false
	}
	return parent.RemoveChild(element)
}

// restore rebuilds the captured subtree at its recorded sibling index.
func (c *elementCapture) restore(env *Environment, data []byte) bool {
	root := env.resolveUIRoot(c.rootID)
	if root == nil {
		return false
	}
	parent := uitree.ByPath(root, c.parentPath)
	if parent == nil {
		return false
	}
	_, err := uitree.RestoreChild(parent, data, c.sheet(env))
	return err == nil
}

// CreateElement records the creation of a UI element.
type CreateElement struct {
	Recorded
	elementCapture
}

// NewCreateElement captures a freshly created element.
func NewCreateElement(el *uitree.Element) (*CreateElement, error) {
	ec, err := captureElement(el)
	if err != nil {
		return nil, err
	}
	return &CreateElement{elementCapture: ec}, nil
}

// Undo removes the created element.
func (a *CreateElement) Undo(env *Environment) bool { return a.remove(env) }

// Redo restores the element subtree.
func (a *CreateElement) Redo(env *Environment) bool { return a.restore(env, a.data) }

// DeleteElement records the deletion of a UI element.
type DeleteElement struct {
	Recorded
	elementCapture
}

// NewDeleteElement captures an element about to be deleted. It must be called
// while the element is still attached.
func NewDeleteElement(el *uitree.Element) (*DeleteElement, error) {
	ec, err := captureElement(el)
	if err != nil {
		return nil, err
	}
	return &DeleteElement{elementCapture: ec}, nil
}

// Undo restores the deleted subtree.
func (a *DeleteElement) Undo(env *Environment) bool { return a.restore(env, a.data) }

// Redo removes the element again.
func (a *DeleteElement) Redo(env *Environment) bool { return a.remove(env) }

// ReparentElement records moving a UI element under a new parent. Structural
// paths shift when an element moves, so undo resolves the element at its
// post-move location and redo at its pre-move location.
type ReparentElement struct {
	Recorded
	rootID        uuid.UUID
	oldParentPath uitree.Path
	oldIndex      int
	newParentPath uitree.Path
	newIndex      int
}

// NewReparentElement captures an element about to be moved under newParent.
// It must be called before the move happens.
func NewReparentElement(el *uitree.Element, newParent *uitree.Element) (*ReparentElement, error) {
	parent := el.Parent()
	if parent == nil {
		return nil, ErrDetachedTarget
	}
	return &ReparentElement{
		rootID:        el.ID(),
		oldParentPath: uitree.PathOf(parent).Clone(),
		oldIndex:      parent.ChildIndex(el),
		newParentPath: uitree.PathOf(newParent).Clone(),
		newIndex:      newParent.ChildCount(),
	}, nil
}

// Undo moves the element back under its old parent at its old sibling index.
func (a *ReparentElement) Undo(env *Environment) bool {
	root := env.resolveUIRoot(a.rootID)
	if root == nil {
		return false
	}
	element := uitree.ByPath(root, a.newParentPath.Child(a.newIndex))
	oldParent := uitree.ByPath(root, a.oldParentPath)
	if element == nil || oldParent == nil {
		return false
	}
	element.SetParent(oldParent, a.oldIndex)
	return true
}

// Redo moves the element under the new parent again.
func (a *ReparentElement) Redo(env *Environment) bool {
	root := env.resolveUIRoot(a.rootID)
	if root == nil {
		return false
	}
	element := uitree.ByPath(root, a.oldParentPath.Child(a.oldIndex))
	newParent := uitree.ByPath(root, a.newParentPath)
	if element == nil || newParent == nil {
		return false
	}
	element.SetParent(newParent, a.newIndex)
	return true
}

// ApplyElementStyle records changing the style applied to a UI element. The
// element is rebuilt from its captured snapshot with the style name swapped,
// so the whole styled state flips atomically in both directions.
type ApplyElementStyle struct {
	Recorded
	elementCapture
	oldStyle string
	newStyle string
}

// NewApplyElementStyle captures an element about to receive a new style. It
// must be called before the style is applied.
func NewApplyElementStyle(el *uitree.Element, newStyle string) (*ApplyElementStyle, error) {
	ec, err := captureElement(el)
	if err != nil {
		return nil, err
	}
	return &ApplyElementStyle{
		elementCapture: ec,
		oldStyle:       el.AppliedStyle(),
		newStyle:       newStyle,
	}, nil
}

func (a *ApplyElementStyle) applyStyle(env *Environment, style string) bool {
	root := env.resolveUIRoot(a.rootID)
	if root == nil {
		return false
	}
	parent, element := uitree.ByPath(root, a.parentPath), uitree.ByPath(root, a.elementPath)
	if parent == nil || element == nil {
		return false
	}
	data, err := sjson.SetBytes(a.data, "style", style)
	if err != nil {
		return false
	}
	parent.RemoveChild(element)
	_, err = uitree.RestoreChild(parent, data, a.sheet(env))
	return err == nil
}

// Undo rebuilds the element with its old style.
func (a *ApplyElementStyle) Undo(env *Environment) bool { return a.applyStyle(env, a.oldStyle) }

// Redo rebuilds the element with its new style.
func (a *ApplyElementStyle) Redo(env *Environment) bool { return a.applyStyle(env, a.newStyle) }
