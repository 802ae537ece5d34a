package undo

import (
	"github.com/google/uuid"

	"github.com/dshills/sceneforge/internal/uitree"
)

// EditStyleProperty records changing one property of an element's applied
// style. Because the style lives in a shared sheet, the action captures the
// whole style document before and after the change alongside the element's
// own instance default for the property.
//
// The constructor applies the change to the sheet itself, so callers record
// the action and are done; Undo/Redo swap between the captured documents.
type EditStyleProperty struct {
	Recorded
	rootID      uuid.UUID
	elementPath uitree.Path
	property    string
	oldValue    any
	newValue    any
	oldDoc      string
	newDoc      string
}

// NewEditStyleProperty mutates the element's style sheet, setting (or, for a
// nil value, removing) a property of the element's applied style, and returns
// the action capturing both document states.
func NewEditStyleProperty(el *uitree.Element, property string, newValue any) (*EditStyleProperty, error) {
	sheet := el.DefaultStyle()
	if sheet == nil {
		return nil, ErrNoStyleSheet
	}
	oldValue, _ := el.InstanceDefault(property)

	a := &EditStyleProperty{
		rootID:      el.ID(),
		elementPath: uitree.PathOf(el).Clone(),
		property:    property,
		oldValue:    copyValue(oldValue),
		newValue:    copyValue(newValue),
		oldDoc:      sheet.Document(),
	}

	var err error
	if newValue == nil {
		err = sheet.DeleteProperty(el.AppliedStyle(), property)
	} else {
		err = sheet.SetProperty(el.AppliedStyle(), property, newValue)
	}
	if err != nil {
		return nil, err
	}
	a.newDoc = sheet.Document()
	el.SetInstanceDefault(property, newValue)
	return a, nil
}

func (a *EditStyleProperty) apply(env *Environment, doc string, value any) bool {
	root := env.resolveUIRoot(a.rootID)
	if root == nil {
		return false
	}
	element := uitree.ByPath(root, a.elementPath)
	if element == nil {
		return false
	}
	sheet := element.DefaultStyle()
	if sheet == nil {
		return false
	}
	element.SetInstanceDefault(a.property, copyValue(value))
	return sheet.SetDocument(doc) == nil
}

// Undo restores the pre-edit style document and instance default.
func (a *EditStyleProperty) Undo(env *Environment) bool {
	return a.apply(env, a.oldDoc, a.oldValue)
}

// Redo restores the post-edit style document and instance default.
func (a *EditStyleProperty) Redo(env *Environment) bool {
	return a.apply(env, a.newDoc, a.newValue)
}
