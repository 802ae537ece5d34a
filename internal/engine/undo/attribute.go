package undo

import (
	"github.com/google/uuid"

	"github.com/dshills/sceneforge/internal/scene"
	"github.com/dshills/sceneforge/internal/uitree"
)

type targetKind int

const (
	targetNode targetKind = iota
	targetComponent
	targetElement
)

// EditAttribute records a single attribute change. The target is polymorphic:
// a node or component resolved by stable ID, or a UI element resolved by
// structural path. Values are captured as an explicit old/new pair instead of
// a whole-object snapshot.
type EditAttribute struct {
	Recorded
	kind targetKind

	sceneID  uuid.UUID
	targetID scene.ID

	rootID uuid.UUID
	path   uitree.Path

	name     string
	oldValue any
	newValue any
}

// NewNodeAttributeEdit captures an attribute change on a node.
func NewNodeAttributeEdit(n *scene.Node, name string, oldValue, newValue any) *EditAttribute {
	return &EditAttribute{
		kind:     targetNode,
		sceneID:  n.Scene().ID(),
		targetID: n.ID(),
		name:     name,
		oldValue: copyValue(oldValue),
		newValue: copyValue(newValue),
	}
}

// NewComponentAttributeEdit captures an attribute change on a component.
func NewComponentAttributeEdit(c *scene.Component, name string, oldValue, newValue any) *EditAttribute {
	return &EditAttribute{
		kind:     targetComponent,
		sceneID:  c.Node().Scene().ID(),
		targetID: c.ID(),
		name:     name,
		oldValue: copyValue(oldValue),
		newValue: copyValue(newValue),
	}
}

// NewElementAttributeEdit captures an attribute change on a UI element.
func NewElementAttributeEdit(el *uitree.Element, name string, oldValue, newValue any) *EditAttribute {
	return &EditAttribute{
		kind:     targetElement,
		rootID:   el.ID(),
		path:     uitree.PathOf(el).Clone(),
		name:     name,
		oldValue: copyValue(oldValue),
		newValue: copyValue(newValue),
	}
}

// Name returns the edited attribute's name.
func (a *EditAttribute) Name() string { return a.name }

// target re-resolves the edited object, nil when it no longer exists.
func (a *EditAttribute) target(env *Environment) scene.Attributed {
	switch a.kind {
	case targetNode:
		if s := env.resolveScene(a.sceneID); s != nil {
			if n := s.NodeByID(a.targetID); n != nil {
				return n
			}
		}
	case targetComponent:
		if s := env.resolveScene(a.sceneID); s != nil {
			if c := s.ComponentByID(a.targetID); c != nil {
				return c
			}
		}
	case targetElement:
		if root := env.resolveUIRoot(a.rootID); root != nil {
			if el := uitree.ByPath(root, a.path); el != nil {
				return el
			}
		}
	}
	return nil
}

func (a *EditAttribute) apply(env *Environment, value any) bool {
	t := a.target(env)
	if t == nil {
		return false
	}
	t.SetAttribute(a.name, copyValue(value))
	return true
}

// Undo reapplies the old value.
func (a *EditAttribute) Undo(env *Environment) bool { return a.apply(env, a.oldValue) }

// Redo reapplies the new value.
func (a *EditAttribute) Redo(env *Environment) bool { return a.apply(env, a.newValue) }
