package undo

import (
	"github.com/google/uuid"

	"github.com/dshills/sceneforge/internal/scene"
)

// CreateComponent records the creation of a component on a node.
type CreateComponent struct {
	Recorded
	sceneID     uuid.UUID
	nodeID      scene.ID
	componentID scene.ID
	data        []byte
}

// NewCreateComponent captures a freshly created component.
func NewCreateComponent(c *scene.Component) (*CreateComponent, error) {
	node := c.Node()
	if node == nil {
		return nil, ErrDetachedTarget
	}
	data, err := c.Save()
	if err != nil {
		return nil, err
	}
	return &CreateComponent{
		sceneID:     node.Scene().ID(),
		nodeID:      node.ID(),
		componentID: c.ID(),
		data:        data,
	}, nil
}

// Undo removes the created component.
func (a *CreateComponent) Undo(env *Environment) bool {
	s := env.resolveScene(a.sceneID)
	if s == nil {
		return false
	}
	node, comp := s.NodeByID(a.nodeID), s.ComponentByID(a.componentID)
	if node == nil || comp == nil {
		return false
	}
	return node.RemoveComponent(comp)
}

// Redo restores the component on its recorded node.
func (a *CreateComponent) Redo(env *Environment) bool {
	s := env.resolveScene(a.sceneID)
	if s == nil {
		return false
	}
	node := s.NodeByID(a.nodeID)
	if node == nil {
		return false
	}
	_, err := s.RestoreComponent(node, a.data)
	return err == nil
}

// DeleteComponent records the removal of a component from a node.
type DeleteComponent struct {
	Recorded
	sceneID     uuid.UUID
	nodeID      scene.ID
	componentID scene.ID
	data        []byte
}

// NewDeleteComponent captures a component about to be removed. It must be
// called while the component is still attached.
func NewDeleteComponent(c *scene.Component) (*DeleteComponent, error) {
	node := c.Node()
	if node == nil {
		return nil, ErrDetachedTarget
	}
	data, err := c.Save()
	if err != nil {
		return nil, err
	}
	return &DeleteComponent{
		sceneID:     node.Scene().ID(),
		nodeID:      node.ID(),
		componentID: c.ID(),
		data:        data,
	}, nil
}

// Undo restores the removed component.
func (a *DeleteComponent) Undo(env *Environment) bool {
	s := env.resolveScene(a.sceneID)
	if s == nil {
		return false
	}
	node := s.NodeByID(a.nodeID)
	if node == nil {
		return false
	}
	_, err := s.RestoreComponent(node, a.data)
	return err == nil
}

// Redo removes the component again.
func (a *DeleteComponent) Redo(env *Environment) bool {
	s := env.resolveScene(a.sceneID)
	if s == nil {
		return false
	}
	node, comp := s.NodeByID(a.nodeID), s.ComponentByID(a.componentID)
	if node == nil || comp == nil {
		return false
	}
	return node.RemoveComponent(comp)
}
