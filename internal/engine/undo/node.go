package undo

import (
	"github.com/google/uuid"

	"github.com/dshills/sceneforge/internal/scene"
)

// CreateNode records the creation of a node. It captures a full subtree
// snapshot so its undo logic and DeleteNode's redo logic are structural
// inverses of each other.
type CreateNode struct {
	Recorded
	sceneID  uuid.UUID
	parentID scene.ID
	nodeID   scene.ID
	data     []byte
}

// NewCreateNode captures a freshly created node.
func NewCreateNode(n *scene.Node) (*CreateNode, error) {
	if n.Parent() == nil {
		return nil, ErrDetachedTarget
	}
	data, err := n.Save()
	if err != nil {
		return nil, err
	}
	return &CreateNode{
		sceneID:  n.Scene().ID(),
		parentID: n.Parent().ID(),
		nodeID:   n.ID(),
		data:     data,
	}, nil
}

// Undo removes the created node.
func (a *CreateNode) Undo(env *Environment) bool {
	s := env.resolveScene(a.sceneID)
	if s == nil {
		return false
	}
	parent, node := s.NodeByID(a.parentID), s.NodeByID(a.nodeID)
	if parent == nil || node == nil {
		return false
	}
	return parent.RemoveChild(node)
}

// Redo restores the node subtree under its recorded parent.
func (a *CreateNode) Redo(env *Environment) bool {
	s := env.resolveScene(a.sceneID)
	if s == nil {
		return false
	}
	parent := s.NodeByID(a.parentID)
	if parent == nil {
		return false
	}
	_, err := s.RestoreNode(parent, a.data, -1)
	return err == nil
}

// DeleteNode records the deletion of a node, capturing the subtree snapshot
// and the sibling index needed to put it back exactly where it was.
type DeleteNode struct {
	Recorded
	sceneID  uuid.UUID
	parentID scene.ID
	nodeID   scene.ID
	index    int
	data     []byte
}

// NewDeleteNode captures a node about to be deleted. It must be called while
// the node is still attached.
func NewDeleteNode(n *scene.Node) (*DeleteNode, error) {
	parent := n.Parent()
	if parent == nil {
		return nil, ErrDetachedTarget
	}
	data, err := n.Save()
	if err != nil {
		return nil, err
	}
	return &DeleteNode{
		sceneID:  n.Scene().ID(),
		parentID: parent.ID(),
		nodeID:   n.ID(),
		index:    parent.ChildIndex(n),
		data:     data,
	}, nil
}

// Undo restores the deleted subtree at its recorded sibling index.
func (a *DeleteNode) Undo(env *Environment) bool {
	s := env.resolveScene(a.sceneID)
	if s == nil {
		return false
	}
	parent := s.NodeByID(a.parentID)
	if parent == nil {
		return false
	}
	_, err := s.RestoreNode(parent, a.data, a.index)
	return err == nil
}

// Redo removes the node again.
func (a *DeleteNode) Redo(env *Environment) bool {
	s := env.resolveScene(a.sceneID)
	if s == nil {
		return false
	}
	parent, node := s.NodeByID(a.parentID), s.NodeByID(a.nodeID)
	if parent == nil || node == nil {
		return false
	}
	return parent.RemoveChild(node)
}

// nodeMove pairs a node with the parent it is moved away from.
type nodeMove struct {
	nodeID      scene.ID
	oldParentID scene.ID
}

// ReparentNode records moving one or more nodes under a new parent. Only IDs
// are captured; the nodes themselves stay owned by the scene.
type ReparentNode struct {
	Recorded
	sceneID     uuid.UUID
	newParentID scene.ID
	moves       []nodeMove
}

// NewReparentNode captures a single node about to be moved under newParent.
func NewReparentNode(n *scene.Node, newParent *scene.Node) (*ReparentNode, error) {
	if n.Parent() == nil {
		return nil, ErrDetachedTarget
	}
	return &ReparentNode{
		sceneID:     n.Scene().ID(),
		newParentID: newParent.ID(),
		moves:       []nodeMove{{nodeID: n.ID(), oldParentID: n.Parent().ID()}},
	}, nil
}

// NewReparentNodes captures a batch of nodes about to be moved under
// newParent, each remembering its own old parent.
func NewReparentNodes(nodes []*scene.Node, newParent *scene.Node) (*ReparentNode, error) {
	a := &ReparentNode{
		sceneID:     newParent.Scene().ID(),
		newParentID: newParent.ID(),
	}
	for _, n := range nodes {
		if n.Parent() == nil {
			return nil, ErrDetachedTarget
		}
		a.moves = append(a.moves, nodeMove{nodeID: n.ID(), oldParentID: n.Parent().ID()})
	}
	return a, nil
}

// Undo moves every node back under its old parent. Nodes that no longer
// resolve are skipped and reported through the return value.
func (a *ReparentNode) Undo(env *Environment) bool {
	s := env.resolveScene(a.sceneID)
	if s == nil {
		return false
	}
	ok := true
	for _, m := range a.moves {
		node, parent := s.NodeByID(m.nodeID), s.NodeByID(m.oldParentID)
		if node == nil || parent == nil {
			ok = false
			continue
		}
		node.SetParent(parent, -1)
	}
	return ok
}

// Redo moves every node under the new parent again.
func (a *ReparentNode) Redo(env *Environment) bool {
	s := env.resolveScene(a.sceneID)
	if s == nil {
		return false
	}
	parent := s.NodeByID(a.newParentID)
	if parent == nil {
		return false
	}
	ok := true
	for _, m := range a.moves {
		node := s.NodeByID(m.nodeID)
		if node == nil {
			ok = false
			continue
		}
		node.SetParent(parent, -1)
	}
	return ok
}
