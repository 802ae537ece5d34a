package scene

import (
	"github.com/google/uuid"
)

// ID is a stable numeric identifier assigned by a Scene. Node and component
// IDs live in separate spaces.
type ID uint32

// EditorTag marks nodes that exist only for the editor itself (gizmos,
// selection helpers). Observers use it to keep such nodes out of undo history.
const EditorTag = "editor-internal"

// Attributed is implemented by anything carrying named attribute values.
type Attributed interface {
	Attribute(name string) (any, bool)
	SetAttribute(name string, value any)
}

// Scene owns a node tree and the ID registries used to resolve nodes and
// components by stable identifier.
type Scene struct {
	id   uuid.UUID
	root *Node

	nodes      map[ID]*Node
	components map[ID]*Component

	nextNodeID      ID
	nextComponentID ID

	nodeAdded        []func(*Node)
	nodeRemoved      []func(*Node)
	componentAdded   []func(*Component)
	componentRemoved []func(*Component)
	attributeChanged []func(target Attributed, name string, oldValue, newValue any)
}

// New creates an empty scene with a root node.
func New() *Scene {
	s := &Scene{
		id:              uuid.New(),
		nodes:           make(map[ID]*Node),
		components:      make(map[ID]*Component),
		nextNodeID:      1,
		nextComponentID: 1,
	}
	s.root = &Node{scene: s, id: s.takeNodeID(), attrs: map[string]any{"Name": "Root"}}
	s.nodes[s.root.id] = s.root
	return s
}

// ID returns the scene's identity. Weak handles compare against it to detect
// that the scene an action was recorded in no longer exists.
func (s *Scene) ID() uuid.UUID { return s.id }

// Root returns the root node.
func (s *Scene) Root() *Node { return s.root }

// NodeByID resolves a node by its stable ID, or nil.
func (s *Scene) NodeByID(id ID) *Node { return s.nodes[id] }

// ComponentByID resolves a component by its stable ID, or nil.
func (s *Scene) ComponentByID(id ID) *Component { return s.components[id] }

// NodeCount returns the number of registered nodes, including the root.
func (s *Scene) NodeCount() int { return len(s.nodes) }

// OnNodeAdded registers a callback invoked after a node is attached.
func (s *Scene) OnNodeAdded(fn func(*Node)) { s.nodeAdded = append(s.nodeAdded, fn) }

// OnNodeRemoved registers a callback invoked before a node is detached.
func (s *Scene) OnNodeRemoved(fn func(*Node)) { s.nodeRemoved = append(s.nodeRemoved, fn) }

// OnComponentAdded registers a callback invoked after a component is attached.
func (s *Scene) OnComponentAdded(fn func(*Component)) {
	s.componentAdded = append(s.componentAdded, fn)
}

// OnComponentRemoved registers a callback invoked before a component is detached.
func (s *Scene) OnComponentRemoved(fn func(*Component)) {
	s.componentRemoved = append(s.componentRemoved, fn)
}

// OnAttributeChanged registers a callback invoked after an attribute changes
// on any node or component of this scene.
func (s *Scene) OnAttributeChanged(fn func(target Attributed, name string, oldValue, newValue any)) {
	s.attributeChanged = append(s.attributeChanged, fn)
}

func (s *Scene) takeNodeID() ID {
	id := s.nextNodeID
	s.nextNodeID++
	return id
}

func (s *Scene) takeComponentID() ID {
	id := s.nextComponentID
	s.nextComponentID++
	return id
}

// registerNode claims an explicit ID, bumping the allocator past it.
func (s *Scene) registerNode(n *Node) {
	s.nodes[n.id] = n
	if n.id >= s.nextNodeID {
		s.nextNodeID = n.id + 1
	}
}

func (s *Scene) registerComponent(c *Component) {
	s.components[c.id] = c
	if c.id >= s.nextComponentID {
		s.nextComponentID = c.id + 1
	}
}

// unregisterSubtree drops a node, its components and all descendants from the
// registries.
func (s *Scene) unregisterSubtree(n *Node) {
	for _, c := range n.components {
		delete(s.components, c.id)
	}
	for _, child := range n.children {
		s.unregisterSubtree(child)
	}
	delete(s.nodes, n.id)
}

func (s *Scene) notifyNodeAdded(n *Node) {
	for _, fn := range s.nodeAdded {
		fn(n)
	}
}

func (s *Scene) notifyNodeRemoved(n *Node) {
	for _, fn := range s.nodeRemoved {
		fn(n)
	}
}

func (s *Scene) notifyComponentAdded(c *Component) {
	for _, fn := range s.componentAdded {
		fn(c)
	}
}

func (s *Scene) notifyComponentRemoved(c *Component) {
	for _, fn := range s.componentRemoved {
		fn(c)
	}
}

func (s *Scene) notifyAttributeChanged(target Attributed, name string, oldValue, newValue any) {
	for _, fn := range s.attributeChanged {
		fn(target, name, oldValue, newValue)
	}
}
