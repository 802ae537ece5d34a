package scene

// Node is a single element of the scene tree. It carries named attributes, an
// ordered child list and an ordered component list.
type Node struct {
	scene      *Scene
	id         ID
	parent     *Node
	children   []*Node
	components []*Component
	attrs      map[string]any
	tags       map[string]struct{}
}

// ID returns the node's stable identifier within its scene.
func (n *Node) ID() ID { return n.id }

// Scene returns the owning scene.
func (n *Node) Scene() *Scene { return n.scene }

// Parent returns the parent node, or nil for the root.
func (n *Node) Parent() *Node { return n.parent }

// Children returns the ordered child list. Callers must not mutate it.
func (n *Node) Children() []*Node { return n.children }

// Components returns the ordered component list. Callers must not mutate it.
func (n *Node) Components() []*Component { return n.components }

// Name returns the "Name" attribute, or "" when unset.
func (n *Node) Name() string {
	v, _ := n.attrs["Name"].(string)
	return v
}

// SetName sets the "Name" attribute.
func (n *Node) SetName(name string) { n.SetAttribute("Name", name) }

// Attribute returns a named attribute value.
func (n *Node) Attribute(name string) (any, bool) {
	v, ok := n.attrs[name]
	return v, ok
}

// SetAttribute sets a named attribute value and notifies observers.
func (n *Node) SetAttribute(name string, value any) {
	old := n.attrs[name]
	n.attrs[name] = value
	n.scene.notifyAttributeChanged(n, name, old, value)
}

// AddTag marks the node with a tag.
func (n *Node) AddTag(tag string) {
	if n.tags == nil {
		n.tags = make(map[string]struct{})
	}
	n.tags[tag] = struct{}{}
}

// HasTag reports whether the node carries a tag.
func (n *Node) HasTag(tag string) bool {
	_, ok := n.tags[tag]
	return ok
}

// ChildIndex returns the sibling index of child, or -1.
func (n *Node) ChildIndex(child *Node) int {
	for i, c := range n.children {
		if c == child {
			return i
		}
	}
	return -1
}

// CreateChild creates, registers and attaches a new child node.
func (n *Node) CreateChild(name string) *Node {
	child := &Node{
		scene: n.scene,
		id:    n.scene.takeNodeID(),
		attrs: map[string]any{"Name": name},
	}
	n.scene.nodes[child.id] = child
	n.attach(child, -1)
	n.scene.notifyNodeAdded(child)
	return child
}

// RemoveChild detaches child and unregisters its whole subtree. Observers are
// notified before anything is detached. Reports whether child was a child of n.
func (n *Node) RemoveChild(child *Node) bool {
	idx := n.ChildIndex(child)
	if idx < 0 {
		return false
	}
	n.scene.notifyNodeRemoved(child)
	n.children = append(n.children[:idx], n.children[idx+1:]...)
	child.parent = nil
	n.scene.unregisterSubtree(child)
	return true
}

// SetParent moves the node under a new parent at the given sibling index
// (negative or out-of-range appends). Fires no add/remove callbacks; a move
// is not a structural create or delete.
func (n *Node) SetParent(parent *Node, index int) {
	if n.parent != nil {
		old := n.parent
		if i := old.ChildIndex(n); i >= 0 {
			old.children = append(old.children[:i], old.children[i+1:]...)
		}
	}
	parent.attach(n, index)
}

// attach inserts child at index, appending when index is out of range.
func (n *Node) attach(child *Node, index int) {
	child.parent = n
	if index < 0 || index >= len(n.children) {
		n.children = append(n.children, child)
		return
	}
	n.children = append(n.children, nil)
	copy(n.children[index+1:], n.children[index:])
	n.children[index] = child
}

// CreateComponent creates, registers and attaches a new component.
func (n *Node) CreateComponent(typeName string) *Component {
	c := &Component{
		node:     n,
		id:       n.scene.takeComponentID(),
		typeName: typeName,
		attrs:    make(map[string]any),
	}
	n.scene.components[c.id] = c
	n.components = append(n.components, c)
	n.scene.notifyComponentAdded(c)
	return c
}

// RemoveComponent detaches and unregisters a component. Observers are
// notified before it is detached. Reports whether c belonged to n.
func (n *Node) RemoveComponent(c *Component) bool {
	for i, have := range n.components {
		if have == c {
			n.scene.notifyComponentRemoved(c)
			n.components = append(n.components[:i], n.components[i+1:]...)
			delete(n.scene.components, c.id)
			c.node = nil
			return true
		}
	}
	return false
}
