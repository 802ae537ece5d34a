package scene

// Component is a typed behavior attached to a node, identified by a stable ID
// within its scene.
type Component struct {
	node     *Node
	id       ID
	typeName string
	attrs    map[string]any
}

// ID returns the component's stable identifier within its scene.
func (c *Component) ID() ID { return c.id }

// Node returns the owning node, or nil after removal.
func (c *Component) Node() *Node { return c.node }

// TypeName returns the component's type name.
func (c *Component) TypeName() string { return c.typeName }

// Attribute returns a named attribute value.
func (c *Component) Attribute(name string) (any, bool) {
	v, ok := c.attrs[name]
	return v, ok
}

// SetAttribute sets a named attribute value and notifies scene observers.
func (c *Component) SetAttribute(name string, value any) {
	old := c.attrs[name]
	c.attrs[name] = value
	if c.node != nil {
		c.node.scene.notifyAttributeChanged(c, name, old, value)
	}
}
