package uitree

import (
	"github.com/google/uuid"

	"github.com/dshills/sceneforge/internal/resource"
)

// Element is a single node of the UI hierarchy.
type Element struct {
	parent   *Element
	children []*Element

	style    string
	attrs    map[string]any
	defaults map[string]any

	// sheet is set on the root (or on a restored subtree root) and inherited
	// by descendants through DefaultStyle.
	sheet *resource.StyleSheet

	// root bookkeeping, set only on the root element
	rootID         uuid.UUID
	elementAdded   []func(*Element)
	elementRemoved []func(*Element)
}

// NewRoot creates a root element with the given default style sheet (may be
// nil).
func NewRoot(sheet *resource.StyleSheet) *Element {
	return &Element{
		rootID: uuid.New(),
		attrs:  map[string]any{"Name": "UIRoot"},
		sheet:  sheet,
	}
}

// Root walks up to the root element.
func (e *Element) Root() *Element {
	el := e
	for el.parent != nil {
		el = el.parent
	}
	return el
}

// ID returns the identity of the tree's root. Weak handles compare against it
// to detect that the hierarchy an action was recorded in no longer exists.
func (e *Element) ID() uuid.UUID { return e.Root().rootID }

// Parent returns the parent element, or nil for the root.
func (e *Element) Parent() *Element { return e.parent }

// Children returns the ordered child list. Callers must not mutate it.
func (e *Element) Children() []*Element { return e.children }

// ChildCount returns the number of direct children.
func (e *Element) ChildCount() int { return len(e.children) }

// Name returns the "Name" attribute, or "" when unset.
func (e *Element) Name() string {
	v, _ := e.attrs["Name"].(string)
	return v
}

// Attribute returns a named attribute value.
func (e *Element) Attribute(name string) (any, bool) {
	v, ok := e.attrs[name]
	return v, ok
}

// SetAttribute sets a named attribute value.
func (e *Element) SetAttribute(name string, value any) {
	e.attrs[name] = value
}

// InstanceDefault returns a per-element style default.
func (e *Element) InstanceDefault(name string) (any, bool) {
	v, ok := e.defaults[name]
	return v, ok
}

// SetInstanceDefault sets a per-element style default. A nil value removes it.
func (e *Element) SetInstanceDefault(name string, value any) {
	if value == nil {
		delete(e.defaults, name)
		return
	}
	if e.defaults == nil {
		e.defaults = make(map[string]any)
	}
	e.defaults[name] = value
}

// AppliedStyle returns the name of the style applied to this element.
func (e *Element) AppliedStyle() string { return e.style }

// SetStyle records the applied style name. Property resolution picks the
// style's values up from the default style sheet.
func (e *Element) SetStyle(style string) { e.style = style }

// DefaultStyle returns the nearest default style sheet up the ancestor chain,
// or nil.
func (e *Element) DefaultStyle() *resource.StyleSheet {
	for el := e; el != nil; el = el.parent {
		if el.sheet != nil {
			return el.sheet
		}
	}
	return nil
}

// SetDefaultStyle sets the style sheet inherited by this element's subtree.
func (e *Element) SetDefaultStyle(sheet *resource.StyleSheet) { e.sheet = sheet }

// EffectiveAttribute resolves a value through attribute, instance default and
// applied style, in that order.
func (e *Element) EffectiveAttribute(name string) (any, bool) {
	if v, ok := e.attrs[name]; ok {
		return v, true
	}
	if v, ok := e.defaults[name]; ok {
		return v, true
	}
	if sheet := e.DefaultStyle(); sheet != nil && e.style != "" {
		return sheet.Property(e.style, name)
	}
	return nil, false
}

// ChildIndex returns the sibling index of child, or -1.
func (e *Element) ChildIndex(child *Element) int {
	for i, c := range e.children {
		if c == child {
			return i
		}
	}
	return -1
}

// OnElementAdded registers a root callback invoked after an element is
// attached anywhere in the tree.
func (e *Element) OnElementAdded(fn func(*Element)) {
	root := e.Root()
	root.elementAdded = append(root.elementAdded, fn)
}

// OnElementRemoved registers a root callback invoked before an element is
// detached anywhere in the tree.
func (e *Element) OnElementRemoved(fn func(*Element)) {
	root := e.Root()
	root.elementRemoved = append(root.elementRemoved, fn)
}

// CreateChild creates and attaches a new child element.
func (e *Element) CreateChild(name string) *Element {
	child := &Element{attrs: map[string]any{"Name": name}}
	e.attach(child, -1)
	e.Root().notifyAdded(child)
	return child
}

// RemoveChild detaches child. Observers are notified before the detach so
// they can still capture its position. Reports whether child belonged to e.
func (e *Element) RemoveChild(child *Element) bool {
	idx := e.ChildIndex(child)
	if idx < 0 {
		return false
	}
	e.Root().notifyRemoved(child)
	e.children = append(e.children[:idx], e.children[idx+1:]...)
	child.parent = nil
	return true
}

// SetParent moves the element under a new parent at the given sibling index
// (negative or out-of-range appends). Fires no add/remove callbacks.
func (e *Element) SetParent(parent *Element, index int) {
	if e.parent != nil {
		old := e.parent
		if i := old.ChildIndex(e); i >= 0 {
			old.children = append(old.children[:i], old.children[i+1:]...)
		}
	}
	parent.attach(e, index)
}

func (e *Element) attach(child *Element, index int) {
	child.parent = e
	if index < 0 || index >= len(e.children) {
		e.children = append(e.children, child)
		return
	}
	e.children = append(e.children, nil)
	copy(e.children[index+1:], e.children[index:])
	e.children[index] = child
}

func (e *Element) notifyAdded(el *Element) {
	for _, fn := range e.elementAdded {
		fn(el)
	}
}

func (e *Element) notifyRemoved(el *Element) {
	for _, fn := range e.elementRemoved {
		fn(el)
	}
}
