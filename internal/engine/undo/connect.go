package undo

import (
	"reflect"

	"go.uber.org/zap"

	"github.com/dshills/sceneforge/internal/scene"
	"github.com/dshills/sceneforge/internal/uitree"
)

// ConnectScene subscribes the stack to a scene's change notifications so
// structural and attribute edits are recorded automatically. Editor-internal
// nodes (gizmos, selection outlines) are ignored. Recording honors the
// tracking flag at event time, so replayed Undo/Redo mutations never loop
// back into history.
func ConnectScene(s *Stack, sc *scene.Scene) {
	sc.OnNodeAdded(func(n *scene.Node) {
		if !s.tracking || n.HasTag(scene.EditorTag) {
			return
		}
		a, err := NewCreateNode(n)
		if err != nil {
			s.env.logger().Warn("node add not recorded", zap.Error(err))
			return
		}
		s.Record(a)
	})

	sc.OnNodeRemoved(func(n *scene.Node) {
		if !s.tracking || n.HasTag(scene.EditorTag) {
			return
		}
		a, err := NewDeleteNode(n)
		if err != nil {
			s.env.logger().Warn("node removal not recorded", zap.Error(err))
			return
		}
		s.Record(a)
	})

	sc.OnComponentAdded(func(c *scene.Component) {
		if !s.tracking || c.Node().HasTag(scene.EditorTag) {
			return
		}
		a, err := NewCreateComponent(c)
		if err != nil {
			s.env.logger().Warn("component add not recorded", zap.Error(err))
			return
		}
		s.Record(a)
	})

	sc.OnComponentRemoved(func(c *scene.Component) {
		if !s.tracking || c.Node().HasTag(scene.EditorTag) {
			return
		}
		a, err := NewDeleteComponent(c)
		if err != nil {
			s.env.logger().Warn("component removal not recorded", zap.Error(err))
			return
		}
		s.Record(a)
	})

	sc.OnAttributeChanged(func(target scene.Attributed, name string, oldValue, newValue any) {
		if !s.tracking || reflect.DeepEqual(oldValue, newValue) {
			return
		}
		switch t := target.(type) {
		case *scene.Node:
			if t.HasTag(scene.EditorTag) {
				return
			}
			s.Record(NewNodeAttributeEdit(t, name, oldValue, newValue))
		case *scene.Component:
			if t.Node().HasTag(scene.EditorTag) {
				return
			}
			s.Record(NewComponentAttributeEdit(t, name, oldValue, newValue))
		}
	})
}

// ConnectUIRoot subscribes the stack to a UI tree's structural notifications.
func ConnectUIRoot(s *Stack, root *uitree.Element) {
	root.OnElementAdded(func(el *uitree.Element) {
		if !s.tracking {
			return
		}
		a, err := NewCreateElement(el)
		if err != nil {
			s.env.logger().Warn("element add not recorded", zap.Error(err))
			return
		}
		s.Record(a)
	})

	root.OnElementRemoved(func(el *uitree.Element) {
		if !s.tracking {
			return
		}
		a, err := NewDeleteElement(el)
		if err != nil {
			s.env.logger().Warn("element removal not recorded", zap.Error(err))
			return
		}
		s.Record(a)
	})
}

// Transform is the spatial state of a node as three vectors.
type Transform struct {
	Position [3]float64
	Rotation [3]float64
	Scale    [3]float64
}

// RecordTransform applies a transform to a node and records the three
// attribute edits as one logical change. Used by gizmo-style manipulators
// that bypass the per-attribute change notifications.
func RecordTransform(s *Stack, n *scene.Node, before, after Transform) {
	guard := s.Guard(false)
	n.SetAttribute("Position", after.Position)
	n.SetAttribute("Rotation", after.Rotation)
	n.SetAttribute("Scale", after.Scale)
	guard.Restore()

	if !s.tracking || n.HasTag(scene.EditorTag) {
		return
	}
	if before.Position != after.Position {
		s.Record(NewNodeAttributeEdit(n, "Position", before.Position, after.Position))
	}
	if before.Rotation != after.Rotation {
		s.Record(NewNodeAttributeEdit(n, "Rotation", before.Rotation, after.Rotation))
	}
	if before.Scale != after.Scale {
		s.Record(NewNodeAttributeEdit(n, "Scale", before.Scale, after.Scale))
	}
}
