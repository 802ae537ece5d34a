package undo

import (
	"go.uber.org/zap"

	"github.com/dshills/sceneforge/internal/resource"
)

// ResourceEdit records a reversible change to a named resource. The caller
// supplies the apply function; the action only remembers the resource name
// and the two values, so a reloaded resource instance picks up the edit the
// same as the original one.
type ResourceEdit[V any] struct {
	Recorded
	name     string
	oldValue V
	newValue V
	apply    func(res resource.Resource, value V) bool
}

// NewResourceEdit captures an already-applied resource change. apply must be
// able to take the resource from either state to the given value.
func NewResourceEdit[V any](res resource.Resource, oldValue, newValue V, apply func(res resource.Resource, value V) bool) *ResourceEdit[V] {
	return &ResourceEdit[V]{
		name:     res.Name(),
		oldValue: oldValue,
		newValue: newValue,
		apply:    apply,
	}
}

func (a *ResourceEdit[V]) resolve(env *Environment) resource.Resource {
	if env.Resources == nil {
		return nil
	}
	return env.Resources.Get(a.name)
}

// Undo reapplies the old value.
func (a *ResourceEdit[V]) Undo(env *Environment) bool {
	res := a.resolve(env)
	if res == nil {
		return false
	}
	return a.apply(res, a.oldValue)
}

// Redo reapplies the new value.
func (a *ResourceEdit[V]) Redo(env *Environment) bool {
	res := a.resolve(env)
	if res == nil {
		return false
	}
	return a.apply(res, a.newValue)
}

// OnCommitted saves the resource back to disk so undoing or redoing an edit
// persists the same way the edit itself did. Skipped unless the environment
// has autosave on.
func (a *ResourceEdit[V]) OnCommitted(env *Environment) {
	if env.Resources == nil || !env.AutosaveResources {
		return
	}
	if err := env.Resources.Save(a.name); err != nil {
		env.logger().Warn("resource autosave failed",
			zap.String("resource", a.name),
			zap.Error(err))
	}
}
