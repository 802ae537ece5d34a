package undo

import (
	"errors"
	"reflect"

	"github.com/google/uuid"
	"github.com/tiendc/go-deepcopy"
	"go.uber.org/zap"

	"github.com/dshills/sceneforge/internal/resource"
	"github.com/dshills/sceneforge/internal/scene"
	"github.com/dshills/sceneforge/internal/uitree"
)

// Errors returned by action constructors.
var (
	// ErrDetachedTarget indicates the edited object has no parent to record.
	ErrDetachedTarget = errors.New("target is not attached to a parent")

	// ErrNoStyleSheet indicates the element has no default style sheet.
	ErrNoStyleSheet = errors.New("element has no default style sheet")
)

// Environment is what actions resolve their targets against. The edited
// graphs are owned by the hosting editor; the engine re-resolves through the
// environment on every Undo/Redo and never caches a live object.
type Environment struct {
	// Scene is the stable-ID registry for nodes and components. May be nil
	// when no scene is loaded.
	Scene *scene.Scene

	// UIRoot is the root of the structural-path registry for UI elements.
	// May be nil.
	UIRoot *uitree.Element

	// Resources resolves named shared resources. May be nil.
	Resources *resource.Cache

	// AutosaveResources makes resource edits write their resource back to
	// disk whenever they are committed, undone or redone.
	AutosaveResources bool

	// StillInteracting reports whether the user is still engaged with a UI
	// control. The continuous-value tracker consults it to decide when a
	// gesture has ended. Nil means "not interacting".
	StillInteracting func() bool

	// Log receives expired-target warnings. Nil disables logging.
	Log *zap.Logger
}

var nopLogger = zap.NewNop()

func (e *Environment) logger() *zap.Logger {
	if e == nil || e.Log == nil {
		return nopLogger
	}
	return e.Log
}

func (e *Environment) interacting() bool {
	return e != nil && e.StillInteracting != nil && e.StillInteracting()
}

// resolveScene returns the current scene when it is the one the action was
// recorded in, nil otherwise.
func (e *Environment) resolveScene(id uuid.UUID) *scene.Scene {
	if e == nil || e.Scene == nil || e.Scene.ID() != id {
		return nil
	}
	return e.Scene
}

// resolveUIRoot returns the current UI root when it is the one the action was
// recorded in, nil otherwise.
func (e *Environment) resolveUIRoot(id uuid.UUID) *uitree.Element {
	if e == nil || e.UIRoot == nil || e.UIRoot.ID() != id {
		return nil
	}
	return e.UIRoot
}

// Action is a single reversible edit.
//
// Undo applies the captured "before" state, Redo the "after" state. Both
// return false when the target cannot be resolved anymore (expired weak
// handle or missing structural parent); the failure is local to the action
// and never aborts the rest of its batch. OnCommitted runs once after each
// Undo/Redo that returned true.
//
// The interface is satisfied by embedding Recorded; open-ended edit kinds go
// through CustomAction rather than new implementations.
type Action interface {
	Undo(env *Environment) bool
	Redo(env *Environment) bool
	OnCommitted(env *Environment)

	// Sequence returns the monotonically increasing counter stamped when the
	// action was recorded. Used for ordering and debugging only.
	Sequence() uint64

	stamp(seq uint64)
}

// Recorded carries the record-time sequence stamp and a no-op OnCommitted.
// Every action embeds it.
type Recorded struct {
	seq uint64
}

// Sequence returns the record-time sequence counter.
func (r *Recorded) Sequence() uint64 { return r.seq }

// OnCommitted is a no-op unless an action overrides it.
func (r *Recorded) OnCommitted(*Environment) {}

func (r *Recorded) stamp(seq uint64) { r.seq = seq }

// copyValue deep-copies a captured value so the recorded state cannot be
// mutated through the live object graph afterwards.
func copyValue(v any) any {
	if v == nil {
		return nil
	}
	out := reflect.New(reflect.TypeOf(v))
	if err := deepcopy.Copy(out.Interface(), v); err != nil {
		return v
	}
	return out.Elem().Interface()
}
