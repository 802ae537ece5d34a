package undo

// CommitFunc applies a captured value to the world. It reports false when the
// target can no longer be reached.
type CommitFunc[V comparable] func(env *Environment, value V) bool

// CustomAction adapts a pair of closures into an Action over an old and new
// value. It doubles as the building block for tracked continuous edits: Track
// keeps one alive across frames and updates its current value as the gesture
// progresses.
type CustomAction[V comparable] struct {
	Recorded
	initial    V
	current    V
	modified   bool
	onUndo     CommitFunc[V]
	onRedo     CommitFunc[V]
	onModified func(env *Environment)
}

// NewCustomAction builds an action around oldValue/newValue and a single
// commit function used for both directions. Use WithRedo when the two
// directions need different code paths.
func NewCustomAction[V comparable](oldValue, newValue V, commit CommitFunc[V]) *CustomAction[V] {
	return &CustomAction[V]{
		initial: oldValue,
		current: newValue,
		onUndo:  commit,
	}
}

// WithRedo sets a separate commit function for the redo direction.
func (a *CustomAction[V]) WithRedo(commit CommitFunc[V]) *CustomAction[V] {
	a.onRedo = commit
	return a
}

// WithModifiedHook registers a callback invoked the first time the action is
// marked modified.
func (a *CustomAction[V]) WithModifiedHook(hook func(env *Environment)) *CustomAction[V] {
	a.onModified = hook
	return a
}

// Initial returns the value captured when the action was created.
func (a *CustomAction[V]) Initial() V { return a.initial }

// Current returns the latest value.
func (a *CustomAction[V]) Current() V { return a.current }

// SetCurrent replaces the latest value.
func (a *CustomAction[V]) SetCurrent(v V) { a.current = v }

// Modified reports whether MarkModified has been called.
func (a *CustomAction[V]) Modified() bool { return a.modified }

// MarkModified flags the action as carrying a real change and fires the
// modified hook on the first call.
func (a *CustomAction[V]) MarkModified(env *Environment) {
	if a.modified {
		return
	}
	a.modified = true
	if a.onModified != nil {
		a.onModified(env)
	}
}

// Undo commits the initial value.
func (a *CustomAction[V]) Undo(env *Environment) bool {
	return a.onUndo(env, a.initial)
}

// Redo commits the current value.
func (a *CustomAction[V]) Redo(env *Environment) bool {
	if a.onRedo != nil {
		return a.onRedo(env, a.current)
	}
	return a.onUndo(env, a.current)
}
