package undo

import (
	"github.com/cespare/xxhash/v2"
)

// Track looks up or creates the pending action for one interaction session,
// identified by sessionKey (unique per active widget). The returned scope must
// be released at the end of the frame, normally with defer; release decides
// whether the gesture continues, commits, or is discarded.
//
// When tracking is suspended the scope is inert: Value points at a local copy
// and Release does nothing.
func Track[V comparable](s *Stack, sessionKey string, current V, ctor func() *CustomAction[V]) *ValueScope[V] {
	sc := &ValueScope[V]{stack: s, fallback: current}
	if !s.tracking {
		return sc
	}
	sc.key = xxhash.Sum64String(sessionKey)
	if cached, ok := s.cache.get(sc.key, s.frame); ok {
		if a, ok := cached.(*CustomAction[V]); ok {
			a.current = current
			sc.action = a
			return sc
		}
		// Key collision with a different value type; start over.
		s.cache.remove(sc.key)
	}
	a := ctor()
	a.current = current
	s.cache.put(sc.key, s.frame, a)
	sc.action = a
	return sc
}

// ValueScope is the per-frame handle onto a tracked value. The caller mutates
// the value through Value, flags user-driven changes with SetModified, and
// calls Release when the frame's handling of the widget is done.
type ValueScope[V comparable] struct {
	stack    *Stack
	key      uint64
	action   *CustomAction[V]
	fallback V
	released bool
}

// Active reports whether the scope is bound to a pending action.
func (sc *ValueScope[V]) Active() bool { return sc.action != nil }

// Value returns the mutable current value for this session.
func (sc *ValueScope[V]) Value() *V {
	if sc.action == nil {
		return &sc.fallback
	}
	return &sc.action.current
}

// SetModified flags the session as carrying a user-driven change. The flag
// only ever turns on; passing false is a no-op.
func (sc *ValueScope[V]) SetModified(modified bool) {
	if !modified || sc.action == nil {
		return
	}
	sc.action.MarkModified(sc.stack.env)
}

// Release ends this frame's participation in the gesture. If the value moved
// away from its initial state the change is applied live. Once the user lets
// go of the widget a modified session is promoted into the pending batch;
// an unmodified one is treated as external drift and its change is absorbed
// without creating history.
func (sc *ValueScope[V]) Release() {
	if sc.released {
		return
	}
	sc.released = true
	a := sc.action
	if a == nil {
		return
	}
	if a.initial == a.current {
		return
	}
	env := sc.stack.env
	a.Redo(env)
	if env.interacting() {
		return
	}
	if a.modified {
		sc.stack.cache.remove(sc.key)
		sc.stack.Record(a)
		return
	}
	a.initial = a.current
}
