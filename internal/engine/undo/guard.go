package undo

// TrackGuard is a scoped override of the stack's tracking flag. Obtain one
// from Stack.Guard and defer Restore; the previous state comes back exactly
// once no matter how many times Restore runs.
type TrackGuard struct {
	stack    *Stack
	prev     bool
	restored bool
}

// Guard sets the tracking flag to enabled and returns a guard that restores
// the previous value.
func (s *Stack) Guard(enabled bool) *TrackGuard {
	g := &TrackGuard{stack: s, prev: s.tracking}
	s.tracking = enabled
	return g
}

// Restore puts the tracking flag back to its pre-guard value. Safe to call
// more than once.
func (g *TrackGuard) Restore() {
	if g.restored {
		return
	}
	g.restored = true
	g.stack.tracking = g.prev
}
