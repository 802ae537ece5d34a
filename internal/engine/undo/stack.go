package undo

import (
	"go.uber.org/zap"
)

// Batch is the unit of undo: every action recorded within one frame.
type Batch []Action

// Stack is the history of committed batches plus the batch still being
// assembled for the current frame. It is single-threaded by contract; the
// hosting editor drives it from its main loop.
type Stack struct {
	env        *Environment
	batches    []Batch
	index      int
	pending    Batch
	tracking   bool
	cache      *ValueCache
	frame      uint64
	seq        uint64
	maxBatches int
}

// NewStack returns an empty history bound to env.
func NewStack(env *Environment) *Stack {
	return &Stack{
		env:      env,
		tracking: true,
		cache:    NewValueCache(),
	}
}

// Env returns the environment actions are resolved against.
func (s *Stack) Env() *Environment { return s.env }

// Record appends an action to the pending batch. Recording while tracking is
// suspended is a silent no-op, which is what lets Undo/Redo replay mutations
// without re-recording them.
func (s *Stack) Record(a Action) {
	if !s.tracking || a == nil {
		return
	}
	s.seq++
	a.stamp(s.seq)
	s.pending = append(s.pending, a)
}

// CommitFrame marks a frame boundary: the pending batch, if any, becomes the
// newest history entry and any redo tail is discarded. Expired tracked values
// are swept as part of the same tick.
func (s *Stack) CommitFrame() {
	s.frame++
	s.cache.Expire(s.frame)
	if !s.tracking || len(s.pending) == 0 {
		return
	}
	s.batches = append(s.batches[:s.index], s.pending)
	s.pending = nil
	s.index = len(s.batches)
	if s.maxBatches > 0 && len(s.batches) > s.maxBatches {
		drop := len(s.batches) - s.maxBatches
		s.batches = append(s.batches[:0], s.batches[drop:]...)
		s.index -= drop
	}
}

// Undo reverts the batch before the cursor, applying its actions in reverse
// record order. Actions whose targets have expired are skipped with a warning.
// Returns false only when there is nothing to undo.
func (s *Stack) Undo() bool {
	if s.index == 0 {
		return false
	}
	guard := s.Guard(false)
	defer guard.Restore()
	s.cache.Clear()

	s.index--
	batch := s.batches[s.index]
	for i := len(batch) - 1; i >= 0; i-- {
		if batch[i].Undo(s.env) {
			batch[i].OnCommitted(s.env)
			continue
		}
		s.env.logger().Warn("undo skipped expired action",
			zap.Uint64("sequence", batch[i].Sequence()))
	}
	return true
}

// Redo reapplies the batch at the cursor, in record order. Actions whose
// targets have expired are skipped with a warning. Returns false only when
// there is nothing to redo.
func (s *Stack) Redo() bool {
	if s.index >= len(s.batches) {
		return false
	}
	guard := s.Guard(false)
	defer guard.Restore()
	s.cache.Clear()

	batch := s.batches[s.index]
	s.index++
	for _, a := range batch {
		if a.Redo(s.env) {
			a.OnCommitted(s.env)
			continue
		}
		s.env.logger().Warn("redo skipped expired action",
			zap.Uint64("sequence", a.Sequence()))
	}
	return true
}

// CanUndo reports whether a batch exists before the cursor.
func (s *Stack) CanUndo() bool { return s.index > 0 }

// CanRedo reports whether a batch exists at or after the cursor.
func (s *Stack) CanRedo() bool { return s.index < len(s.batches) }

// Index returns the cursor position: the number of batches currently applied.
func (s *Stack) Index() int { return s.index }

// Len returns the number of committed batches.
func (s *Stack) Len() int { return len(s.batches) }

// Clear drops all history, the pending batch, and every tracked value.
func (s *Stack) Clear() {
	s.batches = nil
	s.pending = nil
	s.index = 0
	s.cache.Clear()
}

// SetMaxBatches caps the history length; zero means unbounded. Takes effect
// at the next commit.
func (s *Stack) SetMaxBatches(n int) {
	if n < 0 {
		n = 0
	}
	s.maxBatches = n
}

// SetCacheExpireFrames sets how many idle frames a tracked value survives.
func (s *Stack) SetCacheExpireFrames(n uint64) {
	if n == 0 {
		n = defaultExpireFrames
	}
	s.cache.expireFrames = n
}

// SetTrackingEnabled switches recording on or off. Prefer Guard for scoped
// suspension.
func (s *Stack) SetTrackingEnabled(enabled bool) { s.tracking = enabled }

// IsTrackingEnabled reports whether Record currently accepts actions.
func (s *Stack) IsTrackingEnabled() bool { return s.tracking }
