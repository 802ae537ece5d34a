package undo

import (
	"testing"
)

// trackedFloat simulates the live program state a gesture drags around.
type trackedFloat struct {
	value float64
}

func (tf *trackedFloat) commit() CommitFunc[float64] {
	return func(_ *Environment, v float64) bool {
		tf.value = v
		return true
	}
}

func (tf *trackedFloat) ctor() func() *CustomAction[float64] {
	return func() *CustomAction[float64] {
		return NewCustomAction(tf.value, tf.value, tf.commit())
	}
}

func TestTrackCoalescesGestureIntoOneAction(t *testing.T) {
	w := newTestWorld(t)
	state := &trackedFloat{value: 1.0}

	values := []float64{2.0, 3.5, 7.25}
	for i, v := range values {
		w.interacting = i < len(values)-1
		sc := Track(w.stack, "slider##width", state.value, state.ctor())
		*sc.Value() = v
		sc.SetModified(true)
		sc.Release()
		w.stack.CommitFrame()
	}

	if got := state.value; got != 7.25 {
		t.Fatalf("live value = %v, want 7.25", got)
	}
	if got := w.stack.Len(); got != 1 {
		t.Fatalf("history length = %d, want 1", got)
	}

	if !w.stack.Undo() {
		t.Fatal("Undo failed")
	}
	if got := state.value; got != 1.0 {
		t.Fatalf("value after undo = %v, want initial 1.0", got)
	}
	if !w.stack.Redo() {
		t.Fatal("Redo failed")
	}
	if got := state.value; got != 7.25 {
		t.Fatalf("value after redo = %v, want terminal 7.25", got)
	}
}

func TestTrackTerminalEqualsInitialRecordsNothing(t *testing.T) {
	w := newTestWorld(t)
	state := &trackedFloat{value: 5.0}

	steps := []struct {
		value       float64
		interacting bool
	}{
		{8.0, true},
		{5.0, false}, // dragged back to where it started
	}
	for _, step := range steps {
		w.interacting = step.interacting
		sc := Track(w.stack, "slider##height", state.value, state.ctor())
		// The widget writes both the live value and the tracked copy.
		*sc.Value() = step.value
		state.value = step.value
		sc.SetModified(true)
		sc.Release()
		w.stack.CommitFrame()
	}

	if got := w.stack.Len(); got != 0 {
		t.Fatalf("history length = %d, want 0", got)
	}
	if got := state.value; got != 5.0 {
		t.Fatalf("live value = %v, want 5.0", got)
	}
}

func TestTrackExternalDriftIsDiscarded(t *testing.T) {
	w := newTestWorld(t)
	state := &trackedFloat{value: 1.0}
	w.interacting = false

	// Value changed but never marked user-modified: applied live, no history.
	sc := Track(w.stack, "slider##depth", state.value, state.ctor())
	*sc.Value() = 9.0
	sc.Release()
	w.stack.CommitFrame()

	if got := w.stack.Len(); got != 0 {
		t.Fatalf("history length = %d, want 0", got)
	}
	if got := state.value; got != 9.0 {
		t.Fatalf("live value = %v, want 9.0", got)
	}
	// The absorbed entry must not produce history later either.
	sc = Track(w.stack, "slider##depth", state.value, state.ctor())
	sc.Release()
	w.stack.CommitFrame()
	if got := w.stack.Len(); got != 0 {
		t.Fatalf("history length after pass-through = %d, want 0", got)
	}
}

func TestTrackUnmodifiedPassThrough(t *testing.T) {
	w := newTestWorld(t)
	state := &trackedFloat{value: 4.0}
	w.interacting = true

	for i := 0; i < 3; i++ {
		sc := Track(w.stack, "slider##x", state.value, state.ctor())
		sc.Release()
		w.stack.CommitFrame()
	}

	if got := w.stack.Len(); got != 0 {
		t.Fatalf("history length = %d, want 0", got)
	}
	if got := state.value; got != 4.0 {
		t.Fatalf("live value = %v, want 4.0", got)
	}
	if got := w.stack.cache.Len(); got != 1 {
		t.Fatalf("cache entries = %d, want 1 live session", got)
	}
}

func TestTrackInertWhileSuspended(t *testing.T) {
	w := newTestWorld(t)
	state := &trackedFloat{value: 2.0}
	w.stack.SetTrackingEnabled(false)

	sc := Track(w.stack, "slider##y", state.value, state.ctor())
	if sc.Active() {
		t.Fatal("scope should be inert while tracking is suspended")
	}
	*sc.Value() = 6.0
	sc.SetModified(true)
	sc.Release()

	if got := state.value; got != 2.0 {
		t.Fatalf("live value = %v, want untouched 2.0", got)
	}
	if got := w.stack.cache.Len(); got != 0 {
		t.Fatalf("cache entries = %d, want 0", got)
	}
}

func TestTrackReleaseIsIdempotent(t *testing.T) {
	w := newTestWorld(t)
	state := &trackedFloat{value: 0.0}
	w.interacting = false

	sc := Track(w.stack, "slider##z", state.value, state.ctor())
	*sc.Value() = 1.0
	sc.SetModified(true)
	sc.Release()
	sc.Release()
	w.stack.CommitFrame()

	if got := w.stack.Len(); got != 1 {
		t.Fatalf("history length = %d, want 1", got)
	}
}

func TestUndoClearsLiveTrackedSessions(t *testing.T) {
	w := newTestWorld(t)
	state := &trackedFloat{value: 1.0}

	w.scene.Root().CreateChild("n")
	w.stack.CommitFrame()

	w.interacting = true
	sc := Track(w.stack, "slider##w", state.value, state.ctor())
	*sc.Value() = 2.0
	sc.SetModified(true)
	sc.Release()
	w.stack.CommitFrame()

	if got := w.stack.cache.Len(); got != 1 {
		t.Fatalf("cache entries = %d, want 1", got)
	}
	if !w.stack.Undo() {
		t.Fatal("Undo failed")
	}
	if got := w.stack.cache.Len(); got != 0 {
		t.Fatalf("cache entries after undo = %d, want 0", got)
	}
}
