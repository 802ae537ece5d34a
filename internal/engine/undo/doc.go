// Package undo provides the editor's undo/redo command engine.
//
// Every reversible edit is captured as an Action holding enough state to go
// back (Undo) and forward (Redo). Actions never hold the objects they edit;
// they record stable IDs or structural paths and re-resolve them through the
// Environment on every application, returning false when the target no longer
// exists.
//
// # Frame batches
//
// Actions recorded during one interaction frame accumulate in a pending batch
// that CommitFrame pushes onto the history stack as a single unit. Undoing
// applies a batch's actions in reverse insertion order, redoing in forward
// order, so structural edits unwind in exactly the opposite order they were
// applied.
//
// # Continuous values
//
// Track coalesces a drag gesture's intermediate values into a single pending
// action kept in a frame-expiring cache:
//
//	scope := undo.Track(stack, widgetID, current, func() *undo.CustomAction[float64] {
//	    return undo.NewCustomAction(current, current, commit)
//	})
//	defer scope.Release()
//	scope.SetModified(dragged)
//	// mutate *scope.Value() while the widget is dragged
//
// When the gesture ends the action is promoted into the pending batch, or
// discarded when the change did not come from the user.
//
// # Re-entrancy
//
// Undo and Redo replay actions that mutate the same graphs the recording
// hooks observe. Both run under a Guard that suspends tracking and restores
// the previous state on every exit path.
package undo
