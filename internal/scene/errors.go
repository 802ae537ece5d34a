package scene

import "errors"

// Errors returned by scene operations.
var (
	// ErrNodeExists indicates a restore would collide with a registered node ID.
	ErrNodeExists = errors.New("node id already registered")

	// ErrComponentExists indicates a restore would collide with a registered component ID.
	ErrComponentExists = errors.New("component id already registered")

	// ErrWrongScene indicates an operation mixed nodes from different scenes.
	ErrWrongScene = errors.New("node belongs to a different scene")

	// ErrMalformedSnapshot indicates snapshot data could not be decoded.
	ErrMalformedSnapshot = errors.New("malformed snapshot")
)
