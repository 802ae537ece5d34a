package resource

import "errors"

// Errors returned by cache and watcher operations.
var (
	// ErrNotFound indicates no resource is registered under a name.
	ErrNotFound = errors.New("resource not found")

	// ErrInvalidDocument indicates style sheet data is not valid JSON.
	ErrInvalidDocument = errors.New("invalid style document")

	// ErrWatcherClosed indicates the watcher has been closed.
	ErrWatcherClosed = errors.New("watcher closed")
)
