// Package resource provides the named resource cache the editor shares with
// the undo engine. Resources are looked up by name, never held across frames,
// and can be saved back to disk.
//
// A Watcher reloads resources whose backing files change on disk. Saves
// performed by the editor itself register a one-shot ignore so the resulting
// file event does not bounce back as a reload.
package resource
