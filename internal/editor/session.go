// Package editor wires the scene, UI tree, resources, and undo history into
// one editing session driven by a frame loop.
package editor

import (
	"fmt"

	"go.uber.org/zap"

	"github.com/dshills/sceneforge/internal/config"
	"github.com/dshills/sceneforge/internal/engine/undo"
	"github.com/dshills/sceneforge/internal/resource"
	"github.com/dshills/sceneforge/internal/scene"
	"github.com/dshills/sceneforge/internal/uitree"
)

// defaultSheetName is the style sheet every fresh session starts with.
const defaultSheetName = "default.style"

// Session owns one open document set: a scene, a UI tree, their shared
// resources, and the undo history recording edits to all of them.
type Session struct {
	log         *zap.Logger
	cfg         *config.Config
	scene       *scene.Scene
	uiRoot      *uitree.Element
	resources   *resource.Cache
	watcher     *resource.Watcher
	stack       *undo.Stack
	interacting bool
}

// NewSession builds a session from settings. The scene and UI tree start
// empty; edits are recorded automatically from their change notifications.
func NewSession(cfg *config.Config, log *zap.Logger) (*Session, error) {
	if cfg == nil {
		cfg = config.Default()
	}
	if log == nil {
		log = zap.NewNop()
	}

	cache := resource.NewCache(cfg.Resources.Dir, log.Named("resources"))
	sheet := resource.NewStyleSheet(defaultSheetName)
	cache.Add(sheet)

	s := &Session{
		log:       log,
		cfg:       cfg,
		scene:     scene.New(),
		uiRoot:    uitree.NewRoot(sheet),
		resources: cache,
	}

	env := &undo.Environment{
		Scene:             s.scene,
		UIRoot:            s.uiRoot,
		Resources:         cache,
		AutosaveResources: cfg.Resources.Autosave,
		StillInteracting:  func() bool { return s.interacting },
		Log:               log.Named("undo"),
	}
	s.stack = undo.NewStack(env)
	s.stack.SetMaxBatches(cfg.History.MaxBatches)
	s.stack.SetCacheExpireFrames(cfg.History.CacheExpireFrames)

	undo.ConnectScene(s.stack, s.scene)
	undo.ConnectUIRoot(s.stack, s.uiRoot)

	// Pick up external edits to resource files while the session is open.
	// A missing directory is not fatal; the session just runs unwatched.
	if watcher, err := resource.NewWatcher(cache, log.Named("watch")); err == nil {
		s.watcher = watcher
	} else {
		log.Warn("resource watching disabled", zap.Error(err))
	}
	return s, nil
}

// Close releases the session's background resources.
func (s *Session) Close() error {
	if s.watcher == nil {
		return nil
	}
	return s.watcher.Close()
}

// Scene returns the session's scene.
func (s *Session) Scene() *scene.Scene { return s.scene }

// UIRoot returns the root element of the session's UI tree.
func (s *Session) UIRoot() *uitree.Element { return s.uiRoot }

// Resources returns the session's resource cache.
func (s *Session) Resources() *resource.Cache { return s.resources }

// History returns the session's undo stack.
func (s *Session) History() *undo.Stack { return s.stack }

// Log returns the session logger.
func (s *Session) Log() *zap.Logger { return s.log }

// SetInteracting records whether the user is mid-gesture on a UI control.
// The continuous-value tracker keeps coalescing while this is true.
func (s *Session) SetInteracting(active bool) { s.interacting = active }

// EndFrame closes the current interaction step, committing any recorded
// edits as one undoable batch.
func (s *Session) EndFrame() { s.stack.CommitFrame() }

// Undo reverts the most recent batch.
func (s *Session) Undo() error {
	if !s.stack.Undo() {
		return fmt.Errorf("nothing to undo")
	}
	return nil
}

// Redo reapplies the next undone batch.
func (s *Session) Redo() error {
	if !s.stack.Redo() {
		return fmt.Errorf("nothing to redo")
	}
	return nil
}
