package resource

import (
	"path/filepath"
	"sync"

	"github.com/fsnotify/fsnotify"
	"go.uber.org/zap"
)

// Watcher reloads cache resources when their backing files change on disk.
type Watcher struct {
	mu      sync.Mutex
	cache   *Cache
	watcher *fsnotify.Watcher
	log     *zap.Logger

	closed   bool
	closeCh  chan struct{}
	wg       sync.WaitGroup
	onReload func(name string)
}

// NewWatcher starts watching the cache's directory.
func NewWatcher(cache *Cache, log *zap.Logger) (*Watcher, error) {
	if log == nil {
		log = zap.NewNop()
	}
	fsw, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, err
	}
	if err := fsw.Add(cache.Dir()); err != nil {
		_ = fsw.Close()
		return nil, err
	}

	w := &Watcher{
		cache:   cache,
		watcher: fsw,
		log:     log,
		closeCh: make(chan struct{}),
	}
	w.wg.Add(1)
	go w.processLoop()
	return w, nil
}

// OnReload registers a callback invoked from the watch goroutine after each
// successful reload.
func (w *Watcher) OnReload(fn func(name string)) {
	w.mu.Lock()
	w.onReload = fn
	w.mu.Unlock()
}

// Close stops the watcher.
func (w *Watcher) Close() error {
	w.mu.Lock()
	if w.closed {
		w.mu.Unlock()
		return nil
	}
	w.closed = true
	close(w.closeCh)
	w.mu.Unlock()

	w.wg.Wait()
	return w.watcher.Close()
}

func (w *Watcher) processLoop() {
	defer w.wg.Done()

	for {
		select {
		case <-w.closeCh:
			return

		case event, ok := <-w.watcher.Events:
			if !ok {
				return
			}
			w.handleEvent(event)

		case err, ok := <-w.watcher.Errors:
			if !ok {
				return
			}
			w.log.Warn("watcher error", zap.Error(err))
		}
	}
}

func (w *Watcher) handleEvent(event fsnotify.Event) {
	if !event.Op.Has(fsnotify.Write) && !event.Op.Has(fsnotify.Create) {
		return
	}
	name := filepath.Base(event.Name)
	if w.cache.Get(name) == nil {
		return
	}
	if err := w.cache.Reload(name); err != nil {
		w.log.Warn("resource reload failed", zap.String("name", name), zap.Error(err))
		return
	}
	w.mu.Lock()
	fn := w.onReload
	w.mu.Unlock()
	if fn != nil {
		fn(name)
	}
}
