package resource

import (
	"fmt"
	"os"
	"path/filepath"
	"sync"

	"go.uber.org/zap"
)

// Cache holds named resources. The undo engine resolves resources through it
// on every Undo/Redo rather than keeping live references in recorded actions.
//
// The mutex only guards against the watcher goroutine; all editing happens on
// the editor thread.
type Cache struct {
	mu        sync.Mutex
	dir       string
	log       *zap.Logger
	resources map[string]Resource
	ignore    map[string]int
}

// NewCache creates a cache saving and loading files under dir.
func NewCache(dir string, log *zap.Logger) *Cache {
	if log == nil {
		log = zap.NewNop()
	}
	return &Cache{
		dir:       dir,
		log:       log,
		resources: make(map[string]Resource),
		ignore:    make(map[string]int),
	}
}

// Dir returns the directory backing the cache.
func (c *Cache) Dir() string { return c.dir }

// Add registers a resource, replacing any previous one with the same name.
func (c *Cache) Add(res Resource) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.resources[res.Name()] = res
}

// Get resolves a resource by name, or nil.
func (c *Cache) Get(name string) Resource {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.resources[name]
}

// StyleSheet resolves a style sheet by name, or nil when the name is missing
// or bound to a different resource kind.
func (c *Cache) StyleSheet(name string) *StyleSheet {
	sheet, _ := c.Get(name).(*StyleSheet)
	return sheet
}

// Save writes a resource back to its file and arranges for the resulting
// watcher event to be ignored.
func (c *Cache) Save(name string) error {
	c.mu.Lock()
	res := c.resources[name]
	if res == nil {
		c.mu.Unlock()
		return fmt.Errorf("save %q: %w", name, ErrNotFound)
	}
	data := res.Data()
	c.ignore[name]++
	c.mu.Unlock()

	path := filepath.Join(c.dir, name)
	if err := os.WriteFile(path, data, 0o644); err != nil {
		c.mu.Lock()
		if c.ignore[name] > 0 {
			c.ignore[name]--
		}
		c.mu.Unlock()
		return fmt.Errorf("save %q: %w", name, err)
	}
	c.log.Debug("resource saved", zap.String("name", name), zap.String("path", path))
	return nil
}

// Reload replaces a resource's contents from its file unless the change came
// from our own Save.
func (c *Cache) Reload(name string) error {
	c.mu.Lock()
	if c.ignore[name] > 0 {
		c.ignore[name]--
		c.mu.Unlock()
		c.log.Debug("resource reload ignored", zap.String("name", name))
		return nil
	}
	res := c.resources[name]
	c.mu.Unlock()

	if res == nil {
		return fmt.Errorf("reload %q: %w", name, ErrNotFound)
	}
	data, err := os.ReadFile(filepath.Join(c.dir, name))
	if err != nil {
		return fmt.Errorf("reload %q: %w", name, err)
	}
	if err := res.Load(data); err != nil {
		return fmt.Errorf("reload %q: %w", name, err)
	}
	c.log.Info("resource reloaded", zap.String("name", name))
	return nil
}
