package undo

import (
	"time"

	"github.com/benbjohnson/clock"
)

const (
	defaultExpireFrames = 60
	sweepInterval       = 10 * time.Second
)

type cacheEntry struct {
	value    any
	lastUsed uint64
}

// ValueCache holds in-progress tracked values keyed by session hash. Entries
// expire after going untouched for a fixed number of frames; the sweep itself
// is throttled on wall-clock time so per-frame expiry stays cheap.
type ValueCache struct {
	entries      map[uint64]*cacheEntry
	expireFrames uint64
	clk          clock.Clock
	lastSweep    time.Time
}

// NewValueCache returns a cache with the default expiry window.
func NewValueCache() *ValueCache {
	return newValueCache(defaultExpireFrames, clock.New())
}

func newValueCache(expireFrames uint64, clk clock.Clock) *ValueCache {
	return &ValueCache{
		entries:      make(map[uint64]*cacheEntry),
		expireFrames: expireFrames,
		clk:          clk,
	}
}

// get returns the cached entry for key and refreshes its last-used frame.
func (c *ValueCache) get(key, frame uint64) (any, bool) {
	e, ok := c.entries[key]
	if !ok {
		return nil, false
	}
	e.lastUsed = frame
	return e.value, true
}

// put stores value under key, stamping the current frame.
func (c *ValueCache) put(key, frame uint64, value any) {
	c.entries[key] = &cacheEntry{value: value, lastUsed: frame}
}

// detach removes and returns the entry for key.
func (c *ValueCache) detach(key uint64) (any, bool) {
	e, ok := c.entries[key]
	if !ok {
		return nil, false
	}
	delete(c.entries, key)
	return e.value, true
}

func (c *ValueCache) remove(key uint64) {
	delete(c.entries, key)
}

// Expire drops entries that have gone unused for the expiry window. Sweeps
// run at most once per sweep interval.
func (c *ValueCache) Expire(frame uint64) {
	now := c.clk.Now()
	if now.Sub(c.lastSweep) < sweepInterval {
		return
	}
	c.lastSweep = now
	for key, e := range c.entries {
		if frame >= e.lastUsed && frame-e.lastUsed > c.expireFrames {
			delete(c.entries, key)
		}
	}
}

// Clear drops every entry.
func (c *ValueCache) Clear() {
	clear(c.entries)
}

// Len returns the number of live entries.
func (c *ValueCache) Len() int { return len(c.entries) }
