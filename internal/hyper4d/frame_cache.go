package hyper4d

import (
	"fmt"
	"sync"
)

// frameKey uses shape identity: shapes are immutable, and one catalog key can
// name shapes generated at different resolutions.
type frameKey struct {
	shape *Shape
	rot   Rot4
	cfg   FrameConfig
}

// FrameCache memoizes Assemble on (shape, rotation, config). Cached frames
// are shared between callers and must be treated as read-only.
// When the cache holds max entries it is cleared before the next insert.
type FrameCache struct {
	mu      sync.Mutex
	max     int
	frames  map[frameKey]Frame
	hits    uint64
	misses  uint64
	flushes uint64
}

func NewFrameCache(max int) *FrameCache {
	if max <= 0 {
		max = FrameCacheSize
	}
	return &FrameCache{max: max, frames: make(map[frameKey]Frame, max)}
}

// Get returns the memoized frame, assembling it on a miss.
func (c *FrameCache) Get(s *Shape, r Rot4, cfg FrameConfig) Frame {
	k := frameKey{shape: s, rot: r, cfg: cfg}
	c.mu.Lock()
	if f, ok := c.frames[k]; ok {
		c.hits++
		c.mu.Unlock()
		return f
	}
	c.misses++
	c.mu.Unlock()

	// assemble outside the lock; a racing miss just does the same work twice
	f := Assemble(s, r, cfg)

	c.mu.Lock()
	defer c.mu.Unlock()
	if len(c.frames) >= c.max {
		c.frames = make(map[frameKey]Frame, c.max)
		c.flushes++
	}
	c.frames[k] = f
	return f
}

// Len returns the number of cached frames.
func (c *FrameCache) Len() int {
	c.mu.Lock()
	defer c.mu.Unlock()
	return len(c.frames)
}

// Stats returns hit, miss and flush counters.
func (c *FrameCache) Stats() (hits, misses, flushes uint64) {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.hits, c.misses, c.flushes
}

func (c *FrameCache) String() string {
	h, m, f := c.Stats()
	return fmt.Sprintf("frame cache: %d entries, %d hits, %d misses, %d flushes", c.Len(), h, m, f)
}
