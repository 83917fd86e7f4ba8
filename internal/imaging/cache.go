package imaging

import (
	"sync"
)

// RenderCache provides thread-safe caching of exported avatars to avoid
// redundant rasterization.
//
// Exports are keyed by a caller-built string that must capture every input
// of the render (kind, identity, configuration and export options). Once an
// export is stored, subsequent Load calls for the same key return the
// cached result without rendering.
//
// RenderCache is safe for concurrent use by multiple goroutines.
//
// # Memory Management
//
// The cache holds at most its capacity of entries. When full, the oldest
// entry is evicted first. A capacity of zero or less disables caching:
// every Load renders.
//
// # Example Usage
//
//	cache := imaging.NewRenderCache(256)
//	result, err := cache.Load(key, func() (*imaging.ExportResult, error) {
//	    return imaging.Export(doc, opts)
//	})
type RenderCache struct {
	mu       sync.RWMutex
	capacity int
	results  map[string]*ExportResult
	order    []string
}

// NewRenderCache creates an empty cache holding up to capacity exports.
func NewRenderCache(capacity int) *RenderCache {
	return &RenderCache{
		capacity: capacity,
		results:  make(map[string]*ExportResult),
	}
}

// Load returns the cached export for key, or calls render and caches its
// result. Errors are returned as-is and never cached.
//
// Two goroutines missing the same key at once may both render; the last
// one stored wins. Renders are deterministic, so both results are equal.
func (c *RenderCache) Load(key string, render func() (*ExportResult, error)) (*ExportResult, error) {
	if result, ok := c.Get(key); ok {
		return result, nil
	}

	result, err := render()
	if err != nil {
		return nil, err
	}

	c.put(key, result)
	return result, nil
}

// Get returns the cached export for key.
func (c *RenderCache) Get(key string) (*ExportResult, bool) {
	c.mu.RLock()
	defer c.mu.RUnlock()
	result, ok := c.results[key]
	return result, ok
}

func (c *RenderCache) put(key string, result *ExportResult) {
	if c.capacity <= 0 {
		return
	}

	c.mu.Lock()
	defer c.mu.Unlock()

	if _, ok := c.results[key]; !ok {
		c.order = append(c.order, key)
	}
	c.results[key] = result

	for len(c.order) > c.capacity {
		oldest := c.order[0]
		c.order = c.order[1:]
		delete(c.results, oldest)
	}
}

// Len returns the number of cached exports.
func (c *RenderCache) Len() int {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return len(c.results)
}

// Clear removes all exports from the cache.
func (c *RenderCache) Clear() {
	c.mu.Lock()
	c.results = make(map[string]*ExportResult)
	c.order = nil
	c.mu.Unlock()
}

// Evict removes the export for key. Unknown keys are ignored.
func (c *RenderCache) Evict(key string) {
	c.mu.Lock()
	defer c.mu.Unlock()

	if _, ok := c.results[key]; !ok {
		return
	}
	delete(c.results, key)
	for i, k := range c.order {
		if k == key {
			c.order = append(c.order[:i], c.order[i+1:]...)
			break
		}
	}
}
