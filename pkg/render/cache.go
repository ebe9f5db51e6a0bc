package render

import (
	"sync"

	"go.uber.org/zap"
)

// Cache stores compiled templates keyed by a stable identifier, normally a
// source URI. Entries live until Clear; there is no eviction or invalidation
// because template sources are assumed static for the life of the process.
//
// Concurrent misses for the same key may compile twice. The last writer wins,
// which is harmless because compiled templates are immutable and equivalent.
type Cache struct {
	mu        sync.RWMutex
	templates map[string]*Template
	logger    *zap.Logger
}

// NewCache returns an empty cache. A nil logger disables logging.
func NewCache(logger *zap.Logger) *Cache {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Cache{
		templates: make(map[string]*Template),
		logger:    logger,
	}
}

// Get returns the template cached under id.
func (c *Cache) Get(id string) (*Template, bool) {
	c.mu.RLock()
	defer c.mu.RUnlock()
	tmpl, ok := c.templates[id]
	return tmpl, ok
}

// Put records tmpl under id, replacing any previous entry.
func (c *Cache) Put(id string, tmpl *Template) {
	c.mu.Lock()
	c.templates[id] = tmpl
	c.mu.Unlock()
}

// GetOrCompile returns the cached template for id. On a miss it calls load,
// compiles the text and records the result. Load errors are returned as-is
// and compile errors as *Error; neither leaves an entry behind.
func (c *Cache) GetOrCompile(id string, load func() (string, error)) (*Template, error) {
	if tmpl, ok := c.Get(id); ok {
		c.logger.Debug("template cache hit", zap.String("id", id))
		return tmpl, nil
	}

	c.logger.Debug("template cache miss", zap.String("id", id))
	text, err := load()
	if err != nil {
		return nil, err
	}

	tmpl, err := Compile(text)
	if err != nil {
		c.logger.Debug("template compile failed", zap.String("id", id), zap.Error(err))
		return nil, err
	}

	c.Put(id, tmpl)
	return tmpl, nil
}

// Len reports the number of cached templates.
func (c *Cache) Len() int {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return len(c.templates)
}

// Clear drops every cached template.
func (c *Cache) Clear() {
	c.mu.Lock()
	c.templates = make(map[string]*Template)
	c.mu.Unlock()
}
