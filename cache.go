// Copyright (c) 2026 Z5Labs and Contributors
//
// This software is released under the MIT License.
// https://opensource.org/licenses/MIT

package assettree

import (
	"sync"

	"github.com/z5labs/assettree/value"
)

// Cache holds fully resolved files keyed by canonical path. Entries are
// never evicted.
type Cache struct {
	mu      sync.RWMutex
	entries map[string]value.Value
}

// NewCache returns an empty Cache. A Cache may be shared by many
// loaders via [WithCache].
func NewCache() *Cache {
	return &Cache{
		entries: make(map[string]value.Value),
	}
}

// Get returns the value stored for the canonical path p.
func (c *Cache) Get(p string) (value.Value, bool) {
	c.mu.RLock()
	defer c.mu.RUnlock()

	v, ok := c.entries[p]
	return v, ok
}

// Len returns the number of cached files.
func (c *Cache) Len() int {
	c.mu.RLock()
	defer c.mu.RUnlock()

	return len(c.entries)
}

func (c *Cache) set(p string, v value.Value) {
	c.mu.Lock()
	defer c.mu.Unlock()

	c.entries[p] = v
}
