// SPDX-FileCopyrightText: 2025 The Lbar Authors
// SPDX-License-Identifier: EUPL-1.2

package suggest

import "github.com/janderssonse/lbar/internal/domain"

// Cache recomputes suggestions only when their inputs changed since the
// last frame: the query text, the available width, or the registry.
type Cache struct {
	engine  *Engine
	catalog domain.Catalog

	computed   bool
	query      string
	width      int
	generation uint64
	current    []Suggestion
}

// NewCache creates a cache reading from catalog.
func NewCache(engine *Engine, catalog domain.Catalog) *Cache {
	return &Cache{
		engine:  engine,
		catalog: catalog,
	}
}

// Update returns the suggestions for query at width, recomputing them if
// anything they depend on changed.
func (c *Cache) Update(query string, width int) []Suggestion {
	generation := c.catalog.Generation()
	if c.computed && query == c.query && width == c.width && generation == c.generation {
		return c.current
	}

	c.current = c.engine.Compute(query, c.catalog.Snapshot(), width)
	c.computed = true
	c.query = query
	c.width = width
	c.generation = generation

	return c.current
}

// Current returns the last computed suggestions.
func (c *Cache) Current() []Suggestion {
	return c.current
}
