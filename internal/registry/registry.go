// SPDX-FileCopyrightText: 2025 The Lbar Authors
// SPDX-License-Identifier: EUPL-1.2

// Package registry holds the applications discovered by the background
// scan and the scan progress shown by the frontend.
package registry

import (
	"sort"
	"sync"

	"github.com/janderssonse/lbar/internal/domain"
)

// Registry is a concurrency-safe set of applications keyed by display
// name. It is filled by a single scanning goroutine while the interactive
// loop reads it; every access is a short critical section.
type Registry struct {
	mu         sync.RWMutex
	apps       map[string]domain.Application
	generation uint64
}

// New creates an empty registry.
func New() *Registry {
	return &Registry{
		apps: make(map[string]domain.Application),
	}
}

// Put stores app under its display name, replacing any entry with the same
// name.
func (r *Registry) Put(app domain.Application) {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.apps[app.Name] = app
	r.generation++
}

// Get returns the application shown as name.
func (r *Registry) Get(name string) (domain.Application, bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	app, ok := r.apps[name]

	return app, ok
}

// Len returns the number of entries.
func (r *Registry) Len() int {
	r.mu.RLock()
	defer r.mu.RUnlock()

	return len(r.apps)
}

// Generation changes every time an entry is stored. Readers compare it to
// decide whether a previous snapshot is stale.
func (r *Registry) Generation() uint64 {
	r.mu.RLock()
	defer r.mu.RUnlock()

	return r.generation
}

// Snapshot copies the current entries sorted by display name. The copy is
// complete for every entry it holds but may miss entries still being
// scanned.
func (r *Registry) Snapshot() []domain.Application {
	r.mu.RLock()

	apps := make([]domain.Application, 0, len(r.apps))
	for _, app := range r.apps {
		apps = append(apps, app)
	}

	r.mu.RUnlock()

	sort.Slice(apps, func(i, j int) bool {
		return apps[i].Name < apps[j].Name
	})

	return apps
}

var _ domain.Catalog = (*Registry)(nil)
