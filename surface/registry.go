// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: MIT

package surface

import (
	"cmp"
	"errors"
	"slices"
	"sync"
)

// Factory creates a new Surface with the given options.
type Factory func(opts Options) (Surface, error)

// Backend is a registered surface implementation.
type Backend struct {
	// Name is the unique identifier of the backend.
	Name string

	// Priority determines selection order, higher first. The built-in
	// backends are "image" (10) and "recorder" (0).
	Priority int

	// Factory creates surface instances.
	Factory Factory

	// Available reports if the backend can be used. Nil means always.
	Available func() bool
}

func (b *Backend) available() bool {
	return b.Available == nil || b.Available()
}

// Registry maps names to surface backends, so that figure renderers can
// select an output without importing it.
//
// Example registration:
//
//	func init() {
//	    surface.Register(surface.Backend{Name: "svg", Priority: 5, Factory: newSVG})
//	}
type Registry struct {
	mu       sync.RWMutex
	backends map[string]Backend
}

// NewRegistry creates an empty registry. Most code uses the default
// registry through Register and NewSurface.
func NewRegistry() *Registry {
	return &Registry{backends: make(map[string]Backend)}
}

var defaultRegistry = NewRegistry()

// Register adds b to the default registry, replacing a backend of the
// same name.
func Register(b Backend) { defaultRegistry.Register(b) }

// Backends lists the names of the available backends of the default
// registry, by decreasing priority.
func Backends() []string { return defaultRegistry.Backends() }

// NewSurface creates a surface with the preferred backend of the default
// registry.
func NewSurface(width, height int, opts ...Option) (Surface, error) {
	return defaultRegistry.NewSurface(buildOptions(width, height, opts))
}

// NewSurfaceByName creates a surface with a named backend of the default
// registry.
func NewSurfaceByName(name string, width, height int, opts ...Option) (Surface, error) {
	return defaultRegistry.NewSurfaceByName(name, buildOptions(width, height, opts))
}

// Register adds b, replacing a backend of the same name.
func (r *Registry) Register(b Backend) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.backends[b.Name] = b
}

// Unregister removes a backend. Unknown names are ignored.
func (r *Registry) Unregister(name string) {
	r.mu.Lock()
	defer r.mu.Unlock()
	delete(r.backends, name)
}

// Backends lists the names of the available backends by decreasing
// priority, then by name.
func (r *Registry) Backends() []string {
	r.mu.RLock()
	defer r.mu.RUnlock()
	list := make([]Backend, 0, len(r.backends))
	for _, b := range r.backends {
		if b.available() {
			list = append(list, b)
		}
	}
	slices.SortFunc(list, func(a, b Backend) int {
		if c := cmp.Compare(b.Priority, a.Priority); c != 0 {
			return c
		}
		return cmp.Compare(a.Name, b.Name)
	})
	names := make([]string, len(list))
	for i, b := range list {
		names[i] = b.Name
	}
	return names
}

// NewSurface tries the available backends by priority and returns the
// first surface created.
func (r *Registry) NewSurface(opts Options) (Surface, error) {
	names := r.Backends()
	if len(names) == 0 {
		return nil, ErrNoBackend
	}
	var errs []error
	for _, name := range names {
		s, err := r.NewSurfaceByName(name, opts)
		if err == nil {
			return s, nil
		}
		errs = append(errs, err)
	}
	return nil, errors.Join(errs...)
}

// NewSurfaceByName creates a surface with a named backend.
func (r *Registry) NewSurfaceByName(name string, opts Options) (Surface, error) {
	r.mu.RLock()
	b, ok := r.backends[name]
	r.mu.RUnlock()
	if !ok {
		return nil, &BackendError{Name: name}
	}
	if !b.available() {
		return nil, &BackendError{Name: name, Unavailable: true}
	}
	return b.Factory(opts)
}

// ErrNoBackend is returned when no backend is registered or available.
var ErrNoBackend = errors.New("surface: no backend available")

// BackendError reports a backend that is not registered or not available.
type BackendError struct {
	Name        string
	Unavailable bool
}

func (e *BackendError) Error() string {
	if e.Unavailable {
		return "surface: backend unavailable: " + e.Name
	}
	return "surface: backend not found: " + e.Name
}

func init() {
	Register(Backend{Name: "image", Priority: 10, Factory: func(o Options) (Surface, error) {
		return newImageSurface(o), nil
	}})
	Register(Backend{Name: "recorder", Factory: func(o Options) (Surface, error) {
		return newRecorder(o), nil
	}})
}
