// SPDX-License-Identifier: EPL-2.0

package device

import (
	"fmt"
	"sync"

	"github.com/sirupsen/logrus"
)

// Registry holds the known backends and caches their capability probes.
// Probing happens at most once per backend per Registry; availability is
// a fact about the host, not something that changes mid-process.
type Registry struct {
	backends map[string]Backend
	avail    map[string]bool

	mtx *sync.Mutex
}

func NewRegistry() *Registry {
	return &Registry{
		backends: make(map[string]Backend),
		avail:    make(map[string]bool),
		mtx:      &sync.Mutex{},
	}
}

// Register adds a backend, replacing any previous one with the same
// name. A cached probe result for that name is discarded.
func (r *Registry) Register(b Backend) {
	r.mtx.Lock()
	defer r.mtx.Unlock()

	r.backends[b.Name] = b
	delete(r.avail, b.Name)
}

func (r *Registry) Get(name string) (Backend, bool) {
	r.mtx.Lock()
	defer r.mtx.Unlock()

	b, ok := r.backends[name]
	return b, ok
}

// Available reports whether the named backend's native capability is
// usable. The first call runs the backend's probe; the result is cached.
// Unknown names report false.
func (r *Registry) Available(name string) bool {
	r.mtx.Lock()
	defer r.mtx.Unlock()

	if ok, cached := r.avail[name]; cached {
		return ok
	}

	b, known := r.backends[name]
	if !known {
		return false
	}

	ok := b.Probe == nil || b.Probe()
	r.avail[name] = ok

	logrus.WithFields(logrus.Fields{
		"backend":   name,
		"available": ok,
	}).Debug("probed audio backend")

	return ok
}

// Open acquires the named backend's device.
func (r *Registry) Open(name string) (Driver, error) {
	b, ok := r.Get(name)
	if !ok {
		return nil, fmt.Errorf("%w: %s is not registered", ErrUnavailable, name)
	}
	if b.Open == nil {
		return nil, fmt.Errorf("%w: %s has no opener", ErrUnavailable, name)
	}

	return b.Open()
}
