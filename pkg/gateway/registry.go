package gateway

import (
	"sync"

	"github.com/plfanzen/plfanzen/pkg/metrics"
)

// Backend describes how to reach and authenticate against one backend SSH
// server inside the cluster.
type Backend struct {
	// Addr is the host:port of the backend SSH server.
	Addr string

	// User and Pass authenticate the gateway against the backend.
	User string
	Pass string

	// GatewayPass, when set, is the password players must present at the
	// gateway. Nil accepts any password for this login.
	GatewayPass *string
}

// Registry maps gateway login names to backends. The controller is the only
// writer; per-connection authentication reads concurrently.
type Registry struct {
	mu       sync.RWMutex
	backends map[string]Backend
	logins   map[string]string // owner (namespace/name of the CR) -> login
}

// NewRegistry returns an empty registry.
func NewRegistry() *Registry {
	return &Registry{
		backends: make(map[string]Backend),
		logins:   make(map[string]string),
	}
}

// Set installs or replaces the backend for login on behalf of owner. An
// owner that previously installed a different login has that entry removed
// first, so edited gateway objects do not leave stale logins behind.
func (r *Registry) Set(owner, login string, backend Backend) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if prev, ok := r.logins[owner]; ok && prev != login {
		delete(r.backends, prev)
	}
	r.logins[owner] = login
	r.backends[login] = backend
	metrics.GatewayBackends.Set(float64(len(r.backends)))
}

// RemoveOwner drops the entry installed by owner, if any. Deletion events
// only carry the object's identity, hence the owner-keyed removal.
func (r *Registry) RemoveOwner(owner string) {
	r.mu.Lock()
	defer r.mu.Unlock()
	login, ok := r.logins[owner]
	if !ok {
		return
	}
	delete(r.logins, owner)
	delete(r.backends, login)
	metrics.GatewayBackends.Set(float64(len(r.backends)))
}

// Get resolves a login name to its backend.
func (r *Registry) Get(login string) (Backend, bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	backend, ok := r.backends[login]
	return backend, ok
}

// Len reports the number of installed backends.
func (r *Registry) Len() int {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return len(r.backends)
}
