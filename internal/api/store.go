package api

import (
	"errors"
	"sync"

	"github.com/SeamusWaldron/twisty/internal/session"
)

// errNotFound is returned for an unknown session ID.
var errNotFound = errors.New("session not found")

// registry keeps live sessions in memory, keyed by ID.
// Sessions are lost when the process exits.
type registry struct {
	mu       sync.RWMutex
	sessions map[string]*session.Session
}

func newRegistry() *registry {
	return &registry{sessions: make(map[string]*session.Session)}
}

func (r *registry) save(id string, s *session.Session) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.sessions[id] = s
}

func (r *registry) get(id string) (*session.Session, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	if s, ok := r.sessions[id]; ok {
		return s, nil
	}
	return nil, errNotFound
}

func (r *registry) remove(id string) bool {
	r.mu.Lock()
	defer r.mu.Unlock()
	_, ok := r.sessions[id]
	delete(r.sessions, id)
	return ok
}

func (r *registry) len() int {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return len(r.sessions)
}
