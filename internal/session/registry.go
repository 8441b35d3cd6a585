package session

import (
	"sync"
	"time"

	"github.com/google/uuid"
)

// Registry holds all live sessions keyed by ID.
type Registry struct {
	mu       sync.RWMutex
	sessions map[string]*Session
}

func NewRegistry() *Registry {
	return &Registry{sessions: make(map[string]*Session)}
}

// Register creates a session with a fresh ID and adds it to the registry.
func (r *Registry) Register(sender Sender, handler Handler) *Session {
	s := New(uuid.NewString(), sender, handler, time.Now())

	r.mu.Lock()
	r.sessions[s.ID] = s
	r.mu.Unlock()

	return s
}

// Remove closes the session and drops it from the registry. Removing an
// unknown or already removed ID is a no-op.
func (r *Registry) Remove(id string) (*Session, bool) {
	r.mu.Lock()
	s, ok := r.sessions[id]
	delete(r.sessions, id)
	r.mu.Unlock()

	if ok {
		s.Close()
	}
	return s, ok
}

// Get returns the session for id, if still registered.
func (r *Registry) Get(id string) (*Session, bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	s, ok := r.sessions[id]
	return s, ok
}

// Count reports the number of registered sessions.
func (r *Registry) Count() int {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return len(r.sessions)
}
