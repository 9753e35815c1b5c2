package service

import (
	"sync"
	"time"
)

type registryEntry struct {
	session  *Session
	lastUsed time.Time
}

// SessionRegistry keeps one session per owner key in memory.
// Sessions are lost when the process restarts.
type SessionRegistry struct {
	mux      sync.RWMutex
	sessions map[string]*registryEntry
	now      func() time.Time
}

// NewSessionRegistry creates an empty registry
func NewSessionRegistry() *SessionRegistry {
	return &SessionRegistry{
		sessions: make(map[string]*registryEntry),
		now:      time.Now,
	}
}

// Get looks up the session for owner and marks it as used
func (r *SessionRegistry) Get(owner string) (*Session, bool) {
	r.mux.Lock()
	defer r.mux.Unlock()
	e, ok := r.sessions[owner]
	if !ok {
		return nil, false
	}
	e.lastUsed = r.now()
	return e.session, true
}

// GetOrCreate returns the owner's session, creating it with newFn if missing
func (r *SessionRegistry) GetOrCreate(owner string, newFn func() *Session) *Session {
	r.mux.Lock()
	defer r.mux.Unlock()
	if e, ok := r.sessions[owner]; ok {
		e.lastUsed = r.now()
		return e.session
	}
	e := &registryEntry{session: newFn(), lastUsed: r.now()}
	r.sessions[owner] = e
	return e.session
}

// Delete removes the owner's session and reports whether it existed
func (r *SessionRegistry) Delete(owner string) bool {
	r.mux.Lock()
	defer r.mux.Unlock()
	if _, ok := r.sessions[owner]; !ok {
		return false
	}
	delete(r.sessions, owner)
	return true
}

// EvictIdle removes sessions not used for longer than maxIdle
// and returns how many were removed
func (r *SessionRegistry) EvictIdle(maxIdle time.Duration) int {
	r.mux.Lock()
	defer r.mux.Unlock()
	cutoff := r.now().Add(-maxIdle)
	evicted := 0
	for owner, e := range r.sessions {
		if e.lastUsed.Before(cutoff) {
			delete(r.sessions, owner)
			evicted++
		}
	}
	return evicted
}

// Len returns the number of sessions
func (r *SessionRegistry) Len() int {
	r.mux.RLock()
	defer r.mux.RUnlock()
	return len(r.sessions)
}
