package core

import (
	"sync"

	"github.com/om607397-wq/namaa/internal/models"
)

// SessionManager holds the current signed-in identity. At most one identity
// is active at a time; subscribers are notified on every transition, which
// is the server-side analog of the auth-state subscription.
type SessionManager struct {
	mu      sync.Mutex
	current *models.Identity
	subs    map[int]func(*models.Identity)
	nextSub int
}

// NewSessionManager creates an empty (signed-out) session manager.
func NewSessionManager() *SessionManager {
	return &SessionManager{subs: map[int]func(*models.Identity){}}
}

// Current returns the active identity and whether one is signed in.
func (m *SessionManager) Current() (models.Identity, bool) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.current == nil {
		return models.Identity{}, false
	}
	return *m.current, true
}

// Set activates id as the signed-in identity and notifies subscribers.
func (m *SessionManager) Set(id models.Identity) {
	m.mu.Lock()
	m.current = &id
	subs := m.snapshotSubs()
	m.mu.Unlock()
	for _, fn := range subs {
		fn(&id)
	}
}

// Clear ends the session and notifies subscribers with nil.
func (m *SessionManager) Clear() {
	m.mu.Lock()
	m.current = nil
	subs := m.snapshotSubs()
	m.mu.Unlock()
	for _, fn := range subs {
		fn(nil)
	}
}

// Subscribe registers fn to run on every session transition. The returned
// function unsubscribes. Callbacks run outside the manager's lock.
func (m *SessionManager) Subscribe(fn func(*models.Identity)) func() {
	m.mu.Lock()
	id := m.nextSub
	m.nextSub++
	m.subs[id] = fn
	m.mu.Unlock()
	return func() {
		m.mu.Lock()
		delete(m.subs, id)
		m.mu.Unlock()
	}
}

// snapshotSubs copies the subscriber list; callers must hold mu.
func (m *SessionManager) snapshotSubs() []func(*models.Identity) {
	out := make([]func(*models.Identity), 0, len(m.subs))
	for _, fn := range m.subs {
		out = append(out, fn)
	}
	return out
}
