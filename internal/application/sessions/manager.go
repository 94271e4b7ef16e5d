package sessions

import (
	"sync"
	"time"

	"github.com/makelifebetter/storefront-service/internal/domain/checkout"
	"github.com/makelifebetter/storefront-service/internal/pkg/clock"
)

// Manager holds the in-progress checkout sessions, one per user. Sessions are
// transient: closing the checkout discards them, and stale ones are reaped by
// the scheduler after the TTL.
type Manager struct {
	mu       sync.Mutex
	sessions map[string]*checkout.Session
	clock    clock.Clock
	ttl      time.Duration
}

func NewManager(clk clock.Clock, ttl time.Duration) *Manager {
	return &Manager{
		sessions: make(map[string]*checkout.Session),
		clock:    clk,
		ttl:      ttl,
	}
}

// Open starts a fresh checkout session for the user, replacing any session
// left over from an abandoned flow.
func (m *Manager) Open(userID string) *checkout.Session {
	m.mu.Lock()
	defer m.mu.Unlock()

	session := checkout.NewSession(m.clock.Now())
	m.sessions[userID] = session
	return session
}

func (m *Manager) Get(userID string) (*checkout.Session, bool) {
	m.mu.Lock()
	defer m.mu.Unlock()

	session, ok := m.sessions[userID]
	return session, ok
}

// Close discards the user's session. Closing before submission leaves no
// persisted side effect.
func (m *Manager) Close(userID string) {
	m.mu.Lock()
	defer m.mu.Unlock()

	delete(m.sessions, userID)
}

// PruneExpired drops sessions older than the TTL and returns how many were
// removed.
func (m *Manager) PruneExpired() int {
	m.mu.Lock()
	defer m.mu.Unlock()

	now := m.clock.Now()
	pruned := 0
	for userID, session := range m.sessions {
		if now.Sub(session.CreatedAt) > m.ttl {
			delete(m.sessions, userID)
			pruned++
		}
	}
	return pruned
}

// Len reports the number of open sessions.
func (m *Manager) Len() int {
	m.mu.Lock()
	defer m.mu.Unlock()

	return len(m.sessions)
}
