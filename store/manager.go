package store

import (
	"sync"
	"time"
)

type sessionEntry struct {
	store    *CartStore
	lastSeen time.Time
}

// Manager holds one CartStore per client session. Carts live in memory only;
// a session that stays idle past the TTL is evicted, and nothing survives a
// process restart.
type Manager struct {
	mu       sync.RWMutex
	sessions map[string]*sessionEntry
	ttl      time.Duration
}

func NewManager(ttl time.Duration) *Manager {
	m := &Manager{
		sessions: make(map[string]*sessionEntry),
		ttl:      ttl,
	}

	// Periodic cleanup of idle sessions to avoid unbounded map growth
	go func() {
		ticker := time.NewTicker(ttl)
		defer ticker.Stop()
		for range ticker.C {
			m.mu.Lock()
			now := time.Now()
			for id, e := range m.sessions {
				if now.Sub(e.lastSeen) > m.ttl {
					delete(m.sessions, id)
				}
			}
			m.mu.Unlock()
		}
	}()

	return m
}

// Get returns the cart store for the given session, creating it on first use.
func (m *Manager) Get(sessionID string) *CartStore {
	m.mu.RLock()
	entry, exists := m.sessions[sessionID]
	m.mu.RUnlock()
	if exists {
		m.mu.Lock()
		entry.lastSeen = time.Now()
		m.mu.Unlock()
		return entry.store
	}

	m.mu.Lock()
	defer m.mu.Unlock()
	// double-check in case another goroutine created it
	entry, exists = m.sessions[sessionID]
	if !exists {
		entry = &sessionEntry{
			store:    NewCartStore(),
			lastSeen: time.Now(),
		}
		m.sessions[sessionID] = entry
	} else {
		entry.lastSeen = time.Now()
	}
	return entry.store
}

// Len reports the number of live sessions.
func (m *Manager) Len() int {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return len(m.sessions)
}
