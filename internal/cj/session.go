package cj

import (
	"sync"
	"time"
)

// sessionRefreshBuffer is subtracted from the token expiry so a session is
// refreshed slightly before the partner would start rejecting it.
const sessionRefreshBuffer = 60 * time.Second

// Session holds the partner credential pair and its validity window.
// Exactly one Session is live per account; it is owned by a TokenStore and
// never copied into caller state.
type Session struct {
	AccessToken      string
	RefreshToken     string
	ExpiresAt        time.Time
	RefreshExpiresAt time.Time
}

// Valid reports whether the session can still be used at the given time.
func (s Session) Valid(now time.Time) bool {
	return s.AccessToken != "" && now.Before(s.ExpiresAt.Add(-sessionRefreshBuffer))
}

// RefreshValid reports whether the refresh token can still be exchanged
// at the given time.
func (s Session) RefreshValid(now time.Time) bool {
	return s.RefreshToken != "" && now.Before(s.RefreshExpiresAt)
}

// TokenStore owns the current Session. Implementations hold no network or
// queueing logic; all mutation happens from within the gateway's
// serialized request lane. A backing store may swap the session under the
// gateway (for example when several processes share persisted tokens),
// which is why Get always returns a copy.
type TokenStore interface {
	Get() (Session, bool)
	Set(Session)
	Clear()
}

// MemoryTokenStore is the default in-process TokenStore.
type MemoryTokenStore struct {
	mu      sync.Mutex
	session Session
	present bool
}

// NewMemoryTokenStore creates an empty MemoryTokenStore.
func NewMemoryTokenStore() *MemoryTokenStore {
	return &MemoryTokenStore{}
}

// Get returns a copy of the current session, if one is present.
func (m *MemoryTokenStore) Get() (Session, bool) {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.session, m.present
}

// Set replaces the current session.
func (m *MemoryTokenStore) Set(s Session) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.session = s
	m.present = true
}

// Clear drops the current session.
func (m *MemoryTokenStore) Clear() {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.session = Session{}
	m.present = false
}
