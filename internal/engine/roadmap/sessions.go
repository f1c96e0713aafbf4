package roadmap

import (
	"context"
	"fmt"
	"sync"
	"time"
)

// Session is one live (user, resource) roadmap: the graph plus its
// autosaver.
type Session struct {
	Graph     *Graph
	Autosaver *Autosaver
}

// Manager owns the live sessions. A session is created on first access,
// restoring from the store when a snapshot exists.
type Manager struct {
	store    Store
	debounce time.Duration

	mu       sync.Mutex
	sessions map[string]*Session
}

// NewManager creates a session manager over the given store.
func NewManager(store Store, debounce time.Duration) *Manager {
	return &Manager{
		store:    store,
		debounce: debounce,
		sessions: make(map[string]*Session),
	}
}

func sessionKey(userID, resourceID string) string {
	return userID + "|" + resourceID
}

// Get returns the live session for the key, or nil if none exists yet.
func (m *Manager) Get(userID, resourceID string) *Session {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.sessions[sessionKey(userID, resourceID)]
}

// Load returns the live session, restoring it from a stored snapshot when
// possible. ok=false means nothing is live and nothing is stored.
func (m *Manager) Load(ctx context.Context, userID, resourceID string) (*Session, bool, error) {
	m.mu.Lock()
	if s, found := m.sessions[sessionKey(userID, resourceID)]; found {
		m.mu.Unlock()
		return s, true, nil
	}
	m.mu.Unlock()

	snap, found, err := m.store.Get(ctx, userID, resourceID)
	if err != nil {
		return nil, false, err
	}
	if !found {
		return nil, false, nil
	}

	return m.install(userID, resourceID, FromSnapshot(snap)), true, nil
}

// Start creates a fresh session from a generated roadmap, replacing any
// existing one and discarding its stored snapshot. The session goes live
// only after the initial snapshot is stored.
func (m *Manager) Start(ctx context.Context, userID, resourceID string, r Roadmap) (*Session, error) {
	if err := m.store.Delete(ctx, userID, resourceID); err != nil {
		return nil, fmt.Errorf("reset stored roadmap: %w", err)
	}

	g := NewGraph(r)

	// Persist the initial layout so a restart before the first toggle
	// still finds the roadmap.
	if err := m.store.Put(ctx, userID, resourceID, g.Snapshot(time.Now().UTC())); err != nil {
		return nil, fmt.Errorf("store initial roadmap: %w", err)
	}
	return m.install(userID, resourceID, g), nil
}

// install swaps in a new session for the key, stopping any previous
// autosaver.
func (m *Manager) install(userID, resourceID string, g *Graph) *Session {
	s := &Session{Graph: g}
	s.Autosaver = NewAutosaver(m.store, g, userID, resourceID, m.debounce)

	m.mu.Lock()
	defer m.mu.Unlock()
	key := sessionKey(userID, resourceID)
	if prev, found := m.sessions[key]; found {
		prev.Autosaver.Stop()
	}
	m.sessions[key] = s
	return s
}

// Shutdown flushes every session's unsaved state. Errors are aggregated
// into one.
func (m *Manager) Shutdown(ctx context.Context) error {
	m.mu.Lock()
	sessions := make([]*Session, 0, len(m.sessions))
	for _, s := range m.sessions {
		sessions = append(sessions, s)
	}
	m.mu.Unlock()

	var firstErr error
	for _, s := range sessions {
		if err := s.Autosaver.Flush(ctx); err != nil && firstErr == nil {
			firstErr = err
		}
	}
	return firstErr
}
