package service

import (
	"sync"

	"github.com/PranzNi/RPG-NURSE/internal/engine"
	"github.com/PranzNi/RPG-NURSE/internal/game"
)

// Session is the in-memory state of one logged-in player: the player
// aggregate plus the current encounter, if any. All game operations on a
// session run under its lock; handlers lock once per request.
type Session struct {
	Username string
	Player   *game.Player
	Enc      *engine.Encounter

	mu sync.Mutex
}

func (s *Session) Lock()   { s.mu.Lock() }
func (s *Session) Unlock() { s.mu.Unlock() }

// SnapshotPlayer returns a copy of the player with its own maps, safe to
// marshal after the session lock is released.
func (s *Session) SnapshotPlayer() game.Player {
	p := *s.Player
	p.Inventory = make(map[string]int, len(s.Player.Inventory))
	for k, v := range s.Player.Inventory {
		p.Inventory[k] = v
	}
	p.Cooldowns = make(map[string]int, len(s.Player.Cooldowns))
	for k, v := range s.Player.Cooldowns {
		p.Cooldowns[k] = v
	}
	return p
}

// Manager is the registry of live sessions keyed by username. Login
// replaces any previous session for the same account.
type Manager struct {
	mu       sync.Mutex
	sessions map[string]*Session
}

func NewManager() *Manager {
	return &Manager{sessions: make(map[string]*Session)}
}

// Get returns the live session for a username, or nil.
func (m *Manager) Get(username string) *Session {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.sessions[username]
}

// Attach installs a fresh session for the username, replacing any
// existing one, and returns it.
func (m *Manager) Attach(username string, p *game.Player) *Session {
	m.mu.Lock()
	defer m.mu.Unlock()
	s := &Session{Username: username, Player: p}
	m.sessions[username] = s
	return s
}

// Remove drops the session for a username, if any.
func (m *Manager) Remove(username string) {
	m.mu.Lock()
	defer m.mu.Unlock()
	delete(m.sessions, username)
}
